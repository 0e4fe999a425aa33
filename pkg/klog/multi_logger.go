package klog

// MultiLogger fans one event out to several loggers — typically a console
// SlogAdapter plus a FileLogger.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger builds a MultiLogger sending to every logger given.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
