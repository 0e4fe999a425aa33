package klog

import (
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// Filter restricts which events Reader.Next returns. Zero-valued fields
// match everything for that criterion.
type Filter struct {
	DeviceID     string
	InputKeyCode *keycode.KeyCode
	TimeStart    *time.Time
	TimeEnd      *time.Time
	WarningsOnly bool
}

func (f *Filter) matches(event Event) bool {
	if f.DeviceID != "" && event.DeviceID != f.DeviceID {
		return false
	}
	if f.InputKeyCode != nil && event.InputKeyCode != *f.InputKeyCode {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	if f.WarningsOnly && event.Warning == "" {
		return false
	}
	return true
}

// Reader streams event records out of a CBOR-encoded log file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens path and returns a Reader over every event in it.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens path and returns a Reader over only the events
// matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, decoder: NewDecoder(f), filter: filter}, nil
}

// Next returns the next matching event, or io.EOF once the file is
// exhausted.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			return Event{}, err
		}
		if r.filter.matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error { return r.file.Close() }
