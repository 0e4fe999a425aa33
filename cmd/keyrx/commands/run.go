package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/klog"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/krx"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/orchestrator"
)

// RunRun runs the run command: starts the remapping engine against the
// platform's real input/output adapters and blocks until SIGINT/SIGTERM.
func RunRun(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a compiled .krx profile")
	eventLog := fs.String("event-log", "", "path to write a binary event log (CBOR)")
	fs.Usage = func() { printRunUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if *configPath == "" {
		fmt.Fprintln(stderr, "Error: -config is required")
		printRunUsage(stderr)
		return exitConfig
	}

	data, err := os.ReadFile(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: reading %s: %v\n", *configPath, err)
		return exitConfig
	}
	root, err := krx.Load(data)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}

	var loggers []klog.Logger
	slogger := slog.New(slog.NewTextHandler(stderr, nil))
	loggers = append(loggers, klog.NewSlogAdapter(slogger))
	if *eventLog != "" {
		fileLogger, err := klog.NewFileLogger(*eventLog)
		if err != nil {
			fmt.Fprintf(stderr, "Error: opening event log %s: %v\n", *eventLog, err)
			return exitRuntime
		}
		defer fileLogger.Close()
		loggers = append(loggers, fileLogger)
	}

	input := newInputAdapter()
	orch := orchestrator.New(input, newOutputAdapter(),
		orchestrator.WithScanTable(platformScanTable()),
		orchestrator.WithLogger(klog.NewMultiLogger(loggers...)),
	)

	if err := orch.CheckPermissions(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitPermission
	}

	fmt.Fprintf(stdout, "keyrx %s starting with profile %s\n", VersionString(), *configPath)
	if devices, err := input.Devices(); err == nil {
		matched := 0
		for _, dev := range devices {
			if _, ok := root.MatchDevice(dev.MatchString()); ok {
				matched++
			} else {
				fmt.Fprintf(stderr, "Warning: device %q matches no pattern and will not be remapped\n", dev.Name)
			}
		}
		fmt.Fprintf(stdout, "%d of %d device(s) matched\n", matched, len(devices))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := orch.Run(ctx, root, *configPath); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}

	fmt.Fprintln(stdout, "keyrx stopped")
	return exitSuccess
}

func printRunUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: keyrx run -config <file.krx> [options]

Options:
  -event-log <path>   Write a binary CBOR event log alongside console output

Runs until interrupted (SIGINT/SIGTERM), flushing every pressed key on
every matched device before exiting.`)
}
