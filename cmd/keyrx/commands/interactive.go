package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/krx"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/latency"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/orchestrator"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform/simulated"
)

// RunTest runs the test command: an interactive REPL that loads a profile
// against one simulated keyboard and lets the operator press/release keys
// by name, observing the remapped output, without grabbing real hardware.
func RunTest(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a compiled .krx profile")
	fs.Usage = func() { printTestUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if *configPath == "" {
		fmt.Fprintln(stderr, "Error: -config is required")
		printTestUsage(stderr)
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

	device := platform.DeviceInfo{Name: "Simulated Test Keyboard", Serial: "repl-0001", PhysPath: "repl"}
	input := simulated.NewInput(device)
	output := simulated.NewOutput()
	orch := orchestrator.New(input, output)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErrCh := make(chan error, 1)
	go func() { runErrCh <- orch.Run(ctx, root, *configPath) }()
	time.Sleep(10 * time.Millisecond) // let Run reach its input.Start() device enumeration

	rl, err := readline.New("keyrx-test> ")
	if err != nil {
		fmt.Fprintf(stderr, "Error: starting REPL: %v\n", err)
		cancel()
		return exitRuntime
	}
	defer rl.Close()

	fmt.Fprintln(stdout, "keyrx interactive test session. Type 'help' for commands, 'quit' to exit.")

	var seq uint64
	var seenOutputs int
readLoop:
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			break
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printTestHelp(stdout)
		case "quit", "exit":
			break readLoop
		case "press", "release", "tap":
			if len(fields) != 2 {
				fmt.Fprintln(stdout, "usage: press|release|tap <VK_NAME>")
				continue
			}
			kc, ok := keycode.Parse(fields[1])
			if !ok {
				fmt.Fprintf(stdout, "unknown key code %q\n", fields[1])
				continue
			}
			seq++
			switch fields[0] {
			case "press":
				input.Feed(platform.RawEvent{KeyCode: kc, Kind: engine.Press, TimestampUs: seq, DeviceID: device.MatchString()})
			case "release":
				input.Feed(platform.RawEvent{KeyCode: kc, Kind: engine.Release, TimestampUs: seq, DeviceID: device.MatchString()})
			case "tap":
				input.Feed(platform.RawEvent{KeyCode: kc, Kind: engine.Press, TimestampUs: seq, DeviceID: device.MatchString()})
				seq++
				input.Feed(platform.RawEvent{KeyCode: kc, Kind: engine.Release, TimestampUs: seq, DeviceID: device.MatchString()})
			}
			time.Sleep(5 * time.Millisecond) // let the device goroutine dispatch before we print output
			seenOutputs = printNewOutput(stdout, output, seenOutputs)
		case "state":
			printState(stdout, orch.QueryState())
		case "latency":
			printLatency(stdout, orch.QueryLatency())
		default:
			fmt.Fprintf(stdout, "unknown command %q; type 'help' for a list\n", fields[0])
		}
	}

	cancel()
	if err := <-runErrCh; err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}
	return exitSuccess
}

// printNewOutput prints the output events recorded since the previous call
// (identified by seenOutputs, a count of prior events) and returns the new
// total, since Output.Recorded accumulates across the whole session.
func printNewOutput(w io.Writer, output *simulated.Output, seenOutputs int) int {
	all := output.Recorded()
	for _, ev := range all[seenOutputs:] {
		fmt.Fprintf(w, "  -> %s %s\n", ev.KeyCode, ev.Kind)
	}
	return len(all)
}

func printState(w io.Writer, snap orchestrator.StateSnapshot) {
	fmt.Fprintf(w, "running=%v profile=%s devices=%d uptime=%ds\n", snap.Running, snap.ActiveProfile, snap.DeviceCount, snap.UptimeSecs)
	for _, d := range snap.Devices {
		fmt.Fprintf(w, "  %s modifiers=%v locks=%v\n", d.DeviceID, modifierNames(d.ModifiersActive), lockNames(d.LocksActive))
	}
}

func printLatency(w io.Writer, snap latency.Snapshot) {
	fmt.Fprintf(w, "samples=%d min=%dus avg=%dus p95=%dus p99=%dus max=%dus\n",
		snap.SampleCount, snap.Min, snap.Avg, snap.P95, snap.P99, snap.Max)
}

func modifierNames(ids []config.ModifierID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(int(id))
	}
	return out
}

func lockNames(ids []config.LockID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(int(id))
	}
	return out
}

func printTestHelp(w io.Writer) {
	fmt.Fprintln(w, `Commands:
  press <VK_NAME>     Press a key (e.g. press VK_A)
  release <VK_NAME>   Release a key
  tap <VK_NAME>        Press then release a key
  state                Show active modifiers/locks per device
  latency              Show hot-path latency statistics
  help                 Show this help
  quit                 Exit the session`)
}

func printTestUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: keyrx test -config <file.krx>

Starts an interactive session against one simulated keyboard so mappings
can be exercised without grabbing real hardware.`)
}
