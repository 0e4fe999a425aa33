package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/krx"
)

// RunValidate runs the validate command: loads a profile, enumerates
// physical devices, and reports which devices each device pattern matches,
// without starting the engine.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a compiled .krx profile")
	fs.Usage = func() { printValidateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if *configPath == "" {
		fmt.Fprintln(stderr, "Error: -config is required")
		printValidateUsage(stderr)
		return exitConfig
	}

	fmt.Fprintf(stdout, "Validating configuration: %s\n\n", *configPath)

	fmt.Fprintln(stdout, "1. Loading configuration...")
	data, err := os.ReadFile(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read configuration: %v\n", err)
		return exitConfig
	}
	root, err := krx.Load(data)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitConfig
	}
	fmt.Fprintf(stdout, "   Configuration loaded: %d device pattern(s)\n", len(root.Devices))
	for i, dc := range root.Devices {
		pattern := dc.Identifier.Pattern
		if dc.Identifier.Any {
			pattern = "*"
		}
		fmt.Fprintf(stdout, "   [%2d] Pattern: %q (%d mapping(s))\n", i+1, pattern, len(dc.Mappings))
	}
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "2. Enumerating keyboard devices...")
	adapter := newInputAdapter()
	devices, err := adapter.Devices()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to enumerate devices: %v\n", err)
		return exitPermission
	}

	if len(devices) == 0 {
		fmt.Fprintln(stdout, "   No keyboard devices found.")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "This could mean:")
		fmt.Fprintln(stdout, "  - No keyboards are connected")
		fmt.Fprintln(stdout, "  - Permission denied to read the input devices")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "To fix permission issues, either run as root or join the 'input' group.")
		return exitSuccess
	}
	fmt.Fprintf(stdout, "   Found %d keyboard device(s)\n\n", len(devices))

	fmt.Fprintln(stdout, "3. Matching devices to configuration patterns...")
	fmt.Fprintln(stdout)

	matchedCount := 0
	var unmatched []string
	for _, dev := range devices {
		idx, ok := root.MatchDevice(dev.MatchString())
		if !ok {
			unmatched = append(unmatched, dev.Name)
			continue
		}
		pattern := root.Devices[idx].Identifier.Pattern
		if root.Devices[idx].Identifier.Any {
			pattern = "*"
		}
		fmt.Fprintf(stdout, "   [MATCH] %s -> pattern %q\n", dev.PhysPath, pattern)
		fmt.Fprintf(stdout, "           Name: %s\n", dev.Name)
		if dev.Serial != "" {
			fmt.Fprintf(stdout, "           Serial: %s\n", dev.Serial)
		}
		matchedCount++
	}
	fmt.Fprintln(stdout)

	if len(unmatched) > 0 {
		fmt.Fprintln(stdout, "   Unmatched devices (will not be remapped):")
		for _, name := range unmatched {
			fmt.Fprintf(stdout, "   [SKIP]  %s\n", name)
		}
		fmt.Fprintln(stdout)
	}

	fmt.Fprintln(stdout, strings.Repeat("=", 60))
	if matchedCount > 0 {
		fmt.Fprintf(stdout, "RESULT: Configuration is valid. %d of %d device(s) matched.\n", matchedCount, len(devices))
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "Run 'keyrx run -config %s' to start remapping.\n", *configPath)
	} else {
		fmt.Fprintln(stdout, "WARNING: Configuration is valid, but no devices matched any pattern.")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Check your device patterns. Use 'keyrx list-devices' to see available devices.")
	}

	return exitSuccess
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: keyrx validate -config <file.krx>

Loads a profile and reports which connected devices each device pattern
matches, without starting the remapping engine.`)
}
