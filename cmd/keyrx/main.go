// Command keyrx compiles keyboard remapping profiles, runs the remapping
// engine against live input devices, and inspects .krx profile files.
//
// Usage:
//
//	keyrx <command> [options]
//
// Commands:
//
//	compile        Compile a DSL source file into a binary .krx profile
//	verify         Check a compiled profile's integrity
//	validate       Load a profile and report which devices it matches
//	run            Start the remapping engine
//	list-devices   List keyboard devices visible to the engine
//	test           Interactive REPL for exercising a profile without real hardware
//
// Examples:
//
//	keyrx compile -o laptop.krx laptop.keyrx
//	keyrx verify laptop.krx
//	keyrx run -config laptop.krx
package main

import (
	"fmt"
	"os"

	"github.com/RyosukeMondo/keyrx-sub002/cmd/keyrx/commands"
)

const (
	exitSuccess    = 0
	exitConfig     = 1
	exitPermission = 2
	exitRuntime    = 3
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitConfig)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "compile":
		exitCode = commands.RunCompile(args, os.Stdout, os.Stderr)
	case "verify":
		exitCode = commands.RunVerify(args, os.Stdout, os.Stderr)
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "run":
		exitCode = commands.RunRun(args, os.Stdout, os.Stderr)
	case "list-devices":
		exitCode = commands.RunListDevices(args, os.Stdout, os.Stderr)
	case "test":
		exitCode = commands.RunTest(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "-version", "--version", "version":
		fmt.Println(commands.VersionString())
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitConfig
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`keyrx - keyboard remapping engine

Usage:
  keyrx <command> [options]

Commands:
  compile        Compile a DSL source file into a binary .krx profile
  verify         Check a compiled .krx profile's integrity
  validate       Load a profile and report which devices it matches
  run            Start the remapping engine
  list-devices   List keyboard devices visible to the engine
  test           Interactive REPL for exercising a profile without real hardware

Options:
  -h, --help     Show this help message
  --version      Show version information

Examples:
  keyrx compile -o laptop.krx laptop.keyrx
  keyrx verify laptop.krx
  keyrx validate -config laptop.krx
  keyrx run -config laptop.krx
  keyrx list-devices

For command-specific help, run:
  keyrx <command> --help`)
}
