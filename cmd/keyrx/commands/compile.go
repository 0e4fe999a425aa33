package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/dslc"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/krx"
)

// RunCompile runs the compile command: DSL source in, binary .krx profile
// out.
func RunCompile(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "", "output .krx file path (default: input path with .krx extension)")
	fs.Usage = func() { printCompileUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one input file is required")
		printCompileUsage(stderr)
		return exitConfig
	}
	input := fs.Arg(0)

	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(input, ".keyrx") + ".krx"
		if outPath == input {
			outPath = input + ".krx"
		}
	}

	root, err := dslc.Compile(dslc.RealFileSystem{}, input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: compilation failed: %v\n", err)
		return exitConfig
	}

	data, err := krx.Save(root)
	if err != nil {
		fmt.Fprintf(stderr, "Error: encoding profile: %v\n", err)
		return exitConfig
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintf(stderr, "Error: writing %s: %v\n", outPath, err)
		return exitRuntime
	}

	fmt.Fprintf(stdout, "compiled %s -> %s (%d devices, %d bytes)\n", input, outPath, len(root.Devices), len(data))
	return exitSuccess
}

func printCompileUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: keyrx compile [options] <input.keyrx>

Options:
  -o <path>   Output .krx file path (default: input with .krx extension)

Examples:
  keyrx compile laptop.keyrx
  keyrx compile -o /etc/keyrx/laptop.krx laptop.keyrx`)
}
