package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/krx"
)

// RunVerify runs the verify command: checks a .krx file's magic, version,
// hash, and structural validity, printing a per-check diagnostic.
func RunVerify(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printVerifyUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one .krx file is required")
		printVerifyUsage(stderr)
		return exitConfig
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "✗ could not read %s: %v\n", path, err)
		return exitConfig
	}

	root, err := krx.Load(data)
	if err != nil {
		printVerifyFailure(stdout, err)
		return exitConfig
	}

	fmt.Fprintln(stdout, "✓ magic bytes valid")
	fmt.Fprintf(stdout, "✓ version: %d\n", krx.Version)
	fmt.Fprintln(stdout, "✓ SHA256 hash matches")
	fmt.Fprintln(stdout, "✓ decoding successful")
	fmt.Fprintln(stdout, "✓ configuration valid")
	fmt.Fprintf(stdout, "  - devices: %d\n", len(root.Devices))

	totalMappings := 0
	for _, d := range root.Devices {
		totalMappings += len(d.Mappings)
	}
	fmt.Fprintf(stdout, "  - total mappings: %d\n", totalMappings)

	fmt.Fprintln(stdout, "\nmetadata:")
	fmt.Fprintf(stdout, "  - compiler version: %s\n", root.Metadata.CompilerVersion)
	fmt.Fprintf(stdout, "  - source hash (SHA256): %x\n", root.Metadata.SourceHash)
	fmt.Fprintf(stdout, "  - compilation timestamp: %d\n", root.Metadata.CompilationTimestamp)

	fmt.Fprintln(stdout, "\n✓ verification passed")
	return exitSuccess
}

func printVerifyFailure(w io.Writer, err error) {
	var de *krx.DeserializeError
	if !errors.As(err, &de) {
		fmt.Fprintf(w, "✗ verification failed: %v\n", err)
		return
	}

	switch de.Kind {
	case krx.ErrInvalidMagic:
		fmt.Fprintln(w, "✗ magic bytes invalid")
		fmt.Fprintf(w, "  expected: %x\n", de.Expected)
		fmt.Fprintf(w, "  got:      %x\n", de.Got)
	case krx.ErrVersionMismatch:
		fmt.Fprintln(w, "✗ version mismatch")
		fmt.Fprintf(w, "  %s\n", de.Message)
	case krx.ErrHashMismatch:
		fmt.Fprintln(w, "✗ SHA256 hash mismatch (data corruption)")
		fmt.Fprintf(w, "  expected: %x\n", de.Expected)
		fmt.Fprintf(w, "  computed: %x\n", de.Got)
	case krx.ErrDecode:
		fmt.Fprintln(w, "✗ decoding failed")
		fmt.Fprintf(w, "  %s\n", de.Message)
	case krx.ErrStructural:
		fmt.Fprintln(w, "✗ structural validation failed")
		fmt.Fprintf(w, "  %s\n", de.Message)
	case krx.ErrIO:
		fmt.Fprintln(w, "✗ I/O error")
		fmt.Fprintf(w, "  %s\n", de.Message)
	}
	fmt.Fprintf(w, "\n✗ verification failed: %v\n", de)
}

func printVerifyUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: keyrx verify <file.krx>

Checks the file's magic bytes, format version, content hash, and decoded
structure, printing a per-check diagnostic.`)
}
