package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "scan":
		return scanCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  scan [flags] <file>")
	fmt.Fprintln(os.Stderr, "    tokenize a source file and print one line per token")
	fmt.Fprintln(os.Stderr, "    -no-color")
	fmt.Fprintln(os.Stderr, "      plain output without styling")
	fmt.Fprintln(os.Stderr, "    -stats")
	fmt.Fprintln(os.Stderr, "      print token counts per category after the stream")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    interactive token inspector")
	fmt.Fprintln(os.Stderr, "  help")
	fmt.Fprintln(os.Stderr, "    show this message")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
