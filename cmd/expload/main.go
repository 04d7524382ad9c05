package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/qiyin-tech/expload/internal/cli"
	"github.com/qiyin-tech/expload/pkg/expload"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(expload.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(expload.ExitCodeForError(err))
	}
}
