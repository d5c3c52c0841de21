// Command taskgo is the CLI entrypoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fvilers/taskgo/cmd"
	"github.com/fvilers/taskgo/internal/task"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Run the CLI
	if err := cmd.Run(ctx, os.Args[1:]); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(os.Stderr, "\nInterrupted\n")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error categories to distinct exit codes: 2 for invalid
// input, 3 for unknown task ids, 4 for storage failures, 1 otherwise.
func exitCode(err error) int {
	var validationErr *task.ValidationError
	var storageErr *task.StorageError
	switch {
	case errors.As(err, &validationErr):
		return 2
	case errors.Is(err, task.ErrNotFound):
		return 3
	case errors.As(err, &storageErr):
		return 4
	}
	return 1
}
