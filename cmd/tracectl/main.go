// Command tracectl is the operator tool for a MindTrace database.
//
// Commands:
//
//	migrate up       apply pending schema migrations
//	migrate status   list migrations and whether they are applied
//	seed             insert starter traces from a YAML file
//	stats            print trace, reaction and translation counts
//	report           print the analytics report
//
// Output is JSON on stdout. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WeAreTheArtMakers/mindTrace/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cliApp := newCLIApp(os.Stdout, openBackend, app.Version)
	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tracectl: %v\n", err)
		stop()
		os.Exit(1)
	}
}
