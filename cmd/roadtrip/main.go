// Command roadtrip answers border-route and capital-distance questions
// between countries.
//
// Usage:
//
//	roadtrip [borders.txt] [capdist.csv] [state_name.tsv]
//	roadtrip path ESP DEU
//	roadtrip distance FRA ESP
//	roadtrip stats --dump
//	roadtrip reach FRA --crossings 2
//	roadtrip countries
//
// Without a sub-command roadtrip starts an interactive prompt on stdin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
