// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Run executes f with a development logger, exiting on error.
func Run(f func(ctx context.Context, lg *zap.Logger) error) {
	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()
	if err := f(context.Background(), lg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
