// Command migrate applies, rolls back, or reports schema migrations.
package main

import (
	"context"
	"fmt"
	"os"

	"quizapi/internal/config"
	"quizapi/internal/migrations"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate <up|down|status>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "up":
		err = migrations.Up(ctx, cfg.DatabaseURL)
	case "down":
		err = migrations.Down(ctx, cfg.DatabaseURL)
	case "status":
		err = migrations.Status(ctx, cfg.DatabaseURL)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}
