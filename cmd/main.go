package main

import (
	"context"
	"os"

	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	config.ApplyEnv()

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: defaultConfigPath,
		Logger:     logger,
	})

	app := newApp(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "clickupx",
		Usage:    "Work with ClickUp tasks, lists and spaces from the terminal",
		Version:  "0.3.0",
		Flags:    globalFlags(),
		Before:   r.Configure,
		Commands: r.register(),
	}
}
