package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/fuzzytime"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration to the --config path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := r.configPathOrDefault()
	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidConfig, err)
	}
	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Config written to %s\nSet clickup.token or run 'clickupx auth login'.\n", path)
}

// TimeUnix prints the Unix millisecond timestamp of a human date.
func (r *Runner) TimeUnix(ctx context.Context, cmd *cli.Command) error {
	text, err := joinedArgs(cmd)
	if err != nil {
		return err
	}

	ms, err := fuzzytime.ToUnix(text)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}
	return r.render(cmd, map[string]string{"input": text, "unix_ms": ms}, func() error {
		return r.writePlain("%s\n", ms)
	})
}

// TimeSeconds prints the number of seconds in a human duration.
func (r *Runner) TimeSeconds(ctx context.Context, cmd *cli.Command) error {
	text, err := joinedArgs(cmd)
	if err != nil {
		return err
	}

	resolver := fuzzytime.Default
	if cmd.Bool("lenient") {
		resolver = fuzzytime.New(fuzzytime.WithLenientDurations())
	}

	secs, err := resolver.ToSeconds(text)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}
	return r.render(cmd, map[string]string{"input": text, "seconds": secs}, func() error {
		return r.writePlain("%s\n", secs)
	})
}

// joinedArgs joins the positional arguments so unquoted phrases work.
func joinedArgs(cmd *cli.Command) (string, error) {
	text := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if text == "" {
		return "", fmt.Errorf("%w: text", shared.ErrMissingArgument)
	}
	return text, nil
}
