package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/internal/tasks"
	"github.com/desertthunder/clickupx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive task browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	team, err := requireArg(cmd, "team", client.Defaults().Team)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, f, err := shared.NewFileLogger(cmd.String("log-file"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer f.Close()
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	if client, err = r.api(); err != nil {
		return err
	}

	exporter := tasks.NewExporter(client, fileLogger)
	model := ui.NewModel(ctx, client, exporter, team, r.configExportOpts())
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return model.Err()
}
