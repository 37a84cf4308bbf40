package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/clickup"
	"github.com/urfave/cli/v3"
)

// TimerRange shows the time entries between --start and --end.
func (r *Runner) TimerRange(ctx context.Context, cmd *cli.Command) error {
	client, team, err := r.timerTeam(cmd)
	if err != nil {
		return err
	}

	entries, err := client.GetTimeEntriesInRange(ctx, team, cmd.String("start"), cmd.String("end"), cmd.StringSlice("assignee"))
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, entries, func() error {
		r.writePlainHeader(fmt.Sprintf("Time entries in team %s", team))
		if len(entries.Data) == 0 {
			return r.writePlain("No time entries\n")
		}
		var total time.Duration
		for _, e := range entries.Data {
			r.printTimeEntry(e)
			if d, err := strconv.ParseInt(e.Duration, 10, 64); err == nil && d > 0 {
				total += time.Duration(d) * time.Millisecond
			}
		}
		return r.writePlain("\nTotal: %s\n", total.Round(time.Minute))
	})
}

// TimerGet shows a time entry.
func (r *Runner) TimerGet(ctx context.Context, cmd *cli.Command) error {
	timer, err := requireArg(cmd, "timer", "")
	if err != nil {
		return err
	}
	client, team, err := r.timerTeam(cmd)
	if err != nil {
		return err
	}

	entry, err := client.GetTimeEntry(ctx, team, timer)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, entry, func() error { return r.printTimeEntry(*entry) })
}

// TimerStart starts a timer.
func (r *Runner) TimerStart(ctx context.Context, cmd *cli.Command) error {
	timer, err := requireArg(cmd, "timer", "")
	if err != nil {
		return err
	}
	client, team, err := r.timerTeam(cmd)
	if err != nil {
		return err
	}

	entry, err := client.StartTimer(ctx, team, timer)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, entry, func() error {
		return r.writePlain("✓ Timer %s started\n", entry.ID)
	})
}

// TimerStop stops the running timer.
func (r *Runner) TimerStop(ctx context.Context, cmd *cli.Command) error {
	client, team, err := r.timerTeam(cmd)
	if err != nil {
		return err
	}

	entry, err := client.StopTimer(ctx, team)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, entry, func() error {
		return r.writePlain("✓ Timer %s stopped after %s\n", entry.ID, formatEntryDuration(entry.Duration))
	})
}

func (r *Runner) timerTeam(cmd *cli.Command) (*clickup.Client, string, error) {
	client, err := r.api()
	if err != nil {
		return nil, "", err
	}
	team := strings.TrimSpace(cmd.String("team"))
	if team == "" {
		team = client.Defaults().Team
	}
	if team == "" {
		return nil, "", fmt.Errorf("%w: --team", shared.ErrMissingArgument)
	}
	return client, team, nil
}

func (r *Runner) printTimeEntry(e clickup.TimeEntry) error {
	task := "-"
	if e.Task != nil {
		task = e.Task.Name
	}
	return r.writePlain("%s  %-8s %s  %s %s\n", formatCommentDate(e.Start), formatEntryDuration(e.Duration), e.User.Username, task, e.Description)
}

// formatEntryDuration renders a millisecond duration string; negative values mean the timer is running.
func formatEntryDuration(ms string) string {
	d, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return ms
	}
	if d < 0 {
		return "running"
	}
	return (time.Duration(d) * time.Millisecond).Round(time.Second).String()
}
