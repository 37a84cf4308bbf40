package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/clickupx/internal/formatter"
	"github.com/desertthunder/clickupx/pkg/clickup"
	"github.com/urfave/cli/v3"
)

// GoalGet shows a goal.
func (r *Runner) GoalGet(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	goal, err := client.GetGoal(ctx, id)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, goal, func() error { return r.printGoal(goal) })
}

// GoalTeam shows the goals of a team.
func (r *Runner) GoalTeam(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	team, err := requireArg(cmd, "team", client.Defaults().Team)
	if err != nil {
		return err
	}

	goals, err := client.GetGoals(ctx, team, cmd.Bool("include-completed"))
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, goals, func() error {
		r.writePlainHeader(fmt.Sprintf("Goals in team %s", team))
		if len(goals.Goals) == 0 && len(goals.Folders) == 0 {
			return r.writePlain("No goals found\n")
		}
		for i, g := range goals.Goals {
			r.writePlain("%3d. %s (%s) %s%%\n", i+1, g.Name, g.ID, g.PercentCompleted)
		}
		for _, f := range goals.Folders {
			r.writePlain("\n%s/\n", f.Name)
			for _, g := range f.Goals {
				r.writePlain("     %s (%s) %s%%\n", g.Name, g.ID, g.PercentCompleted)
			}
		}
		return nil
	})
}

// GoalCreate creates a goal in a team.
func (r *Runner) GoalCreate(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	team, err := requireArg(cmd, "team", client.Defaults().Team)
	if err != nil {
		return err
	}
	owners, err := parseUserIDs(cmd.StringSlice("owner"))
	if err != nil {
		return err
	}

	goal, err := client.CreateGoal(ctx, team, clickup.GoalRequest{
		Name:           cmd.String("name"),
		DueDate:        cmd.String("due"),
		Description:    cmd.String("description"),
		MultipleOwners: len(owners) > 1,
		Owners:         owners,
		Color:          cmd.String("color"),
	})
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, goal, func() error {
		return r.writePlain("✓ Created goal %s (%s)\n", goal.Name, goal.ID)
	})
}

// GoalUpdate changes a goal.
func (r *Runner) GoalUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	add, err := parseUserIDs(cmd.StringSlice("add-owner"))
	if err != nil {
		return err
	}
	rem, err := parseUserIDs(cmd.StringSlice("remove-owner"))
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	goal, err := client.UpdateGoal(ctx, id, clickup.UpdateGoalRequest{
		Name:         cmd.String("name"),
		DueDate:      cmd.String("due"),
		Description:  cmd.String("description"),
		AddOwners:    add,
		RemoveOwners: rem,
		Color:        cmd.String("color"),
	})
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, goal, func() error {
		return r.writePlain("✓ Updated goal %s (%s)\n", goal.Name, goal.ID)
	})
}

// GoalDelete deletes a goal.
func (r *Runner) GoalDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteGoal(ctx, id); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted goal %s", id)
}

// TagSpace shows the tags of a space.
func (r *Runner) TagSpace(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	space, err := requireArg(cmd, "space", client.Defaults().Space)
	if err != nil {
		return err
	}

	tags, err := client.GetSpaceTags(ctx, space)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, tags, func() error {
		r.writePlainHeader(fmt.Sprintf("Tags in space %s", space))
		if len(tags.Tags) == 0 {
			return r.writePlain("No tags found\n")
		}
		for _, t := range tags.Tags {
			r.writePlain("  - %s\n", t.Name)
		}
		return nil
	})
}

// TagCreate creates a tag in a space.
func (r *Runner) TagCreate(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	space, err := requireArg(cmd, "space", client.Defaults().Space)
	if err != nil {
		return err
	}

	name := cmd.String("name")
	err = client.CreateSpaceTag(ctx, space, clickup.Tag{
		Name:  name,
		TagFg: cmd.String("fg"),
		TagBg: cmd.String("bg"),
	})
	if err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Created tag %s in space %s", name, space)
}

// TagAdd tags a task.
func (r *Runner) TagAdd(ctx context.Context, cmd *cli.Command) error {
	return r.tagTask(ctx, cmd, true)
}

// TagRemove untags a task.
func (r *Runner) TagRemove(ctx context.Context, cmd *cli.Command) error {
	return r.tagTask(ctx, cmd, false)
}

func (r *Runner) tagTask(ctx context.Context, cmd *cli.Command, add bool) error {
	task, err := requireArg(cmd, "task", "")
	if err != nil {
		return err
	}
	tag, err := requireArg(cmd, "tag", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if add {
		if err := client.TagTask(ctx, task, tag); err != nil {
			return apiError(err)
		}
		return r.done(cmd, "Tagged task %s with %s", task, tag)
	}

	if err := client.UntagTask(ctx, task, tag); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Removed tag %s from task %s", tag, task)
}

func (r *Runner) printGoal(g *clickup.Goal) error {
	r.writePlainHeader(g.Name)
	r.writePlain("ID:        %s\n", g.ID)
	r.writePlain("Progress:  %s%%\n", g.PercentCompleted)
	if due := formatter.FormatTimestamp(&g.DueDate); due != "" {
		r.writePlain("Due:       %s\n", due)
	}
	if len(g.Owners) > 0 {
		r.writePlain("Owners:   ")
		for _, o := range g.Owners {
			r.writePlain(" %s", o.Username)
		}
		r.writePlain("\n")
	}
	if g.PrettyURL != "" {
		r.writePlain("URL:       %s\n", g.PrettyURL)
	}
	if g.Description != "" {
		r.writePlainln("%s", g.Description)
	}
	return nil
}
