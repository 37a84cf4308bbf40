package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/clickupx/internal/formatter"
	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/clickup"
	"github.com/urfave/cli/v3"
)

// ListGet shows a list.
func (r *Runner) ListGet(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	id, err := requireArg(cmd, "id", client.Defaults().List)
	if err != nil {
		return err
	}

	list, err := client.GetList(ctx, id)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, list, func() error {
		r.writePlainHeader(list.Name)
		r.writePlain("ID:       %s\n", list.ID)
		if list.Status != nil {
			r.writePlain("Status:   %s\n", list.Status.Status)
		}
		if list.Priority != nil {
			r.writePlain("Priority: %s\n", list.Priority.Priority)
		}
		if due := formatter.FormatTimestamp(list.DueDate); due != "" {
			r.writePlain("Due:      %s\n", due)
		}
		if list.TaskCount != "" {
			r.writePlain("Tasks:    %s\n", list.TaskCount)
		}
		if list.Content != "" {
			r.writePlainln("%s", list.Content)
		}
		return nil
	})
}

// ListFolder shows the lists inside a folder.
func (r *Runner) ListFolder(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "folder", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	lists, err := client.GetLists(ctx, id)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, lists, func() error { return r.printLists(fmt.Sprintf("Lists in folder %s", id), lists.Lists) })
}

// ListSpace shows the lists that sit directly in a space.
func (r *Runner) ListSpace(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	id, err := requireArg(cmd, "space", client.Defaults().Space)
	if err != nil {
		return err
	}

	lists, err := client.GetFolderlessLists(ctx, id)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, lists, func() error { return r.printLists(fmt.Sprintf("Folderless lists in space %s", id), lists.Lists) })
}

// ListCreate creates a list in --folder, or in --space when no folder is given.
func (r *Runner) ListCreate(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}

	folder, space := cmd.String("folder"), cmd.String("space")
	if folder != "" && space != "" {
		return fmt.Errorf("%w: cannot specify both --folder and --space", shared.ErrInvalidArgument)
	}
	if folder == "" && space == "" {
		space = client.Defaults().Space
	}
	if folder == "" && space == "" {
		return fmt.Errorf("%w: --folder or --space", shared.ErrMissingArgument)
	}

	req := clickup.ListRequest{
		Name:     cmd.String("name"),
		Content:  cmd.String("content"),
		DueDate:  cmd.String("due"),
		Priority: intFlag(cmd, "priority"),
		Status:   cmd.String("status"),
	}

	var list *clickup.List
	if folder != "" {
		list, err = client.CreateList(ctx, folder, req)
	} else {
		list, err = client.CreateFolderlessList(ctx, space, req)
	}
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, list, func() error {
		return r.writePlain("✓ Created list %s (%s)\n", list.Name, list.ID)
	})
}

// ListUpdate changes a list.
func (r *Runner) ListUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	list, err := client.UpdateList(ctx, id, clickup.UpdateListRequest{
		Name:        cmd.String("name"),
		Content:     cmd.String("content"),
		DueDate:     cmd.String("due"),
		Priority:    intFlag(cmd, "priority"),
		UnsetStatus: boolFlag(cmd, "unset-status"),
	})
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, list, func() error {
		return r.writePlain("✓ Updated list %s (%s)\n", list.Name, list.ID)
	})
}

// ListDelete deletes a list.
func (r *Runner) ListDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteList(ctx, id); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted list %s", id)
}

// ListAddTask adds a task to a list other than its home list.
func (r *Runner) ListAddTask(ctx context.Context, cmd *cli.Command) error {
	return r.listTask(ctx, cmd, true)
}

// ListRemoveTask removes a task from a list other than its home list.
func (r *Runner) ListRemoveTask(ctx context.Context, cmd *cli.Command) error {
	return r.listTask(ctx, cmd, false)
}

func (r *Runner) listTask(ctx context.Context, cmd *cli.Command, add bool) error {
	listID, err := requireArg(cmd, "list", "")
	if err != nil {
		return err
	}
	taskID, err := requireArg(cmd, "task", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if add {
		if err := client.AddTaskToList(ctx, taskID, listID); err != nil {
			return apiError(err)
		}
		return r.done(cmd, "Added task %s to list %s", taskID, listID)
	}

	if err := client.RemoveTaskFromList(ctx, taskID, listID); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Removed task %s from list %s", taskID, listID)
}

// FolderGet shows a folder and its lists.
func (r *Runner) FolderGet(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	folder, err := client.GetFolder(ctx, id)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, folder, func() error {
		return r.printLists(fmt.Sprintf("%s (%s)", folder.Name, folder.ID), folder.Lists)
	})
}

// FolderSpace shows the folders of a space.
func (r *Runner) FolderSpace(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	id, err := requireArg(cmd, "space", client.Defaults().Space)
	if err != nil {
		return err
	}

	folders, err := client.GetFolders(ctx, id)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, folders, func() error {
		r.writePlainHeader(fmt.Sprintf("Folders in space %s", id))
		if len(folders.Folders) == 0 {
			return r.writePlain("No folders found\n")
		}
		for i, f := range folders.Folders {
			r.writePlain("%3d. %s (%s), %d lists\n", i+1, f.Name, f.ID, len(f.Lists))
		}
		return nil
	})
}

// FolderCreate creates a folder in a space.
func (r *Runner) FolderCreate(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	space, err := requireArg(cmd, "space", client.Defaults().Space)
	if err != nil {
		return err
	}

	folder, err := client.CreateFolder(ctx, space, cmd.String("name"))
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, folder, func() error {
		return r.writePlain("✓ Created folder %s (%s)\n", folder.Name, folder.ID)
	})
}

// FolderUpdate renames a folder.
func (r *Runner) FolderUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	folder, err := client.UpdateFolder(ctx, id, cmd.String("name"))
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, folder, func() error {
		return r.writePlain("✓ Renamed folder %s to %s\n", folder.ID, folder.Name)
	})
}

// FolderDelete deletes a folder.
func (r *Runner) FolderDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteFolder(ctx, id); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted folder %s", id)
}

// SpaceGet shows a space.
func (r *Runner) SpaceGet(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	id, err := requireArg(cmd, "id", client.Defaults().Space)
	if err != nil {
		return err
	}

	space, err := client.GetSpace(ctx, id)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, space, func() error {
		r.writePlainHeader(space.Name)
		r.writePlain("ID:       %s\n", space.ID)
		r.writePlain("Private:  %t\n", space.Private)
		r.writePlain("Archived: %t\n", space.Archived)
		if len(space.Statuses) > 0 {
			r.writePlain("Statuses:\n")
			for _, s := range space.Statuses {
				r.writePlain("  - %s (%s)\n", s.Status, s.Type)
			}
		}
		return nil
	})
}

// SpaceTeam shows the spaces of a team.
func (r *Runner) SpaceTeam(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	team, err := requireArg(cmd, "team", client.Defaults().Team)
	if err != nil {
		return err
	}

	spaces, err := client.GetSpaces(ctx, team, cmd.Bool("archived"))
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, spaces, func() error {
		r.writePlainHeader(fmt.Sprintf("Spaces in team %s", team))
		if len(spaces.Spaces) == 0 {
			return r.writePlain("No spaces found\n")
		}
		for i, s := range spaces.Spaces {
			r.writePlain("%3d. %s (%s)\n", i+1, s.Name, s.ID)
		}
		return nil
	})
}

// SpaceCreate creates a space in a team.
func (r *Runner) SpaceCreate(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	team, err := requireArg(cmd, "team", client.Defaults().Team)
	if err != nil {
		return err
	}

	req := clickup.SpaceRequest{
		Name:              cmd.String("name"),
		MultipleAssignees: cmd.Bool("multiple-assignees"),
	}
	if cmd.Bool("all-features") {
		req.Features = clickup.AllFeatures()
	}

	space, err := client.CreateSpace(ctx, team, req)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, space, func() error {
		return r.writePlain("✓ Created space %s (%s)\n", space.Name, space.ID)
	})
}

// SpaceDelete deletes a space.
func (r *Runner) SpaceDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteSpace(ctx, id); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted space %s", id)
}

// TeamList shows the teams the token has access to.
func (r *Runner) TeamList(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}

	teams, err := client.GetTeams(ctx)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, teams, func() error {
		r.writePlainHeader("Teams")
		if len(teams.Teams) == 0 {
			return r.writePlain("No teams found\n")
		}
		for i, t := range teams.Teams {
			r.writePlain("%3d. %s (%s), %d members\n", i+1, t.Name, t.ID, len(t.Members))
		}
		return nil
	})
}

// Hierarchy shows what has been shared with the authorized user.
func (r *Runner) Hierarchy(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	team, err := requireArg(cmd, "team", client.Defaults().Team)
	if err != nil {
		return err
	}

	h, err := client.GetSharedHierarchy(ctx, team)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, h, func() error {
		r.writePlainHeader(fmt.Sprintf("Shared with you in team %s", team))
		r.writePlain("Tasks (%d)\n", len(h.Tasks))
		for _, id := range h.Tasks {
			r.writePlain("  - %s\n", id)
		}
		r.writePlain("Lists (%d)\n", len(h.Lists))
		for _, l := range h.Lists {
			r.writePlain("  - %s (%s)\n", l.Name, l.ID)
		}
		r.writePlain("Folders (%d)\n", len(h.Folders))
		for _, f := range h.Folders {
			r.writePlain("  - %s (%s)\n", f.Name, f.ID)
		}
		return nil
	})
}

// MemberTask shows who can access a task.
func (r *Runner) MemberTask(ctx context.Context, cmd *cli.Command) error {
	return r.members(ctx, cmd, "task")
}

// MemberList shows who can access a list.
func (r *Runner) MemberList(ctx context.Context, cmd *cli.Command) error {
	return r.members(ctx, cmd, "list")
}

func (r *Runner) members(ctx context.Context, cmd *cli.Command, kind string) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	var members *clickup.Members
	if kind == "task" {
		members, err = client.GetTaskMembers(ctx, id)
	} else {
		members, err = client.GetListMembers(ctx, id)
	}
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, members, func() error {
		r.writePlainHeader(fmt.Sprintf("Members of %s %s", kind, id))
		for i, m := range members.Members {
			r.writePlain("%3d. %s <%s> (%s)\n", i+1, m.Username, m.Email, m.ID)
		}
		return nil
	})
}

func (r *Runner) printLists(title string, lists []clickup.List) error {
	r.writePlainHeader(title)
	if len(lists) == 0 {
		return r.writePlain("No lists found\n")
	}
	for i, l := range lists {
		r.writePlain("%3d. %s (%s)", i+1, l.Name, l.ID)
		if l.TaskCount != "" {
			r.writePlain(", %s tasks", l.TaskCount)
		}
		r.writePlain("\n")
	}
	return nil
}
