package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/clickupx/internal/formatter"
	"github.com/desertthunder/clickupx/internal/models"
	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/clickup"
	"github.com/urfave/cli/v3"
)

// TaskGet shows a single task.
func (r *Runner) TaskGet(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	task, err := client.GetTask(ctx, id)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, task, func() error { return r.printTask(*task) })
}

// TaskList shows a page of the tasks in a list.
func (r *Runner) TaskList(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	listID, err := requireArg(cmd, "list", client.Defaults().List)
	if err != nil {
		return err
	}

	q, err := taskQuery(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("listing tasks", "list", listID, "page", q.Page)
	tasks, err := client.GetTasks(ctx, listID, q)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, tasks, func() error { return r.printTasks(fmt.Sprintf("Tasks in list %s", listID), tasks) })
}

// TaskTeam shows a page of tasks across a team.
func (r *Runner) TaskTeam(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	teamID, err := requireArg(cmd, "team", client.Defaults().Team)
	if err != nil {
		return err
	}

	q, err := taskQuery(cmd)
	if err != nil {
		return err
	}
	q.SpaceIDs = cmd.StringSlice("space")
	q.ProjectIDs = cmd.StringSlice("project")
	q.ListIDs = cmd.StringSlice("list")

	r.logger.Info("listing team tasks", "team", teamID, "page", q.Page)
	tasks, err := client.GetTeamTasks(ctx, teamID, q)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, tasks, func() error { return r.printTasks(fmt.Sprintf("Tasks in team %s", teamID), tasks) })
}

// TaskCreate creates a task in a list.
func (r *Runner) TaskCreate(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}
	listID, err := requireArg(cmd, "list", client.Defaults().List)
	if err != nil {
		return err
	}

	assignees, err := parseUserIDs(cmd.StringSlice("assignee"))
	if err != nil {
		return err
	}

	req := clickup.CreateTaskRequest{
		Name:         cmd.String("name"),
		Description:  cmd.String("description"),
		Status:       cmd.String("status"),
		Priority:     intFlag(cmd, "priority"),
		DueDate:      cmd.String("due"),
		StartDate:    cmd.String("start"),
		TimeEstimate: cmd.String("estimate"),
		Assignees:    assignees,
		Tags:         cmd.StringSlice("tag"),
		Parent:       cmd.String("parent"),
	}

	task, err := client.CreateTask(ctx, listID, req)
	if err != nil {
		return apiError(err)
	}
	r.logger.Info("task created", "id", task.ID, "list", listID)

	return r.render(cmd, task, func() error {
		return r.writePlain("✓ Created task %s (%s)\n%s\n", task.Name, task.ID, task.URL)
	})
}

// TaskUpdate changes a task. Only flags that were set are sent.
func (r *Runner) TaskUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	add, err := parseUserIDs(cmd.StringSlice("add-assignee"))
	if err != nil {
		return err
	}
	rem, err := parseUserIDs(cmd.StringSlice("remove-assignee"))
	if err != nil {
		return err
	}

	req := clickup.UpdateTaskRequest{
		Name:            cmd.String("name"),
		Description:     cmd.String("description"),
		Status:          cmd.String("status"),
		Priority:        intFlag(cmd, "priority"),
		DueDate:         cmd.String("due"),
		StartDate:       cmd.String("start"),
		TimeEstimate:    cmd.String("estimate"),
		Archived:        boolFlag(cmd, "archived"),
		AddAssignees:    add,
		RemoveAssignees: rem,
	}

	task, err := client.UpdateTask(ctx, id, req)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, task, func() error {
		return r.writePlain("✓ Updated task %s (%s)\n", task.Name, task.ID)
	})
}

// TaskDelete deletes a task.
func (r *Runner) TaskDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteTask(ctx, id); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted task %s", id)
}

// TaskAttach uploads a local file to a task.
func (r *Runner) TaskAttach(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	path, err := requireArg(cmd, "path", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	r.logger.Info("uploading attachment", "task", id, "path", path)
	attachment, err := client.UploadAttachment(ctx, id, path)
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, attachment, func() error {
		return r.writePlain("✓ Attached %s\n%s\n", attachment.Title, attachment.URL)
	})
}

// taskQuery builds a [clickup.TaskQuery] from the shared task listing flags.
func taskQuery(cmd *cli.Command) (clickup.TaskQuery, error) {
	page := int(cmd.Int("page"))
	if page < 0 {
		return clickup.TaskQuery{}, fmt.Errorf("%w: --page must not be negative", shared.ErrInvalidFlag)
	}

	return clickup.TaskQuery{
		Page:          page,
		OrderBy:       cmd.String("order-by"),
		Reverse:       cmd.Bool("reverse"),
		Subtasks:      cmd.Bool("subtasks"),
		IncludeClosed: cmd.Bool("include-closed"),
		Archived:      cmd.Bool("archived"),
		Statuses:      cmd.StringSlice("status"),
		Assignees:     cmd.StringSlice("assignee"),
		Tags:          cmd.StringSlice("tag"),
		DueDateGt:     cmd.String("due-after"),
		DueDateLt:     cmd.String("due-before"),
		DateCreatedGt: cmd.String("created-after"),
		DateCreatedLt: cmd.String("created-before"),
		DateUpdatedGt: cmd.String("updated-after"),
		DateUpdatedLt: cmd.String("updated-before"),
	}, nil
}

// intFlag returns nil for an int flag that was not set.
func intFlag(cmd *cli.Command, name string) *int {
	if !cmd.IsSet(name) {
		return nil
	}
	v := int(cmd.Int(name))
	return &v
}

// boolFlag returns nil for a bool flag that was not set.
func boolFlag(cmd *cli.Command, name string) *bool {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Bool(name)
	return &v
}

// parseUserIDs converts user id flags, allowing comma separated values.
func parseUserIDs(values []string) ([]int, error) {
	ids := []int{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: user id %q is not a number", shared.ErrInvalidFlag, part)
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}

func (r *Runner) printTask(t clickup.Task) error {
	r.writePlainHeader(t.Name)
	r.writePlain("ID:        %s\n", t.ID)
	r.writePlain("Status:    %s\n", t.Status.Status)
	if p := formatter.PriorityName(t); p != "" {
		r.writePlain("Priority:  %s\n", p)
	}
	if a := formatter.Assignees(t); a != "" {
		r.writePlain("Assignees: %s\n", a)
	}
	if tags := formatter.TagNames(t); tags != "" {
		r.writePlain("Tags:      %s\n", tags)
	}
	if due := formatter.FormatTimestamp(t.DueDate); due != "" {
		r.writePlain("Due:       %s\n", due)
	}
	if est := formatter.FormatEstimate(t.TimeEstimate); est != "" {
		r.writePlain("Estimate:  %s\n", est)
	}
	if t.List.Name != "" {
		r.writePlain("List:      %s\n", t.List.Name)
	}
	if t.URL != "" {
		r.writePlain("URL:       %s\n", t.URL)
	}
	if t.TextContent != "" {
		r.writePlainln("%s", t.TextContent)
	}
	return nil
}

func (r *Runner) printTasks(title string, tasks *clickup.Tasks) error {
	r.writePlainHeader(title)
	if len(tasks.Tasks) == 0 {
		return r.writePlain("No tasks found\n")
	}

	for i, t := range tasks.Tasks {
		mark := " "
		if models.IsClosed(t) {
			mark = "x"
		}
		r.writePlain("%3d. [%s] %s (%s) %s\n", i+1, mark, t.Name, t.ID, t.Status.Status)
	}

	r.writePlain("\n%d tasks", len(tasks.Tasks))
	if !tasks.LastPage {
		r.writePlain(", more on the next page")
	}
	return r.writePlain("\n")
}
