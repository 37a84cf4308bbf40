package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/clickup"
	"github.com/urfave/cli/v3"
)

// CommentTask shows the comments on a task.
func (r *Runner) CommentTask(ctx context.Context, cmd *cli.Command) error {
	return r.comments(ctx, cmd, "task")
}

// CommentList shows the comments on a list.
func (r *Runner) CommentList(ctx context.Context, cmd *cli.Command) error {
	return r.comments(ctx, cmd, "list")
}

// CommentView shows the comments of a chat view.
func (r *Runner) CommentView(ctx context.Context, cmd *cli.Command) error {
	return r.comments(ctx, cmd, "view")
}

func (r *Runner) comments(ctx context.Context, cmd *cli.Command, kind string) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	var comments *clickup.Comments
	switch kind {
	case "task":
		comments, err = client.GetTaskComments(ctx, id)
	case "list":
		comments, err = client.GetListComments(ctx, id)
	default:
		comments, err = client.GetChatComments(ctx, id)
	}
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, comments, func() error {
		r.writePlainHeader(fmt.Sprintf("Comments on %s %s", kind, id))
		if len(comments.Comments) == 0 {
			return r.writePlain("No comments\n")
		}
		for _, c := range comments.Comments {
			mark := ""
			if c.Resolved {
				mark = " ✓"
			}
			r.writePlain("%s  %s (%s)%s\n", formatCommentDate(c.Date), c.User.Username, c.ID, mark)
			r.writePlain("  %s\n\n", c.CommentText)
		}
		return nil
	})
}

// CommentAdd comments on --task or --view.
func (r *Runner) CommentAdd(ctx context.Context, cmd *cli.Command) error {
	task, view := cmd.String("task"), cmd.String("view")
	if task == "" && view == "" {
		return fmt.Errorf("%w: --task or --view", shared.ErrMissingArgument)
	}
	if task != "" && view != "" {
		return fmt.Errorf("%w: cannot specify both --task and --view", shared.ErrInvalidArgument)
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	req := clickup.CommentRequest{
		CommentText: cmd.String("text"),
		Assignee:    int(cmd.Int("assignee")),
		NotifyAll:   cmd.Bool("notify-all"),
	}

	var created *clickup.CommentCreated
	if task != "" {
		created, err = client.CreateTaskComment(ctx, task, req)
	} else {
		created, err = client.CreateChatComment(ctx, view, req)
	}
	if err != nil {
		return apiError(err)
	}

	return r.render(cmd, created, func() error {
		return r.writePlain("✓ Posted comment %s\n", created.ID)
	})
}

// CommentUpdate edits a comment.
func (r *Runner) CommentUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	err = client.UpdateComment(ctx, id, clickup.UpdateCommentRequest{
		CommentText: cmd.String("text"),
		Assignee:    int(cmd.Int("assignee")),
		Resolved:    boolFlag(cmd, "resolved"),
	})
	if err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Updated comment %s", id)
}

// CommentDelete deletes a comment.
func (r *Runner) CommentDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteComment(ctx, id); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted comment %s", id)
}

// ChecklistCreate adds a checklist to a task.
func (r *Runner) ChecklistCreate(ctx context.Context, cmd *cli.Command) error {
	task, err := requireArg(cmd, "task", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	checklist, err := client.CreateChecklist(ctx, task, cmd.String("name"))
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, checklist, func() error { return r.printChecklist(checklist) })
}

// ChecklistUpdate renames or moves a checklist.
func (r *Runner) ChecklistUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	name, position := cmd.String("name"), intFlag(cmd, "position")
	if name == "" && position == nil {
		return fmt.Errorf("%w: --name or --position", shared.ErrMissingArgument)
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.UpdateChecklist(ctx, id, name, position); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Updated checklist %s", id)
}

// ChecklistDelete deletes a checklist.
func (r *Runner) ChecklistDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteChecklist(ctx, id); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted checklist %s", id)
}

// ChecklistItemAdd adds an item to a checklist.
func (r *Runner) ChecklistItemAdd(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "checklist", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	checklist, err := client.CreateChecklistItem(ctx, id, cmd.String("name"), intFlag(cmd, "assignee"))
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, checklist, func() error { return r.printChecklist(checklist) })
}

// ChecklistItemUpdate changes a checklist item.
func (r *Runner) ChecklistItemUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "checklist", "")
	if err != nil {
		return err
	}
	item, err := requireArg(cmd, "item", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	req := clickup.ChecklistItemRequest{
		Name:     cmd.String("name"),
		Assignee: intFlag(cmd, "assignee"),
		Resolved: boolFlag(cmd, "resolved"),
	}
	if cmd.IsSet("parent") {
		parent := cmd.String("parent")
		req.Parent = &parent
	}

	checklist, err := client.UpdateChecklistItem(ctx, id, item, req)
	if err != nil {
		return apiError(err)
	}
	return r.render(cmd, checklist, func() error { return r.printChecklist(checklist) })
}

// ChecklistItemDelete deletes a checklist item.
func (r *Runner) ChecklistItemDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "checklist", "")
	if err != nil {
		return err
	}
	item, err := requireArg(cmd, "item", "")
	if err != nil {
		return err
	}
	client, err := r.api()
	if err != nil {
		return err
	}

	if err := client.DeleteChecklistItem(ctx, id, item); err != nil {
		return apiError(err)
	}
	return r.done(cmd, "Deleted item %s from checklist %s", item, id)
}

func (r *Runner) printChecklist(c *clickup.Checklist) error {
	r.writePlainHeader(fmt.Sprintf("%s (%s)", c.Name, c.ID))
	if len(c.Items) == 0 {
		return r.writePlain("No items\n")
	}
	for _, item := range c.Items {
		mark := " "
		if item.Resolved {
			mark = "x"
		}
		r.writePlain("[%s] %s (%s)\n", mark, item.Name, item.ID)
	}
	return nil
}

// formatCommentDate renders the Unix millisecond comment date in local time.
func formatCommentDate(ms string) string {
	n, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return ms
	}
	return time.UnixMilli(n).Format("2006-01-02 15:04")
}
