// submodule cmd contains command definitions
package main

import (
	"time"

	"github.com/urfave/cli/v3"
)

func idArg(name string) []cli.Argument {
	return []cli.Argument{&cli.StringArg{Name: name}}
}

func nameFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "name",
		Aliases:  []string{"n"},
		Usage:    "Name",
		Required: required,
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write an example config.toml to the --config path",
				Action: r.ConfigInit,
			},
		},
	}
}

// authCommand handles authentication
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authenticate with ClickUp",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authorize through the OAuth app in [oauth] and save the access token",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-browser",
						Usage: "Print the authorization URL instead of opening a browser",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "How long to wait for the callback",
						Value: 2 * time.Minute,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show the user the configured token belongs to",
				Action: r.AuthStatus,
			},
		},
	}
}

// timeCommand exposes the date and duration normalizer
func timeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "time",
		Usage: "Convert human dates and durations",
		Commands: []*cli.Command{
			{
				Name:      "unix",
				Usage:     "Convert a date such as \"march 2 2021\" to Unix milliseconds",
				ArgsUsage: "<text>",
				Action:    r.TimeUnix,
			},
			{
				Name:      "seconds",
				Usage:     "Convert a duration such as \"36 hours\" to seconds",
				ArgsUsage: "<text>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "lenient",
						Usage: "Treat unparsable durations as zero",
					},
				},
				Action: r.TimeSeconds,
			},
		},
	}
}

func taskQueryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "Page number, starting at 0"},
		&cli.StringFlag{Name: "order-by", Usage: "id, created, updated or due_date"},
		&cli.BoolFlag{Name: "reverse", Usage: "Reverse the order"},
		&cli.BoolFlag{Name: "subtasks", Usage: "Include subtasks"},
		&cli.BoolFlag{Name: "include-closed", Usage: "Include closed tasks"},
		&cli.BoolFlag{Name: "archived", Usage: "Include archived tasks"},
		&cli.StringSliceFlag{Name: "status", Usage: "Filter by status (repeatable)"},
		&cli.StringSliceFlag{Name: "assignee", Usage: "Filter by assignee id (repeatable)"},
		&cli.StringSliceFlag{Name: "tag", Usage: "Filter by tag (repeatable)"},
		&cli.StringFlag{Name: "due-after", Usage: "Due after a date"},
		&cli.StringFlag{Name: "due-before", Usage: "Due before a date"},
		&cli.StringFlag{Name: "created-after", Usage: "Created after a date"},
		&cli.StringFlag{Name: "created-before", Usage: "Created before a date"},
		&cli.StringFlag{Name: "updated-after", Usage: "Updated after a date"},
		&cli.StringFlag{Name: "updated-before", Usage: "Updated before a date"},
	}
}

// taskCommand handles task operations
func taskCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Task operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show a task",
				Arguments: idArg("id"),
				Action:    r.TaskGet,
			},
			{
				Name:      "list",
				Usage:     "List the tasks of a list (defaults to clickup.default_list)",
				Arguments: idArg("list"),
				Flags:     taskQueryFlags(),
				Action:    r.TaskList,
			},
			{
				Name:      "team",
				Usage:     "List tasks across a team (defaults to clickup.default_team)",
				Arguments: idArg("team"),
				Flags: append(taskQueryFlags(),
					&cli.StringSliceFlag{Name: "space", Usage: "Filter by space id (repeatable)"},
					&cli.StringSliceFlag{Name: "project", Usage: "Filter by folder id (repeatable)"},
					&cli.StringSliceFlag{Name: "list", Usage: "Filter by list id (repeatable)"},
				),
				Action: r.TaskTeam,
			},
			{
				Name:      "create",
				Usage:     "Create a task in a list (defaults to clickup.default_list)",
				Arguments: idArg("list"),
				Flags: []cli.Flag{
					nameFlag(true),
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Description"},
					&cli.StringFlag{Name: "status", Usage: "Status"},
					&cli.IntFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Priority, 1 (urgent) to 4 (low)"},
					&cli.StringFlag{Name: "due", Usage: "Due date, e.g. \"next friday\" or Unix ms"},
					&cli.StringFlag{Name: "start", Usage: "Start date"},
					&cli.StringFlag{Name: "estimate", Usage: "Time estimate, e.g. \"3 hours\""},
					&cli.StringSliceFlag{Name: "assignee", Usage: "Assignee user id (repeatable)"},
					&cli.StringSliceFlag{Name: "tag", Usage: "Tag name (repeatable)"},
					&cli.StringFlag{Name: "parent", Usage: "Parent task id"},
				},
				Action: r.TaskCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a task",
				Arguments: idArg("id"),
				Flags: []cli.Flag{
					nameFlag(false),
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Description"},
					&cli.StringFlag{Name: "status", Usage: "Status"},
					&cli.IntFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Priority, 1 (urgent) to 4 (low)"},
					&cli.StringFlag{Name: "due", Usage: "Due date"},
					&cli.StringFlag{Name: "start", Usage: "Start date"},
					&cli.StringFlag{Name: "estimate", Usage: "Time estimate"},
					&cli.StringSliceFlag{Name: "add-assignee", Usage: "User id to assign (repeatable)"},
					&cli.StringSliceFlag{Name: "remove-assignee", Usage: "User id to unassign (repeatable)"},
					&cli.BoolFlag{Name: "archived", Usage: "Archive or unarchive the task"},
				},
				Action: r.TaskUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a task",
				Arguments: idArg("id"),
				Action:    r.TaskDelete,
			},
			{
				Name:  "attach",
				Usage: "Upload a file to a task",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "path"},
				},
				Action: r.TaskAttach,
			},
		},
	}
}

// listCommand handles list operations
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "List operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show a list",
				Arguments: idArg("id"),
				Action:    r.ListGet,
			},
			{
				Name:      "folder",
				Usage:     "Show the lists of a folder",
				Arguments: idArg("folder"),
				Action:    r.ListFolder,
			},
			{
				Name:      "space",
				Usage:     "Show the folderless lists of a space (defaults to clickup.default_space)",
				Arguments: idArg("space"),
				Action:    r.ListSpace,
			},
			{
				Name:  "create",
				Usage: "Create a list in a folder, or directly in a space",
				Flags: []cli.Flag{
					nameFlag(true),
					&cli.StringFlag{Name: "folder", Usage: "Folder id"},
					&cli.StringFlag{Name: "space", Usage: "Space id, for a folderless list"},
					&cli.StringFlag{Name: "content", Usage: "Description"},
					&cli.StringFlag{Name: "due", Usage: "Due date"},
					&cli.IntFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Priority, 1 (urgent) to 4 (low)"},
					&cli.StringFlag{Name: "status", Usage: "Status"},
				},
				Action: r.ListCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a list",
				Arguments: idArg("id"),
				Flags: []cli.Flag{
					nameFlag(false),
					&cli.StringFlag{Name: "content", Usage: "Description"},
					&cli.StringFlag{Name: "due", Usage: "Due date"},
					&cli.IntFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Priority, 1 (urgent) to 4 (low)"},
					&cli.BoolFlag{Name: "unset-status", Usage: "Clear the list status"},
				},
				Action: r.ListUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a list",
				Arguments: idArg("id"),
				Action:    r.ListDelete,
			},
			{
				Name:  "add-task",
				Usage: "Add a task to an additional list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "list"},
					&cli.StringArg{Name: "task"},
				},
				Action: r.ListAddTask,
			},
			{
				Name:  "remove-task",
				Usage: "Remove a task from an additional list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "list"},
					&cli.StringArg{Name: "task"},
				},
				Action: r.ListRemoveTask,
			},
		},
	}
}

// folderCommand handles folder operations
func folderCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "folder",
		Usage: "Folder operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show a folder",
				Arguments: idArg("id"),
				Action:    r.FolderGet,
			},
			{
				Name:      "space",
				Usage:     "Show the folders of a space (defaults to clickup.default_space)",
				Arguments: idArg("space"),
				Action:    r.FolderSpace,
			},
			{
				Name:      "create",
				Usage:     "Create a folder in a space (defaults to clickup.default_space)",
				Arguments: idArg("space"),
				Flags:     []cli.Flag{nameFlag(true)},
				Action:    r.FolderCreate,
			},
			{
				Name:      "update",
				Usage:     "Rename a folder",
				Arguments: idArg("id"),
				Flags:     []cli.Flag{nameFlag(true)},
				Action:    r.FolderUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a folder",
				Arguments: idArg("id"),
				Action:    r.FolderDelete,
			},
		},
	}
}

// spaceCommand handles space operations
func spaceCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "space",
		Usage: "Space operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show a space",
				Arguments: idArg("id"),
				Action:    r.SpaceGet,
			},
			{
				Name:      "team",
				Usage:     "Show the spaces of a team (defaults to clickup.default_team)",
				Arguments: idArg("team"),
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "archived", Usage: "Include archived spaces"},
				},
				Action: r.SpaceTeam,
			},
			{
				Name:      "create",
				Usage:     "Create a space in a team (defaults to clickup.default_team)",
				Arguments: idArg("team"),
				Flags: []cli.Flag{
					nameFlag(true),
					&cli.BoolFlag{Name: "multiple-assignees", Usage: "Allow several assignees per task"},
					&cli.BoolFlag{Name: "all-features", Usage: "Enable every ClickApp", Value: true},
				},
				Action: r.SpaceCreate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a space",
				Arguments: idArg("id"),
				Action:    r.SpaceDelete,
			},
		},
	}
}

// commentCommand handles comment operations
func commentCommand(r *Runner) *cli.Command {
	textFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "text", Aliases: []string{"m"}, Usage: "Comment text", Required: true}
	}

	return &cli.Command{
		Name:  "comment",
		Usage: "Comment operations",
		Commands: []*cli.Command{
			{
				Name:      "task",
				Usage:     "Show the comments on a task",
				Arguments: idArg("id"),
				Action:    r.CommentTask,
			},
			{
				Name:      "list",
				Usage:     "Show the comments on a list",
				Arguments: idArg("id"),
				Action:    r.CommentList,
			},
			{
				Name:      "view",
				Usage:     "Show the comments of a chat view",
				Arguments: idArg("id"),
				Action:    r.CommentView,
			},
			{
				Name:  "add",
				Usage: "Comment on a task or chat view",
				Flags: []cli.Flag{
					textFlag(),
					&cli.StringFlag{Name: "task", Usage: "Task id"},
					&cli.StringFlag{Name: "view", Usage: "Chat view id"},
					&cli.IntFlag{Name: "assignee", Usage: "User id to assign the comment to"},
					&cli.BoolFlag{Name: "notify-all", Usage: "Notify everyone on the task"},
				},
				Action: r.CommentAdd,
			},
			{
				Name:      "update",
				Usage:     "Edit a comment",
				Arguments: idArg("id"),
				Flags: []cli.Flag{
					textFlag(),
					&cli.IntFlag{Name: "assignee", Usage: "User id to assign the comment to"},
					&cli.BoolFlag{Name: "resolved", Usage: "Mark the comment resolved"},
				},
				Action: r.CommentUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a comment",
				Arguments: idArg("id"),
				Action:    r.CommentDelete,
			},
		},
	}
}

// checklistCommand handles checklist operations
func checklistCommand(r *Runner) *cli.Command {
	itemArgs := func() []cli.Argument {
		return []cli.Argument{&cli.StringArg{Name: "checklist"}, &cli.StringArg{Name: "item"}}
	}

	return &cli.Command{
		Name:  "checklist",
		Usage: "Checklist operations",
		Commands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Add a checklist to a task",
				Arguments: idArg("task"),
				Flags:     []cli.Flag{nameFlag(true)},
				Action:    r.ChecklistCreate,
			},
			{
				Name:      "update",
				Usage:     "Rename or move a checklist",
				Arguments: idArg("id"),
				Flags: []cli.Flag{
					nameFlag(false),
					&cli.IntFlag{Name: "position", Usage: "Position on the task, starting at 0"},
				},
				Action: r.ChecklistUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a checklist",
				Arguments: idArg("id"),
				Action:    r.ChecklistDelete,
			},
			{
				Name:      "item-add",
				Usage:     "Add an item to a checklist",
				Arguments: idArg("checklist"),
				Flags: []cli.Flag{
					nameFlag(true),
					&cli.IntFlag{Name: "assignee", Usage: "User id"},
				},
				Action: r.ChecklistItemAdd,
			},
			{
				Name:      "item-update",
				Usage:     "Update a checklist item",
				Arguments: itemArgs(),
				Flags: []cli.Flag{
					nameFlag(false),
					&cli.IntFlag{Name: "assignee", Usage: "User id"},
					&cli.BoolFlag{Name: "resolved", Usage: "Mark the item resolved"},
					&cli.StringFlag{Name: "parent", Usage: "Nest under another item"},
				},
				Action: r.ChecklistItemUpdate,
			},
			{
				Name:      "item-delete",
				Usage:     "Delete a checklist item",
				Arguments: itemArgs(),
				Action:    r.ChecklistItemDelete,
			},
		},
	}
}

// goalCommand handles goal operations
func goalCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "goal",
		Usage: "Goal operations",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show a goal",
				Arguments: idArg("id"),
				Action:    r.GoalGet,
			},
			{
				Name:      "team",
				Usage:     "Show the goals of a team (defaults to clickup.default_team)",
				Arguments: idArg("team"),
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "include-completed", Usage: "Include completed goals"},
				},
				Action: r.GoalTeam,
			},
			{
				Name:      "create",
				Usage:     "Create a goal in a team (defaults to clickup.default_team)",
				Arguments: idArg("team"),
				Flags: []cli.Flag{
					nameFlag(true),
					&cli.StringFlag{Name: "due", Usage: "Due date"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Description"},
					&cli.StringSliceFlag{Name: "owner", Usage: "Owner user id (repeatable)"},
					&cli.StringFlag{Name: "color", Usage: "Hex color"},
				},
				Action: r.GoalCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a goal",
				Arguments: idArg("id"),
				Flags: []cli.Flag{
					nameFlag(false),
					&cli.StringFlag{Name: "due", Usage: "Due date"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Description"},
					&cli.StringSliceFlag{Name: "add-owner", Usage: "User id (repeatable)"},
					&cli.StringSliceFlag{Name: "remove-owner", Usage: "User id (repeatable)"},
					&cli.StringFlag{Name: "color", Usage: "Hex color"},
				},
				Action: r.GoalUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a goal",
				Arguments: idArg("id"),
				Action:    r.GoalDelete,
			},
		},
	}
}

// tagCommand handles space tags
func tagCommand(r *Runner) *cli.Command {
	taskTagArgs := func() []cli.Argument {
		return []cli.Argument{&cli.StringArg{Name: "task"}, &cli.StringArg{Name: "tag"}}
	}

	return &cli.Command{
		Name:  "tag",
		Usage: "Tag operations",
		Commands: []*cli.Command{
			{
				Name:      "space",
				Usage:     "Show the tags of a space (defaults to clickup.default_space)",
				Arguments: idArg("space"),
				Action:    r.TagSpace,
			},
			{
				Name:      "create",
				Usage:     "Create a tag in a space (defaults to clickup.default_space)",
				Arguments: idArg("space"),
				Flags: []cli.Flag{
					nameFlag(true),
					&cli.StringFlag{Name: "fg", Usage: "Foreground color"},
					&cli.StringFlag{Name: "bg", Usage: "Background color"},
				},
				Action: r.TagCreate,
			},
			{
				Name:      "add",
				Usage:     "Tag a task",
				Arguments: taskTagArgs(),
				Action:    r.TagAdd,
			},
			{
				Name:      "remove",
				Usage:     "Untag a task",
				Arguments: taskTagArgs(),
				Action:    r.TagRemove,
			},
		},
	}
}

// memberCommand lists members with access to a task or list
func memberCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "member",
		Usage: "Show who can access a task or list",
		Commands: []*cli.Command{
			{
				Name:      "task",
				Usage:     "Show the members of a task",
				Arguments: idArg("id"),
				Action:    r.MemberTask,
			},
			{
				Name:      "list",
				Usage:     "Show the members of a list",
				Arguments: idArg("id"),
				Action:    r.MemberList,
			},
		},
	}
}

func teamCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "team",
		Usage: "Team (workspace) operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Show the teams the token can access",
				Action: r.TeamList,
			},
		},
	}
}

func hierarchyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "hierarchy",
		Usage:     "Show the tasks, lists and folders shared with you (defaults to clickup.default_team)",
		Arguments: idArg("team"),
		Action:    r.Hierarchy,
	}
}

// timerCommand handles time tracking
func timerCommand(r *Runner) *cli.Command {
	teamFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "team", Usage: "Team id (defaults to clickup.default_team)"}
	}

	return &cli.Command{
		Name:  "timer",
		Usage: "Time tracking",
		Commands: []*cli.Command{
			{
				Name:  "range",
				Usage: "Show time entries between two dates",
				Flags: []cli.Flag{
					teamFlag(),
					&cli.StringFlag{Name: "start", Usage: "Range start, e.g. \"last monday\"", Required: true},
					&cli.StringFlag{Name: "end", Usage: "Range end", Required: true},
					&cli.StringSliceFlag{Name: "assignee", Usage: "User id (repeatable)"},
				},
				Action: r.TimerRange,
			},
			{
				Name:      "get",
				Usage:     "Show a time entry",
				Arguments: idArg("timer"),
				Flags:     []cli.Flag{teamFlag()},
				Action:    r.TimerGet,
			},
			{
				Name:      "start",
				Usage:     "Start a timer",
				Arguments: idArg("timer"),
				Flags:     []cli.Flag{teamFlag()},
				Action:    r.TimerStart,
			},
			{
				Name:   "stop",
				Usage:  "Stop the running timer",
				Flags:  []cli.Flag{teamFlag()},
				Action: r.TimerStop,
			},
		},
	}
}

// apiCommand handles direct API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to the ClickUp API",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Direct GET, prints the response body",
				Arguments: idArg("path"),
				Action:    r.APIGet,
			},
			{
				Name:      "post",
				Usage:     "Direct POST with JSON body",
				Arguments: idArg("path"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// exportCommand writes lists and their tasks to disk
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export lists with their tasks (defaults to clickup.default_list)",
		ArgsUsage: "[list ids...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "json, csv, markdown or txt (defaults to export.format)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (defaults to export.output_dir)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent workers, at most 10 (defaults to export.workers)",
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Requests per second across workers (defaults to export.rate_limit)",
			},
			&cli.BoolFlag{
				Name:  "include-closed",
				Usage: "Include closed tasks",
			},
			&cli.BoolFlag{
				Name:  "subtasks",
				Usage: "Include subtasks",
			},
			&cli.StringSliceFlag{
				Name:  "status",
				Usage: "Only export tasks with this status (repeatable)",
			},
		},
		Action: r.Export,
	}
}

// tuiCommand launches the interactive task browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Browse spaces, lists and tasks interactively (defaults to clickup.default_team)",
		Arguments: idArg("team"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Where to write logs while the UI owns the terminal",
				Value: "clickupx-tui.log",
			},
		},
		Action: r.TUI,
	}
}
