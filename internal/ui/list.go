package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/clickupx/internal/formatter"
	"github.com/desertthunder/clickupx/pkg/clickup"
)

var (
	_ list.Item = spaceItem{}
	_ list.Item = listItem{}
	_ list.Item = taskItem{}
)

// spaceItem wraps [clickup.Space] to implement [list.Item].
type spaceItem struct {
	space clickup.Space
}

func (i spaceItem) FilterValue() string { return i.space.Name }
func (i spaceItem) Title() string       { return i.space.Name }
func (i spaceItem) Description() string {
	desc := fmt.Sprintf("%d statuses", len(i.space.Statuses))
	if i.space.Private {
		desc += " • private"
	}
	return desc
}

// listItem wraps [clickup.List] to implement [list.Item], remembering its folder.
type listItem struct {
	list   clickup.List
	folder string
}

func (i listItem) FilterValue() string { return i.folder + " " + i.list.Name }
func (i listItem) Title() string       { return i.list.Name }
func (i listItem) Description() string {
	parts := []string{fmt.Sprintf("%s tasks", i.list.TaskCount)}
	if i.list.TaskCount == "" {
		parts[0] = "no task count"
	}
	if i.folder != "" {
		parts = append(parts, i.folder)
	} else {
		parts = append(parts, "no folder")
	}
	if due := formatter.FormatTimestamp(i.list.DueDate); due != "" {
		parts = append(parts, "due "+due)
	}
	return strings.Join(parts, " • ")
}

// taskItem wraps [clickup.Task] to implement [list.Item].
type taskItem struct {
	task clickup.Task
}

func (i taskItem) FilterValue() string { return i.task.Name }
func (i taskItem) Title() string       { return i.task.Name }
func (i taskItem) Description() string {
	parts := []string{i.task.Status.Status}
	if p := formatter.PriorityName(i.task); p != "" {
		parts = append(parts, p)
	}
	if a := formatter.Assignees(i.task); a != "" {
		parts = append(parts, a)
	}
	if due := formatter.FormatTimestamp(i.task.DueDate); due != "" {
		parts = append(parts, "due "+due)
	}
	return strings.Join(parts, " • ")
}

// listItems flattens folder lists and folderless lists into one slice, folders first.
func listItems(folders []clickup.Folder, folderless []clickup.List) []list.Item {
	var items []list.Item
	for _, f := range folders {
		for _, l := range f.Lists {
			items = append(items, listItem{list: l, folder: f.Name})
		}
	}
	for _, l := range folderless {
		items = append(items, listItem{list: l})
	}
	return items
}
