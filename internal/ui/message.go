package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/clickupx/internal/models"
	"github.com/desertthunder/clickupx/internal/tasks"
	"github.com/desertthunder/clickupx/pkg/clickup"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSpacesFetched MsgKind = iota
	MsgListsFetched
	MsgTasksFetched
	MsgProgressUpdate
	MsgExportComplete
)

type spacesFetched struct {
	spaces []clickup.Space
	err    error
}

type listsFetched struct {
	space      clickup.Space
	folders    []clickup.Folder
	folderless []clickup.List
	err        error
}

type tasksFetched struct {
	list  clickup.List
	tasks []clickup.Task
	err   error
}

type exportComplete struct {
	result *models.BulkExportResult
	err    error
}

// spacesFetchedMsg is the constructor for [MsgSpacesFetched]
func spacesFetchedMsg(spaces []clickup.Space, err error) Msg {
	return Msg{kind: MsgSpacesFetched, data: spacesFetched{spaces, err}}
}

// listsFetchedMsg is the constructor for [MsgListsFetched]
func listsFetchedMsg(space clickup.Space, folders []clickup.Folder, folderless []clickup.List, err error) Msg {
	return Msg{kind: MsgListsFetched, data: listsFetched{space, folders, folderless, err}}
}

// tasksFetchedMsg is the constructor for [MsgTasksFetched]
func tasksFetchedMsg(l clickup.List, tasks []clickup.Task, err error) Msg {
	return Msg{kind: MsgTasksFetched, data: tasksFetched{l, tasks, err}}
}

// progressUpdateMsg is the constructor for [MsgProgressUpdate]
func progressUpdateMsg(update tasks.ProgressUpdate) Msg {
	return Msg{kind: MsgProgressUpdate, data: update}
}

// exportCompleteMsg is the constructor for [MsgExportComplete]
func exportCompleteMsg(result *models.BulkExportResult, err error) Msg {
	return Msg{kind: MsgExportComplete, data: exportComplete{result, err}}
}
