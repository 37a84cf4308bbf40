package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/clickupx/internal/formatter"
	"github.com/desertthunder/clickupx/internal/models"
	"github.com/desertthunder/clickupx/internal/tasks"
	"github.com/desertthunder/clickupx/pkg/clickup"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SpaceListView ViewState = iota
	ListListView
	TaskListView
	TaskDetailView
	ConfirmView
	ExportView
	ResultView
)

// Browser is the read-only part of [clickup.Client] the TUI uses.
type Browser interface {
	tasks.TaskSource
	GetSpaces(ctx context.Context, teamID string, archived bool) (*clickup.Spaces, error)
	GetFolders(ctx context.Context, spaceID string) (*clickup.Folders, error)
	GetFolderlessLists(ctx context.Context, spaceID string) (*clickup.Lists, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	client     Browser
	exporter   *tasks.Exporter
	exportOpts tasks.BulkExportOpts
	teamID     string

	width  int
	height int

	spaceList list.Model
	listList  list.Model
	taskList  list.Model

	space       clickup.Space
	list        clickup.List
	task        *clickup.Task
	confirmFrom ViewState

	progressChan <-chan tasks.ProgressUpdate
	doneChan     <-chan Msg
	progress     tasks.ProgressUpdate
	result       *models.BulkExportResult

	loading string
	err     error
	help    help.Model
	keys    keyMap
}

// NewModel creates a TUI browsing teamID. Exports use opts with the selected list.
func NewModel(ctx context.Context, client Browser, exporter *tasks.Exporter, teamID string, opts tasks.BulkExportOpts) *Model {
	m := &Model{
		ctx:        ctx,
		view:       SpaceListView,
		client:     client,
		exporter:   exporter,
		exportOpts: opts,
		teamID:     teamID,
		loading:    "Loading spaces...",
		help:       help.New(),
		keys:       newKeyMap(),
	}
	m.spaceList = m.newList(nil, "Spaces")
	m.listList = m.newList(nil, "Lists")
	m.taskList = m.newList(nil, "Tasks")
	return m
}

// CurrentView returns the current view state.
func (m *Model) CurrentView() ViewState {
	return m.view
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Init fetches the team's spaces.
func (m *Model) Init() tea.Cmd {
	return m.fetchSpaces()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) && !m.filtering() {
			return m, tea.Quit
		}
		if m.err != nil && m.view != ResultView {
			if key.Matches(msg, m.keys.back) {
				m.err = nil
			}
			return m, nil
		}
		switch m.view {
		case SpaceListView:
			return m.handleSpaceListKeys(msg)
		case ListListView:
			return m.handleListListKeys(msg)
		case TaskListView:
			return m.handleTaskListKeys(msg)
		case TaskDetailView:
			return m.handleDetailKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}
		return m, nil

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	m.loading = ""

	switch msg.kind {
	case MsgSpacesFetched:
		data := msg.data.(spacesFetched)
		if data.err != nil {
			m.err = data.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(data.spaces))
		for i, s := range data.spaces {
			items[i] = spaceItem{space: s}
		}
		m.spaceList = m.newList(items, "Spaces")
		m.view = SpaceListView

	case MsgListsFetched:
		data := msg.data.(listsFetched)
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.space = data.space
		m.listList = m.newList(listItems(data.folders, data.folderless), fmt.Sprintf("Lists in %s", data.space.Name))
		m.view = ListListView

	case MsgTasksFetched:
		data := msg.data.(tasksFetched)
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.list = data.list
		items := make([]list.Item, len(data.tasks))
		for i, t := range data.tasks {
			items[i] = taskItem{task: t}
		}
		m.taskList = m.newList(items, fmt.Sprintf("Tasks in %s", data.list.Name))
		m.view = TaskListView

	case MsgProgressUpdate:
		m.progress = msg.data.(tasks.ProgressUpdate)
		return m, m.waitForProgress()

	case MsgExportComplete:
		data := msg.data.(exportComplete)
		m.result = data.result
		m.err = data.err
		m.progressChan = nil
		m.doneChan = nil
		m.view = ResultView
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	}
	if m.loading != "" {
		return styles.help.Render(m.loading)
	}

	switch m.view {
	case SpaceListView:
		return m.renderList(m.spaceList, m.keys.enter, m.keys.quit)
	case ListListView:
		return m.renderList(m.listList, m.keys.enter, m.keys.export, m.keys.back, m.keys.quit)
	case TaskListView:
		return m.renderList(m.taskList, m.keys.enter, m.keys.export, m.keys.back, m.keys.quit)
	case TaskDetailView:
		return m.renderDetail()
	case ConfirmView:
		return m.renderConfirm()
	case ExportView:
		return m.renderExport()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleSpaceListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.enter) && !m.filtering() {
		if item, ok := m.spaceList.SelectedItem().(spaceItem); ok {
			m.loading = fmt.Sprintf("Loading lists of %s...", item.space.Name)
			return m, m.fetchLists(item.space)
		}
	}

	var cmd tea.Cmd
	m.spaceList, cmd = m.spaceList.Update(msg)
	return m, cmd
}

func (m *Model) handleListListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.filtering() {
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = SpaceListView
			return m, nil
		case key.Matches(msg, m.keys.enter):
			if item, ok := m.listList.SelectedItem().(listItem); ok {
				m.loading = fmt.Sprintf("Loading tasks of %s...", item.list.Name)
				return m, m.fetchTasks(item.list)
			}
		case key.Matches(msg, m.keys.export):
			if item, ok := m.listList.SelectedItem().(listItem); ok {
				m.list = item.list
				m.confirmFrom = ListListView
				m.view = ConfirmView
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.listList, cmd = m.listList.Update(msg)
	return m, cmd
}

func (m *Model) handleTaskListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.filtering() {
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = ListListView
			return m, nil
		case key.Matches(msg, m.keys.enter):
			if item, ok := m.taskList.SelectedItem().(taskItem); ok {
				t := item.task
				m.task = &t
				m.view = TaskDetailView
				return m, nil
			}
		case key.Matches(msg, m.keys.export):
			m.confirmFrom = TaskListView
			m.view = ConfirmView
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.back) {
		m.task = nil
		m.view = TaskListView
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		m.view = m.confirmFrom
		return m, nil
	case key.Matches(msg, m.keys.yes):
		m.view = ExportView
		return m, m.startExport()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.restart):
		m.view = SpaceListView
		m.result = nil
		m.err = nil
		return m, nil
	case key.Matches(msg, m.keys.back):
		m.view = ListListView
		m.result = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) filtering() bool {
	switch m.view {
	case SpaceListView:
		return m.spaceList.FilterState() == list.Filtering
	case ListListView:
		return m.listList.FilterState() == list.Filtering
	case TaskListView:
		return m.taskList.FilterState() == list.Filtering
	}
	return false
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case SpaceListView:
		m.spaceList, cmd = m.spaceList.Update(msg)
	case ListListView:
		m.listList, cmd = m.listList.Update(msg)
	case TaskListView:
		m.taskList, cmd = m.taskList.Update(msg)
	}
	return m, cmd
}

func (m *Model) newList(items []list.Item, title string) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetSize(max(m.width-4, 0), max(m.height-8, 0))
	return l
}

func (m *Model) resizeLists() {
	w, h := max(m.width-4, 0), max(m.height-8, 0)
	m.spaceList.SetSize(w, h)
	m.listList.SetSize(w, h)
	m.taskList.SetSize(w, h)
}

func (m *Model) fetchSpaces() tea.Cmd {
	return func() tea.Msg {
		spaces, err := m.client.GetSpaces(m.ctx, m.teamID, false)
		if err != nil {
			return spacesFetchedMsg(nil, err)
		}
		return spacesFetchedMsg(spaces.Spaces, nil)
	}
}

func (m *Model) fetchLists(space clickup.Space) tea.Cmd {
	return func() tea.Msg {
		folders, err := m.client.GetFolders(m.ctx, space.ID)
		if err != nil {
			return listsFetchedMsg(space, nil, nil, err)
		}
		lists, err := m.client.GetFolderlessLists(m.ctx, space.ID)
		if err != nil {
			return listsFetchedMsg(space, nil, nil, err)
		}
		return listsFetchedMsg(space, folders.Folders, lists.Lists, nil)
	}
}

func (m *Model) fetchTasks(l clickup.List) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.GetTasks(m.ctx, l.ID, clickup.TaskQuery{IncludeClosed: true, OrderBy: clickup.OrderByUpdated})
		if err != nil {
			return tasksFetchedMsg(l, nil, err)
		}
		return tasksFetchedMsg(l, resp.Tasks, nil)
	}
}

func (m *Model) startExport() tea.Cmd {
	prog := make(chan tasks.ProgressUpdate, 50)
	done := make(chan Msg, 1)
	m.progressChan = prog
	m.doneChan = done
	m.progress = tasks.ProgressUpdate{Message: fmt.Sprintf("Exporting %s...", m.list.Name)}

	listID := m.list.ID
	go func() {
		result, err := m.exporter.BulkExport(m.ctx, prog, []string{listID}, m.exportOpts)
		done <- exportCompleteMsg(result, err)
		close(prog)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	prog, done := m.progressChan, m.doneChan
	return func() tea.Msg {
		if prog == nil {
			return exportCompleteMsg(m.result, m.err)
		}
		update, ok := <-prog
		if !ok {
			return <-done
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderList(l list.Model, keys ...key.Binding) string {
	return fmt.Sprintf("%s\n\n%s", l.View(), m.help.ShortHelpView(keys))
}

func (m *Model) renderDetail() string {
	if m.task == nil {
		return ""
	}
	t := m.task

	var b strings.Builder
	b.WriteString(styles.title.Render(t.Name))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", styles.label.Render(label), value)
	}
	row("Status", StatusStyle(t.Status.Color).Render(t.Status.Status))
	row("Priority", formatter.PriorityName(*t))
	row("Assignees", formatter.Assignees(*t))
	row("Tags", formatter.TagNames(*t))
	row("Start", formatter.FormatTimestamp(t.StartDate))
	row("Due", formatter.FormatTimestamp(t.DueDate))
	row("Estimate", formatter.FormatEstimate(t.TimeEstimate))
	row("List", m.list.Name)
	row("URL", t.URL)

	if desc := strings.TrimSpace(t.TextContent); desc != "" {
		fmt.Fprintf(&b, "\n%s\n", desc)
	}
	if len(t.Checklists) > 0 {
		b.WriteString("\n")
		for _, cl := range t.Checklists {
			fmt.Fprintf(&b, "%s (%d/%d)\n", cl.Name, cl.Resolved, cl.Resolved+cl.Unresolved)
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit}))
	return b.String()
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Export '%s'?", m.list.Name))
	info := fmt.Sprintf("\nList: %s\nFormat: %s\nOutput: %s\n", m.list.Name, m.exportOpts.Format, m.exportOpts.OutputDir)

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderExport() string {
	title := styles.title.Render("Exporting List")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchTasks:
		phase = fmt.Sprintf("Fetching tasks (page %d)", m.progress.Step)
	case tasks.ExportList:
		phase = "Writing files..."
	case tasks.WriteManifest:
		phase = "Writing manifest..."
	default:
		phase = "Starting..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.restart, m.keys.quit})

	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Export failed: %v", m.err)) + "\n\n" + helpView
	}
	if m.result == nil || len(m.result.Results) == 0 {
		return styles.err.Render("No result available") + "\n\n" + helpView
	}

	res := m.result.Results[0]
	if !res.Success {
		return styles.err.Render(fmt.Sprintf("✗ %s: %v", res.ListID, res.Error)) + "\n\n" + helpView
	}

	title := styles.ok.Render("✓ Export Complete!")
	info := fmt.Sprintf("\nList: %s (%d tasks)\nFiles:", res.ListName, res.TaskCount)
	for _, f := range res.Files {
		info += "\n  • " + f
	}
	info += "\nManifest: " + m.result.ManifestPath

	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
