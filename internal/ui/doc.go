// Package ui implements an interactive ClickUp browser using bubbletea's Elm architecture.
//
// The TUI walks down the workspace hierarchy:
//  1. [SpaceListView] : spaces of the configured team
//  2. [ListListView] : lists of the selected space, folder lists first
//  3. [TaskListView] : open and closed tasks of the selected list
//  4. [TaskDetailView] : one task's status, priority, dates, assignees and description
//  5. [ConfirmView], [ExportView], [ResultView] : export the selected list with the bulk exporter
//
// The [Model] implements Init/Update/View and receives its data through the [Msg] union.
// Export progress flows from the exporter's channel, one message per update.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, e, y/n, q) with contextual help
// displayed via charmbracelet/bubbles/help.
package ui
