package models

import (
	"time"

	"github.com/desertthunder/clickupx/pkg/clickup"
)

// ListExport is a list with every task fetched for it.
type ListExport struct {
	List       clickup.List   `json:"list"`
	Tasks      []clickup.Task `json:"tasks"`
	ExportedAt time.Time      `json:"exported_at"`
}

// Closed counts the tasks whose status type is "closed" or "done".
func (e *ListExport) Closed() int {
	n := 0
	for _, t := range e.Tasks {
		if IsClosed(t) {
			n++
		}
	}
	return n
}

// IsClosed reports whether the task sits in a closed or done status.
func IsClosed(t clickup.Task) bool {
	return t.Status.Type == "closed" || t.Status.Type == "done"
}

// ListExportResult is the outcome of exporting a single list.
type ListExportResult struct {
	ListID    string   `json:"list_id"`
	ListName  string   `json:"list_name"`
	TaskCount int      `json:"task_count"`
	Success   bool     `json:"success"`
	Files     []string `json:"files,omitempty"`
	Error     error    `json:"-"`
}

// BulkExportResult summarizes a bulk export run.
type BulkExportResult struct {
	TotalLists        int                `json:"total_lists"`
	SuccessfulExports int                `json:"successful_exports"`
	FailedExports     int                `json:"failed_exports"`
	OutputDirectory   string             `json:"output_directory"`
	ManifestPath      string             `json:"manifest_path,omitempty"`
	Results           []ListExportResult `json:"results"`
}
