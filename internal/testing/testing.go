// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/clickupx/internal/models"
	"github.com/desertthunder/clickupx/pkg/clickup"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

// SampleExport returns a list export with one open and one closed task.
func SampleExport() *models.ListExport {
	return &models.ListExport{
		List: clickup.List{
			ID:      "list1",
			Name:    "Sprint 12",
			Content: "Release work",
			DueDate: strPtr("1669852800000"),
		},
		Tasks: []clickup.Task{
			{
				ID:           "task1",
				Name:         "Write docs",
				Status:       clickup.Status{Status: "in progress", Type: "custom"},
				Priority:     &clickup.Priority{ID: "2", Priority: "high"},
				Assignees:    []clickup.User{{Username: "jane"}, {Username: "sam"}},
				Tags:         []clickup.Tag{{Name: "docs"}},
				DueDate:      strPtr("1669852800000"),
				TimeEstimate: int64Ptr(5400000),
				URL:          "https://app.clickup.com/t/task1",
			},
			{
				ID:     "task2",
				Name:   "Ship release",
				Status: clickup.Status{Status: "complete", Type: "closed"},
			},
		},
	}
}

// FakeTaskSource serves tasks from memory, keyed by list id.
//
// Lists in Fail return their error. Pages splits each list's tasks into pages of that size (0 means one page).
type FakeTaskSource struct {
	Lists map[string]clickup.List
	Tasks map[string][]clickup.Task
	Fail  map[string]error
	Pages int

	mu    sync.Mutex
	calls int
}

// GetList implements the list lookup of the bulk exporter.
func (f *FakeTaskSource) GetList(ctx context.Context, listID string) (*clickup.List, error) {
	f.count()
	if err, ok := f.Fail[listID]; ok {
		return nil, err
	}
	l, ok := f.Lists[listID]
	if !ok {
		return nil, fmt.Errorf("list %s not found", listID)
	}
	return &l, nil
}

// GetTasks returns the requested page of a list's tasks.
func (f *FakeTaskSource) GetTasks(ctx context.Context, listID string, q clickup.TaskQuery) (*clickup.Tasks, error) {
	f.count()
	if err, ok := f.Fail[listID]; ok {
		return nil, err
	}
	all := f.Tasks[listID]
	if f.Pages <= 0 {
		if q.Page > 0 {
			return &clickup.Tasks{LastPage: true}, nil
		}
		return &clickup.Tasks{Tasks: all, LastPage: true}, nil
	}

	start := q.Page * f.Pages
	if start >= len(all) {
		return &clickup.Tasks{LastPage: true}, nil
	}
	end := min(start+f.Pages, len(all))
	return &clickup.Tasks{Tasks: all[start:end], LastPage: end == len(all)}, nil
}

// Calls returns how many requests were served.
func (f *FakeTaskSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeTaskSource) count() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}
