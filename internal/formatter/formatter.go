// package formatter renders list exports as CSV, Markdown, plain text and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/clickupx/internal/models"
	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/clickup"
)

// CSVHeaders are the columns written by [ExportToCSV].
var CSVHeaders = []string{"ID", "Name", "Status", "Priority", "Assignees", "Tags", "Due", "Estimate", "URL"}

// FormatTimestamp renders a Unix millisecond string as a UTC date. Nil or unparsable values render empty.
func FormatTimestamp(ms *string) string {
	if ms == nil || *ms == "" {
		return ""
	}
	n, err := strconv.ParseInt(*ms, 10, 64)
	if err != nil {
		return ""
	}
	return time.UnixMilli(n).UTC().Format("2006-01-02")
}

// FormatEstimate renders a millisecond duration as "1h 30m". Nil renders empty.
func FormatEstimate(ms *int64) string {
	if ms == nil {
		return ""
	}
	d := time.Duration(*ms) * time.Millisecond
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// PriorityName returns the task's priority label or an empty string.
func PriorityName(t clickup.Task) string {
	if t.Priority == nil {
		return ""
	}
	return t.Priority.Priority
}

// Assignees joins the usernames of the task's assignees.
func Assignees(t clickup.Task) string {
	names := make([]string, 0, len(t.Assignees))
	for _, u := range t.Assignees {
		names = append(names, u.Username)
	}
	return strings.Join(names, ", ")
}

// TagNames joins the names of the task's tags.
func TagNames(t clickup.Task) string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}

// ExportToCSV converts a ListExport to CSV with the [CSVHeaders] columns.
func ExportToCSV(export *models.ListExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(CSVHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, task := range export.Tasks {
		record := []string{
			task.ID,
			task.Name,
			task.Status.Status,
			PriorityName(task),
			Assignees(task),
			TagNames(task),
			FormatTimestamp(task.DueDate),
			FormatEstimate(task.TimeEstimate),
			task.URL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a ListExport to a Markdown checklist. Closed tasks are checked.
func ExportToMarkdown(export *models.ListExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", export.List.Name)

	if export.List.Content != "" {
		fmt.Fprintf(&buf, "%s\n\n", export.List.Content)
	}

	fmt.Fprintf(&buf, "**Tasks**: %d (%d closed)\n", len(export.Tasks), export.Closed())
	if due := FormatTimestamp(export.List.DueDate); due != "" {
		fmt.Fprintf(&buf, "**Due**: %s\n", due)
	}
	buf.WriteString("\n## Tasks\n\n")

	for _, task := range export.Tasks {
		box := " "
		if models.IsClosed(task) {
			box = "x"
		}

		fmt.Fprintf(&buf, "- [%s] **%s** `%s`", box, task.Name, task.Status.Status)

		var details []string
		if p := PriorityName(task); p != "" {
			details = append(details, "priority "+p)
		}
		if due := FormatTimestamp(task.DueDate); due != "" {
			details = append(details, "due "+due)
		}
		if est := FormatEstimate(task.TimeEstimate); est != "" {
			details = append(details, "estimate "+est)
		}
		if a := Assignees(task); a != "" {
			details = append(details, a)
		}
		if len(details) > 0 {
			fmt.Fprintf(&buf, " (%s)", strings.Join(details, ", "))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts a ListExport to plain text format
func ExportToText(export *models.ListExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "List: %s\n", export.List.Name)
	if export.List.Content != "" {
		fmt.Fprintf(&buf, "Description: %s\n", export.List.Content)
	}
	fmt.Fprintf(&buf, "Tasks: %d\n\n", len(export.Tasks))

	for i, task := range export.Tasks {
		fmt.Fprintf(&buf, "%d. [%s] %s\n", i+1, task.Status.Status, task.Name)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a ListExport to indented JSON.
func ExportToJSON(export *models.ListExport) ([]byte, error) {
	return shared.MarshalJSON(export, true)
}

// ToMetadataJSON generates a JSON representation of list metadata (without tasks)
func ToMetadataJSON(list clickup.List) ([]byte, error) {
	return shared.MarshalJSON(list, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	TasksFile    string
	MetadataFile string
}

// WriteCSVExport writes {base}_tasks.csv and {base}_metadata.json. The base defaults to the list ID.
func WriteCSVExport(export *models.ListExport, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = export.List.ID
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	tasksFile := baseFilepath + "_tasks.csv"
	if err := os.WriteFile(tasksFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(export.List)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{TasksFile: tasksFile, MetadataFile: metadataFile}, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
}

// WriteMarkdownExport writes {dir}/README.md and {dir}/list.json. The directory defaults to the list ID.
func WriteMarkdownExport(export *models.ListExport, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = export.List.ID
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(export.List)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metaFile := filepath.Join(outputDir, "list.json")
	if err := os.WriteFile(metaFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &MarkdownExportResult{Directory: outputDir, Files: []string{mdFile, metaFile}}, nil
}

// WriteTextExport writes the text rendering to path, {list.ID}_tasks.txt by default.
func WriteTextExport(export *models.ListExport, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s_tasks.txt", export.List.ID)
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(path, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}

// WriteJSONExport writes the full export to path, {list.ID}.json by default.
func WriteJSONExport(export *models.ListExport, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s.json", export.List.ID)
	}

	data, err := ExportToJSON(export)
	if err != nil {
		return "", fmt.Errorf("JSON marshal failed: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("JSON write failed: %w", err)
	}

	return path, nil
}

type manifestEntry struct {
	models.ListExportResult
	Error string `json:"error,omitempty"`
}

type manifest struct {
	Format            string          `json:"format"`
	GeneratedAt       time.Time       `json:"generated_at"`
	TotalLists        int             `json:"total_lists"`
	SuccessfulExports int             `json:"successful_exports"`
	FailedExports     int             `json:"failed_exports"`
	OutputDirectory   string          `json:"output_directory"`
	Results           []manifestEntry `json:"results"`
}

// WriteBulkExportManifest writes a JSON summary of a bulk export to path.
//
// Per-list errors are recorded as their messages.
func WriteBulkExportManifest(result *models.BulkExportResult, format, path string) error {
	m := manifest{
		Format:            format,
		GeneratedAt:       time.Now().UTC(),
		TotalLists:        result.TotalLists,
		SuccessfulExports: result.SuccessfulExports,
		FailedExports:     result.FailedExports,
		OutputDirectory:   result.OutputDirectory,
		Results:           make([]manifestEntry, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		entry := manifestEntry{ListExportResult: r}
		if r.Error != nil {
			entry.Error = r.Error.Error()
		}
		m.Results = append(m.Results, entry)
	}

	data, err := shared.MarshalJSON(m, true)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
