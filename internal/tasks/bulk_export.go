package tasks

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/desertthunder/clickupx/internal/formatter"
	"github.com/desertthunder/clickupx/internal/models"
	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/pkg/clickup"
)

const (
	defaultWorkers   = 5
	maxWorkers       = 10
	defaultRateLimit = 1.5

	// maxPages stops paging a list whose server never reports the last page.
	maxPages = 200
)

// Formats accepted by [BulkExportOpts.Format].
var Formats = []string{"json", "csv", "markdown", "txt"}

// TaskSource is the part of [clickup.Client] an export needs.
type TaskSource interface {
	GetList(ctx context.Context, listID string) (*clickup.List, error)
	GetTasks(ctx context.Context, listID string, q clickup.TaskQuery) (*clickup.Tasks, error)
}

// BulkExportOpts contains configuration for bulk list exports.
type BulkExportOpts struct {
	Format     string            // Export format: json, csv, markdown, txt
	OutputDir  string            // Base output directory (default: clickup_export_{epoch})
	NumWorkers int               // Concurrent workers (default: 5, max: 10)
	RateLimit  float64           // Requests per second across all workers (default: 1.5)
	Query      clickup.TaskQuery // Filters applied to every list; Page is managed by the exporter
}

// Exporter fetches lists with their tasks and writes them to disk.
type Exporter struct {
	src    TaskSource
	logger *log.Logger
}

// NewExporter creates an Exporter. A nil logger discards output.
func NewExporter(src TaskSource, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exporter{src: src, logger: logger}
}

type exportJob struct {
	index  int
	listID string
}

type indexedResult struct {
	index  int
	result models.ListExportResult
}

// FetchList fetches a list and every page of its tasks. limiter may be nil.
func (e *Exporter) FetchList(ctx context.Context, listID string, q clickup.TaskQuery, limiter *rate.Limiter, prog chan<- ProgressUpdate) (*models.ListExport, error) {
	wait := func() error {
		if limiter == nil {
			return nil
		}
		return limiter.Wait(ctx)
	}

	if err := wait(); err != nil {
		return nil, err
	}
	list, err := e.src.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch list: %w", err)
	}

	export := &models.ListExport{List: *list, Tasks: []clickup.Task{}, ExportedAt: time.Now().UTC()}
	for page := 0; page < maxPages; page++ {
		if err := wait(); err != nil {
			return nil, err
		}
		sendProgress(prog, fetchTasksUpdate(page+1, 0, list.Name, page))

		q.Page = page
		tasks, err := e.src.GetTasks(ctx, listID, q)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tasks (page %d): %w", page, err)
		}
		export.Tasks = append(export.Tasks, tasks.Tasks...)
		e.logger.Debug("fetched tasks", "list", listID, "page", page, "count", len(tasks.Tasks))

		if tasks.LastPage || len(tasks.Tasks) == 0 {
			break
		}
	}
	return export, nil
}

// BulkExport exports many lists concurrently with a shared rate limit and progress tracking.
//
// Duplicate ids are exported once. Results keep the order of ids. Per-list failures are reported
// in the result; the returned error is set for setup failures, an unwritable manifest and a
// canceled ctx.
func (e *Exporter) BulkExport(ctx context.Context, prog chan<- ProgressUpdate, ids []string, opts BulkExportOpts) (*models.BulkExportResult, error) {
	if e.src == nil {
		return nil, fmt.Errorf("%w: task source not initialized", shared.ErrNotAuthenticated)
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one list id", shared.ErrMissingArgument)
	}

	opts, err := normalizeOpts(opts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &models.BulkExportResult{
		TotalLists:      len(ids),
		OutputDirectory: opts.OutputDir,
		Results:         make([]models.ListExportResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan exportJob, len(ids))
	results := make(chan indexedResult, len(ids))

	sendProgress(prog, startingExportUpdate(len(ids), opts.NumWorkers))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, limiter, prog, opts)
	}

	for i, id := range ids {
		jobs <- exportJob{index: i, listID: id}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]indexedResult, 0, len(ids))
	for res := range results {
		collected = append(collected, res)

		name := res.result.ListName
		if name == "" {
			name = res.result.ListID
		}
		if res.result.Success {
			result.SuccessfulExports++
			sendProgress(prog, exportCompletedUpdate(len(collected), len(ids), name, res.result.TaskCount, len(res.result.Files)))
		} else {
			result.FailedExports++
			e.logger.Warn("list export failed", "list", res.result.ListID, "err", res.result.Error)
			sendProgress(prog, exportFailedUpdate(len(collected), len(ids), name, res.result.Error))
		}
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })
	for _, res := range collected {
		result.Results = append(result.Results, res.result)
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := formatter.WriteBulkExportManifest(result, opts.Format, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	sendProgress(prog, manifestUpdate(manifestPath))

	return result, ctx.Err()
}

// exportWorker exports lists from the jobs channel until it is drained.
//
// Once ctx is done remaining jobs are reported as failed rather than dropped.
func (e *Exporter) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan exportJob,
	results chan<- indexedResult,
	limiter *rate.Limiter,
	prog chan<- ProgressUpdate,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		res := models.ListExportResult{ListID: job.listID}
		if err := ctx.Err(); err != nil {
			res.Error = err
			results <- indexedResult{index: job.index, result: res}
			continue
		}
		results <- indexedResult{index: job.index, result: e.exportSingleList(ctx, job.listID, limiter, prog, opts)}
	}
}

// exportSingleList fetches one list and writes it in the requested format.
func (e *Exporter) exportSingleList(ctx context.Context, listID string, limiter *rate.Limiter, prog chan<- ProgressUpdate, opts BulkExportOpts) models.ListExportResult {
	result := models.ListExportResult{ListID: listID, Files: []string{}}

	export, err := e.FetchList(ctx, listID, opts.Query, limiter, prog)
	if err != nil {
		result.Error = err
		return result
	}
	result.ListName = export.List.Name
	result.TaskCount = len(export.Tasks)

	files, err := writeExport(export, opts)
	if err != nil {
		result.Error = err
		return result
	}
	result.Files = files
	result.Success = true
	return result
}

func writeExport(export *models.ListExport, opts BulkExportOpts) ([]string, error) {
	id := export.List.ID
	if id == "" {
		return nil, fmt.Errorf("%w: list without id", shared.ErrInvalidInput)
	}

	switch opts.Format {
	case "csv":
		res, err := formatter.WriteCSVExport(export, filepath.Join(opts.OutputDir, id))
		if err != nil {
			return nil, fmt.Errorf("CSV export failed: %w", err)
		}
		return []string{res.TasksFile, res.MetadataFile}, nil
	case "markdown":
		res, err := formatter.WriteMarkdownExport(export, filepath.Join(opts.OutputDir, id))
		if err != nil {
			return nil, fmt.Errorf("markdown export failed: %w", err)
		}
		return res.Files, nil
	case "txt":
		path, err := formatter.WriteTextExport(export, filepath.Join(opts.OutputDir, id+"_tasks.txt"))
		if err != nil {
			return nil, fmt.Errorf("text export failed: %w", err)
		}
		return []string{path}, nil
	default:
		path, err := formatter.WriteJSONExport(export, filepath.Join(opts.OutputDir, id+".json"))
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
}

func normalizeOpts(opts BulkExportOpts) (BulkExportOpts, error) {
	if opts.Format == "" {
		opts.Format = "json"
	}
	valid := false
	for _, f := range Formats {
		if opts.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return opts, fmt.Errorf("%w: format %q (want one of %v)", shared.ErrInvalidFlag, opts.Format, Formats)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("clickup_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = defaultWorkers
	}
	if opts.NumWorkers > maxWorkers {
		opts.NumWorkers = maxWorkers
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}
	return opts, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// sendProgress sends update without blocking. Updates are dropped when the channel is full.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
