package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/clickupx/internal/shared"
	"github.com/desertthunder/clickupx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export writes one or more lists with their tasks to disk.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	client, err := r.api()
	if err != nil {
		return err
	}

	ids := cmd.Args().Slice()
	if len(ids) == 0 && client.Defaults().List != "" {
		ids = []string{client.Defaults().List}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one list id (or clickup.default_list)", shared.ErrMissingArgument)
	}

	opts := r.exportOpts(cmd)
	r.logger.Info("starting export", "lists", len(ids), "format", opts.Format, "output", opts.OutputDir)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchLists:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.FetchTasks:
				r.logger.Debug(update.Message)
			case tasks.ExportList:
				r.writePlain("   %s\n", update.Message)
			case tasks.WriteManifest:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	exporter := tasks.NewExporter(client, r.logger)
	result, err := exporter.BulkExport(ctx, progressCh, ids, opts)
	close(progressCh)
	<-printed

	if result == nil {
		return err
	}

	if cmd.Bool("json") {
		if jsonErr := r.writeJSON(result, true); jsonErr != nil {
			return jsonErr
		}
	} else {
		r.writePlain("\n")
		r.writePlainHeader("Export Complete!")
		r.writePlain("Output: %s\n", result.OutputDirectory)
		r.writePlain("Exported: %d/%d lists\n", result.SuccessfulExports, result.TotalLists)
		if result.FailedExports > 0 {
			r.writePlain("\nFailed exports:\n")
			for _, res := range result.Results {
				if !res.Success {
					r.writePlain("  - %s: %v\n", res.ListID, res.Error)
				}
			}
		}
	}

	if err != nil {
		return err
	}
	if result.SuccessfulExports == 0 {
		return fmt.Errorf("%w: no list was exported", shared.ErrAPIRequest)
	}
	return nil
}

// configExportOpts returns the export settings of the [export] config section.
func (r *Runner) configExportOpts() tasks.BulkExportOpts {
	cfg := r.config.Export
	return tasks.BulkExportOpts{
		Format:     cfg.Format,
		OutputDir:  cfg.OutputDir,
		NumWorkers: cfg.Workers,
		RateLimit:  cfg.RateLimit,
	}
}

// exportOpts merges the export flags over [Runner.configExportOpts].
func (r *Runner) exportOpts(cmd *cli.Command) tasks.BulkExportOpts {
	opts := r.configExportOpts()

	if v := cmd.String("format"); v != "" {
		opts.Format = v
	}
	if v := cmd.String("output"); v != "" {
		opts.OutputDir = v
	}
	if cmd.IsSet("workers") {
		opts.NumWorkers = int(cmd.Int("workers"))
	}
	if cmd.IsSet("rate") {
		opts.RateLimit = cmd.Float("rate")
	}

	opts.Query.IncludeClosed = cmd.Bool("include-closed")
	opts.Query.Subtasks = cmd.Bool("subtasks")
	opts.Query.Statuses = cmd.StringSlice("status")
	return opts
}
