// Package tasks runs long ClickUp operations with progress reporting.
//
// # Bulk export
//
// [Exporter.BulkExport] exports many lists concurrently. Each worker pages through one list's tasks
// with [Exporter.FetchList] and writes them with the formatter package (json, csv, markdown or txt).
// All workers share one [rate.Limiter], so the configured rate bounds the whole run rather than each
// worker. A failing list is recorded in the result and does not stop the others; a 429 from the API
// is one such failure, it is not retried.
//
// When the run finishes an export_manifest.json summarizing every list is written to the output directory.
//
// # Progress Reporting
//
// Operations send [ProgressUpdate] values on an optional channel. Sends never block: an update is
// dropped when the channel is full.
package tasks
