// Package models defines the export records shared by the formatter, the bulk export engine and the CLI.
//
//   - [ListExport] : a list with its complete task listing
//   - [ListExportResult] : the outcome of exporting one list
//   - [BulkExportResult] : the summary written to the export manifest
package models
