// Package clickup is a typed client for the ClickUp v2 REST API.
//
// # Client
//
// [New] builds a [Client] from an API token. Every method maps to one request against
// [DefaultBaseURL]: lists, folders, tasks, attachments, comments, checklists, members,
// goals, tags, spaces, teams, the shared hierarchy and time tracking.
//
// Personal tokens are sent bare in the Authorization header; OAuth access tokens need
// [WithTokenType]("Bearer").
//
// # Human input
//
// Date fields and filters (due dates, start dates, date_*_gt/lt, time entry bounds) accept
// either a Unix millisecond timestamp or free text, which is resolved with [fuzzytime].
// Time estimates accept milliseconds or a duration such as "90 minutes".
//
// # Errors
//
// Every failure is a [*ClientError]. Remote failures carry the HTTP status as Code and the
// payload's "err" text as Message; local ones use the Code* constants:
//   - [CodePriorityOutOfRange] : priority outside 1..4
//   - [CodeInvalidOrderBy] : order_by not one of id, created, updated, due_date
//   - [CodeTimeConversion] : a date or duration that could not be resolved
//   - [CodeInvalidArgument] : a missing id or required field
//
// HTTP 429 is reported with the message "Rate limit exceeded" and is not retried.
package clickup
