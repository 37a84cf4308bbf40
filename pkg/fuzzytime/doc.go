// Package fuzzytime converts free-text dates and durations into the numeric forms the ClickUp API expects.
//
// # Absolute expressions
//
// [Resolver.ToUnix] interprets text such as "march 2 2021" or "december 1st" against a reference instant
// and returns Unix milliseconds as a base-10 string. Parsing is delegated to go-dateparser; a missing year
// resolves relative to the reference instant.
//
// # Duration expressions
//
// [Resolver.ToSeconds] sums "<quantity> <unit>" pairs ("36 hours", "three days", "1 week 2 days").
// Quantities are integers or English number words. Units and their second values:
//
//	min, mins, minute, minutes  60
//	hour, hours                 3600
//	day, days                   86400
//	week, weeks                 604800
//	month, months               2419200   (28 days)
//	year, years                 31536000  (365 days)
//
// Input that is already a plain non-negative integer is returned unchanged.
//
// # Errors
//
// Failures are reported as [*ConversionError], which matches [ErrTimeConversion] with [errors.Is].
// Input with no recognizable unit fails unless the resolver was built with [WithLenientDurations],
// in which case it resolves to "0".
package fuzzytime
