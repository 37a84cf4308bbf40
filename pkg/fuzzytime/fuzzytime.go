package fuzzytime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

var (
	errNoUnit   = errors.New("no duration unit found")
	errOverflow = errors.New("duration too large")
)

// unitSeconds maps each recognized duration unit to its length in seconds.
var unitSeconds = map[string]int64{
	"min":     60,
	"mins":    60,
	"minute":  60,
	"minutes": 60,
	"hour":    3600,
	"hours":   3600,
	"day":     86400,
	"days":    86400,
	"week":    604800,
	"weeks":   604800,
	"month":   2419200,
	"months":  2419200,
	"year":    31536000,
	"years":   31536000,
}

// Resolver converts fuzzy text into timestamps and durations relative to a reference instant.
//
// The zero value is not usable; build one with [New].
type Resolver struct {
	now     func() time.Time
	loc     *time.Location
	lenient bool
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithNow sets the reference clock used for expressions without a year.
func WithNow(fn func() time.Time) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.now = fn
		}
	}
}

// WithLocation sets the timezone absolute expressions are interpreted in (default [time.Local]).
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithLenientDurations makes unit-less duration input resolve to "0" instead of failing.
func WithLenientDurations() Option {
	return func(r *Resolver) { r.lenient = true }
}

// New creates a [Resolver]. Without options it uses [time.Now] and [time.Local].
func New(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the package-level resolver used by [ToUnix], [ToSeconds] and [Seconds].
var Default = New()

// ToUnix resolves text with [Default].
func ToUnix(text string) (string, error) { return Default.ToUnix(text) }

// ToSeconds resolves text with [Default].
func ToSeconds(text string) (string, error) { return Default.ToSeconds(text) }

// Seconds resolves text with [Default].
func Seconds(text string) (int64, error) { return Default.Seconds(text) }

// ToTime interprets an absolute expression and returns the instant it names.
func (r *Resolver) ToTime(text string) (time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, dateError(text, errors.New("empty input"))
	}

	cfg := &dps.Configuration{
		CurrentTime:     r.now().In(r.loc),
		DefaultTimezone: r.loc,
	}

	dt, err := dps.Parse(cfg, text)
	if err != nil {
		return time.Time{}, dateError(text, err)
	}
	if dt.Time.IsZero() {
		return time.Time{}, dateError(text, nil)
	}
	return dt.Time, nil
}

// ToUnix interprets an absolute expression and returns Unix milliseconds as a base-10 string.
func (r *Resolver) ToUnix(text string) (string, error) {
	t, err := r.ToTime(text)
	if err != nil {
		return "", err
	}

	ms := t.UnixMilli()
	if ms < 0 {
		return "", dateError(text, fmt.Errorf("%s is before the epoch", t.Format(time.DateOnly)))
	}
	return strconv.FormatInt(ms, 10), nil
}

// ToSeconds converts a duration expression to a count of seconds.
//
// Input that is already a plain integer is returned unchanged, whitespace included.
func (r *Resolver) ToSeconds(text string) (string, error) {
	if IsNumeric(text) {
		return text, nil
	}

	total, err := r.sum(text)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(total, 10), nil
}

// Seconds is [Resolver.ToSeconds] in numeric form.
func (r *Resolver) Seconds(text string) (int64, error) {
	if IsNumeric(text) {
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return 0, durationError(text, err)
		}
		return n, nil
	}
	return r.sum(text)
}

// sum walks the tokens of text; each unit token consumes the tokens since the previous unit as its quantity.
func (r *Resolver) sum(text string) (int64, error) {
	var (
		total int64
		found bool
		qty   []string
	)

	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ",;.")
		if tok == "" {
			continue
		}

		secs, ok := unitSeconds[tok]
		if !ok {
			qty = append(qty, tok)
			continue
		}

		n, err := quantity(qty)
		if err != nil {
			return 0, durationError(text, err)
		}
		if n > math.MaxInt64/secs || total > math.MaxInt64-n*secs {
			return 0, durationError(text, errOverflow)
		}
		total += n * secs
		found = true
		qty = qty[:0]
	}

	switch {
	case !found && r.lenient:
		return 0, nil
	case !found:
		return 0, durationError(text, errNoUnit)
	case len(qty) > 0 && !r.lenient:
		return 0, durationError(text, fmt.Errorf("trailing text %q", strings.Join(qty, " ")))
	}
	return total, nil
}

func quantity(tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, errors.New("missing quantity")
	}

	if len(tokens) == 1 {
		n, err := strconv.ParseInt(tokens[0], 10, 64)
		switch {
		case err == nil && n < 0:
			return 0, fmt.Errorf("negative quantity %d", n)
		case err == nil:
			return n, nil
		case errors.Is(err, strconv.ErrRange):
			return 0, errOverflow
		}
	}

	n, ok := ParseWords(strings.Join(tokens, " "))
	if !ok {
		return 0, fmt.Errorf("unrecognized quantity %q", strings.Join(tokens, " "))
	}
	return n, nil
}

// IsNumeric reports whether text, ignoring surrounding whitespace, is a non-empty run of ASCII digits.
func IsNumeric(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
