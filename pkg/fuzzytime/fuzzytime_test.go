package fuzzytime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 10, 30, 0, 0, time.Local)
}

func TestToSeconds(t *testing.T) {
	r := New(WithNow(fixedNow))

	t.Run("Numeric Passthrough", func(t *testing.T) {
		for _, in := range []string{"0", "18000", "1595282645000", " 42 "} {
			got, err := r.ToSeconds(in)
			if err != nil {
				t.Fatalf("ToSeconds(%q) returned error: %v", in, err)
			}
			if got != in {
				t.Errorf("ToSeconds(%q) = %q, want input unchanged", in, got)
			}
		}
	})

	t.Run("Units", func(t *testing.T) {
		tc := []struct {
			name string
			in   string
			want string
		}{
			{name: "five hours", in: "5 hours", want: "18000"},
			{name: "six hours", in: "6 hours", want: "21600"},
			{name: "singular minute", in: "1 minute", want: "60"},
			{name: "plural minutes", in: "3 minutes", want: "180"},
			{name: "min alias", in: "15 min", want: "900"},
			{name: "mins alias", in: "45 mins", want: "2700"},
			{name: "singular hour", in: "1 hour", want: "3600"},
			{name: "singular day", in: "1 day", want: "86400"},
			{name: "plural days", in: "2 days", want: "172800"},
			{name: "singular week", in: "1 week", want: "604800"},
			{name: "plural weeks", in: "2 weeks", want: "1209600"},
			{name: "month is 28 days", in: "1 month", want: "2419200"},
			{name: "year is 365 days", in: "1 year", want: "31536000"},
			{name: "thirty six hours", in: "36 hours", want: "129600"},
			{name: "mixed case", in: "2 HOURS", want: "7200"},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := r.ToSeconds(tt.in)
				if err != nil {
					t.Fatalf("ToSeconds(%q) returned error: %v", tt.in, err)
				}
				if got != tt.want {
					t.Errorf("ToSeconds(%q) = %s, want %s", tt.in, got, tt.want)
				}
			})
		}
	})

	t.Run("Number Words", func(t *testing.T) {
		tc := []struct {
			in   string
			want string
		}{
			{in: "three days", want: "259200"},
			{in: "twenty one minutes", want: "1260"},
			{in: "an hour", want: "3600"},
			{in: "a hundred and five minutes", want: "6300"},
			{in: "forty-five minutes", want: "2700"},
		}

		for _, tt := range tc {
			got, err := r.ToSeconds(tt.in)
			if err != nil {
				t.Fatalf("ToSeconds(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ToSeconds(%q) = %s, want %s", tt.in, got, tt.want)
			}
		}
	})

	t.Run("Compound Durations", func(t *testing.T) {
		tc := []struct {
			in   string
			want string
		}{
			{in: "1 hour 30 minutes", want: "5400"},
			{in: "1 hour, 30 minutes", want: "5400"},
			{in: "1 hour and 30 minutes", want: "5400"},
			{in: "2 weeks 3 days", want: "1468800"},
		}

		for _, tt := range tc {
			got, err := r.ToSeconds(tt.in)
			if err != nil {
				t.Fatalf("ToSeconds(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ToSeconds(%q) = %s, want %s", tt.in, got, tt.want)
			}
		}
	})

	t.Run("Unit Laws", func(t *testing.T) {
		for unit, secs := range unitSeconds {
			for _, n := range []int64{0, 1, 7} {
				in := strconv.FormatInt(n, 10) + " " + unit
				got, err := r.Seconds(in)
				if err != nil {
					t.Fatalf("Seconds(%q) returned error: %v", in, err)
				}
				if got != n*secs {
					t.Errorf("Seconds(%q) = %d, want %d", in, got, n*secs)
				}
			}
		}
	})

	t.Run("Failures", func(t *testing.T) {
		for _, in := range []string{
			"", "soon", "sdfsdfsdf", "hours", "-5 hours", "many days",
			"5 hours sdfsdf", "1 hour 30",
			"300000000000 years", "9223372036854775807 minutes", "99999999999999999999 hours",
		} {
			_, err := r.ToSeconds(in)
			if err == nil {
				t.Errorf("ToSeconds(%q) expected error", in)
				continue
			}
			if !errors.Is(err, ErrTimeConversion) {
				t.Errorf("ToSeconds(%q) error should match ErrTimeConversion, got %v", in, err)
			}

			var ce *ConversionError
			if !errors.As(err, &ce) {
				t.Fatalf("ToSeconds(%q) error should be *ConversionError, got %T", in, err)
			}
			if ce.Code != CodeTimeConversion {
				t.Errorf("expected code %q, got %q", CodeTimeConversion, ce.Code)
			}
		}
	})

	t.Run("Int64 Boundary", func(t *testing.T) {
		largest := int64(math.MaxInt64 / 3600)

		got, err := r.Seconds(fmt.Sprintf("%d hours", largest))
		if err != nil {
			t.Fatalf("expected the largest whole hour count to fit, got %v", err)
		}
		if got != largest*3600 {
			t.Errorf("expected %d, got %d", largest*3600, got)
		}

		tooLarge := fmt.Sprintf("%d hours", largest+1)
		if n, err := r.Seconds(tooLarge); !errors.Is(err, ErrTimeConversion) {
			t.Errorf("Seconds(%q) = %d, %v; want ErrTimeConversion", tooLarge, n, err)
		}
		if s, err := r.ToSeconds(tooLarge); !errors.Is(err, ErrTimeConversion) {
			t.Errorf("ToSeconds(%q) = %s, %v; want ErrTimeConversion", tooLarge, s, err)
		}

		sum := fmt.Sprintf("%d hours %d hours", largest, 1)
		if n, err := r.Seconds(sum); err == nil {
			t.Errorf("Seconds(%q) = %d, want an overflow error", sum, n)
		}
	})

	t.Run("Trailing Text", func(t *testing.T) {
		for _, in := range []string{"5 hours sdfsdf", "1 hour 30", "2 days and"} {
			if n, err := r.Seconds(in); !errors.Is(err, ErrTimeConversion) {
				t.Errorf("Seconds(%q) = %d, %v; want ErrTimeConversion", in, n, err)
			}
			if s, err := r.ToSeconds(in); !errors.Is(err, ErrTimeConversion) {
				t.Errorf("ToSeconds(%q) = %s, %v; want ErrTimeConversion", in, s, err)
			}
		}
	})

	t.Run("Lenient Durations", func(t *testing.T) {
		lenient := New(WithLenientDurations())

		got, err := lenient.ToSeconds("soon")
		if err != nil {
			t.Fatalf("expected no error in lenient mode, got %v", err)
		}
		if got != "0" {
			t.Errorf("expected 0, got %s", got)
		}

		got, err = lenient.ToSeconds("5 hours sdfsdf")
		if err != nil || got != "18000" {
			t.Errorf("expected lenient mode to ignore trailing text, got %s, %v", got, err)
		}

		if _, err := lenient.ToSeconds("many hours"); err == nil {
			t.Error("lenient mode should still reject a bad quantity")
		}
	})
}

func TestSeconds(t *testing.T) {
	t.Run("Parses Passthrough", func(t *testing.T) {
		got, err := New().Seconds(" 3600 ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != 3600 {
			t.Errorf("expected 3600, got %d", got)
		}
	})

	t.Run("Package Default", func(t *testing.T) {
		got, err := Seconds("2 hours")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != 7200 {
			t.Errorf("expected 7200, got %d", got)
		}
	})
}

func TestToUnix(t *testing.T) {
	r := New(WithNow(fixedNow))

	t.Run("Explicit Date", func(t *testing.T) {
		got, err := r.ToUnix("december 1 2022")
		if err != nil {
			t.Fatalf("ToUnix returned error: %v", err)
		}

		want := strconv.FormatInt(time.Date(2022, time.December, 1, 0, 0, 0, 0, time.Local).UnixMilli(), 10)
		if got != want {
			t.Errorf("ToUnix(december 1 2022) = %s, want %s", got, want)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		tc := []struct {
			in    string
			year  int
			month time.Month
			day   int
		}{
			{in: "march 2 2021", year: 2021, month: time.March, day: 2},
			{in: "december 1 2022", year: 2022, month: time.December, day: 1},
			{in: "July 4 2019", year: 2019, month: time.July, day: 4},
			{in: "january 15 2030", year: 2030, month: time.January, day: 15},
		}

		for _, tt := range tc {
			t.Run(tt.in, func(t *testing.T) {
				got, err := r.ToUnix(tt.in)
				if err != nil {
					t.Fatalf("ToUnix(%q) returned error: %v", tt.in, err)
				}

				ms, err := strconv.ParseInt(got, 10, 64)
				if err != nil {
					t.Fatalf("result is not an integer: %q", got)
				}

				back := time.UnixMilli(ms).In(time.Local)
				if back.Year() != tt.year || back.Month() != tt.month || back.Day() != tt.day {
					t.Errorf("round trip of %q gave %s", tt.in, back.Format(time.DateOnly))
				}
			})
		}
	})

	t.Run("Missing Year Uses Reference", func(t *testing.T) {
		tm, err := r.ToTime("december 1")
		if err != nil {
			t.Fatalf("ToTime returned error: %v", err)
		}
		if tm.Month() != time.December || tm.Day() != 1 {
			t.Errorf("expected December 1, got %s", tm.Format(time.DateOnly))
		}
		if tm.Year() < 2024 || tm.Year() > 2025 {
			t.Errorf("expected year relative to reference 2024, got %d", tm.Year())
		}
	})

	t.Run("Failures", func(t *testing.T) {
		for _, in := range []string{"sdfsdfsdf", "", "   "} {
			_, err := r.ToUnix(in)
			if err == nil {
				t.Errorf("ToUnix(%q) expected error", in)
				continue
			}
			if !errors.Is(err, ErrTimeConversion) {
				t.Errorf("expected ErrTimeConversion, got %v", err)
			}

			var ce *ConversionError
			if errors.As(err, &ce) && ce.Message != msgNotConvertible {
				t.Errorf("unexpected message %q", ce.Message)
			}
		}
	})
}

func TestParseWords(t *testing.T) {
	tc := []struct {
		in   string
		want int64
		ok   bool
	}{
		{in: "zero", want: 0, ok: true},
		{in: "seven", want: 7, ok: true},
		{in: "ninety nine", want: 99, ok: true},
		{in: "one thousand two hundred", want: 1200, ok: true},
		{in: "and 30", want: 30, ok: true},
		{in: "lots", ok: false},
		{in: "9223372036854775807 thousand", ok: false},
		{in: "9223372036854775807 and one", ok: false},
		{in: "and", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tc {
		got, ok := ParseWords(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseWords(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseWords(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
