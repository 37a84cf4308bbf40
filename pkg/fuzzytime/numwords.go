package fuzzytime

import (
	"math"
	"strconv"
	"strings"
)

var smallNumbers = map[string]int64{
	"zero": 0, "a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var magnitudes = map[string]int64{
	"thousand": 1_000,
	"million":  1_000_000,
}

// ParseWords converts English number words ("twenty one", "a hundred and five", "forty-two") to an integer.
//
// Digit tokens are accepted inside a phrase ("and 30"). The bool is false when any token is not a number word
// or the value does not fit in an int64.
func ParseWords(text string) (int64, bool) {
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(text, "-", " ")))
	if len(fields) == 0 {
		return 0, false
	}

	var total, current int64
	var seen bool
	for _, w := range fields {
		switch {
		case w == "and" || w == "of":
			continue
		case w == "hundred":
			if current == 0 {
				current = 1
			}
			if current > math.MaxInt64/100 {
				return 0, false
			}
			current *= 100
		case magnitudes[w] > 0:
			if current == 0 {
				current = 1
			}
			if current > math.MaxInt64/magnitudes[w] || total > math.MaxInt64-current*magnitudes[w] {
				return 0, false
			}
			total += current * magnitudes[w]
			current = 0
		default:
			n, ok := smallNumbers[w]
			if !ok {
				parsed, err := strconv.ParseInt(w, 10, 64)
				if err != nil || parsed < 0 {
					return 0, false
				}
				n = parsed
			}
			if current > math.MaxInt64-n {
				return 0, false
			}
			current += n
		}
		seen = true
	}

	if !seen || total > math.MaxInt64-current {
		return 0, false
	}
	return total + current, true
}
