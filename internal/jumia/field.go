package jumia

import (
	"regexp"
	"strconv"
	"strings"
)

// Presence records why a field holds the value it does.
type Presence int

const (
	// Absent means the source had nothing to parse.
	Absent Presence = iota
	// Invalid means text was present but did not parse.
	Invalid
	// Found means Value was parsed from the page.
	Found
)

func (p Presence) String() string {
	switch p {
	case Found:
		return "found"
	case Invalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Field is the outcome of extracting one value. Extractors never fail on a
// missing field; they record the outcome here and the public model gets a
// documented default.
type Field[T any] struct {
	Value    T
	Presence Presence
}

func found[T any](v T) Field[T] { return Field[T]{Value: v, Presence: Found} }

func absent[T any]() Field[T] { return Field[T]{Presence: Absent} }

func invalid[T any]() Field[T] { return Field[T]{Presence: Invalid} }

// Or returns the parsed value, or def when the field was not found.
func (f Field[T]) Or(def T) T {
	if f.Presence == Found {
		return f.Value
	}
	return def
}

// Ptr returns a pointer to the parsed value, or nil when not found.
func (f Field[T]) Ptr() *T {
	if f.Presence != Found {
		return nil
	}
	v := f.Value
	return &v
}

// nonZero returns a pointer to a found, non-zero value. Old prices, variation
// prices and listing ratings treat an explicit zero the same as a miss.
func nonZero(f Field[float64]) *float64 {
	if f.Presence != Found || f.Value == 0 {
		return nil
	}
	v := f.Value
	return &v
}

var (
	leadingFloat = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)`)
	leadingInt   = regexp.MustCompile(`^[-+]?\d+`)
)

// parseFloat reads the leading decimal number of s, ignoring trailing text
// such as the upper bound of a "1500-2000" price range.
func parseFloat(s string) Field[float64] {
	s = strings.TrimSpace(s)
	if s == "" {
		return absent[float64]()
	}
	m := leadingFloat.FindString(s)
	if m == "" {
		return invalid[float64]()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return invalid[float64]()
	}
	return found(v)
}

// parseInt reads the leading integer of s.
func parseInt(s string) Field[int] {
	s = strings.TrimSpace(s)
	if s == "" {
		return absent[int]()
	}
	m := leadingInt.FindString(s)
	if m == "" {
		return invalid[int]()
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return invalid[int]()
	}
	return found(v)
}

// parsePrice strips currency symbols, separators and whitespace from s before
// reading it as a decimal.
func (s *Schema) parsePrice(text string) Field[float64] {
	return parseFloat(s.PriceNoise.ReplaceAllString(text, ""))
}

// capture returns the first submatch of re in text.
func capture(re *regexp.Regexp, text string) Field[string] {
	if strings.TrimSpace(text) == "" {
		return absent[string]()
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return invalid[string]()
	}
	return found(m[1])
}

// captureInt is capture followed by parseInt. Thousands separators inside the
// captured digits are ignored.
func captureInt(re *regexp.Regexp, text string) Field[int] {
	c := capture(re, text)
	if c.Presence != Found {
		return Field[int]{Presence: c.Presence}
	}
	return parseInt(strings.ReplaceAll(c.Value, ",", ""))
}

func captureFloat(re *regexp.Regexp, text string) Field[float64] {
	c := capture(re, text)
	if c.Presence != Found {
		return Field[float64]{Presence: c.Presence}
	}
	return parseFloat(c.Value)
}
