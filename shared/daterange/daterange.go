// Package daterange models the (from, to) pair behind every date picker pair on the desk.
package daterange

import (
	"fmt"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"time"
)

// Range is an ordered pair of calendar days. A nil side is unbounded.
type Range struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

func New(from, to *time.Time) Range {
	return Range{From: clone(from), To: clone(to)}
}

// Between returns a range bounded on both sides.
func Between(from, to time.Time) Range {
	return Range{From: &from, To: &to}
}

// Parse reads both sides in the constant.DateFormat layout. Empty strings leave that side unbounded.
func Parse(from, to string) (Range, error) {
	var r Range

	if from != constant.Empty {
		day, err := timezone.Parse(constant.DateFormat, from)
		if err != nil {
			return Range{}, fmt.Errorf("invalid from date %q: %w", from, err)
		}

		r.From = &day
	}

	if to != constant.Empty {
		day, err := timezone.Parse(constant.DateFormat, to)
		if err != nil {
			return Range{}, fmt.Errorf("invalid to date %q: %w", to, err)
		}

		r.To = &day
	}

	return r, nil
}

// Bounded reports whether both sides are present.
func (r Range) Bounded() bool {
	return r.From != nil && r.To != nil
}

// Ordered reports whether From <= To. A range with a missing side is always ordered.
func (r Range) Ordered() bool {
	if !r.Bounded() {
		return true
	}

	return !r.From.After(*r.To)
}

func (r Range) Equal(other Range) bool {
	return sameDay(r.From, other.From) && sameDay(r.To, other.To)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", format(r.From), format(r.To))
}

// FromString and ToString render a side for transport; an absent side is the empty string.
func (r Range) FromString() string {
	if r.From == nil {
		return constant.Empty
	}

	return timezone.FormatDay(*r.From, constant.DateFormat)
}

func (r Range) ToString() string {
	if r.To == nil {
		return constant.Empty
	}

	return timezone.FormatDay(*r.To, constant.DateFormat)
}

func format(day *time.Time) string {
	if day == nil {
		return "-"
	}

	return timezone.FormatDay(*day, constant.DateFormat)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}

func clone(day *time.Time) *time.Time {
	if day == nil {
		return nil
	}

	value := *day

	return &value
}
