// Package timeframe keeps a (from, to) date pair ordered. Edits that would invert the pair are
// rejected and the edited side is reverted; accepted edits are published to subscribers.
package timeframe

import (
	"context"
	"fmt"
	"frontdesk/shared/daterange"
	"frontdesk/shared/observer"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ID tells subscribers which pair an event belongs to.
type ID string

const (
	Bookings     ID = "bookings"
	Availability ID = "availability"
)

func ParseID(value string) (ID, bool) {
	switch ID(value) {
	case Bookings, Availability:
		return ID(value), true
	default:
		return "", false
	}
}

type Field string

const (
	FieldFrom Field = "from"
	FieldTo   Field = "to"
)

func ParseField(value string) (Field, bool) {
	switch Field(value) {
	case FieldFrom, FieldTo:
		return Field(value), true
	default:
		return "", false
	}
}

const (
	MessageFromAfterTo  = "'from' date cannot be after 'to' date!"
	MessageToBeforeFrom = "'to' date cannot be before 'from' date!"
)

// Event is the timeframeChanged notification.
type Event struct {
	ID    ID              `json:"timeframe_id"`
	Range daterange.Range `json:"range"`
}

// ValidationError reports a rejected edit. Range is the pair after the revert.
type ValidationError struct {
	Field   Field
	Message string
	Range   daterange.Range
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Validator struct {
	id ID

	mu  sync.Mutex
	rng daterange.Range

	observers observer.Registry[Event]
}

func New(id ID) *Validator {
	return &Validator{id: id}
}

func (v *Validator) ID() ID {
	return v.id
}

// Range returns a copy of the current pair.
func (v *Validator) Range() daterange.Range {
	v.mu.Lock()
	defer v.mu.Unlock()

	return daterange.New(v.rng.From, v.rng.To)
}

func (v *Validator) Subscribe(fn observer.Func[Event]) observer.Handle {
	return v.observers.Subscribe(fn)
}

func (v *Validator) Unsubscribe(handle observer.Handle) bool {
	return v.observers.Unsubscribe(handle)
}

// OnFromChanged validates an edit of the from side. previous is the value the field held before
// the edit and is the revert target when it is present and still not after the to side;
// otherwise the from side falls back to the to side.
func (v *Validator) OnFromChanged(ctx context.Context, previous, next *time.Time) error {
	v.mu.Lock()

	if next != nil && v.rng.To != nil && next.After(*v.rng.To) {
		revert := previous
		if revert == nil || revert.After(*v.rng.To) {
			revert = v.rng.To
		}

		v.rng = daterange.New(revert, v.rng.To)
		reverted := daterange.New(v.rng.From, v.rng.To)
		v.mu.Unlock()

		return v.reject(FieldFrom, MessageFromAfterTo, reverted)
	}

	v.rng = daterange.New(next, v.rng.To)
	accepted := daterange.New(v.rng.From, v.rng.To)
	v.mu.Unlock()

	v.observers.Notify(ctx, Event{ID: v.id, Range: accepted})

	return nil
}

// OnToChanged is the mirror of OnFromChanged.
func (v *Validator) OnToChanged(ctx context.Context, previous, next *time.Time) error {
	v.mu.Lock()

	if next != nil && v.rng.From != nil && next.Before(*v.rng.From) {
		revert := previous
		if revert == nil || revert.Before(*v.rng.From) {
			revert = v.rng.From
		}

		v.rng = daterange.New(v.rng.From, revert)
		reverted := daterange.New(v.rng.From, v.rng.To)
		v.mu.Unlock()

		return v.reject(FieldTo, MessageToBeforeFrom, reverted)
	}

	v.rng = daterange.New(v.rng.From, next)
	accepted := daterange.New(v.rng.From, v.rng.To)
	v.mu.Unlock()

	v.observers.Notify(ctx, Event{ID: v.id, Range: accepted})

	return nil
}

// SetFrom edits the from side, using the currently held value as the previous one.
func (v *Validator) SetFrom(ctx context.Context, next *time.Time) error {
	return v.OnFromChanged(ctx, v.Range().From, next)
}

func (v *Validator) SetTo(ctx context.Context, next *time.Time) error {
	return v.OnToChanged(ctx, v.Range().To, next)
}

// Set edits the given side.
func (v *Validator) Set(ctx context.Context, field Field, next *time.Time) error {
	switch field {
	case FieldFrom:
		return v.SetFrom(ctx, next)
	case FieldTo:
		return v.SetTo(ctx, next)
	default:
		return fmt.Errorf("unknown timeframe field %q", field)
	}
}

// Replace swaps in a whole pair with a single notification. An inverted pair is rejected and
// the held pair is left untouched.
func (v *Validator) Replace(ctx context.Context, rng daterange.Range) error {
	if !rng.Ordered() {
		return v.reject(FieldFrom, MessageFromAfterTo, v.Range())
	}

	v.mu.Lock()
	v.rng = daterange.New(rng.From, rng.To)
	accepted := daterange.New(v.rng.From, v.rng.To)
	v.mu.Unlock()

	v.observers.Notify(ctx, Event{ID: v.id, Range: accepted})

	return nil
}

func (v *Validator) reject(field Field, message string, reverted daterange.Range) error {
	log.Warn().
		Str("timeframe", string(v.id)).
		Str("field", string(field)).
		Str("range", reverted.String()).
		Msg(message)

	return &ValidationError{Field: field, Message: message, Range: reverted}
}

// Set holds the pairs hosted by the desk.
type Set struct {
	Bookings     *Validator
	Availability *Validator
}

func NewSet() *Set {
	return &Set{
		Bookings:     New(Bookings),
		Availability: New(Availability),
	}
}

func (s *Set) Get(id ID) (*Validator, bool) {
	switch id {
	case Bookings:
		return s.Bookings, true
	case Availability:
		return s.Availability, true
	default:
		return nil, false
	}
}

func (s *Set) All() []*Validator {
	return []*Validator{s.Bookings, s.Availability}
}
