package timeframe_test

import (
	"context"
	"errors"
	"frontdesk/internal/domains/timeframe"
	"frontdesk/shared/daterange"
	"frontdesk/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func june(d int) *time.Time {
	day := timezone.Date(2024, time.June, d)

	return &day
}

func seeded(t *testing.T, from, to *time.Time) (*timeframe.Validator, *[]timeframe.Event) {
	t.Helper()

	v := timeframe.New(timeframe.Availability)
	require.NoError(t, v.Replace(context.Background(), daterange.New(from, to)))

	events := &[]timeframe.Event{}
	v.Subscribe(func(_ context.Context, e timeframe.Event) {
		*events = append(*events, e)
	})

	return v, events
}

func TestValidator_RejectedFromEdit(t *testing.T) {
	v, events := seeded(t, june(10), june(15))

	err := v.OnFromChanged(context.Background(), june(10), june(20))

	var validationErr *timeframe.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, timeframe.FieldFrom, validationErr.Field)
	assert.Equal(t, "'from' date cannot be after 'to' date!", validationErr.Message)
	assert.True(t, daterange.New(june(10), june(15)).Equal(validationErr.Range))
	assert.True(t, daterange.New(june(10), june(15)).Equal(v.Range()))
	assert.Empty(t, *events)
}

func TestValidator_RejectedFromEditWithoutPrevious(t *testing.T) {
	v, events := seeded(t, nil, june(15))

	err := v.OnFromChanged(context.Background(), nil, june(20))

	assert.Error(t, err)
	assert.True(t, daterange.New(june(15), june(15)).Equal(v.Range()), "reverts to the to side")
	assert.Empty(t, *events)
}

func TestValidator_RejectedFromEditWithPreviousAfterTo(t *testing.T) {
	v, events := seeded(t, june(10), june(15))

	err := v.OnFromChanged(context.Background(), june(20), june(25))

	var validationErr *timeframe.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, daterange.New(june(15), june(15)).Equal(validationErr.Range))
	assert.True(t, v.Range().Ordered())
	assert.True(t, daterange.New(june(15), june(15)).Equal(v.Range()))
	assert.Empty(t, *events)
}

func TestValidator_RejectedToEdit(t *testing.T) {
	tests := []struct {
		name     string
		previous *time.Time
		want     daterange.Range
	}{
		{name: "reverts to previous", previous: june(15), want: daterange.New(june(10), june(15))},
		{name: "reverts to from", previous: nil, want: daterange.New(june(10), june(10))},
		{name: "previous before from", previous: june(8), want: daterange.New(june(10), june(10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, events := seeded(t, june(10), june(15))

			err := v.OnToChanged(context.Background(), tt.previous, june(5))

			var validationErr *timeframe.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, timeframe.FieldTo, validationErr.Field)
			assert.Equal(t, "'to' date cannot be before 'from' date!", validationErr.Message)
			assert.True(t, tt.want.Equal(v.Range()))
			assert.Empty(t, *events)
		})
	}
}

func TestValidator_AcceptedEdits(t *testing.T) {
	v, events := seeded(t, june(10), june(15))
	ctx := context.Background()

	require.NoError(t, v.OnFromChanged(ctx, june(10), june(12)))
	require.NoError(t, v.OnToChanged(ctx, june(15), june(12)), "equal sides are ordered")
	require.NoError(t, v.SetFrom(ctx, nil))
	require.NoError(t, v.SetTo(ctx, june(30)))

	want := []daterange.Range{
		daterange.New(june(12), june(15)),
		daterange.New(june(12), june(12)),
		daterange.New(nil, june(12)),
		daterange.New(nil, june(30)),
	}

	require.Len(t, *events, len(want))

	for i, e := range *events {
		assert.Equal(t, timeframe.Availability, e.ID)
		assert.True(t, want[i].Equal(e.Range), "event %d: got %s want %s", i, e.Range, want[i])
		assert.True(t, e.Range.Ordered())
	}
}

func TestValidator_PairAlwaysOrdered(t *testing.T) {
	v, events := seeded(t, nil, nil)
	ctx := context.Background()

	edits := []struct {
		field timeframe.Field
		day   int
	}{
		{timeframe.FieldFrom, 10}, {timeframe.FieldTo, 5}, {timeframe.FieldTo, 20},
		{timeframe.FieldFrom, 25}, {timeframe.FieldFrom, 20}, {timeframe.FieldTo, 19},
		{timeframe.FieldTo, 20}, {timeframe.FieldFrom, 1},
	}

	for _, edit := range edits {
		_ = v.Set(ctx, edit.field, june(edit.day))

		assert.True(t, v.Range().Ordered(), "after %s=%d got %s", edit.field, edit.day, v.Range())
	}

	for _, e := range *events {
		assert.True(t, e.Range.Ordered())
	}
}

func TestValidator_SetUnknownField(t *testing.T) {
	v := timeframe.New(timeframe.Bookings)

	assert.Error(t, v.Set(context.Background(), timeframe.Field("middle"), june(1)))
}

func TestValidator_Replace(t *testing.T) {
	v, events := seeded(t, june(10), june(15))

	require.NoError(t, v.Replace(context.Background(), daterange.New(june(20), june(25))))
	assert.Len(t, *events, 1)

	err := v.Replace(context.Background(), daterange.New(june(25), june(20)))

	assert.Error(t, err)
	assert.True(t, daterange.New(june(20), june(25)).Equal(v.Range()))
	assert.Len(t, *events, 1)
}

func TestParse(t *testing.T) {
	id, ok := timeframe.ParseID("bookings")
	assert.True(t, ok)
	assert.Equal(t, timeframe.Bookings, id)

	_, ok = timeframe.ParseID("rooms")
	assert.False(t, ok)

	field, ok := timeframe.ParseField("to")
	assert.True(t, ok)
	assert.Equal(t, timeframe.FieldTo, field)

	_, ok = timeframe.ParseField("")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	set := timeframe.NewSet()

	v, ok := set.Get(timeframe.Bookings)
	require.True(t, ok)
	assert.Same(t, set.Bookings, v)
	assert.Equal(t, timeframe.Bookings, v.ID())

	v, ok = set.Get(timeframe.Availability)
	require.True(t, ok)
	assert.Same(t, set.Availability, v)

	_, ok = set.Get(timeframe.ID("rooms"))
	assert.False(t, ok)

	assert.Len(t, set.All(), 2)
}
