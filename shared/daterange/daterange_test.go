package daterange_test

import (
	"frontdesk/shared/daterange"
	"frontdesk/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return timezone.Date(2024, time.June, d)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
		bounded bool
	}{
		{name: "both sides", from: "2024-06-03", to: "2024-06-10", bounded: true},
		{name: "only from", from: "2024-06-03"},
		{name: "only to", to: "2024-06-10"},
		{name: "neither side"},
		{name: "bad from", from: "06/03/2024", wantErr: true},
		{name: "bad to", from: "2024-06-03", to: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := daterange.Parse(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.bounded, r.Bounded())
			assert.Equal(t, tt.from, r.FromString())
			assert.Equal(t, tt.to, r.ToString())
		})
	}
}

func TestOrdered(t *testing.T) {
	assert.True(t, daterange.Between(day(3), day(10)).Ordered())
	assert.True(t, daterange.Between(day(3), day(3)).Ordered())
	assert.False(t, daterange.Between(day(10), day(3)).Ordered())

	from := day(10)
	assert.True(t, daterange.New(&from, nil).Ordered())
}

func TestNewCopiesDays(t *testing.T) {
	from := day(3)
	r := daterange.New(&from, nil)

	from = day(20)

	assert.Equal(t, day(3), *r.From)
}

func TestEqual(t *testing.T) {
	assert.True(t, daterange.Between(day(1), day(2)).Equal(daterange.Between(day(1), day(2))))
	assert.False(t, daterange.Between(day(1), day(2)).Equal(daterange.Between(day(1), day(3))))
	assert.True(t, daterange.Range{}.Equal(daterange.Range{}))
	assert.False(t, daterange.Range{}.Equal(daterange.Between(day(1), day(2))))
}

func TestParseOverlap(t *testing.T) {
	assert.Equal(t, daterange.OverlapEndpoint, daterange.ParseOverlap("endpoint"))
	assert.Equal(t, daterange.OverlapInterval, daterange.ParseOverlap("interval"))
	assert.Equal(t, daterange.OverlapInterval, daterange.ParseOverlap(""))
}

func TestPredicate(t *testing.T) {
	assert.Equal(t,
		"(b.checkin <= :to AND b.checkout >= :from)",
		daterange.OverlapInterval.Predicate("b.checkin", "b.checkout", "from", "to"),
	)
	assert.Equal(t,
		"((i.date_from >= :from AND i.date_from <= :to) OR (i.date_to >= :from AND i.date_to <= :to))",
		daterange.OverlapEndpoint.Predicate("i.date_from", "i.date_to", "from", "to"),
	)
}
