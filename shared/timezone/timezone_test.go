package timezone_test

import (
	"frontdesk/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-03")
	require.NoError(t, err)

	assert.Equal(t, timezone.Date(2024, time.June, 3), parsed)

	_, err = timezone.Parse("2006-01-02", "03.06.2024")
	assert.Error(t, err)
}

func TestDayKeepsCalendarFields(t *testing.T) {
	fromStore := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	day := timezone.Day(fromStore)

	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.June, day.Month())
	assert.Equal(t, 3, day.Day())
	assert.Equal(t, timezone.GetLocation(), day.Location())
}

func TestTimezoneFormat(t *testing.T) {
	day := timezone.Date(2024, time.January, 1)

	assert.Equal(t, "2024-01-01", timezone.Format(day, "2006-01-02"))
}

func TestFormatDay(t *testing.T) {
	previous := timezone.GetLocation().String()
	t.Cleanup(func() { require.NoError(t, timezone.Load(previous)) })

	fromStore := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"UTC", "America/New_York", "Pacific/Auckland"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, timezone.Load(name))

			assert.Equal(t, "2024-06-01", timezone.FormatDay(fromStore, "2006-01-02"))
			assert.Equal(t, "2024-06-01", timezone.FormatDay(timezone.Date(2024, time.June, 1), "2006-01-02"))
		})
	}
}

func TestLoadUnknownKeepsLocation(t *testing.T) {
	before := timezone.GetLocation()

	assert.Error(t, timezone.Load("Mars/Olympus_Mons"))
	assert.Equal(t, before, timezone.GetLocation())
}
