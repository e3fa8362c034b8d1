package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveZone(t *testing.T) {
	assert.Equal(t, time.UTC, ResolveZone(""))
	assert.Equal(t, time.UTC, ResolveZone("Local"))
	assert.Equal(t, time.UTC, ResolveZone("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Taipei", ResolveZone("Asia/Taipei").String())
}

func TestNormalizeTimezone(t *testing.T) {
	assert.Equal(t, "Europe/Berlin", NormalizeTimezone("Europe/Berlin"))
	assert.Equal(t, DefaultTimezone, NormalizeTimezone("not-a-zone"))
	assert.Equal(t, DefaultTimezone, NormalizeTimezone(""))

	u := &User{}
	u.SetTimezone("bogus")
	assert.Equal(t, "UTC", u.Timezone)
	assert.Equal(t, time.UTC, u.Location())
}

func TestLocalDate(t *testing.T) {
	instant := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), LocalDate(instant, "UTC"))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), LocalDate(instant, "Asia/Tokyo"))
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), LocalDate(instant, "America/New_York"))
	assert.Equal(t, LocalDate(instant, "UTC"), LocalDate(instant, "invalid/zone"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no limit", func(t *testing.T) {
		s := Summarize(date, decimal.NewFromInt(10), nil)
		assert.Nil(t, s.Remaining)
		assert.False(t, s.Exceeded)
	})

	t.Run("under limit", func(t *testing.T) {
		limit := decimal.NewFromInt(300)
		s := Summarize(date, decimal.NewFromInt(120), &limit)
		require.NotNil(t, s.Remaining)
		assert.True(t, decimal.NewFromInt(180).Equal(*s.Remaining))
		assert.False(t, s.Exceeded)
	})

	t.Run("over limit clamps remaining", func(t *testing.T) {
		limit := decimal.NewFromInt(300)
		s := Summarize(date, decimal.NewFromInt(320), &limit)
		require.NotNil(t, s.Remaining)
		assert.True(t, s.Remaining.IsZero())
		assert.True(t, s.Exceeded)
	})
}

func TestNewDailyIntake(t *testing.T) {
	userID := uuid.New()
	d := NewDailyIntake(userID, time.Date(2024, 5, 1, 13, 45, 0, 0, time.FixedZone("X", 3600)))

	assert.True(t, d.IsNew())
	assert.Equal(t, userID, d.UserID)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d.Date)
	assert.True(t, d.TotalPhenylalanine.IsZero())
}
