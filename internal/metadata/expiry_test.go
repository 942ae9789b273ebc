package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractapi/internal/model"
)

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC)

	t.Run("nil expiry", func(t *testing.T) {
		assert.Nil(t, DaysUntilExpiry(nil, now))
	})

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"same day", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 0},
		{"tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), 1},
		{"fifteen days", time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), 15},
		{"partial day rounds up", time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC), 2},
		{"yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysUntilExpiry(&tt.expiry, now)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseExpiry(t *testing.T) {
	got, err := ParseExpiry("2099-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2099-01-01T00:00:00.000Z", FormatExpiry(got))

	got, err = ParseExpiry("2099-01-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2099-01-01T08:30:00.000Z", FormatExpiry(got))

	_, err = ParseExpiry("01/01/2099")
	assert.Error(t, err)
}

func TestResolveExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC)

	exp := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	date, status := ResolveExpiry(&exp, now)
	assert.Equal(t, exp, date)
	assert.Equal(t, model.ContractStatusActive, status)

	date, status = ResolveExpiry(nil, now)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, model.ContractStatusActionRequired, status)
}

func TestWithinNoticeWindow(t *testing.T) {
	d := func(n int) *int { return &n }
	assert.False(t, WithinNoticeWindow(nil))
	assert.True(t, WithinNoticeWindow(d(0)))
	assert.True(t, WithinNoticeWindow(d(90)))
	assert.False(t, WithinNoticeWindow(d(91)))
	assert.False(t, WithinNoticeWindow(d(-1)))
}

func TestIsReminderThreshold(t *testing.T) {
	for _, d := range []int{30, 15, 10, 5, 1} {
		assert.True(t, IsReminderThreshold(d), d)
	}
	for _, d := range []int{0, 2, 14, 16, 29, 31} {
		assert.False(t, IsReminderThreshold(d), d)
	}
}
