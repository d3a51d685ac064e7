package fiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Window(t *testing.T) {
	t.Parallel()

	w, err := Resolve(2024, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Month)
	assert.Equal(t, time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC), w.StartDate)
	assert.Equal(t, time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC), w.EndDate)
	assert.Equal(t, 31, w.DayCount)
}

func TestResolve_JanuaryWrapsYear(t *testing.T) {
	t.Parallel()

	w, err := Resolve(2024, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.December, 21, 0, 0, 0, 0, time.UTC), w.StartDate)
	assert.Equal(t, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), w.EndDate)
	assert.Equal(t, 31, w.DayCount)
}

func TestResolve_LeapFebruary(t *testing.T) {
	t.Parallel()

	// The March window spans February 29 in leap years.
	leap, err := Resolve(2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 29, leap.DayCount)

	plain, err := Resolve(2023, 3)
	require.NoError(t, err)
	assert.Equal(t, 28, plain.DayCount)
}

func TestResolve_InvalidMonth(t *testing.T) {
	t.Parallel()

	for _, month := range []int{0, 13, -1, 100} {
		_, err := Resolve(2024, month)
		assert.ErrorIs(t, err, ErrInvalidMonth, "month=%d", month)
	}
}

func TestResolveYear(t *testing.T) {
	t.Parallel()

	windows := ResolveYear(2024)
	require.Len(t, windows, 12)

	total := 0
	for i, w := range windows {
		assert.Equal(t, i+1, w.Month)
		assert.Equal(t, 21, w.StartDate.Day())
		assert.Equal(t, 20, w.EndDate.Day())
		total += w.DayCount
	}
	// The twelve windows tile Dec 21 2023 through Dec 20 2024 without
	// gaps, a span that includes the 2024 leap day.
	assert.Equal(t, 366, total)
}

func TestMonthWindow_Label(t *testing.T) {
	t.Parallel()

	w, err := Resolve(2024, 4)
	require.NoError(t, err)
	assert.Equal(t, "4月 (3/21～4/20)", w.Label())

	jan, err := Resolve(2024, 1)
	require.NoError(t, err)
	assert.Equal(t, "1月 (12/21～1/20)", jan.Label())
}
