package balancing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	balancing "github.com/kahawa/coffee-balancing/usecase/balancing"
)

func TestResolveRangeDaily(t *testing.T) {
	now := time.Date(2024, 3, 13, 15, 42, 7, 0, time.UTC) // a Wednesday

	rng, err := balancing.ResolveRange("daily", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-13"), rng.From)
	assert.Equal(t, date("2024-03-13"), rng.To)
}

func TestResolveRangeWeekly(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	rng, err := balancing.ResolveRange("weekly", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-11"), rng.From, "week starts on Monday")
	assert.Equal(t, date("2024-03-13"), rng.To)
}

func TestResolveRangeWeeklyOnSunday(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) // Sunday

	rng, err := balancing.ResolveRange("weekly", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-04"), rng.From, "Sunday belongs to the week started six days earlier")
	assert.Equal(t, date("2024-03-10"), rng.To)
}

func TestResolveRangeWeeklyOnMonday(t *testing.T) {
	now := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	rng, err := balancing.ResolveRange("weekly", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-11"), rng.From)
	assert.Equal(t, date("2024-03-11"), rng.To)
}

func TestResolveRangeMonthly(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	rng, err := balancing.ResolveRange("monthly", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-01"), rng.From)
	assert.Equal(t, date("2024-03-13"), rng.To)
}

func TestResolveRangeCustomVerbatim(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	rng, err := balancing.ResolveRange("custom", "2024-01-05", "2024-02-10", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-01-05"), rng.From)
	assert.Equal(t, date("2024-02-10"), rng.To)
}

func TestResolveRangeNamedPresetIgnoresExplicitDates(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	rng, err := balancing.ResolveRange("daily", "2020-01-01", "2020-12-31", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-13"), rng.From)
	assert.Equal(t, date("2024-03-13"), rng.To)
}

func TestResolveRangeExplicitDatesImplyCustom(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	rng, err := balancing.ResolveRange("", "2024-01-05", "2024-02-10", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-01-05"), rng.From)
	assert.Equal(t, date("2024-02-10"), rng.To)
}

func TestResolveRangeInverted(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	_, err := balancing.ResolveRange("custom", "2024-03-10", "2024-03-01", now)
	assert.ErrorIs(t, err, balancing.ErrInvalidRange)
}

func TestResolveRangeEmptyDefaultsToDaily(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	rng, err := balancing.ResolveRange("", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-13"), rng.From)
	assert.Equal(t, date("2024-03-13"), rng.To)
}

func TestResolveRangeUnknownPreset(t *testing.T) {
	_, err := balancing.ResolveRange("fortnightly", "", "", time.Now())
	assert.Error(t, err)
}
