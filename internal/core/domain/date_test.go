package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2025-12-04")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-04", d.String())
	assert.Equal(t, time.UTC, d.Location())

	_, err = domain.ParseDate("04/12/2025")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := domain.NewDate(2025, time.December, 4)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-04"`, string(data))

	var parsed domain.Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))

	var zero domain.Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &zero))
	assert.True(t, zero.IsZero())
}

func TestDaysSince(t *testing.T) {
	base := domain.NewDate(2025, time.January, 31)

	assert.Equal(t, 0, base.DaysSince(base))
	assert.Equal(t, 1, domain.NewDate(2025, time.February, 1).DaysSince(base))
	assert.Equal(t, 30, domain.NewDate(2025, time.March, 2).DaysSince(base))
	assert.Equal(t, -1, domain.NewDate(2025, time.January, 30).DaysSince(base))
}

func TestInRange(t *testing.T) {
	d := domain.NewDate(2025, time.June, 15)
	from := domain.NewDate(2025, time.June, 1)
	to := domain.NewDate(2025, time.June, 30)

	assert.True(t, d.InRange(from, to))
	assert.True(t, from.InRange(from, to), "bounds are inclusive")
	assert.True(t, to.InRange(from, to), "bounds are inclusive")
	assert.False(t, domain.NewDate(2025, time.July, 1).InRange(from, to))

	assert.True(t, d.InRange(domain.Date{}, domain.Date{}), "zero bounds are open")
	assert.True(t, d.InRange(from, domain.Date{}))
	assert.False(t, d.InRange(domain.NewDate(2025, time.June, 16), domain.Date{}))
}

func TestMonthStart(t *testing.T) {
	d := domain.NewDate(2025, time.June, 15)
	assert.Equal(t, "2025-06-01", d.MonthStart().String())
}
