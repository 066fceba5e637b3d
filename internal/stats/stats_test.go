package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesview-dev/salesview/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decs(ss ...string) []decimal.Decimal {
	values := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		values[i] = dec(s)
	}
	return values
}

func TestDescribe(t *testing.T) {
	s, ok := Describe(decs("100", "200", "200", "50"))
	require.True(t, ok)

	assert.Equal(t, 4, s.Count)
	assert.True(t, dec("137.5").Equal(s.Mean), "mean: got %s", s.Mean)
	assert.True(t, dec("150").Equal(s.Median), "median: got %s", s.Median)
	assert.True(t, dec("200").Equal(s.Mode), "mode: got %s", s.Mode)
	assert.True(t, dec("50").Equal(s.Min))
	assert.True(t, dec("200").Equal(s.Max))
}

func TestDescribeEmpty(t *testing.T) {
	_, ok := Describe(nil)
	assert.False(t, ok)
}

func TestMedianOdd(t *testing.T) {
	assert.True(t, dec("30").Equal(Median(decs("50", "10", "30"))))
}

func TestMedianEven(t *testing.T) {
	assert.True(t, dec("20").Equal(Median(decs("40", "10", "30", "10"))))
}

func TestModeTieResolvesToSmallest(t *testing.T) {
	assert.True(t, dec("10").Equal(Mode(decs("30", "10", "30", "10", "20"))))
}

func TestModeSingleValue(t *testing.T) {
	assert.True(t, dec("42").Equal(Mode(decs("42"))))
}

func TestStdDevSample(t *testing.T) {
	// Sample of {2, 4, 4, 4, 5, 5, 7, 9}: variance with n-1 is 32/7.
	got, _ := StdDev(decs("2", "4", "4", "4", "5", "5", "7", "9")).Float64()
	assert.InDelta(t, 2.13809, got, 0.0001)
}

func TestStdDevBelowTwoValues(t *testing.T) {
	assert.True(t, StdDev(nil).IsZero())
	assert.True(t, StdDev(decs("7")).IsZero())
}

func TestSum(t *testing.T) {
	assert.True(t, dec("60.5").Equal(Sum(decs("10.25", "50.25"))))
	assert.True(t, Sum(nil).IsZero())
}

func TestSummarizePrices(t *testing.T) {
	history := []model.PricePoint{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), UnitPrice: dec("50")},
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), UnitPrice: dec("56")},
		{Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), UnitPrice: dec("53")},
	}

	s, ok := SummarizePrices(history)
	require.True(t, ok)
	assert.True(t, dec("53").Equal(s.Average))
	assert.True(t, dec("56").Equal(s.Max))
	assert.True(t, dec("50").Equal(s.Min))
	assert.True(t, dec("53").Equal(s.Current), "current price is the last point")
}

func TestSummarizePricesEmpty(t *testing.T) {
	_, ok := SummarizePrices(nil)
	assert.False(t, ok)
}

func TestSummarizeWeek(t *testing.T) {
	days := []model.DayTotal{
		{Day: time.Monday, Total: dec("100")},
		{Day: time.Tuesday, Total: dec("0")},
		{Day: time.Wednesday, Total: dec("200")},
		{Day: time.Thursday, Total: dec("0")},
		{Day: time.Friday, Total: dec("0")},
		{Day: time.Saturday, Total: dec("300")},
		{Day: time.Sunday, Total: dec("0")},
	}

	s := SummarizeWeek(days)
	assert.True(t, dec("600").Equal(s.TotalRevenue))
	assert.Equal(t, 3, s.ActiveDays)
	assert.True(t, dec("200").Equal(s.AverageDaily), "average over active days only")
}

func TestSummarizeWeekNoSales(t *testing.T) {
	s := SummarizeWeek(make([]model.DayTotal, 7))
	assert.True(t, s.TotalRevenue.IsZero())
	assert.Equal(t, 0, s.ActiveDays)
	assert.True(t, s.AverageDaily.IsZero())
}
