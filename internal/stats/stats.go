// Package stats computes the descriptive statistics the report pages show
// alongside query results. The ledger itself never does this math.
package stats

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Summary holds descriptive statistics over a sample of sales totals.
type Summary struct {
	Count  int
	Mean   decimal.Decimal
	Median decimal.Decimal
	Mode   decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
	StdDev decimal.Decimal // sample standard deviation; zero below two values
}

// Describe computes all summary statistics over values. ok is false when the
// sample is empty.
func Describe(values []decimal.Decimal) (s Summary, ok bool) {
	if len(values) == 0 {
		return Summary{}, false
	}
	return Summary{
		Count:  len(values),
		Mean:   Mean(values),
		Median: Median(values),
		Mode:   Mode(values),
		Min:    Min(values),
		Max:    Max(values),
		StdDev: StdDev(values),
	}, true
}

// Mean returns the arithmetic mean. Panics on an empty sample.
func Mean(values []decimal.Decimal) decimal.Decimal {
	return Sum(values).Div(decimal.NewFromInt(int64(len(values))))
}

// Sum returns the exact sum of values.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Median returns the middle value of the sorted sample, or the mean of the
// two middle values for even-sized samples.
func Median(values []decimal.Decimal) decimal.Decimal {
	sorted := sortedCopy(values)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	two := decimal.NewFromInt(2)
	return sorted[n/2-1].Add(sorted[n/2]).Div(two)
}

// Mode returns the most frequent value; frequency ties resolve to the
// smallest value.
func Mode(values []decimal.Decimal) decimal.Decimal {
	counts := make(map[string]int)
	byKey := make(map[string]decimal.Decimal)
	for _, v := range values {
		k := v.String()
		counts[k]++
		byKey[k] = v
	}

	var mode decimal.Decimal
	best := 0
	for k, n := range counts {
		v := byKey[k]
		if n > best || (n == best && v.LessThan(mode)) {
			best = n
			mode = v
		}
	}
	return mode
}

// Min returns the smallest value. Panics on an empty sample.
func Min(values []decimal.Decimal) decimal.Decimal {
	m := values[0]
	for _, v := range values[1:] {
		if v.LessThan(m) {
			m = v
		}
	}
	return m
}

// Max returns the largest value. Panics on an empty sample.
func Max(values []decimal.Decimal) decimal.Decimal {
	m := values[0]
	for _, v := range values[1:] {
		if v.GreaterThan(m) {
			m = v
		}
	}
	return m
}

// StdDev returns the sample standard deviation (n-1 denominator). Samples of
// fewer than two values have no spread and yield zero.
func StdDev(values []decimal.Decimal) decimal.Decimal {
	n := len(values)
	if n < 2 {
		return decimal.Zero
	}

	mean, _ := Mean(values).Float64()
	var ss float64
	for _, v := range values {
		f, _ := v.Float64()
		d := f - mean
		ss += d * d
	}
	return decimal.NewFromFloat(math.Sqrt(ss / float64(n-1)))
}

func sortedCopy(values []decimal.Decimal) []decimal.Decimal {
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	return sorted
}
