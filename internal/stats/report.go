package stats

import (
	"github.com/shopspring/decimal"

	"github.com/salesview-dev/salesview/internal/model"
)

// PriceSummary condenses a product's price history for the price analysis page.
type PriceSummary struct {
	Average decimal.Decimal
	Max     decimal.Decimal
	Min     decimal.Decimal
	Current decimal.Decimal // most recent observed price
}

// SummarizePrices computes price statistics over a history ordered ascending
// by date. ok is false when the history is empty.
func SummarizePrices(history []model.PricePoint) (s PriceSummary, ok bool) {
	if len(history) == 0 {
		return PriceSummary{}, false
	}

	prices := make([]decimal.Decimal, len(history))
	for i, p := range history {
		prices[i] = p.UnitPrice
	}

	return PriceSummary{
		Average: Mean(prices),
		Max:     Max(prices),
		Min:     Min(prices),
		Current: history[len(history)-1].UnitPrice,
	}, true
}

// WeeklySummary condenses a weekly sales report.
type WeeklySummary struct {
	TotalRevenue decimal.Decimal
	AverageDaily decimal.Decimal // mean over days that had sales, not all seven
	ActiveDays   int
}

// SummarizeWeek computes the revenue totals for a seven-day report.
func SummarizeWeek(days []model.DayTotal) WeeklySummary {
	total := decimal.Zero
	active := 0
	for _, d := range days {
		total = total.Add(d.Total)
		if d.Total.IsPositive() {
			active++
		}
	}

	avg := decimal.Zero
	if active > 0 {
		avg = total.Div(decimal.NewFromInt(int64(active)))
	}
	return WeeklySummary{TotalRevenue: total, AverageDaily: avg, ActiveDays: active}
}
