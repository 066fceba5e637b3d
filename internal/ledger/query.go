package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salesview-dev/salesview/internal/model"
)

// MonthlyFilter narrows a monthly sales report. Zero values leave the
// corresponding dimension unfiltered; there is no "All Branches" sentinel at
// this layer.
type MonthlyFilter struct {
	Branch string
	Year   int
	Month  time.Month
}

// Filter narrows a query to an inclusive date range and/or an exact branch.
// Zero values leave the corresponding dimension unfiltered.
type Filter struct {
	From   time.Time
	To     time.Time
	Branch string
}

// ExportFilter additionally narrows by product.
type ExportFilter struct {
	Filter
	Product string
}

func (f Filter) matches(txn model.Transaction) bool {
	if f.Branch != "" && txn.Branch != f.Branch {
		return false
	}
	if !f.From.IsZero() && txn.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && txn.Date.After(f.To) {
		return false
	}
	return true
}

// weekdayOrder is the fixed report ordering for weekly summaries.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Branches returns the distinct branch names, alphabetically.
func (l *Ledger) Branches() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return distinct(l.txns, func(t model.Transaction) string { return t.Branch })
}

// Products returns the distinct product names, alphabetically.
func (l *Ledger) Products() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return distinct(l.txns, func(t model.Transaction) string { return t.Product })
}

// Years returns the distinct years present in the ledger, ascending. An empty
// ledger yields the current year so date pickers always have a choice.
func (l *Ledger) Years() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.txns) == 0 {
		return []int{time.Now().Year()}
	}

	seen := make(map[int]bool)
	var years []int
	for _, txn := range l.txns {
		y := txn.Date.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// MonthlySales filters by branch/year/month and aggregates per product:
// quantity and total are summed, unit price is the arithmetic mean of the
// matching rows. Rows are ordered by product name.
func (l *Ledger) MonthlySales(f MonthlyFilter) []model.ProductSales {
	l.mu.RLock()
	defer l.mu.RUnlock()

	type agg struct {
		qty, priceSum, total decimal.Decimal
		count                int64
	}
	groups := make(map[string]*agg)
	var order []string

	for _, txn := range l.txns {
		if f.Branch != "" && txn.Branch != f.Branch {
			continue
		}
		if f.Year != 0 && txn.Date.Year() != f.Year {
			continue
		}
		if f.Month != 0 && txn.Date.Month() != f.Month {
			continue
		}
		g, ok := groups[txn.Product]
		if !ok {
			g = &agg{}
			groups[txn.Product] = g
			order = append(order, txn.Product)
		}
		g.qty = g.qty.Add(txn.Quantity)
		g.priceSum = g.priceSum.Add(txn.UnitPrice)
		g.total = g.total.Add(txn.Total)
		g.count++
	}

	sort.Strings(order)
	rows := make([]model.ProductSales, 0, len(order))
	for _, product := range order {
		g := groups[product]
		rows = append(rows, model.ProductSales{
			Product:   product,
			Quantity:  g.qty,
			UnitPrice: g.priceSum.Div(decimal.NewFromInt(g.count)),
			Total:     g.total,
		})
	}
	return rows
}

// PriceHistory returns the distinct (date, unit price) pairs observed for a
// product, ascending by date.
func (l *Ledger) PriceHistory(product string) []model.PricePoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	var points []model.PricePoint
	for _, txn := range l.txns {
		if txn.Product != product {
			continue
		}
		key := txn.Date.Format(dateFormat) + "|" + txn.UnitPrice.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		points = append(points, model.PricePoint{Date: txn.Date, UnitPrice: txn.UnitPrice})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// WeeklySales sums totals per day of week within the inclusive [start, end]
// range, optionally narrowed to a branch. The result always has exactly seven
// rows in Monday..Sunday order; days without sales report zero.
func (l *Ledger) WeeklySales(start, end time.Time, branch string) []model.DayTotal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	byDay := make(map[time.Weekday]decimal.Decimal, 7)
	f := Filter{From: start, To: end, Branch: branch}
	for _, txn := range l.txns {
		if !f.matches(txn) {
			continue
		}
		day := txn.Date.Weekday()
		byDay[day] = byDay[day].Add(txn.Total)
	}

	rows := make([]model.DayTotal, 0, 7)
	for _, day := range weekdayOrder {
		rows = append(rows, model.DayTotal{Day: day, Total: byDay[day]})
	}
	return rows
}

// Preferences groups by product within the filter, summing units sold and
// revenue, ordered by units sold descending. Ties are broken by product name
// ascending so equal-volume products always rank deterministically.
func (l *Ledger) Preferences(f Filter) []model.Preference {
	l.mu.RLock()
	defer l.mu.RUnlock()

	type agg struct {
		units, revenue decimal.Decimal
	}
	groups := make(map[string]*agg)
	var order []string

	for _, txn := range l.txns {
		if !f.matches(txn) {
			continue
		}
		g, ok := groups[txn.Product]
		if !ok {
			g = &agg{}
			groups[txn.Product] = g
			order = append(order, txn.Product)
		}
		g.units = g.units.Add(txn.Quantity)
		g.revenue = g.revenue.Add(txn.Total)
	}

	sort.Strings(order)
	rows := make([]model.Preference, 0, len(order))
	for _, product := range order {
		g := groups[product]
		rows = append(rows, model.Preference{
			Product:   product,
			UnitsSold: g.units,
			Revenue:   g.revenue,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].UnitsSold.GreaterThan(rows[j].UnitsSold)
	})
	return rows
}

// Distribution returns the raw total of every matching transaction, in ledger
// order. Distribution statistics are computed by the caller, not here.
func (l *Ledger) Distribution(f Filter) []decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var totals []decimal.Decimal
	for _, txn := range l.txns {
		if f.matches(txn) {
			totals = append(totals, txn.Total)
		}
	}
	return totals
}

// Rows returns a copy of the matching transactions, in ledger order. Used by
// the export layer.
func (l *Ledger) Rows(f ExportFilter) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var rows []model.Transaction
	for _, txn := range l.txns {
		if !f.matches(txn) {
			continue
		}
		if f.Product != "" && txn.Product != f.Product {
			continue
		}
		rows = append(rows, txn)
	}
	return rows
}

func distinct(txns []model.Transaction, key func(model.Transaction) string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, txn := range txns {
		k := key(txn)
		if !seen[k] {
			seen[k] = true
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
