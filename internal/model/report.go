package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSales is one row of a monthly sales report: aggregates for a product
// within the selected branch/year/month.
type ProductSales struct {
	Product   string
	Quantity  decimal.Decimal // sum of quantities
	UnitPrice decimal.Decimal // arithmetic mean of unit prices
	Total     decimal.Decimal // sum of totals
}

// PricePoint is one observed unit price for a product on a date.
type PricePoint struct {
	Date      time.Time
	UnitPrice decimal.Decimal
}

// DayTotal is the summed sales total for one day of the week.
type DayTotal struct {
	Day   time.Weekday
	Total decimal.Decimal
}

// Preference ranks a product by units sold within the selected filters.
type Preference struct {
	Product   string
	UnitsSold decimal.Decimal
	Revenue   decimal.Decimal
}
