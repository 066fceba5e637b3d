package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one sale event: a single row in sales_data.csv.
type Transaction struct {
	Date      time.Time
	Branch    string
	Product   string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal // stored as given; never recomputed from Quantity*UnitPrice
}
