package generators

import (
	"mockapi/src/domain/entities"

	"github.com/shopspring/decimal"
)

func round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// OrderTotal sums price * quantity over the line items with decimal
// arithmetic and rounds the result to cents.
func OrderTotal(items []entities.OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}
