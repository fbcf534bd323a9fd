package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"mockapi/src/domain/entities"
)

type OrderStub struct {
	order entities.Order
}

func NewOrderStub() OrderStub {
	order := entities.Order{
		ID:        gofakeit.IntRange(1, 1000),
		UserID:    gofakeit.IntRange(1, 100),
		Items:     []entities.OrderItem{},
		Status:    entities.OrderPending,
		CreatedAt: gofakeit.Date().UTC().Truncate(time.Second).Format(time.RFC3339),
	}

	return OrderStub{order: order}
}

func (o OrderStub) WithID(id int) OrderStub {
	o.order.ID = id
	return o
}

// WithItem appends a line item. Total is left untouched.
func (o OrderStub) WithItem(productID int, quantity int, price float64) OrderStub {
	items := make([]entities.OrderItem, len(o.order.Items), len(o.order.Items)+1)
	copy(items, o.order.Items)
	o.order.Items = append(items, entities.OrderItem{ProductID: productID, Quantity: quantity, Price: price})
	return o
}

func (o OrderStub) WithTotal(total float64) OrderStub {
	o.order.Total = total
	return o
}

func (o OrderStub) Get() entities.Order {
	return o.order
}
