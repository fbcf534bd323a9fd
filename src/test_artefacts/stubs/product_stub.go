package stubs

import (
	"github.com/brianvoe/gofakeit/v6"

	"mockapi/src/domain/entities"
)

type ProductStub struct {
	product entities.Product
}

func NewProductStub() ProductStub {
	product := entities.Product{
		ID:          gofakeit.IntRange(1, 1000),
		Title:       gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       9.99,
		Category:    "Electronics",
		Brand:       gofakeit.Company(),
		Stock:       gofakeit.IntRange(0, 500),
		Image:       gofakeit.ImageURL(640, 480),
		Rating: entities.Rating{
			Rate:  4.5,
			Count: gofakeit.IntRange(0, 1000),
		},
	}

	return ProductStub{product: product}
}

func (ps ProductStub) WithID(id int) ProductStub {
	ps.product.ID = id
	return ps
}

func (ps ProductStub) WithPrice(price float64) ProductStub {
	ps.product.Price = price
	return ps
}

func (ps ProductStub) Get() entities.Product {
	return ps.product
}
