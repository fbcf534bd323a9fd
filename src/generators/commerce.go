package generators

import (
	"mockapi/src/domain"
	"mockapi/src/domain/entities"
)

func generateProducts(src *Source, count int, parents Parents) ([]domain.Record, error) {
	categories, err := parentsOf[entities.ProductCategory](parents, domain.ProductCategories)
	if err != nil {
		return nil, err
	}

	return build(count, func(id int) entities.Product {
		return entities.Product{
			ID:          id,
			Title:       src.fake.ProductName(),
			Description: src.fake.ProductDescription(),
			Price:       src.Price(1, 999),
			Category:    pick(src, categories).Name,
			Brand:       src.fake.Company(),
			Stock:       src.IntRange(0, 500),
			Image:       src.fake.ImageURL(640, 480),
			Rating: entities.Rating{
				Rate:  round2(float64(src.IntRange(10, 50)) / 10),
				Count: src.IntRange(0, 1000),
			},
		}
	}), nil
}

func generateCarts(src *Source, count int, parents Parents) ([]domain.Record, error) {
	users := parents[domain.Users]
	products := parents[domain.Products]

	return build(count, func(id int) entities.Cart {
		items := make([]entities.CartItem, src.IntRange(1, 5))
		for i := range items {
			items[i] = entities.CartItem{
				ProductID: sampleID(src, products),
				Quantity:  src.IntRange(1, 5),
			}
		}
		return entities.Cart{
			ID:       id,
			UserID:   sampleID(src, users),
			Date:     src.Timestamp(90),
			Products: items,
		}
	}), nil
}

func generateOrders(src *Source, count int, parents Parents) ([]domain.Record, error) {
	users := parents[domain.Users]
	products, err := parentsOf[entities.Product](parents, domain.Products)
	if err != nil {
		return nil, err
	}

	return build(count, func(id int) entities.Order {
		items := make([]entities.OrderItem, src.IntRange(1, 4))
		for i := range items {
			product := pick(src, products)
			items[i] = entities.OrderItem{
				ProductID: product.ID,
				Quantity:  src.IntRange(1, 3),
				Price:     product.Price,
			}
		}
		return entities.Order{
			ID:        id,
			UserID:    sampleID(src, users),
			Items:     items,
			Total:     OrderTotal(items),
			Status:    pick(src, entities.OrderStatuses),
			CreatedAt: src.Timestamp(180),
		}
	}), nil
}

func generatePayments(src *Source, count int, parents Parents) ([]domain.Record, error) {
	orders, err := parentsOf[entities.Order](parents, domain.Orders)
	if err != nil {
		return nil, err
	}

	return build(count, func(id int) entities.Payment {
		order := pick(src, orders)
		return entities.Payment{
			ID:            id,
			OrderID:       order.ID,
			Amount:        order.Total,
			Method:        pick(src, entities.PaymentMethods),
			Status:        pick(src, entities.PaymentStatuses),
			TransactionID: src.fake.UUID(),
			CreatedAt:     src.Timestamp(180),
		}
	}), nil
}
