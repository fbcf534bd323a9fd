package generators_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mockapi/src/domain"
	"mockapi/src/domain/entities"
	"mockapi/src/generators"
	"mockapi/src/test_artefacts/stubs"
)

var smallCounts = map[domain.EntityKey]int{
	domain.Users:             7,
	domain.PostCategories:    12,
	domain.ProductCategories: 4,
	domain.Posts:             25,
	domain.Comments:          60,
	domain.Products:          20,
	domain.Carts:             9,
	domain.Orders:            15,
	domain.Payments:          15,
	domain.Notes:             10,
	domain.Todos:             30,
	domain.Photos:            11,
}

func generateAll(seed int64, counts map[domain.EntityKey]int) generators.Parents {
	registry := generators.DefaultRegistry()
	plan, err := registry.Plan()
	Expect(err).NotTo(HaveOccurred())

	src := generators.NewSource(seed)
	parents := generators.Parents{}
	for _, key := range plan {
		gen, _ := registry.Get(key)
		records, err := gen.Generate(src, counts[key], parents)
		Expect(err).NotTo(HaveOccurred(), string(key))
		parents[key] = records
	}
	return parents
}

func typed[T domain.Record](records []domain.Record) []T {
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = r.(T)
	}
	return out
}

func idSet(records []domain.Record) map[int]bool {
	ids := make(map[int]bool, len(records))
	for _, r := range records {
		ids[r.RecordID()] = true
	}
	return ids
}

var _ = Describe("Generators", func() {
	var data generators.Parents

	BeforeEach(func() {
		data = generateAll(20240601, smallCounts)
	})

	Context("when generating every collection", func() {
		It("numbers ids 1..count without gaps", func() {
			for key, records := range data {
				Expect(records).To(HaveLen(smallCounts[key]), string(key))
				for i, record := range records {
					Expect(record.RecordID()).To(Equal(i+1), string(key))
				}
			}
		})

		It("keeps every foreign key inside its parent collection", func() {
			users := idSet(data[domain.Users])
			posts := idSet(data[domain.Posts])
			postCategories := idSet(data[domain.PostCategories])
			products := idSet(data[domain.Products])
			orders := idSet(data[domain.Orders])

			for _, post := range typed[entities.Post](data[domain.Posts]) {
				Expect(users).To(HaveKey(post.UserID))
				Expect(postCategories).To(HaveKey(post.CategoryID))
			}
			for _, comment := range typed[entities.Comment](data[domain.Comments]) {
				Expect(posts).To(HaveKey(comment.PostID))
			}
			for _, cart := range typed[entities.Cart](data[domain.Carts]) {
				Expect(users).To(HaveKey(cart.UserID))
				Expect(cart.Products).NotTo(BeEmpty())
				for _, item := range cart.Products {
					Expect(products).To(HaveKey(item.ProductID))
					Expect(item.Quantity).To(BeNumerically(">=", 1))
				}
			}
			for _, order := range typed[entities.Order](data[domain.Orders]) {
				Expect(users).To(HaveKey(order.UserID))
				for _, item := range order.Items {
					Expect(products).To(HaveKey(item.ProductID))
				}
			}
			for _, payment := range typed[entities.Payment](data[domain.Payments]) {
				Expect(orders).To(HaveKey(payment.OrderID))
			}
			for _, note := range typed[entities.Note](data[domain.Notes]) {
				Expect(users).To(HaveKey(note.UserID))
			}
			for _, todo := range typed[entities.Todo](data[domain.Todos]) {
				Expect(users).To(HaveKey(todo.UserID))
			}
		})

		It("only uses the fixed enumerations", func() {
			for _, user := range typed[entities.User](data[domain.Users]) {
				Expect(entities.Roles).To(ContainElement(user.Role))
			}
			for _, order := range typed[entities.Order](data[domain.Orders]) {
				Expect(entities.OrderStatuses).To(ContainElement(order.Status))
			}
			for _, payment := range typed[entities.Payment](data[domain.Payments]) {
				Expect(entities.PaymentMethods).To(ContainElement(payment.Method))
				Expect(entities.PaymentStatuses).To(ContainElement(payment.Status))
			}
		})

		It("derives money fields from their sources", func() {
			products := typed[entities.Product](data[domain.Products])
			orders := typed[entities.Order](data[domain.Orders])

			for _, order := range orders {
				for _, item := range order.Items {
					Expect(item.Price).To(Equal(products[item.ProductID-1].Price))
				}
				Expect(order.Total).To(Equal(generators.OrderTotal(order.Items)))
			}
			for _, payment := range typed[entities.Payment](data[domain.Payments]) {
				Expect(payment.Amount).To(Equal(orders[payment.OrderID-1].Total))
			}
		})

		It("copies product category names from the generated categories", func() {
			names := map[string]bool{}
			for _, c := range typed[entities.ProductCategory](data[domain.ProductCategories]) {
				names[c.Name] = true
			}
			for _, product := range typed[entities.Product](data[domain.Products]) {
				Expect(names).To(HaveKey(product.Category))
			}
		})

		It("suffixes category names once the vocabulary runs out", func() {
			categories := typed[entities.PostCategory](data[domain.PostCategories])

			Expect(categories[0].Name).To(Equal("Technology"))
			Expect(categories[10].Name).To(Equal("Technology 2"))
			Expect(categories[10].Slug).To(Equal("technology-2"))
		})

		It("formats dates as RFC 3339", func() {
			for _, post := range typed[entities.Post](data[domain.Posts]) {
				_, err := time.Parse(time.RFC3339, post.CreatedAt)
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Context("when the same seed is used twice", func() {
		It("reproduces every collection", func() {
			// ACT
			again := generateAll(20240601, smallCounts)

			// ASSERT
			Expect(again).To(BeComparableTo(data))
		})
	})

	Context("when a different seed is used", func() {
		It("produces different values with the same shape", func() {
			// ACT
			other := generateAll(7, smallCounts)

			// ASSERT
			Expect(other[domain.Users]).To(HaveLen(len(data[domain.Users])))
			Expect(other[domain.Users]).NotTo(BeComparableTo(data[domain.Users]))
		})
	})
})

var _ = Describe("Generator contract", func() {
	var (
		registry *generators.Registry
		src      *generators.Source
	)

	BeforeEach(func() {
		registry = generators.DefaultRegistry()
		src = generators.NewSource(99)
	})

	When("generating 3 users and then 5 posts", func() {
		It("samples userId from 1, 2 and 3 only", func() {
			// ARRANGE
			usersGen, _ := registry.Get(domain.Users)
			categoriesGen, _ := registry.Get(domain.PostCategories)
			postsGen, _ := registry.Get(domain.Posts)

			users, err := usersGen.Generate(src, 3, generators.Parents{})
			Expect(err).NotTo(HaveOccurred())
			categories, err := categoriesGen.Generate(src, 2, generators.Parents{})
			Expect(err).NotTo(HaveOccurred())

			// ACT
			posts, err := postsGen.Generate(src, 5, generators.Parents{
				domain.Users:          users,
				domain.PostCategories: categories,
			})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(5))
			for _, post := range typed[entities.Post](posts) {
				Expect(post.UserID).To(BeElementOf(1, 2, 3))
			}
		})
	})

	When("a parent collection is empty", func() {
		It("fails instead of producing dangling references", func() {
			// ARRANGE
			postsGen, _ := registry.Get(domain.Posts)

			// ACT
			_, err := postsGen.Generate(src, 5, generators.Parents{
				domain.Users:          {},
				domain.PostCategories: {entities.PostCategory{ID: 1, Name: "Technology"}},
			})

			// ASSERT
			Expect(err).To(MatchError(domain.ErrEmptyParent))
		})
	})

	When("a parent collection was never generated", func() {
		It("reports the missing parent", func() {
			// ARRANGE
			commentsGen, _ := registry.Get(domain.Comments)

			// ACT
			_, err := commentsGen.Generate(src, 5, generators.Parents{})

			// ASSERT
			Expect(err).To(MatchError(domain.ErrMissingParent))
		})
	})

	When("the count is not positive", func() {
		It("rejects it", func() {
			// ARRANGE
			usersGen, _ := registry.Get(domain.Users)

			// ACT
			_, err := usersGen.Generate(src, 0, generators.Parents{})

			// ASSERT
			Expect(err).To(MatchError(domain.ErrInvalidCount))
		})
	})

	When("an order has line items of 9.99 and 5.00", func() {
		It("totals 14.99 and the payment amount matches exactly", func() {
			// ARRANGE
			order := stubs.NewOrderStub().
				WithID(1).
				WithItem(1, 1, 9.99).
				WithItem(2, 1, 5.00).
				Get()
			order.Total = generators.OrderTotal(order.Items)
			paymentsGen, _ := registry.Get(domain.Payments)

			// ACT
			payments, err := paymentsGen.Generate(src, 3, generators.Parents{
				domain.Orders: {order},
			})

			// ASSERT
			Expect(order.Total).To(Equal(14.99))
			Expect(err).NotTo(HaveOccurred())
			for _, payment := range typed[entities.Payment](payments) {
				Expect(payment.OrderID).To(Equal(1))
				Expect(payment.Amount).To(Equal(14.99))
			}
		})
	})
})

var _ = Describe("OrderTotal", func() {
	DescribeTable("sums price times quantity rounded to cents",
		func(items []entities.OrderItem, expected float64) {
			Expect(generators.OrderTotal(items)).To(Equal(expected))
		},
		Entry("no items", []entities.OrderItem{}, 0.0),
		Entry("single unit", []entities.OrderItem{{ProductID: 1, Quantity: 1, Price: 9.99}}, 9.99),
		Entry("quantity counts", []entities.OrderItem{{ProductID: 1, Quantity: 3, Price: 0.1}}, 0.3),
		Entry("float drift is rounded away", []entities.OrderItem{
			{ProductID: 1, Quantity: 1, Price: 0.1},
			{ProductID: 2, Quantity: 1, Price: 0.2},
		}, 0.3),
		Entry("mixed", []entities.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 19.99},
			{ProductID: 2, Quantity: 1, Price: 5.00},
		}, 44.98),
	)
})
