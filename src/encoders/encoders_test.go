package encoders_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"

	"mockapi/src/domain"
	"mockapi/src/domain/entities"
	"mockapi/src/encoders"
	"mockapi/src/test_artefacts/comparer"
	"mockapi/src/test_artefacts/stubs"
)

func records[T domain.Record](items ...T) []domain.Record {
	out := make([]domain.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func encode(enc encoders.Encoder, key domain.EntityKey, recs []domain.Record) []byte {
	artifact, err := encoders.Encode(enc, key, recs)
	Expect(err).NotTo(HaveOccurred())
	Expect(artifact.Name).To(Equal(encoders.FileName(key, enc.Format())))
	return artifact.Content
}

func readCSV(content []byte) [][]string {
	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	Expect(err).NotTo(HaveOccurred())
	return rows
}

type sparseRecord struct {
	ID  int    `json:"id"`
	Tag string `json:"tag,omitempty"`
}

func (s sparseRecord) RecordID() int { return s.ID }

type panickingEncoder struct{}

func (panickingEncoder) Format() encoders.Format { return encoders.CSV }

func (panickingEncoder) Encode(domain.EntityKey, []domain.Record) ([]byte, error) {
	panic("boom")
}

var _ = Describe("Encoders", func() {
	var (
		users []domain.Record
		posts []domain.Record
	)

	BeforeEach(func() {
		users = records(
			stubs.NewUserStub().WithID(1).WithRole(entities.RoleAdmin).WithGeo(-37.3159, 81.1496).Get(),
			stubs.NewUserStub().WithID(2).Get(),
			stubs.NewUserStub().WithID(3).WithRole(entities.RoleEditor).Get(),
		)
		posts = records(
			stubs.NewPostStub().WithID(1).WithUserID(1).WithTitle(`quoted "title", with comma`).Get(),
			stubs.NewPostStub().WithID(2).WithUserID(2).Get(),
			stubs.NewPostStub().WithID(3).WithUserID(3).Get(),
			stubs.NewPostStub().WithID(4).WithUserID(1).Get(),
			stubs.NewPostStub().WithID(5).WithUserID(2).Get(),
		)
	})

	Context("JSON", func() {
		It("writes pretty and minified forms that parse to the same collection", func() {
			// ACT
			pretty := encode(encoders.JSONEncoder{Indent: true}, domain.Users, users)
			minified := encode(encoders.JSONEncoder{}, domain.Users, users)

			// ASSERT
			Expect(string(pretty)).To(HavePrefix("[\n  {\n    \"id\": 1,"))
			Expect(minified).NotTo(ContainSubstring("\n"))
			Expect(len(minified)).To(BeNumerically("<", len(pretty)))
			Expect(json.RawMessage(minified)).To(BeComparableTo(json.RawMessage(pretty), comparer.JSONRawMessage()))

			var decoded []entities.User
			Expect(json.Unmarshal(minified, &decoded)).To(Succeed())
			Expect(records(decoded...)).To(BeComparableTo(users))
		})

		It("writes an empty array for an empty collection", func() {
			Expect(string(encode(encoders.JSONEncoder{}, domain.Users, nil))).To(Equal("[]"))
		})
	})

	Context("NDJSON", func() {
		It("writes one compact object per line without a trailing newline", func() {
			// ACT
			content := encode(encoders.NDJSONEncoder{}, domain.Posts, posts)
			pretty := encode(encoders.JSONEncoder{Indent: true}, domain.Posts, posts)

			// ASSERT
			Expect(content).NotTo(HaveSuffix("\n"))
			lines := strings.Split(string(content), "\n")
			Expect(lines).To(HaveLen(len(posts)))

			var fromLines []json.RawMessage
			for _, line := range lines {
				Expect(json.Valid([]byte(line))).To(BeTrue())
				fromLines = append(fromLines, json.RawMessage(line))
			}
			var fromArray []json.RawMessage
			Expect(json.Unmarshal(pretty, &fromArray)).To(Succeed())
			Expect(fromLines).To(BeComparableTo(fromArray, comparer.JSONRawMessage()))
		})
	})

	Context("CSV", func() {
		It("writes the top-level scalar fields of the first record as the header", func() {
			// ACT
			rows := readCSV(encode(encoders.CSVEncoder{}, domain.Posts, posts))

			// ASSERT
			Expect(rows).To(HaveLen(1 + len(posts)))
			Expect(rows[0]).To(Equal([]string{"id", "userId", "categoryId", "title", "body", "createdAt"}))
			Expect(rows[1][0]).To(Equal("1"))
			Expect(rows[1][3]).To(Equal(`quoted "title", with comma`))
		})

		It("drops nested values under the scalar policy", func() {
			// ACT
			rows := readCSV(encode(encoders.CSVEncoder{Policy: encoders.FlattenScalar}, domain.Users, users))

			// ASSERT
			Expect(rows[0]).To(Equal([]string{"id", "name", "username", "email", "role", "phone", "website"}))
			Expect(rows).To(HaveLen(4))
			Expect(rows[1][4]).To(Equal("admin"))
		})

		It("expands nested objects into dotted columns under the dotted policy", func() {
			// ACT
			rows := readCSV(encode(encoders.CSVEncoder{Policy: encoders.FlattenDotted}, domain.Users, users))

			// ASSERT
			Expect(rows[0]).To(ContainElements("address.street", "address.geo.lat", "address.geo.lng", "company.bs"))
			lat := -1
			for i, name := range rows[0] {
				if name == "address.geo.lat" {
					lat = i
				}
			}
			Expect(rows[1][lat]).To(Equal("-37.3159"))
		})

		It("flattens the product rating into dotted columns", func() {
			// ARRANGE
			products := records(
				stubs.NewProductStub().WithID(1).WithPrice(9.99).Get(),
				stubs.NewProductStub().WithID(2).WithPrice(5).Get(),
			)

			// ACT
			rows := readCSV(encode(encoders.CSVEncoder{Policy: encoders.FlattenDotted}, domain.Products, products))

			// ASSERT
			Expect(rows[0]).To(Equal([]string{"id", "title", "description", "price", "category", "brand", "stock", "image", "rating.rate", "rating.count"}))
			Expect(rows[1][3]).To(Equal("9.99"))
			Expect(rows[2][3]).To(Equal("5"))
			Expect(rows[1][8]).To(Equal("4.5"))
		})

		It("embeds nested values as JSON text under the json policy", func() {
			// ACT
			rows := readCSV(encode(encoders.CSVEncoder{Policy: encoders.FlattenJSON}, domain.Users, users))

			// ASSERT
			Expect(rows[0]).To(Equal([]string{"id", "name", "username", "email", "role", "address", "phone", "website", "company"}))
			var geo struct {
				Geo entities.Geo `json:"geo"`
			}
			Expect(json.Unmarshal([]byte(rows[1][5]), &geo)).To(Succeed())
			Expect(geo.Geo).To(Equal(entities.Geo{Lat: -37.3159, Lng: 81.1496}))
		})

		It("reports records whose columns differ from the first one", func() {
			// ARRANGE
			recs := records(sparseRecord{ID: 1, Tag: "a"}, sparseRecord{ID: 2})

			// ACT
			_, err := encoders.Encode(encoders.CSVEncoder{}, domain.Todos, recs)

			// ASSERT
			var encErr *encoders.EncodingError
			Expect(errors.As(err, &encErr)).To(BeTrue())
			Expect(encErr.Entity).To(Equal(domain.Todos))
			Expect(encErr.Format).To(Equal(encoders.CSV))
			Expect(err).To(MatchError(domain.ErrIncompatibleRecord))
		})

		It("reports irregular arrays under the dotted policy", func() {
			// ARRANGE
			carts := records(
				entities.Cart{ID: 1, UserID: 1, Date: "2025-01-01T00:00:00Z", Products: []entities.CartItem{{ProductID: 1, Quantity: 1}}},
				entities.Cart{ID: 2, UserID: 1, Date: "2025-01-01T00:00:00Z", Products: []entities.CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 3}}},
			)

			// ACT
			_, err := encoders.Encode(encoders.CSVEncoder{Policy: encoders.FlattenDotted}, domain.Carts, carts)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrIncompatibleRecord))
		})
	})

	Context("XML", func() {
		It("wraps the items in a root named after the entity", func() {
			// ACT
			content := encode(encoders.XMLEncoder{}, domain.Users, users)

			// ASSERT
			Expect(string(content)).To(HavePrefix(`<?xml version="1.0" encoding="UTF-8"?>`))

			var doc struct {
				XMLName xml.Name
				Items   []struct {
					ID      int    `xml:"id"`
					Role    string `xml:"role"`
					Address struct {
						Geo struct {
							Lat float64 `xml:"lat"`
						} `xml:"geo"`
					} `xml:"address"`
				} `xml:"item"`
			}
			Expect(xml.Unmarshal(content, &doc)).To(Succeed())
			Expect(doc.XMLName.Local).To(Equal("users"))
			Expect(doc.Items).To(HaveLen(3))
			Expect(doc.Items[0].Role).To(Equal("admin"))
			Expect(doc.Items[0].Address.Geo.Lat).To(Equal(-37.3159))
		})

		It("repeats the field name for every array element", func() {
			// ARRANGE
			order := stubs.NewOrderStub().WithID(1).WithItem(3, 2, 9.99).WithItem(4, 1, 5.00).WithTotal(24.98).Get()

			// ACT
			content := encode(encoders.XMLEncoder{}, domain.Orders, records(order))

			// ASSERT
			var doc struct {
				Items []struct {
					Lines []struct {
						ProductID int     `xml:"productId"`
						Price     float64 `xml:"price"`
					} `xml:"items"`
					Total float64 `xml:"total"`
				} `xml:"item"`
			}
			Expect(xml.Unmarshal(content, &doc)).To(Succeed())
			Expect(doc.Items).To(HaveLen(1))
			Expect(doc.Items[0].Lines).To(HaveLen(2))
			Expect(doc.Items[0].Lines[1].ProductID).To(Equal(4))
			Expect(doc.Items[0].Total).To(Equal(24.98))
		})
	})

	Context("YAML", func() {
		It("writes a block sequence that decodes to the same collection", func() {
			// ACT
			content := encode(encoders.YAMLEncoder{}, domain.Users, users)

			// ASSERT
			Expect(string(content)).To(HavePrefix("- id: 1\n"))
			Expect(string(content)).To(ContainSubstring("\n  address:\n    street: "))

			var decoded []entities.User
			Expect(yaml.Unmarshal(content, &decoded)).To(Succeed())
			Expect(records(decoded...)).To(BeComparableTo(users))
		})
	})

	Context("BSON", func() {
		It("wraps the collection in a single data field", func() {
			// ACT
			content := encode(encoders.BSONEncoder{}, domain.Users, users)

			// ASSERT
			raw := bson.Raw(content)
			Expect(raw.Validate()).To(Succeed())
			elements, err := raw.Elements()
			Expect(err).NotTo(HaveOccurred())
			Expect(elements).To(HaveLen(1))
			Expect(elements[0].Key()).To(Equal(encoders.BSONRootKey))

			var doc struct {
				Data []entities.User `bson:"data"`
			}
			Expect(bson.Unmarshal(content, &doc)).To(Succeed())

			var fromJSON []entities.User
			Expect(json.Unmarshal(encode(encoders.JSONEncoder{}, domain.Users, users), &fromJSON)).To(Succeed())
			Expect(doc.Data).To(BeComparableTo(fromJSON))
		})
	})

	Context("Encode", func() {
		It("turns a panicking encoder into an EncodingError", func() {
			// ACT
			artifact, err := encoders.Encode(panickingEncoder{}, domain.Posts, posts)

			// ASSERT
			Expect(artifact).To(BeZero())
			var encErr *encoders.EncodingError
			Expect(errors.As(err, &encErr)).To(BeTrue())
			Expect(encErr.Entity).To(Equal(domain.Posts))
			Expect(err.Error()).To(Equal("encode posts as csv: panic: boom"))
		})
	})

	Context("NewSet", func() {
		It("returns one encoder per format in order", func() {
			// ACT
			set, err := encoders.NewSet(encoders.AllFormats(), encoders.FlattenScalar)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			formats := make([]encoders.Format, len(set))
			for i, enc := range set {
				formats[i] = enc.Format()
			}
			Expect(formats).To(Equal(encoders.AllFormats()))
		})

		It("rejects unknown formats", func() {
			_, err := encoders.NewSet([]encoders.Format{"toml"}, encoders.FlattenScalar)
			Expect(err).To(MatchError(domain.ErrUnknownFormat))
		})
	})
})

var _ = Describe("File names", func() {
	DescribeTable("SplitFileName inverts FileName",
		func(name string, key domain.EntityKey, format encoders.Format) {
			gotKey, gotFormat, err := encoders.SplitFileName(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(gotKey).To(Equal(key))
			Expect(gotFormat).To(Equal(format))
			Expect(encoders.FileName(key, format)).To(Equal(name))
		},
		Entry("json", "users.json", domain.Users, encoders.JSON),
		Entry("min.json wins over json", "users.min.json", domain.Users, encoders.MinJSON),
		Entry("underscore keys", "post_categories.ndjson", domain.PostCategories, encoders.NDJSON),
		Entry("bson", "payments.bson", domain.Payments, encoders.BSON),
	)

	DescribeTable("ResolveName rejects names outside the published set",
		func(name string) {
			_, _, err := encoders.ResolveName(name)
			Expect(err).To(HaveOccurred())
		},
		Entry("unknown entity", "accounts.json"),
		Entry("unknown format", "users.toml"),
		Entry("path traversal", "../users.json"),
		Entry("no format", "users"),
	)

	It("resolves the run documents", func() {
		_, format, err := encoders.ResolveName(encoders.SchemaFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(format).To(Equal(encoders.GraphQL))

		_, format, err = encoders.ResolveName(encoders.ManifestFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(format).To(Equal(encoders.JSON))
	})
})
