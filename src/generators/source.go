package generators

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-faker/faker/v4"
)

// referenceAnchor is the "now" of seeded runs, so that dates are reproducible too.
var referenceAnchor = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Source is the only randomness used by the generators. Two sources built with
// the same non-zero seed produce the same datasets.
type Source struct {
	fake   *gofakeit.Faker
	seed   int64
	anchor time.Time
}

// NewSource builds a seeded source. A zero seed picks a random one, which can
// be read back with Seed.
func NewSource(seed int64) *Source {
	anchor := referenceAnchor
	if seed == 0 {
		seed = time.Now().UnixNano()
		anchor = time.Now().UTC().Truncate(24 * time.Hour)
	}

	// faker/v4 só expõe uma fonte global; é reposicionada a cada Source.
	faker.SetRandomSource(faker.NewSafeSource(rand.NewSource(seed)))

	return &Source{
		fake:   gofakeit.New(seed),
		seed:   seed,
		anchor: anchor,
	}
}

func (s *Source) Seed() int64 {
	return s.seed
}

// IntRange returns a value in [min, max].
func (s *Source) IntRange(min, max int) int {
	return s.fake.IntRange(min, max)
}

func (s *Source) Bool() bool {
	return s.fake.Bool()
}

// Price returns a currency value in [min, max] rounded to 2 decimal places.
func (s *Source) Price(min, max float64) float64 {
	return round2(s.fake.Price(min, max))
}

// Timestamp returns an RFC 3339 instant at most daysBack days before the anchor.
func (s *Source) Timestamp(daysBack int) string {
	start := s.anchor.AddDate(0, 0, -daysBack)
	return s.fake.DateRange(start, s.anchor).UTC().Truncate(time.Second).Format(time.RFC3339)
}

func (s *Source) Sentence(words int) string {
	return s.fake.Sentence(words)
}

// Paragraphs joins n paragraphs with a blank line, like lorem.paragraphs.
func (s *Source) Paragraphs(n int) string {
	return s.fake.Paragraph(n, s.IntRange(3, 5), s.IntRange(8, 14), "\n")
}

func (s *Source) Words(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = s.fake.Word()
	}
	return strings.Join(words, " ")
}

// Address returns a real-world US postal address from the faker dataset.
func (s *Source) Address() faker.RealAddress {
	return faker.GetRealAddress()
}

func (s *Source) Username() string {
	return faker.Username()
}

func (s *Source) Suite() string {
	return fmt.Sprintf("%s %d", pick(s, []string{"Apt.", "Suite"}), s.IntRange(100, 999))
}

// pick samples one element uniformly. Callers guarantee items is not empty.
func pick[T any](s *Source, items []T) T {
	return items[s.fake.IntRange(0, len(items)-1)]
}
