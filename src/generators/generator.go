package generators

import (
	"fmt"

	"mockapi/src/domain"
)

// Parents holds the already generated collections a generator may sample
// foreign keys from.
type Parents map[domain.EntityKey][]domain.Record

// Generator produces count records of one entity. DependsOn lists every
// collection that must be fully generated first.
type Generator interface {
	Key() domain.EntityKey
	DependsOn() []domain.EntityKey
	Generate(src *Source, count int, parents Parents) ([]domain.Record, error)
}

type generateFunc func(src *Source, count int, parents Parents) ([]domain.Record, error)

type generator struct {
	key  domain.EntityKey
	deps []domain.EntityKey
	fn   generateFunc
}

// New builds a Generator from a plain function. The returned generator checks
// the count and the declared parents before calling fn.
func New(key domain.EntityKey, deps []domain.EntityKey, fn generateFunc) Generator {
	return &generator{key: key, deps: deps, fn: fn}
}

func (g *generator) Key() domain.EntityKey {
	return g.key
}

func (g *generator) DependsOn() []domain.EntityKey {
	deps := make([]domain.EntityKey, len(g.deps))
	copy(deps, g.deps)
	return deps
}

func (g *generator) Generate(src *Source, count int, parents Parents) ([]domain.Record, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generator(%s) - count %d: %w", g.key, count, domain.ErrInvalidCount)
	}

	for _, dep := range g.deps {
		records, ok := parents[dep]
		if !ok {
			return nil, fmt.Errorf("generator(%s) - parent %s: %w", g.key, dep, domain.ErrMissingParent)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("generator(%s) - parent %s: %w", g.key, dep, domain.ErrEmptyParent)
		}
	}

	return g.fn(src, count, parents)
}

// parentsOf returns the typed parent collection for key.
func parentsOf[T domain.Record](parents Parents, key domain.EntityKey) ([]T, error) {
	records := parents[key]
	if len(records) == 0 {
		return nil, fmt.Errorf("parent %s: %w", key, domain.ErrEmptyParent)
	}

	typed := make([]T, len(records))
	for i, record := range records {
		value, ok := record.(T)
		if !ok {
			return nil, fmt.Errorf("parent %s holds %T at index %d", key, record, i)
		}
		typed[i] = value
	}
	return typed, nil
}

// sampleID picks one parent id uniformly, with replacement.
func sampleID(src *Source, records []domain.Record) int {
	return pick(src, records).RecordID()
}

func build[T domain.Record](count int, fn func(id int) T) []domain.Record {
	records := make([]domain.Record, count)
	for i := range records {
		records[i] = fn(i + 1)
	}
	return records
}
