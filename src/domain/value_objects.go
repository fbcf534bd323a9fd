package domain

import (
	"errors"
	"fmt"
)

var (
	// Erros fatais de geração: um pai vazio ou ausente invalida todos os descendentes.
	ErrEmptyParent     = errors.New("parent collection is empty")
	ErrMissingParent   = errors.New("parent collection was not generated")
	ErrUnknownEntity   = errors.New("unknown entity")
	ErrDependencyCycle = errors.New("dependency cycle detected")
	ErrInvalidCount    = errors.New("record count must be a positive integer")

	// Erros recuperáveis de encoding: afetam só o artefato (entity, format).
	ErrIncompatibleRecord = errors.New("record structure is incompatible with the format")
	ErrUnknownFormat      = errors.New("unknown format")

	ErrArtifactNotFound = errors.New("artifact not found")
)

// EntityKey names a generated collection. It is also the artifact file stem
// and the XML root element name.
type EntityKey string

const (
	Users             EntityKey = "users"
	PostCategories    EntityKey = "post_categories"
	ProductCategories EntityKey = "product_categories"
	Posts             EntityKey = "posts"
	Comments          EntityKey = "comments"
	Products          EntityKey = "products"
	Carts             EntityKey = "carts"
	Orders            EntityKey = "orders"
	Payments          EntityKey = "payments"
	Notes             EntityKey = "notes"
	Todos             EntityKey = "todos"
	Photos            EntityKey = "photos"
)

var entityKeys = []EntityKey{
	Users,
	PostCategories,
	ProductCategories,
	Posts,
	Comments,
	Products,
	Carts,
	Orders,
	Payments,
	Notes,
	Todos,
	Photos,
}

// AllEntityKeys returns every known entity key in publication order.
func AllEntityKeys() []EntityKey {
	keys := make([]EntityKey, len(entityKeys))
	copy(keys, entityKeys)
	return keys
}

func ParseEntityKey(s string) (EntityKey, error) {
	for _, key := range entityKeys {
		if string(key) == s {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, s)
}

// Record is a single generated row. Every entity carries a 1-based id that is
// unique within its collection.
type Record interface {
	RecordID() int
}
