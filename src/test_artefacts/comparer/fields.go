package comparer

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// IgnoreFieldsFor ignora campos voláteis (ids de execução, timestamps) de T.
func IgnoreFieldsFor[T any](fields ...string) cmp.Option {
	var t T
	return cmpopts.IgnoreFields(t, fields...)
}

// IgnoreUnexportedOf is required for types that carry a mutex.
func IgnoreUnexportedOf[T any]() cmp.Option {
	var t T
	return cmpopts.IgnoreUnexported(t)
}

// IgnoreErrorValues skips error fields, keeping their rendered messages comparable.
func IgnoreErrorValues() cmp.Option {
	return cmpopts.IgnoreInterfaces(struct{ error }{})
}
