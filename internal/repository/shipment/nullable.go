package shipment

import (
	"github.com/oapi-codegen/nullable"
)

// nullableValue значение для SET: nil для явного null.
func nullableValue[T any](v nullable.Nullable[T]) any {
	if v.IsNull() {
		return nil
	}
	return v.MustGet()
}
