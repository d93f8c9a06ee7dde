package shipment

import (
	"github.com/oapi-codegen/nullable"

	"crm/internal/entities"
	"crm/internal/pkg/mutation"
)

// validateCreate проверяет заявку из бота теми же правилами, что и правку менеджера.
func validateCreate(create entities.RequestCreate) (entities.RequestUpdate, error) {
	if create.City == "" || create.DeliveryDate == "" || create.BoxCount == 0 {
		return entities.RequestUpdate{}, ErrMissingRequiredFields
	}

	packaging := create.PackagingType
	if packaging == "" {
		packaging = entities.PackagingBoxes.String()
	}

	patch := entities.RequestPatch{
		City:          &create.City,
		DeliveryDate:  &create.DeliveryDate,
		PackagingType: &packaging,
		BoxCount:      &create.BoxCount,
		Volume:        optionalFloat(create.Volume),
		Weight:        optionalFloat(create.Weight),
		Comment:       optionalString(create.Comment),
	}

	result, err := mutation.Validate(entities.ShipmentRequest{}, patch)
	if err != nil {
		return entities.RequestUpdate{}, err
	}
	return result.Update, nil
}

func optionalFloat(v *float64) nullable.Nullable[float64] {
	if v == nil {
		return nullable.NewNullNullable[float64]()
	}
	return nullable.NewNullableWithValue(*v)
}

func optionalString(v *string) nullable.Nullable[string] {
	if v == nil {
		return nullable.NewNullNullable[string]()
	}
	return nullable.NewNullableWithValue(*v)
}
