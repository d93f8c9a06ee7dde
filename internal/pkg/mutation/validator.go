package mutation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/nullable"

	"crm/internal/entities"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02.01.2006",
}

type Result struct {
	Update  entities.RequestUpdate
	Changes []entities.FieldChange
}

// Validate проверяет патч заявки и считает изменения отслеживаемых полей.
// Ничего не сохраняет: Update и Changes записываются вызывающим в одной транзакции.
func Validate(existing entities.ShipmentRequest, patch entities.RequestPatch) (Result, error) {
	var update entities.RequestUpdate

	if patch.City != nil {
		city := strings.TrimSpace(*patch.City)
		if city == "" {
			return Result{}, ErrInvalidCity
		}
		update.City = &city
	}

	if patch.DeliveryDate != nil {
		date, err := ParseDate(*patch.DeliveryDate)
		if err != nil {
			return Result{}, ErrInvalidDate
		}
		update.DeliveryDate = &date
	}

	if patch.PackagingType != nil {
		packaging := entities.PackagingType(*patch.PackagingType)
		if !packaging.IsValid() {
			return Result{}, ErrInvalidPackaging
		}
		update.PackagingType = &packaging
	}

	volume, err := positiveOrNull(patch.Volume, ErrInvalidVolume)
	if err != nil {
		return Result{}, err
	}
	update.Volume = volume

	if patch.BoxCount != nil {
		count := *patch.BoxCount
		if !isFinite(count) || count <= 0 || count != math.Trunc(count) || count > math.MaxInt32 {
			return Result{}, ErrInvalidBoxCount
		}
		boxCount := int(count)
		update.BoxCount = &boxCount
	}

	weight, err := positiveOrNull(patch.Weight, ErrInvalidWeight)
	if err != nil {
		return Result{}, err
	}
	update.Weight = weight

	if patch.Comment.IsSpecified() {
		update.Comment = normalizeComment(patch.Comment)
	}

	return Result{
		Update:  update,
		Changes: Diff(existing, update),
	}, nil
}

// Diff сравнивает пять отслеживаемых полей. Переданное, но не изменившееся значение
// изменением не считается.
func Diff(existing entities.ShipmentRequest, update entities.RequestUpdate) []entities.FieldChange {
	var changes []entities.FieldChange

	add := func(field entities.TrackedField, oldValue, newValue *string) {
		if equalStrings(oldValue, newValue) {
			return
		}
		changes = append(changes, entities.FieldChange{
			Field:    field,
			OldValue: oldValue,
			NewValue: newValue,
		})
	}

	if update.Weight.IsSpecified() {
		add(entities.FieldWeight, formatOptional(existing.Weight), formatNullable(update.Weight))
	}
	if update.BoxCount != nil {
		add(entities.FieldBoxCount, stringPtr(strconv.Itoa(existing.BoxCount)), stringPtr(strconv.Itoa(*update.BoxCount)))
	}
	if update.Volume.IsSpecified() {
		add(entities.FieldVolume, formatOptional(existing.Volume), formatNullable(update.Volume))
	}
	if update.PackagingType != nil {
		add(entities.FieldPackagingType, stringPtr(existing.PackagingType.String()), stringPtr(update.PackagingType.String()))
	}
	if update.DeliveryDate != nil {
		add(entities.FieldDeliveryDate, stringPtr(FormatDate(existing.DeliveryDate)), stringPtr(FormatDate(*update.DeliveryDate)))
	}

	return changes
}

// ResolveStatus проверяет запрошенный статус. changed == false, если он совпадает с текущим:
// такой переход ничего не пишет и не уведомляет. Переходы между любыми статусами разрешены.
func ResolveStatus(current entities.RequestStatus, requested string) (entities.RequestStatus, bool, error) {
	status := entities.RequestStatus(requested)
	if !status.IsValid() {
		return current, false, ErrInvalidStatus
	}
	if status == current {
		return current, false, nil
	}
	return status, true, nil
}

// ParseDate принимает дату в ISO, RFC3339 или дд.мм.гггг и приводит к полуночи UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func positiveOrNull(value nullable.Nullable[float64], invalid *ValidationError) (nullable.Nullable[float64], error) {
	if !value.IsSpecified() || value.IsNull() {
		return value, nil
	}
	v := value.MustGet()
	if !isFinite(v) || v <= 0 {
		return nil, invalid
	}
	return value, nil
}

func normalizeComment(comment nullable.Nullable[string]) nullable.Nullable[string] {
	if comment.IsNull() {
		return comment
	}
	trimmed := strings.TrimSpace(comment.MustGet())
	if trimmed == "" {
		return nullable.NewNullNullable[string]()
	}
	return nullable.NewNullableWithValue(trimmed)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) *string {
	if v == nil {
		return nil
	}
	return stringPtr(formatFloat(*v))
}

func formatNullable(v nullable.Nullable[float64]) *string {
	if v.IsNull() {
		return nil
	}
	return stringPtr(formatFloat(v.MustGet()))
}

func equalStrings(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func stringPtr(s string) *string {
	return &s
}
