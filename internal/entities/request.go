package entities

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

type RequestStatus string

const (
	StatusNew       RequestStatus = "new"
	StatusWarehouse RequestStatus = "warehouse"
	StatusShipped   RequestStatus = "shipped"
	StatusDone      RequestStatus = "done"
)

const DefaultRequestStatus = StatusNew

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusWarehouse, StatusShipped, StatusDone:
		return true
	default:
		return false
	}
}

func (s RequestStatus) Label() string {
	switch s {
	case StatusNew:
		return "🆕 Новый"
	case StatusWarehouse:
		return "🏬 На складе"
	case StatusShipped:
		return "🚚 Отгружен"
	case StatusDone:
		return "✅ Выполнена"
	default:
		return string(s)
	}
}

type PackagingType string

const (
	PackagingPallets PackagingType = "pallets"
	PackagingBoxes   PackagingType = "boxes"
)

func (p PackagingType) String() string {
	return string(p)
}

func (p PackagingType) IsValid() bool {
	return p == PackagingPallets || p == PackagingBoxes
}

func (p PackagingType) Label() string {
	switch p {
	case PackagingPallets:
		return "Палеты"
	case PackagingBoxes:
		return "Коробки"
	default:
		return string(p)
	}
}

// RateUnit единица тарифа, по которой считается заявка с такой упаковкой.
func (p PackagingType) RateUnit() RateUnit {
	if p == PackagingPallets {
		return UnitPallet
	}
	return UnitKg
}

type ShipmentRequest struct {
	ID            int64
	ClientID      int64
	Client        *Client
	CityID        *int64
	City          string
	CityFullName  *string
	DeliveryDate  time.Time
	PackagingType PackagingType
	BoxCount      int
	Volume        *float64
	Weight        *float64
	Comment       *string
	Status        RequestStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ShipmentRequestDetail заявка вместе с объединенной историей.
type ShipmentRequestDetail struct {
	ShipmentRequest
	Timeline []TimelineItem
}

// RequestPatch частичное изменение заявки от менеджера в сыром виде,
// до валидации. Nullable поля различают "не передано" и явный null.
type RequestPatch struct {
	City          *string
	DeliveryDate  *string
	PackagingType *string
	BoxCount      *float64
	Volume        nullable.Nullable[float64]
	Weight        nullable.Nullable[float64]
	Comment       nullable.Nullable[string]
}

// RequestUpdate нормализованный набор полей для записи.
type RequestUpdate struct {
	City          *string
	CityID        nullable.Nullable[int64]
	DeliveryDate  *time.Time
	PackagingType *PackagingType
	BoxCount      *int
	Volume        nullable.Nullable[float64]
	Weight        nullable.Nullable[float64]
	Comment       nullable.Nullable[string]
}

func (u RequestUpdate) IsEmpty() bool {
	return u.City == nil &&
		!u.CityID.IsSpecified() &&
		u.DeliveryDate == nil &&
		u.PackagingType == nil &&
		u.BoxCount == nil &&
		!u.Volume.IsSpecified() &&
		!u.Weight.IsSpecified() &&
		!u.Comment.IsSpecified()
}

// RequestCreate заявка клиента из бота или мини-приложения.
type RequestCreate struct {
	Client        ClientProfile
	City          string
	DeliveryDate  string
	PackagingType string
	BoxCount      float64
	Volume        *float64
	Weight        *float64
	Comment       *string
}

type RequestFilter struct {
	Status   *RequestStatus
	ClientID *int64
}
