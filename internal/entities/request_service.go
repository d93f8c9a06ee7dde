package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestService строка услуг по заявке. Amount всегда Quantity * Price.
type RequestService struct {
	ID          int64
	RequestID   int64
	Description string
	Unit        string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RequestServiceModify struct {
	ID          *int64
	RequestID   *int64
	Description *string
	Unit        *string
	Quantity    *decimal.Decimal
	Price       *decimal.Decimal
}

const DefaultServiceUnit = "шт"

// Suggestion результат подбора тарифа. При Found == false заполнено только Message.
type Suggestion struct {
	Found       bool
	Message     string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Amount      decimal.Decimal
	Rate        *PriceRate
}
