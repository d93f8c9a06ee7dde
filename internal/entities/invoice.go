package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID             int64
	Number         int64
	CounterpartyID int64
	Counterparty   *Counterparty
	RequestID      *int64
	IssuedAt       time.Time
	Items          []InvoiceItem
	Total          decimal.Decimal
}

// InvoiceItem копия строки на момент выставления счета.
type InvoiceItem struct {
	Position    int
	Description string
	Unit        string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Amount      decimal.Decimal
}

const DefaultInvoiceUnit = "усл"

type InvoiceCreate struct {
	CounterpartyID int64
	RequestID      *int64
	Items          []InvoiceItem
}

// Seller реквизиты исполнителя для печатной формы.
type Seller struct {
	Name                 string
	INN                  string
	Address              string
	Account              string
	BIK                  string
	CorrespondentAccount string
	Bank                 string
	Director             string
}
