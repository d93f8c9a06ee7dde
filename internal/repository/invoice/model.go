package invoice

import (
	"time"
)

type InvoiceDB struct {
	ID             int64     `db:"id"`
	Number         int64     `db:"number"`
	CounterpartyID int64     `db:"counterparty_id"`
	RequestID      *int64    `db:"request_id"`
	IssuedAt       time.Time `db:"issued_at"`
	Total          string    `db:"total"`
}

type ItemDB struct {
	InvoiceID   int64  `db:"invoice_id"`
	Position    int    `db:"position"`
	Description string `db:"description"`
	Unit        string `db:"unit"`
	Quantity    string `db:"quantity"`
	Price       string `db:"price"`
	Amount      string `db:"amount"`
}
