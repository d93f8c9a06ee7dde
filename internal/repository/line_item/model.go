package line_item

import (
	"time"
)

type ServiceDB struct {
	ID          int64     `db:"id"`
	RequestID   int64     `db:"request_id"`
	Description string    `db:"description"`
	Unit        string    `db:"unit"`
	Quantity    string    `db:"quantity"`
	Price       string    `db:"price"`
	Amount      string    `db:"amount"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
