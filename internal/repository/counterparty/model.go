package counterparty

import (
	"time"
)

type CounterpartyDB struct {
	ID                   int64     `db:"id"`
	Name                 string    `db:"name"`
	INN                  *string   `db:"inn"`
	KPP                  *string   `db:"kpp"`
	OGRN                 *string   `db:"ogrn"`
	Address              *string   `db:"address"`
	Account              *string   `db:"account"`
	BIK                  *string   `db:"bik"`
	CorrespondentAccount *string   `db:"correspondent_account"`
	Bank                 *string   `db:"bank"`
	Director             *string   `db:"director"`
	Contract             *string   `db:"contract"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type ContactDB struct {
	CounterpartyID int64      `db:"counterparty_id"`
	ID             int64      `db:"id"`
	TelegramID     int64      `db:"telegram_id"`
	Username       *string    `db:"username"`
	FirstName      *string    `db:"first_name"`
	LastName       *string    `db:"last_name"`
	ConsentAt      *time.Time `db:"consent_at"`
	CreatedAt      time.Time  `db:"created_at"`
}
