package entities

import (
	"time"
)

type Counterparty struct {
	ID                   int64
	Name                 string
	INN                  *string
	KPP                  *string
	OGRN                 *string
	Address              *string
	Account              *string
	BIK                  *string
	CorrespondentAccount *string
	Bank                 *string
	Director             *string
	Contract             *string
	Contacts             []Client
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type CounterpartyModify struct {
	ID                   *int64
	Name                 *string
	INN                  *string
	KPP                  *string
	OGRN                 *string
	Address              *string
	Account              *string
	BIK                  *string
	CorrespondentAccount *string
	Bank                 *string
	Director             *string
	Contract             *string
	ContactClientIDs     *[]int64
}
