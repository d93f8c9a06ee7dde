package counterparty

import (
	"crm/internal/entities"
)

func ToDomain(c *CounterpartyDB, contacts []entities.Client) *entities.Counterparty {
	if c == nil {
		return nil
	}

	if contacts == nil {
		contacts = []entities.Client{}
	}

	return &entities.Counterparty{
		ID:                   c.ID,
		Name:                 c.Name,
		INN:                  c.INN,
		KPP:                  c.KPP,
		OGRN:                 c.OGRN,
		Address:              c.Address,
		Account:              c.Account,
		BIK:                  c.BIK,
		CorrespondentAccount: c.CorrespondentAccount,
		Bank:                 c.Bank,
		Director:             c.Director,
		Contract:             c.Contract,
		Contacts:             contacts,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func ContactToDomain(c ContactDB) entities.Client {
	return entities.Client{
		ID:         c.ID,
		TelegramID: c.TelegramID,
		Username:   c.Username,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		ConsentAt:  c.ConsentAt,
		CreatedAt:  c.CreatedAt,
	}
}

// requisites пары колонка/значение в порядке вставки. Пустая строка пишется как NULL.
func requisites(m entities.CounterpartyModify) ([]string, []any) {
	fields := []struct {
		column string
		value  *string
	}{
		{"name", m.Name},
		{"inn", m.INN},
		{"kpp", m.KPP},
		{"ogrn", m.OGRN},
		{"address", m.Address},
		{"account", m.Account},
		{"bik", m.BIK},
		{"correspondent_account", m.CorrespondentAccount},
		{"bank", m.Bank},
		{"director", m.Director},
		{"contract", m.Contract},
	}

	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		columns = append(columns, f.column)
		if *f.value == "" {
			values = append(values, nil)
		} else {
			values = append(values, *f.value)
		}
	}

	return columns, values
}
