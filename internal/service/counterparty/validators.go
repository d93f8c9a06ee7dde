package counterparty

import (
	"strings"

	"crm/internal/entities"
)

func isDigits(s string, lengths ...int) bool {
	lengthOK := false
	for _, l := range lengths {
		if len(s) == l {
			lengthOK = true
			break
		}
	}
	if !lengthOK {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalize обрезает пробелы, пустая строка означает очистку поля.
func normalize(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func validate(m *entities.CounterpartyModify) error {
	m.Name = normalize(m.Name)
	m.INN = normalize(m.INN)
	m.KPP = normalize(m.KPP)
	m.OGRN = normalize(m.OGRN)
	m.Address = normalize(m.Address)
	m.Account = normalize(m.Account)
	m.BIK = normalize(m.BIK)
	m.CorrespondentAccount = normalize(m.CorrespondentAccount)
	m.Bank = normalize(m.Bank)
	m.Director = normalize(m.Director)
	m.Contract = normalize(m.Contract)

	if m.Name != nil && *m.Name == "" {
		return ErrInvalidName
	}

	checks := []struct {
		value   *string
		err     error
		lengths []int
	}{
		{m.INN, ErrInvalidINN, []int{10, 12}},
		{m.KPP, ErrInvalidKPP, []int{9}},
		{m.OGRN, ErrInvalidOGRN, []int{13, 15}},
		{m.BIK, ErrInvalidBIK, []int{9}},
		{m.Account, ErrInvalidAccount, []int{20}},
		{m.CorrespondentAccount, ErrInvalidAccount, []int{20}},
	}
	for _, c := range checks {
		if c.value == nil || *c.value == "" {
			continue
		}
		if !isDigits(*c.value, c.lengths...) {
			return c.err
		}
	}

	return nil
}
