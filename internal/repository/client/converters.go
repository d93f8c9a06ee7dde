package client

import (
	"crm/internal/entities"
)

func ToDomain(c *ClientDB) *entities.Client {
	if c == nil {
		return nil
	}

	return &entities.Client{
		ID:            c.ID,
		TelegramID:    c.TelegramID,
		Username:      c.Username,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		ConsentAt:     c.ConsentAt,
		RequestsCount: c.RequestsCount,
		CreatedAt:     c.CreatedAt,
	}
}

func ToDomainList(clientsDB []ClientDB) []entities.Client {
	if len(clientsDB) == 0 {
		return []entities.Client{}
	}

	result := make([]entities.Client, len(clientsDB))
	for i, clientDB := range clientsDB {
		result[i] = *ToDomain(&clientDB)
	}
	return result
}
