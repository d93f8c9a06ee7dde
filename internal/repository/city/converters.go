package city

import (
	"crm/internal/entities"
)

func ToDomain(c *CityDB) *entities.City {
	if c == nil {
		return nil
	}

	return &entities.City{
		ID:        c.ID,
		ShortName: c.ShortName,
		FullName:  c.FullName,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDomainModify(cityModify *entities.CityModify) *CityModifyDB {
	if cityModify == nil {
		return nil
	}

	return &CityModifyDB{
		ID:        cityModify.ID,
		ShortName: cityModify.ShortName,
		FullName:  cityModify.FullName,
	}
}

func ToDomainList(citiesDB []CityDB) []entities.City {
	if len(citiesDB) == 0 {
		return []entities.City{}
	}

	result := make([]entities.City, len(citiesDB))
	for i, cityDB := range citiesDB {
		result[i] = *ToDomain(&cityDB)
	}
	return result
}
