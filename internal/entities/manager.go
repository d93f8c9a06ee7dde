package entities

// Manager менеджер из access-токена.
type Manager struct {
	ID    int64
	Email string
	Name  string
}

func (m Manager) Actor() Actor {
	id := m.ID
	name := m.Name
	return Actor{ManagerID: &id, Name: &name}
}
