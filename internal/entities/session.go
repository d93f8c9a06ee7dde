package entities

import (
	"encoding/json"
	"time"
)

// BotSession состояние диалога бота с клиентом. State бэкенд не интерпретирует.
type BotSession struct {
	TelegramID int64           `json:"telegramId"`
	State      json.RawMessage `json:"state"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
