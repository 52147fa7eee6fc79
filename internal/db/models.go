package db

import (
	"time"
)

// User представляет пользователя в системе
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не включается в JSON сериализацию
	CreatedAt    time.Time `json:"created_at"`
}
