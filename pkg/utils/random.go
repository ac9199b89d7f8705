package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateID создает короткий уникальный ID сущности (16 символов hex).
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateToken создает токен сессии. Токен уходит клиенту, поэтому здесь
// полноразмерный UUID, а не короткий ID.
func GenerateToken() string {
	return uuid.NewString()
}
