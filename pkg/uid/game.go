package uid

import (
	"github.com/google/uuid"
)

// GenerateGameID returns a random identifier for a game session.
func GenerateGameID() string {
	return uuid.New().String()
}

// IsGameID reports whether id has the shape produced by GenerateGameID.
func IsGameID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
