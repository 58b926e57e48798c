package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random id for a browser session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// IsSessionID reports whether id looks like one produced by GenerateNewSessionID.
func IsSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
