package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateGameID returns a random 128-bit identifier in hex.
func GenerateGameID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
