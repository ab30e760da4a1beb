package models

import (
	"crypto/rand"
	"fmt"
)

// GenerateReference produces a short booking reference like "GD-3F9A2C"
func GenerateReference() string {
	b := make([]byte, 3)
	rand.Read(b)
	return fmt.Sprintf("GD-%X", b)
}
