package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short opaque identifier used for request correlation.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		return ""
	}
	return id
}
