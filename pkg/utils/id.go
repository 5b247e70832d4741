package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	EntryIDLength   = 12
	SessionIDLength = 24
)

func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}
