package requestid

import (
	"github.com/google/uuid"
)

const Prefix = "req_"

type Generator interface {
	NewID() string
}

// UUIDGenerator выдает req_<uuidv7>: время + случайные биты
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return Prefix + uuid.New().String()
	}
	return Prefix + id.String()
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string {
	return f()
}
