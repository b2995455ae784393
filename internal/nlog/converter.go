package nlog

import (
	"context"
	"encoding/json"
)

// Converter переводит payload формата Nlog в событие OpenPanel
type Converter interface {
	Convert(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

// ConverterFunc adapts a plain function to Converter
type ConverterFunc func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

func (f ConverterFunc) Convert(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return f(ctx, payload)
}

// Identity forwards the payload as is until the Nlog mapping exists
var Identity Converter = ConverterFunc(func(_ context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return payload, nil
})
