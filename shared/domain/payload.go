package domain

import (
	"github.com/itchan-dev/forum/shared/errors"
)

// Payload is the raw property bag entities are built from, usually a decoded
// JSON object merged with path parameters and the caller id.
type Payload map[string]any

// String returns the value under key if it is a string, "" otherwise.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// With returns a copy of p with key set to value.
func (p Payload) With(key string, value any) Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[key] = value
	return out
}

type field struct {
	key string
	dst *string
}

// readFields checks presence of every field before checking any type, so a
// payload that is both incomplete and mistyped reports the missing property.
// Absent keys, JSON null and "" count as missing.
func readFields(p Payload, op errors.Operation, fields ...field) error {
	for _, f := range fields {
		v, ok := p[f.key]
		if !ok || v == nil || v == "" {
			return errors.NewValidationError(op, errors.ReasonMissingProperty)
		}
	}
	for _, f := range fields {
		s, ok := p[f.key].(string)
		if !ok {
			return errors.NewValidationError(op, errors.ReasonWrongType)
		}
		*f.dst = s
	}
	return nil
}
