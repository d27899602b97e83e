package contentgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/llm"
)

// Kind classifies why the content service could not produce content.
type Kind int

const (
	// KindUnavailable means the service could not be reached or failed.
	KindUnavailable Kind = iota
	// KindUnauthorized means the credentials were rejected.
	KindUnauthorized
	// KindMalformed means the service answered with unusable data.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindMalformed:
		return "malformed response"
	default:
		return "unavailable"
	}
}

// GenerationError is returned by Client.Generate when the content service
// fails.
type GenerationError struct {
	Kind Kind
	Type content.Type
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %s: %v", e.Type, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// newGenerationError classifies a provider or validator error.
func newGenerationError(t content.Type, err error) *GenerationError {
	var (
		unauthorized *llm.ErrUnauthorized
		invalid      *llm.ErrInvalidResponse
		truncated    *llm.ErrMaxTokensExceeded
		verr         *ValidationError
	)

	kind := KindUnavailable
	switch {
	case errors.As(err, &unauthorized):
		kind = KindUnauthorized
	case errors.As(err, &invalid), errors.As(err, &truncated), errors.As(err, &verr):
		kind = KindMalformed
	}
	return &GenerationError{Kind: kind, Type: t, Err: err}
}
