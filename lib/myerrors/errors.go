package myerrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindEmptyCart
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid-input"
	case KindNotFound:
		return "not-found"
	case KindEmptyCart:
		return "empty-cart"
	case KindPersistence:
		return "persistence"
	default:
		return "internal"
	}
}

type kindCoder interface {
	error
	GetKind() Kind
}

type kindError struct {
	kind Kind
	err  error
}

func (e kindError) Error() string {
	return e.err.Error()
}

func (e kindError) Unwrap() error {
	return e.err
}

func (e kindError) GetKind() Kind {
	return e.kind
}

func newError(kind Kind, err error) error {
	return &kindError{
		kind: kind,
		err:  err,
	}
}

func NewInvalidInputError(err error) error {
	return newError(KindInvalidInput, err)
}

func NewInvalidInputErrorf(format string, args ...any) error {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) error {
	return newError(KindNotFound, err)
}

func NewEmptyCartError(err error) error {
	return newError(KindEmptyCart, err)
}

func NewPersistenceError(err error) error {
	return newError(KindPersistence, err)
}

func NewInternalError(err error) error {
	return newError(KindInternal, err)
}

// GetKind returns the kind of the outermost classified error in the chain.
func GetKind(err error) Kind {
	var coder kindCoder
	if errors.As(err, &coder) {
		return coder.GetKind()
	}
	return KindInternal
}
