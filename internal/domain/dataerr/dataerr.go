// Package dataerr is the error taxonomy surfaced by the data-access layer.
//
// Repositories never return raw store errors: every failure is normalized
// into an *Error carrying a Kind and a user-facing (pt-BR) message.
package dataerr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUnavailable        Kind = "unavailable"
	KindUnauthenticated    Kind = "unauthenticated"
	KindNotFound           Kind = "not-found"
	KindAlreadyExists      Kind = "already-exists"
	KindFailedPrecondition Kind = "failed-precondition"
	KindAborted            Kind = "aborted"
	KindOutOfRange         Kind = "out-of-range"
	KindUnimplemented      Kind = "unimplemented"
	KindInternal           Kind = "internal"
	KindDataLoss           Kind = "data-loss"
	KindDeadlineExceeded   Kind = "deadline-exceeded"
	KindValidation         Kind = "validation"
	KindUnknown            Kind = "unknown"
)

var messages = map[Kind]string{
	KindUnavailable:        "Serviço temporariamente indisponível. Tente novamente.",
	KindUnauthenticated:    "Usuário não autenticado. Faça login novamente.",
	KindNotFound:           "Documento não encontrado.",
	KindAlreadyExists:      "Documento já existe.",
	KindFailedPrecondition: "Operação falhou devido a uma condição prévia.",
	KindAborted:            "Operação foi cancelada.",
	KindOutOfRange:         "Valor fora do intervalo permitido.",
	KindUnimplemented:      "Operação não implementada.",
	KindInternal:           "Erro interno do servidor.",
	KindDataLoss:           "Perda de dados detectada.",
	KindDeadlineExceeded:   "Tempo limite excedido.",
	KindValidation:         "Por favor, preencha todos os campos obrigatórios.",
	KindUnknown:            "Erro do banco de dados. Tente novamente.",
}

// Message returns the default user-facing message for k.
func Message(k Kind) string {
	if m, ok := messages[k]; ok {
		return m
	}
	return messages[KindUnknown]
}

// Sentinels for errors.Is; an *Error matches the sentinel of its Kind.
var (
	ErrUnavailable        = &Error{Kind: KindUnavailable}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrAlreadyExists      = &Error{Kind: KindAlreadyExists}
	ErrFailedPrecondition = &Error{Kind: KindFailedPrecondition}
	ErrAborted            = &Error{Kind: KindAborted}
	ErrOutOfRange         = &Error{Kind: KindOutOfRange}
	ErrUnimplemented      = &Error{Kind: KindUnimplemented}
	ErrInternal           = &Error{Kind: KindInternal}
	ErrDataLoss           = &Error{Kind: KindDataLoss}
	ErrDeadlineExceeded   = &Error{Kind: KindDeadlineExceeded}
	ErrValidation         = &Error{Kind: KindValidation}
	ErrUnknown            = &Error{Kind: KindUnknown}
)

// Error is a normalized data-access failure. Op names the repository
// operation, e.g. "clientes.create". Cause is kept for logging only and is
// not part of Error().
type Error struct {
	Kind    Kind
	Op      string
	Message string
	cause   error
}

func New(kind Kind, op, message string) *Error {
	if message == "" {
		message = Message(kind)
	}
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap builds an *Error of the given kind and remembers cause for logs.
func Wrap(kind Kind, op string, cause error) *Error {
	e := New(kind, op, "")
	e.cause = cause
	return e
}

// WithMessage replaces the user-facing message.
func (e *Error) WithMessage(message string) *Error {
	e.Message = message
	return e
}

func Validation(op, format string, args ...any) *Error {
	return New(KindValidation, op, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return Message(e.Kind)
}

// Cause returns the underlying store error, if any.
func (e *Error) Cause() error { return e.cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf reports the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
