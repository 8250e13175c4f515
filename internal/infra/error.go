package infra

import (
	"errors"
	"log/slog"

	"hotelfront/internal/pkg/errs"
)

type ErrorKind string

// Error is the typed failure returned by infrastructure adapters.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		// err already carries msg as its prefix
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapInfraErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Infrastructure error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindStoreFailure  ErrorKind = "STORE_FAILURE"
	KindDecodeFailure ErrorKind = "DECODE_FAILURE"
	KindTransport     ErrorKind = "TRANSPORT_FAILURE"
)
