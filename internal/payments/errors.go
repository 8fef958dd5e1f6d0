package payments

import "errors"

// Kind classifies a failed operation so the HTTP layer can map it to a
// status code and operators can tell "gateway down" apart from "gateway
// changed its response shape".
type Kind int

const (
	// KindCaller: invalid or missing input, reported before any external call.
	KindCaller Kind = iota + 1
	// KindUpstream: the gateway call failed or returned an error payload.
	KindUpstream
	// KindDataMissing: the gateway call succeeded but an expected field was
	// absent. An upstream contract violation, not a caller error.
	KindDataMissing
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.cause }

func callerErr(msg string) *Error {
	return &Error{Kind: KindCaller, Message: msg}
}

func upstreamErr(msg string, cause error) *Error {
	// Gateway error text diterusin ke caller biar gampang debug; payload
	// mentah cuma masuk log.
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &Error{Kind: KindUpstream, Message: msg, cause: cause}
}

func dataMissingErr(msg string) *Error {
	return &Error{Kind: KindDataMissing, Message: msg}
}

// KindOf returns the error's Kind, or 0 for errors from outside this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
