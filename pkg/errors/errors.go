package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeHandleTaken      Code = "HANDLE_TAKEN"
	CodeEmailTaken       Code = "EMAIL_IN_USE"
	CodeBadCredentials   Code = "BAD_CREDENTIALS"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeUnsupportedMedia Code = "UNSUPPORTED_MEDIA_TYPE"
	CodeRateLimit        Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeDependency       Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a code is rendered on the wire. FieldKey is the
// single JSON key the client contract uses for the public message; validation
// errors carry a field-keyed details map instead.
type Metadata struct {
	HTTPStatus     int
	PublicMessage  string
	FieldKey       string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:     http.StatusBadRequest,
		PublicMessage:  "validation failed",
		FieldKey:       "general",
		DetailsAllowed: true,
	},
	CodeHandleTaken: {
		HTTPStatus:    http.StatusBadRequest,
		PublicMessage: "this handle is already taken",
		FieldKey:      "handle",
	},
	CodeEmailTaken: {
		HTTPStatus:    http.StatusBadRequest,
		PublicMessage: "email is already in use",
		FieldKey:      "email",
	},
	CodeBadCredentials: {
		HTTPStatus:    http.StatusForbidden,
		PublicMessage: "wrong credentials, please try again",
		FieldKey:      "general",
	},
	CodeUnauthorized: {
		HTTPStatus:    http.StatusUnauthorized,
		PublicMessage: "unauthorized",
		FieldKey:      "error",
	},
	CodeNotFound: {
		HTTPStatus:    http.StatusNotFound,
		PublicMessage: "user not found",
		FieldKey:      "error",
	},
	CodeUnsupportedMedia: {
		HTTPStatus:    http.StatusBadRequest,
		PublicMessage: "wrong file type submitted",
		FieldKey:      "error",
	},
	CodeRateLimit: {
		HTTPStatus:    http.StatusTooManyRequests,
		PublicMessage: "too many attempts, please try again later",
		FieldKey:      "general",
	},
	CodeInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		PublicMessage: "something went wrong, please try again",
		FieldKey:      "general",
	},
	CodeDependency: {
		HTTPStatus:    http.StatusInternalServerError,
		PublicMessage: "something went wrong, please try again",
		FieldKey:      "general",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
