package errs

import "errors"

var (
	UnsupportedLanguage = errors.New("language not supported")
	InvalidKind         = errors.New("invalid kind")
	UnknownCollection   = errors.New("unknown collection")
	SchemaViolation     = errors.New("document does not match collection schema")
)
