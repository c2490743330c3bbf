package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeUnimplemented      Code = "UNIMPLEMENTED"

	// CodeMalformed marks data that was read but could not be decoded.
	CodeMalformed Code = "MALFORMED"
	// CodeIO marks a storage failure (filesystem or redis) that is not a miss.
	CodeIO Code = "IO"

	CodeInternal Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsStorage reports whether the code describes a failure to read or write persisted data.
func (c Code) IsStorage() bool {
	return c == CodeNotFound || c == CodeMalformed || c == CodeIO
}
