package lookup

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/pkg/errors"
)

// ErrMissingCIK is returned for a GET without a usable cik parameter.
var ErrMissingCIK = errors.Errorf("missing required query parameter %q", KeyAttribute)

// UnsupportedMethodError is returned for any request that isn't a GET.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf(`Unsupported method "%s"`, e.Method)
}

// StoreError wraps a failed dynamodb call. Its message is the store's own
// message, without the aws error code prefix.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	if aerr, ok := e.Err.(awserr.Error); ok && aerr.Message() != "" {
		return aerr.Message()
	}

	return e.Err.Error()
}

// Cause returns the underlying sdk error for errors.Cause.
func (e *StoreError) Cause() error { return e.Err }

func (e *StoreError) Unwrap() error { return e.Err }
