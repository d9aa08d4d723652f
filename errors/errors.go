package errors

import "fmt"

var (
	ErrTransport        = fmt.Errorf("request to remote source failed")
	ErrUnexpectedStatus = fmt.Errorf("remote source answered with a non-2xx status")
	ErrMalformedPayload = fmt.Errorf("remote payload cannot be decoded into miners")

	ErrUnreadableTable = fmt.Errorf("table cannot be read")
	ErrMalformedTable  = fmt.Errorf("table is malformed")
	ErrMissingColumn   = fmt.Errorf("required column is missing")

	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrUnknownSource = fmt.Errorf("unknown recipient source")
)
