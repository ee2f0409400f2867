package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the request body could not be parsed, please check that it is valid JSON")
	ErrRequestBodyEmpty = errors.New("the request needs a body, but it was empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
