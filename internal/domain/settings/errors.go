package settings

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown settings category")
)
