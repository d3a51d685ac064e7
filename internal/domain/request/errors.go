package request

import "errors"

// Schedule request domain errors
var (
	ErrRequestNotFound  = errors.New("schedule request not found")
	ErrAlreadyProcessed = errors.New("schedule request already approved or rejected")
)
