package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotFound   = errors.New("user not found")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrUserNotAllowed = errors.New("user not allowed")
)
