package domain

import (
	"errors"
)

var (
	MessageSuccessLogin = "login successful"
	MessageFailedLogin  = "failed to login"

	ErrInvalidLineUserID = errors.New("invalid LINE user ID")
)

type (
	LineLoginRequest struct {
		LineUserID  string `json:"line_user_id" validate:"required,min=10"`
		DisplayName string `json:"display_name" validate:"omitempty"`
		Email       string `json:"email" validate:"omitempty,email"`
	}

	LineLoginResponse struct {
		Token       string `json:"token"`
		UserID      string `json:"user_id"`
		DisplayName string `json:"display_name"`
	}
)
