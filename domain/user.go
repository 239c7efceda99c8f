package domain

import (
	"errors"
)

var (
	MessageSuccessSignIn = "signed in successfully"
	MessageFailedSignIn  = "failed to sign in"

	ErrUserNotFound = errors.New("user not found")
)

type (
	AnonymousSignInResponse struct {
		UserID      string `json:"user_id"`
		Token       string `json:"token"`
		IsAnonymous bool   `json:"is_anonymous"`
	}

	MeResponse struct {
		UserID      string `json:"user_id"`
		Email       string `json:"email,omitempty"`
		Role        string `json:"role"`
		IsAnonymous bool   `json:"is_anonymous"`
	}
)
