package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account cannot log in with its current status")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
	ErrGoogleNotLinked    = errors.New("no account linked to this google identity")
)
