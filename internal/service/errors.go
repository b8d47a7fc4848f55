package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password. The two cases are deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned by Login when the password matches but
	// the account has been disabled.
	ErrAccountInactive = errors.New("account inactive")
)
