package services

import "errors"

var (
	// ErrEmailTaken is returned on registration with an already-known email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
)
