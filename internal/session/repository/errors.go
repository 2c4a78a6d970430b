package repository

import "errors"

var (
	ErrNotFound      = errors.New("session record not found")
	ErrAlreadyExists = errors.New("session record already exists")
)
