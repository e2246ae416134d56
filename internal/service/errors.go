package service

import "errors"

// Every service failure classifies as one of these or stays a plain wrapped
// error (a store fault). Handlers map the sentinels to status codes.
var (
	ErrConflict = errors.New("already exists")
	ErrNotFound = errors.New("not found")
)
