package domain

import "errors"

var ErrTaskNotFound = errors.New("task not found")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrAccountLocked = errors.New("account locked out")

// ErrNothingPersisted is reported when a write commits zero rows.
var ErrNothingPersisted = errors.New("problem saving record")
