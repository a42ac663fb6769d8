package services

import "errors"

var (
	// ErrSlugTaken is returned when an explicitly chosen slug collides with
	// an existing record of the same entity type.
	ErrSlugTaken = errors.New("slug is already in use")

	// ErrUnknownCategory is returned when an article references a category
	// slug that does not exist. The reference is soft (a string match, not a
	// foreign key), so it is validated at write time.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish a missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
