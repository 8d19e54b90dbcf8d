package world

import "errors"

var (
	ErrDuplicateID      = errors.New("duplicate entity id")
	ErrInvalidRadius    = errors.New("radius must be positive")
	ErrInvalidSides     = errors.New("side count must be positive")
	ErrSecondProjectile = errors.New("world already has a projectile")
	ErrEmptyID          = errors.New("entity id is empty")
)
