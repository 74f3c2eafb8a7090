package model

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches.
	ErrNotFound = errors.New("record not found")

	ErrTokenMismatch = errors.New("token mismatch")
	// ErrNoActiveSession is returned when a refresh is attempted
	// for an account with no stored refresh token.
	ErrNoActiveSession = errors.New("no active session")
)
