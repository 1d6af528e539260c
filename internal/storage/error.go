package storage

import "errors"

var (
	// -- Remote failures --
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
