package entity

import "errors"

var (
	// ErrStorageUnavailable means the relational store is unreachable or was
	// never configured. Read paths may degrade; write paths surface it.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidArgument means a missing or malformed identifier, rejected
	// before any transaction starts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means a referenced user or tool does not exist.
	ErrNotFound = errors.New("not found")
)
