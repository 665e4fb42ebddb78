package models

import "errors"

var (
	ErrEmptyName          = errors.New("player name is empty")
	ErrInvalidActionKind  = errors.New("invalid action kind")
	ErrInvalidMagnitude   = errors.New("invalid action magnitude")
	ErrUnrecognizedFormat = errors.New("unrecognized session format")
	ErrStorageUnavailable = errors.New("snapshot storage unavailable")
	ErrMatchStarted       = errors.New("match already started")
	ErrPlayerNotFound     = errors.New("player not found")
)
