package domain

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrCollaborationNotFound = errors.New("collaboration not found")
	ErrEmptyMessage          = errors.New("empty message")
	ErrMessageTooLong        = errors.New("message too long")
)
