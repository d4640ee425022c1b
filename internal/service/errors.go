package service

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already RSVP'd to this event")
	ErrEventFull         = errors.New("event is full")
	ErrValidation        = errors.New("validation error")
)
