package models

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	ErrUnknownKind      = errors.New("unknown content kind")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrRankingFailed    = errors.New("ranking failed")
)
