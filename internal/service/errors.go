package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationEmptyPageID    = errors.New("empty page id")
	ErrValidationEmptyBlockID   = errors.New("empty block id")
	ErrValidationNoContent      = errors.New("no block content provided")
	ErrValidationEmptyTitle     = errors.New("empty title")
	ErrValidationEmptyName      = errors.New("empty name")
	ErrValidationEmptyMessage   = errors.New("empty message body")
	ErrValidationEmptyImageURL  = errors.New("empty image url")
	ErrValidationNoContactWay   = errors.New("phone or email is required")
	ErrValidationEmptySlug      = errors.New("empty slug")
	ErrValidationEmptyID        = errors.New("empty record id")
	ErrValidationBadLanguage    = errors.New("unsupported site language")
	ErrValidationBadBlockArray  = errors.New("invalid block array")
	ErrValidationBadDesignValue = errors.New("invalid design settings value")
)
