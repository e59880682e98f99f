package util

import "errors"

var (
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserDisabled         = errors.New("user account disabled")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrBookNotFound         = errors.New("book not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrFlowNotFound         = errors.New("assessment not found or already completed")
	ErrFlowFinished         = errors.New("assessment already completed")
	ErrDailyGifLimit        = errors.New("daily gif limit reached (max 3)")
)
