package service

import "errors"

// Sentinel business errors mapped to response codes by the handlers.
var (
	ErrNotFound            = errors.New("record not found")
	ErrSlugExists          = errors.New("slug already in use")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidPassword     = errors.New("current password is incorrect")
	ErrWeakPassword        = errors.New("password does not meet policy")
	ErrCaptchaRequired     = errors.New("captcha required")
	ErrCaptchaInvalid      = errors.New("captcha incorrect")
	ErrCategoryInUse       = errors.New("category still referenced")
	ErrInvalidParent       = errors.New("parent category invalid")
	ErrInvalidLayout       = errors.New("unknown page layout")
	ErrInvalidPublishDate  = errors.New("publish date not recognized")
	ErrPublishDateTooOld   = errors.New("publish date too far in the past")
	ErrFileMissing         = errors.New("no file uploaded")
)
