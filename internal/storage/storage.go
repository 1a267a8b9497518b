package storage

import "errors"

var (
	ErrCarNotFound      = errors.New("car not found")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrSlugExists       = errors.New("slug already in use")
	ErrSlideNotFound    = errors.New("carousel image not found")
	ErrScriptNotFound   = errors.New("script not found")
	ErrSettingsNotFound = errors.New("settings not found")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
