package apperr

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNotFound          = errors.New("not found")
	ErrInvalidFormat     = errors.New("payload format not recognized")
	ErrUploadFailed      = errors.New("upload failed")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrRemoteUnavailable = errors.New("backend unavailable")
)
