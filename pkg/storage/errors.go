package storage

import "errors"

var (
	// ErrInvalidConfig indicates missing required configuration fields.
	ErrInvalidConfig = errors.New("storage: invalid configuration")

	// ErrUploadFailed indicates the object store rejected the upload.
	ErrUploadFailed = errors.New("storage: upload failed")

	// ErrDeleteFailed indicates the object could not be removed.
	ErrDeleteFailed = errors.New("storage: delete failed")

	// ErrFileTooLarge indicates the file exceeds the configured size cap.
	ErrFileTooLarge = errors.New("storage: file too large")
)
