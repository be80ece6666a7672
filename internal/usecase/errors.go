package usecase

import "errors"

const (
	CopiedMessage     = "Copied to clipboard!"
	CopyFailedMessage = "Failed to copy to clipboard."
)

var (
	ErrNothingToCopy        = errors.New("nothing to copy")
	ErrClipboardUnavailable = errors.New("clipboard is not configured")
)
