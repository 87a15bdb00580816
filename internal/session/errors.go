package session

import (
	"errors"
	"strings"
)

var (
	ErrEmptySelection = errors.New("no files selected")
	ErrUploadInFlight = errors.New("upload already in progress")
	ErrEmptyQuestion  = errors.New("question is empty")
	ErrChatInFlight   = errors.New("question already in flight")
	ErrChatDisabled   = errors.New("chat is disabled until documents are uploaded")
)

// genericFailure is shown when a failure carries no readable text at all.
const genericFailure = "Network Error"

// failureText picks the best human-readable text for a failed request.
// Service errors already prefer the service's detail over their own
// description, so err.Error() is the right source.
func failureText(err error) string {
	if err == nil {
		return genericFailure
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return genericFailure
}
