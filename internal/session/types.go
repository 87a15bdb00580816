// internal/session/types.go
package session

import (
	"context"
	"time"
)

// File is a handle to a document staged for upload
type File struct {
	Name string // base name sent to the service
	Path string // absolute path on disk
	Size int64  // bytes at selection time
}

// Role identifies who produced a transcript message
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
	RoleError
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	case RoleError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is one transcript entry. Never modified after creation.
type Message struct {
	Role    Role
	Content string
	Sources []string // assistant citations, if the service sent any
	At      time.Time
}

// Answer is the service's reply to a question
type Answer struct {
	Text    string
	Sources []string
}

// Uploader submits a batch of documents and reports how many the service
// accepted.
type Uploader interface {
	UploadDocuments(ctx context.Context, files []File) (int, error)
}

// Answerer submits a question and returns the answer.
type Answerer interface {
	Ask(ctx context.Context, question string) (Answer, error)
}

// Service is everything the session needs from the document service.
type Service interface {
	Uploader
	Answerer
}
