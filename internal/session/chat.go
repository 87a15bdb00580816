// internal/session/chat.go
package session

import (
	"context"
	"strings"
	"time"

	"compass/internal/logger"
)

// GateReader reports whether documents have been uploaded. The chat
// controller only reads it; the Session owns the value.
type GateReader interface {
	DocumentsAvailable() bool
}

// ChatResult is what a ChatCall produces
type ChatResult struct {
	Answer Answer
	Err    error
}

// ChatCall performs the network part of a question. Like UploadCall it
// touches no controller state.
type ChatCall func() ChatResult

// ChatController owns the transcript and the in-flight flag.
type ChatController struct {
	answerer   Answerer
	gate       GateReader
	transcript Transcript
	inFlight   bool
	now        func() time.Time
}

func NewChatController(a Answerer, gate GateReader) *ChatController {
	return &ChatController{
		answerer: a,
		gate:     gate,
		now:      time.Now,
	}
}

// Ask appends the question to the transcript right away and returns the
// call that fetches the answer. A refused question leaves everything
// untouched and returns a nil call.
func (c *ChatController) Ask(ctx context.Context, question string) (ChatCall, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}
	if c.inFlight {
		return nil, ErrChatInFlight
	}
	if c.Disabled() {
		return nil, ErrChatDisabled
	}

	c.transcript.append(Message{Role: RoleUser, Content: question, At: c.now()})
	c.inFlight = true
	logger.Debugf("chat: asking (%d chars)", len(question))

	return func() ChatResult {
		answer, err := c.answerer.Ask(ctx, question)
		return ChatResult{Answer: answer, Err: err}
	}, nil
}

// Resolve appends the terminal message for the outstanding question.
func (c *ChatController) Resolve(res ChatResult) {
	if !c.inFlight {
		logger.Warnf("chat: dropping result with no question in flight")
		return
	}

	if res.Err != nil {
		text := failureText(res.Err)
		c.transcript.append(Message{Role: RoleError, Content: text, At: c.now()})
		logger.Warnf("chat: question failed: %s", text)
	} else {
		c.transcript.append(Message{
			Role:    RoleAssistant,
			Content: res.Answer.Text,
			Sources: append([]string(nil), res.Answer.Sources...),
			At:      c.now(),
		})
		logger.Debugf("chat: answer received (%d sources)", len(res.Answer.Sources))
	}
	c.inFlight = false
}

func (c *ChatController) Transcript() *Transcript {
	return &c.transcript
}

func (c *ChatController) InFlight() bool {
	return c.inFlight
}

// Disabled reports whether the gate is still closed.
func (c *ChatController) Disabled() bool {
	return c.gate == nil || !c.gate.DocumentsAvailable()
}
