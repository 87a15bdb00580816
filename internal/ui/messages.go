package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/session"
)

// uploadDoneMsg carries the result of an UploadCall back to Update
type uploadDoneMsg struct {
	Result session.UploadResult
}

// answerMsg carries the result of a ChatCall back to Update
type answerMsg struct {
	Result session.ChatResult
}

// healthMsg reports the outcome of a health check
type healthMsg struct {
	Status string
	Err    error
}

// HealthChecker is the optional health endpoint of the service
type HealthChecker interface {
	Health(ctx context.Context) (string, error)
}

func runUpload(call session.UploadCall) tea.Cmd {
	return func() tea.Msg {
		return uploadDoneMsg{Result: call()}
	}
}

func runAsk(call session.ChatCall) tea.Cmd {
	return func() tea.Msg {
		return answerMsg{Result: call()}
	}
}

func checkHealth(h HealthChecker) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		status, err := h.Health(ctx)
		return healthMsg{Status: status, Err: err}
	}
}
