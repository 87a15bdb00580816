package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openGate() *Gate {
	g := &Gate{}
	g.Open()
	return g
}

func TestChat_EveryAcceptedQuestionGetsOneTerminal(t *testing.T) {
	svc := &fakeService{}
	c := NewChatController(svc, openGate())

	questions := []string{"a", "What is clause 4?", "  padded  ", "multi\nline", "ünïcödé?"}
	for i, q := range questions {
		if i%2 == 0 {
			svc.answer, svc.askErr = Answer{Text: fmt.Sprintf("answer %d", i)}, nil
		} else {
			svc.answer, svc.askErr = Answer{}, &detailError{fmt.Sprintf("fail %d", i)}
		}

		before := c.Transcript().Len()
		call, err := c.Ask(context.Background(), q)
		require.NoError(t, err)

		last, ok := c.Transcript().Last()
		require.True(t, ok)
		assert.Equal(t, Message{Role: RoleUser, Content: q, At: last.At}, last)
		assert.True(t, c.InFlight())

		c.Resolve(call())
		assert.False(t, c.InFlight())

		msgs := c.Transcript().Messages()
		require.Len(t, msgs, before+2)
		assert.Equal(t, RoleUser, msgs[before].Role)
		if i%2 == 0 {
			assert.Equal(t, RoleAssistant, msgs[before+1].Role)
			assert.Equal(t, fmt.Sprintf("answer %d", i), msgs[before+1].Content)
		} else {
			assert.Equal(t, RoleError, msgs[before+1].Role)
			assert.Equal(t, fmt.Sprintf("fail %d", i), msgs[before+1].Content)
		}
	}
	assert.Equal(t, questions, svc.questions)
}

func TestChat_BlankQuestionsIgnored(t *testing.T) {
	svc := &fakeService{}
	c := NewChatController(svc, openGate())

	for _, q := range []string{"", " ", "\t", "\n  \r\n"} {
		call, err := c.Ask(context.Background(), q)
		assert.Nil(t, call)
		assert.True(t, errors.Is(err, ErrEmptyQuestion))
	}
	assert.Equal(t, 0, c.Transcript().Len())
	assert.False(t, c.InFlight())
	assert.Empty(t, svc.questions)
}

func TestChat_SecondAskWhileInFlightIsNoop(t *testing.T) {
	svc := &fakeService{answer: Answer{Text: "first answer"}}
	c := NewChatController(svc, openGate())

	first, err := c.Ask(context.Background(), "first")
	require.NoError(t, err)
	require.Equal(t, 1, c.Transcript().Len())

	second, err := c.Ask(context.Background(), "second")
	assert.Nil(t, second)
	assert.True(t, errors.Is(err, ErrChatInFlight))
	assert.Equal(t, 1, c.Transcript().Len())

	c.Resolve(first())
	msgs := c.Transcript().Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "first answer", msgs[1].Content)
	assert.Equal(t, []string{"first"}, svc.questions)
}

func TestChat_ServiceDetailBecomesErrorMessage(t *testing.T) {
	svc := &fakeService{askErr: &detailError{"document limit exceeded"}}
	c := NewChatController(svc, openGate())

	call, err := c.Ask(context.Background(), "summarise everything")
	require.NoError(t, err)
	c.Resolve(call())

	last, ok := c.Transcript().Last()
	require.True(t, ok)
	assert.Equal(t, RoleError, last.Role)
	assert.Equal(t, "document limit exceeded", last.Content)
}

func TestChat_DisabledFollowsGate(t *testing.T) {
	gate := &Gate{}
	c := NewChatController(&fakeService{}, gate)
	assert.True(t, c.Disabled())

	_, err := c.Ask(context.Background(), "hello")
	assert.True(t, errors.Is(err, ErrChatDisabled))

	gate.Open()
	assert.False(t, c.Disabled())
	call, err := c.Ask(context.Background(), "hello")
	require.NoError(t, err)
	assert.NotNil(t, call)
}

func TestChat_NilGateIsDisabled(t *testing.T) {
	c := NewChatController(&fakeService{}, nil)
	assert.True(t, c.Disabled())
}

func TestChat_StaleResolveIgnored(t *testing.T) {
	c := NewChatController(&fakeService{}, openGate())
	c.Resolve(ChatResult{Answer: Answer{Text: "orphan"}})
	assert.Equal(t, 0, c.Transcript().Len())
}

func TestTranscript_MessagesIsACopy(t *testing.T) {
	c := NewChatController(&fakeService{answer: Answer{Text: "ok"}}, openGate())
	call, _ := c.Ask(context.Background(), "q")
	c.Resolve(call())

	msgs := c.Transcript().Messages()
	msgs[0].Content = "tampered"
	assert.Equal(t, "q", c.Transcript().Messages()[0].Content)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "user", RoleUser.String())
	assert.Equal(t, "assistant", RoleAssistant.String())
	assert.Equal(t, "error", RoleError.String())
	assert.Equal(t, "unknown", Role(9).String())
}
