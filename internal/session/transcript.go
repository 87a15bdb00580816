package session

// Transcript is the append-only list of chat messages. Insertion order is
// display order.
type Transcript struct {
	messages []Message
}

func (t *Transcript) append(msg Message) {
	t.messages = append(t.messages, msg)
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the messages in display order
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent message, or false if the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
