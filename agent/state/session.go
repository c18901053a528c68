package state

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// maxHistoryMessages bounds the stored transcript; older messages are
	// dropped front-first once the cap is exceeded.
	maxHistoryMessages = 20
)

// Message is one role-tagged entry in the conversation transcript.
type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// SessionState is the per-conversation source of truth: the current funnel
// phase, the accumulated slots, the properties shown so far and the
// transcript. One conversation owns one SessionState; a turn mutates it
// exclusively.
type SessionState struct {
	SessionID string `json:"session_id"`

	Phase Phase `json:"phase"`
	Slots Slots `json:"slots"`

	// Selected holds the full list shown during the last suggestion turn;
	// LastMentioned is a value copy of its first entry, kept valid even if
	// the catalog is refreshed later.
	Selected      []Property `json:"selected,omitempty"`
	LastMentioned *Property  `json:"last_mentioned,omitempty"`

	History []Message `json:"history,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewSessionState(sessionID string, now time.Time) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		Phase:     PhaseDiscovery,
		UpdatedAt: now.UTC(),
	}
}

func (s *SessionState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

func (s *SessionState) AppendUserMessage(content string, now time.Time) {
	s.appendMessage(RoleUser, content, now)
}

func (s *SessionState) AppendAssistantMessage(content string, now time.Time) {
	s.appendMessage(RoleAssistant, content, now)
}

func (s *SessionState) appendMessage(role, content string, now time.Time) {
	s.History = append(s.History, Message{Role: role, Content: content, At: now.UTC()})
	if overflow := len(s.History) - maxHistoryMessages; overflow > 0 {
		s.History = append([]Message(nil), s.History[overflow:]...)
	}
}

// SetLastMentioned stores a value copy of the given property.
func (s *SessionState) SetLastMentioned(p *Property) {
	if p == nil {
		s.LastMentioned = nil
		return
	}
	copied := *p
	s.LastMentioned = &copied
}
