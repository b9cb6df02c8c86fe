package session

import "github.com/sspletnik/gossipbot/internal/rumor"

type Flow string

const (
	FlowNone   Flow = ""
	FlowFind   Flow = "find"
	FlowSubmit Flow = "submit"
)

// Session is the per-user conversation state. It lives only for the duration
// of a conversation (TTL-bounded in redis) and is mutated exactly once per
// inbound event, under the per-user lock.
type Session struct {
	UserID int64 `json:"user_id"`
	ChatID int64 `json:"chat_id"`

	Flow Flow `json:"flow"`
	Step int  `json:"step"`

	Criteria rumor.Criteria `json:"criteria"`
	Draft    rumor.Draft    `json:"draft"`

	// Page state, populated only after a completed find flow.
	Pages         []string `json:"pages,omitempty"`
	PageIndex     int      `json:"page_index"`
	PageMessageID int64    `json:"page_message_id"`
}

// Reset clears the active flow and everything accumulated by it. Page state
// goes too: a fresh flow must not navigate a stale result set.
func (s *Session) Reset() {
	s.Flow = FlowNone
	s.Step = 0
	s.Criteria = rumor.Criteria{}
	s.Draft = rumor.Draft{}
	s.Pages = nil
	s.PageIndex = 0
	s.PageMessageID = 0
}

// Start enters a flow from step zero, dropping any previous state first.
func (s *Session) Start(f Flow) {
	s.Reset()
	s.Flow = f
}
