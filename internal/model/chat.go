package model

type ChatTurn struct {
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
	Error    *string `json:"error"`
}

func NewAnswerTurn(question, answer string) ChatTurn {
	return ChatTurn{Question: question, Answer: &answer}
}

func NewErrorTurn(question, errMsg string) ChatTurn {
	return ChatTurn{Question: question, Error: &errMsg}
}

// Session is the per-caller state kept between requests. Handlers load it,
// pass it by value into the service layer and save what comes back.
type Session struct {
	ID            string     `json:"id"`
	CurrentSymbol string     `json:"current_symbol,omitempty"`
	ChatHistory   []ChatTurn `json:"chat_history"`
}

func NewSession(id string) Session {
	return Session{ID: id, ChatHistory: []ChatTurn{}}
}

func (s Session) AppendTurn(turn ChatTurn) Session {
	history := make([]ChatTurn, len(s.ChatHistory), len(s.ChatHistory)+1)
	copy(history, s.ChatHistory)
	s.ChatHistory = append(history, turn)
	return s
}

func (s Session) ClearChat() Session {
	s.ChatHistory = []ChatTurn{}
	return s
}

func (s Session) SetSymbol(symbol string) Session {
	s.CurrentSymbol = symbol
	return s
}

func (s Session) ClearSymbol() Session {
	s.CurrentSymbol = ""
	return s
}
