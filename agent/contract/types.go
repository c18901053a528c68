package contract

import (
	statex "github.com/semsarlabs/semsar/agent/state"
)

// Knowledge is what a retriever hands back for one turn. Either field may
// be empty; the renderer only uses the first suggested question and the
// relevant properties during suggestion turns.
type Knowledge struct {
	SuggestedQuestions []string          `json:"suggested_questions,omitempty"`
	RelevantProperties []statex.Property `json:"relevant_properties,omitempty"`
}

// FirstQuestion returns the first suggested question, if any.
func (k Knowledge) FirstQuestion() (string, bool) {
	if len(k.SuggestedQuestions) == 0 {
		return "", false
	}
	return k.SuggestedQuestions[0], true
}

// DecisionRequest carries everything a phase decider may consult.
type DecisionRequest struct {
	Message string           `json:"message"`
	Current statex.Phase     `json:"current"`
	Slots   *statex.Slots    `json:"slots"`
	History []statex.Message `json:"history,omitempty"`
}
