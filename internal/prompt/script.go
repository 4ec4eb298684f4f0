package prompt

import "io"

// Script is a Prompter that replays canned answers in order and records
// the questions it was asked. It returns io.EOF when it runs out.
type Script struct {
	Answers   []string
	Questions []string
}

// NewScript returns a Script that will give answers in order.
func NewScript(answers ...string) *Script {
	return &Script{Answers: answers}
}

// Ask implements Prompter.
func (s *Script) Ask(question string) (string, error) {
	s.Questions = append(s.Questions, question)
	if len(s.Answers) == 0 {
		return "", io.EOF
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

// Confirm implements Prompter.
func (s *Script) Confirm(question string) (bool, error) {
	answer, err := s.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// Remaining returns how many answers have not been consumed.
func (s *Script) Remaining() int {
	return len(s.Answers)
}
