package validate

import "strings"

// Errors accumulates validation failures in the order they were found.
// The zero value is ready to use.
type Errors struct {
	messages []string
}

// Check records msg when ok is false.
func (e *Errors) Check(ok bool, msg string) {
	if !ok {
		e.messages = append(e.messages, msg)
	}
}

// Add records msg unconditionally.
func (e *Errors) Add(msg string) {
	e.messages = append(e.messages, msg)
}

// Messages returns a copy of the recorded messages.
func (e *Errors) Messages() []string {
	out := make([]string, len(e.messages))
	copy(out, e.messages)
	return out
}

// Len is the number of recorded failures.
func (e *Errors) Len() int {
	return len(e.messages)
}

func (e *Errors) Error() string {
	return "validation failed: " + strings.Join(e.messages, "; ")
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *Errors) Err() error {
	if e == nil || len(e.messages) == 0 {
		return nil
	}
	return e
}

// New builds an Errors value from the given messages.
func New(messages ...string) *Errors {
	e := &Errors{}
	for _, m := range messages {
		e.Add(m)
	}
	return e
}
