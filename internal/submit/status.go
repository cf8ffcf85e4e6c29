package submit

// State is the lifecycle of one contact submission as seen by the visitor.
type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Status is the single value the contact form renders.
type Status struct {
	State   State  `json:"state"`
	Message string `json:"message,omitempty"`
}

func (s Status) IsError() bool   { return s.State == StateError }
func (s Status) IsSuccess() bool { return s.State == StateSuccess }
func (s Status) IsSending() bool { return s.State == StateSending }

func idle() Status {
	return Status{State: StateIdle}
}

func failed(msg string) Status {
	return Status{State: StateError, Message: msg}
}
