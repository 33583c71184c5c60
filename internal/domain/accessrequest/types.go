package accessrequest

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the owner's decision has been made. A decided
// request never transitions again.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusDenied
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionDenied   Decision = "denied"
)

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionDenied
}

func (d Decision) ToStatus() Status {
	if d == DecisionDenied {
		return StatusDenied
	}
	return StatusApproved
}
