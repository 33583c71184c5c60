package verification

type Channel string

const (
	ChannelCard           Channel = "card"
	ChannelManualTransfer Channel = "manual_transfer"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return c == ChannelCard || c == ChannelManualTransfer
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the verification has received its single decision.
// Rejection is recovered from by appending a new attempt, never by mutating
// the finalized record.
func (s Status) IsFinal() bool {
	return s == StatusVerified || s == StatusRejected
}
