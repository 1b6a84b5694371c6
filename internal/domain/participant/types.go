package participant

// Status tracks whether a participant opted into the exchange before
// the assignment deadline.
type Status string

const (
	StatusExpectedToChoose Status = "expected_to_choose"
	StatusInvolved         Status = "involved"
	StatusRefused          Status = "refused"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusExpectedToChoose, StatusInvolved, StatusRefused:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// TargetStatus is the per-participant progress marker over the assigned
// recipient: whether their info has been viewed and the gift prepared.
// Undefined exactly while no target is assigned.
type TargetStatus string

const (
	TargetStatusUndefined         TargetStatus = "undefined"
	TargetStatusGiftInfoNotViewed TargetStatus = "gift_info_not_viewed"
	TargetStatusGiftInfoViewed    TargetStatus = "gift_info_viewed"
	TargetStatusGiftReady         TargetStatus = "gift_ready"
)

func (s TargetStatus) String() string {
	return string(s)
}

func (s TargetStatus) IsValid() bool {
	switch s {
	case TargetStatusUndefined, TargetStatusGiftInfoNotViewed, TargetStatusGiftInfoViewed, TargetStatusGiftReady:
		return true
	default:
		return false
	}
}

func NewTargetStatus(s string) (TargetStatus, error) {
	status := TargetStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidTargetStatus
	}
	return status, nil
}
