package model

import "fmt"

// Outcome is the graded state of an exam attempt. The on-disk values keep
// the legacy encoding (-1 pending, 0 rejected, 1 approved) so existing data
// stays readable.
type Outcome int

const (
	OutcomePending  Outcome = -1
	OutcomeRejected Outcome = 0
	OutcomeApproved Outcome = 1
)

// ParseOutcome rejects any value outside the three known states.
func ParseOutcome(v int) (Outcome, error) {
	switch Outcome(v) {
	case OutcomePending, OutcomeRejected, OutcomeApproved:
		return Outcome(v), nil
	}
	return 0, fmt.Errorf("invalid outcome value %d", v)
}

// Terminal reports whether the attempt has been graded. A terminal outcome
// is immutable.
func (o Outcome) Terminal() bool {
	return o == OutcomeApproved || o == OutcomeRejected
}

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeApproved:
		return "approved"
	case OutcomeRejected:
		return "rejected"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}
