package activity

import "time"

// Action names the mutation that was attempted.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Outcome records how a mutation attempt ended.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeInvalid  Outcome = "invalid"
	OutcomeNotFound Outcome = "not_found"
)

// Event captures one mutation attempt for audit/debug.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	PersonID  int       `json:"personId,omitempty"`
	Outcome   Outcome   `json:"outcome"`
	CreatedAt time.Time `json:"createdAt"`
}
