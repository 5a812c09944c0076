package bench

import (
	"fmt"
	"strings"
)

// Policy is the dispatch discipline.
//
// PolicyBarrier spawns T workers, joins all of them, counts the successes and
// checks the time gate once per batch. Stragglers stall the next batch.
//
// PolicySteady keeps T workers in flight: it spawns while the pool is short,
// otherwise sweeps the pool for finished workers, and checks the gate on
// every iteration. Workers still running when the gate trips are abandoned
// and not counted.
//
// Both report Completed / S with the configured S.
type Policy int

const (
	PolicyBarrier Policy = iota
	PolicySteady
)

func (p Policy) valid() bool {
	return p == PolicyBarrier || p == PolicySteady
}

func (p Policy) String() string {
	switch p {
	case PolicyBarrier:
		return "barrier"
	case PolicySteady:
		return "steady"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy accepts "b"/"barrier" and "s"/"steady", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "barrier":
		return PolicyBarrier, nil
	case "s", "steady":
		return PolicySteady, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// State is a phase of a run: INIT → RUNNING → DRAINING → DONE.
type State int

const (
	// StateInit prints the banner and prepares D.
	StateInit State = iota
	// StateRunning spawns, joins or polls until the time gate trips.
	StateRunning
	// StateDraining settles workers still in flight when the gate tripped.
	StateDraining
	// StateDone reports the score.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateRunning:
		return "RUNNING"
	case StateDraining:
		return "DRAINING"
	case StateDone:
		return "DONE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
