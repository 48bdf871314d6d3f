package order

import (
	"fmt"
	"strings"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct procurement workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved ──┬──> Processing ──┬──> Completed
//	          │               ├─────────────────┴──> Cancelled
//	          └──> Rejected   └──> Completed
//
// Rejected, Completed and Cancelled are terminal: once an order reaches
// one of them, no further transition is permitted.
//
// Status is a value object that validates state transitions and provides
// two string vocabularies: the persisted labels stored in the database
// (e.g. "Completada") and the external labels accepted and produced by the
// API (e.g. "ENTREGADA"). The mapping between the two is explicit and
// fully enumerated; in particular the external "ENTREGADA" (delivered)
// maps to the persisted "Completada" label.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of every new purchase order.
	Pending

	// Approved indicates the order has been authorized for purchase.
	Approved

	// Rejected indicates the order was declined. Terminal.
	Rejected

	// Processing indicates the supplier is fulfilling the order.
	Processing

	// Completed indicates the order has been delivered in full. Terminal.
	Completed

	// Cancelled indicates the order was withdrawn after approval. Terminal.
	Cancelled
)

// getStatusStrings returns the map of Status values to their persisted labels.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pendiente",
		Approved:      "Aprobada",
		Rejected:      "Rechazada",
		Processing:    "En proceso",
		Completed:     "Completada",
		Cancelled:     "Cancelada",
	}
}

// getValidStatusStrings returns the map of only valid Status values to their
// persisted labels. Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pendiente",
		Approved:   "Aprobada",
		Rejected:   "Rechazada",
		Processing: "En proceso",
		Completed:  "Completada",
		Cancelled:  "Cancelada",
	}
}

// getExternalStatusStrings returns the map of valid Status values to the
// labels used on the API surface. This is the outbound half of the
// bidirectional vocabulary table; parseStatusInputs is the inbound half.
func getExternalStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDIENTE",
		Approved:   "APROBADA",
		Rejected:   "RECHAZADA",
		Processing: "EN_PROCESO",
		Completed:  "ENTREGADA",
		Cancelled:  "CANCELADA",
	}
}

// parseStatusInputs enumerates every accepted normalized input label.
// Both the external and the persisted vocabulary are accepted, so callers
// that echo back a stored label round-trip cleanly. "ENTREGADA" and
// "COMPLETADA" both resolve to Completed.
func parseStatusInputs() map[string]Status {
	return map[string]Status{
		"PENDIENTE":  Pending,
		"APROBADA":   Approved,
		"RECHAZADA":  Rejected,
		"EN_PROCESO": Processing,
		"EN PROCESO": Processing,
		"ENTREGADA":  Completed,
		"COMPLETADA": Completed,
		"CANCELADA":  Cancelled,
	}
}

// terminalStatuses enumerates the statuses from which no transition is allowed.
func terminalStatuses() map[Status]bool {
	return map[Status]bool{
		Rejected:  true,
		Completed: true,
		Cancelled: true,
	}
}

// allowedTransitions enumerates every legal transition of the state machine.
// A status absent from the map permits none.
func allowedTransitions() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Pending:    {Approved: true, Rejected: true},
		Approved:   {Processing: true, Completed: true, Cancelled: true},
		Processing: {Completed: true, Cancelled: true},
	}
}

// ParseStatus resolves an external or persisted status label to a Status.
// Input is case-insensitive and surrounding whitespace is ignored.
// An unrecognized label fails with a validation error, never an
// invalid-transition error: vocabulary problems are the caller's fault
// and are detected before any state machine rule is consulted.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if status, ok := parseStatusInputs()[normalized]; ok {
		return status, nil
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// StatusFromPersisted resolves a persisted database label to a Status.
// Used when reconstructing aggregates from storage.
func StatusFromPersisted(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a persisted status label", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted label of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ExternalString returns the label used for the status on the API surface.
// Completed is rendered as "ENTREGADA".
func (s Status) ExternalString() string {
	if str, ok := getExternalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return terminalStatuses()[s]
}

// TransitionTo validates the transition from the current status to target
// and returns the new status.
//
// Rules, applied in order:
//   - target must be a valid enumerated status (validation error otherwise);
//   - a terminal current status rejects every request with an
//     invalid-transition error carrying the current status;
//   - a non-terminal current status only accepts targets listed in the
//     transition table; anything else is an invalid transition.
//
// The returned status equals target on success. TransitionTo never
// mutates anything; the aggregate applies the result.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), target.String(),
			fmt.Errorf("status %s is terminal", s.String()),
		)
	}

	if !allowedTransitions()[s][target] {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
