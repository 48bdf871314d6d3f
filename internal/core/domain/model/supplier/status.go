package supplier

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the activity state of a supplier.
// Unlike purchase orders, suppliers have no workflow: the status is a
// two-state flag that implements soft deletion. An inactive supplier stays
// on record but is excluded from new purchasing.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Active is the status of every newly registered supplier.
	Active

	// Inactive marks a soft-deleted supplier.
	Inactive
)

// getStatusStrings returns the map of Status values to their persisted labels.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Active:        "Activo",
		Inactive:      "Inactivo",
	}
}

// getValidStatusStrings returns the map of only valid Status values to their
// persisted labels. Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "Activo",
		Inactive: "Inactivo",
	}
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
