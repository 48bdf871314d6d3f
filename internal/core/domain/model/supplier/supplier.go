package supplier

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// DefaultCountry is assigned when a supplier is registered without a country.
const DefaultCountry = "Guatemala"

// Domain errors for supplier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a supplier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTaxIDIsRequired is returned when attempting to create a supplier without a tax identifier.
	ErrTaxIDIsRequired = errs.NewValueIsRequiredError("taxId")
	// ErrEmailIsRequired is returned when attempting to create a supplier without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrEmailIsInvalid is returned when the supplier email is malformed.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrSupplierIsNotConstructed is returned when using an improperly initialized Supplier.
	ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")
	// ErrSupplierIsInactive is returned when an operation requires an active supplier.
	ErrSupplierIsInactive = errors.New("supplier is inactive")
)

// ContactData groups the mutable contact attributes of a supplier.
// It is passed as a unit to creation and update operations so the two paths
// share one validation surface.
type ContactData struct {
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
	Country     string
}

// Supplier represents a vendor that purchase orders are placed against.
// It is an aggregate root that manages supplier identity, contact data,
// and activity status.
//
// Business rules:
//   - Supplier must have a valid UUID, non-empty name, tax identifier and email
//   - Email must be well formed (it is also unique, enforced by the repository)
//   - Country defaults to "Guatemala" when not provided
//   - A new supplier starts Active; Deactivate is the soft-delete operation
//   - Deactivation is idempotent and never cascades to existing orders
type Supplier struct {
	// id uniquely identifies the supplier
	id kernel.UUID
	// name is the legal or commercial name of the supplier
	name string
	// taxID is the fiscal identifier (NIT) of the supplier
	taxID string
	// contact holds the mutable contact attributes
	contact ContactData
	// status is the activity flag implementing soft deletion
	status Status
	// guard ensures the supplier was properly constructed
	guard guard.ConstructorGuard
}

// NewSupplier creates a new Supplier with the specified parameters.
// This is the only way to create a valid Supplier instance.
//
// The constructor validates all input parameters, applies the default
// country when none is given, and starts the supplier in the Active status.
//
// Parameters:
//   - id: Unique identifier for the supplier (must be valid UUID)
//   - name: Legal or commercial name (must be non-empty)
//   - taxID: Fiscal identifier (must be non-empty)
//   - contact: Contact attributes; email is required and must be well formed
//
// Returns:
//   - *Supplier: A fully initialized supplier in Active status
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewSupplier(id kernel.UUID, name, taxID string, contact ContactData) (*Supplier, error) {
	supplier := &Supplier{
		guard:  guard.NewConstructorGuard(),
		status: Active,
	}

	if err := errors.Join(
		supplier.setID(id),
		supplier.setName(name),
		supplier.setTaxID(taxID),
		supplier.setContact(contact),
	); err != nil {
		return nil, err
	}

	return supplier, nil
}

// RestoreSupplier reconstructs a Supplier aggregate from persistent storage.
// Unlike NewSupplier which always starts suppliers in the Active status, this
// constructor restores the supplier to its previously persisted status.
//
// Parameters:
//   - id: Unique identifier for the supplier
//   - name: Legal or commercial name
//   - taxID: Fiscal identifier
//   - contact: Contact attributes as persisted
//   - status: Persisted activity status (must be valid)
//
// Returns:
//   - *Supplier: Restored supplier aggregate
//   - error: Validation error if any parameter is invalid
func RestoreSupplier(id kernel.UUID, name, taxID string, contact ContactData, status Status) (*Supplier, error) {
	supplier := &Supplier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplier.setID(id),
		supplier.setName(name),
		supplier.setTaxID(taxID),
		supplier.setContact(contact),
		supplier.setStatus(status),
	); err != nil {
		return nil, err
	}

	return supplier, nil
}

// IsEqual compares two suppliers for equality based on their unique identifiers.
// Two suppliers are considered equal if they have the same ID, regardless of
// other attributes.
func (s *Supplier) IsEqual(other *Supplier) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Supplier was properly constructed using the
// NewSupplier constructor. The zero value of Supplier is invalid and will
// fail this validation.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// ID returns the unique identifier of the supplier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the legal or commercial name of the supplier.
func (s *Supplier) Name() string {
	return s.name
}

// TaxID returns the fiscal identifier of the supplier.
func (s *Supplier) TaxID() string {
	return s.taxID
}

// Contact returns the contact attributes of the supplier.
func (s *Supplier) Contact() ContactData {
	return s.contact
}

// Status returns the activity status of the supplier.
func (s *Supplier) Status() Status {
	return s.status
}

// IsActive reports whether the supplier is available for new purchasing.
func (s *Supplier) IsActive() bool {
	return s.status == Active
}

// Rename changes the supplier name and tax identifier.
// Both values must be non-empty; on validation failure the supplier is
// left unchanged.
func (s *Supplier) Rename(name, taxID string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	if strings.TrimSpace(taxID) == "" {
		return ErrTaxIDIsRequired
	}

	s.name = name
	s.taxID = taxID
	return nil
}

// UpdateContact replaces the supplier's contact attributes.
// The same validation as construction applies; on failure the supplier is
// left unchanged.
func (s *Supplier) UpdateContact(contact ContactData) error {
	return s.setContact(contact)
}

// Deactivate flips the supplier to the Inactive status.
// This is the soft-delete operation: the supplier stays on record and
// existing purchase orders keep referencing it. Deactivating an already
// inactive supplier is a no-op.
func (s *Supplier) Deactivate() {
	s.status = Inactive
}

// Activate returns a previously deactivated supplier to service.
func (s *Supplier) Activate() {
	s.status = Active
}

// setID sets the supplier's unique identifier with validation.
// This is an internal setter used during supplier construction.
func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setName sets the supplier's name with validation.
// This is an internal setter used during supplier construction.
func (s *Supplier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

// setTaxID sets the supplier's fiscal identifier with validation.
// This is an internal setter used during supplier construction.
func (s *Supplier) setTaxID(taxID string) error {
	if strings.TrimSpace(taxID) == "" {
		return ErrTaxIDIsRequired
	}

	s.taxID = taxID
	return nil
}

// setContact validates and applies the contact attributes, defaulting the
// country when none is given. Used during construction and updates.
func (s *Supplier) setContact(contact ContactData) error {
	email := strings.TrimSpace(contact.Email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if !isWellFormedEmail(email) {
		return ErrEmailIsInvalid
	}

	if strings.TrimSpace(contact.Country) == "" {
		contact.Country = DefaultCountry
	}
	contact.Email = email

	s.contact = contact
	return nil
}

// setStatus sets the supplier's activity status with validation.
// Used during supplier restoration.
func (s *Supplier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.status = status
	return nil
}

// isWellFormedEmail applies the minimal shape check the domain cares about:
// one "@" with a non-empty local part and a dotted domain. Full RFC parsing
// is deliberately out of scope; delivery failures surface operationally.
func isWellFormedEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
