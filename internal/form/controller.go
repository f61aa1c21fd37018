// Package form drives the add and edit employee form: field state, validation,
// confirm-before-update and navigation after a successful save.
package form

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/validation"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// ListPath is where the form navigates after saving or cancelling.
const ListPath = "/employees"

// Store is the part of the employee store the form needs.
type Store interface {
	GetEmployees() []domain.Employee
	AddEmployee(data domain.EmployeeData) (domain.Employee, error)
	UpdateEmployee(id string, patch domain.EmployeePatch) (domain.Employee, error)
}

// Navigator changes the current route.
type Navigator interface {
	Navigate(path string)
}

// Translator resolves user-facing messages.
type Translator interface {
	Translate(key string, values map[string]any) string
}

// Dependencies wires a Controller to its collaborators.
type Dependencies struct {
	Store      Store
	Navigator  Navigator
	Translator Translator
	Catalog    domain.Catalog
	Now        func() time.Time
	Logger     *zap.Logger
}

// Mode tells whether the form creates or edits an employee.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "add"
}

// State is the lifecycle position of a form.
type State int

const (
	StateEditing State = iota
	StateAwaitingConfirmation
	StateNavigated
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateNavigated:
		return "navigated"
	case StateNotFound:
		return "not_found"
	default:
		return "editing"
	}
}

// Outcome is the result of Submit.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeSaved
	OutcomeRejected
	OutcomeAwaitingConfirmation
)

// Field names an editable form input. The value doubles as its label key.
type Field string

const (
	FieldFirstName        Field = "firstName"
	FieldLastName         Field = "lastName"
	FieldDateOfEmployment Field = "dateOfEmployment"
	FieldDateOfBirth      Field = "dateOfBirth"
	FieldPhoneNumber      Field = "phoneNumber"
	FieldEmail            Field = "email"
	FieldDepartment       Field = "department"
	FieldPosition         Field = "position"
)

// AllFields lists the inputs in display and validation order.
var AllFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldDateOfEmployment,
	FieldDateOfBirth,
	FieldPhoneNumber,
	FieldEmail,
	FieldDepartment,
	FieldPosition,
}

// FieldChange is one difference between the stored employee and the edited fields.
type FieldChange struct {
	Field  Field
	Before string
	After  string
}

// message is translated when read so a language switch applies to open forms.
type message struct {
	key   string
	field Field
	text  string
}

// Controller is one add-or-edit form lifecycle. It is safe for concurrent use.
type Controller struct {
	mu   sync.Mutex
	deps Dependencies

	mode       Mode
	state      State
	employeeID string
	original   domain.Employee
	fields     domain.EmployeeData

	showValidation  bool
	showUpdateModal bool
	fieldErrors     map[Field]message
	alert           *message
}

// New starts a form. An empty employeeID opens the add form; otherwise the
// employee is looked up in the store and the form opens in edit mode.
func New(employeeID string, deps Dependencies) *Controller {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if len(deps.Catalog.Departments) == 0 && len(deps.Catalog.Positions) == 0 {
		deps.Catalog = domain.DefaultCatalog()
	}

	c := &Controller{
		deps:        deps,
		employeeID:  employeeID,
		fieldErrors: map[Field]message{},
	}

	if employeeID == "" {
		c.mode = ModeAdd
		c.fields = domain.EmployeeData{
			Department: deps.Catalog.DefaultDepartment(),
			Position:   deps.Catalog.DefaultPosition(),
		}
		return c
	}

	c.mode = ModeEdit
	for _, e := range deps.Store.GetEmployees() {
		if e.ID == employeeID {
			c.original = e
			c.fields = e.Data()
			return c
		}
	}
	c.state = StateNotFound
	deps.Logger.Warn("edit form opened for unknown employee", zap.String("id", employeeID))
	return c
}

// Mode reports whether the form adds or edits.
func (c *Controller) Mode() Mode {
	return c.mode
}

// EmployeeID is the edited employee's id, empty in add mode.
func (c *Controller) EmployeeID() string {
	return c.employeeID
}

// Catalog returns the departments and positions the form offers.
func (c *Controller) Catalog() domain.Catalog {
	return c.deps.Catalog
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Fields() domain.EmployeeData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Original is the employee as it was when the edit form opened.
func (c *Controller) Original() domain.Employee {
	return c.original
}

func (c *Controller) ShowValidation() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showValidation
}

func (c *Controller) ShowUpdateModal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showUpdateModal
}

// SetField stores value into the named field. Values are checked on Submit.
// Changing a value while an update awaits confirmation withdraws the pending update.
func (c *Controller) SetField(f Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateNotFound {
		return c.notFound()
	}

	if previous, ok := fieldValues(c.fields)[f]; ok && previous != value && c.state == StateAwaitingConfirmation {
		c.state = StateEditing
		c.showUpdateModal = false
	}

	switch f {
	case FieldFirstName:
		c.fields.FirstName = value
	case FieldLastName:
		c.fields.LastName = value
	case FieldDateOfEmployment:
		c.fields.DateOfEmployment = value
	case FieldDateOfBirth:
		c.fields.DateOfBirth = value
	case FieldPhoneNumber:
		c.fields.PhoneNumber = value
	case FieldEmail:
		c.fields.Email = value
	case FieldDepartment:
		c.fields.Department = domain.Department(value)
	case FieldPosition:
		c.fields.Position = domain.Position(value)
	default:
		return apperrors.NewValidationError("unknown form field", map[string]any{"field": string(f)})
	}
	return nil
}

// Submit validates the fields. In add mode a valid form is saved and the form
// navigates to the list; in edit mode it waits for Confirm.
func (c *Controller) Submit() (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateNotFound:
		return OutcomeInvalid, c.notFound()
	case StateNavigated:
		return OutcomeInvalid, apperrors.NewConflict("form is already closed", nil)
	}

	if errs, first := c.validate(); len(errs) > 0 {
		return OutcomeInvalid, c.reject(errs, first)
	}

	c.fieldErrors = map[Field]message{}
	c.showValidation = false
	c.alert = nil

	if c.mode == ModeEdit {
		c.showUpdateModal = true
		c.state = StateAwaitingConfirmation
		return OutcomeAwaitingConfirmation, nil
	}

	created, err := c.deps.Store.AddEmployee(c.fields)
	if err != nil {
		c.alert = &message{text: apperrors.ToDomainError(err).Message}
		return OutcomeRejected, err
	}
	c.deps.Logger.Info("employee added", zap.String("id", created.ID))
	c.navigate(ListPath)
	return OutcomeSaved, nil
}

// Confirm applies the pending update and navigates to the list. A store
// rejection closes the modal and keeps the form open with an alert.
func (c *Controller) Confirm() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAwaitingConfirmation {
		return apperrors.NewConflict("no update is awaiting confirmation", map[string]any{"state": c.state.String()})
	}
	if errs, first := c.validate(); len(errs) > 0 {
		return c.reject(errs, first)
	}

	c.showUpdateModal = false
	if _, err := c.deps.Store.UpdateEmployee(c.employeeID, c.fields.Patch()); err != nil {
		c.state = StateEditing
		c.alert = &message{text: apperrors.ToDomainError(err).Message}
		return err
	}
	c.deps.Logger.Info("employee updated", zap.String("id", c.employeeID))
	c.navigate(ListPath)
	return nil
}

// CancelUpdate closes the confirmation modal and keeps the edits.
func (c *Controller) CancelUpdate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.showUpdateModal = false
	if c.state == StateAwaitingConfirmation {
		c.state = StateEditing
	}
}

// Cancel leaves the form without saving.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.showUpdateModal = false
	c.navigate(ListPath)
}

// FieldErrors returns the translated message of every failing field after an invalid submit.
func (c *Controller) FieldErrors() map[Field]string {
	return c.FieldErrorsIn(c.deps.Translator)
}

// FieldErrorsIn is FieldErrors translated by t instead of the form's translator.
func (c *Controller) FieldErrorsIn(t Translator) map[Field]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[Field]string, len(c.fieldErrors))
	for f, m := range c.fieldErrors {
		out[f] = render(t, m)
	}
	return out
}

// Alert is the banner message of the last failed submit or save, or "".
func (c *Controller) Alert() string {
	return c.AlertIn(c.deps.Translator)
}

// AlertIn is Alert translated by t instead of the form's translator.
func (c *Controller) AlertIn(t Translator) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.alert == nil {
		return ""
	}
	return render(t, *c.alert)
}

// Changes lists edited fields that differ from the stored employee. Add forms have none.
func (c *Controller) Changes() []FieldChange {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeEdit || c.state == StateNotFound {
		return nil
	}
	before := fieldValues(c.original.Data())
	after := fieldValues(c.fields)
	var changes []FieldChange
	for _, f := range AllFields {
		if before[f] != after[f] {
			changes = append(changes, FieldChange{Field: f, Before: before[f], After: after[f]})
		}
	}
	return changes
}

// validate runs every rule in order and keeps the first failure per field.
func (c *Controller) validate() (map[Field]message, message) {
	values := fieldValues(c.fields)
	errs := map[Field]message{}
	var order []Field

	fail := func(f Field, key string) {
		if _, seen := errs[f]; seen {
			return
		}
		errs[f] = message{key: key, field: f}
		order = append(order, f)
	}

	for _, f := range AllFields {
		if !validation.IsRequired(values[f]) {
			fail(f, "fieldRequired")
		}
	}
	if values[FieldEmail] != "" && !validation.IsValidEmail(c.fields.Email) {
		fail(FieldEmail, "invalidEmail")
	}
	if values[FieldPhoneNumber] != "" && !validation.IsValidPhone(c.fields.PhoneNumber) {
		fail(FieldPhoneNumber, "invalidPhone")
	}
	if c.fields.Department != "" && !c.deps.Catalog.HasDepartment(c.fields.Department) {
		fail(FieldDepartment, "invalidOption")
	}
	if c.fields.Position != "" && !c.deps.Catalog.HasPosition(c.fields.Position) {
		fail(FieldPosition, "invalidOption")
	}
	for _, f := range []Field{FieldDateOfEmployment, FieldDateOfBirth} {
		if values[f] != "" && !validation.IsValidDate(values[f]) {
			fail(f, "invalidDate")
		}
	}
	if _, failed := errs[FieldDateOfBirth]; !failed && !validation.IsNotFutureDateAt(c.fields.DateOfBirth, c.deps.Now()) {
		fail(FieldDateOfBirth, "futureDate")
	}

	if len(order) == 0 {
		return nil, message{}
	}
	return errs, errs[order[0]]
}

// reject records a failed validation and leaves any pending confirmation.
func (c *Controller) reject(errs map[Field]message, first message) error {
	c.fieldErrors = errs
	c.showValidation = true
	c.showUpdateModal = false
	c.alert = &first
	if c.state == StateAwaitingConfirmation {
		c.state = StateEditing
	}

	details := make(map[string]any, len(errs))
	for f, m := range errs {
		details[string(f)] = m.key
	}
	c.deps.Logger.Debug("employee form rejected by validation",
		zap.String("mode", c.mode.String()), zap.Int("errors", len(errs)))
	return apperrors.NewValidationError(render(c.deps.Translator, first), details)
}

func render(t Translator, m message) string {
	if m.key == "" {
		return m.text
	}
	if t == nil {
		return m.key
	}
	var values map[string]any
	if m.field != "" {
		values = map[string]any{"field": t.Translate(string(m.field), nil)}
	}
	return t.Translate(m.key, values)
}

func (c *Controller) navigate(path string) {
	c.state = StateNavigated
	if c.deps.Navigator != nil {
		c.deps.Navigator.Navigate(path)
	}
}

func (c *Controller) notFound() error {
	return apperrors.NewNotFound("employee", map[string]any{"id": c.employeeID})
}

func fieldValues(d domain.EmployeeData) map[Field]string {
	return map[Field]string{
		FieldFirstName:        d.FirstName,
		FieldLastName:         d.LastName,
		FieldDateOfEmployment: d.DateOfEmployment,
		FieldDateOfBirth:      d.DateOfBirth,
		FieldPhoneNumber:      d.PhoneNumber,
		FieldEmail:            d.Email,
		FieldDepartment:       string(d.Department),
		FieldPosition:         string(d.Position),
	}
}
