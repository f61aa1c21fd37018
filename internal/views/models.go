package views

import (
	"strings"
	"time"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/form"
	"github.com/spec-kit/employee-portal/internal/localization"
)

// List display modes and their page sizes.
const (
	ModeTable = "table"
	ModeList  = "list"

	TablePageSize = 10
	ListPageSize  = 4
)

// PageSize returns the number of employees shown per page in mode.
func PageSize(mode string) int {
	if mode == ModeList {
		return ListPageSize
	}
	return TablePageSize
}

// NavLink is one entry of the navigation menu.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	localization.Language
	Selected bool
}

// Page carries what the layout needs on every page.
type Page struct {
	L         localization.Localizer
	Title     string
	Path      string
	Nav       []NavLink
	Languages []LanguageOption
	Alert     string
	Year      int
}

// NewPage builds the layout data for a request to path.
func NewPage(l localization.Localizer, languages []localization.Language, path string) Page {
	options := make([]LanguageOption, 0, len(languages))
	for _, lang := range languages {
		options = append(options, LanguageOption{Language: lang, Selected: lang.Code == l.Language()})
	}
	return Page{
		L:         l,
		Title:     l.T("companyTitle"),
		Path:      path,
		Nav:       NavLinks(l, path),
		Languages: options,
		Year:      time.Now().Year(),
	}
}

// NavLinks marks the list link active for "/" and any /employees path, and
// the add link for /add-employee.
func NavLinks(l localization.Translator, path string) []NavLink {
	return []NavLink{
		{
			Href:   "/employees",
			Label:  l.Translate("viewEmployees", nil),
			Active: path == "/" || strings.HasPrefix(path, "/employees"),
		},
		{
			Href:   "/add-employee",
			Label:  l.Translate("addEmployee", nil),
			Active: strings.HasPrefix(path, "/add-employee"),
		},
	}
}

// ListView is the employee list page.
type ListView struct {
	Page
	Mode        string
	Query       string
	Employees   []domain.Employee
	Total       int
	CurrentPage int
	TotalPages  int
	PrevURL     string
	NextURL     string
	TableURL    string
	ListURL     string
	ReturnURL   string

	ConfirmDelete *domain.Employee
	ConfirmBulk   []string
}

// FieldView is one form input.
type FieldView struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Options []string
	Error   string
}

// ChangeView is one row of the update confirmation.
type ChangeView struct {
	Label  string
	Before string
	After  string
}

// FormView is the add or edit page.
type FormView struct {
	Page
	FormID          string
	Editing         bool
	Heading         string
	Subheading      string
	SubmitLabel     string
	Fields          []FieldView
	ShowValidation  bool
	ShowUpdateModal bool
	ModalMessage    string
	Changes         []ChangeView
}

var inputTypes = map[form.Field]string{
	form.FieldDateOfEmployment: "date",
	form.FieldDateOfBirth:      "date",
	form.FieldPhoneNumber:      "tel",
	form.FieldEmail:            "email",
}

// NewFormView renders the controller state for the layout page.
func NewFormView(page Page, formID string, c *form.Controller) FormView {
	l := page.L
	fields := c.Fields()
	values := map[form.Field]string{
		form.FieldFirstName:        fields.FirstName,
		form.FieldLastName:         fields.LastName,
		form.FieldDateOfEmployment: fields.DateOfEmployment,
		form.FieldDateOfBirth:      fields.DateOfBirth,
		form.FieldPhoneNumber:      fields.PhoneNumber,
		form.FieldEmail:            fields.Email,
		form.FieldDepartment:       string(fields.Department),
		form.FieldPosition:         string(fields.Position),
	}

	catalog := c.Catalog()
	departments := make([]string, 0, len(catalog.Departments))
	for _, d := range catalog.Departments {
		departments = append(departments, string(d))
	}
	positions := make([]string, 0, len(catalog.Positions))
	for _, p := range catalog.Positions {
		positions = append(positions, string(p))
	}

	errs := c.FieldErrorsIn(l)
	view := FormView{
		Page:            page,
		FormID:          formID,
		Editing:         c.Mode() == form.ModeEdit,
		ShowValidation:  c.ShowValidation(),
		ShowUpdateModal: c.ShowUpdateModal(),
	}
	view.Alert = c.AlertIn(l)

	for _, f := range form.AllFields {
		fv := FieldView{
			Name:  string(f),
			Label: l.T(string(f)),
			Type:  inputTypes[f],
			Value: values[f],
			Error: errs[f],
		}
		if fv.Type == "" {
			fv.Type = "text"
		}
		switch f {
		case form.FieldDepartment:
			fv.Type, fv.Options = "select", departments
		case form.FieldPosition:
			fv.Type, fv.Options = "select", positions
		}
		view.Fields = append(view.Fields, fv)
	}

	if view.Editing {
		name := c.Original().FullName()
		view.Heading = l.T("editEmployee")
		view.Subheading = l.Translate("editingEmployee", map[string]any{"name": name})
		view.SubmitLabel = l.T("update")
		view.ModalMessage = l.Translate("confirmUpdateMessage", map[string]any{"name": name})
		for _, ch := range c.Changes() {
			view.Changes = append(view.Changes, ChangeView{
				Label:  l.T(string(ch.Field)),
				Before: ch.Before,
				After:  ch.After,
			})
		}
	} else {
		view.Heading = l.T("addNewEmployee")
		view.SubmitLabel = l.T("add")
	}
	return view
}

// NotFoundView is shown for unknown employees and form sessions.
type NotFoundView struct {
	Page
	Message string
}

// ErrorView is the HTML rendering of a failed request.
type ErrorView struct {
	Page
	Status  int
	Code    string
	Message string
}
