package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/service"
	"github.com/spec-kit/employee-portal/internal/views"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// PagesHandler serves the employee list and its delete actions.
type PagesHandler struct {
	service *service.EmployeeService
	catalog *localization.Catalog
}

// NewPagesHandler constructs handler.
func NewPagesHandler(svc *service.EmployeeService, catalog *localization.Catalog) *PagesHandler {
	return &PagesHandler{service: svc, catalog: catalog}
}

// listParams is the list state carried in query strings.
type listParams struct {
	Mode  string
	Query string
	Page  int
}

func (p listParams) url(page int, mode string) string {
	v := url.Values{}
	v.Set("view", mode)
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return "/employees?" + v.Encode()
}

func parseListParams(get func(string) string) listParams {
	p := listParams{Mode: views.ModeTable, Query: get("q"), Page: 1}
	if get("view") == views.ModeList {
		p.Mode = views.ModeList
	}
	if n, err := strconv.Atoi(get("page")); err == nil && n > 0 {
		p.Page = n
	}
	return p
}

// Home handles GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return c.Redirect("/employees", fiber.StatusFound)
}

// List handles GET /employees.
func (h *PagesHandler) List(c *fiber.Ctx) error {
	params := parseListParams(func(key string) string { return c.Query(key) })
	view := h.listView(c, params)

	if id := c.Query("confirm"); id != "" {
		if e, err := h.service.GetEmployeeByID(c.UserContext(), id); err == nil {
			view.ConfirmDelete = &e
		}
	}
	return c.Render(views.PageList, view)
}

// Delete handles POST /employees/:id/delete.
func (h *PagesHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.service.DeleteEmployee(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return seeOther(c, safeRedirect(c.FormValue("return"), "/employees"))
}

// BulkDelete handles POST /employees/delete. Without confirmed=true it asks for confirmation first.
func (h *PagesHandler) BulkDelete(c *fiber.Ctx) error {
	ret := safeRedirect(c.FormValue("return"), "/employees")

	var ids []string
	for _, raw := range c.Request().PostArgs().PeekMulti("ids") {
		ids = append(ids, string(raw))
	}
	if len(ids) == 0 {
		return seeOther(c, ret)
	}

	if c.FormValue("confirmed") != "true" {
		params := listParams{Mode: views.ModeTable, Page: 1}
		if u, err := url.Parse(ret); err == nil {
			params = parseListParams(u.Query().Get)
		}
		view := h.listView(c, params)
		view.ConfirmBulk = ids
		return c.Render(views.PageList, view)
	}

	if _, err := h.service.DeleteEmployees(c.UserContext(), ids); err != nil {
		return err
	}
	return seeOther(c, ret)
}

func (h *PagesHandler) listView(c *fiber.Ctx, params listParams) views.ListView {
	pageSize := views.PageSize(params.Mode)

	_, total := h.service.ListEmployees(c.UserContext(), service.EmployeeListFilters{Query: params.Query})
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	if params.Page > pages {
		params.Page = pages
	}

	employees, _ := h.service.ListEmployees(c.UserContext(), service.EmployeeListFilters{
		Query:  params.Query,
		Limit:  pageSize,
		Offset: (params.Page - 1) * pageSize,
	})

	view := views.ListView{
		Page:        PageFor(c, h.catalog),
		Mode:        params.Mode,
		Query:       params.Query,
		Employees:   employees,
		Total:       total,
		CurrentPage: params.Page,
		TotalPages:  pages,
		TableURL:    params.url(1, views.ModeTable),
		ListURL:     params.url(1, views.ModeList),
		ReturnURL:   params.url(params.Page, params.Mode),
	}
	// POST renders must hand the language switcher a GET-able path.
	view.Path = view.ReturnURL
	if params.Page > 1 {
		view.PrevURL = params.url(params.Page-1, params.Mode)
	}
	if params.Page < pages {
		view.NextURL = params.url(params.Page+1, params.Mode)
	}
	return view
}

// renderNotFound writes the not-found page with a 404 status.
func renderNotFound(c *fiber.Ctx, catalog *localization.Catalog, err error) error {
	page := PageFor(c, catalog)
	domainErr := apperrors.ToDomainError(err)
	message := domainErr.Message
	if id, ok := domainErr.Details["id"].(string); ok && domainErr.Code == apperrors.CodeNotFound {
		message = page.L.Translate("notFoundMessage", map[string]any{"id": id})
	}
	return c.Status(fiber.StatusNotFound).Render(views.PageNotFound, views.NotFoundView{Page: page, Message: message})
}
