package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-portal/internal/api/http"
	"github.com/spec-kit/employee-portal/internal/api/http/handlers"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/events"
	"github.com/spec-kit/employee-portal/internal/form"
	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/service"
	"github.com/spec-kit/employee-portal/internal/store"
	"github.com/spec-kit/employee-portal/internal/validation"
	"github.com/spec-kit/employee-portal/internal/views"
)

type testEnv struct {
	app        *fiber.App
	store      *store.Store
	catalog    *localization.Catalog
	dispatcher events.Dispatcher
	registry   *form.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.New(store.SeedEmployees())
	catalog, err := localization.NewCatalog("en", nil)
	require.NoError(t, err)
	dispatcher := events.NewInMemoryDispatcher(nil)
	t.Cleanup(service.BridgeStore(context.Background(), st, dispatcher))

	// Open SSE streams end immediately.
	streamCtx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := service.NewEmployeeService(st, nil)
	registry := form.NewRegistry(time.Minute)
	deps := form.Dependencies{Store: st, Translator: catalog, Catalog: domain.DefaultCatalog()}

	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	httptransport.RegisterMiddlewares(app, zap.NewNop(), nil, catalog, time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("employee-portal", "test", st, nil),
		Employees: handlers.NewEmployeesHandler(svc, validation.NewValidator(domain.DefaultCatalog())),
		Pages:     handlers.NewPagesHandler(svc, catalog),
		Forms:     handlers.NewFormsHandler(registry, deps, catalog, nil),
		Language:  handlers.NewLanguageHandler(catalog),
		Events:    handlers.NewEventsHandler(streamCtx, dispatcher, time.Second, nil),
	})

	return &testEnv{app: app, store: st, catalog: catalog, dispatcher: dispatcher, registry: registry}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/html")
	return e.do(t, req)
}

func (e *testEnv) postForm(t *testing.T, path string, values url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	return e.do(t, req)
}

func (e *testEnv) postJSON(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	return e.do(t, req)
}

func document(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body := decode(t, resp)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error envelope: %v", body)
	return errBody["code"].(string)
}

func TestHome_RedirectsToList(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/employees", resp.Header.Get("Location"))
}

func TestList(t *testing.T) {
	env := newTestEnv(t)

	t.Run("table first page", func(t *testing.T) {
		doc := document(t, env.get(t, "/employees"))
		assert.Equal(t, views.TablePageSize, doc.Find("tr.employee-row").Length())
		assert.Equal(t, "1", doc.Find("tr.employee-row").First().AttrOr("data-id", ""))
	})

	t.Run("cards second page", func(t *testing.T) {
		doc := document(t, env.get(t, "/employees?view=list&page=2"))
		cards := doc.Find(".employee-card")
		assert.Equal(t, views.ListPageSize, cards.Length())
		assert.Equal(t, "5", cards.First().AttrOr("data-id", ""))
	})

	t.Run("page past the end is clamped", func(t *testing.T) {
		doc := document(t, env.get(t, "/employees?page=9"))
		assert.Equal(t, 4, doc.Find("tr.employee-row").Length())
	})

	t.Run("search", func(t *testing.T) {
		doc := document(t, env.get(t, "/employees?q=emma"))
		require.Equal(t, 1, doc.Find("tr.employee-row").Length())
		assert.Equal(t, "2", doc.Find("tr.employee-row").AttrOr("data-id", ""))
	})

	t.Run("delete confirmation", func(t *testing.T) {
		doc := document(t, env.get(t, "/employees?confirm=3"))
		assert.Contains(t, doc.Find(".modal.confirm-delete").Text(), "Liam Anderson")
	})
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	var published []events.Event
	env.dispatcher.Subscribe(events.EventEmployeesChanged, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	resp := env.postForm(t, "/employees/1/delete", url.Values{"return": {"/employees?view=list"}})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/employees?view=list", resp.Header.Get("Location"))
	assert.Len(t, env.store.GetEmployees(), 13)
	require.Len(t, published, 1)
	assert.Equal(t, 13, published[0].Payload.(events.EmployeesChangedPayload).Count)
}

func TestDelete_OffSiteReturnIgnored(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postForm(t, "/employees/1/delete", url.Values{"return": {"//evil.example.com"}})

	assert.Equal(t, "/employees", resp.Header.Get("Location"))
}

func TestBulkDelete(t *testing.T) {
	env := newTestEnv(t)
	ids := url.Values{"ids": {"1", "2"}, "return": {"/employees"}}

	doc := document(t, env.postForm(t, "/employees/delete", ids))
	modal := doc.Find(".modal.confirm-bulk-delete")
	require.Equal(t, 1, modal.Length())
	assert.Len(t, env.store.GetEmployees(), 14)

	ids.Set("confirmed", "true")
	resp := env.postForm(t, "/employees/delete", ids)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Len(t, env.store.GetEmployees(), 12)
}

func TestAddEmployeeFlow(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/add-employee")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	formPath := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(formPath, "/forms/"))

	doc := document(t, env.get(t, formPath))
	assert.Equal(t, "Add Employee", doc.Find("h1.form-title").Text())
	assert.Equal(t, formPath+"/submit", doc.Find("form.employee-form").AttrOr("action", ""))

	resp = env.postForm(t, formPath+"/submit", url.Values{
		"firstName":        {"New"},
		"lastName":         {"Employee"},
		"dateOfEmployment": {"2024-01-01"},
		"dateOfBirth":      {"1995-01-01"},
		"phoneNumber":      {"123-456-7890"},
		"email":            {"new.employee@example.com"},
		"department":       {"Tech"},
		"position":         {"Junior"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, form.ListPath, resp.Header.Get("Location"))
	employees := env.store.GetEmployees()
	require.Len(t, employees, 15)
	assert.Equal(t, "15", employees[14].ID)
	assert.Equal(t, 0, env.registry.Len())
}

func TestAddEmployee_InvalidStaysOnForm(t *testing.T) {
	env := newTestEnv(t)
	formPath := env.get(t, "/add-employee").Header.Get("Location")

	resp := env.postForm(t, formPath+"/submit", url.Values{"firstName": {"Only"}, "email": {"not-an-email"}})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	doc := document(t, resp)
	assert.Equal(t, "Only", doc.Find("input#firstName").AttrOr("value", ""))
	assert.Contains(t, doc.Find(".alert").Text(), "Last Name is required")
	assert.Len(t, env.store.GetEmployees(), 14)
}

func TestAddEmployee_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	formPath := env.get(t, "/add-employee").Header.Get("Location")

	resp := env.postForm(t, formPath+"/submit", url.Values{
		"firstName":        {"Dup"},
		"lastName":         {"Licate"},
		"dateOfEmployment": {"2024-01-01"},
		"dateOfBirth":      {"1995-01-01"},
		"phoneNumber":      {"123-456-7890"},
		"email":            {"emma.thompson@example.com"},
		"department":       {"Tech"},
		"position":         {"Junior"},
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	doc := document(t, resp)
	assert.Contains(t, doc.Find(".alert").Text(), "emma.thompson@example.com")
	assert.Len(t, env.store.GetEmployees(), 14)
}

func TestEditEmployeeFlow(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/employees/2/edit")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	formPath := resp.Header.Get("Location")

	resp = env.postForm(t, formPath+"/submit", url.Values{"lastName": {"Stone"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := document(t, resp)
	assert.Contains(t, doc.Find(".modal.confirm-update .changes li").Text(), "Thompson → Stone")

	e, err := service.NewEmployeeService(env.store, nil).GetEmployeeByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Thompson", e.LastName)

	resp = env.postForm(t, formPath+"/confirm", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, form.ListPath, resp.Header.Get("Location"))

	e, err = service.NewEmployeeService(env.store, nil).GetEmployeeByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Stone", e.LastName)
	assert.Equal(t, "2", e.ID)
}

func TestEditEmployee_DismissKeepsEditing(t *testing.T) {
	env := newTestEnv(t)
	formPath := env.get(t, "/employees/2/edit").Header.Get("Location")
	env.postForm(t, formPath+"/submit", url.Values{"lastName": {"Stone"}})

	resp := env.postForm(t, formPath+"/dismiss", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	doc := document(t, env.get(t, formPath))
	assert.Equal(t, 0, doc.Find(".modal.confirm-update").Length())
	assert.Equal(t, "Stone", doc.Find("input#lastName").AttrOr("value", ""))
}

func TestEditEmployee_Cancel(t *testing.T) {
	env := newTestEnv(t)
	formPath := env.get(t, "/employees/2/edit").Header.Get("Location")

	resp := env.postForm(t, formPath+"/cancel", nil)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, form.ListPath, resp.Header.Get("Location"))
	assert.Equal(t, 0, env.registry.Len())
}

func TestEditEmployee_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/employees/999/edit")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	doc := document(t, resp)
	assert.Equal(t, "Employee not found", doc.Find(".not-found h1").Text())
	assert.Contains(t, doc.Find(".not-found p").Text(), "999")
	assert.Equal(t, 0, env.registry.Len())
}

func TestUnknownFormSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/forms/does-not-exist")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLanguage(t *testing.T) {
	t.Run("form post", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.postForm(t, "/language", url.Values{"lang": {"tr"}, "redirect": {"/employees?view=list"}})

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/employees?view=list", resp.Header.Get("Location"))
		assert.Equal(t, "tr", env.catalog.Language())
		require.NotEmpty(t, resp.Cookies())
		assert.Equal(t, handlers.LanguageCookie, resp.Cookies()[0].Name)
		assert.Equal(t, "tr", resp.Cookies()[0].Value)
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.postJSON(t, http.MethodPost, "/language", map[string]string{"lang": "tr-TR"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, "tr", body["data"].(map[string]any)["language"])
	})

	t.Run("unsupported", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.postJSON(t, http.MethodPost, "/language", map[string]string{"lang": "fr"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, resp))
		assert.Equal(t, "en", env.catalog.Language())
	})

	t.Run("cookie selects page language", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.AddCookie(&http.Cookie{Name: handlers.LanguageCookie, Value: "tr"})

		doc := document(t, env.do(t, req))

		assert.Equal(t, "tr", doc.Find("html").AttrOr("lang", ""))
		assert.Equal(t, "Personelleri Görüntüle", doc.Find("nav a.active").Text())
	})
}

func TestEmployeesAPI(t *testing.T) {
	env := newTestEnv(t)

	t.Run("list", func(t *testing.T) {
		body := decode(t, env.get(t, "/api/employees?page_size=5"))
		assert.Len(t, body["data"], 5)
		assert.EqualValues(t, 14, body["meta"].(map[string]any)["total"])
	})

	t.Run("get unknown", func(t *testing.T) {
		resp := env.get(t, "/api/employees/999")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
	})

	t.Run("create invalid", func(t *testing.T) {
		resp := env.postJSON(t, http.MethodPost, "/api/employees", map[string]string{"firstName": "X"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, resp))
	})

	t.Run("create then patch", func(t *testing.T) {
		resp := env.postJSON(t, http.MethodPost, "/api/employees", map[string]string{
			"firstName":        "Api",
			"lastName":         "User",
			"dateOfEmployment": "2024-02-01",
			"dateOfBirth":      "1990-02-01",
			"phoneNumber":      "555-123-4567",
			"email":            "api.user@example.com",
			"department":       "Analytics",
			"position":         "Medior",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := decode(t, resp)["data"].(map[string]any)
		assert.Equal(t, "15", created["id"])

		resp = env.postJSON(t, http.MethodPatch, "/api/employees/15", map[string]string{"email": "emma.thompson@example.com"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", errorCode(t, resp))

		resp = env.postJSON(t, http.MethodPatch, "/api/employees/15", map[string]string{"position": "Senior"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Senior", decode(t, resp)["data"].(map[string]any)["position"])
	})
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	t.Run("html", func(t *testing.T) {
		resp := env.get(t, "/nope")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		doc := document(t, resp)
		assert.Equal(t, "NOT_FOUND", doc.Find(".error-page").AttrOr("data-code", ""))
	})

	t.Run("json", func(t *testing.T) {
		resp := env.do(t, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	live := env.get(t, "/health/live")
	assert.Equal(t, http.StatusOK, live.StatusCode)

	body := decode(t, env.get(t, "/health/ready"))
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, "disabled", body["dependencies"].(map[string]any)["redis"])
}

func TestEventsStream(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/events")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), ": connected")
}

func TestAddEmployee_InvalidUsesCookieLanguage(t *testing.T) {
	env := newTestEnv(t)
	formPath := env.get(t, "/add-employee").Header.Get("Location")

	req := httptest.NewRequest(http.MethodPost, formPath+"/submit", strings.NewReader(url.Values{"firstName": {"Only"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: handlers.LanguageCookie, Value: "tr"})
	resp := env.do(t, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	doc := document(t, resp)
	assert.Equal(t, "tr", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "Soyad alanı zorunludur", doc.Find(".alert").Text())
	assert.Equal(t, "Soyad alanı zorunludur", doc.Find(".form-group.invalid .field-error").First().Text())
	assert.Equal(t, "en", env.catalog.Language())
}

func TestEditEmployee_InvalidResubmitCannotBeConfirmed(t *testing.T) {
	env := newTestEnv(t)
	formPath := env.get(t, "/employees/2/edit").Header.Get("Location")

	resp := env.postForm(t, formPath+"/submit", url.Values{"lastName": {"Stone"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.postForm(t, formPath+"/submit", url.Values{"firstName": {""}, "email": {"not-an-email"}})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	doc := document(t, resp)
	assert.Equal(t, 0, doc.Find(".modal.confirm-update").Length())

	resp = env.postForm(t, formPath+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	e, err := service.NewEmployeeService(env.store, nil).GetEmployeeByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Emma", e.FirstName)
	assert.Equal(t, "emma.thompson@example.com", e.Email)
}
