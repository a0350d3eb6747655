package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/service"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

type organisationPagesStub struct {
	items    []models.Organisation
	payloads []map[string]interface{}
	contexts []service.MutationContext
	result   response.Result
}

func (s *organisationPagesStub) Get(_ context.Context, id int64) (*models.Organisation, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "organisation with ID: '9' not found")
}

func (s *organisationPagesStub) List(context.Context, models.ListFilter) ([]models.Organisation, *models.Pagination, error) {
	return s.items, &models.Pagination{Page: 1, PageSize: 20, TotalCount: len(s.items)}, nil
}

func (s *organisationPagesStub) record(mc service.MutationContext, raw json.RawMessage) response.Result {
	s.contexts = append(s.contexts, mc)
	var payload map[string]interface{}
	_ = json.Unmarshal(raw, &payload)
	s.payloads = append(s.payloads, payload)
	return s.result
}

func (s *organisationPagesStub) Process(_ context.Context, mc service.MutationContext, raw json.RawMessage) response.Result {
	return s.record(mc, raw)
}

func (s *organisationPagesStub) ProcessWithID(_ context.Context, mc service.MutationContext, _ int64, raw json.RawMessage) response.Result {
	return s.record(mc, raw)
}

func newTestServer(t *testing.T, stub *organisationPagesStub, authEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := NewServer(Config{Base: "/api1", AuthEnabled: authEnabled, Login: loginStub{}})
	require.NoError(t, err)
	srv.Add(OrganisationPages(stub))
	r := gin.New()
	srv.Register(r)
	return r
}

type loginStub struct{}

func (loginStub) Login(context.Context, models.LoginRequest) (*models.LoginResponse, error) {
	return nil, appErrors.ErrInvalidCredentials
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListPage(t *testing.T) {
	stub := &organisationPagesStub{items: []models.Organisation{{ID: 1, Name: "North <Depot>"}}}
	r := newTestServer(t, stub, false)

	w := get(r, "/api1/organisations")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "North &lt;Depot&gt;")
	assert.Contains(t, body, `href="/api1/organisations/1/edit"`)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestCreateTreatsBlankAsNull(t *testing.T) {
	saved := &models.Organisation{ID: 5, Name: "South"}
	stub := &organisationPagesStub{result: response.Success(saved, "organisation saved successfully")}
	r := newTestServer(t, stub, false)

	w := postForm(r, "/api1/organisations", url.Values{"name": {"South"}, "description": {"   "}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api1/organisations/5", w.Header().Get("Location"))
	require.Len(t, stub.payloads, 1)
	assert.Equal(t, service.MutationCreate, stub.contexts[0])
	assert.Equal(t, "South", stub.payloads[0]["name"])
	assert.Contains(t, stub.payloads[0], "description")
	assert.Nil(t, stub.payloads[0]["description"])
}

func TestFailedSaveRerendersForm(t *testing.T) {
	stub := &organisationPagesStub{result: response.Failure(nil, appErrors.Clone(appErrors.ErrValidation, "name is required"))}
	r := newTestServer(t, stub, false)

	w := postForm(r, "/api1/organisations/update", url.Values{"id": {"3"}, "description": {"kept"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.MutationReplace, stub.contexts[0])
	body := w.Body.String()
	assert.Contains(t, body, "name is required")
	assert.Contains(t, body, "kept")
	assert.Contains(t, body, `action="/api1/organisations/update"`)
}

func TestDeleteRefusalShowsErrorPage(t *testing.T) {
	stub := &organisationPagesStub{result: response.Failure(nil, appErrors.Clone(appErrors.ErrMethodNotAllowed, "organisation has 2 vehicles and cannot be deleted"))}
	r := newTestServer(t, stub, false)

	w := postForm(r, "/api1/organisations/1/delete", url.Values{})

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "organisation has 2 vehicles and cannot be deleted")
	assert.Equal(t, service.MutationDelete, stub.contexts[0])
}

func TestMissingRecordShowsNotFound(t *testing.T) {
	r := newTestServer(t, &organisationPagesStub{}, false)

	w := get(r, "/api1/organisations/9")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGuardedPagesRedirectToLogin(t *testing.T) {
	r := newTestServer(t, &organisationPagesStub{}, true)

	w := get(r, "/api1/organisations")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api1/login", w.Header().Get("Location"))

	w = postForm(r, "/api1/login", url.Values{"email": {"a@b.test"}, "password": {"nope"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.test")
}

func TestFormValue(t *testing.T) {
	assert.JSONEq(t, `null`, string(formValue(InputText, "")))
	assert.JSONEq(t, `{"id":3}`, string(formValue(InputSelect, "3")))
	assert.JSONEq(t, `"12.5"`, string(formValue(InputNumber, "12.5")))
	assert.JSONEq(t, `"2024-01-02T10:00"`, string(formValue(InputDateTime, "2024-01-02T10:00")))
}
