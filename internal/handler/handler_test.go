package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/service"
)

type organisationStore struct {
	records map[int64]models.Organisation
	nextID  int64
}

func newOrganisationStore(items ...models.Organisation) *organisationStore {
	s := &organisationStore{records: make(map[int64]models.Organisation)}
	for _, item := range items {
		s.records[item.ID] = item.Clone()
		if item.ID > s.nextID {
			s.nextID = item.ID
		}
	}
	return s
}

func (s *organisationStore) FindByID(_ context.Context, id int64) (*models.Organisation, error) {
	item, ok := s.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := item.Clone()
	return &copied, nil
}

func (s *organisationStore) Create(_ context.Context, o *models.Organisation) error {
	s.nextID++
	o.ID = s.nextID
	s.records[o.ID] = o.Clone()
	return nil
}

func (s *organisationStore) Update(_ context.Context, o *models.Organisation) error {
	if _, ok := s.records[o.ID]; !ok {
		return sql.ErrNoRows
	}
	s.records[o.ID] = o.Clone()
	return nil
}

func (s *organisationStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.records[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.records, id)
	return nil
}

func (s *organisationStore) List(_ context.Context, _ models.ListFilter) ([]models.Organisation, int, error) {
	items := make([]models.Organisation, 0, len(s.records))
	for id := int64(1); id <= s.nextID; id++ {
		if item, ok := s.records[id]; ok {
			items = append(items, item)
		}
	}
	return items, len(items), nil
}

type vehicleCounts map[int64]int

func (c vehicleCounts) CountByOrganisation(_ context.Context, id int64) (int, error) {
	return c[id], nil
}

func newOrganisationRouter(t *testing.T) (*gin.Engine, *organisationStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := newOrganisationStore(
		models.Organisation{ID: 1, Name: "North"},
		models.Organisation{ID: 2, Name: "South"},
	)
	svc := service.NewOrganisationService(store, vehicleCounts{1: 4}, service.ServiceDeps{})
	pass := func(c *gin.Context) { c.Next() }
	r := gin.New()
	NewEntityHandler[models.Organisation](svc).Register(r.Group("/api2/organisations"), pass, pass)
	return r, store
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type itemResult struct {
	Body       json.RawMessage `json:"body"`
	HTTPStatus int             `json:"http_status"`
	Message    string          `json:"message"`
}

func TestListAndGet(t *testing.T) {
	r, _ := newOrganisationRouter(t)

	w := do(r, http.MethodGet, "/api2/organisations?page=1&page_size=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data       []models.Organisation `json:"data"`
		Pagination models.Pagination     `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, 2, envelope.Pagination.TotalCount)

	w = do(r, http.MethodGet, "/api2/organisations/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api2/organisations/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSingleItemMutations(t *testing.T) {
	r, store := newOrganisationRouter(t)

	w := do(r, http.MethodPost, "/api2/organisations", `{"name": "East"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created itemResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "organisation saved successfully", created.Message)
	assert.Equal(t, "East", store.records[3].Name)

	w = do(r, http.MethodPost, "/api2/organisations/3", `{"name": "West"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(r, http.MethodPatch, "/api2/organisations/2", `{"description": "coastal"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "South", store.records[2].Name)
	assert.Equal(t, "coastal", *store.records[2].Description)

	w = do(r, http.MethodPut, "/api2/organisations/2", `{"name": "Southern"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, store.records[2].Description)

	w = do(r, http.MethodDelete, "/api2/organisations/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(r, http.MethodDelete, "/api2/organisations/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/api2/organisations/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBatchEndpoints(t *testing.T) {
	r, store := newOrganisationRouter(t)

	w := do(r, http.MethodPost, "/api2/organisations/batch", `[{"name": "A"}, {"description": "nameless"}]`)
	require.Equal(t, http.StatusMultiStatus, w.Code)
	var items []itemResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, http.StatusOK, items[0].HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, items[1].HTTPStatus)
	assert.Equal(t, "name is required", items[1].Message)

	w = do(r, http.MethodPatch, "/api2/organisations", `[{"id": 1, "description": "hq"}, {"id": 2, "description": "branch"}]`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "hq", *store.records[1].Description)

	w = do(r, http.MethodDelete, "/api2/organisations", `[{"id": 1}, {"id": 2}]`)
	require.Equal(t, http.StatusMultiStatus, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Equal(t, http.StatusMethodNotAllowed, items[0].HTTPStatus)
	assert.Equal(t, http.StatusOK, items[1].HTTPStatus)
}

func TestEmptyOrMalformedBatch(t *testing.T) {
	r, _ := newOrganisationRouter(t)

	for _, body := range []string{"", "null", "[]"} {
		w := do(r, http.MethodPut, "/api2/organisations", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "EMPTY_BATCH")
	}

	w := do(r, http.MethodPatch, "/api2/organisations", `{"id": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "request body must be a JSON array")
}
