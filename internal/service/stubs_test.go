package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/repository"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

// memoryStore is an in-memory EntityStore keyed by id.
type memoryStore[T any] struct {
	mu      sync.Mutex
	records map[int64]T
	nextID  int64
	idOf    func(*T) int64
	setID   func(*T, int64)
	clone   func(T) T

	createErr error
	updateErr error
	deleteErr error
	updates   int
}

func newMemoryStore[T any](idOf func(*T) int64, setID func(*T, int64), clone func(T) T) *memoryStore[T] {
	return &memoryStore[T]{records: make(map[int64]T), idOf: idOf, setID: setID, clone: clone}
}

func (s *memoryStore[T]) seed(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		id := s.idOf(&item)
		s.records[id] = s.clone(item)
		if id > s.nextID {
			s.nextID = id
		}
	}
}

func (s *memoryStore[T]) get(id int64) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.records[id]
	return item, ok
}

func (s *memoryStore[T]) FindByID(_ context.Context, id int64) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := s.clone(item)
	return &copied, nil
}

func (s *memoryStore[T]) Create(_ context.Context, entity *T) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.setID(entity, s.nextID)
	s.records[s.nextID] = s.clone(*entity)
	return nil
}

func (s *memoryStore[T]) Update(_ context.Context, entity *T) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idOf(entity)
	if _, ok := s.records[id]; !ok {
		return sql.ErrNoRows
	}
	s.records[id] = s.clone(*entity)
	s.updates++
	return nil
}

func (s *memoryStore[T]) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.records, id)
	return nil
}

func (s *memoryStore[T]) List(_ context.Context, filter models.ListFilter) ([]T, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	items := make([]T, 0, len(ids))
	for i, id := range ids {
		if i < filter.Offset() || len(items) >= filter.PageSize {
			continue
		}
		items = append(items, s.clone(s.records[id]))
	}
	return items, len(ids), nil
}

type dependentCounts map[int64]int

func (c dependentCounts) CountByVehicle(_ context.Context, id int64) (int, error) {
	return c[id], nil
}

func (c dependentCounts) CountByOrganisation(_ context.Context, id int64) (int, error) {
	return c[id], nil
}

type auditRecord struct {
	Action      string
	Description string
	WhoDid      string
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []auditRecord
	err     error
}

func (a *recordingAudit) Append(ctx context.Context, action, description string) error {
	if a.err != nil {
		return a.err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, auditRecord{Action: action, Description: description, WhoDid: models.ActorFromContext(ctx)})
	return nil
}

type recordingMetrics struct {
	items   []int
	batches []int
}

func (m *recordingMetrics) ObserveMutationItem(_ string, _ MutationContext, status int) {
	m.items = append(m.items, status)
}

func (m *recordingMetrics) ObserveMutationBatch(_ string, _ MutationContext, status, _ int) {
	m.batches = append(m.batches, status)
}

type totalsStub struct {
	distance repository.DistanceTotals
	refuel   repository.RefuelTotals
	calls    int
}

type distanceTotalsStub struct{ *totalsStub }

func (s distanceTotalsStub) TotalsByVehicle(context.Context, int64) (repository.DistanceTotals, error) {
	s.calls++
	return s.distance, nil
}

type refuelTotalsStub struct{ *totalsStub }

func (s refuelTotalsStub) TotalsByVehicle(context.Context, int64) (repository.RefuelTotals, error) {
	return s.refuel, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = payload
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

func localTime(value string) *models.LocalDateTime {
	ts, err := models.ParseLocalDateTime(value)
	if err != nil {
		panic(err)
	}
	return &ts
}

func raws(values ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(values))
	for i, v := range values {
		out[i] = json.RawMessage(v)
	}
	return out
}

type fleetFixture struct {
	vehicles  *memoryStore[models.Vehicle]
	distances *memoryStore[models.Distance]
	refuels   *memoryStore[models.Refuel]
	audit     *recordingAudit
	metrics   *recordingMetrics
	cache     *memoryCache
	totals    *totalsStub
	summary   *SummaryService

	distanceService *CrudService[models.Distance]
	vehicleService  *CrudService[models.Vehicle]
	refuelService   *CrudService[models.Refuel]
}

func newFleetFixture() *fleetFixture {
	f := &fleetFixture{
		vehicles:  newMemoryStore(vehicleID, setVehicleID, models.Vehicle.Clone),
		distances: newMemoryStore(distanceID, setDistanceID, models.Distance.Clone),
		refuels:   newMemoryStore(refuelID, setRefuelID, models.Refuel.Clone),
		audit:     &recordingAudit{},
		metrics:   &recordingMetrics{},
		cache:     newMemoryCache(),
		totals:    &totalsStub{},
	}
	f.vehicles.seed(
		models.Vehicle{ID: 1, Name: "Van"},
		models.Vehicle{ID: 2, Name: "Truck"},
	)
	f.distances.seed(
		models.Distance{ID: 1, Kilometres: int64Ptr(100), Vehicle: &models.Vehicle{ID: 1}, Description: stringPtr("commute"), Timestamp: localTime("2024-03-01T08:30")},
		models.Distance{ID: 2, Kilometres: int64Ptr(40), Vehicle: &models.Vehicle{ID: 1}},
	)

	cache := NewCacheService(f.cache, nil, time.Minute, nil, true)
	f.summary = NewSummaryService(f.vehicles, distanceTotalsStub{f.totals}, refuelTotalsStub{f.totals}, cache, time.Minute, nil)

	deps := ServiceDeps{Audit: f.audit, Metrics: f.metrics}
	f.distanceService = NewDistanceService(f.distances, f.vehicles, f.summary, deps)
	f.refuelService = NewRefuelService(f.refuels, f.vehicles, f.summary, deps)
	f.vehicleService = NewVehicleService(f.vehicles, newMemoryStore(organisationID, setOrganisationID, models.Organisation.Clone),
		dependentCounts{1: 2}, dependentCounts{}, f.summary, deps)
	return f
}
