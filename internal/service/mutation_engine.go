package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

// EntityStore persists one entity type. FindByID, Update and Delete return
// sql.ErrNoRows when the record is absent; Create assigns the generated id.
type EntityStore[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

// AuditSink records committed mutations.
type AuditSink interface {
	Append(ctx context.Context, action, description string) error
}

// MutationRecorder observes item and batch outcomes.
type MutationRecorder interface {
	ObserveMutationItem(entity string, mc MutationContext, status int)
	ObserveMutationBatch(entity string, mc MutationContext, status, size int)
}

// CommitHook runs after a mutation is persisted. before is nil on create and
// after is nil on delete.
type CommitHook[T any] func(ctx context.Context, mc MutationContext, before, after *T)

// EngineConfig wires an Engine for one entity type.
type EngineConfig[T any] struct {
	// Entity is the lower-case singular name used in messages and audit actions.
	Entity  string
	Store   EntityStore[T]
	Fields  *FieldRegistry[T]
	Rules   RuleSet[T]
	Audit   AuditSink
	IDOf    func(*T) int64
	SetID   func(*T, int64)
	Metrics MutationRecorder
	Hooks   []CommitHook[T]
	Logger  *zap.Logger
}

// Engine validates, persists and audits mutations of one entity type, one
// item at a time. It holds no per-request state.
type Engine[T any] struct {
	entity  string
	store   EntityStore[T]
	fields  *FieldRegistry[T]
	rules   RuleSet[T]
	audit   AuditSink
	idOf    func(*T) int64
	setID   func(*T, int64)
	metrics MutationRecorder
	hooks   []CommitHook[T]
	logger  *zap.Logger
}

// NewEngine constructs an Engine.
func NewEngine[T any](cfg EngineConfig[T]) *Engine[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine[T]{
		entity:  cfg.Entity,
		store:   cfg.Store,
		fields:  cfg.Fields,
		rules:   cfg.Rules,
		audit:   cfg.Audit,
		idOf:    cfg.IDOf,
		setID:   cfg.SetID,
		metrics: cfg.Metrics,
		hooks:   cfg.Hooks,
		logger:  logger.With(zap.String("entity", cfg.Entity)),
	}
}

// Entity returns the entity name handled by the engine.
func (e *Engine[T]) Entity() string {
	return e.entity
}

// Get loads a record, mapping absence to ErrNotFound.
func (e *Engine[T]) Get(ctx context.Context, id int64) (*T, error) {
	found, err := e.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, e.notFound(id)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to load %s", e.entity))
	}
	return found, nil
}

// Create validates and inserts a new record.
func (e *Engine[T]) Create(ctx context.Context, entity T) (*T, error) {
	if err := e.validate(ctx, &entity, MutationCreate); err != nil {
		return nil, err
	}
	if err := e.store.Create(ctx, &entity); err != nil {
		return nil, e.persistenceFailure(err, "save", "in")
	}
	e.committed(ctx, MutationCreate, nil, &entity)
	return &entity, nil
}

// Replace validates and overwrites an existing record.
func (e *Engine[T]) Replace(ctx context.Context, entity T) (*T, error) {
	var before *T
	if id := e.idOf(&entity); id > 0 {
		if found, err := e.store.FindByID(ctx, id); err == nil {
			before = found
		}
	}
	if err := e.validate(ctx, &entity, MutationReplace); err != nil {
		return nil, err
	}
	if err := e.store.Update(ctx, &entity); err != nil {
		return nil, e.persistenceFailure(err, "save", "in")
	}
	e.committed(ctx, MutationReplace, before, &entity)
	return &entity, nil
}

// Patch applies sparse changes to a private copy of the stored record. The id
// key of changes is ignored.
func (e *Engine[T]) Patch(ctx context.Context, id int64, changes ChangeSet) (*T, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrMethodNotAllowed, "ID parameter is required")
	}
	before, err := e.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	filtered := make(ChangeSet, len(changes))
	for name, raw := range changes {
		if name != "id" {
			filtered[name] = raw
		}
	}

	candidate, err := e.fields.Apply(e.fields.Clone(*before), filtered)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrCoercion, err.Error())
	}
	e.setID(&candidate, id)

	if err := e.validate(ctx, &candidate, MutationPartialUpdate); err != nil {
		return nil, err
	}
	if err := e.store.Update(ctx, &candidate); err != nil {
		return nil, e.persistenceFailure(err, "save", "in")
	}
	e.committed(ctx, MutationPartialUpdate, before, &candidate)
	return &candidate, nil
}

// Delete removes a stored record unless a delete rule refuses it.
func (e *Engine[T]) Delete(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrMethodNotAllowed, "ID parameter is required")
	}
	existing, err := e.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := e.validate(ctx, existing, MutationDelete); err != nil {
		return nil, err
	}
	if err := e.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, e.notFound(id)
		}
		return nil, e.persistenceFailure(err, "delete", "from")
	}
	e.committed(ctx, MutationDelete, existing, nil)
	return existing, nil
}

// Process runs one raw request element through the path selected by mc and
// classifies the outcome. It never panics on malformed input.
func (e *Engine[T]) Process(ctx context.Context, mc MutationContext, raw json.RawMessage) response.Result {
	result := e.process(ctx, mc, raw)
	e.observeItem(mc, result)
	return result
}

// ProcessWithID is Process for endpoints that carry the id in the path. For
// Replace the body id must be absent or equal; for PartialUpdate the path id
// wins; for Delete the body is ignored.
func (e *Engine[T]) ProcessWithID(ctx context.Context, mc MutationContext, id int64, raw json.RawMessage) response.Result {
	result := e.processWithID(ctx, mc, id, raw)
	e.observeItem(mc, result)
	return result
}

// ProcessBatch runs every element in input order and aggregates the outcome.
// An empty batch is rejected before any element is touched.
func (e *Engine[T]) ProcessBatch(ctx context.Context, mc MutationContext, raws []json.RawMessage) (response.BatchResult, error) {
	if len(raws) == 0 {
		return response.BatchResult{}, appErrors.ErrEmptyBatch
	}
	items := make([]response.Result, 0, len(raws))
	for i, raw := range raws {
		item := e.Process(ctx, mc, raw)
		if !item.OK() {
			e.logger.Warn("batch item failed",
				zap.String("context", mc.String()),
				zap.Int("index", i),
				zap.Int("status", item.HTTPStatus),
				zap.String("message", item.Message),
			)
		}
		items = append(items, item)
	}
	batch := response.NewBatchResult(items)
	if e.metrics != nil {
		e.metrics.ObserveMutationBatch(e.entity, mc, batch.Status, len(items))
	}
	return batch, nil
}

func (e *Engine[T]) process(ctx context.Context, mc MutationContext, raw json.RawMessage) response.Result {
	body := echo(raw)
	if isNull(raw) {
		return response.Failure(nil, appErrors.Clone(appErrors.ErrValidation, "NULL element was provided"))
	}

	switch mc {
	case MutationCreate, MutationReplace:
		entity, err := e.decodeEntity(raw)
		if err != nil {
			return response.Failure(body, err)
		}
		var saved *T
		if mc == MutationCreate {
			saved, err = e.Create(ctx, entity)
		} else {
			saved, err = e.Replace(ctx, entity)
		}
		if err != nil {
			return response.Failure(body, err)
		}
		return response.Success(saved, e.savedMessage())

	case MutationPartialUpdate:
		var changes ChangeSet
		if err := json.Unmarshal(raw, &changes); err != nil || changes == nil {
			return response.Failure(body, e.malformed(err))
		}
		id, err := requireID(changes["id"])
		if err != nil {
			return response.Failure(body, err)
		}
		patched, err := e.Patch(ctx, id, changes)
		if err != nil {
			return response.Failure(body, err)
		}
		return response.Success(patched, e.savedMessage())

	case MutationDelete:
		var ref struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &ref); err != nil {
			return response.Failure(body, e.malformed(err))
		}
		id, err := requireID(ref.ID)
		if err != nil {
			return response.Failure(body, err)
		}
		deleted, err := e.Delete(ctx, id)
		if err != nil {
			return response.Failure(body, err)
		}
		return response.Success(deleted, e.deletedMessage())

	default:
		return response.Failure(body, appErrors.Clone(appErrors.ErrInternal, fmt.Sprintf("unsupported mutation context %s", mc)))
	}
}

func (e *Engine[T]) processWithID(ctx context.Context, mc MutationContext, id int64, raw json.RawMessage) response.Result {
	if id <= 0 {
		return response.Failure(nil, appErrors.Clone(appErrors.ErrValidation, "ID parameter is invalid"))
	}
	body := echo(raw)

	switch mc {
	case MutationReplace:
		if isNull(raw) {
			return response.Failure(nil, appErrors.Clone(appErrors.ErrValidation, "NULL element was provided"))
		}
		entity, err := e.decodeEntity(raw)
		if err != nil {
			return response.Failure(body, err)
		}
		if bodyID := e.idOf(&entity); bodyID != 0 && bodyID != id {
			return response.Failure(body, appErrors.Clone(appErrors.ErrValidation, "ID in body does not match ID parameter"))
		}
		e.setID(&entity, id)
		saved, err := e.Replace(ctx, entity)
		if err != nil {
			return response.Failure(body, err)
		}
		return response.Success(saved, e.savedMessage())

	case MutationPartialUpdate:
		var changes ChangeSet
		if err := json.Unmarshal(raw, &changes); err != nil || changes == nil {
			return response.Failure(body, e.malformed(err))
		}
		patched, err := e.Patch(ctx, id, changes)
		if err != nil {
			return response.Failure(body, err)
		}
		return response.Success(patched, e.savedMessage())

	case MutationDelete:
		deleted, err := e.Delete(ctx, id)
		if err != nil {
			return response.Failure(nil, err)
		}
		return response.Success(deleted, e.deletedMessage())

	case MutationCreate:
		return response.Failure(nil, appErrors.Clone(appErrors.ErrMethodNotAllowed, "POST method with ID parameter not allowed"))

	default:
		return response.Failure(nil, appErrors.Clone(appErrors.ErrInternal, fmt.Sprintf("unsupported mutation context %s", mc)))
	}
}

// decodeEntity builds a full entity from a JSON object through the field
// registry, so values get the same coercion as partial updates.
func (e *Engine[T]) decodeEntity(raw json.RawMessage) (T, error) {
	var zero T
	var changes ChangeSet
	if err := json.Unmarshal(raw, &changes); err != nil || changes == nil {
		return zero, e.malformed(err)
	}
	idRaw, hasID := changes["id"]
	delete(changes, "id")

	entity, err := e.fields.Apply(zero, changes)
	if err != nil {
		return zero, appErrors.Clone(appErrors.ErrCoercion, err.Error())
	}
	if hasID && !isNull(idRaw) {
		id, err := ParseInteger(idRaw)
		if err != nil || id < 0 {
			return zero, appErrors.Clone(appErrors.ErrValidation, "ID parameter is invalid")
		}
		e.setID(&entity, id)
	}
	return entity, nil
}

func requireID(raw json.RawMessage) (int64, error) {
	if isNull(raw) {
		return 0, appErrors.Clone(appErrors.ErrMethodNotAllowed, "ID parameter is required")
	}
	id, err := ParseInteger(raw)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "ID parameter is invalid")
	}
	return id, nil
}

func (e *Engine[T]) validate(ctx context.Context, entity *T, mc MutationContext) error {
	outcome, err := e.rules.Validate(ctx, entity, mc)
	if err != nil {
		e.logger.Error("validation could not run", zap.String("context", mc.String()), zap.Error(err))
		return appErrors.Clone(appErrors.ErrInternal, fmt.Sprintf("failed to validate %s", e.entity))
	}
	if outcome.Valid {
		return nil
	}
	if mc == MutationDelete {
		return appErrors.Clone(appErrors.ErrMethodNotAllowed, outcome.Message)
	}
	return appErrors.Clone(appErrors.ErrValidation, outcome.Message)
}

func (e *Engine[T]) committed(ctx context.Context, mc MutationContext, before, after *T) {
	if e.audit != nil {
		if err := e.audit.Append(ctx, e.auditAction(mc), describeChange(before, after)); err != nil {
			e.logger.Warn("failed to append event history", zap.String("context", mc.String()), zap.Error(err))
		}
	}
	for _, hook := range e.hooks {
		hook(ctx, mc, before, after)
	}
}

func (e *Engine[T]) auditAction(mc MutationContext) string {
	switch mc {
	case MutationCreate:
		return "create " + e.entity
	case MutationReplace:
		return "update (PUT) " + e.entity
	case MutationPartialUpdate:
		return "update (PATCH) " + e.entity
	case MutationDelete:
		return "delete " + e.entity
	default:
		return mc.String() + " " + e.entity
	}
}

func (e *Engine[T]) observeItem(mc MutationContext, result response.Result) {
	if e.metrics != nil {
		e.metrics.ObserveMutationItem(e.entity, mc, result.HTTPStatus)
	}
}

func (e *Engine[T]) notFound(id int64) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s with ID: '%d' not found", e.entity, id))
}

func (e *Engine[T]) malformed(err error) error {
	msg := fmt.Sprintf("malformed %s payload", e.entity)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return appErrors.Clone(appErrors.ErrCoercion, msg)
}

func (e *Engine[T]) persistenceFailure(err error, verb, preposition string) error {
	e.logger.Error("store call failed", zap.String("op", verb), zap.Error(err))
	return appErrors.Clone(appErrors.ErrInternal, fmt.Sprintf("failed to %s %s %s database", verb, e.entity, preposition))
}

func (e *Engine[T]) savedMessage() string {
	return e.entity + " saved successfully"
}

func (e *Engine[T]) deletedMessage() string {
	return e.entity + " deleted successfully"
}

// echo returns raw as a response body when it is valid JSON.
func echo(raw json.RawMessage) interface{} {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil
	}
	return json.RawMessage(trimmed)
}

func describeChange(before, after interface{}) string {
	payload, err := json.Marshal(struct {
		Before interface{} `json:"before"`
		After  interface{} `json:"after"`
	}{Before: before, After: after})
	if err != nil {
		return fmt.Sprintf("before: %v, after: %v", before, after)
	}
	return string(payload)
}
