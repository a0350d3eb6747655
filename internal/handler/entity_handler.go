package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/middleware"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/service"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

type entityService[T any] interface {
	Entity() string
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, filter models.ListFilter) ([]T, *models.Pagination, error)
	Process(ctx context.Context, mc service.MutationContext, raw json.RawMessage) response.Result
	ProcessWithID(ctx context.Context, mc service.MutationContext, id int64, raw json.RawMessage) response.Result
	ProcessBatch(ctx context.Context, mc service.MutationContext, raws []json.RawMessage) (response.BatchResult, error)
}

// EntityHandler exposes the REST surface of one fleet entity.
type EntityHandler[T any] struct {
	service entityService[T]
}

// NewEntityHandler constructs the handler.
func NewEntityHandler[T any](svc entityService[T]) *EntityHandler[T] {
	return &EntityHandler[T]{service: svc}
}

// Register mounts the entity routes on group. read guards listings and
// lookups, write guards mutations.
func (h *EntityHandler[T]) Register(group *gin.RouterGroup, read, write gin.HandlerFunc) {
	group.GET("", read, h.List)
	group.GET("/:id", read, h.Get)
	group.POST("", write, h.Create)
	group.POST("/batch", write, h.CreateBatch)
	group.POST("/:id", write, h.CreateWithID)
	group.PUT("", write, h.ReplaceBatch)
	group.PUT("/:id", write, h.Replace)
	group.PATCH("", write, h.PatchBatch)
	group.PATCH("/:id", write, h.Patch)
	group.DELETE("", write, h.DeleteBatch)
	group.DELETE("/:id", write, h.Delete)
}

// List returns a page of records.
func (h *EntityHandler[T]) List(c *gin.Context) {
	items, pagination, err := h.service.List(c.Request.Context(), listFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination, middleware.ExtractMeta(c))
}

// Get returns one record.
func (h *EntityHandler[T]) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Create stores one new record.
func (h *EntityHandler[T]) Create(c *gin.Context) {
	body, err := rawBody(c)
	if err != nil {
		response.Item(c, response.Failure(nil, err))
		return
	}
	response.Item(c, h.service.Process(c.Request.Context(), service.MutationCreate, body))
}

// CreateWithID refuses POST on a record path with 405.
func (h *EntityHandler[T]) CreateWithID(c *gin.Context) {
	h.single(c, service.MutationCreate)
}

// Replace overwrites the record addressed by the path.
func (h *EntityHandler[T]) Replace(c *gin.Context) {
	h.single(c, service.MutationReplace)
}

// Patch applies a change map to the record addressed by the path.
func (h *EntityHandler[T]) Patch(c *gin.Context) {
	h.single(c, service.MutationPartialUpdate)
}

// Delete removes the record addressed by the path.
func (h *EntityHandler[T]) Delete(c *gin.Context) {
	h.single(c, service.MutationDelete)
}

// CreateBatch stores every element of an array body.
func (h *EntityHandler[T]) CreateBatch(c *gin.Context) {
	h.batch(c, service.MutationCreate)
}

// ReplaceBatch overwrites every element of an array body.
func (h *EntityHandler[T]) ReplaceBatch(c *gin.Context) {
	h.batch(c, service.MutationReplace)
}

// PatchBatch applies every change map of an array body; each needs an id.
func (h *EntityHandler[T]) PatchBatch(c *gin.Context) {
	h.batch(c, service.MutationPartialUpdate)
}

// DeleteBatch removes every record referenced by an array body.
func (h *EntityHandler[T]) DeleteBatch(c *gin.Context) {
	h.batch(c, service.MutationDelete)
}

func (h *EntityHandler[T]) single(c *gin.Context, mc service.MutationContext) {
	id, err := pathID(c)
	if err != nil {
		response.Item(c, response.Failure(nil, err))
		return
	}
	var body json.RawMessage
	if mc == service.MutationReplace || mc == service.MutationPartialUpdate {
		if body, err = rawBody(c); err != nil {
			response.Item(c, response.Failure(nil, err))
			return
		}
	}
	response.Item(c, h.service.ProcessWithID(c.Request.Context(), mc, id, body))
}

func (h *EntityHandler[T]) batch(c *gin.Context, mc service.MutationContext) {
	items, err := batchBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.ProcessBatch(c.Request.Context(), mc, items)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Batch(c, result)
}
