package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

// ServiceDeps carries collaborators shared by every entity service.
type ServiceDeps struct {
	Validate *validator.Validate
	Audit    AuditSink
	Metrics  MutationRecorder
	Logger   *zap.Logger
}

func (d ServiceDeps) validate() *validator.Validate {
	if d.Validate == nil {
		return NewStructValidator()
	}
	return d.Validate
}

type entityLister[T any] interface {
	List(ctx context.Context, filter models.ListFilter) ([]T, int, error)
}

// CrudService exposes listing next to the mutation engine of one entity.
type CrudService[T any] struct {
	*Engine[T]
	lister entityLister[T]
}

// List returns a page of records with pagination metadata.
func (s *CrudService[T]) List(ctx context.Context, filter models.ListFilter) ([]T, *models.Pagination, error) {
	filter.Normalize()
	items, total, err := s.lister.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to list %s records", s.Entity()))
	}
	return items, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// FieldNames lists the fields accepted in change sets.
func (s *CrudService[T]) FieldNames() []string {
	return s.fields.Fields()
}
