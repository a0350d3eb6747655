package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/service"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

type entityService[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, filter models.ListFilter) ([]T, *models.Pagination, error)
	Process(ctx context.Context, mc service.MutationContext, raw json.RawMessage) response.Result
	ProcessWithID(ctx context.Context, mc service.MutationContext, id int64, raw json.RawMessage) response.Result
}

// Input kinds understood by the form template.
const (
	InputText     = "text"
	InputNumber   = "number"
	InputDateTime = "datetime-local"
	InputTextArea = "textarea"
	InputSelect   = "select"
)

// Option is one choice of a select input.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// OptionSource lists the choices of a reference field.
type OptionSource func(ctx context.Context) ([]Option, error)

// Field describes one editable column. Value renders the stored value both
// for display and as the form value.
type Field[T any] struct {
	Name     string
	Label    string
	Input    string
	Required bool
	Value    func(*T) string
	Options  OptionSource
}

// Detail is one label/value line of a details page.
type Detail struct {
	Label string
	Value string
}

// EntityPages serves list, details and form pages of one entity through its
// mutation engine.
type EntityPages[T any] struct {
	Entity  string
	Plural  string
	Title   string
	Service entityService[T]
	Fields  []Field[T]
	IDOf    func(*T) int64
	// Extra adds computed lines to the details page.
	Extra func(ctx context.Context, item *T) ([]Detail, error)

	srv *Server
}

type row struct {
	ID    int64
	Cells []string
}

type listPage struct {
	Chrome
	Entity   string
	Plural   string
	Columns  []string
	Rows     []row
	Span     int
	Current  int
	Pages    int
	PrevPage int
	NextPage int
}

type detailPage struct {
	Chrome
	Plural string
	ID     int64
	Fields []Detail
	Extra  []Detail
}

type formField struct {
	Name     string
	Label    string
	Input    string
	Required bool
	Value    string
	Options  []Option
}

type formPage struct {
	Chrome
	Plural string
	Action string
	ID     int64
	Fields []formField
	Error  string
}

func (p *EntityPages[T]) path() string {
	return p.Plural
}

func (p *EntityPages[T]) register(group *gin.RouterGroup, srv *Server, read, write gin.HandlerFunc) {
	p.srv = srv
	group.GET("", read, p.list)
	group.GET("/new", write, p.newForm)
	group.GET("/:id", read, p.details)
	group.GET("/:id/edit", write, p.editForm)
	group.POST("", write, p.create)
	group.POST("/update", write, p.update)
	group.POST("/:id/delete", write, p.remove)
}

func (p *EntityPages[T]) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	filter := models.ListFilter{Search: strings.TrimSpace(c.Query("search")), Page: page}
	filter.Normalize()
	items, pagination, err := p.Service.List(c.Request.Context(), filter)
	if err != nil {
		p.srv.fail(c, err)
		return
	}

	columns := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		columns = append(columns, f.Label)
	}
	rows := make([]row, 0, len(items))
	for i := range items {
		item := &items[i]
		cells := make([]string, 0, len(p.Fields))
		for _, f := range p.Fields {
			cells = append(cells, f.Value(item))
		}
		rows = append(rows, row{ID: p.IDOf(item), Cells: cells})
	}

	pages := (pagination.TotalCount + pagination.PageSize - 1) / pagination.PageSize
	if pages < 1 {
		pages = 1
	}
	data := listPage{
		Chrome:  p.srv.chrome(c, p.Title),
		Entity:  p.Entity,
		Plural:  p.Plural,
		Columns: columns,
		Rows:    rows,
		Span:    len(columns) + 2,
		Current: pagination.Page,
		Pages:   pages,
	}
	if pagination.Page > 1 {
		data.PrevPage = pagination.Page - 1
	}
	if pagination.Page < pages {
		data.NextPage = pagination.Page + 1
	}
	p.srv.render(c, http.StatusOK, "list", data)
}

func (p *EntityPages[T]) details(c *gin.Context) {
	item, ok := p.load(c)
	if !ok {
		return
	}
	fields := make([]Detail, 0, len(p.Fields))
	for _, f := range p.Fields {
		fields = append(fields, Detail{Label: f.Label, Value: f.Value(item)})
	}
	data := detailPage{
		Chrome: p.srv.chrome(c, fmt.Sprintf("%s #%d", capitalize(p.Entity), p.IDOf(item))),
		Plural: p.Plural,
		ID:     p.IDOf(item),
		Fields: fields,
	}
	if p.Extra != nil {
		extra, err := p.Extra(c.Request.Context(), item)
		if err != nil {
			p.srv.fail(c, err)
			return
		}
		data.Extra = extra
	}
	p.srv.render(c, http.StatusOK, "details", data)
}

func (p *EntityPages[T]) newForm(c *gin.Context) {
	p.renderForm(c, http.StatusOK, 0, map[string]string{}, "")
}

func (p *EntityPages[T]) editForm(c *gin.Context) {
	item, ok := p.load(c)
	if !ok {
		return
	}
	values := make(map[string]string, len(p.Fields))
	for _, f := range p.Fields {
		values[f.Name] = f.Value(item)
	}
	p.renderForm(c, http.StatusOK, p.IDOf(item), values, "")
}

func (p *EntityPages[T]) create(c *gin.Context) {
	raw, values := p.submission(c)
	result := p.Service.Process(c.Request.Context(), service.MutationCreate, raw)
	p.afterSave(c, result, 0, values)
}

func (p *EntityPages[T]) update(c *gin.Context) {
	raw, values := p.submission(c)
	id, _ := strconv.ParseInt(strings.TrimSpace(c.PostForm("id")), 10, 64)
	result := p.Service.ProcessWithID(c.Request.Context(), service.MutationReplace, id, raw)
	p.afterSave(c, result, id, values)
}

func (p *EntityPages[T]) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		p.srv.failWith(c, http.StatusBadRequest, "ID parameter is invalid")
		return
	}
	result := p.Service.ProcessWithID(c.Request.Context(), service.MutationDelete, id, nil)
	if !result.OK() {
		p.srv.failWith(c, result.HTTPStatus, result.Message)
		return
	}
	c.Redirect(http.StatusSeeOther, p.srv.base+"/"+p.Plural)
}

func (p *EntityPages[T]) afterSave(c *gin.Context, result response.Result, id int64, values map[string]string) {
	if !result.OK() {
		p.renderForm(c, result.HTTPStatus, id, values, result.Message)
		return
	}
	saved, ok := result.Body.(*T)
	if !ok {
		c.Redirect(http.StatusSeeOther, p.srv.base+"/"+p.Plural)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("%s/%s/%d", p.srv.base, p.Plural, p.IDOf(saved)))
}

func (p *EntityPages[T]) load(c *gin.Context) (*T, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		p.srv.failWith(c, http.StatusBadRequest, "ID parameter is invalid")
		return nil, false
	}
	item, err := p.Service.Get(c.Request.Context(), id)
	if err != nil {
		p.srv.fail(c, err)
		return nil, false
	}
	return item, true
}

func (p *EntityPages[T]) renderForm(c *gin.Context, status int, id int64, values map[string]string, message string) {
	fields := make([]formField, 0, len(p.Fields))
	for _, f := range p.Fields {
		field := formField{Name: f.Name, Label: f.Label, Input: f.Input, Required: f.Required, Value: values[f.Name]}
		if f.Options != nil {
			options, err := f.Options(c.Request.Context())
			if err != nil {
				p.srv.fail(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load choices"))
				return
			}
			for i := range options {
				options[i].Selected = options[i].Value == field.Value
			}
			field.Options = options
		}
		fields = append(fields, field)
	}

	title := "New " + p.Entity
	action := p.srv.base + "/" + p.Plural
	if id > 0 {
		title = fmt.Sprintf("Edit %s #%d", p.Entity, id)
		action += "/update"
	}
	p.srv.render(c, status, "form", formPage{
		Chrome: p.srv.chrome(c, title),
		Plural: p.Plural,
		Action: action,
		ID:     id,
		Fields: fields,
		Error:  message,
	})
}

// submission turns the posted form into an entity payload. Blank inputs are
// sent as null; select inputs become {"id": n} references.
func (p *EntityPages[T]) submission(c *gin.Context) (json.RawMessage, map[string]string) {
	values := make(map[string]string, len(p.Fields))
	payload := make(map[string]json.RawMessage, len(p.Fields))
	for _, f := range p.Fields {
		value := strings.TrimSpace(c.PostForm(f.Name))
		values[f.Name] = value
		payload[f.Name] = formValue(f.Input, value)
	}
	raw, _ := json.Marshal(payload)
	return raw, values
}

func formValue(input, value string) json.RawMessage {
	if value == "" {
		return json.RawMessage("null")
	}
	if input == InputSelect {
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			return json.RawMessage(fmt.Sprintf(`{"id":%d}`, id))
		}
	}
	quoted, _ := json.Marshal(value)
	return quoted
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
