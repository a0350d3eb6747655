package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

// pathID parses the :id route parameter. Non-positive or non-numeric ids
// are reported as invalid.
func pathID(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "ID parameter is invalid")
	}
	return id, nil
}

func listFilter(c *gin.Context) models.ListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	filter := models.ListFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page,
		PageSize: size,
	}
	filter.Normalize()
	return filter
}

// rawBody returns the request body unchanged.
func rawBody(c *gin.Context) (json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "request body could not be read")
	}
	return json.RawMessage(body), nil
}

// batchBody splits a JSON array body into its elements. A missing body or a
// JSON null yields an empty slice, which the engine rejects as an empty batch.
func batchBody(c *gin.Context) ([]json.RawMessage, error) {
	body, err := rawBody(c)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, appErrors.Clone(appErrors.ErrCoercion, "request body must be a JSON array")
	}
	return items, nil
}
