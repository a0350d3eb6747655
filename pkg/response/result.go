package response

import (
	"net/http"

	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

// Result is the per-item mutation envelope shared by single and batch endpoints.
type Result struct {
	Body       interface{} `json:"body"`
	HTTPStatus int         `json:"http_status"`
	Message    string      `json:"message"`
}

// OK reports whether the item succeeded.
func (r Result) OK() bool {
	return r.HTTPStatus == http.StatusOK
}

// Success builds a 200 result.
func Success(body interface{}, message string) Result {
	return Result{Body: body, HTTPStatus: http.StatusOK, Message: message}
}

// Failure builds a result from an error, taking status and message from its typed form.
func Failure(body interface{}, err error) Result {
	appErr := appErrors.FromError(err)
	return Result{Body: body, HTTPStatus: appErr.Status, Message: appErr.Error()}
}

// BatchResult holds index-correlated item results plus the overall status.
type BatchResult struct {
	Items  []Result
	Status int
}

// NewBatchResult derives the overall status from the items.
func NewBatchResult(items []Result) BatchResult {
	return BatchResult{Items: items, Status: AggregateStatus(items)}
}

// AggregateStatus is 200 iff every item is 200, otherwise 207.
func AggregateStatus(items []Result) int {
	for _, item := range items {
		if !item.OK() {
			return http.StatusMultiStatus
		}
	}
	return http.StatusOK
}
