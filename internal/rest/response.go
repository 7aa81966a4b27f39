package rest

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-booking-api/internal/controller"
	"service-booking-api/internal/notify"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// serializer swaps echo's encoding/json for jsoniter.
type serializer struct{}

func (serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (serializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body").SetInternal(err)
	}
	return nil
}

type errorBody struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Field   string         `json:"field,omitempty"`
	Notice  *notify.Notice `json:"notice,omitempty"`
	Details interface{}    `json:"details,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, errorBody{Error: message, Code: code, Details: details})
}

var httpStatus = map[controller.Code]int{
	controller.CodeInvalid:         http.StatusBadRequest,
	controller.CodeConflict:        http.StatusConflict,
	controller.CodeUnauthenticated: http.StatusUnauthorized,
	controller.CodeNotFound:        http.StatusNotFound,
	controller.CodeBusy:            http.StatusConflict,
	controller.CodeInternal:        http.StatusInternalServerError,
}

// failWith writes a controller error with its user message and notice.
func (s *Server) failWith(c echo.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fail(c, http.StatusServiceUnavailable, "CANCELLED", "Request cancelled", nil)
	}
	var f *controller.Failure
	if !errors.As(err, &f) {
		s.log.Error("unmapped error", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
	body := errorBody{Error: f.Message, Code: f.Code.String(), Field: f.Field}
	if f.Notice.ID != "" {
		body.Notice = &f.Notice
	}
	return c.JSON(httpStatus[f.Code], body)
}

// notice drops notices that were never posted.
func notice(n notify.Notice) *notify.Notice {
	if n.ID == "" {
		return nil
	}
	return &n
}
