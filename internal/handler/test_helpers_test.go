package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	return echo.New()
}

// newJSONRequest marshals body, when present, and sets the JSON content type.
func newJSONRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

// newRawJSONRequest sends body as-is, for malformed payloads and exact field spellings.
func newRawJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func newTestContext(e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}

// assertJSONResponse checks the status and decodes the body into target when non-nil.
func assertJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, target any) {
	t.Helper()
	require.Equal(t, status, rec.Code, "unexpected status code: %s", rec.Body.String())
	if target == nil {
		return
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "failed to parse JSON response")
}

// assertErrorMessage checks the status and the localized error message of an error body.
func assertErrorMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	var resp map[string]any
	assertJSONResponse(t, rec, status, &resp)
	require.Equal(t, message, resp["error"])
}
