package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
)

// newContext builds an echo context for target with the given path params
func newContext(e *echo.Echo, method, target, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

// decodeBody unmarshals the recorded JSON response into a generic map
func decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// errorCode returns error.code from an ErrorResponse body
func errorCode(rec *httptest.ResponseRecorder) string {
	body := decodeBody(rec)
	errBody, ok := body["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errBody["code"].(string)
	return code
}
