package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	logBuf *bytes.Buffer
	logger *slog.Logger
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logBuf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logBuf, nil))
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(target, traceID string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	s.echo.GET("/api/v1/merchants/:merchantId/transactions", h, PanicRecovery(s.logger))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
		s.echo.Use(RequestID())
	}
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *PanicRecoveryTestSuite) TestRecoversWithSystemError() {
	rec := s.serve("/api/v1/merchants/MCH-00001/transactions", "trace-panic-1", func(c echo.Context) error {
		panic("summary overflow")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.SystemInternalError), resp.Error.Code)
	s.Equal("trace-panic-1", resp.Error.TraceID)
	s.Equal("/api/v1/merchants/MCH-00001/transactions", resp.Error.Path)

	logged := s.logBuf.String()
	s.Contains(logged, "panic recovered")
	s.Contains(logged, "summary overflow")
	s.Contains(logged, `"merchant_id":"MCH-00001"`)
	s.Contains(logged, `"route":"/api/v1/merchants/:merchantId/transactions"`)
}

func (s *PanicRecoveryTestSuite) TestMissingTraceIDReportsUnknown() {
	rec := s.serve("/api/v1/merchants/MCH-00002/transactions", "", func(c echo.Context) error {
		panic("boom")
	})

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unknown", resp.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestNormalFlowUntouched() {
	rec := s.serve("/api/v1/merchants/MCH-00003/transactions", "", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.logBuf.String())
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := s.serve("/api/v1/merchants/MCH-00004/transactions", "", func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("after write")
	})

	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("partial", rec.Body.String())
	s.Contains(s.logBuf.String(), "after write")
}

func (s *PanicRecoveryTestSuite) TestAbortHandlerIsRepanicked() {
	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.PanicsWithValue(http.ErrAbortHandler, func() {
		_ = handler(c)
	})
}

func (s *PanicRecoveryTestSuite) TestPanicValueTypes() {
	values := map[string]any{
		"error":  errors.SystemInternalError,
		"int":    42,
		"struct": struct{ msg string }{"bad"},
	}

	for name, v := range values {
		s.Run(name, func() {
			handler := PanicRecovery(s.logger)(func(c echo.Context) error {
				panic(v)
			})
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			s.NotPanics(func() { _ = handler(c) })
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
