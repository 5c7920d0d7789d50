package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/handler"
	mock_handler "github.com/eslib/lending-service/internal/handler/mocks"
	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/pkg/validate"
)

func TestHandler_GetComponents(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockCatalogService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *mock_handler.MockCatalogService) {
				r.EXPECT().
					ListComponents(context.Background()).
					Return([]model.Component{
						{
							ComponentUid:      "7cfb5e32-0000-0000-0000-000000000001",
							Name:              "Arduino Uno",
							TotalQuantity:     50,
							AvailableQuantity: 30,
							Description:       "ATmega328P development board",
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":"7cfb5e32-0000-0000-0000-000000000001","name":"Arduino Uno","totalQuantity":50,"availableQuantity":30,"description":"ATmega328P development board"}]`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *mock_handler.MockCatalogService) {
				r.EXPECT().
					ListComponents(context.Background()).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_handler.NewMockCatalogService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, nil, nil, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/components", h.GetComponents)

			r := httptest.NewRequest(http.MethodGet, "/components", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteComponent(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockCatalogService, componentUid string)

	var tests = []struct {
		name         string
		componentUid string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name:         "ok",
			componentUid: "7cfb5e32-0000-0000-0000-000000000001",
			mockBehavior: func(r *mock_handler.MockCatalogService, componentUid string) {
				r.EXPECT().
					DeleteComponent(context.Background(), componentUid).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
		},
		{
			name:         "err. outstanding lendings",
			componentUid: "7cfb5e32-0000-0000-0000-000000000001",
			mockBehavior: func(r *mock_handler.MockCatalogService, componentUid string) {
				r.EXPECT().
					DeleteComponent(context.Background(), componentUid).
					Return(errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"component has outstanding lendings"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. not found",
			componentUid: "deadbeef-0000-0000-0000-000000000000",
			mockBehavior: func(r *mock_handler.MockCatalogService, componentUid string) {
				r.EXPECT().
					DeleteComponent(context.Background(), componentUid).
					Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_handler.NewMockCatalogService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, nil, nil, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/components/:componentUid", h.DeleteComponent)

			r := httptest.NewRequest(
				http.MethodDelete, fmt.Sprintf("/components/%s", tt.componentUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.componentUid)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_InternalErrorLogged(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_handler.NewMockCatalogService(c)
	svc.EXPECT().ListComponents(context.Background()).Return(nil, errors.New("db internal"))

	core, logs := observer.New(zapcore.ErrorLevel)
	h := handler.New(svc, nil, nil, nil, zap.New(core).Named("test"))

	e := echo.New()
	e.GET("/components", h.GetComponents)

	r := httptest.NewRequest(http.MethodGet, "/components", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.FilterMessage("internal error").All()
	require.Len(t, entries, 1)
	require.Equal(t, "db internal", entries[0].ContextMap()["error"])
}
