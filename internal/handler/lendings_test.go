package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/handler"
	mock_handler "github.com/eslib/lending-service/internal/handler/mocks"
	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/pkg/validate"
)

func TestHandler_CreateBorrowRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockLendingService, req model.CreateBorrowRequest)

	borrowDate := time.Date(2025, 4, 8, 10, 30, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		input        model.CreateBorrowRequest
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"rollNumber":"22CSA42","componentId":"7cfb5e32-0000-0000-0000-000000000001","quantity":2,"purpose":"Line follower project"}`,
			input: model.CreateBorrowRequest{
				RollNumber:  "22CSA42",
				ComponentID: "7cfb5e32-0000-0000-0000-000000000001",
				Quantity:    2,
				Purpose:     "Line follower project",
			},
			mockBehavior: func(r *mock_handler.MockLendingService, req model.CreateBorrowRequest) {
				r.EXPECT().
					CreateBorrowRequest(context.Background(), req).
					Return(model.LendingRecord{
						LendingUid:    "32c03573-0000-0000-0000-000000000010",
						RollNumber:    req.RollNumber,
						ComponentUid:  req.ComponentID,
						ComponentName: "Arduino Uno",
						Quantity:      req.Quantity,
						BorrowDate:    borrowDate,
						Purpose:       req.Purpose,
						Status:        model.StatusPending,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"32c03573-0000-0000-0000-000000000010","rollNumber":"22CSA42","componentId":"7cfb5e32-0000-0000-0000-000000000001","componentName":"Arduino Uno","quantity":2,"borrowDate":"2025-04-08T10:30:00Z","returnDate":null,"purpose":"Line follower project","status":"pending"}`,
			},
		},
		{
			name:         "err. bad roll number",
			body:         `{"rollNumber":"not-a-roll","componentId":"7cfb5e32-0000-0000-0000-000000000001","quantity":2,"purpose":"Line follower project"}`,
			mockBehavior: func(r *mock_handler.MockLendingService, req model.CreateBorrowRequest) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. insufficient stock",
			body: `{"rollNumber":"22CSA42","componentId":"7cfb5e32-0000-0000-0000-000000000001","quantity":1000,"purpose":"Line follower project"}`,
			input: model.CreateBorrowRequest{
				RollNumber:  "22CSA42",
				ComponentID: "7cfb5e32-0000-0000-0000-000000000001",
				Quantity:    1000,
				Purpose:     "Line follower project",
			},
			mockBehavior: func(r *mock_handler.MockLendingService, req model.CreateBorrowRequest) {
				r.EXPECT().
					CreateBorrowRequest(context.Background(), req).
					Return(model.LendingRecord{}, errs.ErrInsufficientStock)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"insufficient stock"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			body: `{"rollNumber":"22CSA42","componentId":"7cfb5e32-0000-0000-0000-000000000001","quantity":2,"purpose":"Line follower project"}`,
			input: model.CreateBorrowRequest{
				RollNumber:  "22CSA42",
				ComponentID: "7cfb5e32-0000-0000-0000-000000000001",
				Quantity:    2,
				Purpose:     "Line follower project",
			},
			mockBehavior: func(r *mock_handler.MockLendingService, req model.CreateBorrowRequest) {
				r.EXPECT().
					CreateBorrowRequest(context.Background(), req).
					Return(model.LendingRecord{}, errors.New("db internal"))
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
			svc := mock_handler.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(nil, svc, nil, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/lendings/borrow", h.CreateBorrowRequest)

			r := httptest.NewRequest(http.MethodPost, "/lendings/borrow", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Approve(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockLendingService, lendingUid string)

	borrowDate := time.Date(2025, 4, 8, 10, 30, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		lendingUid   string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name:       "ok",
			lendingUid: "32c03573-0000-0000-0000-000000000010",
			mockBehavior: func(r *mock_handler.MockLendingService, lendingUid string) {
				r.EXPECT().
					Approve(context.Background(), lendingUid).
					Return(model.LendingRecord{
						LendingUid:    lendingUid,
						RollNumber:    "22CSA42",
						ComponentUid:  "7cfb5e32-0000-0000-0000-000000000001",
						ComponentName: "Arduino Uno",
						Quantity:      2,
						BorrowDate:    borrowDate,
						Purpose:       "Line follower project",
						Status:        model.StatusApproved,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"32c03573-0000-0000-0000-000000000010","rollNumber":"22CSA42","componentId":"7cfb5e32-0000-0000-0000-000000000001","componentName":"Arduino Uno","quantity":2,"borrowDate":"2025-04-08T10:30:00Z","returnDate":null,"purpose":"Line follower project","status":"approved"}`,
			},
		},
		{
			name:       "err. not pending",
			lendingUid: "32c03573-0000-0000-0000-000000000010",
			mockBehavior: func(r *mock_handler.MockLendingService, lendingUid string) {
				r.EXPECT().
					Approve(context.Background(), lendingUid).
					Return(model.LendingRecord{}, errs.ErrInvalidState)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"transition not allowed from current status"}`,
			},
			wantErr: true,
		},
		{
			name:       "err. not found",
			lendingUid: "deadbeef-0000-0000-0000-000000000000",
			mockBehavior: func(r *mock_handler.MockLendingService, lendingUid string) {
				r.EXPECT().
					Approve(context.Background(), lendingUid).
					Return(model.LendingRecord{}, errs.ErrNotFound)
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
			svc := mock_handler.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(nil, svc, nil, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/lendings/:lendingUid/approve", h.Approve)

			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/lendings/%s/approve", tt.lendingUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.lendingUid)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
