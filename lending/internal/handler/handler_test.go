package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/handler"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/lending-service/lending/internal/handler/mocks"
)

var (
	authCfg = auth.Config{Secret: "test-secret", TTL: time.Hour}

	patronID    = uuid.MustParse("8f1a3c52-0b6e-4c6f-9d1e-2a7b5c4d3e21")
	librarianID = uuid.MustParse("1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f")
	bookID      = uuid.MustParse("f7cdc58f-2caf-4b15-9727-f89dcc629b27")
	requestID   = uuid.MustParse("83575e12-7ce0-48ee-9931-51919ff3c9ee")
	issueID     = uuid.MustParse("5b1c6e0a-7d44-4f6b-a3c8-9e2f1d0b7a65")
)

type caller int

const (
	anonymous caller = iota
	patron
	librarian
)

func bearer(t *testing.T, who caller) string {
	t.Helper()
	var p auth.Profile
	switch who {
	case anonymous:
		return ""
	case patron:
		p = auth.Profile{UserID: patronID.String(), Username: "Ann", Role: auth.RoleUser}
	case librarian:
		p = auth.Profile{UserID: librarianID.String(), Username: "Lib", Role: auth.RoleLibrarian}
	}
	token, _, err := auth.NewToken(authCfg, p, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

type request struct {
	method string
	target string
	body   string
	caller caller
}

type response struct {
	expectedCode int
	expectedBody string
}

type env struct {
	lending  *service_mocks.MockLendingService
	identity *service_mocks.MockIdentityService
}

func serve(t *testing.T, req request, mockBehavior func(m env)) *httptest.ResponseRecorder {
	t.Helper()
	c := gomock.NewController(t)
	defer c.Finish()
	m := env{
		lending:  service_mocks.NewMockLendingService(c),
		identity: service_mocks.NewMockIdentityService(c),
	}
	mockBehavior(m)

	h := handler.New(m.lending, m.identity, authCfg, zap.NewNop())
	e := h.NewRouter()

	r := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token := bearer(t, req.caller); token != "" {
		r.Header.Set(echo.HeaderAuthorization, token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	w := serve(t, request{method: http.MethodGet, target: "/manage/health"}, func(env) {})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_AddBook(t *testing.T) {
	t.Parallel()
	book := model.Book{
		ID:              bookID,
		Title:           "Dune",
		Author:          "Frank Herbert",
		Category:        model.CategoryFiction,
		TotalCopies:     1,
		AvailableCopies: 1,
		Version:         1,
	}
	var tests = []struct {
		name         string
		request      request
		mockBehavior func(m env)
		response     response
	}{
		{
			name: "ok",
			request: request{
				method: http.MethodPost, target: "/api/v1/books", caller: librarian,
				body: `{"title":"Dune","author":"Frank Herbert","category":"fiction"}`,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().
					AddBook(gomock.Any(), "Dune", "Frank Herbert", model.CategoryFiction, 1).
					Return(book, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"bookId":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"Dune","author":"Frank Herbert","category":"Fiction","totalCopies":1,"availableCopies":1}`,
			},
		},
		{
			name: "err. unknown category",
			request: request{
				method: http.MethodPost, target: "/api/v1/books", caller: librarian,
				body: `{"title":"Dune","author":"Frank Herbert","category":"poetry"}`,
			},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"unknown book category"}`,
			},
		},
		{
			name: "err. zero copies",
			request: request{
				method: http.MethodPost, target: "/api/v1/books", caller: librarian,
				body: `{"title":"Dune","author":"Frank Herbert","category":"Fiction","copies":0}`,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().
					AddBook(gomock.Any(), "Dune", "Frank Herbert", model.CategoryFiction, 0).
					Return(model.Book{}, errs.ErrInvalidCopyCount)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"number of copies must be greater than zero"}`,
			},
		},
		{
			name: "err. negative copies",
			request: request{
				method: http.MethodPost, target: "/api/v1/books", caller: librarian,
				body: `{"title":"Dune","author":"Frank Herbert","category":"Fiction","copies":-2}`,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().
					AddBook(gomock.Any(), "Dune", "Frank Herbert", model.CategoryFiction, -2).
					Return(model.Book{}, errs.ErrInvalidCopyCount)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"number of copies must be greater than zero"}`,
			},
		},
		{
			name: "err. patron",
			request: request{
				method: http.MethodPost, target: "/api/v1/books", caller: patron,
				body: `{"title":"Dune","author":"Frank Herbert","category":"Fiction"}`,
			},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"role not allowed"}`,
			},
		},
		{
			name: "err. no token",
			request: request{
				method: http.MethodPost, target: "/api/v1/books",
				body: `{"title":"Dune","author":"Frank Herbert","category":"Fiction"}`,
			},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.request, tt.mockBehavior)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_BorrowRequests(t *testing.T) {
	t.Parallel()
	requestedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pending := model.BorrowRequest{
		ID:          requestID,
		UserID:      patronID,
		BookID:      bookID,
		RequestedAt: requestedAt,
		Status:      model.RequestPending,
	}
	var tests = []struct {
		name         string
		request      request
		mockBehavior func(m env)
		response     response
	}{
		{
			name: "ok. create",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests", caller: patron,
				body: `{"bookId":"f7cdc58f-2caf-4b15-9727-f89dcc629b27"}`,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().CreateRequest(gomock.Any(), patronID, bookID).Return(pending, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"requestId":"83575e12-7ce0-48ee-9931-51919ff3c9ee","userId":"8f1a3c52-0b6e-4c6f-9d1e-2a7b5c4d3e21","bookId":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","requestedAt":"2024-03-01T10:00:00Z","status":"PENDING"}`,
			},
		},
		{
			name: "err. duplicate",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests", caller: patron,
				body: `{"bookId":"f7cdc58f-2caf-4b15-9727-f89dcc629b27"}`,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().CreateRequest(gomock.Any(), patronID, bookID).
					Return(model.BorrowRequest{}, errs.ErrDuplicateBorrowRequest)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"a pending request for this book already exists"}`,
			},
		},
		{
			name: "err. book id",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests", caller: patron,
				body: `{"bookId":"42"}`,
			},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateBorrowRequest.BookID' Error:Field validation for 'BookID' failed on the 'uuid' tag"}`,
			},
		},
		{
			name: "ok. approve",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests/" + requestID.String() + "/approve", caller: librarian,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().ApproveRequest(gomock.Any(), requestID).Return(model.IssuedBook{
					ID:       issueID,
					BookID:   bookID,
					UserID:   patronID,
					IssuedAt: requestedAt,
					DueAt:    requestedAt.Add(14 * 24 * time.Hour),
				}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"issueId":"5b1c6e0a-7d44-4f6b-a3c8-9e2f1d0b7a65","bookId":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","userId":"8f1a3c52-0b6e-4c6f-9d1e-2a7b5c4d3e21","issuedAt":"2024-03-01T10:00:00Z","dueAt":"2024-03-15T10:00:00Z","fine":0,"renewCount":0}`,
			},
		},
		{
			name: "err. approve unavailable",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests/" + requestID.String() + "/approve", caller: librarian,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().ApproveRequest(gomock.Any(), requestID).
					Return(model.IssuedBook{}, errors.Wrap(errs.ErrBookUnavailable, "book.IssueCopy"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book.IssueCopy: book is not available for borrowing"}`,
			},
		},
		{
			name: "err. approve missing",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests/" + requestID.String() + "/approve", caller: librarian,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().ApproveRequest(gomock.Any(), requestID).
					Return(model.IssuedBook{}, errs.ErrRequestNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"borrow request not found"}`,
			},
		},
		{
			name: "err. approve bad id",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests/nope/approve", caller: librarian,
			},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"requestId is invalid"}`,
			},
		},
		{
			name: "err. reject by patron",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests/" + requestID.String() + "/reject", caller: patron,
			},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"role not allowed"}`,
			},
		},
		{
			name: "err. reject terminal",
			request: request{
				method: http.MethodPost, target: "/api/v1/requests/" + requestID.String() + "/reject", caller: librarian,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().RejectRequest(gomock.Any(), requestID).
					Return(model.BorrowRequest{}, errs.ErrRequestNotPending)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"request is not pending"}`,
			},
		},
		{
			name: "err. internal",
			request: request{
				method: http.MethodGet, target: "/api/v1/requests", caller: librarian,
			},
			mockBehavior: func(m env) {
				m.lending.EXPECT().PendingRequests(gomock.Any()).Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.request, tt.mockBehavior)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Loans(t *testing.T) {
	t.Parallel()
	issuedAt := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	loan := model.IssuedBook{
		ID:       issueID,
		BookID:   bookID,
		UserID:   patronID,
		IssuedAt: issuedAt,
		DueAt:    issuedAt.Add(14 * 24 * time.Hour),
	}
	foreign := loan
	foreign.UserID = uuid.New()
	returnPath := "/api/v1/loans/" + issueID.String() + "/return"

	var tests = []struct {
		name         string
		request      request
		mockBehavior func(m env)
		response     response
	}{
		{
			name:    "ok. my loans",
			request: request{method: http.MethodGet, target: "/api/v1/loans/me", caller: patron},
			mockBehavior: func(m env) {
				m.lending.EXPECT().BorrowedBooks(gomock.Any(), patronID).Return([]model.IssuedBook{loan}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"issueId":"5b1c6e0a-7d44-4f6b-a3c8-9e2f1d0b7a65","bookId":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","userId":"8f1a3c52-0b6e-4c6f-9d1e-2a7b5c4d3e21","issuedAt":"2099-01-01T00:00:00Z","dueAt":"2099-01-15T00:00:00Z","fine":0,"renewCount":0,"status":"ACTIVE","daysOverdue":0}]`,
			},
		},
		{
			name:    "ok. return with date",
			request: request{method: http.MethodPost, target: returnPath, caller: patron, body: `{"date":"2099-01-20"}`},
			mockBehavior: func(m env) {
				m.lending.EXPECT().GetLoan(gomock.Any(), issueID).Return(loan, nil)
				m.lending.EXPECT().
					ReturnBook(gomock.Any(), issueID, time.Date(2099, 1, 20, 23, 59, 59, 999999999, time.UTC)).
					Return(5.0, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"issueId":"5b1c6e0a-7d44-4f6b-a3c8-9e2f1d0b7a65","fine":5}`,
			},
		},
		{
			name:    "ok. librarian returns without date",
			request: request{method: http.MethodPost, target: returnPath, caller: librarian},
			mockBehavior: func(m env) {
				m.lending.EXPECT().ReturnBook(gomock.Any(), issueID, gomock.Any()).Return(0.0, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"issueId":"5b1c6e0a-7d44-4f6b-a3c8-9e2f1d0b7a65","fine":0}`,
			},
		},
		{
			name:    "err. foreign loan",
			request: request{method: http.MethodPost, target: returnPath, caller: patron},
			mockBehavior: func(m env) {
				m.lending.EXPECT().GetLoan(gomock.Any(), issueID).Return(foreign, nil)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"loan belongs to another user"}`,
			},
		},
		{
			name:    "err. date before issue",
			request: request{method: http.MethodPost, target: returnPath, caller: librarian, body: `{"date":"2098-12-31"}`},
			mockBehavior: func(m env) {
				m.lending.EXPECT().
					ReturnBook(gomock.Any(), issueID, time.Date(2098, 12, 31, 23, 59, 59, 999999999, time.UTC)).
					Return(0.0, errs.ErrInvalidReturnDate)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"return date cannot be before issue date"}`,
			},
		},
		{
			name:    "err. already returned",
			request: request{method: http.MethodPost, target: returnPath, caller: librarian},
			mockBehavior: func(m env) {
				m.lending.EXPECT().ReturnBook(gomock.Any(), issueID, gomock.Any()).
					Return(0.0, errs.ErrBookAlreadyReturned)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"this book has already been returned"}`,
			},
		},
		{
			name:    "err. unknown loan",
			request: request{method: http.MethodPost, target: "/api/v1/loans/" + issueID.String() + "/renew", caller: patron},
			mockBehavior: func(m env) {
				m.lending.EXPECT().GetLoan(gomock.Any(), issueID).Return(model.IssuedBook{}, errs.ErrIssueNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"borrow record not found"}`,
			},
		},
		{
			name:    "err. renew limit",
			request: request{method: http.MethodPost, target: "/api/v1/loans/" + issueID.String() + "/renew", caller: patron},
			mockBehavior: func(m env) {
				m.lending.EXPECT().GetLoan(gomock.Any(), issueID).Return(loan, nil)
				m.lending.EXPECT().RenewLoan(gomock.Any(), issueID).Return(model.IssuedBook{}, errs.ErrRenewalLimitReached)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"renewal limit reached"}`,
			},
		},
		{
			name:         "err. patron lists all loans",
			request:      request{method: http.MethodGet, target: "/api/v1/loans", caller: patron},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"role not allowed"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.request, tt.mockBehavior)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Identity(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		request      request
		mockBehavior func(m env)
		response     response
	}{
		{
			name: "ok. register",
			request: request{
				method: http.MethodPost, target: "/api/v1/register",
				body: `{"name":"Ann","email":"ann@example.com","password":"secret-pass","role":"librarian"}`,
			},
			mockBehavior: func(m env) {
				m.identity.EXPECT().RegisterUser(gomock.Any(), model.UserCreateRequest{
					Name:     "Ann",
					Email:    "ann@example.com",
					Password: "secret-pass",
					Role:     model.RoleUser,
				}).Return(model.User{ID: patronID, Name: "Ann", Email: "ann@example.com", Role: model.RoleUser}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"userId":"8f1a3c52-0b6e-4c6f-9d1e-2a7b5c4d3e21","name":"Ann","email":"ann@example.com","phone":"","address":"","role":"user"}`,
			},
		},
		{
			name: "err. register short password",
			request: request{
				method: http.MethodPost, target: "/api/v1/register",
				body: `{"name":"Ann","email":"ann@example.com","password":"short"}`,
			},
			mockBehavior: func(m env) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'UserCreateRequest.Password' Error:Field validation for 'Password' failed on the 'min' tag"}`,
			},
		},
		{
			name: "err. register taken",
			request: request{
				method: http.MethodPost, target: "/api/v1/register",
				body: `{"name":"Ann","email":"ann@example.com","password":"secret-pass"}`,
			},
			mockBehavior: func(m env) {
				m.identity.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(model.User{}, errs.ErrUserAlreadyExists)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"user with this email already exists"}`,
			},
		},
		{
			name: "ok. authorize",
			request: request{
				method: http.MethodPost, target: "/api/v1/authorize",
				body: `{"email":"ann@example.com","password":"secret-pass"}`,
			},
			mockBehavior: func(m env) {
				m.identity.EXPECT().Login(gomock.Any(), "ann@example.com", "secret-pass").
					Return(model.AuthResponse{AccessToken: "tkn", ExpiresIn: 3600, TokenType: "Bearer"}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"access_token":"tkn","expires_in":3600,"token_type":"Bearer"}`,
			},
		},
		{
			name: "err. authorize",
			request: request{
				method: http.MethodPost, target: "/api/v1/authorize",
				body: `{"email":"ann@example.com","password":"wrong-pass"}`,
			},
			mockBehavior: func(m env) {
				m.identity.EXPECT().Login(gomock.Any(), "ann@example.com", "wrong-pass").
					Return(model.AuthResponse{}, errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"invalid credentials"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.request, tt.mockBehavior)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
