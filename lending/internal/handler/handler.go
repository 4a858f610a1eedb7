package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/pkg/auth"
	md "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/Astemirdum/lending-service/pkg/validate"
	_ "github.com/Astemirdum/lending-service/swagger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	lendingSvc  LendingService
	identitySvc IdentityService
	authCfg     auth.Config
	now         func() time.Time
	log         *zap.Logger
}

func New(lendingSvc LendingService, identitySvc IdentityService, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc:  lendingSvc,
		identitySvc: identitySvc,
		authCfg:     authCfg,
		now:         time.Now,
		log:         log.Named("handler"),
	}
}

// @title Lending API
// @version 1.0
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/register", h.Register)
	api.POST("/authorize", h.Authorize)

	api = api.Group("", md.JwtAuthentication(h.authCfg))
	librarian := md.RequireRole(auth.RoleLibrarian)

	api.GET("/books", h.SearchBooks)
	api.GET("/books/available", h.AvailableBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.POST("/books", h.AddBook, librarian)
	api.DELETE("/books/:bookId", h.RemoveBook, librarian)

	api.POST("/requests", h.CreateRequest)
	api.GET("/requests/me", h.MyRequests)
	api.GET("/requests", h.PendingRequests, librarian)
	api.POST("/requests/:requestId/approve", h.ApproveRequest, librarian)
	api.POST("/requests/:requestId/reject", h.RejectRequest, librarian)

	api.GET("/loans/me", h.MyLoans)
	api.GET("/loans", h.IssuedBooks, librarian)
	api.POST("/loans/:issueId/return", h.ReturnBook)
	api.POST("/loans/:issueId/renew", h.RenewLoan)

	api.GET("/reports/overdue", h.OverdueReport, librarian)
	api.GET("/reports/books/:bookId/history", h.IssueHistory, librarian)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps a service failure onto the response status.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		code = http.StatusNotFound
	case errs.KindPrecondition, errs.KindConflict:
		code = http.StatusConflict
	case errs.KindInvalid:
		code = http.StatusBadRequest
	case errs.KindUnauthorized:
		code = http.StatusUnauthorized
	}
	return echo.NewHTTPError(code, err.Error())
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

// caller returns the authenticated profile and its user id.
func caller(c echo.Context) (auth.Profile, uuid.UUID, error) {
	p, ok := auth.GetAuthContext(c.Request().Context())
	if !ok {
		return auth.Profile{}, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	id, err := uuid.Parse(p.UserID)
	if err != nil {
		return auth.Profile{}, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
	}
	return p, id, nil
}
