package api

import (
	"net/http"

	models "HedgeFolio/internal/domain/models"
	"HedgeFolio/internal/service/ratelimit"
	"HedgeFolio/internal/usecase"
	xhttp "HedgeFolio/pkg/http"
	xlogger "HedgeFolio/pkg/logger"

	"github.com/labstack/echo/v4"
)

// OptimizeEchoHandler exposes the portfolio optimizer over HTTP.
type OptimizeEchoHandler struct {
	logger  *xlogger.Logger
	alloc   *usecase.Allocator
	limiter *ratelimit.Limiter
	burst   float64
	rps     float64
}

func NewOptimizeEchoHandler(logger *xlogger.Logger, alloc *usecase.Allocator, burst, rps float64) *OptimizeEchoHandler {
	return &OptimizeEchoHandler{
		logger:  logger,
		alloc:   alloc,
		limiter: ratelimit.New(),
		burst:   burst,
		rps:     rps,
	}
}

func (h *OptimizeEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/optimize", h.Optimize)
	g.GET("/portfolio/:account", h.Latest)
	g.GET("/health", h.Health)
}

func (h *OptimizeEchoHandler) Optimize(c echo.Context) error {
	req := &models.OptimizeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if h.rps > 0 && !h.limiter.Allow("optimize:"+req.Account, h.burst, h.rps) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests,
			[]*xhttp.AppError{xhttp.NewAppError("ERR_RATE_LIMITED", "",
				"too many optimization requests for this account", http.StatusTooManyRequests)})
	}

	res, err := h.alloc.Optimize(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("optimize usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *OptimizeEchoHandler) Latest(c echo.Context) error {
	account := c.Param("account")
	if account == "" {
		return xhttp.BadRequestResponse(c, []*xhttp.AppError{
			xhttp.BadRequestError("account is required"),
		})
	}

	res, err := h.alloc.Latest(c.Request().Context(), account)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *OptimizeEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
