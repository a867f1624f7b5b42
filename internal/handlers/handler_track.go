package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jslogistics/jsl-backend/internal/apperrors"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
	"github.com/jslogistics/jsl-backend/internal/dto"
	"github.com/jslogistics/jsl-backend/internal/middleware"
	"github.com/jslogistics/jsl-backend/internal/platform/config"
)

// trackingHandler serves the public, unauthenticated tracking lookup.
type trackingHandler struct {
	trackingService portssvc.TrackingSvcFacade
}

func newTrackingHandler(ts portssvc.TrackingSvcFacade) *trackingHandler {
	return &trackingHandler{trackingService: ts}
}

// registerTrackingRoutes mounts the tracking endpoint outside the auth
// middleware. It is rate limited per IP to slow tracking-number enumeration.
func registerTrackingRoutes(r *gin.Engine, cfg *config.Config, ts portssvc.TrackingSvcFacade) {
	h := newTrackingHandler(ts)

	trackLimiter, err := middleware.NewIPRateLimiter(cfg.TrackingRateLimit)
	if err != nil {
		trackLimiter, _ = middleware.NewIPRateLimiter("30-M")
	}

	r.GET("/api/v1/track/:trackingNumber", middleware.RateLimit(trackLimiter), h.track)
}

// track godoc
// @Summary Track a shipment
// @Description Public lookup by tracking number. Returns shipment progress without any account or billing data.
// @Tags tracking
// @Produce json
// @Param trackingNumber path string true "Tracking number"
// @Success 200 {object} dto.TrackingResponse
// @Failure 404 {object} map[string]string "Tracking number not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to track shipment"
// @Router /track/{trackingNumber} [get]
func (h *trackingHandler) track(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	trackingNumber := c.Param("trackingNumber")

	order, err := h.trackingService.Track(c.Request.Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Malformed and unknown numbers get the same answer.
			c.JSON(http.StatusNotFound, gin.H{"error": "Tracking number not found"})
			return
		}
		logger.Error("Failed to track shipment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track shipment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrackingResponse(order))
}
