package handlers

import (
	"eng-backend/domain"
	"eng-backend/internal/api/presenters"
	"eng-backend/pkg/metrics"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MetricsHandler interface {
		LogMetric(c *fiber.Ctx) error
		GetMetrics(c *fiber.Ctx) error
		DeleteMetric(c *fiber.Ctx) error
		ComputeTDEE(c *fiber.Ctx) error
	}

	metricsHandler struct {
		metricsService metrics.MetricsService
		validator      *validator.Validate
	}
)

func NewMetricsHandler(metricsService metrics.MetricsService, validator *validator.Validate) MetricsHandler {
	return &metricsHandler{
		metricsService: metricsService,
		validator:      validator,
	}
}

func (h *metricsHandler) LogMetric(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogMetricRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMetric, err)
	}

	res, err := h.metricsService.LogMetric(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMetric, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMetric)
}

func (h *metricsHandler) GetMetrics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.metricsService.GetMetrics(c.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMetrics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMetrics)
}

func (h *metricsHandler) DeleteMetric(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	metricID := c.Params("id")

	if err := h.metricsService.DeleteMetric(c.Context(), userID, metricID); err != nil {
		if errors.Is(err, domain.ErrMetricNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMetric, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMetric, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMetric)
}

func (h *metricsHandler) ComputeTDEE(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.metricsService.ComputeTDEE(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileIncomplete) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedComputeTDEE, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedComputeTDEE, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessComputeTDEE)
}
