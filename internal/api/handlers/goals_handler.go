package handlers

import (
	"eng-backend/domain"
	"eng-backend/internal/api/presenters"
	"eng-backend/pkg/goals"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GoalsHandler interface {
		SetStepGoal(c *fiber.Ctx) error
		LogSteps(c *fiber.Ctx) error
		GetStepStats(c *fiber.Ctx) error
		SetWaterGoal(c *fiber.Ctx) error
		LogWater(c *fiber.Ctx) error
		GetWaterStats(c *fiber.Ctx) error
	}

	goalsHandler struct {
		goalsService goals.GoalsService
		validator    *validator.Validate
	}
)

func NewGoalsHandler(goalsService goals.GoalsService, validator *validator.Validate) GoalsHandler {
	return &goalsHandler{
		goalsService: goalsService,
		validator:    validator,
	}
}

func (h *goalsHandler) SetStepGoal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetStepGoalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetStepGoal, err)
	}

	if err := h.goalsService.SetStepGoal(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetStepGoal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetStepGoal)
}

func (h *goalsHandler) LogSteps(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogStepsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogSteps, err)
	}

	if err := h.goalsService.LogSteps(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogSteps, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogSteps)
}

func (h *goalsHandler) GetStepStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.goalsService.GetStepStats(c.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStepStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStepStats)
}

func (h *goalsHandler) SetWaterGoal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetWaterGoalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetWaterGoal, err)
	}

	if err := h.goalsService.SetWaterGoal(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetWaterGoal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetWaterGoal)
}

func (h *goalsHandler) LogWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogWaterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogWater, err)
	}

	if err := h.goalsService.LogWater(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogWater, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogWater)
}

func (h *goalsHandler) GetWaterStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.goalsService.GetWaterStats(c.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWaterStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWaterStats)
}
