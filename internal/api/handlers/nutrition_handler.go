package handlers

import (
	"eng-backend/domain"
	"eng-backend/internal/api/presenters"
	"eng-backend/pkg/nutrition"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		CreateFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		CreatePlan(c *fiber.Ctx) error
		UpdatePlan(c *fiber.Ctx) error
		DeletePlan(c *fiber.Ctx) error
		GetPlans(c *fiber.Ctx) error
		GetPlanDetail(c *fiber.Ctx) error
		AddMeal(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		AddMealFoodItem(c *fiber.Ctx) error
		RemoveMealFoodItem(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService, validator *validator.Validate) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
		validator:        validator,
	}
}

func (h *nutritionHandler) CreateFoodItem(c *fiber.Ctx) error {
	req := new(domain.CreateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodItem, err)
	}

	res, err := h.nutritionService.CreateFoodItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodItem)
}

func (h *nutritionHandler) UpdateFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.CreateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	if err := h.nutritionService.UpdateFoodItem(c.Context(), itemID, *req); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *nutritionHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.nutritionService.DeleteFoodItem(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *nutritionHandler) GetFoodItems(c *fiber.Ctx) error {
	search := c.Query("search")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.nutritionService.GetFoodItems(c.Context(), search, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *nutritionHandler) CreatePlan(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	req := new(domain.CreatePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	res, err := h.nutritionService.CreatePlan(c.Context(), coachID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePlan)
}

func (h *nutritionHandler) UpdatePlan(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.UpdatePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlan, err)
	}

	if err := h.nutritionService.UpdatePlan(c.Context(), coachID, planID, *req); err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdatePlan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePlan)
}

func (h *nutritionHandler) DeletePlan(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.nutritionService.DeletePlan(c.Context(), coachID, planID); err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeletePlan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePlan)
}

func (h *nutritionHandler) GetPlans(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)

	res, err := h.nutritionService.GetPlans(c.Context(), coachID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *nutritionHandler) GetPlanDetail(c *fiber.Ctx) error {
	planID := c.Params("id")

	res, err := h.nutritionService.GetPlanDetail(c.Context(), planID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPlanDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlanDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlanDetail)
}

func (h *nutritionHandler) AddMeal(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.AddMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	res, err := h.nutritionService.AddMeal(c.Context(), coachID, planID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMeal)
}

func (h *nutritionHandler) UpdateMeal(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	mealID := c.Params("id")
	req := new(domain.UpdateMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	if err := h.nutritionService.UpdateMeal(c.Context(), coachID, mealID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

func (h *nutritionHandler) DeleteMeal(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	mealID := c.Params("id")

	if err := h.nutritionService.DeleteMeal(c.Context(), coachID, mealID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *nutritionHandler) AddMealFoodItem(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	mealID := c.Params("id")
	req := new(domain.AddMealFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealFood, err)
	}

	res, err := h.nutritionService.AddMealFoodItem(c.Context(), coachID, mealID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMealFood)
}

func (h *nutritionHandler) RemoveMealFoodItem(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.nutritionService.RemoveMealFoodItem(c.Context(), coachID, itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveMealFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMealFood)
}
