package handlers

import (
	"eng-backend/domain"
	"eng-backend/internal/api/presenters"
	"eng-backend/pkg/checkin"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CheckInHandler interface {
		SubmitCheckIn(c *fiber.Ctx) error
		UploadMedia(c *fiber.Ctx) error
		GetMyCheckIns(c *fiber.Ctx) error
		GetAthleteCheckIns(c *fiber.Ctx) error
		ReviewCheckIn(c *fiber.Ctx) error
	}

	checkInHandler struct {
		checkInService checkin.CheckInService
		validator      *validator.Validate
	}
)

func NewCheckInHandler(checkInService checkin.CheckInService, validator *validator.Validate) CheckInHandler {
	return &checkInHandler{
		checkInService: checkInService,
		validator:      validator,
	}
}

func (h *checkInHandler) SubmitCheckIn(c *fiber.Ctx) error {
	athleteID := c.Locals("user_id").(string)
	req := new(domain.SubmitCheckInRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitCheckIn, err)
	}

	res, err := h.checkInService.SubmitCheckIn(c.Context(), athleteID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitCheckIn, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitCheckIn)
}

func (h *checkInHandler) UploadMedia(c *fiber.Ctx) error {
	athleteID := c.Locals("user_id").(string)
	req := new(domain.UploadCheckInMediaRequest)
	req.CheckInID = c.Params("id")

	file, err := c.FormFile("media")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Media = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMedia, err)
	}

	res, err := h.checkInService.UploadMedia(c.Context(), athleteID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrCheckInNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadMedia, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMedia, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadMedia)
}

func (h *checkInHandler) GetMyCheckIns(c *fiber.Ctx) error {
	athleteID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	items, count, err := h.checkInService.GetMyCheckIns(c.Context(), athleteID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCheckIns, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCheckIns)
}

func (h *checkInHandler) GetAthleteCheckIns(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	athleteID := c.Params("id")
	page, limit := parsePagination(c)

	items, count, err := h.checkInService.GetAthleteCheckIns(c.Context(), coachID, athleteID, page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrAthleteNotLinked) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetCheckIns, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCheckIns, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCheckIns)
}

func (h *checkInHandler) ReviewCheckIn(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	checkInID := c.Params("id")
	req := new(domain.ReviewCheckInRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewCheckIn, err)
	}

	if err := h.checkInService.ReviewCheckIn(c.Context(), coachID, checkInID, *req); err != nil {
		if errors.Is(err, domain.ErrCheckInNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedReviewCheckIn, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewCheckIn, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReviewCheckIn)
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	return page, limit
}
