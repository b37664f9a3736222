package handlers

import (
	"eng-backend/domain"
	"eng-backend/internal/api/presenters"
	"eng-backend/pkg/program"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProgramHandler interface {
		CreateProgram(c *fiber.Ctx) error
		UpdateProgram(c *fiber.Ctx) error
		DeleteProgram(c *fiber.Ctx) error
		GetPrograms(c *fiber.Ctx) error
		AddWorkout(c *fiber.Ctx) error
		UpdateWorkout(c *fiber.Ctx) error
		DeleteWorkout(c *fiber.Ctx) error
		GetWorkouts(c *fiber.Ctx) error
		AssignPlan(c *fiber.Ctx) error
		GetMyAssignment(c *fiber.Ctx) error
	}

	programHandler struct {
		programService program.ProgramService
		validator      *validator.Validate
	}
)

func NewProgramHandler(programService program.ProgramService, validator *validator.Validate) ProgramHandler {
	return &programHandler{
		programService: programService,
		validator:      validator,
	}
}

func (h *programHandler) CreateProgram(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	req := new(domain.CreateProgramRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProgram, err)
	}

	res, err := h.programService.CreateProgram(c.Context(), coachID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProgram, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProgram)
}

func (h *programHandler) UpdateProgram(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	programID := c.Params("id")
	req := new(domain.UpdateProgramRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProgram, err)
	}

	if err := h.programService.UpdateProgram(c.Context(), coachID, programID, *req); err != nil {
		if errors.Is(err, domain.ErrProgramNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateProgram, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProgram, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProgram)
}

func (h *programHandler) DeleteProgram(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	programID := c.Params("id")

	if err := h.programService.DeleteProgram(c.Context(), coachID, programID); err != nil {
		if errors.Is(err, domain.ErrProgramNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteProgram, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProgram, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProgram)
}

func (h *programHandler) GetPrograms(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)

	res, err := h.programService.GetPrograms(c.Context(), coachID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPrograms, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrograms)
}

func (h *programHandler) AddWorkout(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	programID := c.Params("id")
	req := new(domain.AddWorkoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWorkout, err)
	}

	res, err := h.programService.AddWorkout(c.Context(), coachID, programID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrProgramNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddWorkout, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWorkout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWorkout)
}

func (h *programHandler) UpdateWorkout(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	workoutID := c.Params("id")
	req := new(domain.UpdateWorkoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWorkout, err)
	}

	if err := h.programService.UpdateWorkout(c.Context(), coachID, workoutID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWorkout, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateWorkout)
}

func (h *programHandler) DeleteWorkout(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	workoutID := c.Params("id")

	if err := h.programService.DeleteWorkout(c.Context(), coachID, workoutID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteWorkout, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWorkout)
}

func (h *programHandler) GetWorkouts(c *fiber.Ctx) error {
	programID := c.Params("id")

	res, err := h.programService.GetWorkouts(c.Context(), programID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWorkouts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWorkouts)
}

func (h *programHandler) AssignPlan(c *fiber.Ctx) error {
	coachID := c.Locals("user_id").(string)
	req := new(domain.AssignPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignPlan, err)
	}

	res, err := h.programService.AssignPlan(c.Context(), coachID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAssignPlan)
}

func (h *programHandler) GetMyAssignment(c *fiber.Ctx) error {
	athleteID := c.Locals("user_id").(string)

	res, err := h.programService.GetMyAssignment(c.Context(), athleteID)
	if err != nil {
		if errors.Is(err, domain.ErrAssignmentNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAssignment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAssignment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAssignment)
}
