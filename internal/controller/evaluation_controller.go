package controller

import (
	"errors"

	"rag-support-be/internal/dto"
	"rag-support-be/internal/pkg/serverutils"
	"rag-support-be/internal/service"
	"rag-support-be/pkg/rag/evaluation"

	"github.com/gofiber/fiber/v2"
)

type IEvaluationController interface {
	RegisterRoutes(r fiber.Router)
	AskQuestion(ctx *fiber.Ctx) error
	EvaluateBatch(ctx *fiber.Ctx) error
}

type evaluationController struct {
	evaluationService service.IEvaluationService
}

func NewEvaluationController(evaluationService service.IEvaluationService) IEvaluationController {
	return &evaluationController{
		evaluationService: evaluationService,
	}
}

func (c *evaluationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rag/v1")
	h.Post("question", c.AskQuestion)
	h.Post("evaluate", c.EvaluateBatch)
}

// AskQuestion answers single-shot and returns the answer together with its
// grading against the retrieved evidence.
func (c *evaluationController) AskQuestion(ctx *fiber.Ctx) error {
	var req dto.AskQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	res, err := c.evaluationService.AskAndEvaluate(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Question answered and graded", res))
}

func (c *evaluationController) EvaluateBatch(ctx *fiber.Ctx) error {
	var req dto.BatchEvaluationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	res, err := c.evaluationService.EvaluateBatch(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, evaluation.ErrEmptyBatch) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Batch evaluated", res))
}
