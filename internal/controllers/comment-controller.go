package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair-system/internal/dto"
	"climate-repair-system/internal/services"
	apperrors "climate-repair-system/pkg/errors"
	"climate-repair-system/pkg/utils"
)

type CommentController struct {
	commentService services.CommentServiceInterface
	logger         *zap.Logger
}

func NewCommentController(commentService services.CommentServiceInterface, logger *zap.Logger) *CommentController {
	return &CommentController{commentService: commentService, logger: logger}
}

func (ctrl *CommentController) ListByRequest(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	comments, err := ctrl.commentService.ListByRequest(c.Request().Context(), *actor, requestID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", comments)
}

func (ctrl *CommentController) Create(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateCommentDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	comment, err := ctrl.commentService.Create(c.Request().Context(), *actor, requestID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Комментарий добавлен", comment)
}
