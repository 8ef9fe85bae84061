package http

import (
	"net/http"

	"fundo-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

func (h *AuthHandler) Login(c echo.Context) error {
	var req auth.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", TraceID: traceID(c)})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
			TraceID: traceID(c),
		})
	}
	dto, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}
