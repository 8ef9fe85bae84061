package http

import (
	"net/http"
	"strconv"
	"strings"

	"fundo-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) GetLoans(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id", TraceID: traceID(c)})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loan.CreateLoanInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", TraceID: traceID(c)})
	}
	req.ApplicantName = strings.TrimSpace(req.ApplicantName)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
			TraceID: traceID(c),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/loans/"+strconv.FormatUint(dto.ID, 10))
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) MakePayment(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id", TraceID: traceID(c)})
	}
	var req loan.PaymentInput
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
	dto, err := h.uc.MakePayment(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}
