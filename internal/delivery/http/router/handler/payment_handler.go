package handler

import (
	"log/slog"
	"net/http"

	"harmony/internal/delivery/http/middleware"
	"harmony/internal/delivery/http/response"
	"harmony/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for the membership payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type recordPaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Package       string  `json:"package" validate:"required"`
	TransactionID string  `json:"transactionId" validate:"required"`
}

// CreateIntent opens a payment with the processor.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreatePaymentIntent(c.Request().Context(), &usecase.CreatePaymentIntentInput{Price: req.Price})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// RecordPayment persists a completed purchase and upgrades the caller's tier.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	payment, err := h.uc.RecordPayment(c.Request().Context(), caller, &usecase.RecordPaymentInput{
		Amount:        req.Amount,
		Package:       req.Package,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}

// History returns the caller's payment history.
func (h *PaymentHandler) History(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	payments, err := h.uc.History(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}
