package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wellspring/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripePaymentHandler settles card payments through Stripe PaymentIntents
// and records cash payments as pending pay-on-site invoices.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewPaymentHandler constructs the production payment handler.
func NewPaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		BookingID: req.BookingID,
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    models.PaymentStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "cash":
		return h.processCashPayment(req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *StripePaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)), // minor units
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("clientId", req.ClientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.ClientSecret = pi.ClientSecret
	inv.Status = models.PaymentStatusPaid
	inv.UpdatedAt = time.Now()

	h.logger.Info("Card payment intent created",
		zap.String("invoice", inv.InvoiceID), zap.String("paymentIntent", pi.ID))
	return inv, nil
}

func (h *StripePaymentHandler) processCashPayment(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Cash settles on site; the invoice stays pending until then.
	inv.UpdatedAt = time.Now()

	h.logger.Info("Cash payment recorded",
		zap.String("invoice", inv.InvoiceID), zap.String("booking", req.BookingID))
	return inv, nil
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.BookingID == "" {
		return errors.New("missing booking ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
