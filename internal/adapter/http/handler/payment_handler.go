package handler

import (
	"errors"
	"net/http"

	"hemstore-gateway/internal/adapter/http/dto"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/pkg/apperror"
	"hemstore-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// notifyAck is the exact acknowledgment body the provider expects; anything
// else triggers redelivery.
const notifyAck = "SUCCESS"

// PaymentHandler handles the payment leg of the gateway integration.
type PaymentHandler struct {
	builder       ports.TradeBuilder
	verifier      ports.CallbackVerifier
	settlement    ports.SettlementService
	clientBaseURL string
	log           zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(builder ports.TradeBuilder, verifier ports.CallbackVerifier, settlement ports.SettlementService, clientBaseURL string, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		builder:       builder,
		verifier:      verifier,
		settlement:    settlement,
		clientBaseURL: clientBaseURL,
		log:           log,
	}
}

// Start handles POST /api/pay/start: it answers with a self-submitting
// form that carries the browser to the provider's hosted payment page.
func (h *PaymentHandler) Start(c *gin.Context) {
	var req dto.PayStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	form, err := h.builder.BuildPaymentForm(c.Request.Context(), req.OrderNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := renderAutoSubmitForm(form)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.HTML(c, http.StatusOK, body)
}

// Notify handles POST /api/pay/notify, the provider's server-to-server
// webhook. Verification failures answer 400 so the provider keeps
// retrying; a verified event is acknowledged with 200 even when the order
// is unknown, because redelivery cannot fix that.
func (h *PaymentHandler) Notify(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	result, err := h.verifier.VerifyPaymentNotify(c.Request.PostForm)
	if err != nil {
		c.String(http.StatusBadRequest, "verification failed")
		return
	}

	if err := h.settlement.ApplyPaymentResult(c.Request.Context(), result); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "ORD_001" {
			c.String(http.StatusOK, notifyAck)
			return
		}
		h.log.Error().Err(err).Str("order_no", result.OrderNo).Msg("settlement failed")
		c.String(http.StatusInternalServerError, "settlement failed")
		return
	}

	c.String(http.StatusOK, notifyAck)
}

// Return handles POST and GET /api/pay/return, the browser coming back
// from the hosted payment page. State was already settled by Notify; this
// hop only decides where to send the customer, so an unverifiable body
// still lands on the storefront instead of an error page.
func (h *PaymentHandler) Return(c *gin.Context) {
	target := h.clientBaseURL + "/orders"

	if c.Request.Method == http.MethodPost {
		if err := c.Request.ParseForm(); err == nil {
			if result, err := h.verifier.VerifyPaymentNotify(c.Request.PostForm); err == nil {
				target = h.clientBaseURL + "/orders/" + result.OrderNo
			} else {
				h.log.Warn().Err(err).Msg("unverifiable return payload, redirecting to order list")
			}
		}
	}

	body, err := renderClientRedirect(target)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.HTML(c, http.StatusOK, body)
}
