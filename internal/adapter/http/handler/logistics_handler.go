package handler

import (
	"net/http"
	"time"

	"hemstore-gateway/internal/adapter/http/dto"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/pkg/apperror"
	"hemstore-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// relayCookieName carries the store-selection ticket between the picker
// window callback and the checkout page.
const relayCookieName = "hem_cvs_ticket"

// LogisticsHandler handles the convenience-store pickup leg.
type LogisticsHandler struct {
	builder       ports.TradeBuilder
	verifier      ports.CallbackVerifier
	relay         ports.StoreRelay
	clientBaseURL string
	log           zerolog.Logger
}

// NewLogisticsHandler creates a new LogisticsHandler.
func NewLogisticsHandler(builder ports.TradeBuilder, verifier ports.CallbackVerifier, relay ports.StoreRelay, clientBaseURL string, log zerolog.Logger) *LogisticsHandler {
	return &LogisticsHandler{
		builder:       builder,
		verifier:      verifier,
		relay:         relay,
		clientBaseURL: clientBaseURL,
		log:           log,
	}
}

// StartMap handles GET /api/cvs/start: it answers with a self-submitting
// form that opens the provider's store-picker map.
func (h *LogisticsHandler) StartMap(c *gin.Context) {
	var q dto.StoreMapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.LgsType == "" {
		q.LgsType = "C2C"
	}
	if q.ShipType == "" {
		q.ShipType = "1"
	}

	form, err := h.builder.BuildStoreMapForm(c.Request.Context(), ports.StoreMapRequest{
		LogisticsType: q.LgsType,
		ShipType:      q.ShipType,
	})
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

// Callback handles POST /api/cvs/callback: the provider posts the picked
// store into the picker window. The page hands the verified selection to a
// live opener via postMessage; the signed ticket cookie covers the case
// where the opener is gone and the window itself must carry the state back
// to checkout.
func (h *LogisticsHandler) Callback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	sel, err := h.verifier.VerifyStorePick(c.Request.PostForm)
	if err != nil {
		c.String(http.StatusBadRequest, "verification failed")
		return
	}

	ticket, err := h.relay.IssueTicket(*sel, time.Now())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(relayCookieName, ticket, int(h.relay.TTL().Seconds()), "/", "", true, true)

	body, err := renderStoreRelayPage(storeRelayPage{
		Store:       sel,
		Origin:      h.clientBaseURL,
		CheckoutURL: h.clientBaseURL + "/checkout",
	})
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.HTML(c, http.StatusOK, body)
}

// Selected handles GET /api/cvs/selected: the checkout page redeems the
// ticket cookie once and gets the verified selection back as JSON. The
// cookie is cleared either way.
func (h *LogisticsHandler) Selected(c *gin.Context) {
	ticket, err := c.Cookie(relayCookieName)
	if err != nil || ticket == "" {
		response.Error(c, apperror.ErrRelayTicketInvalid())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(relayCookieName, "", -1, "/", "", true, true)

	sel, err := h.relay.RedeemTicket(ticket, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sel)
}
