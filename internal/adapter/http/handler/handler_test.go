package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hemstore-gateway/internal/adapter/http/dto"
	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/internal/core/ports/mocks"
	"hemstore-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, h gin.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)
	return w
}

func postForm(t *testing.T, h gin.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h(c)
	return w
}

// --- Order Handler ---

func TestOrderCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrders := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrders)

	mockOrders.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req ports.CreateOrderRequest) (*domain.Order, error) {
			assert.Len(t, req.Items, 1)
			assert.Equal(t, domain.ShipMethodCVS, req.ShipMethod)
			return &domain.Order{
				ID:      uuid.New(),
				OrderNo: "HEM_20250101_AB12CD",
				Status:  domain.OrderStatusPending,
				Total:   420,
			}, nil
		})

	w := postJSON(t, h.Create, "/api/orders", dto.CreateOrderRequest{
		Items:      []dto.CartItem{{ProductID: "p-1", Name: "Braided cable", Price: 360, Qty: 1}},
		ShipMethod: "CVS",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "HEM_20250101_AB12CD", data["order_no"])
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, float64(420), data["total"])
}

func TestOrderCreate_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrders := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrders)

	// No items => binding error, service never called.
	w := postJSON(t, h.Create, "/api/orders", dto.CreateOrderRequest{ShipMethod: "CVS"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderLookup_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrders := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrders)

	mockOrders.EXPECT().Lookup(gomock.Any(), "HEM_GHOST", "x@example.com").
		Return(nil, apperror.ErrLookupMismatch())

	w := postJSON(t, h.Lookup, "/api/orders/lookup", dto.LookupOrderRequest{
		OrderNo: "HEM_GHOST",
		Contact: "x@example.com",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ORD_004", resp["error_code"])
}

func TestOrderGet_InvalidOrderNo(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewOrderHandler(mocks.NewMockOrderService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/orders/x", nil)
	c.Params = gin.Params{{Key: "orderNo", Value: "not/a/valid/order/number/at/all"}}
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Payment Handler ---

func newPaymentHandler(ctrl *gomock.Controller) (*PaymentHandler, *mocks.MockTradeBuilder, *mocks.MockCallbackVerifier, *mocks.MockSettlementService) {
	builder := mocks.NewMockTradeBuilder(ctrl)
	verifier := mocks.NewMockCallbackVerifier(ctrl)
	settlement := mocks.NewMockSettlementService(ctrl)
	h := NewPaymentHandler(builder, verifier, settlement, "https://shop.example.com", zerolog.Nop())
	return h, builder, verifier, settlement
}

func TestPayStart_RendersAutoSubmitForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, builder, _, _ := newPaymentHandler(ctrl)

	builder.EXPECT().BuildPaymentForm(gomock.Any(), "HEM_20250101_AB12CD").Return(&ports.GatewayForm{
		Action: "https://ccore.newebpay.com/MPG/mpg_gateway",
		Fields: []ports.FormField{
			{Name: "MerchantID", Value: "MS1598253"},
			{Name: "TradeInfo", Value: "deadbeef"},
			{Name: "TradeSha", Value: "CAFE"},
			{Name: "Version", Value: "2.0"},
		},
	}, nil)

	w := postJSON(t, h.Start, "/api/pay/start", dto.PayStartRequest{OrderNo: "HEM_20250101_AB12CD"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, `action="https://ccore.newebpay.com/MPG/mpg_gateway"`)
	assert.Contains(t, body, `name="TradeInfo" value="deadbeef"`)
	assert.Contains(t, body, "document.forms[0].submit()")
}

func TestPayStart_AlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, builder, _, _ := newPaymentHandler(ctrl)

	builder.EXPECT().BuildPaymentForm(gomock.Any(), "HEM_PAID").Return(nil, apperror.ErrOrderAlreadyPaid())

	w := postJSON(t, h.Start, "/api/pay/start", dto.PayStartRequest{OrderNo: "HEM_PAID"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPayNotify_VerifiedAndAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, verifier, settlement := newPaymentHandler(ctrl)

	result := &domain.PaymentResult{OrderNo: "HEM_A", TradeNo: "TN998", PaymentType: "CREDIT_CARD", Amount: 360, Succeeded: true}
	verifier.EXPECT().VerifyPaymentNotify(gomock.Any()).Return(result, nil)
	settlement.EXPECT().ApplyPaymentResult(gomock.Any(), result).Return(nil)

	form := url.Values{"TradeInfo": {"aa"}, "TradeSha": {"BB"}}
	w := postForm(t, h.Notify, "/api/pay/notify", form)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUCCESS", w.Body.String())
}

func TestPayNotify_VerificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, verifier, _ := newPaymentHandler(ctrl)

	verifier.EXPECT().VerifyPaymentNotify(gomock.Any()).Return(nil, apperror.ErrSignatureMismatch())

	w := postForm(t, h.Notify, "/api/pay/notify", url.Values{"TradeInfo": {"aa"}, "TradeSha": {"BB"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEqual(t, "SUCCESS", w.Body.String())
}

func TestPayNotify_UnknownOrderStillAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, verifier, settlement := newPaymentHandler(ctrl)

	result := &domain.PaymentResult{OrderNo: "HEM_GHOST", Succeeded: true, PaymentType: "CREDIT_CARD"}
	verifier.EXPECT().VerifyPaymentNotify(gomock.Any()).Return(result, nil)
	settlement.EXPECT().ApplyPaymentResult(gomock.Any(), result).Return(apperror.ErrOrderNotFound())

	w := postForm(t, h.Notify, "/api/pay/notify", url.Values{"TradeInfo": {"aa"}, "TradeSha": {"BB"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUCCESS", w.Body.String())
}

func TestPayReturn_RedirectsToOrderPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, verifier, _ := newPaymentHandler(ctrl)

	verifier.EXPECT().VerifyPaymentNotify(gomock.Any()).
		Return(&domain.PaymentResult{OrderNo: "HEM_20250101_AB12CD", Succeeded: true}, nil)

	w := postForm(t, h.Return, "/api/pay/return", url.Values{"TradeInfo": {"aa"}, "TradeSha": {"BB"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://shop.example.com/orders/HEM_20250101_AB12CD")
}

func TestPayReturn_UnverifiableStillLandsOnStorefront(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, verifier, _ := newPaymentHandler(ctrl)

	verifier.EXPECT().VerifyPaymentNotify(gomock.Any()).Return(nil, apperror.ErrSignatureMismatch())

	w := postForm(t, h.Return, "/api/pay/return", url.Values{"TradeInfo": {"aa"}, "TradeSha": {"BB"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://shop.example.com/orders")
}

// --- Logistics Handler ---

func newLogisticsHandler(ctrl *gomock.Controller) (*LogisticsHandler, *mocks.MockTradeBuilder, *mocks.MockCallbackVerifier, *mocks.MockStoreRelay) {
	builder := mocks.NewMockTradeBuilder(ctrl)
	verifier := mocks.NewMockCallbackVerifier(ctrl)
	relay := mocks.NewMockStoreRelay(ctrl)
	h := NewLogisticsHandler(builder, verifier, relay, "https://shop.example.com", zerolog.Nop())
	return h, builder, verifier, relay
}

func TestCVSStart_DefaultsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, builder, _, _ := newLogisticsHandler(ctrl)

	builder.EXPECT().BuildStoreMapForm(gomock.Any(), ports.StoreMapRequest{LogisticsType: "C2C", ShipType: "1"}).
		Return(&ports.GatewayForm{
			Action: "https://ccore.newebpay.com/API/Logistic/storeMap",
			Fields: []ports.FormField{{Name: "UID_", Value: "LG7731204"}},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cvs/start", nil)
	h.StartMap(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="UID_" value="LG7731204"`)
}

func TestCVSCallback_SetsTicketCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, verifier, relay := newLogisticsHandler(ctrl)

	sel := &domain.StoreSelection{StoreID: "935392", StoreName: "7-ELEVEN Songfu", StoreAddress: "No.1 Songshou Rd"}
	verifier.EXPECT().VerifyStorePick(gomock.Any()).Return(sel, nil)
	relay.EXPECT().IssueTicket(*sel, gomock.Any()).Return("signed-ticket", nil)
	relay.EXPECT().TTL().Return(5 * time.Minute)

	form := url.Values{"Status": {"SUCCESS"}, "EncryptData": {"aa"}, "HashData": {"BB"}}
	w := postForm(t, h.Callback, "/api/cvs/callback", form)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, relayCookieName, cookies[0].Name)
	assert.Equal(t, "signed-ticket", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	body := w.Body.String()
	assert.Contains(t, body, "postMessage")
	assert.Contains(t, body, "935392")
	assert.Contains(t, body, "https://shop.example.com/checkout")
}

func TestCVSCallback_VerificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, verifier, _ := newLogisticsHandler(ctrl)

	verifier.EXPECT().VerifyStorePick(gomock.Any()).Return(nil, apperror.ErrSignatureMismatch())

	w := postForm(t, h.Callback, "/api/cvs/callback", url.Values{"EncryptData": {"aa"}, "HashData": {"BB"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCVSSelected_RedeemsAndClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, _, relay := newLogisticsHandler(ctrl)

	sel := &domain.StoreSelection{StoreID: "935392", StoreName: "7-ELEVEN Songfu"}
	relay.EXPECT().RedeemTicket("signed-ticket", gomock.Any()).Return(sel, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cvs/selected", nil)
	c.Request.AddCookie(&http.Cookie{Name: relayCookieName, Value: "signed-ticket"})
	h.Selected(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "935392", data["store_id"])

	// Cookie cleared regardless of outcome.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, relayCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestCVSSelected_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, _, _ := newLogisticsHandler(ctrl)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cvs/selected", nil)
	h.Selected(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCVSSelected_ExpiredTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, _, relay := newLogisticsHandler(ctrl)

	relay.EXPECT().RedeemTicket("stale", gomock.Any()).Return(nil, apperror.ErrRelayTicketInvalid())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cvs/selected", nil)
	c.Request.AddCookie(&http.Cookie{Name: relayCookieName, Value: "stale"})
	h.Selected(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Diagnostics ---

func TestGatewayDiag_MasksCredentials(t *testing.T) {
	h := GatewayDiag(DiagConfig{
		MPGURL:         "https://ccore.newebpay.com/MPG/mpg_gateway",
		CipherEncoding: domain.EncodingHex,
		FieldSuffix:    "_",
		Payment: domain.CredentialProfile{
			Purpose:    domain.PurposePayment,
			Identifier: "MS1598253",
			CipherKey:  "Fs5cX0qL9hN2tUvYwZaB1dE3gH6jKmPr",
			CipherIV:   "Qx8sW4eD7cV1bN5m",
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/gateway/diag", nil)
	h(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "Fs5cX0qL9hN2tUvYwZaB1dE3gH6jKmPr")
	assert.Contains(t, body, "Fs5c***(32)")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	payment := data["payment"].(map[string]any)
	assert.True(t, payment["configured"].(bool))
	assert.True(t, payment["valid"].(bool))
	logistics := data["logistics"].(map[string]any)
	assert.False(t, logistics["configured"].(bool))
}
