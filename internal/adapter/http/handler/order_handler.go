package handler

import (
	"hemstore-gateway/internal/adapter/http/dto"
	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/pkg/apperror"
	"hemstore-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles storefront order endpoints.
type OrderHandler struct {
	orderSvc ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	order, err := h.orderSvc.Create(c.Request.Context(), req.ToPort())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateOrderResponse{
		OrderNo: order.OrderNo,
		Status:  string(order.Status),
		Total:   order.Total,
	})
}

// Lookup handles POST /api/orders/lookup.
func (h *OrderHandler) Lookup(c *gin.Context) {
	var req dto.LookupOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	summary, err := h.orderSvc.Lookup(c.Request.Context(), req.OrderNo, req.Contact)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Get handles GET /api/orders/:orderNo.
func (h *OrderHandler) Get(c *gin.Context) {
	orderNo := c.Param("orderNo")
	if !domain.ValidOrderNo(orderNo) {
		response.Error(c, apperror.ErrInvalidOrderNo())
		return
	}

	summary, err := h.orderSvc.GetByOrderNo(c.Request.Context(), orderNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}
