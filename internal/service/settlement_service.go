package service

import (
	"context"
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const payProviderName = "newebpay"

// SettlementServiceImpl implements ports.SettlementService: the order state
// machine behind verified payment callbacks.
//
// Serialization of concurrent deliveries is delegated to the storage-level
// conditional update, so the service stays correct across multiple process
// instances without in-memory locks.
type SettlementServiceImpl struct {
	orderRepo ports.OrderRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(orderRepo ports.OrderRepository, log zerolog.Logger) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		orderRepo: orderRepo,
		log:       log,
		now:       time.Now,
	}
}

// ApplyPaymentResult applies one verified payment event. Delivering the
// same event N times yields one transition and N-1 no-ops.
func (s *SettlementServiceImpl) ApplyPaymentResult(ctx context.Context, result *domain.PaymentResult) error {
	order, err := s.orderRepo.GetByOrderNo(ctx, result.OrderNo)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if order == nil {
		// Acknowledged by the caller so the provider stops retrying;
		// flagged here for manual review.
		s.log.Warn().
			Str("order_no", result.OrderNo).
			Str("trade_no", result.TradeNo).
			Msg("payment callback for unknown order")
		return apperror.ErrOrderNotFound()
	}

	next := s.targetStatus(result)

	if order.Status.IsTerminal() {
		if next.IsTerminal() && order.Status != next {
			// e.g. a FAILED callback arriving after PAID was recorded.
			// Terminal state is sticky; never overwritten.
			s.log.Error().
				Str("order_no", order.OrderNo).
				Str("current", string(order.Status)).
				Str("requested", string(next)).
				Msg("conflicting terminal transition ignored")
		}
		return nil
	}

	fields := ports.PaymentFields{
		PayProvider: payProviderName,
		PayTradeNo:  result.TradeNo,
	}
	if next == domain.OrderStatusPaid {
		paidAt := s.now().UTC()
		fields.PaidAt = &paidAt
	}

	applied, err := s.orderRepo.ConditionalUpdateStatus(ctx, order.OrderNo, domain.OrderStatusPending, next, fields)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !applied {
		// A concurrent delivery won the conditional update.
		s.log.Debug().Str("order_no", order.OrderNo).Msg("payment transition already applied")
		return nil
	}

	switch next {
	case domain.OrderStatusPaid:
		s.log.Info().
			Str("order_no", order.OrderNo).
			Str("trade_no", result.TradeNo).
			Int64("amount", result.Amount).
			Msg("order paid")
	case domain.OrderStatusFailed:
		s.log.Warn().
			Str("order_no", order.OrderNo).
			Str("trade_no", result.TradeNo).
			Msg("payment failed")
	default:
		// Non-credit kinds: the gateway reserved a trade but no money moved
		// yet; provider reference recorded, order stays PENDING.
		s.log.Info().
			Str("order_no", order.OrderNo).
			Str("payment_type", result.PaymentType).
			Msg("payment pending later confirmation")
	}
	return nil
}

// targetStatus maps a payment event onto the state machine. Only
// credit-card success is synchronously terminal.
func (s *SettlementServiceImpl) targetStatus(result *domain.PaymentResult) domain.OrderStatus {
	if !result.Succeeded {
		return domain.OrderStatusFailed
	}
	if result.IsCreditCard() {
		return domain.OrderStatusPaid
	}
	return domain.OrderStatusPending
}

// RecordRefund marks a PAID order REFUNDED. Refund initiation is out of
// scope; this only records the instructed state and keeps PAID -> REFUNDED
// the sole legal path.
func (s *SettlementServiceImpl) RecordRefund(ctx context.Context, orderNo string) error {
	order, err := s.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if order == nil {
		return apperror.ErrOrderNotFound()
	}
	if order.Status == domain.OrderStatusRefunded {
		return nil
	}

	applied, err := s.orderRepo.ConditionalUpdateStatus(ctx, orderNo, domain.OrderStatusPaid, domain.OrderStatusRefunded, ports.PaymentFields{
		PayProvider: stringOr(order.PayProvider, payProviderName),
		PayTradeNo:  stringOr(order.PayTradeNo, ""),
		PaidAt:      order.PaidAt,
	})
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !applied {
		return apperror.ErrRefundNotApplicable()
	}

	s.log.Info().Str("order_no", orderNo).Msg("order refunded")
	return nil
}

func stringOr(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}
