package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSettlement(t *testing.T) (*SettlementServiceImpl, *mocks.MockOrderRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	s := NewSettlementService(repo, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }
	return s, repo
}

func pendingOrder(orderNo string) *domain.Order {
	return &domain.Order{
		ID:      uuid.New(),
		OrderNo: orderNo,
		Status:  domain.OrderStatusPending,
		Total:   360,
	}
}

func creditSuccess(orderNo string) *domain.PaymentResult {
	return &domain.PaymentResult{
		OrderNo:     orderNo,
		TradeNo:     "TN998",
		PaymentType: "CREDIT_CARD",
		Amount:      360,
		Succeeded:   true,
	}
}

func TestApplyPaymentResult_CreditSuccessMarksPaid(t *testing.T) {
	s, repo := newSettlement(t)

	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(pendingOrder("HEM_A"), nil)
	repo.EXPECT().
		ConditionalUpdateStatus(gomock.Any(), "HEM_A", domain.OrderStatusPending, domain.OrderStatusPaid, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, _ domain.OrderStatus, fields ports.PaymentFields) (bool, error) {
			assert.Equal(t, "newebpay", fields.PayProvider)
			assert.Equal(t, "TN998", fields.PayTradeNo)
			require.NotNil(t, fields.PaidAt)
			assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), *fields.PaidAt)
			return true, nil
		})

	require.NoError(t, s.ApplyPaymentResult(context.Background(), creditSuccess("HEM_A")))
}

func TestApplyPaymentResult_RedeliveryIsNoOp(t *testing.T) {
	s, repo := newSettlement(t)

	// The order still reads PENDING but a concurrent delivery wins the
	// conditional update; the loser must treat it as already applied.
	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(pendingOrder("HEM_A"), nil)
	repo.EXPECT().
		ConditionalUpdateStatus(gomock.Any(), "HEM_A", domain.OrderStatusPending, domain.OrderStatusPaid, gomock.Any()).
		Return(false, nil)

	require.NoError(t, s.ApplyPaymentResult(context.Background(), creditSuccess("HEM_A")))
}

func TestApplyPaymentResult_PaidIsSticky(t *testing.T) {
	s, repo := newSettlement(t)

	paid := pendingOrder("HEM_A")
	paid.Status = domain.OrderStatusPaid
	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(paid, nil)
	// No ConditionalUpdateStatus expectation: a FAILED event after PAID must
	// not touch storage.

	failed := creditSuccess("HEM_A")
	failed.Succeeded = false
	require.NoError(t, s.ApplyPaymentResult(context.Background(), failed))
}

func TestApplyPaymentResult_FailureMarksFailed(t *testing.T) {
	s, repo := newSettlement(t)

	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(pendingOrder("HEM_A"), nil)
	repo.EXPECT().
		ConditionalUpdateStatus(gomock.Any(), "HEM_A", domain.OrderStatusPending, domain.OrderStatusFailed, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, _ domain.OrderStatus, fields ports.PaymentFields) (bool, error) {
			assert.Nil(t, fields.PaidAt)
			return true, nil
		})

	failed := creditSuccess("HEM_A")
	failed.Succeeded = false
	require.NoError(t, s.ApplyPaymentResult(context.Background(), failed))
}

func TestApplyPaymentResult_NonCreditStaysPending(t *testing.T) {
	s, repo := newSettlement(t)

	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(pendingOrder("HEM_A"), nil)
	repo.EXPECT().
		ConditionalUpdateStatus(gomock.Any(), "HEM_A", domain.OrderStatusPending, domain.OrderStatusPending, gomock.Any()).
		Return(true, nil)

	vacc := creditSuccess("HEM_A")
	vacc.PaymentType = "VACC"
	require.NoError(t, s.ApplyPaymentResult(context.Background(), vacc))
}

func TestApplyPaymentResult_UnknownOrder(t *testing.T) {
	s, repo := newSettlement(t)
	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_GHOST").Return(nil, nil)

	err := s.ApplyPaymentResult(context.Background(), creditSuccess("HEM_GHOST"))
	assertAppCode(t, err, "ORD_001")
}

func TestApplyPaymentResult_StorageError(t *testing.T) {
	s, repo := newSettlement(t)
	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(nil, errors.New("connection refused"))

	err := s.ApplyPaymentResult(context.Background(), creditSuccess("HEM_A"))
	assertAppCode(t, err, "SYS_001")
}

func TestRecordRefund_PaidBecomesRefunded(t *testing.T) {
	s, repo := newSettlement(t)

	paidAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	provider := "newebpay"
	tradeNo := "TN998"
	order := pendingOrder("HEM_A")
	order.Status = domain.OrderStatusPaid
	order.PayProvider = &provider
	order.PayTradeNo = &tradeNo
	order.PaidAt = &paidAt

	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(order, nil)
	repo.EXPECT().
		ConditionalUpdateStatus(gomock.Any(), "HEM_A", domain.OrderStatusPaid, domain.OrderStatusRefunded, gomock.Any()).
		Return(true, nil)

	require.NoError(t, s.RecordRefund(context.Background(), "HEM_A"))
}

func TestRecordRefund_RedeliveryIsNoOp(t *testing.T) {
	s, repo := newSettlement(t)

	order := pendingOrder("HEM_A")
	order.Status = domain.OrderStatusRefunded
	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(order, nil)

	require.NoError(t, s.RecordRefund(context.Background(), "HEM_A"))
}

func TestRecordRefund_NotApplicableFromPending(t *testing.T) {
	s, repo := newSettlement(t)

	repo.EXPECT().GetByOrderNo(gomock.Any(), "HEM_A").Return(pendingOrder("HEM_A"), nil)
	repo.EXPECT().
		ConditionalUpdateStatus(gomock.Any(), "HEM_A", domain.OrderStatusPaid, domain.OrderStatusRefunded, gomock.Any()).
		Return(false, nil)

	err := s.RecordRefund(context.Background(), "HEM_A")
	assertAppCode(t, err, "ORD_006")
}
