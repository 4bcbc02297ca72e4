package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/pkg/quota"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionStatusFreeTier(t *testing.T) {
	uow := newFakeUow()
	user := freeUser(2)
	uow.userRepo.user = user
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	res, err := svc.Status(context.Background(), user.Id)

	require.NoError(t, err)
	assert.Equal(t, "free", res.Tier)
	assert.Equal(t, 2, res.Quota.CurrentCount)
	assert.Equal(t, 1, res.Quota.Remaining)
	assert.Equal(t, quota.FreeTierLimit, res.Quota.Limit)
}

func TestSubscriptionStatusUnknownUser(t *testing.T) {
	uow := newFakeUow()
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	_, err := svc.Status(context.Background(), uuid.New())

	var notFound *dto.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUpgradeManualRejectsWrongKey(t *testing.T) {
	uow := newFakeUow()
	uow.userRepo.user = freeUser(0)
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	_, err := svc.UpgradeManual(context.Background(), uow.userRepo.user.Id, "wrong")

	var unauthorized *dto.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Empty(t, uow.userRepo.subscriptionsSet)
}

func TestUpgradeManualRejectsWhenKeyUnconfigured(t *testing.T) {
	uow := newFakeUow()
	uow.userRepo.user = freeUser(0)
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "", nil)

	// An empty configured key must never match, even an empty submission.
	_, err := svc.UpgradeManual(context.Background(), uow.userRepo.user.Id, "")

	var unauthorized *dto.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
}

func TestUpgradeManualUpgradesToPaid(t *testing.T) {
	uow := newFakeUow()
	user := freeUser(3)
	uow.userRepo.user = user
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	res, err := svc.UpgradeManual(context.Background(), user.Id, "secret")

	require.NoError(t, err)
	assert.Equal(t, "paid", res.Tier)
	assert.Equal(t, "active", res.Status)
	assert.Equal(t, quota.Unlimited, res.Quota.Remaining)
	assert.True(t, res.Quota.CanGenerate, "the paid tier ignores the exhausted free counter")
	require.Len(t, uow.userRepo.subscriptionsSet, 1)
	require.NotNil(t, res.SubscriptionEnd)
	assert.True(t, res.SubscriptionEnd.After(*res.SubscriptionStart))
}

func midtransSignature(orderId, statusCode, grossAmount, serverKey string) string {
	return fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+serverKey)))
}

func pendingOrder(userId uuid.UUID) *entity.SubscriptionOrder {
	return &entity.SubscriptionOrder{
		Id:     uuid.New(),
		UserId: userId,
		Amount: PaidTierPrice,
		Status: entity.OrderStatusPending,
	}
}

func TestHandleNotificationRejectsBadSignature(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")
	uow := newFakeUow()
	user := freeUser(0)
	uow.userRepo.user = user
	uow.orderRepo.order = pendingOrder(user.Id)
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	err := svc.HandleNotification(context.Background(), &dto.MidtransNotificationRequest{
		OrderId:           uow.orderRepo.order.Id.String(),
		StatusCode:        "200",
		GrossAmount:       "99000.00",
		TransactionStatus: "settlement",
		SignatureKey:      "forged",
	})

	require.Error(t, err)
	assert.Empty(t, uow.orderRepo.statusUpdates)
	assert.Empty(t, uow.userRepo.subscriptionsSet)
}

func TestHandleNotificationSettlementUpgrades(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")
	uow := newFakeUow()
	user := freeUser(0)
	uow.userRepo.user = user
	order := pendingOrder(user.Id)
	uow.orderRepo.order = order
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	err := svc.HandleNotification(context.Background(), &dto.MidtransNotificationRequest{
		OrderId:           order.Id.String(),
		StatusCode:        "200",
		GrossAmount:       "99000.00",
		TransactionStatus: "settlement",
		SignatureKey:      midtransSignature(order.Id.String(), "200", "99000.00", "sk-test"),
	})

	require.NoError(t, err)
	require.Len(t, uow.orderRepo.statusUpdates, 1)
	assert.Equal(t, entity.OrderStatusPaid, uow.orderRepo.statusUpdates[0])
	require.Len(t, uow.userRepo.subscriptionsSet, 1)
	assert.True(t, user.IsPaid())
}

func TestHandleNotificationReplayIsIdempotent(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")
	uow := newFakeUow()
	user := paidUser()
	uow.userRepo.user = user
	order := pendingOrder(user.Id)
	order.Status = entity.OrderStatusPaid
	uow.orderRepo.order = order
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	err := svc.HandleNotification(context.Background(), &dto.MidtransNotificationRequest{
		OrderId:           order.Id.String(),
		StatusCode:        "200",
		GrossAmount:       "99000.00",
		TransactionStatus: "settlement",
		SignatureKey:      midtransSignature(order.Id.String(), "200", "99000.00", "sk-test"),
	})

	require.NoError(t, err)
	assert.Empty(t, uow.orderRepo.statusUpdates, "a replayed settlement must not rewrite the order")
	assert.Empty(t, uow.userRepo.subscriptionsSet, "a replayed settlement must not re-upgrade")
}

func TestHandleNotificationFraudChallengeFailsOrder(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")
	uow := newFakeUow()
	user := freeUser(0)
	uow.userRepo.user = user
	order := pendingOrder(user.Id)
	uow.orderRepo.order = order
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	err := svc.HandleNotification(context.Background(), &dto.MidtransNotificationRequest{
		OrderId:           order.Id.String(),
		StatusCode:        "200",
		GrossAmount:       "99000.00",
		TransactionStatus: "capture",
		FraudStatus:       "challenge",
		SignatureKey:      midtransSignature(order.Id.String(), "200", "99000.00", "sk-test"),
	})

	require.NoError(t, err)
	require.Len(t, uow.orderRepo.statusUpdates, 1)
	assert.Equal(t, entity.OrderStatusFailed, uow.orderRepo.statusUpdates[0])
	assert.Empty(t, uow.userRepo.subscriptionsSet)
}

func TestHandleNotificationExpireMarksFailed(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")
	uow := newFakeUow()
	user := freeUser(0)
	uow.userRepo.user = user
	order := pendingOrder(user.Id)
	uow.orderRepo.order = order
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	err := svc.HandleNotification(context.Background(), &dto.MidtransNotificationRequest{
		OrderId:           order.Id.String(),
		StatusCode:        "407",
		GrossAmount:       "99000.00",
		TransactionStatus: "expire",
		SignatureKey:      midtransSignature(order.Id.String(), "407", "99000.00", "sk-test"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusFailed, order.Status)
}

func TestHandleNotificationPendingLeavesOrderUntouched(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")
	uow := newFakeUow()
	user := freeUser(0)
	uow.userRepo.user = user
	order := pendingOrder(user.Id)
	uow.orderRepo.order = order
	svc := NewSubscriptionService(&fakeFactory{uow: uow}, "secret", nil)

	err := svc.HandleNotification(context.Background(), &dto.MidtransNotificationRequest{
		OrderId:           order.Id.String(),
		StatusCode:        "201",
		GrossAmount:       "99000.00",
		TransactionStatus: "pending",
		SignatureKey:      midtransSignature(order.Id.String(), "201", "99000.00", "sk-test"),
	})

	require.NoError(t, err)
	assert.Empty(t, uow.orderRepo.statusUpdates)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}
