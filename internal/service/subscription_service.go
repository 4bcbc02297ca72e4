package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"os"
	"time"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"
	"crowlands-be/internal/repository/unitofwork"
	"crowlands-be/pkg/events"
	pktNats "crowlands-be/pkg/nats"
	"crowlands-be/pkg/quota"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaidTierPrice is the one-off upgrade price in the smallest currency unit.
const PaidTierPrice int64 = 99000

type ISubscriptionService interface {
	Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	UpgradeManual(ctx context.Context, userId uuid.UUID, adminKey string) (*dto.SubscriptionStatusResponse, error)
	Checkout(ctx context.Context, userId uuid.UUID) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransNotificationRequest) error
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	adminKey       string
	eventPublisher *pktNats.Publisher
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, adminKey string, eventPublisher *pktNats.Publisher) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		adminKey:       adminKey,
		eventPublisher: eventPublisher,
	}
}

func statusResponse(user *entity.User) *dto.SubscriptionStatusResponse {
	st := quota.Evaluate(user)
	return &dto.SubscriptionStatusResponse{
		Tier:              string(user.SubscriptionTier),
		Status:            string(user.SubscriptionStatus),
		SubscriptionStart: user.SubscriptionStart,
		SubscriptionEnd:   user.SubscriptionEnd,
		Quota: dto.QuotaInfo{
			CanGenerate:  st.CanGenerate,
			Remaining:    st.Remaining,
			Limit:        st.Limit,
			CurrentCount: st.CurrentCount,
		},
		LifetimeGenerated: user.LifetimeGenerated,
		LifetimeSaved:     user.LifetimeSaved,
	}
}

func (s *subscriptionService) Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user"}
	}
	return statusResponse(user), nil
}

func (s *subscriptionService) upgrade(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, source string) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user"}
	}

	start := time.Now()
	end := start.AddDate(0, 1, 0)
	if err := uow.UserRepository().SetSubscription(ctx, user.Id,
		entity.TierPaid, entity.SubscriptionStatusActive, &start, &end); err != nil {
		return nil, err
	}
	user.SubscriptionTier = entity.TierPaid
	user.SubscriptionStatus = entity.SubscriptionStatusActive
	user.SubscriptionStart = &start
	user.SubscriptionEnd = &end

	if err := s.eventPublisher.Publish(ctx, events.NewSubscriptionUpgraded(user.Id.String(), source)); err != nil {
		fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_UPGRADED event: %v\n", err)
	}

	return user, nil
}

// UpgradeManual is the testing-only backdoor guarded by the admin key.
func (s *subscriptionService) UpgradeManual(ctx context.Context, userId uuid.UUID, adminKey string) (*dto.SubscriptionStatusResponse, error) {
	if s.adminKey == "" || subtle.ConstantTimeCompare([]byte(adminKey), []byte(s.adminKey)) != 1 {
		return nil, &dto.UnauthorizedError{Message: "invalid admin key"}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.upgrade(ctx, uow, userId, "manual")
	if err != nil {
		return nil, err
	}
	return statusResponse(user), nil
}

func (s *subscriptionService) Checkout(ctx context.Context, userId uuid.UUID) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user"}
	}

	order := &entity.SubscriptionOrder{
		Id:        uuid.New(),
		UserId:    user.Id,
		Amount:    PaidTierPrice,
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.SubscriptionOrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	// Midtrans calls stay outside any DB transaction
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.Id.String(),
			GrossAmt: order.Amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "crowlands-paid-tier",
				Price: order.Amount,
				Qty:   1,
				Name:  "The Crowlands - Paid Tier (1 month)",
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.CheckoutResponse{
		OrderId:     order.Id.String(),
		RedirectURL: snapResp.RedirectURL,
		Token:       snapResp.Token,
	}, nil
}

func (s *subscriptionService) HandleNotification(ctx context.Context, req *dto.MidtransNotificationRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}

	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return fmt.Errorf("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.SubscriptionOrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return &dto.NotFoundError{Resource: "order"}
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			return uow.SubscriptionOrderRepository().UpdateStatus(ctx, order.Id, entity.OrderStatusFailed)
		}
		if order.Status == entity.OrderStatusPaid {
			return nil // idempotent replay
		}
		if err := uow.SubscriptionOrderRepository().UpdateStatus(ctx, order.Id, entity.OrderStatusPaid); err != nil {
			return err
		}
		_, err := s.upgrade(ctx, uow, order.UserId, "checkout")
		return err
	case "deny", "cancel", "expire", "failure":
		return uow.SubscriptionOrderRepository().UpdateStatus(ctx, order.Id, entity.OrderStatusFailed)
	default:
		// pending and other transitional states leave the order untouched
		return nil
	}
}
