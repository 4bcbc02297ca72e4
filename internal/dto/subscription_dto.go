package dto

import "time"

type SubscriptionStatusResponse struct {
	Tier              string     `json:"tier"`
	Status            string     `json:"status"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
	Quota             QuotaInfo  `json:"quota"`
	LifetimeGenerated int        `json:"lifetime_generated"`
	LifetimeSaved     int        `json:"lifetime_saved"`
}

type ManualUpgradeRequest struct {
	AdminKey string `json:"admin_key" validate:"required"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
	Token       string `json:"token"`
}

// MidtransNotificationRequest mirrors the fields the webhook signature
// check and settlement handling need.
type MidtransNotificationRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	FraudStatus       string `json:"fraud_status"`
}
