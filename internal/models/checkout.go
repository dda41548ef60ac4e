package models

import "time"

// CheckoutStep is the wizard state. The flow is strictly linear:
// address -> payment -> review -> success, with backward navigation
// allowed from payment and review only.
type CheckoutStep string

const (
	StepAddress CheckoutStep = "address"
	StepPayment CheckoutStep = "payment"
	StepReview  CheckoutStep = "review"
	StepSuccess CheckoutStep = "success"
)

// CheckoutSession is the per-user, ephemeral state of an in-progress
// checkout. It lives only as long as the wizard; the confirmed order is
// the durable artifact.
type CheckoutSession struct {
	UserID        string          `json:"user_id"`
	Step          CheckoutStep    `json:"step"`
	Address       DeliveryAddress `json:"address"`
	SaveAddress   bool            `json:"save_address"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	OrderID       string          `json:"order_id,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
}
