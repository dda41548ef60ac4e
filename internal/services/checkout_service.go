package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"khanamart/internal/models"
	"khanamart/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// Checkout errors handlers need to distinguish.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoCheckout        = errors.New("no checkout in progress")
	ErrWrongStep         = errors.New("operation not allowed in current checkout step")
	ErrInvalidPayment    = errors.New("unknown payment method")
	ErrCheckoutCompleted = errors.New("checkout already completed")
)

// EventPublisher publishes domain events. Satisfied by the RabbitMQ
// client; a nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CheckoutService drives the four-step checkout wizard:
// address -> payment -> review -> success. Transitions are strictly
// linear; moving forward requires the current step's input to validate,
// and backward navigation is allowed from payment and review only.
type CheckoutService struct {
	sessionRepo repositories.CheckoutSessionRepository
	cartRepo    repositories.CartRepository
	orderRepo   repositories.OrderRepository
	addressRepo repositories.AddressRepository
	publisher   EventPublisher
	validate    *validator.Validate
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	sessionRepo repositories.CheckoutSessionRepository,
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	addressRepo repositories.AddressRepository,
	publisher EventPublisher,
) *CheckoutService {
	return &CheckoutService{
		sessionRepo: sessionRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		publisher:   publisher,
		validate:    validator.New(),
	}
}

// Start begins (or restarts) a checkout for the user. Requires a
// non-empty cart. The payment method defaults to UPI so the payment step
// can never fail validation.
func (s *CheckoutService) Start(userID string) (*models.CheckoutSession, error) {
	cart, err := s.cartRepo.Load(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	session := &models.CheckoutSession{
		UserID:        userID,
		Step:          models.StepAddress,
		PaymentMethod: models.PaymentUPI,
		StartedAt:     time.Now(),
	}
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Current returns the user's in-progress checkout session.
func (s *CheckoutService) Current(userID string) (*models.CheckoutSession, error) {
	session, err := s.sessionRepo.Get(userID)
	if err != nil {
		return nil, ErrNoCheckout
	}
	return session, nil
}

// SubmitAddress validates the delivery address and advances to the
// payment step. Validation failure blocks the transition.
func (s *CheckoutService) SubmitAddress(userID string, address models.DeliveryAddress, saveAddress bool) (*models.CheckoutSession, error) {
	session, err := s.Current(userID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepAddress {
		return nil, ErrWrongStep
	}

	if err := s.validate.Struct(address); err != nil {
		return nil, err
	}

	session.Address = address
	session.SaveAddress = saveAddress
	session.Step = models.StepPayment
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectPayment records the payment choice and advances to review.
func (s *CheckoutService) SelectPayment(userID string, method models.PaymentMethod) (*models.CheckoutSession, error) {
	session, err := s.Current(userID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment {
		return nil, ErrWrongStep
	}
	if !models.ValidPaymentMethod(method) {
		return nil, ErrInvalidPayment
	}

	session.PaymentMethod = method
	session.Step = models.StepReview
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back steps the wizard backward: review -> payment, payment -> address.
// The address and success steps have nowhere to go back to.
func (s *CheckoutService) Back(userID string) (*models.CheckoutSession, error) {
	session, err := s.Current(userID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepPayment:
		session.Step = models.StepAddress
	case models.StepReview:
		session.Step = models.StepPayment
	default:
		return nil, ErrWrongStep
	}

	if err := s.sessionRepo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ReviewSummary is everything the review step presents: the collected
// inputs, the cart lines, and the derived pricing.
type ReviewSummary struct {
	Session   *models.CheckoutSession `json:"session"`
	Items     []models.CartItem       `json:"items"`
	Coupon    *models.AppliedCoupon   `json:"coupon,omitempty"`
	Breakdown models.PriceBreakdown   `json:"pricing"`
}

// Review assembles the order summary for the review step.
func (s *CheckoutService) Review(userID string) (*ReviewSummary, error) {
	session, err := s.Current(userID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepReview {
		return nil, ErrWrongStep
	}

	cart, err := s.cartRepo.Load(userID)
	if err != nil {
		return nil, err
	}
	return &ReviewSummary{
		Session:   session,
		Items:     cart.Items,
		Coupon:    cart.Coupon,
		Breakdown: cart.Breakdown(),
	}, nil
}

// Confirm places the order: it freezes the cart lines and pricing into an
// order record, clears the cart, and moves the wizard to its terminal
// success step. Only valid from review.
func (s *CheckoutService) Confirm(userID string) (*models.Order, error) {
	session, err := s.Current(userID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepSuccess {
		return nil, ErrCheckoutCompleted
	}
	if session.Step != models.StepReview {
		return nil, ErrWrongStep
	}

	cart, err := s.cartRepo.Load(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		})
	}

	order := &models.Order{
		ID:            fmt.Sprintf("KM%d", now.UnixMilli()),
		UserID:        userID,
		Items:         items,
		Address:       session.Address,
		PaymentMethod: session.PaymentMethod,
		Pricing:       cart.Breakdown(),
		Status:        models.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if session.SaveAddress {
		saved := &models.SavedAddress{
			UserID:          userID,
			DeliveryAddress: session.Address,
		}
		if err := s.addressRepo.Create(saved); err != nil {
			log.Printf("Warning: failed to save address for user %s: %v", userID, err)
		}
	}

	if err := s.cartRepo.Delete(userID); err != nil {
		log.Printf("Warning: failed to clear cart for user %s after order %s: %v", userID, order.ID, err)
	}

	session.Step = models.StepSuccess
	session.OrderID = order.ID
	if err := s.sessionRepo.Save(session); err != nil {
		log.Printf("Warning: failed to finalize checkout session for user %s: %v", userID, err)
	}

	s.publishOrderCreated(order)
	return order, nil
}

// publishOrderCreated emits the order.created event. Best-effort: a
// publish failure never fails the order.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.Pricing.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for %s: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for %s: %v", order.ID, err)
		return
	}
	log.Printf("Published order created event for %s", order.ID)
}
