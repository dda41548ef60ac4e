package services

import (
	"errors"
	"fmt"
	"time"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
)

// Cart errors handlers need to distinguish.
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrUnknownCoupon   = errors.New("coupon code is not valid")
)

// CartService maintains each user's cart: an ordered item list with
// derived totals, written through to the repository on every mutation.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's current cart state.
func (s *CartService) Get(userID string) (models.CartState, error) {
	return s.cartRepo.Load(userID)
}

// AddItem adds quantity units of a product to the cart, merging into an
// existing line when the product is already present. Non-positive
// quantities are rejected here rather than silently absorbed.
func (s *CartService) AddItem(userID, productID string, quantity int) (models.CartState, error) {
	if quantity <= 0 {
		return models.CartState{}, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return models.CartState{}, fmt.Errorf("cannot add to cart: %w", err)
	}
	if !product.InStock {
		return models.CartState{}, ErrOutOfStock
	}

	state, err := s.cartRepo.Load(userID)
	if err != nil {
		return models.CartState{}, err
	}
	state.AddItem(*product, quantity, time.Now())

	return s.persist(userID, state)
}

// UpdateQuantity sets the quantity for a product; zero or negative input
// removes the line.
func (s *CartService) UpdateQuantity(userID, productID string, quantity int) (models.CartState, error) {
	state, err := s.cartRepo.Load(userID)
	if err != nil {
		return models.CartState{}, err
	}
	state.UpdateQuantity(productID, quantity)

	return s.persist(userID, state)
}

// RemoveItem removes a product's line from the cart; a product not in the
// cart is a no-op.
func (s *CartService) RemoveItem(userID, productID string) (models.CartState, error) {
	state, err := s.cartRepo.Load(userID)
	if err != nil {
		return models.CartState{}, err
	}
	state.RemoveItem(productID)

	return s.persist(userID, state)
}

// Clear resets the cart to the empty state.
func (s *CartService) Clear(userID string) error {
	if err := s.cartRepo.Delete(userID); err != nil {
		return err
	}
	return nil
}

// ApplyCoupon attaches a coupon to the cart. Unknown codes are rejected
// with ErrUnknownCoupon so callers can surface the failure.
func (s *CartService) ApplyCoupon(userID, code string) (models.CartState, error) {
	coupon, ok := models.LookupCoupon(code)
	if !ok {
		return models.CartState{}, ErrUnknownCoupon
	}

	state, err := s.cartRepo.Load(userID)
	if err != nil {
		return models.CartState{}, err
	}
	state.Coupon = &coupon

	return s.persist(userID, state)
}

// RemoveCoupon detaches any applied coupon.
func (s *CartService) RemoveCoupon(userID string) (models.CartState, error) {
	state, err := s.cartRepo.Load(userID)
	if err != nil {
		return models.CartState{}, err
	}
	state.Coupon = nil

	return s.persist(userID, state)
}

// Summary returns the cart together with its price breakdown under the
// applied coupon.
func (s *CartService) Summary(userID string) (models.CartState, models.PriceBreakdown, error) {
	state, err := s.cartRepo.Load(userID)
	if err != nil {
		return models.CartState{}, models.PriceBreakdown{}, err
	}
	return state, state.Breakdown(), nil
}

func (s *CartService) persist(userID string, state models.CartState) (models.CartState, error) {
	if err := s.cartRepo.Save(userID, state); err != nil {
		return models.CartState{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return state, nil
}
