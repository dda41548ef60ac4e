package handlers

import (
	"errors"
	"log"

	"khanamart/internal/models"
	"khanamart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the checkout wizard.
type CheckoutHandler struct {
	service *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/", h.HandleStart)
	checkoutRoutes.Get("/", h.HandleCurrent)
	checkoutRoutes.Post("/address", h.HandleSubmitAddress)
	checkoutRoutes.Post("/payment", h.HandleSelectPayment)
	checkoutRoutes.Post("/back", h.HandleBack)
	checkoutRoutes.Get("/review", h.HandleReview)
	checkoutRoutes.Post("/confirm", h.HandleConfirm)
}

// HandleStart begins a checkout for the user's current cart.
func (h *CheckoutHandler) HandleStart(c *fiber.Ctx) error {
	userID := currentUserID(c)
	session, err := h.service.Start(userID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot start checkout with an empty cart",
			})
		}
		log.Printf("Error starting checkout for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not start checkout",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleCurrent returns the in-progress checkout session.
func (h *CheckoutHandler) HandleCurrent(c *fiber.Ctx) error {
	session, err := h.service.Current(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No checkout in progress",
		})
	}
	return c.JSON(session)
}

// SubmitAddressRequest is the request body for the address step.
type SubmitAddressRequest struct {
	models.DeliveryAddress
	SaveAddress bool `json:"save_address"`
}

// HandleSubmitAddress submits the delivery address and advances to the
// payment step. Required-field and format failures block the transition.
func (h *CheckoutHandler) HandleSubmitAddress(c *fiber.Ctx) error {
	var req SubmitAddressRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing address request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Type == "" {
		req.Type = "home"
	}

	userID := currentUserID(c)
	session, err := h.service.SubmitAddress(userID, req.DeliveryAddress, req.SaveAddress)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Please fill in all required fields",
				"errors":  validationMessages(err),
			})
		}
		return h.checkoutError(c, userID, err)
	}
	return c.JSON(session)
}

// SelectPaymentRequest is the request body for the payment step.
type SelectPaymentRequest struct {
	Method models.PaymentMethod `json:"method"`
}

// HandleSelectPayment records the payment choice and advances to review.
func (h *CheckoutHandler) HandleSelectPayment(c *fiber.Ctx) error {
	var req SelectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	userID := currentUserID(c)
	session, err := h.service.SelectPayment(userID, req.Method)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPayment) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown payment method",
			})
		}
		return h.checkoutError(c, userID, err)
	}
	return c.JSON(session)
}

// HandleBack navigates one step backward in the wizard.
func (h *CheckoutHandler) HandleBack(c *fiber.Ctx) error {
	userID := currentUserID(c)
	session, err := h.service.Back(userID)
	if err != nil {
		return h.checkoutError(c, userID, err)
	}
	return c.JSON(session)
}

// HandleReview returns the full order summary for the review step.
func (h *CheckoutHandler) HandleReview(c *fiber.Ctx) error {
	userID := currentUserID(c)
	summary, err := h.service.Review(userID)
	if err != nil {
		return h.checkoutError(c, userID, err)
	}
	return c.JSON(summary)
}

// HandleConfirm places the order and returns it.
func (h *CheckoutHandler) HandleConfirm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	order, err := h.service.Confirm(userID)
	if err != nil {
		return h.checkoutError(c, userID, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// checkoutError maps checkout service errors onto HTTP statuses.
func (h *CheckoutHandler) checkoutError(c *fiber.Ctx, userID string, err error) error {
	switch {
	case errors.Is(err, services.ErrNoCheckout):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No checkout in progress",
		})
	case errors.Is(err, services.ErrWrongStep), errors.Is(err, services.ErrCheckoutCompleted), errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Operation not allowed in the current checkout step",
			"error":   err.Error(),
		})
	}
	log.Printf("Checkout error for user %s: %v", userID, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Checkout failed",
		"error":   err.Error(),
	})
}
