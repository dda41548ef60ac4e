package handlers

import (
	"errors"
	"log"
	"strings"

	"khanamart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Post("/coupon", h.HandleApplyCoupon)
	cartRoutes.Delete("/coupon", h.HandleRemoveCoupon)
}

// HandleGetCart returns the cart together with its price breakdown.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := currentUserID(c)
	state, breakdown, err := h.service.Summary(userID)
	if err != nil {
		log.Printf("Error loading cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"cart":    state,
		"pricing": breakdown,
	})
}

// AddItemRequest is the request body for adding a cart item.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := currentUserID(c)
	state, err := h.service.AddItem(userID, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding item %s to cart for user %s: %v", req.ProductID, userID, err)
		switch {
		case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrOutOfStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not add item to cart",
				"error":   err.Error(),
			})
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// UpdateQuantityRequest is the request body for changing a line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets the quantity of a cart line. Zero or negative
// quantities remove the line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	userID := currentUserID(c)
	state, err := h.service.UpdateQuantity(userID, c.Params("productId"), req.Quantity)
	if err != nil {
		log.Printf("Error updating quantity for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(state)
}

// HandleRemoveItem removes a product's line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := currentUserID(c)
	state, err := h.service.RemoveItem(userID, c.Params("productId"))
	if err != nil {
		log.Printf("Error removing item for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(state)
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if err := h.service.Clear(userID); err != nil {
		log.Printf("Error clearing cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}

// ApplyCouponRequest is the request body for applying a coupon code.
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// HandleApplyCoupon applies a coupon to the cart. Unknown codes get a
// visible rejection.
func (h *CartHandler) HandleApplyCoupon(c *fiber.Ctx) error {
	var req ApplyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing apply coupon request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := currentUserID(c)
	state, err := h.service.ApplyCoupon(userID, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCoupon) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Coupon not applied",
				"error":   err.Error(),
			})
		}
		log.Printf("Error applying coupon for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not apply coupon",
			"error":   err.Error(),
		})
	}
	return c.JSON(state)
}

// HandleRemoveCoupon removes any applied coupon from the cart.
func (h *CartHandler) HandleRemoveCoupon(c *fiber.Ctx) error {
	userID := currentUserID(c)
	state, err := h.service.RemoveCoupon(userID)
	if err != nil {
		log.Printf("Error removing coupon for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove coupon",
			"error":   err.Error(),
		})
	}
	return c.JSON(state)
}
