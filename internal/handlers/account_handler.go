package handlers

import (
	"log"
	"strings"

	"khanamart/internal/models"
	"khanamart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for profile, saved addresses,
// favorites, and settings.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleGetProfile)
	router.Put("/profile", h.HandleUpdateProfile)

	addressRoutes := router.Group("/addresses")
	addressRoutes.Get("/", h.HandleListAddresses)
	addressRoutes.Post("/", h.HandleAddAddress)
	addressRoutes.Put("/:id", h.HandleUpdateAddress)
	addressRoutes.Delete("/:id", h.HandleDeleteAddress)

	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleListFavorites)
	favoriteRoutes.Post("/", h.HandleAddFavorite)
	favoriteRoutes.Delete("/:productId", h.HandleRemoveFavorite)

	router.Get("/settings", h.HandleGetSettings)
	router.Put("/settings", h.HandleUpdateSettings)
}

// HandleGetProfile returns the authenticated user's profile.
func (h *AccountHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)
	user, err := h.service.GetProfile(userID)
	if err != nil {
		log.Printf("Error getting profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// UpdateProfileRequest is the request body for profile updates.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
}

// HandleUpdateProfile updates the user's name and phone.
func (h *AccountHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
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
	user, err := h.service.UpdateProfile(userID, req.Name, req.Phone)
	if err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleListAddresses returns the user's saved addresses.
func (h *AccountHandler) HandleListAddresses(c *fiber.Ctx) error {
	userID := currentUserID(c)
	addresses, err := h.service.ListAddresses(userID)
	if err != nil {
		log.Printf("Error listing addresses for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load addresses",
			"error":   err.Error(),
		})
	}
	return c.JSON(addresses)
}

// HandleAddAddress saves a new address on the account.
func (h *AccountHandler) HandleAddAddress(c *fiber.Ctx) error {
	var address models.DeliveryAddress
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if address.Type == "" {
		address.Type = "home"
	}

	if err := h.validate.Struct(address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := currentUserID(c)
	saved, err := h.service.AddAddress(userID, address)
	if err != nil {
		log.Printf("Error adding address for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save address",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleUpdateAddress replaces a saved address.
func (h *AccountHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	var address models.DeliveryAddress
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if address.Type == "" {
		address.Type = "home"
	}

	if err := h.validate.Struct(address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := currentUserID(c)
	saved, err := h.service.UpdateAddress(userID, c.Params("id"), address)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Address not found",
			})
		}
		log.Printf("Error updating address for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update address",
			"error":   err.Error(),
		})
	}
	return c.JSON(saved)
}

// HandleDeleteAddress removes a saved address.
func (h *AccountHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if err := h.service.DeleteAddress(userID, c.Params("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Address not found",
			})
		}
		log.Printf("Error deleting address for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete address",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Address deleted successfully",
	})
}

// HandleListFavorites returns the user's favorite products.
func (h *AccountHandler) HandleListFavorites(c *fiber.Ctx) error {
	userID := currentUserID(c)
	products, err := h.service.ListFavorites(userID)
	if err != nil {
		log.Printf("Error listing favorites for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load favorites",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// AddFavoriteRequest is the request body for adding a favorite.
type AddFavoriteRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleAddFavorite marks a product as a favorite.
func (h *AccountHandler) HandleAddFavorite(c *fiber.Ctx) error {
	var req AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
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
	if err := h.service.AddFavorite(userID, req.ProductID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error adding favorite for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add favorite",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Added to favorites",
	})
}

// HandleRemoveFavorite unmarks a product as a favorite.
func (h *AccountHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if err := h.service.RemoveFavorite(userID, c.Params("productId")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Favorite not found",
			})
		}
		log.Printf("Error removing favorite for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove favorite",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Removed from favorites",
	})
}

// HandleGetSettings returns the user's settings.
func (h *AccountHandler) HandleGetSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)
	settings, err := h.service.GetSettings(userID)
	if err != nil {
		log.Printf("Error getting settings for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(settings)
}

// HandleUpdateSettings saves the user's settings.
func (h *AccountHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var settings models.UserSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	userID := currentUserID(c)
	updated, err := h.service.UpdateSettings(userID, settings)
	if err != nil {
		log.Printf("Error updating settings for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(updated)
}
