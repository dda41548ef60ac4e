package services

import (
	"fmt"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
)

// AccountService handles the logged-in user's profile, saved addresses,
// favorites, and settings.
type AccountService struct {
	userRepo     repositories.UserRepository
	addressRepo  repositories.AddressRepository
	favoriteRepo repositories.FavoriteRepository
	settingsRepo repositories.SettingsRepository
	productRepo  repositories.ProductRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	userRepo repositories.UserRepository,
	addressRepo repositories.AddressRepository,
	favoriteRepo repositories.FavoriteRepository,
	settingsRepo repositories.SettingsRepository,
	productRepo repositories.ProductRepository,
) *AccountService {
	return &AccountService{
		userRepo:     userRepo,
		addressRepo:  addressRepo,
		favoriteRepo: favoriteRepo,
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
	}
}

// GetProfile returns the user's account record.
func (s *AccountService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfile changes the mutable profile fields (name, phone). Email
// and password change through their own flows.
func (s *AccountService) UpdateProfile(userID, name, phone string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListAddresses returns the user's saved addresses.
func (s *AccountService) ListAddresses(userID string) ([]models.SavedAddress, error) {
	return s.addressRepo.GetByUser(userID)
}

// AddAddress saves a new address on the account.
func (s *AccountService) AddAddress(userID string, address models.DeliveryAddress) (*models.SavedAddress, error) {
	saved := &models.SavedAddress{
		UserID:          userID,
		DeliveryAddress: address,
	}
	if err := s.addressRepo.Create(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateAddress replaces a saved address, enforcing ownership.
func (s *AccountService) UpdateAddress(userID, addressID string, address models.DeliveryAddress) (*models.SavedAddress, error) {
	saved, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if saved.UserID != userID {
		return nil, fmt.Errorf("address with ID %s not found", addressID)
	}

	saved.DeliveryAddress = address
	if err := s.addressRepo.Update(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteAddress removes a saved address, enforcing ownership.
func (s *AccountService) DeleteAddress(userID, addressID string) error {
	saved, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return err
	}
	if saved.UserID != userID {
		return fmt.Errorf("address with ID %s not found", addressID)
	}
	return s.addressRepo.Delete(addressID)
}

// ListFavorites returns the user's favorite products. Favorites pointing
// at products since removed from the catalog are skipped.
func (s *AccountService) ListFavorites(userID string) ([]models.Product, error) {
	favorites, err := s.favoriteRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(favorites))
	for _, fav := range favorites {
		product, err := s.productRepo.GetByID(fav.ProductID)
		if err != nil {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

// AddFavorite marks a product as a favorite.
func (s *AccountService) AddFavorite(userID, productID string) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return fmt.Errorf("cannot favorite: %w", err)
	}
	return s.favoriteRepo.Add(&models.Favorite{UserID: userID, ProductID: productID})
}

// RemoveFavorite unmarks a product as a favorite.
func (s *AccountService) RemoveFavorite(userID, productID string) error {
	return s.favoriteRepo.Remove(userID, productID)
}

// GetSettings returns the user's settings, defaults included.
func (s *AccountService) GetSettings(userID string) (*models.UserSettings, error) {
	return s.settingsRepo.Get(userID)
}

// UpdateSettings saves the user's settings.
func (s *AccountService) UpdateSettings(userID string, settings models.UserSettings) (*models.UserSettings, error) {
	settings.UserID = userID
	if err := s.settingsRepo.Save(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
