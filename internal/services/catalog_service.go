package services

import (
	"sort"
	"strings"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
)

// CategoryAll is the sentinel category under which no category filtering
// applies.
const CategoryAll = "all"

// Sort keys accepted by the catalog listing.
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ProductFilter is the structured filter set for browsing the catalog.
// Every field is vacuous when left at its zero value; active filters are
// conjunctive.
type ProductFilter struct {
	Query       string
	Category    string
	FoodTypes   []models.FoodType
	MinPrice    float64
	MaxPrice    float64 // 0 means unbounded
	MinRating   float64
	InStockOnly bool
	SameDayOnly bool
	MealTypes   []string
	SortBy      string
}

// CatalogService handles business logic for browsing and managing the
// product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts projects the catalog to the subset matching the filter,
// in the requested sort order.
func (s *CatalogService) ListProducts(filter ProductFilter) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, filter.SortBy)
	return matched, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct adds a product to the catalog.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing catalog entry.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// matchesFilter reports whether the product passes every active filter.
func matchesFilter(p models.Product, f ProductFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	if f.Category != "" && f.Category != CategoryAll {
		if !strings.Contains(p.Category, f.Category) {
			return false
		}
	}

	if len(f.FoodTypes) > 0 && !containsFoodType(f.FoodTypes, p.FoodType) {
		return false
	}

	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}

	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}

	if f.InStockOnly && !p.InStock {
		return false
	}
	if f.SameDayOnly && !p.SameDay {
		return false
	}

	if len(f.MealTypes) > 0 {
		if p.MealType == "" || !containsString(f.MealTypes, p.MealType) {
			return false
		}
	}

	return true
}

// sortProducts orders the result set in place. Unknown keys (including
// "relevance") keep catalog order.
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

func containsFoodType(haystack []models.FoodType, needle models.FoodType) bool {
	for _, ft := range haystack {
		if ft == needle {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
