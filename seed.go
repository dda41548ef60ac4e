package main

import (
	"log"
	"time"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
	"khanamart/internal/services"
)

// demoUsers are the documented demo accounts. They are stored hashed
// like any other account; only the seed knows the plaintext.
var demoUsers = []struct {
	Name     string
	Email    string
	Phone    string
	Password string
}{
	{"Demo User", "demo@khanamart.com", "9876543210", "demo@1234"},
	{"Priya Sharma", "priya@khanamart.com", "9123456780", "priya@1234"},
	{"Rahul Verma", "rahul@khanamart.com", "9988776655", "rahul@1234"},
}

// seedCatalog populates the catalog on first start. An already-populated
// catalog is left untouched.
func seedCatalog(repo repositories.ProductRepository) {
	count, err := repo.Count()
	if err != nil {
		log.Printf("Error checking catalog size: %v", err)
		return
	}
	if count > 0 {
		return
	}

	// Creation times are staggered so "newest" sorting is meaningful.
	base := time.Now().Add(-time.Duration(len(catalog)) * 24 * time.Hour)
	for i := range catalog {
		catalog[i].Currency = "₹"
		catalog[i].CreatedAt = base.Add(time.Duration(i) * 24 * time.Hour)
		if err := repo.Create(&catalog[i]); err != nil {
			log.Printf("Error seeding product %s: %v", catalog[i].Title, err)
		}
	}
	log.Printf("Seeded catalog with %d products", len(catalog))
}

// seedDemoUsers registers the demo accounts, skipping any that exist.
func seedDemoUsers(authService *services.AuthService, userRepo repositories.UserRepository) {
	for _, du := range demoUsers {
		if existing, err := userRepo.GetByEmail(du.Email); err == nil && existing != nil {
			continue
		}
		user := models.User{Name: du.Name, Email: du.Email, Phone: du.Phone}
		if err := authService.RegisterUser(&user, du.Password); err != nil {
			log.Printf("Error seeding demo user %s: %v", du.Email, err)
		}
	}
}

var catalog = []models.Product{
	{
		ID: "tiffin_1", Type: models.ProductTypeTiffin,
		Title:       "Daily Lunch + Dinner",
		Description: "Fresh homemade meals delivered daily. Premium quality ingredients with 0% preservatives.",
		Price:       80, OriginalPrice: 100,
		Category: "lunch", FoodType: models.FoodTypeVeg,
		Rating: 4.8, Reviews: 2341, Badge: "best_seller",
		InStock: true, SameDay: true, Subscription: true,
		MealType: "both", Period: "daily", Servings: 2,
	},
	{
		ID: "tiffin_2", Type: models.ProductTypeTiffin,
		Title:       "Weekly Plan - Veg",
		Description: "5 days of fresh vegetarian meals. Choose any 5 days of the week.",
		Price:       490, OriginalPrice: 600,
		Category: "weekly_plan", FoodType: models.FoodTypeVeg,
		Rating: 4.7, Reviews: 1823, Badge: "trending",
		InStock: true, SameDay: true, Subscription: true,
		MealType: "both", Period: "weekly", Servings: 2,
	},
	{
		ID: "tiffin_3", Type: models.ProductTypeTiffin,
		Title:       "Monthly Plan - Premium",
		Description: "A full month of premium breakfasts, planned by nutritionists.",
		Price:       1890, OriginalPrice: 2400,
		Category: "monthly_plan", FoodType: models.FoodTypeVeg,
		Rating: 4.9, Reviews: 3450,
		InStock: true, SameDay: true, Subscription: true,
		MealType: "breakfast", Period: "monthly", Servings: 1,
	},
	{
		ID: "tiffin_4", Type: models.ProductTypeTiffin,
		Title:       "Daily Non-Veg Dinner",
		Description: "Home-style chicken and egg curries delivered hot every evening.",
		Price:       120, OriginalPrice: 150,
		Category: "dinner", FoodType: models.FoodTypeNonVeg,
		Rating: 4.5, Reviews: 812,
		InStock: true, SameDay: true, Subscription: true,
		MealType: "dinner", Period: "daily", Servings: 1,
	},
	{
		ID: "veg_1", Type: models.ProductTypeGrocery,
		Title:       "Fresh Tomatoes",
		Description: "Farm fresh tomatoes, handpicked this morning.",
		Price:       45, OriginalPrice: 60,
		Category: "vegetables", FoodType: models.FoodTypeVeg,
		Rating: 4.6, Reviews: 892, Badge: "fresh",
		InStock: true, SameDay: true,
	},
	{
		ID: "veg_2", Type: models.ProductTypeGrocery,
		Title:       "Organic Spinach Bunch",
		Description: "Pesticide-free spinach from certified organic farms.",
		Price:       35, OriginalPrice: 50,
		Category: "vegetables", FoodType: models.FoodTypeVeg,
		Rating: 4.7, Reviews: 654, Badge: "fresh",
		InStock: true, SameDay: true,
	},
	{
		ID: "veg_3", Type: models.ProductTypeGrocery,
		Title:       "Bell Peppers (Pack of 3)",
		Description: "Red, yellow and green bell peppers.",
		Price:       89, OriginalPrice: 120,
		Category: "vegetables", FoodType: models.FoodTypeVeg,
		Rating: 4.5, Reviews: 421,
		InStock: true, SameDay: true,
	},
	{
		ID: "fruit_1", Type: models.ProductTypeGrocery,
		Title:       "Fresh Apples (1kg)",
		Description: "Crisp Shimla apples, rich in fibre.",
		Price:       120, OriginalPrice: 160,
		Category: "fruits", FoodType: models.FoodTypeVeg,
		Rating: 4.8, Reviews: 1203, Badge: "fresh",
		InStock: true, SameDay: true,
	},
	{
		ID: "fruit_2", Type: models.ProductTypeGrocery,
		Title:       "Bananas (1 Dozen)",
		Description: "Naturally ripened bananas.",
		Price:       35, OriginalPrice: 50,
		Category: "fruits", FoodType: models.FoodTypeVeg,
		Rating: 4.4, Reviews: 567,
		InStock: true, SameDay: true,
	},
	{
		ID: "fruit_3", Type: models.ProductTypeGrocery,
		Title:       "Oranges (1kg)",
		Description: "Juicy Nagpur oranges, packed with vitamin C.",
		Price:       65, OriginalPrice: 90,
		Category: "fruits", FoodType: models.FoodTypeVeg,
		Rating: 4.6, Reviews: 734,
		InStock: false, SameDay: false,
	},
	{
		ID: "dairy_1", Type: models.ProductTypeGrocery,
		Title:       "Fresh Milk (1L)",
		Description: "Full cream milk, pasteurized and delivered chilled.",
		Price:       55, OriginalPrice: 70,
		Category: "dairy", FoodType: models.FoodTypeVeg,
		Rating: 4.7, Reviews: 2103, Badge: "best_seller",
		InStock: true, SameDay: true,
	},
	{
		ID: "dairy_2", Type: models.ProductTypeGrocery,
		Title:       "Greek Yogurt (500g)",
		Description: "Thick, protein-rich Greek yogurt.",
		Price:       89, OriginalPrice: 120,
		Category: "dairy", FoodType: models.FoodTypeVeg,
		Rating: 4.6, Reviews: 845,
		InStock: true, SameDay: true,
	},
	{
		ID: "dairy_3", Type: models.ProductTypeGrocery,
		Title:       "Farm Eggs (Pack of 12)",
		Description: "Free-range eggs from local farms.",
		Price:       96, OriginalPrice: 110,
		Category: "dairy", FoodType: models.FoodTypeEgg,
		Rating: 4.8, Reviews: 1567, Badge: "fresh",
		InStock: true, SameDay: true,
	},
	{
		ID: "drink_1", Type: models.ProductTypeGrocery,
		Title:       "Fresh Orange Juice (1L)",
		Description: "Cold-pressed orange juice with no added sugar.",
		Price:       89, OriginalPrice: 120,
		Category: "drinks", FoodType: models.FoodTypeVeg,
		Rating: 4.5, Reviews: 456,
		InStock: true, SameDay: true,
	},
	{
		ID: "drink_2", Type: models.ProductTypeGrocery,
		Title:       "Almond Milk (1L)",
		Description: "Unsweetened almond milk, lactose free.",
		Price:       125, OriginalPrice: 160,
		Category: "drinks", FoodType: models.FoodTypeVeg,
		Rating: 4.4, Reviews: 623,
		InStock: true, SameDay: false,
	},
	{
		ID: "snack_1", Type: models.ProductTypeGrocery,
		Title:       "Roasted Almonds (250g)",
		Description: "Lightly salted roasted almonds.",
		Price:       199, OriginalPrice: 250,
		Category: "snacks", FoodType: models.FoodTypeVeg,
		Rating: 4.7, Reviews: 1234, Badge: "best_seller",
		InStock: true, SameDay: true,
	},
	{
		ID: "snack_2", Type: models.ProductTypeGrocery,
		Title:       "Cashews (200g)",
		Description: "Premium whole cashews.",
		Price:       299, OriginalPrice: 350,
		Category: "snacks", FoodType: models.FoodTypeVeg,
		Rating: 4.8, Reviews: 987,
		InStock: true, SameDay: true,
	},
	{
		ID: "essential_1", Type: models.ProductTypeGrocery,
		Title:       "Extra Virgin Olive Oil (500ml)",
		Description: "First cold-pressed olive oil.",
		Price:       450, OriginalPrice: 600,
		Category: "kitchen_essentials", FoodType: models.FoodTypeVeg,
		Rating: 4.6, Reviews: 567,
		InStock: true, SameDay: true,
	},
	{
		ID: "essential_2", Type: models.ProductTypeGrocery,
		Title:       "Sea Salt (250g)",
		Description: "Unrefined natural sea salt.",
		Price:       89, OriginalPrice: 120,
		Category: "kitchen_essentials", FoodType: models.FoodTypeVeg,
		Rating: 4.5, Reviews: 234,
		InStock: true, SameDay: true,
	},
	{
		ID: "combo_1", Type: models.ProductTypeCombo,
		Title:       "Healthy Breakfast Bundle",
		Description: "Everything you need for a healthy breakfast. Includes milk, yogurt, and oats.",
		Price:       299, OriginalPrice: 420,
		Category: "breakfast", FoodType: models.FoodTypeVeg,
		Rating: 4.7, Reviews: 678, Badge: "trending",
		InStock: true, SameDay: true,
	},
}
