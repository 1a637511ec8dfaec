// Package catalog holds the static menu served when the database has none.
package catalog

import "github.com/elegance/restaurant-backend/internal/app/model"

type fallbackItem struct {
	id          uint
	name        string
	description string
	price       string
	image       string
}

type fallbackCategory struct {
	id          uint
	name        string
	description string
	items       []fallbackItem
}

var fallbackMenu = []fallbackCategory{
	{1, "Burgers", "Delicious burgers", []fallbackItem{
		{1, "Classic Burger", "Beef patty, lettuce, tomato, onion and our special sauce", "150", "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg"},
		{2, "Cheeseburger", "Beef patty with melted cheddar, pickles and ketchup", "160", "https://images.pexels.com/photos/1633578/pexels-photo-1633578.jpeg"},
		{3, "BBQ Burger", "Beef patty, crispy bacon, onion rings and BBQ sauce", "170", "https://images.pexels.com/photos/2983101/pexels-photo-2983101.jpeg"},
	}},
	{2, "Pizzas", "Exquisite pizzas", []fallbackItem{
		{4, "Margherita Pizza", "Tomato sauce, mozzarella and fresh basil", "140", "https://images.pexels.com/photos/825661/pexels-photo-825661.jpeg"},
		{5, "Pepperoni Pizza", "Tomato sauce, mozzarella and pepperoni", "160", "https://images.pexels.com/photos/2619967/pexels-photo-2619967.jpeg"},
		{6, "Mixed Pizza", "Sausage, peppers, mushrooms, olives and mozzarella", "180", "https://images.pexels.com/photos/1146760/pexels-photo-1146760.jpeg"},
	}},
	{3, "Beverages", "Refreshing drinks", []fallbackItem{
		{7, "Cola", "Ice-cold cola, 330 ml", "30", "https://images.pexels.com/photos/50593/coca-cola-cold-drink-soft-drink-coke-50593.jpeg"},
		{8, "Ayran", "Traditional chilled yogurt drink", "20", "https://images.pexels.com/photos/5946720/pexels-photo-5946720.jpeg"},
		{9, "Lemonade", "Freshly squeezed homemade lemonade", "35", "https://images.pexels.com/photos/96974/pexels-photo-96974.jpeg"},
	}},
	{4, "Desserts", "Sweet alternatives", []fallbackItem{
		{10, "Chocolate Souffle", "Warm chocolate souffle with a molten center", "80", "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg"},
		{11, "Tiramisu", "Mascarpone cream layered with espresso-soaked ladyfingers", "70", "https://images.pexels.com/photos/6880219/pexels-photo-6880219.jpeg"},
		{12, "Cheesecake", "Creamy New York style cheesecake", "75", "https://images.pexels.com/photos/3026804/pexels-photo-3026804.jpeg"},
	}},
}

// Fallback returns a fresh copy of the static menu.
// The data is synthetic and may not match what the restaurant currently serves.
func Fallback() []model.MenuCategory {
	categories := make([]model.MenuCategory, 0, len(fallbackMenu))
	for _, fc := range fallbackMenu {
		desc := fc.description
		category := model.MenuCategory{
			ID:          fc.id,
			Name:        fc.name,
			Description: &desc,
			MenuItems:   make([]model.MenuItem, 0, len(fc.items)),
		}
		for _, fi := range fc.items {
			itemDesc := fi.description
			category.MenuItems = append(category.MenuItems, model.MenuItem{
				ID:          fi.id,
				Name:        fi.name,
				Description: &itemDesc,
				Price:       model.MustMoney(fi.price),
				Image:       fi.image,
				CategoryID:  fc.id,
			})
		}
		categories = append(categories, category)
	}
	return categories
}

// SeedCategories returns the static menu without ids, ready to be inserted
func SeedCategories() []model.MenuCategory {
	categories := Fallback()
	for i := range categories {
		categories[i].ID = 0
		for j := range categories[i].MenuItems {
			categories[i].MenuItems[j].ID = 0
			categories[i].MenuItems[j].CategoryID = 0
		}
	}
	return categories
}
