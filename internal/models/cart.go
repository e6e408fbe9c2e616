package models

// Cart represents a customer's shopping cart, held in the session
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem represents one line in the shopping cart, keyed by food ID.
// Price is a snapshot taken when the item was first added; it is not
// refreshed from the catalog afterwards.
type CartItem struct {
	FoodID      string `json:"food_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // in cents
	ImageURL    string `json:"image_url"`
	Quantity    int    `json:"quantity"`
}

// Subtotal returns the line total in cents
func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}

// AddItem adds a food item to the cart. If the item is already present
// its quantity is incremented by one, otherwise a new line is appended
// with quantity one.
func (c *Cart) AddItem(food *Food) {
	for i := range c.Items {
		if c.Items[i].FoodID == food.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		FoodID:      food.ID,
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		ImageURL:    food.ImageURL,
		Quantity:    1,
	})
}

// UpdateQuantity sets the quantity of an item to exactly quantity.
// A quantity of zero or less removes the item. Updating an item that is
// not in the cart is a no-op, so stale UI actions never fail.
func (c *Cart) UpdateQuantity(foodID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(foodID)
		return
	}

	for i := range c.Items {
		if c.Items[i].FoodID == foodID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the item with the given food ID if present
func (c *Cart) RemoveItem(foodID string) {
	for i := range c.Items {
		if c.Items[i].FoodID == foodID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalPrice returns the sum of price * quantity over all items, in cents
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// TotalItemCount returns the sum of quantities over all items
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty returns true if the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the item with the given food ID, or nil if absent
func (c *Cart) Find(foodID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].FoodID == foodID {
			return &c.Items[i]
		}
	}
	return nil
}

// TotalPriceInCurrency returns the cart total in the main currency as a float
func (c *Cart) TotalPriceInCurrency() float64 {
	return float64(c.TotalPrice()) / 100.0
}
