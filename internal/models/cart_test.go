package models

import (
	"bytes"
	"encoding/gob"
	"math/rand"
	"reflect"
	"testing"
)

func sampleFood(id string, price int) *Food {
	return &Food{
		ID:          id,
		Name:        "Food " + id,
		Description: "Description for " + id,
		Price:       price,
		ImageURL:    "/uploads/foods/" + id + ".jpg",
	}
}

func TestCart_AddItem(t *testing.T) {
	cart := &Cart{}
	food := sampleFood("A", 1000)

	// Repeated adds of the same food increment quantity and keep a
	// single line for that food.
	for i := 0; i < 5; i++ {
		cart.AddItem(food)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Price != 1000 {
		t.Errorf("expected price snapshot 1000, got %d", cart.Items[0].Price)
	}
}

func TestCart_AddItem_PriceSnapshot(t *testing.T) {
	cart := &Cart{}
	food := sampleFood("A", 1000)
	cart.AddItem(food)

	// A later catalog price change must not affect the cart line
	food.Price = 2000
	cart.AddItem(food)

	if cart.Items[0].Price != 1000 {
		t.Errorf("expected add-time price 1000 to be kept, got %d", cart.Items[0].Price)
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		foodID       string
		quantity     int
		wantItems    int
		wantQuantity int
	}{
		{name: "set exact quantity", foodID: "A", quantity: 7, wantItems: 2, wantQuantity: 7},
		{name: "zero removes item", foodID: "A", quantity: 0, wantItems: 1},
		{name: "negative removes item", foodID: "A", quantity: -1, wantItems: 1},
		{name: "absent id is a no-op", foodID: "missing", quantity: 3, wantItems: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			cart.AddItem(sampleFood("A", 1000))
			cart.AddItem(sampleFood("B", 500))

			cart.UpdateQuantity(tt.foodID, tt.quantity)

			if len(cart.Items) != tt.wantItems {
				t.Fatalf("expected %d items, got %d", tt.wantItems, len(cart.Items))
			}
			if tt.wantQuantity > 0 {
				item := cart.Find(tt.foodID)
				if item == nil {
					t.Fatalf("expected item %s to be present", tt.foodID)
				}
				if item.Quantity != tt.wantQuantity {
					t.Errorf("expected quantity %d, got %d", tt.wantQuantity, item.Quantity)
				}
			}
		})
	}
}

func TestCart_UpdateQuantity_AbsentCreatesNothing(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleFood("A", 1000))

	before := make([]CartItem, len(cart.Items))
	copy(before, cart.Items)

	cart.UpdateQuantity("nonexistent", 4)

	if !reflect.DeepEqual(before, cart.Items) {
		t.Errorf("cart changed after updating an absent item: %+v", cart.Items)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleFood("A", 1000))
	cart.AddItem(sampleFood("B", 500))

	cart.RemoveItem("A")
	if cart.Find("A") != nil {
		t.Error("expected item A to be removed")
	}
	if cart.Find("B") == nil {
		t.Error("expected item B to remain")
	}

	// Removing again is a no-op
	cart.RemoveItem("A")
	if len(cart.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(cart.Items))
	}
}

func TestCart_Clear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleFood("A", 1000))
	cart.AddItem(sampleFood("B", 500))

	cart.Clear()

	if !cart.IsEmpty() {
		t.Error("expected cart to be empty after Clear")
	}
	if cart.TotalItemCount() != 0 {
		t.Errorf("expected total item count 0, got %d", cart.TotalItemCount())
	}
	if cart.TotalPrice() != 0 {
		t.Errorf("expected total price 0, got %d", cart.TotalPrice())
	}
}

func TestCart_Totals(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleFood("A", 1000))
	cart.AddItem(sampleFood("A", 1000))
	cart.AddItem(sampleFood("B", 500))

	if got := cart.TotalPrice(); got != 2500 {
		t.Errorf("expected total price 2500, got %d", got)
	}
	if got := cart.TotalItemCount(); got != 3 {
		t.Errorf("expected total item count 3, got %d", got)
	}
	if got := cart.TotalPriceInCurrency(); got != 25.00 {
		t.Errorf("expected currency total 25.00, got %.2f", got)
	}
}

func TestCart_Totals_RandomEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 100; run++ {
		cart := &Cart{}
		wantPrice := 0
		wantCount := 0

		entries := rng.Intn(20)
		for i := 0; i < entries; i++ {
			price := rng.Intn(10000)
			quantity := 1 + rng.Intn(9)

			food := sampleFood(string(rune('a'+i)), price)
			cart.AddItem(food)
			cart.UpdateQuantity(food.ID, quantity)

			wantPrice += price * quantity
			wantCount += quantity
		}

		if got := cart.TotalPrice(); got != wantPrice {
			t.Fatalf("run %d: expected total price %d, got %d", run, wantPrice, got)
		}
		if got := cart.TotalItemCount(); got != wantCount {
			t.Fatalf("run %d: expected item count %d, got %d", run, wantCount, got)
		}
	}
}

func TestCart_GobRoundTrip(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleFood("A", 1000))
	cart.AddItem(sampleFood("A", 1000))
	cart.AddItem(sampleFood("B", 500))

	// The session store gob-encodes the cart; a reload must reproduce
	// an identical entry collection.
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cart); err != nil {
		t.Fatalf("failed to encode cart: %v", err)
	}

	restored := &Cart{}
	if err := gob.NewDecoder(&buf).Decode(restored); err != nil {
		t.Fatalf("failed to decode cart: %v", err)
	}

	if !reflect.DeepEqual(cart, restored) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", restored, cart)
	}
}
