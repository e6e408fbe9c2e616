package models

import "testing"

func TestFoodCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     FoodCreateRequest
		wantErr bool
	}{
		{
			name: "valid food",
			req: FoodCreateRequest{
				Name:        "Margherita Pizza",
				Description: "Tomato, mozzarella and basil",
				Price:       1250,
			},
			wantErr: false,
		},
		{
			name: "free item is allowed",
			req: FoodCreateRequest{
				Name:        "Tap Water",
				Description: "A glass of water",
				Price:       0,
			},
			wantErr: false,
		},
		{
			name:    "empty name",
			req:     FoodCreateRequest{Description: "desc", Price: 100},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			req:     FoodCreateRequest{Name: "   ", Description: "desc", Price: 100},
			wantErr: true,
		},
		{
			name:    "empty description",
			req:     FoodCreateRequest{Name: "Pizza", Price: 100},
			wantErr: true,
		},
		{
			name:    "negative price",
			req:     FoodCreateRequest{Name: "Pizza", Description: "desc", Price: -1},
			wantErr: true,
		},
		{
			name:    "price above maximum",
			req:     FoodCreateRequest{Name: "Pizza", Description: "desc", Price: 1000001},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFood_PriceInCurrency(t *testing.T) {
	food := &Food{Price: 1250}
	if got := food.PriceInCurrency(); got != 12.50 {
		t.Errorf("expected 12.50, got %.2f", got)
	}
}
