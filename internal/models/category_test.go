package models

import "testing"

func TestCategoryCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CategoryCreateRequest
		wantErr bool
	}{
		{
			name:    "valid category",
			req:     CategoryCreateRequest{Name: "Pizza", Description: "Stone-baked pizzas"},
			wantErr: false,
		},
		{
			name:    "minimum length name",
			req:     CategoryCreateRequest{Name: "Ok"},
			wantErr: false,
		},
		{
			name:    "empty name",
			req:     CategoryCreateRequest{},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			req:     CategoryCreateRequest{Name: "   "},
			wantErr: true,
		},
		{
			name:    "single character name",
			req:     CategoryCreateRequest{Name: "P"},
			wantErr: true,
		},
		{
			name:    "name too long",
			req:     CategoryCreateRequest{Name: string(make([]byte, 101))},
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
