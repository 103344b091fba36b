package cart_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcart "github.com/heolazz/aerotech/application/cart"
	"github.com/heolazz/aerotech/cmd/config"
	"github.com/heolazz/aerotech/constant"
	cartmocks "github.com/heolazz/aerotech/mocks/repository/cart"
	dronemocks "github.com/heolazz/aerotech/mocks/repository/drone"
	"github.com/heolazz/aerotech/model"
	cerr "github.com/heolazz/aerotech/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Order: config.OrderConfig{
			TaxRate: "0.11",
			CartTTL: 72 * time.Hour,
		},
	}
}

func skyMasterDetail() *model.DroneDetail {
	return &model.DroneDetail{
		ID:       "d1",
		Name:     "SkyMaster Pro",
		Category: constant.CategoryPhotography,
		Price:    15000000,
		Image:    "https://images.aerotech.id/d1.jpg",
	}
}

func TestCartApp_AddItem(t *testing.T) {
	type fields struct {
		cartRepo  *cartmocks.CartRepository
		droneRepo *dronemocks.DroneRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.AddItemRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantQty  int
	}{
		{
			name: "success: first add defaults quantity to one",
			fields: fields{
				cartRepo:  cartmocks.NewCartRepository(t),
				droneRepo: dronemocks.NewDroneRepository(t),
			},
			req: &model.AddItemRequest{DroneID: "d1"},
			mockCall: func(f fields) {
				f.droneRepo.On("GetByID", mock.Anything, "d1").Return(skyMasterDetail(), nil).Once()
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.Cart{}, nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(c *model.Cart) bool {
					return len(c.Items) == 1 && c.Items[0].Quantity == 1 && c.Items[0].UnitPrice == 15000000
				}), 72*time.Hour).Return(nil).Once()
			},
			wantQty: 1,
		},
		{
			name: "success: adding an existing drone merges quantities",
			fields: fields{
				cartRepo:  cartmocks.NewCartRepository(t),
				droneRepo: dronemocks.NewDroneRepository(t),
			},
			req: &model.AddItemRequest{DroneID: "d1", Quantity: 2},
			mockCall: func(f fields) {
				f.droneRepo.On("GetByID", mock.Anything, "d1").Return(skyMasterDetail(), nil).Once()
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.Cart{
					Items: []model.CartItem{{ID: "d1", Name: "SkyMaster Pro", UnitPrice: 15000000, Quantity: 1}},
				}, nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(c *model.Cart) bool {
					return len(c.Items) == 1 && c.Items[0].Quantity == 3
				}), 72*time.Hour).Return(nil).Once()
			},
			wantQty: 3,
		},
		{
			name: "error: unknown drone id",
			fields: fields{
				cartRepo:  cartmocks.NewCartRepository(t),
				droneRepo: dronemocks.NewDroneRepository(t),
			},
			req: &model.AddItemRequest{DroneID: "d99"},
			mockCall: func(f fields) {
				f.droneRepo.On("GetByID", mock.Anything, "d99").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: negative quantity rejected before any lookup",
			fields: fields{
				cartRepo:  cartmocks.NewCartRepository(t),
				droneRepo: dronemocks.NewDroneRepository(t),
			},
			req:      &model.AddItemRequest{DroneID: "d1", Quantity: -2},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(testConfig(), tt.fields.cartRepo, tt.fields.droneRepo)

			got, err := app.AddItem(context.Background(), "sess-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddItem() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.Type() != tt.errCode {
					t.Fatalf("error type = %v, want %v", ce.Type(), tt.errCode)
				}
				return
			}
			if got.Items[0].Quantity != tt.wantQty {
				t.Fatalf("Quantity = %d, want %d", got.Items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestCartApp_GetCart(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcart.NewCartApp(testConfig(), cartRepo, droneRepo)

	cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.Cart{
		Items: []model.CartItem{{ID: "d1", Name: "SkyMaster Pro", UnitPrice: 15000000, Quantity: 1}},
	}, nil).Once()

	got, err := app.GetCart(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	if got.Totals.Subtotal != 15000000 || got.Totals.Tax != 1650000 || got.Totals.Total != 16650000 {
		t.Fatalf("Totals = %+v, want 15000000/1650000/16650000", got.Totals)
	}
}

func TestCartApp_GetCart_EmptyCartHasNonNilItems(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcart.NewCartApp(testConfig(), cartRepo, droneRepo)

	cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.Cart{}, nil).Once()

	got, err := app.GetCart(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	if got.Items == nil {
		t.Fatal("Items is nil, want empty slice")
	}
	if got.Totals.Total != 0 {
		t.Fatalf("Total = %d, want 0", got.Totals.Total)
	}
}

func TestCartApp_UpdateQuantity(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcart.NewCartApp(testConfig(), cartRepo, droneRepo)

	cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.Cart{
		Items: []model.CartItem{{ID: "d1", Name: "SkyMaster Pro", UnitPrice: 15000000, Quantity: 2}},
	}, nil).Once()
	// -5 from quantity 2 clamps to 1 instead of dropping the line
	cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(c *model.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].Quantity == 1
	}), 72*time.Hour).Return(nil).Once()

	got, err := app.UpdateQuantity(context.Background(), "sess-1", "d1", -5)
	if err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if got.Items[0].Quantity != 1 {
		t.Fatalf("Quantity = %d, want 1", got.Items[0].Quantity)
	}
}

func TestCartApp_UpdateQuantity_NotFound(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcart.NewCartApp(testConfig(), cartRepo, droneRepo)

	cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.Cart{}, nil).Once()

	_, err := app.UpdateQuantity(context.Background(), "sess-1", "d1", 1)
	var ce cerr.CustomError
	if !errors.As(err, &ce) || ce.Type() != constant.ErrNotFound {
		t.Fatalf("UpdateQuantity() error = %v, want not found", err)
	}
	cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartApp_RemoveItem(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcart.NewCartApp(testConfig(), cartRepo, droneRepo)

	cartRepo.On("Get", mock.Anything, "sess-1").Return(&model.Cart{
		Items: []model.CartItem{
			{ID: "d1", Name: "SkyMaster Pro", UnitPrice: 15000000, Quantity: 1},
			{ID: "d2", Name: "AgriFly X", UnitPrice: 25000000, Quantity: 1},
		},
	}, nil).Once()
	cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(c *model.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].ID == "d2"
	}), 72*time.Hour).Return(nil).Once()

	got, err := app.RemoveItem(context.Background(), "sess-1", "d1")
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ID != "d2" {
		t.Fatalf("Items = %+v, want only d2", got.Items)
	}
}

func TestCartApp_ClearCart(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcart.NewCartApp(testConfig(), cartRepo, droneRepo)

	cartRepo.On("Delete", mock.Anything, "sess-1").Return(nil).Once()

	if err := app.ClearCart(context.Background(), "sess-1"); err != nil {
		t.Fatalf("ClearCart() error = %v", err)
	}
}

func TestCartApp_ClearCart_StoreDown(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcart.NewCartApp(testConfig(), cartRepo, droneRepo)

	cartRepo.On("Delete", mock.Anything, "sess-1").Return(errors.New("conn refused")).Once()

	err := app.ClearCart(context.Background(), "sess-1")
	var ce cerr.CustomError
	if !errors.As(err, &ce) || ce.Type() != constant.ErrInternal {
		t.Fatalf("ClearCart() error = %v, want internal", err)
	}
}
