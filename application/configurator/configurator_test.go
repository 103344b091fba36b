package configurator_test

import (
	"errors"
	"testing"
	"time"

	appconfigurator "github.com/heolazz/aerotech/application/configurator"
	"github.com/heolazz/aerotech/cmd/config"
	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	cerr "github.com/heolazz/aerotech/utils/errors"
)

func newApp() appconfigurator.ConfiguratorApp {
	return appconfigurator.NewConfiguratorApp(&config.Config{
		Order: config.OrderConfig{TaxRate: "0.11", CartTTL: 72 * time.Hour},
	})
}

func TestConfiguratorApp_Quote(t *testing.T) {
	tests := []struct {
		name         string
		req          *model.QuoteRequest
		wantErr      bool
		errCode      constant.ErrorType
		wantLines    int
		wantSubtotal int64
		wantTax      int64
		wantTotal    int64
		wantDisplay  string
	}{
		{
			name:         "standard frame with gps and battery",
			req:          &model.QuoteRequest{Archetype: "STANDARD", ComponentIDs: []string{"gps", "battery"}},
			wantLines:    3,
			wantSubtotal: 19000000,
			wantTax:      2090000,
			wantTotal:    21090000,
			wantDisplay:  "Rp21.090.000",
		},
		{
			name:         "bare racing frame",
			req:          &model.QuoteRequest{Archetype: "RACING"},
			wantLines:    1,
			wantSubtotal: 5000000,
			wantTax:      550000,
			wantTotal:    5550000,
			wantDisplay:  "Rp5.550.000",
		},
		{
			name:         "heavy lift with every add-on",
			req:          &model.QuoteRequest{Archetype: "HEAVY_LIFT", ComponentIDs: []string{"gps", "battery", "goggles", "thermal", "case", "controller"}},
			wantLines:    7,
			wantSubtotal: 275500000,
			wantTax:      30305000,
			wantTotal:    305805000,
			wantDisplay:  "Rp305.805.000",
		},
		{
			name:    "error: unknown archetype",
			req:     &model.QuoteRequest{Archetype: "SUBMARINE"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: unknown component id",
			req:     &model.QuoteRequest{Archetype: "STANDARD", ComponentIDs: []string{"warpdrive"}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	app := newApp()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.Quote(tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Quote() error = %v, wantErr %v", err, tt.wantErr)
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
			if len(got.Lines) != tt.wantLines {
				t.Fatalf("len(Lines) = %d, want %d", len(got.Lines), tt.wantLines)
			}
			if got.Totals.Subtotal != tt.wantSubtotal {
				t.Fatalf("Subtotal = %d, want %d", got.Totals.Subtotal, tt.wantSubtotal)
			}
			if got.Totals.Tax != tt.wantTax {
				t.Fatalf("Tax = %d, want %d", got.Totals.Tax, tt.wantTax)
			}
			if got.Totals.Total != tt.wantTotal {
				t.Fatalf("Total = %d, want %d", got.Totals.Total, tt.wantTotal)
			}
			if got.TotalDisplay != tt.wantDisplay {
				t.Fatalf("TotalDisplay = %q, want %q", got.TotalDisplay, tt.wantDisplay)
			}
		})
	}
}

func TestConfiguratorApp_PreviewConfig(t *testing.T) {
	tests := []struct {
		name      string
		archetype constant.DroneArchetype
		wantArms  int
		wantTank  bool
		wantDuct  bool
	}{
		{name: "standard quad", archetype: constant.ArchetypeStandard, wantArms: 4},
		{name: "cinewhoop is ducted", archetype: constant.ArchetypeCinewhoop, wantArms: 4, wantDuct: true},
		{name: "agriculture hexa with tank", archetype: constant.ArchetypeAgriculture, wantArms: 6, wantTank: true},
		{name: "heavy lift octo", archetype: constant.ArchetypeHeavyLift, wantArms: 8},
	}
	app := newApp()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.PreviewConfig(tt.archetype)
			if err != nil {
				t.Fatalf("PreviewConfig() error = %v", err)
			}
			if got.ArmCount != tt.wantArms {
				t.Fatalf("ArmCount = %d, want %d", got.ArmCount, tt.wantArms)
			}
			if got.HasTank != tt.wantTank {
				t.Fatalf("HasTank = %v, want %v", got.HasTank, tt.wantTank)
			}
			if got.IsDucted != tt.wantDuct {
				t.Fatalf("IsDucted = %v, want %v", got.IsDucted, tt.wantDuct)
			}
		})
	}
}

func TestConfiguratorApp_PreviewConfig_Unknown(t *testing.T) {
	app := newApp()

	_, err := app.PreviewConfig(constant.DroneArchetype("SUBMARINE"))
	var ce cerr.CustomError
	if !errors.As(err, &ce) || ce.Type() != constant.ErrInvalidRequest {
		t.Fatalf("PreviewConfig() error = %v, want invalid request", err)
	}
}

func TestConfiguratorApp_Components(t *testing.T) {
	app := newApp()

	got := app.Components()
	if len(got) != 6 {
		t.Fatalf("len(Components()) = %d, want 6", len(got))
	}
	for _, c := range got {
		if c.ID == "" || c.Label == "" || c.Price <= 0 {
			t.Fatalf("component %+v is incomplete", c)
		}
	}
}
