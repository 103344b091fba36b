package configurator

import (
	"github.com/heolazz/aerotech/cmd/config"
	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	"github.com/heolazz/aerotech/pricing"
	"github.com/heolazz/aerotech/utils/errors"
	"github.com/heolazz/aerotech/utils/logger"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ConfiguratorApp prices custom builds and hands the storefront the
// parametric frame description its 3D preview renders. Everything here is
// a pure lookup over fixed tables, no external calls.
type ConfiguratorApp interface {
	PreviewConfig(archetype constant.DroneArchetype) (*model.DronePreviewConfig, error)
	Components() []model.ComponentOption
	Quote(req *model.QuoteRequest) (*model.QuoteResponse, error)
}

var basePrices = map[constant.DroneArchetype]int64{
	constant.ArchetypeStandard:    15000000,
	constant.ArchetypeRacing:      5000000,
	constant.ArchetypeCinewhoop:   8000000,
	constant.ArchetypeAgriculture: 150000000,
	constant.ArchetypeHeavyLift:   250000000,
}

var archetypeLabels = map[constant.DroneArchetype]string{
	constant.ArchetypeStandard:    "Standard Quad Frame",
	constant.ArchetypeRacing:      "Racing Frame",
	constant.ArchetypeCinewhoop:   "Cinewhoop Frame",
	constant.ArchetypeAgriculture: "Agriculture Hexacopter",
	constant.ArchetypeHeavyLift:   "Heavy Lift Octocopter",
}

// Frame parameters per archetype: arm count/length, body scale, hover
// lift offset, spray tank and ducted props.
var previewConfigs = map[constant.DroneArchetype]model.DronePreviewConfig{
	constant.ArchetypeStandard: {
		Archetype: constant.ArchetypeStandard,
		ArmCount:  4, ArmLength: 1.2, BodyScale: [3]float64{0.8, 0.3, 0.8}, Lift: 0.2,
	},
	constant.ArchetypeRacing: {
		Archetype: constant.ArchetypeRacing,
		ArmCount:  4, ArmLength: 0.9, BodyScale: [3]float64{0.5, 0.2, 1.0}, Lift: 0,
	},
	constant.ArchetypeCinewhoop: {
		Archetype: constant.ArchetypeCinewhoop,
		ArmCount:  4, ArmLength: 0.7, BodyScale: [3]float64{0.6, 0.25, 0.6}, Lift: 0.1,
		IsDucted: true,
	},
	constant.ArchetypeAgriculture: {
		Archetype: constant.ArchetypeAgriculture,
		ArmCount:  6, ArmLength: 1.6, BodyScale: [3]float64{1.2, 0.6, 1.2}, Lift: 0.5,
		HasTank: true,
	},
	constant.ArchetypeHeavyLift: {
		Archetype: constant.ArchetypeHeavyLift,
		ArmCount:  8, ArmLength: 1.8, BodyScale: [3]float64{1.0, 0.8, 1.0}, Lift: 0.6,
	},
}

var componentOptions = []model.ComponentOption{
	{ID: "gps", Label: "Modul GPS RTK", Price: 2500000, Description: "Akurasi pemetaan sentimeter."},
	{ID: "battery", Label: "Extra Battery (High Cap)", Price: 1500000, Description: "+15 menit waktu terbang."},
	{ID: "goggles", Label: "FPV Goggles V2", Price: 5000000, Description: "Tampilan HD latensi rendah."},
	{ID: "thermal", Label: "Kamera Thermal", Price: 12000000, Description: "Untuk inspeksi malam/panas."},
	{ID: "case", Label: "Hard Case Waterproof", Price: 1000000, Description: "Perlindungan maksimal."},
	{ID: "controller", Label: "Smart Controller", Price: 3500000, Description: "Layar built-in 5.5 inci."},
}

type configuratorAppImpl struct {
	taxRate decimal.Decimal
}

func NewConfiguratorApp(config *config.Config) ConfiguratorApp {
	taxRate, err := pricing.ParseTaxRate(config.Order.TaxRate)
	if err != nil {
		logger.Warn("[NewConfiguratorApp] invalid tax rate, using default", zap.String("rate", config.Order.TaxRate))
		taxRate = pricing.DefaultTaxRate
	}
	return &configuratorAppImpl{taxRate: taxRate}
}

func (s *configuratorAppImpl) PreviewConfig(archetype constant.DroneArchetype) (*model.DronePreviewConfig, error) {
	cfg, ok := previewConfigs[archetype]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &cfg, nil
}

func (s *configuratorAppImpl) Components() []model.ComponentOption {
	return componentOptions
}

func (s *configuratorAppImpl) Quote(req *model.QuoteRequest) (*model.QuoteResponse, error) {
	archetype := constant.DroneArchetype(req.Archetype)
	base, ok := basePrices[archetype]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lines := []model.QuoteLine{{Label: archetypeLabels[archetype], Price: base}}
	for _, id := range req.ComponentIDs {
		option, found := lo.Find(componentOptions, func(c model.ComponentOption) bool {
			return c.ID == id
		})
		if !found {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		lines = append(lines, model.QuoteLine{Label: option.Label, Price: option.Price})
	}

	subtotal := lo.SumBy(lines, func(l model.QuoteLine) int64 { return l.Price })
	totals := pricing.ComputeTotals(subtotal, s.taxRate)

	return &model.QuoteResponse{
		Archetype:    archetype,
		Lines:        lines,
		Totals:       totals,
		TotalDisplay: pricing.FormatRupiah(totals.Total),
	}, nil
}
