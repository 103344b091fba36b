package model

import (
	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/pricing"
)

// DronePreviewConfig is the declarative geometry/material parameter record
// the storefront's 3D viewport renders for a chosen archetype.
type DronePreviewConfig struct {
	Archetype constant.DroneArchetype `json:"archetype"`
	ArmCount  int                     `json:"arm_count"`
	ArmLength float64                 `json:"arm_length"`
	BodyScale [3]float64              `json:"body_scale"`
	Lift      float64                 `json:"lift"`
	HasTank   bool                    `json:"has_tank"`
	IsDucted  bool                    `json:"is_ducted"`
}

// ComponentOption is one selectable add-on in the configurator.
type ComponentOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

type QuoteRequest struct {
	Archetype    string   `json:"archetype" validate:"required"`
	ComponentIDs []string `json:"component_ids"`
}

type QuoteLine struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

type QuoteResponse struct {
	Archetype    constant.DroneArchetype `json:"archetype"`
	Lines        []QuoteLine             `json:"lines"`
	Totals       pricing.Totals          `json:"totals"`
	TotalDisplay string                  `json:"total_display"`
}
