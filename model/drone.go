package model

import "github.com/heolazz/aerotech/constant"

// DroneListItem is the catalog list projection.
type DroneListItem struct {
	ID       string                 `db:"id" json:"id"`
	Name     string                 `db:"name" json:"name"`
	Category constant.DroneCategory `db:"category" json:"category"`
	Price    int64                  `db:"price" json:"price"`
	Image    string                 `db:"image" json:"image"`
}

// DroneDetail is the full catalog entry, specs included.
type DroneDetail struct {
	ID               string                 `db:"id" json:"id"`
	Name             string                 `db:"name" json:"name"`
	Category         constant.DroneCategory `db:"category" json:"category"`
	Price            int64                  `db:"price" json:"price"`
	Image            string                 `db:"image" json:"image"`
	Description      string                 `db:"description" json:"description,omitempty"`
	SpecRange        string                 `db:"spec_range" json:"spec_range"`
	SpecBattery      string                 `db:"spec_battery" json:"spec_battery"`
	SpecCamera       string                 `db:"spec_camera" json:"spec_camera"`
	SpecWeight       string                 `db:"spec_weight" json:"spec_weight,omitempty"`
	SpecDimensions   string                 `db:"spec_dimensions" json:"spec_dimensions,omitempty"`
	FlightController string                 `db:"flight_controller" json:"flight_controller,omitempty"`
}

type DroneListResponse struct {
	Items      []DroneListItem `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}
