package constant

// DroneCategory labels a catalog entry for filtering.
type DroneCategory string

const (
	CategoryPhotography DroneCategory = "Photography"
	CategoryAgriculture DroneCategory = "Agriculture"
	CategoryRacing      DroneCategory = "Racing"
	CategoryIndustrial  DroneCategory = "Industrial"
)

var validDroneCategories = map[DroneCategory]struct{}{
	CategoryPhotography: {},
	CategoryAgriculture: {},
	CategoryRacing:      {},
	CategoryIndustrial:  {},
}

func IsValidDroneCategory(c DroneCategory) bool {
	_, ok := validDroneCategories[c]
	return ok
}

// DroneArchetype selects the parametric frame used by the configurator
// and its base price.
type DroneArchetype string

const (
	ArchetypeStandard    DroneArchetype = "STANDARD"
	ArchetypeRacing      DroneArchetype = "RACING"
	ArchetypeCinewhoop   DroneArchetype = "CINEWHOOP"
	ArchetypeAgriculture DroneArchetype = "AGRICULTURE"
	ArchetypeHeavyLift   DroneArchetype = "HEAVY_LIFT"
)
