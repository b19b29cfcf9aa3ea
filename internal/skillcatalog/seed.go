package skillcatalog

// defaultCatalog is built once from seedSkills; the seed is validated by tests.
var defaultCatalog = build(seedSkills)

// Default returns the clinic's standard training catalog.
func Default() *Catalog {
	return defaultCatalog
}

var seedSkills = []Skill{
	// Reception
	{ID: "rec-check-in", Name: "Patient check-in and insurance card handling", Category: CategoryReception},
	{ID: "rec-scheduling", Name: "Appointment scheduling and recall", Category: CategoryReception},
	{ID: "rec-billing", Name: "Fee calculation and payment", Category: CategoryReception},

	// Chairside assisting
	{ID: "chair-setup", Name: "Operatory setup and tray preparation", Category: CategoryChairside},
	{ID: "chair-suction", Name: "Suction and retraction during treatment", Category: CategoryChairside},
	{ID: "chair-impression", Name: "Alginate impression taking", Category: CategoryChairside},
	{ID: "chair-cement", Name: "Mixing cements and temporary materials", Category: CategoryChairside},

	// Hygiene
	{ID: "hyg-tbi", Name: "Tooth-brushing instruction", Category: CategoryHygiene},
	{ID: "hyg-scaling", Name: "Supragingival scaling", Category: CategoryHygiene},
	{ID: "hyg-perio-chart", Name: "Periodontal pocket charting", Category: CategoryHygiene},

	// Infection control
	{ID: "ic-instrument", Name: "Instrument cleaning and packaging", Category: CategoryInfectionControl},
	{ID: "ic-autoclave", Name: "Autoclave operation and logging", Category: CategoryInfectionControl},
	{ID: "ic-surface", Name: "Surface disinfection between patients", Category: CategoryInfectionControl},

	// Radiography
	{ID: "rad-intraoral", Name: "Intraoral film positioning", Category: CategoryRadiography},
	{ID: "rad-panoramic", Name: "Panoramic radiograph positioning", Category: CategoryRadiography},
}
