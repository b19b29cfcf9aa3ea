package skillcatalog

// Category groups skills by clinical area.
type Category string

const (
	CategoryReception        Category = "reception"
	CategoryChairside        Category = "chairside-assisting"
	CategoryHygiene          Category = "hygiene"
	CategoryInfectionControl Category = "infection-control"
	CategoryRadiography      Category = "radiography"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryReception,
		CategoryChairside,
		CategoryHygiene,
		CategoryInfectionControl,
		CategoryRadiography,
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryReception:
		return "Reception"
	case CategoryChairside:
		return "Chairside Assisting"
	case CategoryHygiene:
		return "Hygiene"
	case CategoryInfectionControl:
		return "Infection Control"
	case CategoryRadiography:
		return "Radiography"
	default:
		return string(c)
	}
}

// Skill is a single trainable skill. Skills are reference data and are
// never modified after the catalog is built.
type Skill struct {
	ID       string
	Name     string
	Category Category
}
