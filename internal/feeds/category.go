package feeds

// Category is the closed set of subject labels items are filed under.
// Anything outside the set collapses to CategoryMisc, so downstream
// aggregation never branches on free-form strings.
type Category string

const (
	CategoryModels   Category = "models"
	CategoryInfra    Category = "infra"
	CategoryInvest   Category = "invest"
	CategoryGeopol   Category = "geopol"
	CategoryPolicy   Category = "policy"
	CategorySecurity Category = "security"
	CategoryResearch Category = "research"
	CategoryProducts Category = "products"
	CategoryChips    Category = "chips"
	CategoryRobotics Category = "robotics"
	CategoryCompute  Category = "compute"
	CategoryMisc     Category = "misc"
)

var categoryLabels = map[Category]string{
	CategoryModels:   "Models",
	CategoryInfra:    "Infrastructure/HW",
	CategoryInvest:   "Investment",
	CategoryGeopol:   "Geopolitics",
	CategoryPolicy:   "Policy/Regulation",
	CategorySecurity: "Security",
	CategoryResearch: "Research",
	CategoryProducts: "Products",
	CategoryChips:    "Chips",
	CategoryRobotics: "Robotics",
	CategoryCompute:  "Compute",
	CategoryMisc:     "Misc",
}

// ParseCategory maps a raw label to a known Category.
// Unknown or blank labels become CategoryMisc.
func ParseCategory(s string) Category {
	c := Category(s)
	if _, ok := categoryLabels[c]; ok {
		return c
	}
	return CategoryMisc
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[CategoryMisc]
}

func (c Category) String() string { return string(c) }
