package models

// Category classifies a service vendor.
type Category string

const (
	CategoryAll      Category = ""
	CategoryTow      Category = "tow"
	CategoryMechanic Category = "mechanic"
	CategoryFuel     Category = "fuel"
	CategoryHotel    Category = "hotel"
	CategoryMedical  Category = "medical"
)

// Categories lists every selectable category, excluding CategoryAll.
var Categories = []Category{
	CategoryTow,
	CategoryMechanic,
	CategoryFuel,
	CategoryHotel,
	CategoryMedical,
}

// ParseCategory maps user input to a known category. "all" and the empty
// string select CategoryAll. The second return value reports validity.
func ParseCategory(s string) (Category, bool) {
	if s == "" || s == "all" {
		return CategoryAll, true
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return CategoryAll, false
}

// Vendor is one directory record, an immutable snapshot from a single fetch.
type Vendor struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"service_type"`
	Location Position `json:"location"`
	Address  string   `json:"address,omitempty"`
	Phone    string   `json:"phone,omitempty"`
}
