package planner

import (
	"strings"

	"JAPLAN_BACK-END/internal/models"
)

// Item-type selector values for the palette
const (
	TypeAll        = "all"
	TypeActivity   = models.ItemTypeActivity
	TypeRestaurant = models.ItemTypeRestaurant
)

// Filters holds the active facet selections for the catalog palette. An
// empty slice means "no restriction" on that facet, not "match nothing".
type Filters struct {
	ActivityCategories []string `json:"activityCategories"`
	PriceRanges        []string `json:"priceRanges"`
	DietaryOptions     []string `json:"dietaryOptions"`
	Cuisines           []string `json:"cuisines"`
	ItemType           string   `json:"itemType"` // all | activity | restaurant
	Query              string   `json:"query"`
}

// Apply computes the visible palette subset. Facets combine with AND;
// multiple values inside one facet combine with OR. Activities come first,
// then restaurants, each family keeping its catalog order.
func (f Filters) Apply(activities []models.Activity, restaurants []models.Restaurant) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(activities)+len(restaurants))
	if f.includeActivities() {
		for _, a := range activities {
			if f.matchActivity(a) {
				items = append(items, models.ActivityItem(a))
			}
		}
	}
	if f.includeRestaurants() {
		for _, r := range restaurants {
			if f.matchRestaurant(r) {
				items = append(items, models.RestaurantItem(r))
			}
		}
	}
	return items
}

func (f Filters) includeActivities() bool {
	return f.ItemType == "" || f.ItemType == TypeAll || f.ItemType == TypeActivity
}

func (f Filters) includeRestaurants() bool {
	return f.ItemType == "" || f.ItemType == TypeAll || f.ItemType == TypeRestaurant
}

func (f Filters) matchActivity(a models.Activity) bool {
	if !inSet(f.ActivityCategories, a.Category) {
		return false
	}
	if !inSet(f.PriceRanges, a.PriceRange) {
		return false
	}
	return f.matchQuery(a.Name, a.Description, a.Category)
}

func (f Filters) matchRestaurant(r models.Restaurant) bool {
	if !inSet(f.Cuisines, r.Cuisine) {
		return false
	}
	if !inSet(f.PriceRanges, r.PriceRange) {
		return false
	}
	if !anyInSet(f.DietaryOptions, r.DietaryOptions) {
		return false
	}
	return f.matchQuery(r.Name, r.Description, r.Cuisine)
}

// matchQuery is a case-insensitive substring match over the given fields
func (f Filters) matchQuery(fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// inSet reports membership, treating an empty selection as a wildcard
func inSet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// anyInSet reports whether any of the item's values is selected; an empty
// selection is a wildcard.
func anyInSet(selected, values []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range values {
		for _, s := range selected {
			if s == v {
				return true
			}
		}
	}
	return false
}

// FacetCounts carries the per-option badge counts shown next to each filter
// checkbox.
type FacetCounts struct {
	ActivityCategories map[string]int `json:"activityCategories"`
	PriceRanges        map[string]int `json:"priceRanges"`
	DietaryOptions     map[string]int `json:"dietaryOptions"`
	Cuisines           map[string]int `json:"cuisines"`
}

// Counts computes, for every facet value present in the catalog, how many
// items would match it. Each dimension is counted against the catalog
// filtered by all *other* active facets, so selecting a value never zeroes
// its own sibling options.
func (f Filters) Counts(activities []models.Activity, restaurants []models.Restaurant) FacetCounts {
	counts := FacetCounts{
		ActivityCategories: map[string]int{},
		PriceRanges:        map[string]int{},
		DietaryOptions:     map[string]int{},
		Cuisines:           map[string]int{},
	}

	g := f
	g.ActivityCategories = nil
	for _, item := range g.Apply(activities, restaurants) {
		if item.Type == models.ItemTypeActivity {
			counts.ActivityCategories[item.Activity.Category]++
		}
	}

	g = f
	g.PriceRanges = nil
	for _, item := range g.Apply(activities, restaurants) {
		switch item.Type {
		case models.ItemTypeActivity:
			counts.PriceRanges[item.Activity.PriceRange]++
		case models.ItemTypeRestaurant:
			counts.PriceRanges[item.Restaurant.PriceRange]++
		}
	}

	g = f
	g.DietaryOptions = nil
	for _, item := range g.Apply(activities, restaurants) {
		if item.Type == models.ItemTypeRestaurant {
			for _, opt := range item.Restaurant.DietaryOptions {
				counts.DietaryOptions[opt]++
			}
		}
	}

	g = f
	g.Cuisines = nil
	for _, item := range g.Apply(activities, restaurants) {
		if item.Type == models.ItemTypeRestaurant {
			counts.Cuisines[item.Restaurant.Cuisine]++
		}
	}

	return counts
}
