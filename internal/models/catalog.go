package models

import (
	"encoding/json"
	"fmt"
)

// Item type tags used across the catalog, drag payloads, and placed items
const (
	ItemTypeActivity   = "activity"
	ItemTypeRestaurant = "restaurant"
)

// Activity represents a bookable activity in the catalog
type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Duration    float64 `json:"duration"`   // in hours
	PriceRange  string  `json:"priceRange"` // free | low | medium | high
	Location    string  `json:"location,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Restaurant represents a restaurant in the catalog
type Restaurant struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Cuisine        string   `json:"cuisine"`
	PriceRange     string   `json:"priceRange"` // low | medium | high | luxury
	Location       string   `json:"location,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	DietaryOptions []string `json:"dietaryOptions,omitempty"`
}

// CatalogItem is the tagged union of the two catalog variants. Exactly one of
// Activity or Restaurant is set, matching Type.
type CatalogItem struct {
	Type       string
	Activity   *Activity
	Restaurant *Restaurant
}

// ActivityItem wraps an activity as a catalog item
func ActivityItem(a Activity) CatalogItem {
	return CatalogItem{Type: ItemTypeActivity, Activity: &a}
}

// RestaurantItem wraps a restaurant as a catalog item
func RestaurantItem(r Restaurant) CatalogItem {
	return CatalogItem{Type: ItemTypeRestaurant, Restaurant: &r}
}

// ItemID returns the source catalog id of the active variant
func (c CatalogItem) ItemID() string {
	switch c.Type {
	case ItemTypeActivity:
		if c.Activity != nil {
			return c.Activity.ID
		}
	case ItemTypeRestaurant:
		if c.Restaurant != nil {
			return c.Restaurant.ID
		}
	}
	return ""
}

// ItemName returns the display name of the active variant
func (c CatalogItem) ItemName() string {
	switch c.Type {
	case ItemTypeActivity:
		if c.Activity != nil {
			return c.Activity.Name
		}
	case ItemTypeRestaurant:
		if c.Restaurant != nil {
			return c.Restaurant.Name
		}
	}
	return ""
}

// MarshalJSON flattens the active variant's fields and adds the type tag,
// so the wire shape stays the flat object the frontend grid expects.
func (c CatalogItem) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case ItemTypeActivity:
		if c.Activity == nil {
			return nil, fmt.Errorf("catalog item tagged %q has no activity", c.Type)
		}
		return json.Marshal(struct {
			Type string `json:"type"`
			Activity
		}{c.Type, *c.Activity})
	case ItemTypeRestaurant:
		if c.Restaurant == nil {
			return nil, fmt.Errorf("catalog item tagged %q has no restaurant", c.Type)
		}
		return json.Marshal(struct {
			Type string `json:"type"`
			Restaurant
		}{c.Type, *c.Restaurant})
	}
	return nil, fmt.Errorf("unknown catalog item type %q", c.Type)
}

// UnmarshalJSON reads the type tag and decodes the matching variant
func (c *CatalogItem) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	return c.decodeAs(head.Type, data)
}

// decodeAs decodes the flat variant fields using an externally supplied type
// tag. Placed items persisted by older clients carry the tag on the wrapper
// only, so PlacedItem decoding funnels through here.
func (c *CatalogItem) decodeAs(itemType string, data []byte) error {
	switch itemType {
	case ItemTypeActivity:
		var a Activity
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		*c = CatalogItem{Type: ItemTypeActivity, Activity: &a}
		return nil
	case ItemTypeRestaurant:
		var r Restaurant
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*c = CatalogItem{Type: ItemTypeRestaurant, Restaurant: &r}
		return nil
	}
	return fmt.Errorf("unknown catalog item type %q", itemType)
}
