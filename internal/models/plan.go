package models

import (
	"encoding/json"
	"time"
)

// FoodPreferences groups the food-related answers from the preferences form
type FoodPreferences struct {
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	CuisinePreferences  []string `json:"cuisinePreferences"`
}

// UserPreferences is the snapshot captured by the preferences form and used
// to size the plan. It is read-only input as far as the planner is concerned.
type UserPreferences struct {
	Hobbies         []string        `json:"hobbies"`
	FoodPreferences FoodPreferences `json:"foodPreferences"`
	Budget          string          `json:"budget"` // low | medium | high | luxury | flexible
	TripDuration    int             `json:"tripDuration"`
	TravelStyle     string          `json:"travelStyle"` // relaxed | adventurous | balanced | cultural | foodie
}

// GridPosition is a rendering hint only; it never participates in identity
type GridPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlacedItem is a catalog item dropped into a specific day of a plan.
// The ID is synthetic and unique within the plan; it stays stable when the
// item is moved between days or slots.
type PlacedItem struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"` // activity | restaurant
	Item     CatalogItem  `json:"item"`
	TimeSlot string       `json:"timeSlot"`
	Position GridPosition `json:"position"`
}

// UnmarshalJSON decodes the embedded catalog item using the wrapper's type
// tag, since plans persisted by older clients do not repeat the tag inside
// the item object.
func (p *PlacedItem) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID       string          `json:"id"`
		Type     string          `json:"type"`
		Item     json.RawMessage `json:"item"`
		TimeSlot string          `json:"timeSlot"`
		Position GridPosition    `json:"position"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var item CatalogItem
	if len(aux.Item) > 0 {
		if err := item.decodeAs(aux.Type, aux.Item); err != nil {
			return err
		}
	}
	*p = PlacedItem{
		ID:       aux.ID,
		Type:     aux.Type,
		Item:     item,
		TimeSlot: aux.TimeSlot,
		Position: aux.Position,
	}
	return nil
}

// Day is one numbered day of the trip. Day numbers are 1-indexed and
// contiguous; items keep insertion order.
type Day struct {
	Day   int          `json:"day"`
	Date  *string      `json:"date,omitempty"`
	Items []PlacedItem `json:"items"`
}

// Plan is the full itinerary, persisted as one unit
type Plan struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name,omitempty"`
	UserID      *string         `json:"userId,omitempty"`
	Preferences UserPreferences `json:"preferences"`
	Days        []Day           `json:"days"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
