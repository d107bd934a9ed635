package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogItem_MarshalFlatWithTypeTag(t *testing.T) {
	item := ActivityItem(Activity{ID: "act-1", Name: "Temple Walk", Category: "Sightseeing", Duration: 2, PriceRange: "free"})

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "activity", flat["type"])
	assert.Equal(t, "Temple Walk", flat["name"])
	assert.Equal(t, "Sightseeing", flat["category"])
	assert.NotContains(t, flat, "Activity")
}

func TestCatalogItem_UnmarshalDispatchesOnType(t *testing.T) {
	var item CatalogItem
	err := json.Unmarshal([]byte(`{"type":"restaurant","id":"rest-1","name":"Endo Sushi","cuisine":"Sushi","priceRange":"high"}`), &item)

	require.NoError(t, err)
	assert.Equal(t, ItemTypeRestaurant, item.Type)
	require.NotNil(t, item.Restaurant)
	assert.Nil(t, item.Activity)
	assert.Equal(t, "Sushi", item.Restaurant.Cuisine)
	assert.Equal(t, "rest-1", item.ItemID())
	assert.Equal(t, "Endo Sushi", item.ItemName())
}

func TestCatalogItem_UnmarshalUnknownType(t *testing.T) {
	var item CatalogItem
	err := json.Unmarshal([]byte(`{"type":"hotel","id":"x"}`), &item)
	assert.Error(t, err)
}

func TestCatalogItem_MarshalMismatchedVariant(t *testing.T) {
	_, err := json.Marshal(CatalogItem{Type: ItemTypeActivity})
	assert.Error(t, err)
}

func TestPlacedItem_DecodeUsesWrapperTypeTag(t *testing.T) {
	// older clients persist the item without its own type tag
	data := []byte(`{
		"id": "placed-1",
		"type": "restaurant",
		"item": {"id": "rest-3", "name": "Uobei Genki Sushi", "cuisine": "Sushi", "priceRange": "low"},
		"timeSlot": "12:00",
		"position": {"row": 1, "col": 3}
	}`)

	var placed PlacedItem
	require.NoError(t, json.Unmarshal(data, &placed))

	assert.Equal(t, "placed-1", placed.ID)
	assert.Equal(t, ItemTypeRestaurant, placed.Type)
	require.NotNil(t, placed.Item.Restaurant)
	assert.Equal(t, "Uobei Genki Sushi", placed.Item.Restaurant.Name)
	assert.Equal(t, "12:00", placed.TimeSlot)
	assert.Equal(t, 3, placed.Position.Col)
}

func TestPlacedItem_RoundTrip(t *testing.T) {
	placed := PlacedItem{
		ID:       "placed-2",
		Type:     ItemTypeActivity,
		Item:     ActivityItem(Activity{ID: "act-4", Name: "Mount Fuji Day Trip", Category: "Nature", PriceRange: "high"}),
		TimeSlot: "09:00",
	}

	data, err := json.Marshal(placed)
	require.NoError(t, err)

	var decoded PlacedItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, placed.ID, decoded.ID)
	assert.Equal(t, placed.TimeSlot, decoded.TimeSlot)
	require.NotNil(t, decoded.Item.Activity)
	assert.Equal(t, "Mount Fuji Day Trip", decoded.Item.Activity.Name)
}

func TestPlan_DecodeFullDocument(t *testing.T) {
	data := []byte(`{
		"id": "7e6f4a2b-1c3d-4e5f-8a9b-0c1d2e3f4a5b",
		"name": "Kyoto Week",
		"preferences": {
			"hobbies": ["photography"],
			"foodPreferences": {"dietaryRestrictions": [], "cuisinePreferences": ["Sushi"]},
			"budget": "medium",
			"tripDuration": 2,
			"travelStyle": "balanced"
		},
		"days": [
			{"day": 1, "items": [{"id": "p1", "type": "activity", "item": {"id": "act-1", "name": "Fushimi Inari Shrine"}, "timeSlot": "09:00", "position": {"row": 0, "col": 0}}]},
			{"day": 2, "items": []}
		]
	}`)

	var plan Plan
	require.NoError(t, json.Unmarshal(data, &plan))

	assert.Equal(t, "Kyoto Week", plan.Name)
	assert.Equal(t, 2, plan.Preferences.TripDuration)
	assert.Equal(t, []string{"Sushi"}, plan.Preferences.FoodPreferences.CuisinePreferences)
	require.Len(t, plan.Days, 2)
	require.Len(t, plan.Days[0].Items, 1)
	assert.Equal(t, "Fushimi Inari Shrine", plan.Days[0].Items[0].Item.ItemName())
}
