package planner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JAPLAN_BACK-END/internal/models"
)

func TestDecodePayload_FreshDragFromPalette(t *testing.T) {
	data := []byte(`{"type":"activity","id":"act-9","name":"Nara Deer Park","category":"Nature","priceRange":"free","duration":3}`)

	p, err := DecodePayload(data)

	require.NoError(t, err)
	assert.Empty(t, p.PlacedID)
	assert.Equal(t, models.ItemTypeActivity, p.Item.Type)
	require.NotNil(t, p.Item.Activity)
	assert.Equal(t, "Nara Deer Park", p.Item.Activity.Name)
	assert.Equal(t, 3.0, p.Item.Activity.Duration)
}

func TestDecodePayload_MoveCarriesPlacedIDAndSlot(t *testing.T) {
	data := []byte(`{"type":"restaurant","id":"res-2","name":"Ichiran","cuisine":"Ramen","priceRange":"low","placedId":"placed-42","timeSlot":"12:00"}`)

	p, err := DecodePayload(data)

	require.NoError(t, err)
	assert.Equal(t, "placed-42", p.PlacedID)
	assert.Equal(t, "12:00", p.TimeSlot)
	require.NotNil(t, p.Item.Restaurant)
	assert.Equal(t, "Ichiran", p.Item.Restaurant.Name)
}

func TestDecodePayload_Malformed(t *testing.T) {
	_, err := DecodePayload([]byte(`{"type":"activity"`))
	assert.Error(t, err)

	_, err = DecodePayload([]byte(`{"type":"hotel","id":"x"}`))
	assert.Error(t, err, "unknown type tag is rejected")
}

func TestDragPayload_PlacedItemFreshGetsNewID(t *testing.T) {
	p := DragPayload{Item: models.ActivityItem(models.Activity{ID: "act-1", Name: "Temple Walk"})}

	placed := p.PlacedItem("15:00", models.GridPosition{Row: 2, Col: 1})

	_, err := uuid.Parse(placed.ID)
	assert.NoError(t, err, "fresh placement gets a uuid")
	assert.Equal(t, "15:00", placed.TimeSlot)
	assert.Equal(t, models.ItemTypeActivity, placed.Type)
	assert.Equal(t, 2, placed.Position.Row)
}

func TestDragPayload_PlacedItemMoveKeepsID(t *testing.T) {
	p := DragPayload{
		Item:     models.ActivityItem(models.Activity{ID: "act-1"}),
		PlacedID: "placed-7",
		TimeSlot: "12:00",
	}

	placed := p.PlacedItem("", models.GridPosition{})

	assert.Equal(t, "placed-7", placed.ID)
	assert.Equal(t, "12:00", placed.TimeSlot, "slot falls back to the payload's slot")
}

func TestDragPayload_PlacedItemSlotDefaults(t *testing.T) {
	p := DragPayload{Item: models.ActivityItem(models.Activity{ID: "act-1"})}

	placed := p.PlacedItem("", models.GridPosition{})

	assert.Equal(t, DefaultTimeSlot, placed.TimeSlot)
}

func TestEncodeMove_RoundTrip(t *testing.T) {
	placed := models.PlacedItem{
		ID:       "placed-3",
		Type:     models.ItemTypeRestaurant,
		Item:     models.RestaurantItem(models.Restaurant{ID: "res-5", Name: "Sushi Dai", Cuisine: "Sushi", PriceRange: "high"}),
		TimeSlot: "18:00",
	}

	data, err := EncodeMove(placed)
	require.NoError(t, err)

	p, err := DecodePayload(data)
	require.NoError(t, err)
	assert.Equal(t, "placed-3", p.PlacedID)
	assert.Equal(t, "18:00", p.TimeSlot)
	require.NotNil(t, p.Item.Restaurant)
	assert.Equal(t, "Sushi Dai", p.Item.Restaurant.Name)
}

func TestEncodePayload_RoundTrip(t *testing.T) {
	item := models.ActivityItem(models.Activity{ID: "act-2", Name: "Gion Walk", Category: "Culture", PriceRange: "low"})

	data, err := EncodePayload(item)
	require.NoError(t, err)

	p, err := DecodePayload(data)
	require.NoError(t, err)
	assert.Empty(t, p.PlacedID)
	assert.Equal(t, item.ItemID(), p.Item.ItemID())
	assert.Equal(t, item.ItemName(), p.Item.ItemName())
}
