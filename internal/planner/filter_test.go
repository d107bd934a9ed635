package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JAPLAN_BACK-END/internal/models"
)

var filterActivities = []models.Activity{
	{ID: "a1", Name: "Temple Walk", Description: "Morning walk around the old temples", Category: "Sightseeing", PriceRange: "free"},
	{ID: "a2", Name: "Art Museum", Description: "Modern art collection", Category: "Museums", PriceRange: "medium"},
	{ID: "a3", Name: "River Kayaking", Description: "Guided kayak tour", Category: "Nature", PriceRange: "high"},
}

var filterRestaurants = []models.Restaurant{
	{ID: "r1", Name: "Sushi Stand", Description: "Counter seats only", Cuisine: "Sushi", PriceRange: "low", DietaryOptions: []string{"pescatarian"}},
	{ID: "r2", Name: "Sushi Palace", Description: "Omakase dinner", Cuisine: "Sushi", PriceRange: "high"},
	{ID: "r3", Name: "Sushi Garden", Description: "Seasonal nigiri", Cuisine: "Sushi", PriceRange: "high", DietaryOptions: []string{"gluten-free"}},
	{ID: "r4", Name: "Noodle House", Description: "Hand-pulled ramen", Cuisine: "Ramen", PriceRange: "low", DietaryOptions: []string{"vegetarian"}},
}

func TestFilters_EmptyReturnsFullCatalogInOrder(t *testing.T) {
	items := Filters{}.Apply(filterActivities, filterRestaurants)

	require.Len(t, items, 7)
	// activities first, catalog order preserved within each family
	assert.Equal(t, "a1", items[0].Activity.ID)
	assert.Equal(t, "a2", items[1].Activity.ID)
	assert.Equal(t, "a3", items[2].Activity.ID)
	assert.Equal(t, "r1", items[3].Restaurant.ID)
	assert.Equal(t, "r4", items[6].Restaurant.ID)
}

func TestFilters_Idempotent(t *testing.T) {
	f := Filters{PriceRanges: []string{"low", "high"}, Query: "sushi"}

	first := f.Apply(filterActivities, filterRestaurants)
	second := f.Apply(filterActivities, filterRestaurants)

	assert.Equal(t, first, second)
}

func TestFilters_ItemTypeNarrowsFamily(t *testing.T) {
	acts := Filters{ItemType: TypeActivity}.Apply(filterActivities, filterRestaurants)
	require.Len(t, acts, 3)
	for _, item := range acts {
		assert.Equal(t, models.ItemTypeActivity, item.Type)
	}

	rests := Filters{ItemType: TypeRestaurant}.Apply(filterActivities, filterRestaurants)
	require.Len(t, rests, 4)
	for _, item := range rests {
		assert.Equal(t, models.ItemTypeRestaurant, item.Type)
	}
}

func TestFilters_CuisineWithoutPriceRestriction(t *testing.T) {
	// three Sushi restaurants (one low, two high), empty price facet
	f := Filters{Cuisines: []string{"Sushi"}}

	items := f.Apply(nil, filterRestaurants)

	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, models.ItemTypeRestaurant, item.Type)
		assert.Equal(t, "Sushi", item.Restaurant.Cuisine)
	}
}

func TestFilters_FacetsCombineWithAND(t *testing.T) {
	f := Filters{Cuisines: []string{"Sushi"}, PriceRanges: []string{"high"}}

	items := f.Apply(nil, filterRestaurants)

	require.Len(t, items, 2)
	assert.Equal(t, "r2", items[0].Restaurant.ID)
	assert.Equal(t, "r3", items[1].Restaurant.ID)
}

func TestFilters_ValuesWithinFacetCombineWithOR(t *testing.T) {
	f := Filters{PriceRanges: []string{"free", "low"}}

	items := f.Apply(filterActivities, filterRestaurants)

	require.Len(t, items, 3)
	assert.Equal(t, "a1", items[0].Activity.ID)
	assert.Equal(t, "r1", items[1].Restaurant.ID)
	assert.Equal(t, "r4", items[2].Restaurant.ID)
}

func TestFilters_DietaryAppliesOnlyToRestaurants(t *testing.T) {
	f := Filters{DietaryOptions: []string{"vegetarian"}}

	items := f.Apply(filterActivities, filterRestaurants)

	// all activities pass; only the vegetarian restaurant remains
	require.Len(t, items, 4)
	assert.Equal(t, "r4", items[3].Restaurant.ID)
}

func TestFilters_QueryIsCaseInsensitiveAcrossFields(t *testing.T) {
	byName := Filters{Query: "KAYAK"}.Apply(filterActivities, filterRestaurants)
	require.Len(t, byName, 1)
	assert.Equal(t, "a3", byName[0].Activity.ID)

	byCuisine := Filters{Query: "ramen"}.Apply(filterActivities, filterRestaurants)
	require.Len(t, byCuisine, 1)
	assert.Equal(t, "r4", byCuisine[0].Restaurant.ID)

	byDescription := Filters{Query: "omakase"}.Apply(filterActivities, filterRestaurants)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "r2", byDescription[0].Restaurant.ID)
}

func TestFilters_CountsIgnoreOwnFacet(t *testing.T) {
	// price facet active; price counts must still show every option
	f := Filters{PriceRanges: []string{"low"}}

	counts := f.Counts(filterActivities, filterRestaurants)

	assert.Equal(t, 2, counts.PriceRanges["low"])
	assert.Equal(t, 3, counts.PriceRanges["high"])
	assert.Equal(t, 1, counts.PriceRanges["free"])
	assert.Equal(t, 1, counts.PriceRanges["medium"])

	// other dimensions are counted with the price facet applied
	assert.Equal(t, 1, counts.Cuisines["Sushi"])
	assert.Equal(t, 1, counts.Cuisines["Ramen"])
	assert.Zero(t, counts.ActivityCategories["Sightseeing"], "free activity filtered out by low price")
}

func TestFilters_CountsRespectOtherFacets(t *testing.T) {
	f := Filters{Cuisines: []string{"Sushi"}}

	counts := f.Counts(filterActivities, filterRestaurants)

	// cuisine counts come from the set without the cuisine facet
	assert.Equal(t, 3, counts.Cuisines["Sushi"])
	assert.Equal(t, 1, counts.Cuisines["Ramen"])
	// dietary counts only see sushi restaurants
	assert.Equal(t, 1, counts.DietaryOptions["pescatarian"])
	assert.Equal(t, 1, counts.DietaryOptions["gluten-free"])
	assert.Zero(t, counts.DietaryOptions["vegetarian"])
}
