package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JAPLAN_BACK-END/internal/dto"
	"JAPLAN_BACK-END/internal/models"
	"JAPLAN_BACK-END/internal/planner"
)

func catalogRequest(t *testing.T, target string) (*httptest.ResponseRecorder, dto.CatalogResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	NewCatalogHandler().Catalog(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var resp dto.CatalogResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCatalog_NoFiltersReturnsEverything(t *testing.T) {
	activities, restaurants := planner.DefaultCatalog()

	rec, resp := catalogRequest(t, "/api/catalog")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, len(activities)+len(restaurants), resp.Total)
	assert.Len(t, resp.Items, resp.Total)
}

func TestCatalog_TypeFilter(t *testing.T) {
	activities, _ := planner.DefaultCatalog()

	_, resp := catalogRequest(t, "/api/catalog?type=activity")

	assert.Equal(t, len(activities), resp.Total)
	for _, item := range resp.Items {
		assert.Equal(t, models.ItemTypeActivity, item.Type)
	}
}

func TestCatalog_RepeatedFacetParamsORTogether(t *testing.T) {
	_, resp := catalogRequest(t, "/api/catalog?type=restaurant&price=low&price=medium")

	require.NotZero(t, resp.Total)
	for _, item := range resp.Items {
		require.NotNil(t, item.Restaurant)
		assert.Contains(t, []string{"low", "medium"}, item.Restaurant.PriceRange)
	}
}

func TestCatalog_QuerySearch(t *testing.T) {
	_, resp := catalogRequest(t, "/api/catalog?q=sushi")

	require.NotZero(t, resp.Total)
	for _, item := range resp.Items {
		assert.Equal(t, models.ItemTypeRestaurant, item.Type)
	}
}

func TestCatalog_CountsPresent(t *testing.T) {
	_, resp := catalogRequest(t, "/api/catalog?price=low")

	assert.NotEmpty(t, resp.Counts.PriceRanges)
	assert.NotEmpty(t, resp.Counts.Cuisines)
}

func TestCatalog_InvalidType(t *testing.T) {
	rec, _ := catalogRequest(t, "/api/catalog?type=hotel")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Validation error", errResp.Error)
}

func TestCatalog_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NewCatalogHandler().Catalog(rec, httptest.NewRequest(http.MethodPost, "/api/catalog", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCatalog_ItemsMarshalFlatWithTypeTag(t *testing.T) {
	rec, _ := catalogRequest(t, "/api/catalog?type=restaurant&cuisine=Sushi")

	var raw struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.NotEmpty(t, raw.Items)

	first := raw.Items[0]
	assert.Equal(t, "restaurant", first["type"])
	assert.Contains(t, first, "cuisine")
	assert.Contains(t, first, "priceRange")
	assert.NotContains(t, first, "Restaurant", "variant fields are flattened, not nested")
}
