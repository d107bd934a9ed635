package handlers

import (
	"net/http"
	"strings"

	"JAPLAN_BACK-END/internal/dto"
	"JAPLAN_BACK-END/internal/planner"
	"JAPLAN_BACK-END/internal/utils"
)

// CatalogHandler serves the activity/restaurant palette. The catalog is
// fixed sample data, so the handler carries no database pool.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Catalog handles GET /api/catalog with facet filters
// @Summary List catalog items matching the active filters
// @Description Facet params are repeatable (e.g. price=low&price=medium); values inside one facet OR together, facets AND together.
// @Tags catalog
// @Produce json
// @Param type query string false "all|activity|restaurant"
// @Param q query string false "free-text search over name, description, category/cuisine"
// @Param category query []string false "activity categories"
// @Param price query []string false "price ranges"
// @Param cuisine query []string false "cuisines"
// @Param dietary query []string false "dietary options"
// @Success 200 {object} dto.CatalogResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/catalog [get]
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	itemType := strings.ToLower(strings.TrimSpace(q.Get("type")))
	switch itemType {
	case "", planner.TypeAll, planner.TypeActivity, planner.TypeRestaurant:
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "type must be all, activity, or restaurant")
		return
	}

	filters := planner.Filters{
		ActivityCategories: q["category"],
		PriceRanges:        q["price"],
		DietaryOptions:     q["dietary"],
		Cuisines:           q["cuisine"],
		ItemType:           itemType,
		Query:              q.Get("q"),
	}

	activities, restaurants := planner.DefaultCatalog()
	items := filters.Apply(activities, restaurants)

	utils.WriteJSONResponse(w, http.StatusOK, dto.CatalogResponse{
		Items:  items,
		Counts: filters.Counts(activities, restaurants),
		Total:  len(items),
	})
}
