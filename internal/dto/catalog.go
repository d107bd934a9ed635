package dto

import (
	"JAPLAN_BACK-END/internal/models"
	"JAPLAN_BACK-END/internal/planner"
)

// CatalogResponse is the filtered palette plus the facet badge counts
type CatalogResponse struct {
	Items  []models.CatalogItem `json:"items"`
	Counts planner.FacetCounts  `json:"counts"`
	Total  int                  `json:"total"`
}
