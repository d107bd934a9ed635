package dto

// PlanNamesResponse lists the saved plan names for the load dialog
type PlanNamesResponse struct {
	Names []string `json:"names"`
}

// DeletePlanResponse confirms a deletion
type DeletePlanResponse struct {
	Message string `json:"message"`
}
