package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"JAPLAN_BACK-END/internal/config"
	"JAPLAN_BACK-END/internal/dto"
	"JAPLAN_BACK-END/internal/models"
	"JAPLAN_BACK-END/internal/planner"
	"JAPLAN_BACK-END/internal/utils"
)

// PlansHandler manages plan persistence endpoints
type PlansHandler struct {
	db     *pgxpool.Pool
	config *config.Config
}

// NewPlansHandler creates a new PlansHandler
func NewPlansHandler(db *pgxpool.Pool, cfg *config.Config) *PlansHandler {
	return &PlansHandler{db: db, config: cfg}
}

// Collection dispatches /api/plans
func (h *PlansHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreatePlan(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item dispatches /api/plans/{...}
func (h *PlansHandler) Item(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	switch {
	case rest == "names":
		h.PlanNames(w, r)
	case strings.HasPrefix(rest, "by-name/"):
		h.PlanByName(w, r)
	default:
		switch r.Method {
		case http.MethodGet:
			h.GetPlan(w, r)
		case http.MethodPut, http.MethodPatch:
			h.UpdatePlan(w, r)
		case http.MethodDelete:
			h.DeletePlan(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// CreatePlan handles POST /api/plans
// @Summary Save a new plan
// @Tags plans
// @Accept json
// @Produce json
// @Param payload body models.Plan true "Plan payload (no id)"
// @Success 201 {object} models.Plan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/plans [post]
func (h *PlansHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var plan models.Plan
	if err := utils.DecodeJSONRequest(w, r, &plan); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	plan = planner.Normalize(plan)
	plan.Name = strings.TrimSpace(plan.Name)

	// Plan names are the load-by-name key, so a duplicate is a conflict
	if plan.Name != "" {
		var exists bool
		if err := h.db.QueryRow(context.Background(),
			`SELECT EXISTS(SELECT 1 FROM plans WHERE name = $1)`, plan.Name).Scan(&exists); err == nil && exists {
			utils.WriteErrorResponse(w, http.StatusConflict, "Name taken", "A plan with this name already exists")
			return
		}
	}

	// Owner comes from the optional auth context; anonymous plans have none
	var ownerID *uuid.UUID
	if uid, ok := utils.GetUserIDFromContext(r.Context()); ok {
		ownerID = &uid
	}

	// Preferences and days are stored as JSONB documents, one row per plan
	prefsJSON, daysJSON, err := encodePlanDocs(plan)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Encoding error", err.Error())
		return
	}

	now := time.Now()
	newID := uuid.New()

	_, err = h.db.Exec(context.Background(),
		`INSERT INTO plans (id, name, user_id, preferences, days, created_at, updated_at)
         VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)`,
		newID, plan.Name, ownerID, prefsJSON, daysJSON, now, now,
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	plan.ID = newID.String()
	if ownerID != nil {
		s := ownerID.String()
		plan.UserID = &s
	}
	plan.CreatedAt = &now
	plan.UpdatedAt = &now

	utils.WriteJSONResponse(w, http.StatusCreated, plan)
}

// GetPlan handles GET /api/plans/{plan_id}
// @Summary Get a plan by id
// @Tags plans
// @Produce json
// @Param plan_id path string true "Plan ID"
// @Success 200 {object} models.Plan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/plans/{plan_id} [get]
func (h *PlansHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	planID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid plan id", "plan_id must be UUID")
		return
	}

	plan, ok := h.loadPlan(w, `SELECT id, COALESCE(name, ''), user_id, preferences, days, created_at, updated_at
           FROM plans WHERE id = $1`, planID)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, plan)
}

// PlanByName handles GET /api/plans/by-name/{name}
// @Summary Get a plan by its saved name
// @Tags plans
// @Produce json
// @Param name path string true "Plan name"
// @Success 200 {object} models.Plan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/plans/by-name/{name} [get]
func (h *PlansHandler) PlanByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/plans/by-name/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid plan name", "name is required")
		return
	}

	plan, ok := h.loadPlan(w, `SELECT id, COALESCE(name, ''), user_id, preferences, days, created_at, updated_at
           FROM plans WHERE name = $1`, name)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, plan)
}

// UpdatePlan handles PUT /api/plans/{plan_id}
// @Summary Replace a saved plan
// @Tags plans
// @Accept json
// @Produce json
// @Param plan_id path string true "Plan ID"
// @Param payload body models.Plan true "Full plan payload"
// @Success 200 {object} models.Plan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/plans/{plan_id} [put]
func (h *PlansHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	planID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid plan id", "plan_id must be UUID")
		return
	}

	// Saves replace the stored plan wholesale; there is no field-level merge
	var plan models.Plan
	if err := utils.DecodeJSONRequest(w, r, &plan); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	plan = planner.Normalize(plan)
	plan.Name = strings.TrimSpace(plan.Name)

	var createdAt time.Time
	var ownerID *uuid.UUID
	err = h.db.QueryRow(context.Background(),
		`SELECT created_at, user_id FROM plans WHERE id = $1`, planID).Scan(&createdAt, &ownerID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Plan not found")
		return
	}

	prefsJSON, daysJSON, err := encodePlanDocs(plan)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Encoding error", err.Error())
		return
	}

	now := time.Now()
	_, err = h.db.Exec(context.Background(),
		`UPDATE plans
            SET name = NULLIF($1, ''),
                preferences = $2,
                days = $3,
                updated_at = $4
          WHERE id = $5`,
		plan.Name, prefsJSON, daysJSON, now, planID,
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	plan.ID = planID.String()
	if ownerID != nil {
		s := ownerID.String()
		plan.UserID = &s
	}
	plan.CreatedAt = &createdAt
	plan.UpdatedAt = &now

	utils.WriteJSONResponse(w, http.StatusOK, plan)
}

// DeletePlan handles DELETE /api/plans/{plan_id}
// @Summary Delete a plan
// @Tags plans
// @Produce json
// @Param plan_id path string true "Plan ID"
// @Success 200 {object} dto.DeletePlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/plans/{plan_id} [delete]
func (h *PlansHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	planID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid plan id", "plan_id must be UUID")
		return
	}

	tag, err := h.db.Exec(context.Background(), `DELETE FROM plans WHERE id = $1`, planID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if tag.RowsAffected() == 0 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Plan not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DeletePlanResponse{Message: "Plan deleted successfully"})
}

// PlanNames handles GET /api/plans/names
// @Summary List saved plan names
// @Tags plans
// @Produce json
// @Success 200 {object} dto.PlanNamesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/plans/names [get]
func (h *PlansHandler) PlanNames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT name FROM plans WHERE name IS NOT NULL ORDER BY updated_at DESC`)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.PlanNamesResponse{Names: names})
}

// loadPlan runs a single-row plan query and writes the 404 on a miss
func (h *PlansHandler) loadPlan(w http.ResponseWriter, query string, arg any) (models.Plan, bool) {
	var plan models.Plan
	var id uuid.UUID
	var ownerID *uuid.UUID
	var prefsJSON, daysJSON []byte
	var createdAt, updatedAt time.Time

	err := h.db.QueryRow(context.Background(), query, arg).Scan(
		&id, &plan.Name, &ownerID, &prefsJSON, &daysJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Plan not found")
		return models.Plan{}, false
	}
	if err := json.Unmarshal(prefsJSON, &plan.Preferences); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Decoding error", err.Error())
		return models.Plan{}, false
	}
	if err := json.Unmarshal(daysJSON, &plan.Days); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Decoding error", err.Error())
		return models.Plan{}, false
	}

	plan.ID = id.String()
	if ownerID != nil {
		s := ownerID.String()
		plan.UserID = &s
	}
	plan.CreatedAt = &createdAt
	plan.UpdatedAt = &updatedAt
	return plan, true
}

// encodePlanDocs marshals the two JSONB documents of a plan row
func encodePlanDocs(plan models.Plan) (prefsJSON, daysJSON []byte, err error) {
	if prefsJSON, err = json.Marshal(plan.Preferences); err != nil {
		return nil, nil, err
	}
	if daysJSON, err = json.Marshal(plan.Days); err != nil {
		return nil, nil, err
	}
	return prefsJSON, daysJSON, nil
}
