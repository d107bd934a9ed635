// Package gateway is the client side of the plan persistence API: an opaque
// asynchronous store for whole plans. It never retries and never merges; a
// failed call leaves the caller's in-memory plan untouched.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"JAPLAN_BACK-END/internal/dto"
	"JAPLAN_BACK-END/internal/models"
)

// PlanClient talks to the plans API of a Japlan backend
type PlanClient struct {
	baseURL string
	client  *http.Client
}

// NewPlanClient creates a client for the given base URL (e.g.
// "http://localhost:8080"). A nil httpClient uses http.DefaultClient;
// timeout semantics are whatever the supplied client carries.
func NewPlanClient(baseURL string, httpClient *http.Client) *PlanClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &PlanClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// CreatePlan saves a new plan and returns it with its assigned id
func (c *PlanClient) CreatePlan(ctx context.Context, plan models.Plan) (models.Plan, error) {
	var created models.Plan
	if err := c.do(ctx, http.MethodPost, "/api/plans", plan, &created); err != nil {
		return models.Plan{}, fmt.Errorf("create plan: %w", err)
	}
	return created, nil
}

// GetPlan loads a plan by id
func (c *PlanClient) GetPlan(ctx context.Context, id string) (models.Plan, error) {
	var plan models.Plan
	if err := c.do(ctx, http.MethodGet, "/api/plans/"+url.PathEscape(id), nil, &plan); err != nil {
		return models.Plan{}, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}

// GetPlanByName loads a plan by its saved name
func (c *PlanClient) GetPlanByName(ctx context.Context, name string) (models.Plan, error) {
	var plan models.Plan
	if err := c.do(ctx, http.MethodGet, "/api/plans/by-name/"+url.PathEscape(name), nil, &plan); err != nil {
		return models.Plan{}, fmt.Errorf("get plan by name: %w", err)
	}
	return plan, nil
}

// UpdatePlan replaces a saved plan wholesale
func (c *PlanClient) UpdatePlan(ctx context.Context, id string, plan models.Plan) (models.Plan, error) {
	var updated models.Plan
	if err := c.do(ctx, http.MethodPut, "/api/plans/"+url.PathEscape(id), plan, &updated); err != nil {
		return models.Plan{}, fmt.Errorf("update plan: %w", err)
	}
	return updated, nil
}

// DeletePlan deletes a saved plan
func (c *PlanClient) DeletePlan(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/plans/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// PlanNames lists the saved plan names
func (c *PlanClient) PlanNames(ctx context.Context) ([]string, error) {
	var resp dto.PlanNamesResponse
	if err := c.do(ctx, http.MethodGet, "/api/plans/names", nil, &resp); err != nil {
		return nil, fmt.Errorf("list plan names: %w", err)
	}
	return resp.Names, nil
}

// do sends one JSON request and decodes the response into out (unless nil).
// Any non-2xx status is an error carrying the server's error envelope when
// one was returned.
func (c *PlanClient) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s (status %d)", errResp.Error, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
