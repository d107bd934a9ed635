package planner

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"JAPLAN_BACK-END/internal/models"
)

// DragPayload is the in-process envelope a drag gesture carries: the dragged
// catalog item's fields flattened next to a type tag, plus the placed id and
// time slot when the gesture moves an item that is already on the grid.
type DragPayload struct {
	Item     models.CatalogItem
	PlacedID string
	TimeSlot string
}

// DecodePayload parses a drag payload. Callers drop malformed payloads
// silently; the error only tells them to.
func DecodePayload(data []byte) (DragPayload, error) {
	var head struct {
		Type     string `json:"type"`
		PlacedID string `json:"placedId"`
		TimeSlot string `json:"timeSlot"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return DragPayload{}, fmt.Errorf("decode drag payload: %w", err)
	}
	var item models.CatalogItem
	if err := json.Unmarshal(data, &item); err != nil {
		return DragPayload{}, fmt.Errorf("decode drag payload: %w", err)
	}
	return DragPayload{Item: item, PlacedID: head.PlacedID, TimeSlot: head.TimeSlot}, nil
}

// PlacedItem builds the grid occupant for a drop at the given slot and
// position. A payload without a placed id is a fresh placement and gets a
// new uuid; a payload carrying one is a move and keeps it, so the id stays
// stable across the move.
func (p DragPayload) PlacedItem(timeSlot string, pos models.GridPosition) models.PlacedItem {
	id := p.PlacedID
	if id == "" {
		id = uuid.New().String()
	}
	if timeSlot == "" {
		timeSlot = p.TimeSlot
	}
	if timeSlot == "" {
		timeSlot = DefaultTimeSlot
	}
	return models.PlacedItem{
		ID:       id,
		Type:     p.Item.Type,
		Item:     p.Item,
		TimeSlot: timeSlot,
		Position: pos,
	}
}

// EncodePayload serializes a palette item for a fresh drag
func EncodePayload(item models.CatalogItem) ([]byte, error) {
	return json.Marshal(item)
}

// EncodeMove serializes a grid item for a drag that moves it
func EncodeMove(placed models.PlacedItem) ([]byte, error) {
	flat, err := json.Marshal(placed.Item)
	if err != nil {
		return nil, err
	}
	var envelope map[string]any
	if err := json.Unmarshal(flat, &envelope); err != nil {
		return nil, err
	}
	envelope["placedId"] = placed.ID
	envelope["timeSlot"] = placed.TimeSlot
	return json.Marshal(envelope)
}
