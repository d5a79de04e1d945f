package dto

import (
	"encoding/json"
	"testing"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var req UpdateTaskRequest
	payload := `{"description":null,"estimated_hours":4.5}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !req.Description.Set || req.Description.Valid {
		t.Errorf("null must be Set and not Valid, got %+v", req.Description)
	}
	if !req.EstimatedHours.Set || !req.EstimatedHours.Valid || req.EstimatedHours.Value != 4.5 {
		t.Errorf("value must be Set and Valid, got %+v", req.EstimatedHours)
	}
	if req.ActualHours.Set {
		t.Errorf("absent key must not be Set, got %+v", req.ActualHours)
	}
	if req.TagIDs.Set {
		t.Errorf("absent tag_ids must not be Set, got %+v", req.TagIDs)
	}
}

func TestOptionalEmptyTagListIsPresent(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"tag_ids":[]}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !req.TagIDs.Set || !req.TagIDs.Valid {
		t.Fatalf("empty list must be Set and Valid, got %+v", req.TagIDs)
	}
	if len(req.TagIDs.Value) != 0 {
		t.Errorf("expected empty list, got %v", req.TagIDs.Value)
	}
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"estimated_hours":"soon"}`), &req); err == nil {
		t.Fatal("expected a type error")
	}
}
