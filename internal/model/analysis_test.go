package model

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestChecklist_IsImmutable(t *testing.T) {
	first := Checklist()
	first[0] = "x-powered-by"

	if got := Checklist()[0]; got != "content-security-policy" {
		t.Errorf("Checklist()[0] = %q after caller mutation, want %q", got, "content-security-policy")
	}
	if len(Checklist()) != 5 {
		t.Errorf("len(Checklist()) = %d, want 5", len(Checklist()))
	}
}

func TestHeaderAnalysis_PresentMissing(t *testing.T) {
	a := HeaderAnalysis{
		"content-security-policy":   Missing,
		"strict-transport-security": Present,
		"x-frame-options":           Missing,
		"x-content-type-options":    Present,
		"referrer-policy":           Missing,
	}

	wantPresent := []string{"strict-transport-security", "x-content-type-options"}
	if got := a.Present(); !slices.Equal(got, wantPresent) {
		t.Errorf("Present() = %v, want %v", got, wantPresent)
	}

	wantMissing := []string{"content-security-policy", "x-frame-options", "referrer-policy"}
	if got := a.Missing(); !slices.Equal(got, wantMissing) {
		t.Errorf("Missing() = %v, want %v", got, wantMissing)
	}
}

func TestAnalysisResponse_JSONShape(t *testing.T) {
	resp := AnalysisResponse{
		Analysis:   HeaderAnalysis{"x-frame-options": Present},
		AIAnalysis: "summary",
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"analysis":{"x-frame-options":"PRESENT"},"ai_analysis":"summary"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
