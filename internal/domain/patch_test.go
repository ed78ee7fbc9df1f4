package domain

import (
	"reflect"
	"testing"
	"time"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string       { return &s }
func boolPtr(b bool) *bool          { return &b }
func slicePtr(s []string) *[]string { return &s }

func TestEducationPatchFields(t *testing.T) {
	tests := []struct {
		name     string
		patch    EducationPatch
		expected map[string]any
	}{
		{
			name:     "empty patch yields no fields",
			patch:    EducationPatch{},
			expected: map[string]any{},
		},
		{
			name:  "only present fields are included",
			patch: EducationPatch{Degree: strPtr("MSc"), CGPA: strPtr("9.1")},
			expected: map[string]any{
				"degree": "MSc",
				"cgpa":   "9.1",
			},
		},
		{
			name:  "explicit empty string is preserved",
			patch: EducationPatch{Status: strPtr("")},
			expected: map[string]any{
				"status": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Fields()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Fields() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestProjectPatchFields(t *testing.T) {
	tests := []struct {
		name     string
		patch    ProjectPatch
		expected map[string]any
	}{
		{
			name:  "explicit false is preserved",
			patch: ProjectPatch{Featured: boolPtr(false)},
			expected: map[string]any{
				"featured": false,
			},
		},
		{
			name:  "explicit empty slice is preserved",
			patch: ProjectPatch{Technologies: slicePtr([]string{})},
			expected: map[string]any{
				"technologies": []string{},
			},
		},
		{
			name: "mixed fields",
			patch: ProjectPatch{
				Title:    strPtr("Gesture Recognition"),
				Category: strPtr("AI/ML"),
				Featured: boolPtr(true),
			},
			expected: map[string]any{
				"title":    "Gesture Recognition",
				"category": "AI/ML",
				"featured": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Fields()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Fields() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSkillsPatchFields(t *testing.T) {
	patch := SkillsPatch{
		Languages: slicePtr([]string{"Python", "Go"}),
		Hardware:  slicePtr([]string{}),
	}

	got := patch.Fields()
	if len(got) != 2 {
		t.Fatalf("Fields() returned %d entries, want 2", len(got))
	}
	if !reflect.DeepEqual(got["languages"], []string{"Python", "Go"}) {
		t.Errorf("languages = %v", got["languages"])
	}
	if !reflect.DeepEqual(got["hardware"], []string{}) {
		t.Errorf("hardware = %v, want empty slice", got["hardware"])
	}
}

func TestCreateRecordAssignsIdentity(t *testing.T) {
	created := EducationCreate{
		Institution: "Mahindra University",
		Degree:      "B.Tech in Artificial Intelligence",
		Location:    "Hyderabad, Telangana",
		Duration:    "Aug 2021 – Jun 2025",
		CGPA:        "8.02",
	}

	rec := created.Record("edu-1", testTime)
	if rec.ID != "edu-1" {
		t.Errorf("ID = %q, want edu-1", rec.ID)
	}
	if !rec.CreatedAt.Equal(testTime) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, testTime)
	}
	if rec.Status != nil {
		t.Errorf("Status = %v, want nil", rec.Status)
	}
	if rec.Institution != created.Institution {
		t.Errorf("Institution = %q", rec.Institution)
	}
}
