package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/store"
)

func strPtr(s string) *string { return &s }

func newEducation(institution string) domain.EducationCreate {
	return domain.EducationCreate{
		Institution: institution,
		Degree:      "B.Tech",
		Location:    "Hyderabad",
		Duration:    "2019 - 2023",
		CGPA:        "8.9",
	}
}

func TestCreateAssignsIdentity(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id1, err := s.CreateEducation(ctx, newEducation("IIT Madras"))
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}
	id2, err := s.CreateEducation(ctx, newEducation("NIT Warangal"))
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	if id1 == "" || id2 == "" {
		t.Fatalf("expected non-empty ids, got %q and %q", id1, id2)
	}
	if id1 == id2 {
		t.Fatalf("expected distinct ids, both were %q", id1)
	}

	recs, err := s.ListEducation(ctx)
	if err != nil {
		t.Fatalf("ListEducation: %v", err)
	}
	for _, r := range recs {
		if r.CreatedAt.IsZero() {
			t.Errorf("record %s has zero creation timestamp", r.ID)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		if _, err := s.CreateEducation(ctx, newEducation(n)); err != nil {
			t.Fatalf("CreateEducation(%s): %v", n, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	recs, err := s.ListEducation(ctx)
	if err != nil {
		t.Fatalf("ListEducation: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if recs[i].Institution != w {
			t.Errorf("position %d: got %q, want %q", i, recs[i].Institution, w)
		}
	}
}

func TestListCapped(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for i := 0; i < store.MaxListResults+5; i++ {
		if _, err := s.CreateAward(ctx, domain.AwardCreate{
			Title:       "award",
			Description: "desc",
			Year:        "2024",
		}); err != nil {
			t.Fatalf("CreateAward: %v", err)
		}
	}

	recs, err := s.ListAwards(ctx)
	if err != nil {
		t.Fatalf("ListAwards: %v", err)
	}
	if len(recs) != store.MaxListResults {
		t.Fatalf("expected list capped at %d, got %d", store.MaxListResults, len(recs))
	}
}

func TestEmptyListIsNotNil(t *testing.T) {
	s := NewStore()

	recs, err := s.ListExperience(context.Background())
	if err != nil {
		t.Fatalf("ListExperience: %v", err)
	}
	if recs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestUpdatePartial(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	create := newEducation("IIT Madras")
	create.Status = strPtr("ongoing")
	id, err := s.CreateEducation(ctx, create)
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	err = s.UpdateEducation(ctx, id, map[string]any{"degree": "M.Tech"})
	if err != nil {
		t.Fatalf("UpdateEducation: %v", err)
	}

	recs, err := s.ListEducation(ctx)
	if err != nil {
		t.Fatalf("ListEducation: %v", err)
	}
	got := recs[0]
	if got.Degree != "M.Tech" {
		t.Errorf("degree not updated: got %q", got.Degree)
	}
	if got.Institution != "IIT Madras" || got.CGPA != "8.9" {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if got.Status == nil || *got.Status != "ongoing" {
		t.Errorf("status changed: %v", got.Status)
	}
	if got.ID != id {
		t.Errorf("id changed: got %q, want %q", got.ID, id)
	}
}

func TestUpdateExplicitZeroValue(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id, err := s.CreateProject(ctx, domain.ProjectCreate{
		Title:        "portfolio",
		Duration:     "2024",
		Technologies: []string{"go"},
		Description:  "site",
		Achievements: []string{"shipped"},
		Category:     "web",
		Featured:     true,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if err := s.UpdateProject(ctx, id, map[string]any{"featured": false, "description": ""}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	recs, err := s.ListProjects(ctx, "")
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	got := recs[0]
	if got.Featured {
		t.Error("featured should be false after explicit update")
	}
	if got.Description != "" {
		t.Errorf("description should be empty, got %q", got.Description)
	}
	if got.Title != "portfolio" {
		t.Errorf("title changed: %q", got.Title)
	}
}

func TestUpdateErrors(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id, err := s.CreateEducation(ctx, newEducation("IIT Madras"))
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	tests := []struct {
		name    string
		id      string
		fields  map[string]any
		wantErr error
	}{
		{"unknown id", "no-such-id", map[string]any{"degree": "M.Tech"}, store.ErrNotFound},
		{"identical values", id, map[string]any{"institution": "IIT Madras"}, store.ErrNotModified},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.UpdateEducation(ctx, tc.id, tc.fields)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id, err := s.CreateCertification(ctx, domain.CertificationCreate{
		Title:       "cert",
		Issuer:      "issuer",
		Date:        "2024",
		Description: "desc",
	})
	if err != nil {
		t.Fatalf("CreateCertification: %v", err)
	}

	if err := s.DeleteCertification(ctx, id); err != nil {
		t.Fatalf("DeleteCertification: %v", err)
	}

	recs, err := s.ListCertifications(ctx)
	if err != nil {
		t.Fatalf("ListCertifications: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty list after delete, got %d records", len(recs))
	}

	if err := s.DeleteCertification(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestProfileSingleton(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if _, err := s.GetProfile(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("GetProfile before replace: got %v, want ErrNotFound", err)
	}

	if err := s.ReplaceProfile(ctx, map[string]any{"name": "Likith", "title": "Engineer"}); err != nil {
		t.Fatalf("ReplaceProfile: %v", err)
	}
	if err := s.ReplaceProfile(ctx, map[string]any{"name": "Likith G"}); err != nil {
		t.Fatalf("ReplaceProfile: %v", err)
	}

	p, err := s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.Name != "Likith G" {
		t.Errorf("name: got %q, want %q", p.Name, "Likith G")
	}
	if p.Title != "" {
		t.Errorf("title should be gone after full replace, got %q", p.Title)
	}
}

func TestSkillsSingleton(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.ReplaceSkills(ctx, map[string]any{
		"languages":       []string{"Go", "Python"},
		"developer_tools": []string{"Docker"},
	}); err != nil {
		t.Fatalf("ReplaceSkills: %v", err)
	}

	sk, err := s.GetSkills(ctx)
	if err != nil {
		t.Fatalf("GetSkills: %v", err)
	}
	if len(sk.Languages) != 2 || sk.Languages[0] != "Go" {
		t.Errorf("languages: %v", sk.Languages)
	}
	if len(sk.DeveloperTools) != 1 {
		t.Errorf("developer_tools: %v", sk.DeveloperTools)
	}
}

func TestListProjectsCategoryFilter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, cat := range []string{"web", "embedded", "web"} {
		if _, err := s.CreateProject(ctx, domain.ProjectCreate{
			Title:        "p-" + cat,
			Duration:     "2024",
			Technologies: []string{"go"},
			Description:  "d",
			Achievements: []string{"a"},
			Category:     cat,
		}); err != nil {
			t.Fatalf("CreateProject: %v", err)
		}
	}

	tests := []struct {
		category string
		want     int
	}{
		{"", 3},
		{"web", 2},
		{"embedded", 1},
		{"WEB", 0},
		{"mobile", 0},
	}

	for _, tc := range tests {
		recs, err := s.ListProjects(ctx, tc.category)
		if err != nil {
			t.Fatalf("ListProjects(%q): %v", tc.category, err)
		}
		if len(recs) != tc.want {
			t.Errorf("category %q: got %d records, want %d", tc.category, len(recs), tc.want)
		}
		for _, r := range recs {
			if tc.category != "" && r.Category != tc.category {
				t.Errorf("category %q: leaked record with category %q", tc.category, r.Category)
			}
		}
	}
}

func TestContactSubmissionStartsUnread(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id, err := s.CreateContactSubmission(ctx, domain.ContactCreate{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})
	if err != nil {
		t.Fatalf("CreateContactSubmission: %v", err)
	}

	recs, err := s.ListContactSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListContactSubmissions: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(recs))
	}
	got := recs[0]
	if got.ID != id {
		t.Errorf("id: got %q, want %q", got.ID, id)
	}
	if got.Read {
		t.Error("new submission should start unread")
	}
	if got.CreatedAt.IsZero() {
		t.Error("submission has zero creation timestamp")
	}
}
