package seed

import "github.com/likith1908/portfolio-api/internal/domain"

// The seed shapes convert 1:1 into the payloads the store accepts:
// field maps for the singletons, create payloads for the collections.

func (p ProfileSeed) Fields() map[string]any {
	return map[string]any{
		"name":         p.Name,
		"title":        p.Title,
		"email":        p.Email,
		"phone":        p.Phone,
		"location":     p.Location,
		"linkedin":     p.LinkedIn,
		"github":       p.GitHub,
		"bio":          p.Bio,
		"availability": p.Availability,
	}
}

func (s SkillsSeed) Fields() map[string]any {
	return map[string]any{
		"languages":            s.Languages,
		"developer_tools":      s.DeveloperTools,
		"libraries":            s.Libraries,
		"cloud_infrastructure": s.CloudInfrastructure,
		"hardware":             s.Hardware,
	}
}

func (e EducationSeed) Create() domain.EducationCreate {
	return domain.EducationCreate{
		Institution: e.Institution,
		Degree:      e.Degree,
		Location:    e.Location,
		Duration:    e.Duration,
		CGPA:        e.CGPA,
		Status:      e.Status,
	}
}

func (e ExperienceSeed) Create() domain.ExperienceCreate {
	return domain.ExperienceCreate{
		Position:     e.Position,
		Company:      e.Company,
		Location:     e.Location,
		Duration:     e.Duration,
		Type:         e.Type,
		Achievements: e.Achievements,
	}
}

func (p ProjectSeed) Create() domain.ProjectCreate {
	return domain.ProjectCreate{
		Title:        p.Title,
		Duration:     p.Duration,
		Technologies: p.Technologies,
		Description:  p.Description,
		Achievements: p.Achievements,
		Category:     p.Category,
		GitHubURL:    p.GitHubURL,
		DemoURL:      p.DemoURL,
		Featured:     p.Featured,
	}
}

func (c CertificationSeed) Create() domain.CertificationCreate {
	return domain.CertificationCreate{
		Title:       c.Title,
		Issuer:      c.Issuer,
		Date:        c.Date,
		Description: c.Description,
	}
}

func (a AwardSeed) Create() domain.AwardCreate {
	return domain.AwardCreate{
		Title:       a.Title,
		Description: a.Description,
		Year:        a.Year,
	}
}

func (p PatentSeed) Create() domain.PatentCreate {
	return domain.PatentCreate{
		Title:        p.Title,
		PatentNumber: p.PatentNumber,
		PublishDate:  p.PublishDate,
		Description:  p.Description,
	}
}
