// Package seed loads a portfolio YAML file and writes its contents
// into the store: singletons by upsert-replace, collection records by
// create (ids and timestamps assigned by the store as usual).
package seed

// File is the top-level structure of a portfolio seed file.
type File struct {
	Profile        *ProfileSeed        `yaml:"profile"`
	Skills         *SkillsSeed         `yaml:"skills"`
	Education      []EducationSeed     `yaml:"education"`
	Experience     []ExperienceSeed    `yaml:"experience"`
	Projects       []ProjectSeed       `yaml:"projects"`
	Certifications []CertificationSeed `yaml:"certifications"`
	Awards         []AwardSeed         `yaml:"awards"`
	Patents        []PatentSeed        `yaml:"patents"`
}

type ProfileSeed struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	Location     string `yaml:"location"`
	LinkedIn     string `yaml:"linkedin"`
	GitHub       string `yaml:"github"`
	Bio          string `yaml:"bio"`
	Availability string `yaml:"availability"`
}

type SkillsSeed struct {
	Languages           []string `yaml:"languages"`
	DeveloperTools      []string `yaml:"developer_tools"`
	Libraries           []string `yaml:"libraries"`
	CloudInfrastructure []string `yaml:"cloud_infrastructure"`
	Hardware            []string `yaml:"hardware"`
}

type EducationSeed struct {
	Institution string  `yaml:"institution"`
	Degree      string  `yaml:"degree"`
	Location    string  `yaml:"location"`
	Duration    string  `yaml:"duration"`
	CGPA        string  `yaml:"cgpa"`
	Status      *string `yaml:"status"`
}

type ExperienceSeed struct {
	Position     string   `yaml:"position"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Duration     string   `yaml:"duration"`
	Type         string   `yaml:"type"`
	Achievements []string `yaml:"achievements"`
}

type ProjectSeed struct {
	Title        string   `yaml:"title"`
	Duration     string   `yaml:"duration"`
	Technologies []string `yaml:"technologies"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Category     string   `yaml:"category"`
	GitHubURL    *string  `yaml:"github_url"`
	DemoURL      *string  `yaml:"demo_url"`
	Featured     bool     `yaml:"featured"`
}

type CertificationSeed struct {
	Title       string `yaml:"title"`
	Issuer      string `yaml:"issuer"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

type AwardSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Year        string `yaml:"year"`
}

type PatentSeed struct {
	Title        string `yaml:"title"`
	PatentNumber string `yaml:"patent_number"`
	PublishDate  string `yaml:"publish_date"`
	Description  string `yaml:"description"`
}
