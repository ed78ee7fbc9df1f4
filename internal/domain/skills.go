package domain

// Skills is the single skills document, grouped by category.
// Like Profile it is a singleton: replaced as a whole, never addressed
// by id.
type Skills struct {
	Languages           []string `bson:"languages" json:"languages"`
	DeveloperTools      []string `bson:"developer_tools" json:"developer_tools"`
	Libraries           []string `bson:"libraries" json:"libraries"`
	CloudInfrastructure []string `bson:"cloud_infrastructure" json:"cloud_infrastructure"`
	Hardware            []string `bson:"hardware" json:"hardware"`
}

type SkillsPatch struct {
	Languages           *[]string `json:"languages"`
	DeveloperTools      *[]string `json:"developer_tools"`
	Libraries           *[]string `json:"libraries"`
	CloudInfrastructure *[]string `json:"cloud_infrastructure"`
	Hardware            *[]string `json:"hardware"`
}

func (p SkillsPatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "languages", p.Languages)
	setField(fields, "developer_tools", p.DeveloperTools)
	setField(fields, "libraries", p.Libraries)
	setField(fields, "cloud_infrastructure", p.CloudInfrastructure)
	setField(fields, "hardware", p.Hardware)
	return fields
}
