package domain

// Profile is the single personal-information document.
// There is at most one profile per database; it is replaced, never
// addressed by id.
type Profile struct {
	Name         string `bson:"name" json:"name"`
	Title        string `bson:"title" json:"title"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	Location     string `bson:"location" json:"location"`
	LinkedIn     string `bson:"linkedin" json:"linkedin"`
	GitHub       string `bson:"github" json:"github"`
	Bio          string `bson:"bio" json:"bio"`
	Availability string `bson:"availability" json:"availability"`
}

type ProfilePatch struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	LinkedIn     *string `json:"linkedin"`
	GitHub       *string `json:"github"`
	Bio          *string `json:"bio"`
	Availability *string `json:"availability"`
}

func (p ProfilePatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "name", p.Name)
	setField(fields, "title", p.Title)
	setField(fields, "email", p.Email)
	setField(fields, "phone", p.Phone)
	setField(fields, "location", p.Location)
	setField(fields, "linkedin", p.LinkedIn)
	setField(fields, "github", p.GitHub)
	setField(fields, "bio", p.Bio)
	setField(fields, "availability", p.Availability)
	return fields
}
