package portfolio

// Proficiency is an enumerated skill strength level.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// DefaultProficiency is used when a skill omits its proficiency.
const DefaultProficiency = ProficiencyIntermediate

// ValidProficiencies is the set of recognized proficiency values.
var ValidProficiencies = map[Proficiency]bool{
	ProficiencyBeginner:     true,
	ProficiencyIntermediate: true,
	ProficiencyAdvanced:     true,
	ProficiencyExpert:       true,
}

// ContactInfo holds the contact channels shown in the contact section.
// All four channels are required; email must look like local@domain and
// the rest must be http(s) URLs.
type ContactInfo struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Behance  string `json:"behance"`
}

// PersonalInfo holds the hero/about content. Bio and Summary may contain
// markdown with blank-line-separated paragraphs. Headshot is optional; when
// empty the about section renders without an image slot.
type PersonalInfo struct {
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Bio      string      `json:"bio"`
	Summary  string      `json:"summary"`
	Headshot string      `json:"headshot,omitempty"`
	Contact  ContactInfo `json:"contact"`
}

// Experience is one timeline entry. Achievements may be empty, in which
// case no toggle control or list is rendered for the entry. Technologies
// is optional.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// ProjectLink is a named external link on a project card.
type ProjectLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Project is one portfolio project. Tools and Outcomes are mandatory
// non-empty lists; Images and Links are optional. The first image is used
// as the card thumbnail.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tools       []string      `json:"tools"`
	Outcomes    []string      `json:"outcomes"`
	Images      []string      `json:"images,omitempty"`
	Links       []ProjectLink `json:"links,omitempty"`
}

// Skill is a single named skill. Icon and Proficiency are optional;
// an absent proficiency renders as DefaultProficiency.
type Skill struct {
	Name        string      `json:"name"`
	Icon        string      `json:"icon,omitempty"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
}

// SkillCategory groups skills under a category name. Category names must be
// unique across the list since they are used to build element ids.
type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Data is the aggregate portfolio document, the sole externally supplied
// input. It is fetched once at startup and never mutated after load except
// by a full reload.
type Data struct {
	Personal   PersonalInfo    `json:"personal"`
	Experience []Experience    `json:"experience"`
	Projects   []Project       `json:"projects"`
	Skills     []SkillCategory `json:"skills"`
}

// EffectiveProficiency returns the skill's proficiency, defaulting when
// absent. Unknown values are passed through; validation reports them but
// rendering stays lenient.
func (s Skill) EffectiveProficiency() Proficiency {
	if s.Proficiency == "" {
		return DefaultProficiency
	}
	return s.Proficiency
}
