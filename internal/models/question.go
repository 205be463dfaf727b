package models

// Option is one selectable answer for a questionnaire question.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Question is a single step in the fixed questionnaire sequence.
type Question struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Options  []Option `json:"options"`
}

// Recommendation is one block of generated advice.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
