package domain

import "time"

// JobApplication is a candidate submission from the careers form.
type JobApplication struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Position  string
	ResumeURL string
	Message   string
	CreatedAt time.Time
}
