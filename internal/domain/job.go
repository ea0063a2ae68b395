package domain

import "strings"

const (
	// Placeholder stands in for any field a source could not provide.
	Placeholder = "N/A"
	// DefaultLocation is used instead of Placeholder for the location field.
	DefaultLocation = "Romania"
)

// JobRecord is the flat shape every source is normalized into.
// All fields are strings; none is ever empty once WithDefaults has run.
type JobRecord struct {
	Company    string `json:"company"`
	Title      string `json:"title"`
	Location   string `json:"location"`
	ReqID      string `json:"req_id"`
	Category   string `json:"category"`
	JobType    string `json:"job_type"`
	IsRemote   string `json:"is_remote"`
	ApplyLink  string `json:"apply_link"`
	PostedDate string `json:"posted_date"`
	Source     string `json:"source"`
}

// WithDefaults returns a copy with blank fields replaced by their defaults.
func (j JobRecord) WithDefaults() JobRecord {
	j.Company = orDefault(j.Company, Placeholder)
	j.Title = orDefault(j.Title, Placeholder)
	j.Location = orDefault(j.Location, DefaultLocation)
	j.ReqID = orDefault(j.ReqID, Placeholder)
	j.Category = orDefault(j.Category, Placeholder)
	j.JobType = orDefault(j.JobType, Placeholder)
	j.IsRemote = orDefault(j.IsRemote, Placeholder)
	j.ApplyLink = orDefault(j.ApplyLink, Placeholder)
	j.PostedDate = orDefault(j.PostedDate, Placeholder)
	j.Source = orDefault(j.Source, Placeholder)
	return j
}

// Fields lists the record as ordered key/value pairs, keyed like the JSON snapshot.
func (j JobRecord) Fields() []Field {
	return []Field{
		{"company", j.Company},
		{"title", j.Title},
		{"location", j.Location},
		{"req_id", j.ReqID},
		{"category", j.Category},
		{"job_type", j.JobType},
		{"is_remote", j.IsRemote},
		{"apply_link", j.ApplyLink},
		{"posted_date", j.PostedDate},
		{"source", j.Source},
	}
}

type Field struct {
	Key   string
	Value string
}

// YesNo renders a boolean the way records store remote flags.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
