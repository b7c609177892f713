package domain

import "time"

// CategoryConfig is the singleton list of department and language values
// surfaced to clients for form population. It is advisory; member validation
// uses the fixed Departments set.
type CategoryConfig struct {
	ID          string
	Departments []string
	Languages   []string
	UpdatedAt   time.Time
}

// DefaultCategoryConfig returns the lists materialized on first read.
func DefaultCategoryConfig() *CategoryConfig {
	return &CategoryConfig{
		Departments: []string{
			"Director",
			"Actor",
			"Cinematographer",
			"Editor",
			"Writer",
			"Producer",
			"Sound Designer",
			"Production Designer",
			"Composer",
			"Costume Designer",
			"Makeup Artist",
			"Other",
		},
		Languages: []string{
			"Hindi",
			"Tamil",
			"Telugu",
			"Marathi",
			"Bengali",
			"Kannada",
			"Malayalam",
			"Gujarati",
			"Punjabi",
			"English",
		},
	}
}
