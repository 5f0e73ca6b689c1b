package tracker

import "time"

type WorkCategory struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	ScorePerOccurrence int       `json:"scorePerOccurrence"`
	Dimension          string    `json:"dimension"`
	Description        string    `json:"description,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

type WeeklyLog struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"categoryId"`
	Week          string    `json:"week"`
	Count         int       `json:"count"`
	OverrideScore *int      `json:"overrideScore,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LoggedActivity is a weekly log joined with its category, the denormalized
// shape the scoring engine consumes.
type LoggedActivity struct {
	CategoryID         string `json:"categoryId"`
	CategoryName       string `json:"categoryName"`
	Dimension          string `json:"dimension"`
	ScorePerOccurrence int    `json:"scorePerOccurrence"`
	Week               string `json:"week"`
	Count              int    `json:"count"`
	OverrideScore      *int   `json:"overrideScore,omitempty"`
	Reference          string `json:"reference,omitempty"`
}

type CategoryTemplate struct {
	ID                  string  `json:"id"`
	Role                string  `json:"role"`
	Level               int     `json:"level"`
	CategoryName        string  `json:"categoryName"`
	Dimension           string  `json:"dimension"`
	ScorePerOccurrence  int     `json:"scorePerOccurrence"`
	ExpectedWeeklyCount float64 `json:"expectedWeeklyCount"`
	Description         string  `json:"description,omitempty"`
}

type LevelExpectation struct {
	Role         string   `json:"role"`
	Level        int      `json:"level"`
	Expectations []string `json:"expectations"`
}
