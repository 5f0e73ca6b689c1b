package settings

type RoleWeightProfile struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role,omitempty"`
	Level         int     `json:"level,omitempty"`
	InputWeight   float64 `json:"inputWeight"`
	OutputWeight  float64 `json:"outputWeight"`
	OutcomeWeight float64 `json:"outcomeWeight"`
	ImpactWeight  float64 `json:"impactWeight"`
	IsActive      bool    `json:"isActive"`
}

type PerformanceTarget struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	Role                      string `json:"role,omitempty"`
	Level                     int    `json:"level,omitempty"`
	OutstandingThreshold      int    `json:"outstandingThreshold"`
	StrongThreshold           int    `json:"strongThreshold"`
	MeetingThreshold          int    `json:"meetingThreshold"`
	PartialThreshold          int    `json:"partialThreshold"`
	UnderperformingThreshold  int    `json:"underperformingThreshold"`
	TimePeriodWeeks           int    `json:"timePeriodWeeks"`
	IsActive                  bool   `json:"isActive"`
}

type UserProfile struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Level    int    `json:"level"`
	IsActive bool   `json:"isActive"`
}
