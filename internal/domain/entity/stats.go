package entity

// BakeryMonthlyStats is one month of a bakery dashboard history.
type BakeryMonthlyStats struct {
	Month                string  `json:"month"`
	MonthKey             string  `json:"monthKey"`
	MissionsPosted       int     `json:"missionsPosted"`
	MissionsFilled       int     `json:"missionsFilled"`
	ApplicationsReceived int     `json:"applicationsReceived"`
	AvgRating            float64 `json:"avgRating"`
}

// ProfessionalMonthlyStats is one month of a professional dashboard history.
type ProfessionalMonthlyStats struct {
	Month             string  `json:"month"`
	MonthKey          string  `json:"monthKey"`
	MissionsCompleted int     `json:"missionsCompleted"`
	TotalHours        float64 `json:"totalHours"`
	TotalEarnings     float64 `json:"totalEarnings"`
	AvgRating         float64 `json:"avgRating"`
}

// BakeryStats is re-derived from the loaded missions and applications on
// every call.
type BakeryStats struct {
	TotalMissions       int `json:"totalMissions"`
	OpenMissions        int `json:"openMissions"`
	FilledMissions      int `json:"filledMissions"`
	TotalApplications   int `json:"totalApplications"`
	PendingApplications int `json:"pendingApplications"`
}

type ProfessionalStats struct {
	TotalEarnings     float64            `json:"totalEarnings"`
	TotalHours        float64            `json:"totalHours"`
	AverageRating     float64            `json:"averageRating"`
	MissionsThisMonth []CompletedMission `json:"missionsThisMonth"`
}
