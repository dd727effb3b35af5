package seed

// BakeryMonthRow is one month of the synthetic bakery history, oldest first.
type BakeryMonthRow struct {
	MissionsPosted       int
	MissionsFilled       int
	ApplicationsReceived int
	AvgRating            float64
}

// ProfessionalMonthRow is one month of the synthetic professional history,
// oldest first.
type ProfessionalMonthRow struct {
	MissionsCompleted int
	TotalHours        float64
	TotalEarnings     float64
	AvgRating         float64
}

// HistoryMonths is the length of every monthly history.
const HistoryMonths = 6

func BakeryMonthRows() [HistoryMonths]BakeryMonthRow {
	return [HistoryMonths]BakeryMonthRow{
		{MissionsPosted: 5, MissionsFilled: 3, ApplicationsReceived: 12, AvgRating: 4.3},
		{MissionsPosted: 7, MissionsFilled: 5, ApplicationsReceived: 18, AvgRating: 4.5},
		{MissionsPosted: 6, MissionsFilled: 4, ApplicationsReceived: 15, AvgRating: 4.4},
		{MissionsPosted: 8, MissionsFilled: 6, ApplicationsReceived: 20, AvgRating: 4.6},
		{MissionsPosted: 9, MissionsFilled: 7, ApplicationsReceived: 22, AvgRating: 4.7},
		{MissionsPosted: 10, MissionsFilled: 8, ApplicationsReceived: 25, AvgRating: 4.8},
	}
}

func ProfessionalMonthRows() [HistoryMonths]ProfessionalMonthRow {
	return [HistoryMonths]ProfessionalMonthRow{
		{MissionsCompleted: 3, TotalHours: 36, TotalEarnings: 936, AvgRating: 4.4},
		{MissionsCompleted: 4, TotalHours: 48, TotalEarnings: 1296, AvgRating: 4.5},
		{MissionsCompleted: 5, TotalHours: 60, TotalEarnings: 1680, AvgRating: 4.6},
		{MissionsCompleted: 6, TotalHours: 72, TotalEarnings: 2088, AvgRating: 4.7},
		{MissionsCompleted: 7, TotalHours: 84, TotalEarnings: 2520, AvgRating: 4.8},
		{MissionsCompleted: 8, TotalHours: 96, TotalEarnings: 2976, AvgRating: 4.9},
	}
}
