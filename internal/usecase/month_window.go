package usecase

import (
	"fmt"
	"time"

	"choukette/internal/domain/seed"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

type monthSlot struct {
	Label string
	Key   string
}

// monthWindow returns the calendar months ending at now's month, oldest
// first.
func monthWindow(now time.Time) [seed.HistoryMonths]monthSlot {
	var out [seed.HistoryMonths]monthSlot
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < seed.HistoryMonths; i++ {
		m := first.AddDate(0, i-(seed.HistoryMonths-1), 0)
		out[i] = monthSlot{
			Label: fmt.Sprintf("%s %d", frenchMonths[m.Month()-1], m.Year()),
			Key:   m.Format("2006-01"),
		}
	}
	return out
}
