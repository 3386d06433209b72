package service

import "time"

type Phase string

const (
	PhasePrep        Phase = "prep"
	PhaseMain        Phase = "main"
	PhaseMaintenance Phase = "maintenance"
)

type Schedule struct {
	Phase       Phase     `json:"phase"`
	StartDate   time.Time `json:"start_date"`
	CurrentWeek int       `json:"current_week"`
	CurrentDay  int       `json:"current_day"`
}

// ComputeSchedule определяет фазу и позицию (неделя, день) по календарю.
// Чистая функция: одинаковые входы всегда дают одинаковый результат.
//
// Без целевой даты программа просто начинается сегодня. С целевой датой
// старт рассчитывается назад от события так, чтобы программа закончилась
// ровно к нему; если до события дальше, чем длится программа — фаза prep,
// если событие уже прошло — maintenance.
func ComputeSchedule(today time.Time, durationWeeks int, targetEventDate *time.Time) Schedule {
	today = midnight(today)

	if targetEventDate == nil {
		return Schedule{Phase: PhaseMain, StartDate: today, CurrentWeek: 1, CurrentDay: 1}
	}

	programDurationDays := durationWeeks * 7
	daysUntilEvent := daysBetween(today, midnight(*targetEventDate))

	switch {
	case daysUntilEvent < 0:
		return Schedule{Phase: PhaseMaintenance, StartDate: today, CurrentWeek: 1, CurrentDay: 1}
	case daysUntilEvent < programDurationDays:
		daysIntoProgram := programDurationDays - daysUntilEvent
		return Schedule{
			Phase:       PhaseMain,
			StartDate:   today.AddDate(0, 0, -daysIntoProgram),
			CurrentWeek: daysIntoProgram/7 + 1,
			CurrentDay:  daysIntoProgram%7 + 1,
		}
	default:
		return Schedule{Phase: PhasePrep, StartDate: today, CurrentWeek: 1, CurrentDay: 1}
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
