package domain

import "time"

// Schedule is the polymorphic aspect answering "is this a pay date, and what
// period does it cover."
type Schedule interface {
	IsPayDate(date time.Time) bool
	PayPeriod(payDate time.Time) Period
	Kind() string
}

// MonthlySchedule pays on the last day of the month, for that whole month.
type MonthlySchedule struct{}

func (MonthlySchedule) IsPayDate(date time.Time) bool {
	date = truncateToDate(date)
	return date.AddDate(0, 0, 1).Month() != date.Month()
}

func (MonthlySchedule) PayPeriod(payDate time.Time) Period {
	payDate = truncateToDate(payDate)
	first := time.Date(payDate.Year(), payDate.Month(), 1, 0, 0, 0, 0, payDate.Location())
	return Period{Start: first, End: payDate}
}

func (MonthlySchedule) Kind() string { return "Monthly" }

// WeeklySchedule pays every Friday, for the preceding 7 days.
type WeeklySchedule struct{}

func (WeeklySchedule) IsPayDate(date time.Time) bool {
	return truncateToDate(date).Weekday() == time.Friday
}

func (WeeklySchedule) PayPeriod(payDate time.Time) Period {
	end := truncateToDate(payDate)
	return Period{Start: end.AddDate(0, 0, -6), End: end}
}

func (WeeklySchedule) Kind() string { return "Weekly" }

// BiweeklySchedule pays every Friday in an even ISO week, for the preceding
// 14 days.
type BiweeklySchedule struct{}

func (BiweeklySchedule) IsPayDate(date time.Time) bool {
	date = truncateToDate(date)
	if date.Weekday() != time.Friday {
		return false
	}
	_, week := date.ISOWeek()
	return week%2 == 0
}

func (BiweeklySchedule) PayPeriod(payDate time.Time) Period {
	end := truncateToDate(payDate)
	return Period{Start: end.AddDate(0, 0, -13), End: end}
}

func (BiweeklySchedule) Kind() string { return "Biweekly" }
