package serviceImp

import (
	"fmt"
	"math"
	"time"

	"coachboard/entities"
	"coachboard/pkg/summary/service"
)

const dateLayout = "2006-01-02"

// WeekBounds maps any calendar date to its Sunday-start week, returned as
// inclusive [start, end] date strings.
func WeekBounds(t time.Time) (string, string) {
	start := t.AddDate(0, 0, -int(t.Weekday()))
	end := start.AddDate(0, 0, 6)
	return start.Format(dateLayout), end.Format(dateLayout)
}

func weekRange(weekStart string) (string, string, error) {
	t, err := time.Parse(dateLayout, weekStart)
	if err != nil {
		return "", "", fmt.Errorf("parse week start %q: %w", weekStart, err)
	}
	start, end := WeekBounds(t)
	return start, end, nil
}

// ComputeWeeklyAverages takes the week's check-ins and returns the arithmetic
// mean of each metric over the check-ins that actually carry it — each metric
// keeps its own denominator. Metrics nobody logged stay nil.
func ComputeWeeklyAverages(checkIns []entities.DailyCheckIn) service.Averages {
	av := service.Averages{
		Calories: round1(mean(checkIns, func(c *entities.DailyCheckIn) *float64 { return c.CaloriesDaily })),
		Protein:  round1(mean(checkIns, func(c *entities.DailyCheckIn) *float64 { return c.ProteinDaily })),
		Fiber:    round1(mean(checkIns, func(c *entities.DailyCheckIn) *float64 { return c.FiberDaily })),
		Waist:    round1(mean(checkIns, func(c *entities.DailyCheckIn) *float64 { return c.WaistCircumference })),
		Steps:    round1(mean(checkIns, stepsOf)),
	}
	weight := mean(checkIns, func(c *entities.DailyCheckIn) *float64 { return c.Weight })
	av.Weight = round1(weight)
	av.WeightPrecise = round2(weight)
	return av
}

func mean(checkIns []entities.DailyCheckIn, pick func(*entities.DailyCheckIn) *float64) *float64 {
	var sum float64
	n := 0
	for i := range checkIns {
		if v := pick(&checkIns[i]); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}

func stepsOf(c *entities.DailyCheckIn) *float64 {
	if c.StepsActual == nil {
		return nil
	}
	f := float64(*c.StepsActual)
	return &f
}

func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*10) / 10
	return &r
}

func round2(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*100) / 100
	return &r
}
