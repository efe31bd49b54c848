package services

import (
	"fmt"

	"github.com/hitenstark10/tenx-tracking/helpers"
	"github.com/hitenstark10/tenx-tracking/models"
)

// CalculateStreak recomputes the consecutive fully-completed-day counter
// from the full completion state for today. It is called on every
// completion-affecting mutation and is idempotent within a day: once
// lastDate is today, further calls return the streak unchanged.
//
// A day qualifies when at least one category had obligations today and
// every obligation is done. A day with no obligations neither advances nor
// breaks the streak. Breakage is evaluated lazily: a missed day is only
// detected when the next mutation arrives.
func CalculateStreak(tasks []models.DailyTask, current models.Streak, courses []models.Course, papers []models.ResearchPaper, newsRead []string, today string) models.Streak {
	yesterday := helpers.DayBefore(today)

	if current.LastDate != nil && *current.LastDate == today {
		return current
	}

	var todayTasks []models.DailyTask
	for _, t := range tasks {
		if t.Date == today {
			todayTasks = append(todayTasks, t)
		}
	}
	allTasksDone := len(todayTasks) > 0
	for _, t := range todayTasks {
		if !t.Completed {
			allTasksDone = false
			break
		}
	}

	hasCourseItems := false
	allCourseItemsDone := true
	for _, c := range courses {
		for _, t := range c.Topics {
			if t.Date == today {
				hasCourseItems = true
				if !t.Completed {
					allCourseItemsDone = false
				}
			}
			for _, s := range t.Subtopics {
				if s.Date == today {
					hasCourseItems = true
					if !s.Completed {
						allCourseItemsDone = false
					}
				}
			}
		}
	}

	// A paper is due today when its date range covers today; it counts as
	// done only if it was touched today.
	var todayPapers []models.ResearchPaper
	for _, p := range papers {
		if p.StartDate != "" && p.StartDate <= today && (p.EndDate == "" || p.EndDate >= today) {
			todayPapers = append(todayPapers, p)
		}
	}
	hasPapers := len(todayPapers) > 0
	allPapersDone := true
	for _, p := range todayPapers {
		if p.LastUpdated != today {
			allPapersDone = false
			break
		}
	}

	// News is passive, never assigned, so it cannot block qualification.
	_ = newsRead

	tasksOk := len(todayTasks) == 0 || allTasksDone
	coursesOk := !hasCourseItems || allCourseItemsDone
	papersOk := !hasPapers || allPapersDone

	hasAnyActivity := len(todayTasks) > 0 || hasCourseItems || hasPapers
	allDone := hasAnyActivity && tasksOk && coursesOk && papersOk

	if allDone {
		if (current.LastDate != nil && *current.LastDate == yesterday) || current.Count == 0 {
			return models.Streak{Count: current.Count + 1, LastDate: &today}
		}
		// A gap was skipped: today restarts the streak.
		return models.Streak{Count: 1, LastDate: &today}
	}

	// A day was missed and never qualified: drop the counter but leave
	// lastDate untouched until a qualifying day occurs.
	if current.LastDate == nil || (*current.LastDate != yesterday && *current.LastDate != today) {
		if current.Count == 0 {
			return current
		}
		return models.Streak{Count: 0, LastDate: current.LastDate}
	}

	// Still within grace (yesterday qualified, today not decided yet).
	return current
}

// ApplyActivity adds delta to the named counter of date's log entry,
// creating the entry when the date is new. The log is purely additive; the
// caller invokes it once per qualifying event.
func ApplyActivity(log []models.ActivityEntry, date, category string, delta int) []models.ActivityEntry {
	idx := -1
	for i := range log {
		if log[i].Date == date {
			idx = i
			break
		}
	}
	if idx == -1 {
		log = append(log, models.ActivityEntry{Date: date})
		idx = len(log) - 1
	}

	switch category {
	case "tasks":
		log[idx].Tasks += delta
	case "curriculum":
		log[idx].Curriculum += delta
	case "papers":
		log[idx].Papers += delta
	case "resources":
		log[idx].Resources += delta
	case "articlesRead":
		log[idx].ArticlesRead += delta
	}
	return log
}

// ActivityBreakdown is one date's aggregated completion counts for the
// heatmap.
type ActivityBreakdown struct {
	Total        int `json:"total"`
	Tasks        int `json:"tasks"`
	Curriculum   int `json:"curriculum"`
	Papers       int `json:"papers"`
	Resources    int `json:"resources"`
	ArticlesRead int `json:"articlesRead"`
}

// ActivityForDate aggregates a date's activity from the raw documents plus
// the additive log (resources and article reads only exist in the log).
func ActivityForDate(date string, log []models.ActivityEntry, tasks []models.DailyTask, courses []models.Course, papers []models.ResearchPaper) ActivityBreakdown {
	var out ActivityBreakdown

	for _, t := range tasks {
		if t.Date == date && t.Completed {
			out.Tasks++
		}
	}

	for _, c := range courses {
		for _, t := range c.Topics {
			if t.Completed && t.CompletedDate == date {
				out.Curriculum++
			}
			for _, s := range t.Subtopics {
				if s.Completed && s.CompletedDate == date {
					out.Curriculum++
				}
			}
		}
	}

	for _, p := range papers {
		if p.LastUpdated == date {
			out.Papers++
		}
	}

	for _, e := range log {
		if e.Date == date {
			out.Resources = e.Resources
			out.ArticlesRead = e.ArticlesRead
			break
		}
	}

	out.Total = out.Tasks + out.Curriculum + out.Papers + out.Resources + out.ArticlesRead
	return out
}

// ActivityLevel maps a total to a heatmap intensity of 0-5.
func ActivityLevel(total int) int {
	switch {
	case total == 0:
		return 0
	case total <= 2:
		return 1
	case total <= 5:
		return 2
	case total <= 8:
		return 3
	case total <= 12:
		return 4
	default:
		return 5
	}
}

// HeatmapDay is one cell of the month grid; nil cells pad the first and
// last weeks.
type HeatmapDay struct {
	Date     string            `json:"date"`
	Day      int               `json:"day"`
	Level    int               `json:"level"`
	Activity ActivityBreakdown `json:"activity"`
	IsToday  bool              `json:"isToday"`
}

// HeatmapMonth lays a month's activity out as weeks of seven days,
// Sunday-first. month is 1-based.
func HeatmapMonth(year, month int, log []models.ActivityEntry, tasks []models.DailyTask, courses []models.Course, papers []models.ResearchPaper, today string) [][]*HeatmapDay {
	daysInMonth, startWeekday := helpers.MonthGrid(year, month)

	var weeks [][]*HeatmapDay
	week := make([]*HeatmapDay, 7)

	for day := 1; day <= daysInMonth; day++ {
		dow := (startWeekday + day - 1) % 7
		if dow == 0 && day > 1 {
			weeks = append(weeks, week)
			week = make([]*HeatmapDay, 7)
		}

		date := isoFromParts(year, month, day)
		activity := ActivityForDate(date, log, tasks, courses, papers)
		week[dow] = &HeatmapDay{
			Date:     date,
			Day:      day,
			Level:    ActivityLevel(activity.Total),
			Activity: activity,
			IsToday:  date == today,
		}
	}
	weeks = append(weeks, week)

	return weeks
}

func isoFromParts(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
