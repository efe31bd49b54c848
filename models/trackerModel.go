package models

// Document shapes the frontend persists per user. The server treats most of
// them as opaque JSON; tasks, courses, papers and the streak are also read
// back by the streak aggregator.

type DailyTask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"` // ISO date the task is due
	Completed bool   `json:"completed"`
	Priority  string `json:"priority,omitempty"` // low | medium | high
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"` // pdf | video | doc
	URL  string `json:"url,omitempty"`
}

type Subtopic struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Date          string     `json:"date,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate string     `json:"completedDate,omitempty"`
	Resources     []Resource `json:"resources,omitempty"`
}

type Topic struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Date          string     `json:"date,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate string     `json:"completedDate,omitempty"`
	Subtopics     []Subtopic `json:"subtopics,omitempty"`
	Resources     []Resource `json:"resources,omitempty"`
}

type Course struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Topics      []Topic `json:"topics,omitempty"`
}

type PaperProgress struct {
	Date       string `json:"date"`
	Percentage int    `json:"percentage"`
}

type ResearchPaper struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Author               string          `json:"author,omitempty"`
	StartDate            string          `json:"startDate,omitempty"`
	EndDate              string          `json:"endDate,omitempty"`
	LastUpdated          string          `json:"lastUpdated,omitempty"`
	CompletionPercentage int             `json:"completionPercentage"`
	Notes                string          `json:"notes,omitempty"`
	ProgressHistory      []PaperProgress `json:"progressHistory,omitempty"`
}

type StudySession struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	TotalMinutes int    `json:"totalMinutes"`
	Label        string `json:"label,omitempty"`
}

type Profile struct {
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

// Streak is the consecutive fully-completed-day counter. Count never jumps
// upward by more than 1 per calendar day.
type Streak struct {
	Count    int     `json:"count"`
	LastDate *string `json:"lastDate"`
}

// ActivityEntry is one date's additive completion counters. Date is the
// key; incrementing an existing date mutates its counters in place.
type ActivityEntry struct {
	Date         string `json:"date"`
	Tasks        int    `json:"tasks"`
	Curriculum   int    `json:"curriculum"`
	Papers       int    `json:"papers"`
	Resources    int    `json:"resources"`
	ArticlesRead int    `json:"articlesRead"`
}
