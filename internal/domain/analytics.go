package domain

import "time"

// EventName identifies an analytics event.
type EventName string

const (
	EventPageView               EventName = "page_view"
	EventPageLeave              EventName = "page_leave"
	EventTraceView              EventName = "trace_view"
	EventTraceCreate            EventName = "trace_create"
	EventTraceResonate          EventName = "trace_resonate"
	EventShareClick             EventName = "share_click"
	EventLanguageChange         EventName = "language_change"
	EventThemeChange            EventName = "theme_change"
	EventSearch                 EventName = "search"
	EventInstallPromptShown     EventName = "install_prompt_shown"
	EventInstallPromptDismissed EventName = "install_prompt_dismissed"
)

// IsValid checks if the event name is one of the known events.
func (e EventName) IsValid() bool {
	switch e {
	case EventPageView, EventPageLeave, EventTraceView, EventTraceCreate, EventTraceResonate,
		EventShareClick, EventLanguageChange, EventThemeChange, EventSearch,
		EventInstallPromptShown, EventInstallPromptDismissed:
		return true
	}
	return false
}

func (e EventName) String() string { return string(e) }

// Property keys the report aggregates over. Other keys are stored but not aggregated.
const (
	PropDevice   = "device"
	PropBrowser  = "browser"
	PropLanguage = "language"
	PropDuration = "duration"
)

// Event is one raw analytics record. Events are append-only.
type Event struct {
	ID         int64
	Name       EventName
	Properties map[string]any
	Path       string
	Referrer   string
	UserAgent  string
	CreatedAt  time.Time
}

// ScalarProperties returns a copy of props that keeps only string, number and bool values.
func ScalarProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		if k == "" {
			continue
		}
		switch v.(type) {
		case string, bool, float64, float32, int, int32, int64:
			out[k] = v
		}
	}
	return out
}

// NamedCount is a label with its occurrence count.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PathCount is a page path with its view count.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// DailyCount is the number of events on one UTC day (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RecentEvent is a condensed event for the report's recent list.
type RecentEvent struct {
	Name      EventName `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"time"`
}

// PageDuration is the average time spent on a page, from page_leave events.
type PageDuration struct {
	Path       string  `json:"path"`
	AvgSeconds float64 `json:"avgSeconds"`
	Samples    int     `json:"samples"`
}

// AnalyticsReport aggregates the raw event log. It is computed fresh on every read.
type AnalyticsReport struct {
	Total        int            `json:"total"`
	Today        int            `json:"todayEvents"`
	EventCounts  []NamedCount   `json:"eventCounts"`
	TopPages     []PathCount    `json:"topPages"`
	WeeklyTrend  []DailyCount   `json:"weeklyTrend"`
	RecentEvents []RecentEvent  `json:"recentEvents"`
	Devices      []NamedCount   `json:"devices"`
	Browsers     []NamedCount   `json:"browsers"`
	Languages    []NamedCount   `json:"languages"`
	AvgDurations []PageDuration `json:"avgDurations"`
	GeneratedAt  time.Time      `json:"generatedAt"`
}

// ReportOptions bounds the analytics report. Now anchors "today" and the trend window.
type ReportOptions struct {
	Now           time.Time
	TopPagesLimit int
	RecentLimit   int
	TrendDays     int
}
