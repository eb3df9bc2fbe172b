package models

import "time"

// Analytics is the aggregate counter payload behind the dashboard cards.
type Analytics struct {
	TotalReports      int            `json:"total_reports"`
	TotalUsers        int            `json:"total_users"`
	SuspendedUsers    int            `json:"suspended_users"`
	ReportsToday      int            `json:"reports_today"`
	ReportsByCategory map[string]int `json:"reports_by_category"`
}

// DailyCount is one day of a report-volume series.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// DashboardAnalytics is the period-scoped series payload.
type DashboardAnalytics struct {
	Period string       `json:"period"`
	Daily  []DailyCount `json:"daily"`
}

// RealtimeAnalytics is the live snapshot polled by the dashboard.
type RealtimeAnalytics struct {
	ActiveReports   int       `json:"active_reports"`
	ReportsLastHour int       `json:"reports_last_hour"`
	OnlineUsers     int       `json:"online_users"`
	GeneratedAt     time.Time `json:"generated_at"`
}
