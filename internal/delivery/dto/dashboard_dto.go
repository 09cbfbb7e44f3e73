package dto

// DashboardSummaryResponse is the practice overview: headline counts
// plus the next few upcoming sessions.
type DashboardSummaryResponse struct {
	TotalClients      int64             `json:"total_clients"`
	ScheduledSessions int64             `json:"scheduled_sessions"`
	ActivePackages    int64             `json:"active_packages"`
	CompletedSessions int64             `json:"completed_sessions"`
	UpcomingSessions  []SessionResponse `json:"upcoming_sessions"`
}
