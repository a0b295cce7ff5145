package domain

import "time"

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

type Meeting struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Title           string        `json:"title"`
	CompanyName     string        `json:"company_name"`
	ContactName     string        `json:"contact_name"`
	ContactEmail    *string       `json:"contact_email"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          MeetingStatus `json:"status"`
	MeetingURL      *string       `json:"meeting_url"`
	Notes           *string       `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
}

type MeetingFilter struct {
	UserID string
	Status *MeetingStatus
	From   *time.Time
	To     *time.Time
}

type DashboardStats struct {
	TotalMeetings      int  `json:"total_meetings"`
	UpcomingMeetings   int  `json:"upcoming_meetings"`
	CompletedThisMonth int  `json:"completed_this_month"`
	CancelledMeetings  int  `json:"cancelled_meetings"`
	ICPEnabled         bool `json:"icp_enabled"`
	AvailableServices  int  `json:"available_services"`
}
