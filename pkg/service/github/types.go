package github

import "time"

// Wire types for the GitHub REST API. Only fields orgdesk reads are declared.

type user struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Type      string `json:"type"`
	SiteAdmin bool   `json:"site_admin"`
}

type invitation struct {
	ID           int64      `json:"id"`
	Login        *string    `json:"login"`
	Email        *string    `json:"email"`
	Role         string     `json:"role"`
	CreatedAt    *time.Time `json:"created_at"`
	FailedAt     *time.Time `json:"failed_at"`
	FailedReason string     `json:"failed_reason"`
	Inviter      *user      `json:"inviter"`
	TeamCount    int        `json:"team_count"`
}

type createInvitationRequest struct {
	InviteeID int64  `json:"invitee_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

type organization struct {
	Login       string     `json:"login"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Plan        *plan      `json:"plan"`
	TrialEndsAt *time.Time `json:"trial_ends_at"`
	CreatedAt   *time.Time `json:"created_at"`
}

type plan struct {
	Name        string `json:"name"`
	Seats       int    `json:"seats"`
	FilledSeats int    `json:"filled_seats"`
}

type copilotBilling struct {
	SeatManagementSetting string `json:"seat_management_setting"`
	SeatBreakdown         *struct {
		Total             int `json:"total"`
		ActiveThisCycle   int `json:"active_this_cycle"`
		PendingInvitation int `json:"pending_invitation"`
	} `json:"seat_breakdown"`
}

// auditEntry timestamps are milliseconds since the Unix epoch
type auditEntry struct {
	Action    string `json:"action"`
	User      string `json:"user"`
	Timestamp int64  `json:"@timestamp"`
	CreatedAt int64  `json:"created_at"`
}

func (e auditEntry) time() time.Time {
	ms := e.Timestamp
	if ms == 0 {
		ms = e.CreatedAt
	}
	return time.UnixMilli(ms).UTC()
}
