package model

import "time"

// Member is an organization member enriched with role and join time
type Member struct {
	ID        int64      `json:"id"`
	Login     string     `json:"login"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	HTMLURL   string     `json:"html_url,omitempty"`
	Type      string     `json:"type,omitempty"`
	SiteAdmin bool       `json:"site_admin"`
	Role      string     `json:"role,omitempty"`
	JoinedAt  *time.Time `json:"joined_at,omitempty"`
}

// Member roles as reported in overview output
const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)

// MemberList is the response of a member listing
type MemberList struct {
	Count   int      `json:"count"`
	Members []Member `json:"members"`
}

// Invitation is a pending or failed organization invitation
type Invitation struct {
	ID           int64      `json:"id"`
	Login        string     `json:"login,omitempty"`
	Email        string     `json:"email,omitempty"`
	Role         string     `json:"role,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	FailedAt     *time.Time `json:"failed_at,omitempty"`
	FailedReason string     `json:"failed_reason,omitempty"`
	Inviter      string     `json:"inviter,omitempty"`
	TeamCount    int        `json:"team_count"`
}

// InvitationList is the response of an invitation listing
type InvitationList struct {
	Count       int          `json:"count"`
	Invitations []Invitation `json:"invitations"`
}

// CopilotState is the coarse Copilot seat assignment state of an organization
type CopilotState string

const (
	CopilotNormal   CopilotState = "normal"
	CopilotSelected CopilotState = "selected"
	CopilotDisabled CopilotState = "disabled"
)

// Copilot seat management settings as reported by GitHub
const (
	SeatAssignAll      = "assign_all"
	SeatAssignSelected = "assign_selected"
)

// CopilotSeats summarizes the seat breakdown
type CopilotSeats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Pending int `json:"pending"`
}

// CopilotStatus is the classified Copilot billing state
type CopilotStatus struct {
	Status     CopilotState  `json:"status"`
	StatusText string        `json:"statusText"`
	Setting    string        `json:"setting,omitempty"`
	Seats      *CopilotSeats `json:"seats,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// PlanInfo is the subset of the organization plan shown to callers
type PlanInfo struct {
	Name        string `json:"name"`
	Seats       int    `json:"seats"`
	FilledSeats int    `json:"filledSeats"`
}

// EnterpriseInfo is present when the organization belongs to an enterprise
type EnterpriseInfo struct {
	HasEnterprise  bool   `json:"hasEnterprise"`
	EnterpriseName string `json:"enterpriseName"`
	EnterpriseSlug string `json:"enterpriseSlug"`
}

// OrgInfo is the plan, billing and trial summary of an organization
type OrgInfo struct {
	Name               string          `json:"name"`
	Login              string          `json:"login"`
	Description        string          `json:"description"`
	Type               string          `json:"type"`
	Plan               *PlanInfo       `json:"plan"`
	Billing            map[string]any  `json:"billing"`
	Enterprise         *EnterpriseInfo `json:"enterprise"`
	TrialEndsAt        *time.Time      `json:"trialEndsAt"`
	TrialDaysRemaining *int            `json:"trialDaysRemaining"`
	IsEnterprise       bool            `json:"isEnterprise"`
	CreatedAt          *time.Time      `json:"createdAt,omitempty"`
}

// Overview bundles everything shown for a single organization
type Overview struct {
	Org          string         `json:"org"`
	MembersCount int            `json:"membersCount"`
	Members      []Member       `json:"members"`
	InvitesCount int            `json:"invitesCount"`
	Invitations  []Invitation   `json:"invitations"`
	Copilot      *CopilotStatus `json:"copilot,omitempty"`
	OrgInfo      *OrgInfo       `json:"orgInfo,omitempty"`
	OrgInfoError string         `json:"orgInfoError,omitempty"`
}
