package model

import "time"

// Upstream shapes returned by the GitHub capability, before they are
// reshaped into caller-facing responses.

// Organization is the subset of GET /orgs/{org} that orgdesk uses
type Organization struct {
	Login       string
	Name        string
	Description string
	Type        string
	Plan        *Plan
	TrialEndsAt *time.Time
	CreatedAt   *time.Time
}

// Plan is the organization billing plan
type Plan struct {
	Name        string
	Seats       int
	FilledSeats int
}

// CopilotBilling is the Copilot seat management state
type CopilotBilling struct {
	SeatManagementSetting string
	SeatBreakdown         *SeatBreakdown
}

// SeatBreakdown counts Copilot seats by state
type SeatBreakdown struct {
	Total             int
	ActiveThisCycle   int
	PendingInvitation int
}

// OrganizationGraph is the GraphQL view of an organization
type OrganizationGraph struct {
	Name                string
	Login               string
	ViewerCanAdminister bool
	PlanName            string
	Enterprise          *Enterprise
}

// Enterprise identifies the enterprise account owning an organization
type Enterprise struct {
	Name string
	Slug string
}

// AuditEvent is a single organization audit log entry
type AuditEvent struct {
	Action    string
	User      string
	CreatedAt time.Time
}

// AuditActionAddMember is the audit log action recorded when a user joins
const AuditActionAddMember = "org.add_member"
