package model

import (
	"strings"

	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Channel is the invitation sub-flow chosen for an identifier
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelUsername Channel = "username"
)

// Identifier is a trimmed, non-empty invitee reference supplied by the caller
type Identifier string

// String returns the string representation
func (id Identifier) String() string {
	return string(id)
}

// Channel classifies the identifier by shape. Anything containing "@" is an email.
func (id Identifier) Channel() Channel {
	if strings.Contains(string(id), "@") {
		return ChannelEmail
	}
	return ChannelUsername
}

// ParseIdentifiers trims every raw entry and drops the ones that are blank.
// Order and duplicates are preserved.
func ParseIdentifiers(raw []string) []Identifier {
	ids := make([]Identifier, 0, len(raw))
	for _, r := range raw {
		s := strings.TrimSpace(r)
		if s == "" {
			continue
		}
		ids = append(ids, Identifier(s))
	}
	return ids
}

// SplitIdentifierText splits free-form text on whitespace, commas and semicolons
func SplitIdentifierText(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		}
		return false
	})
}

// InviteRequest is a single bulk invitation call
type InviteRequest struct {
	Org         types.OrgName
	Identifiers []string   // raw, untrimmed input in caller order
	Role        types.Role // empty means "use the configured default"
}

// InviteOutcome is the per-identifier result within a report.
// Exactly one of Message and Error is set.
type InviteOutcome struct {
	Identifier Identifier `json:"identifier"`
	Channel    Channel    `json:"channel"`
	OK         bool       `json:"ok"`
	Status     int        `json:"status,omitempty"`
	Message    string     `json:"message,omitempty"`
	Error      string     `json:"error,omitempty"`
	Reason     ReasonKind `json:"reason,omitempty"`
}

// InviteReport is the aggregate result of a bulk invitation
type InviteReport struct {
	Org     types.OrgName   `json:"-"`
	Role    types.Role      `json:"-"`
	OKCount int             `json:"okCount"`
	Results []InviteOutcome `json:"results"`
}

// Failed returns the outcomes that did not succeed, in order
func (r *InviteReport) Failed() []InviteOutcome {
	var failed []InviteOutcome
	for _, o := range r.Results {
		if !o.OK {
			failed = append(failed, o)
		}
	}
	return failed
}

// InviteTarget is the payload of a single invitation: either an email or a resolved user ID
type InviteTarget struct {
	Email     string
	InviteeID types.UserID
	Role      types.Role
}

// InvitationReceipt is what the upstream returns for a created invitation
type InvitationReceipt struct {
	ID         int64
	StatusCode int
}

// ResolvedUser is a GitHub identity looked up by username
type ResolvedUser struct {
	ID    types.UserID
	Login string
}
