package model

import (
	"errors"
	"strings"
)

// ReasonKind is the fixed taxonomy for per-identifier invitation failures
type ReasonKind string

const (
	ReasonNotFound     ReasonKind = "not_found"
	ReasonConflict     ReasonKind = "conflict"
	ReasonForbidden    ReasonKind = "forbidden"
	ReasonRateLimited  ReasonKind = "rate_limited"
	ReasonUnclassified ReasonKind = "unclassified"
)

// Reason is a classified failure with a human-readable message
type Reason struct {
	Kind    ReasonKind
	Message string
}

const (
	MessageInvitationSent  = "invitation sent"
	MessageNotExist        = "identifier does not exist"
	MessageAlreadyMember   = "already a member of the organization"
	MessagePendingInvite   = "already has a pending invitation"
	MessageSuspended       = "account suspended or flagged"
	MessageBlocked         = "blocked by the organization"
	MessageForbidden       = "insufficient permission to invite"
	MessageRateLimited     = "rate limited, retry later"
	MessageInvitationError = "invitation failed"
)

// Failure is an upstream failure reduced to the two fields classification needs.
// StatusCode is zero when the failure carried no HTTP status.
type Failure struct {
	StatusCode int
	Message    string
}

// upstreamError is implemented by errors that carry an upstream HTTP status
type upstreamError interface {
	error
	UpstreamStatus() int
	UpstreamMessage() string
}

// FailureFrom extracts a Failure from any error returned by the upstream client
func FailureFrom(err error) Failure {
	if err == nil {
		return Failure{}
	}
	var ue upstreamError
	if errors.As(err, &ue) {
		return Failure{StatusCode: ue.UpstreamStatus(), Message: ue.UpstreamMessage()}
	}
	return Failure{Message: err.Error()}
}

// IsNotFound reports whether the failure is an upstream 404
func (f Failure) IsNotFound() bool {
	return f.StatusCode == 404
}

// Classify maps an upstream failure to a Reason. Rules are evaluated top to
// bottom and the first match wins.
func Classify(f Failure) Reason {
	switch f.StatusCode {
	case 404:
		return Reason{Kind: ReasonNotFound, Message: MessageNotExist}

	case 422:
		switch {
		case strings.Contains(f.Message, "already a member"):
			return Reason{Kind: ReasonConflict, Message: MessageAlreadyMember}
		case strings.Contains(f.Message, "already been invited"),
			strings.Contains(f.Message, "pending invitation"):
			return Reason{Kind: ReasonConflict, Message: MessagePendingInvite}
		case strings.Contains(f.Message, "suspended"),
			strings.Contains(f.Message, "flagged"):
			return Reason{Kind: ReasonConflict, Message: MessageSuspended}
		case strings.Contains(f.Message, "blocked"):
			return Reason{Kind: ReasonConflict, Message: MessageBlocked}
		}
		return Reason{Kind: ReasonConflict, Message: "cannot invite: " + f.Message}

	case 403:
		return Reason{Kind: ReasonForbidden, Message: MessageForbidden}

	case 429:
		return Reason{Kind: ReasonRateLimited, Message: MessageRateLimited}
	}

	if f.Message == "" {
		return Reason{Kind: ReasonUnclassified, Message: MessageInvitationError}
	}
	return Reason{Kind: ReasonUnclassified, Message: f.Message}
}
