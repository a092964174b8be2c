package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		failure model.Failure
		kind    model.ReasonKind
		message string
	}{
		{"not found", model.Failure{StatusCode: 404, Message: "Not Found"}, model.ReasonNotFound, model.MessageNotExist},
		{"already member", model.Failure{StatusCode: 422, Message: "Validation Failed: invitee is already a member"}, model.ReasonConflict, model.MessageAlreadyMember},
		{"already invited", model.Failure{StatusCode: 422, Message: "invitee has already been invited"}, model.ReasonConflict, model.MessagePendingInvite},
		{"pending invitation", model.Failure{StatusCode: 422, Message: "user has a pending invitation"}, model.ReasonConflict, model.MessagePendingInvite},
		{"suspended", model.Failure{StatusCode: 422, Message: "account is suspended"}, model.ReasonConflict, model.MessageSuspended},
		{"flagged", model.Failure{StatusCode: 422, Message: "account is flagged"}, model.ReasonConflict, model.MessageSuspended},
		{"blocked", model.Failure{StatusCode: 422, Message: "user is blocked"}, model.ReasonConflict, model.MessageBlocked},
		{"generic 422", model.Failure{StatusCode: 422, Message: "Validation Failed"}, model.ReasonConflict, "cannot invite: Validation Failed"},
		{"forbidden", model.Failure{StatusCode: 403, Message: "Must have admin rights"}, model.ReasonForbidden, model.MessageForbidden},
		{"rate limited", model.Failure{StatusCode: 429, Message: "secondary rate limit"}, model.ReasonRateLimited, model.MessageRateLimited},
		{"server error", model.Failure{StatusCode: 502, Message: "Bad Gateway"}, model.ReasonUnclassified, "Bad Gateway"},
		{"no status", model.Failure{Message: "connection reset"}, model.ReasonUnclassified, "connection reset"},
		{"empty message", model.Failure{StatusCode: 500}, model.ReasonUnclassified, model.MessageInvitationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := model.Classify(tt.failure)
			gt.Equal(t, tt.kind, reason.Kind)
			gt.Equal(t, tt.message, reason.Message)
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	t.Run("already a member wins over blocked", func(t *testing.T) {
		reason := model.Classify(model.Failure{StatusCode: 422, Message: "already a member and blocked"})
		gt.Equal(t, model.MessageAlreadyMember, reason.Message)
	})

	t.Run("pending invitation wins over suspended", func(t *testing.T) {
		reason := model.Classify(model.Failure{StatusCode: 422, Message: "pending invitation; account suspended"})
		gt.Equal(t, model.MessagePendingInvite, reason.Message)
	})

	t.Run("404 ignores message content", func(t *testing.T) {
		reason := model.Classify(model.Failure{StatusCode: 404, Message: "already a member"})
		gt.Equal(t, model.ReasonNotFound, reason.Kind)
	})
}

type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string           { return e.message }
func (e *statusError) UpstreamStatus() int     { return e.status }
func (e *statusError) UpstreamMessage() string { return e.message }

func TestFailureFrom(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		gt.Equal(t, model.Failure{}, model.FailureFrom(nil))
	})

	t.Run("plain error has no status", func(t *testing.T) {
		f := model.FailureFrom(errors.New("dial tcp: timeout"))
		gt.Equal(t, 0, f.StatusCode)
		gt.Equal(t, "dial tcp: timeout", f.Message)
	})

	t.Run("upstream error through goerr wrap", func(t *testing.T) {
		err := goerr.Wrap(&statusError{status: 422, message: "already been invited"}, "failed to create invitation")
		f := model.FailureFrom(err)
		gt.Equal(t, 422, f.StatusCode)
		gt.Equal(t, "already been invited", f.Message)
		gt.False(t, f.IsNotFound())
	})

	t.Run("not found", func(t *testing.T) {
		f := model.FailureFrom(&statusError{status: 404, message: "Not Found"})
		gt.True(t, f.IsNotFound())
	})
}
