package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/secmon-lab/orgdesk/pkg/domain/model"
)

// Notifier publishes a summary of a completed invitation batch
type Notifier interface {
	NotifyInviteReport(ctx context.Context, report *model.InviteReport) error
}
