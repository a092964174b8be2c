package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
)

// Handle records an error that is not returned to an upstream caller.
// Caller mistakes are logged at warn, everything else at error.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if IsClientError(err) {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}

// IsClientError reports whether err was caused by invalid caller input
func IsClientError(err error) bool {
	return goerr.HasTag(err, model.ErrTagMissingParameter) ||
		goerr.HasTag(err, model.ErrTagInvalidParameter) ||
		goerr.HasTag(err, model.ErrTagProfileNotFound) ||
		goerr.HasTag(err, model.ErrTagUnauthorized)
}
