package apperr_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	newCtx := func() (context.Context, *bytes.Buffer) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		return ctxlog.With(context.Background(), logger), &buf
	}

	t.Run("parameter errors are warnings", func(t *testing.T) {
		ctx, buf := newCtx()
		apperr.Handle(ctx, goerr.Wrap(model.MissingParameter("org"), "invite failed"))
		gt.S(t, buf.String()).Contains(`"level":"WARN"`)
	})

	t.Run("unauthorized callers are warnings", func(t *testing.T) {
		ctx, buf := newCtx()
		apperr.Handle(ctx, model.Unauthorized("authentication required"))
		gt.S(t, buf.String()).Contains(`"level":"WARN"`)
	})

	t.Run("other errors are errors", func(t *testing.T) {
		ctx, buf := newCtx()
		apperr.Handle(ctx, errors.New("upstream exploded"))
		gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
		gt.S(t, buf.String()).Contains("upstream exploded")
	})

	t.Run("nil is ignored", func(t *testing.T) {
		ctx, buf := newCtx()
		apperr.Handle(ctx, nil)
		gt.Equal(t, 0, buf.Len())
	})
}
