package slack_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	slackSvc "github.com/secmon-lab/orgdesk/pkg/service/slack"
	"github.com/slack-go/slack"
)

func sampleReport(failures int) *model.InviteReport {
	report := &model.InviteReport{Org: "acme", Role: "direct_member"}
	report.Results = append(report.Results, model.InviteOutcome{Identifier: "octocat", OK: true, Status: 201, Message: model.MessageInvitationSent})
	report.OKCount = 1
	for i := 0; i < failures; i++ {
		report.Results = append(report.Results, model.InviteOutcome{
			Identifier: model.Identifier(fmt.Sprintf("ghost-%d", i)),
			Error:      model.MessageNotExist,
			Reason:     model.ReasonNotFound,
		})
	}
	return report
}

func TestNotifyInviteReport(t *testing.T) {
	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "/chat.postMessage", r.URL.Path)
		gt.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	}))
	defer server.Close()

	svc := slackSvc.New("xoxb-test", "C123", slackSvc.WithAPIURL(server.URL+"/"))
	err := svc.NotifyInviteReport(context.Background(), sampleReport(1))
	gt.NoError(t, err).Required()

	gt.Equal(t, "C123", form["channel"][0])
	gt.S(t, form["text"][0]).Contains("1 of 2 sent")

	var blocks []map[string]any
	gt.NoError(t, json.Unmarshal([]byte(form["blocks"][0]), &blocks)).Required()
	gt.Equal(t, 4, len(blocks))
	gt.Equal(t, "header", blocks[0]["type"])
}

func TestNotifyInviteReportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	svc := slackSvc.New("xoxb-test", "C999", slackSvc.WithAPIURL(server.URL+"/"))
	err := svc.NotifyInviteReport(context.Background(), sampleReport(0))
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("channel_not_found")

	gt.Error(t, svc.NotifyInviteReport(context.Background(), nil))
}

func TestBuildReportBlocks(t *testing.T) {
	t.Run("all succeeded", func(t *testing.T) {
		blocks := slackSvc.BuildReportBlocks(sampleReport(0))
		gt.Equal(t, 2, len(blocks))
	})

	t.Run("failures are listed", func(t *testing.T) {
		blocks := slackSvc.BuildReportBlocks(sampleReport(2))
		gt.Equal(t, 4, len(blocks))

		section, ok := blocks[3].(*slack.SectionBlock)
		gt.True(t, ok)
		gt.S(t, section.Text.Text).Contains("`ghost-0`: identifier does not exist")
		gt.S(t, section.Text.Text).Contains("`ghost-1`")
	})

	t.Run("long failure lists are truncated", func(t *testing.T) {
		blocks := slackSvc.BuildReportBlocks(sampleReport(25))
		section := blocks[3].(*slack.SectionBlock)
		gt.S(t, section.Text.Text).Contains("…and 5 more")
		gt.False(t, strings.Contains(section.Text.Text, "`ghost-20`"))
	})

	t.Run("upstream text is escaped", func(t *testing.T) {
		report := sampleReport(0)
		report.Results = append(report.Results, model.InviteOutcome{
			Identifier: "a<b>",
			Error:      "cannot invite: <!channel> & <https://evil.example|click>",
			Reason:     model.ReasonConflict,
		})

		blocks := slackSvc.BuildReportBlocks(report)
		section := blocks[3].(*slack.SectionBlock)
		gt.S(t, section.Text.Text).Contains("`a&lt;b&gt;`")
		gt.S(t, section.Text.Text).Contains("&lt;!channel&gt; &amp; &lt;https://evil.example|click&gt;")
		gt.False(t, strings.Contains(section.Text.Text, "<!channel>"))
	})
}
