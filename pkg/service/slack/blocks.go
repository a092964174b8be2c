package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/slack-go/slack"
)

// mrkdwnEscaper escapes the characters Slack reserves in mrkdwn text.
// Identifiers and upstream messages must pass through it.
var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// maxFailedLines caps the failure list so the message stays under Slack's block text limit
const maxFailedLines = 20

func reportFallbackText(report *model.InviteReport) string {
	return fmt.Sprintf("Invitations to %s: %d of %d sent", report.Org, report.OKCount, len(report.Results))
}

// buildReportBlocks renders an invite report as Block Kit blocks
func buildReportBlocks(report *model.InviteReport) []slack.Block {
	total := len(report.Results)
	failed := report.Failed()

	emoji := "✅"
	switch {
	case report.OKCount == 0:
		emoji = "❌"
	case len(failed) > 0:
		emoji = "⚠️"
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType,
				fmt.Sprintf("%s Organization invitations: %s", emoji, report.Org), true, false),
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Sent:*\n%d / %d", report.OKCount, total), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Role:*\n%s", report.Role), false, false),
		}, nil),
	}

	if len(failed) == 0 {
		return blocks
	}

	var lines []string
	for i, o := range failed {
		if i == maxFailedLines {
			lines = append(lines, fmt.Sprintf("…and %d more", len(failed)-maxFailedLines))
			break
		}
		lines = append(lines, fmt.Sprintf("• `%s`: %s",
			mrkdwnEscaper.Replace(o.Identifier.String()),
			mrkdwnEscaper.Replace(o.Error)))
	}

	blocks = append(blocks,
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "*Failed:*\n"+strings.Join(lines, "\n"), false, false),
			nil, nil,
		),
	)
	return blocks
}
