package notify

import (
	"fmt"
	"os"
	"strings"
)

// Config selects the notification provider.
type Config struct {
	SlackEnabled bool
	SlackChannel string
}

// New returns the notifier described by cfg. Slack needs SLACK_BOT_USER_TOKEN;
// without it notifications are disabled and logf is told why.
func New(cfg Config, logf func(string, ...any)) Notifier {
	if !cfg.SlackEnabled {
		return Nop{}
	}

	botToken := os.Getenv("SLACK_BOT_USER_TOKEN")
	if botToken == "" {
		if logf != nil {
			logf("SLACK_BOT_USER_TOKEN not set, slack notifications disabled")
		}
		return Nop{}
	}

	return NewSlackNotifier(botToken, cfg.SlackChannel)
}

// TableMessage formats the announcement for a refreshed table.
func TableMessage(document, table string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Benchmark table refreshed in %s\n", document)
	sb.WriteString("```\n")
	sb.WriteString(table)
	if !strings.HasSuffix(table, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String()
}
