package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// slackPoster is the subset of *slack.Client used here.
type slackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackNotifier posts messages to a Slack channel with a bot token.
type SlackNotifier struct {
	client    slackPoster
	channelID string
}

// NewSlackNotifier creates a SlackNotifier for the given bot token and channel.
func NewSlackNotifier(botToken, channelID string) *SlackNotifier {
	return &SlackNotifier{
		client:    slack.New(botToken),
		channelID: channelID,
	}
}

// Notify sends message to the configured channel.
func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	channelID := s.channelID
	if channelID == "" {
		channelID = "#general"
	}

	_, _, err := s.client.PostMessageContext(ctx, channelID, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	return nil
}
