package notification

import (
	"context"
	"fmt"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const pushTitle = "Blood needed nearby"

// pushClient is the subset of the FCM client used for single sends
type pushClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSender struct {
	client pushClient
}

// NewFirebaseSender creates a push sender backed by Firebase Cloud Messaging
func NewFirebaseSender(ctx context.Context, projectID, credentialsPath string) (service.MessageSender, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseSender{
		client: client,
	}, nil
}

func (s *firebaseSender) Channel() string {
	return "push"
}

// Destination is the account's registered device token
func (s *firebaseSender) Destination(account *entity.Account) (string, bool) {
	if account == nil || account.PushToken == "" {
		return "", false
	}

	return account.PushToken, true
}

// Send pushes the alert to a single device token
func (s *firebaseSender) Send(ctx context.Context, to, body string) error {
	message := &messaging.Message{
		Token: to,
		Notification: &messaging.Notification{
			Title: pushTitle,
			Body:  body,
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return fmt.Errorf("push token rejected: %w", err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
