package notification

import (
	"context"
	"strings"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/errors"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the subset of the Twilio REST API used for SMS
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type twilioSender struct {
	api         messageCreator
	from        string
	countryCode string
}

// NewTwilioSender creates an SMS sender backed by the Twilio Messages API
func NewTwilioSender(accountSID, authToken, from, countryCode string) (service.MessageSender, error) {
	if accountSID == "" || authToken == "" {
		return nil, errors.New("twilio account SID and auth token are required")
	}
	if from == "" {
		return nil, errors.New("twilio sender number is required")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return newTwilioSender(client.Api, from, countryCode), nil
}

func newTwilioSender(api messageCreator, from, countryCode string) *twilioSender {
	return &twilioSender{
		api:         api,
		from:        from,
		countryCode: countryCode,
	}
}

func (s *twilioSender) Channel() string {
	return "sms"
}

// Destination prefixes the stored phone number with the country code
func (s *twilioSender) Destination(account *entity.Account) (string, bool) {
	if account == nil {
		return "", false
	}

	phone := strings.TrimSpace(account.Phone)
	if phone == "" {
		return "", false
	}
	if strings.HasPrefix(phone, "+") {
		return phone, true
	}

	return s.countryCode + phone, true
}

// Send creates one outbound SMS. The Twilio client has no context support, so ctx is only checked up front.
func (s *twilioSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.api.CreateMessage(params); err != nil {
		return errors.Wrap(err, "failed to send SMS")
	}

	return nil
}
