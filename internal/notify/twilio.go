package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider sends messages through the Twilio REST API
type TwilioProvider struct {
	client *twilio.RestClient
}

func NewTwilioProvider(accountSID, authToken string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioProvider{client: client}
}

func (p *TwilioProvider) Send(_ context.Context, msg Message) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(msg.From)
	params.SetTo(msg.To)
	params.SetBody(msg.Body)

	if _, err := p.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to %s: %w", msg.To, err)
	}
	return nil
}
