// Package mailer sends outbound campaign email through AWS SES v2.
package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	appconfig "github.com/ignite/outreach-hub/internal/config"
)

// Mailer delivers a single email per call. Without SES credentials it
// runs in mock mode: sends are logged and reported as successful, which
// keeps local development working end to end.
type Mailer struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
}

// NewMailer creates an SES-backed mailer, or a mock mailer when the
// config carries no credentials.
func NewMailer(ctx context.Context, cfg appconfig.SESConfig) (*Mailer, error) {
	m := &Mailer{
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}

	if !cfg.Enabled() {
		log.Println("[mailer] SES credentials not set, running in mock mode")
		return m, nil
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	m.client = sesv2.NewFromConfig(awsCfg)
	log.Printf("[mailer] SES mailer initialized, region=%s from=%s", cfg.Region, cfg.FromEmail)
	return m, nil
}

// Send delivers one rendered email. The body is treated as HTML.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.client == nil {
		log.Printf("[mailer] mock send to=%s subject=%q", to, subject)
		return nil
	}

	from := m.fromEmail
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	}

	output, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	if output.MessageId != nil {
		log.Printf("[mailer] sent to=%s message_id=%s", to, *output.MessageId)
	}
	return nil
}
