// Package ai generates reply drafts for inbox conversations using AWS
// Bedrock. The drafter is deliberately failure-proof: an unconfigured or
// failing model degrades to canned text instead of surfacing an error,
// so the inbox workflow never blocks on the model.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	appconfig "github.com/ignite/outreach-hub/internal/config"
	"github.com/ignite/outreach-hub/internal/domain"
)

// ErrorDraftContent is stored as the draft body when generation fails.
// The operator sees the failure in the review queue instead of a 500.
const ErrorDraftContent = "Error generating draft. Please check server logs."

const anthropicVersion = "bedrock-2023-05-31"

// Drafter produces reply drafts from a contact's conversation history.
type Drafter struct {
	client  *bedrockruntime.Client
	modelID string
	region  string
	timeout time.Duration
}

// anthropicRequest is the Bedrock InvokeModel body for Anthropic models.
type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	System           string             `json:"system,omitempty"`
	Messages         []anthropicMessage `json:"messages"`
	Temperature      float64            `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// NewDrafter creates a drafter. With an empty model ID (or when the AWS
// config cannot be loaded) it runs in mock mode and returns the canned
// reply for every request.
func NewDrafter(ctx context.Context, cfg appconfig.BedrockConfig) *Drafter {
	d := &Drafter{
		modelID: cfg.ModelID,
		region:  cfg.Region,
		timeout: cfg.Timeout(),
	}

	if cfg.ModelID == "" {
		log.Println("[ai] no model configured, using mock drafts")
		return d
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		log.Printf("[ai] AWS config load failed, using mock drafts: %v", err)
		d.modelID = ""
		return d
	}

	d.client = bedrockruntime.NewFromConfig(awsCfg)
	log.Printf("[ai] Drafter initialized with model=%s, region=%s", cfg.ModelID, cfg.Region)
	return d
}

// GenerateDraft returns a reply draft for the given conversation. The
// history must be ordered oldest first; it is embedded in the prompt in
// that order. The call is bounded by the configured timeout. Failures of
// any kind produce ErrorDraftContent, never an error.
func (d *Drafter) GenerateDraft(ctx context.Context, displayName string, history []domain.Message) string {
	if d.client == nil || d.modelID == "" {
		return cannedReply(displayName)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	request := anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        1024,
		System:           "You are a helpful email assistant for a business. Generate polite, professional, and concise reply drafts. Reply in Russian. Do not include placeholders like \"[Your Name]\"; use generic signatures.",
		Messages: []anthropicMessage{
			{
				Role: "user",
				Content: []anthropicContent{
					{Type: "text", Text: BuildPrompt(displayName, history)},
				},
			},
		},
		Temperature: 0.7,
	}

	body, err := json.Marshal(request)
	if err != nil {
		log.Printf("[ai] marshal request: %v", err)
		return ErrorDraftContent
	}

	output, err := d.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(d.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		log.Printf("[ai] Bedrock API error: %v", err)
		return ErrorDraftContent
	}

	var response anthropicResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		log.Printf("[ai] parse response: %v", err)
		return ErrorDraftContent
	}

	var text strings.Builder
	for _, content := range response.Content {
		if content.Type == "text" {
			text.WriteString(content.Text)
		}
	}
	if text.Len() == 0 {
		log.Printf("[ai] empty completion from model %s", d.modelID)
		return ErrorDraftContent
	}

	log.Printf("[ai] draft generated (in: %d tokens, out: %d tokens)",
		response.Usage.InputTokens, response.Usage.OutputTokens)
	return text.String()
}

// BuildPrompt assembles the one-shot draft prompt. History order is
// preserved: callers pass messages oldest first and the transcript in the
// prompt matches chronological order.
func BuildPrompt(displayName string, history []domain.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The client name is %s.\n\nHere is the conversation history:\n", displayName)
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	b.WriteString("\nPlease generate a response draft for the last message.")
	return b.String()
}

func cannedReply(displayName string) string {
	return fmt.Sprintf("Здравствуйте, %s!\n\nСпасибо за ваше сообщение. Мы получили ваш запрос и скоро ответим подробнее.\n\nЭто автоматический черновик ответа.\n\nС уважением,\nВаш помощник", displayName)
}
