package assistant

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/velora-labs/storefront-api/catalog"
)

// FallbackMessage is the only text a user ever sees when generation fails.
const FallbackMessage = "Sorry, technical issue. Please refresh and try again."

// maxToolRounds bounds the tool-calling loop; the model normally stops on
// its own after one round trip.
const maxToolRounds = 3

// Conversation is one model session. *genai.ChatSession satisfies it.
type Conversation interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Orchestrator drives a single chat turn: prompt in, assistant text out,
// with tool calls resolved against the catalog in between.
type Orchestrator struct {
	tools *Toolbox
	start func() Conversation
}

func NewOrchestrator(client *genai.Client, finder catalog.Finder) *Orchestrator {
	tools := NewToolbox(finder)

	model := client.GenerativeModel(modelName)
	model.Tools = tools.Declarations()
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.SetTemperature(0.7)
	model.SetTopK(40)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(2048)

	return &Orchestrator{
		tools: tools,
		start: func() Conversation { return model.StartChat() },
	}
}

// Reply sends the user's utterance and loops while the model keeps
// requesting tools: dispatch the call, feed the structured result back,
// repeat. The loop ends at the first plain-text response or after
// maxToolRounds round trips.
func (o *Orchestrator) Reply(ctx context.Context, prompt string) (string, error) {
	session := o.start()

	resp, err := session.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	for round := 0; round < maxToolRounds; round++ {
		call, ok := functionCall(resp)
		if !ok {
			break
		}
		result := o.tools.Execute(call.Name, call.Args)
		resp, err = session.SendMessage(ctx, genai.FunctionResponse{
			Name:     call.Name,
			Response: result,
		})
		if err != nil {
			return "", err
		}
	}

	return textContent(resp), nil
}

func functionCall(resp *genai.GenerateContentResponse) (genai.FunctionCall, bool) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if call, ok := part.(genai.FunctionCall); ok {
				return call, true
			}
		}
	}
	return genai.FunctionCall{}, false
}

func textContent(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
