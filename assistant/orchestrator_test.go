package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"

	"github.com/velora-labs/storefront-api/catalog"
	"github.com/velora-labs/storefront-api/models"
)

// scriptedConversation replays canned responses and records what was sent.
type scriptedConversation struct {
	responses []*genai.GenerateContentResponse
	sent      [][]genai.Part
	err       error
}

func (s *scriptedConversation) SendMessage(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	s.sent = append(s.sent, parts)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return textResponse(""), nil
	}
	resp := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return resp, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}},
		}},
	}
}

func callResponse(name string, args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.FunctionCall{Name: name, Args: args}}},
		}},
	}
}

func newTestOrchestrator(finder catalog.Finder, conv Conversation) *Orchestrator {
	return &Orchestrator{
		tools: NewToolbox(finder),
		start: func() Conversation { return conv },
	}
}

func TestReplyPlainText(t *testing.T) {
	conv := &scriptedConversation{responses: []*genai.GenerateContentResponse{
		textResponse("Hello! How can I help you today?"),
	}}
	orc := newTestOrchestrator(&fakeFinder{}, conv)

	text, err := orc.Reply(context.Background(), "hi")

	require.NoError(t, err)
	require.Equal(t, "Hello! How can I help you today?", text)
	require.Len(t, conv.sent, 1)
}

func TestReplyOneToolRoundTrip(t *testing.T) {
	finder := &fakeFinder{queryResult: catalog.QueryResult{
		Products: []models.Product{{ID: 3, Name: "Rose Lipstick", Price: 120}},
		Count:    1,
		Message:  "1 products found",
	}}
	conv := &scriptedConversation{responses: []*genai.GenerateContentResponse{
		callResponse("getProducts", map[string]any{"categorySlug": "beauty", "maxPrice": 500.0}),
		textResponse("Rose Lipstick is available for 120."),
	}}
	orc := newTestOrchestrator(finder, conv)

	text, err := orc.Reply(context.Background(), "beauty products under 500")

	require.NoError(t, err)
	require.Equal(t, "Rose Lipstick is available for 120.", text)

	// The tool was dispatched with the model's arguments.
	require.NotNil(t, finder.lastFilter)
	require.Equal(t, "beauty", finder.lastFilter.CategorySlug)
	require.Equal(t, 500.0, *finder.lastFilter.MaxPrice)

	// The second send carried a structured tool response, not text.
	require.Len(t, conv.sent, 2)
	fr, ok := conv.sent[1][0].(genai.FunctionResponse)
	require.True(t, ok)
	require.Equal(t, "getProducts", fr.Name)
	require.Equal(t, float64(1), fr.Response["count"])
}

func TestReplyStopsAfterMaxToolRounds(t *testing.T) {
	// A model that never stops asking for tools.
	conv := &scriptedConversation{responses: []*genai.GenerateContentResponse{
		callResponse("getProducts", map[string]any{}),
	}}
	orc := newTestOrchestrator(&fakeFinder{}, conv)

	_, err := orc.Reply(context.Background(), "loop forever")

	require.NoError(t, err)
	// Initial prompt plus exactly maxToolRounds tool round trips.
	require.Len(t, conv.sent, 1+maxToolRounds)
}

func TestReplyUnknownToolFedBackToModel(t *testing.T) {
	conv := &scriptedConversation{responses: []*genai.GenerateContentResponse{
		callResponse("formatHardDrive", map[string]any{}),
		textResponse("I cannot do that."),
	}}
	orc := newTestOrchestrator(&fakeFinder{}, conv)

	text, err := orc.Reply(context.Background(), "do something weird")

	require.NoError(t, err)
	require.Equal(t, "I cannot do that.", text)

	fr, ok := conv.sent[1][0].(genai.FunctionResponse)
	require.True(t, ok)
	require.Equal(t, "Unknown tool function", fr.Response["error"])
}

func TestReplyPropagatesGenerationError(t *testing.T) {
	conv := &scriptedConversation{err: errors.New("quota exceeded")}
	orc := newTestOrchestrator(&fakeFinder{}, conv)

	_, err := orc.Reply(context.Background(), "hi")

	require.Error(t, err)
}
