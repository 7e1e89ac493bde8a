package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func TestRecommendations_FallbackNeverEmpty(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"provider error": {err: errors.New("quota exceeded")},
		"broken json":    {response: "not json at all"},
		"empty list":     {response: `{"recommendations": []}`},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewService(gen, gen)
			got := s.Recommendations(context.Background(), Snapshot{TotalOrders: 3})
			require.Len(t, got, 1)
			assert.Equal(t, "order", got[0].Type)
			assert.NotEmpty(t, got[0].Title)
		})
	}
}

func TestRecommendations_ParsesFencedResponse(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" +
		`{"recommendations": [{"type": "blog", "title": "Yangi post yozing", "description": "Qoralamalar ko'p", "priority": "high"}]}` +
		"\n```"}
	s := NewService(gen, gen)

	got := s.Recommendations(context.Background(), Snapshot{DraftPosts: 4})
	require.Len(t, got, 1)
	assert.Equal(t, "blog", got[0].Type)
	assert.Equal(t, "Yangi post yozing", got[0].Title)
}

func TestSuggestMarketingMessage_ForcesRequestType(t *testing.T) {
	gen := &fakeGenerator{response: `{"type": "email", "title": "Aksiya", "content": "Xabar", "targetAudience": "ulgurji", "bestSendTime": "09:00"}`}
	s := NewService(gen, gen)

	got := s.SuggestMarketingMessage(context.Background(), MarketingRequest{
		Type: "telegram", Purpose: "aksiya", TargetAudience: "ulgurji xaridorlar",
	})
	require.NotNil(t, got)
	assert.Equal(t, "telegram", got.Type)
}

func TestSuggestBlogPost_NilOnFailure(t *testing.T) {
	s := NewService(&fakeGenerator{response: "```\ngarbage\n```"}, nil)
	assert.Nil(t, s.SuggestBlogPost(context.Background(), "eksport", nil))
}

func TestPersonalizeMessage_UsesOpenAIGenerator(t *testing.T) {
	gemini := &fakeGenerator{err: errors.New("must not be called")}
	oa := &fakeGenerator{response: `{"subject": "Salom Aziz", "content": "Sizga maxsus chegirma"}`}
	s := NewService(gemini, oa)

	got := s.PersonalizeMessage(context.Background(), CustomerProfile{
		Name: "Aziz", Language: "uz", PurchaseHistory: []string{"paxta yog'i"},
	}, "email")
	require.NotNil(t, got)
	assert.Equal(t, "Salom Aziz", got.Subject)
	assert.Contains(t, oa.prompt, "Aziz")
}

func TestOptimizeContent_NilOnProviderError(t *testing.T) {
	s := NewService(nil, &fakeGenerator{err: errors.New("timeout")})
	assert.Nil(t, s.OptimizeContent(context.Background(), "matn", "product_description", "uz"))
}
