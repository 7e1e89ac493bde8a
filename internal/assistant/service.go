package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Service wraps the generators behind operations that never surface provider
// or parse errors: each one logs and returns a degraded value instead.
type Service struct {
	gemini Generator
	openai Generator
}

func NewService(gemini, openai Generator) *Service {
	return &Service{gemini: gemini, openai: openai}
}

var fallbackRecommendation = Recommendation{
	Type:        "order",
	Title:       "Buyurtmalarni tekshiring",
	Description: "Kutilayotgan buyurtmalar mavjud",
	Priority:    "medium",
	Action:      "Buyurtmalar bo'limiga o'ting",
}

// Recommendations never returns an empty slice: any provider or decode
// failure yields the single fallback entry.
func (s *Service) Recommendations(ctx context.Context, snap Snapshot) []Recommendation {
	prompt := fmt.Sprintf(`O'zbekiston e-commerce platformasi uchun admin panel tavsiyalari yarating.

Ma'lumotlar:
- Jami buyurtmalar: %d
- Kutilayotgan buyurtmalar: %d
- Nashr qilingan blog postlar: %d
- Qoralama blog postlar: %d
- Rejalashtirilgan marketing xabarlar: %d
- So'nggi mahsulotlar: %s

5 ta muhim tavsiya bering JSON formatida:
{"recommendations": [{"type": "order", "title": "Buyurtmalarni tezlashtiring", "description": "Ko'p buyurtmalar kutilmoqda", "priority": "high", "action": "Buyurtmalarni qayta ko'rib chiqing"}]}`,
		snap.TotalOrders, snap.PendingOrders, snap.PublishedPosts,
		snap.DraftPosts, snap.ScheduledMessages, strings.Join(snap.RecentProducts, ", "))

	raw, err := s.gemini.GenerateText(ctx, prompt)
	if err == nil {
		var out struct {
			Recommendations []Recommendation `json:"recommendations"`
		}
		if err = decodeJSON(raw, &out); err == nil && len(out.Recommendations) > 0 {
			return out.Recommendations
		}
	}
	log.Warn().Err(err).Msg("recommendations generation failed, using fallback")
	return []Recommendation{fallbackRecommendation}
}

func (s *Service) SuggestBlogPost(ctx context.Context, topic string, keywords []string) *BlogPostSuggestion {
	prompt := fmt.Sprintf(`O'zbekiston e-commerce mavzusida "%s" haqida blog post yarating.
Kalit so'zlar: %s

JSON formatida javob bering:
{"title": "SEO sarlavha", "content": "To'liq kontent", "metaDescription": "Meta tavsif", "keywords": ["kalit", "so'z"], "category": "kategoriya"}`,
		topic, strings.Join(keywords, ", "))

	var out BlogPostSuggestion
	if !s.generate(ctx, s.gemini, prompt, &out, "blog suggestion") {
		return nil
	}
	return &out
}

// SuggestMarketingMessage forces the response type to the requested channel
// regardless of what the model answered.
func (s *Service) SuggestMarketingMessage(ctx context.Context, req MarketingRequest) *MarketingMessageSuggestion {
	prompt := fmt.Sprintf(`O'zbekiston e-commerce platformasi uchun %s marketing xabari yarating.
Maqsad: %s
Auditoriya: %s
Mahsulotlar: %s
Aksiya: %s

JSON formatida javob bering:
{"type": "%s", "title": "Xabar sarlavhasi", "content": "To'liq xabar", "targetAudience": "Auditoriya", "bestSendTime": "Eng yaxshi vaqt"}`,
		req.Type, req.Purpose, req.TargetAudience,
		strings.Join(req.Products, ", "), req.Promotion, req.Type)

	var out MarketingMessageSuggestion
	if !s.generate(ctx, s.gemini, prompt, &out, "marketing suggestion") {
		return nil
	}
	out.Type = req.Type
	return &out
}

func (s *Service) OptimizeProduct(ctx context.Context, req ProductRequest) *ProductOptimization {
	prompt := fmt.Sprintf(`Mahsulot tavsifini optimizatsiya qiling:
Nomi: %s
Tavsif: %s
Kategoriya: %s
Narx: %.2f
Xususiyatlar: %s

JSON formatida javob bering:
{"optimizedDescription": "Yaxshilangan tavsif", "seoKeywords": ["kalit", "so'z"], "marketingPoints": ["marketing", "nuqta"]}`,
		req.Name, req.Description, req.Category, req.Price, strings.Join(req.Features, ", "))

	var out ProductOptimization
	if !s.generate(ctx, s.gemini, prompt, &out, "product optimization") {
		return nil
	}
	return &out
}

func (s *Service) AnalyzeSEO(ctx context.Context, req SEORequest) *SEOAnalysis {
	prompt := fmt.Sprintf(`SEO tahlil qiling:
Sarlavha: %s
Tavsif: %s
Kalit so'zlar: %s
Sahifalar: %d

JSON formatida javob bering:
{"score": 75, "issues": ["muammo1"], "recommendations": ["tavsiya1"], "improvedMetadata": {"title": "Yangi sarlavha", "description": "Yangi tavsif", "keywords": ["kalit"]}}`,
		orDefault(req.Title), orDefault(req.Description), orDefault(req.Keywords), len(req.Pages))

	var out SEOAnalysis
	if !s.generate(ctx, s.gemini, prompt, &out, "seo analysis") {
		return nil
	}
	return &out
}

func (s *Service) PersonalizeMessage(ctx context.Context, profile CustomerProfile, messageType string) *PersonalizedMessage {
	name := profile.Name
	if name == "" {
		name = "Valued customer"
	}
	format := `{"content": "SMS content"}`
	if messageType == "email" {
		format = `{"subject": "Email subject", "content": "Email content with HTML formatting"}`
	}
	prompt := fmt.Sprintf(`You are a marketing expert creating personalized messages for customers of an Uzbekistan e-commerce platform.
Generate a %s message in language %q, engaging and culturally appropriate.

Customer profile:
- Name: %s
- Purchase history: %s
- Preferences: %s

Respond in JSON format:
%s`,
		messageType, languageName(profile.Language), name,
		strings.Join(profile.PurchaseHistory, ", "),
		strings.Join(profile.Preferences, ", "), format)

	var out PersonalizedMessage
	if !s.generate(ctx, s.openai, prompt, &out, "personalized message") {
		return nil
	}
	return &out
}

func (s *Service) OptimizeContent(ctx context.Context, content, contentType, lang string) *ContentOptimization {
	prompt := fmt.Sprintf(`You are a content optimization expert for e-commerce content in the Uzbekistan market.
Optimize this %s content in language %q for SEO and engagement.

Original content: %s

Provide optimization in JSON format:
{"optimizedContent": "Improved content", "seoKeywords": ["keyword1", "keyword2"], "improvements": ["improvement1", "improvement2"]}`,
		contentType, languageName(lang), content)

	var out ContentOptimization
	if !s.generate(ctx, s.openai, prompt, &out, "content optimization") {
		return nil
	}
	return &out
}

// generate runs a prompt through the generator and decodes the response; a
// false return means the caller should degrade.
func (s *Service) generate(ctx context.Context, gen Generator, prompt string, v any, op string) bool {
	raw, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Msg("generation failed")
		return false
	}
	if err := decodeJSON(raw, v); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("response decode failed")
		return false
	}
	return true
}

func orDefault(s string) string {
	if s == "" {
		return "Noma'lum"
	}
	return s
}

func languageName(code string) string {
	switch code {
	case "ru":
		return "Russian"
	case "en":
		return "English"
	default:
		return "Uzbek"
	}
}
