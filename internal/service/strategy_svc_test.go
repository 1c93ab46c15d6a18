package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"yt_agent_v1_202610/internal/model"
)

func newTestStrategyService(t *testing.T) *StrategyService {
	return NewStrategyService(zaptest.NewLogger(t))
}

// ==================== 基础行为 ====================

func TestStrategyService_Generate_MissingNiche(t *testing.T) {
	svc := newTestStrategyService(t)

	for _, lang := range []string{"hinglish", "hindi", "english", ""} {
		bundle, err := svc.Generate(context.Background(), "", lang)
		assert.Nil(t, bundle, "language=%q", lang)
		assert.True(t, errors.Is(err, ErrMissingNiche), "language=%q", lang)
	}
}

func TestStrategyService_Generate_FixedShape(t *testing.T) {
	svc := newTestStrategyService(t)

	wantCategories := map[string]int{
		"hinglish": 7,
		"hindi":    3,
		"english":  5,
	}

	for lang, categories := range wantCategories {
		t.Run(lang, func(t *testing.T) {
			bundle, err := svc.Generate(context.Background(), "Tech Reviews", lang)
			require.NoError(t, err)
			require.NotNil(t, bundle)

			assert.Len(t, bundle.TrendingTopics, 3)
			assert.Len(t, bundle.Titles, 3)
			assert.Len(t, bundle.Hooks, 3)
			assert.Len(t, bundle.Scripts, 3)
			assert.Len(t, bundle.Tags.YouTube, 10)
			assert.Len(t, bundle.Tags.Shorts, 12)
			assert.Len(t, bundle.AutomationTools, categories)

			assert.NotEmpty(t, bundle.VisualPlan)
			assert.NotEmpty(t, bundle.Workflow)
			assert.NotEmpty(t, bundle.Description)
			assert.NotEmpty(t, bundle.PostingStrategy.BestDays)
			assert.NotEmpty(t, bundle.PostingStrategy.BestTimes)
			assert.NotEmpty(t, bundle.PostingStrategy.Frequency)
			assert.NotEmpty(t, bundle.PostingStrategy.ContentMix)

			for _, c := range bundle.AutomationTools {
				assert.NotEmpty(t, c.Category)
				assert.NotEmpty(t, c.Tools)
			}
		})
	}
}

func TestStrategyService_Generate_NicheInterpolated(t *testing.T) {
	svc := newTestStrategyService(t)
	niche := "Street Food Vlogs"

	for _, lang := range model.Languages {
		t.Run(lang.String(), func(t *testing.T) {
			bundle, err := svc.Generate(context.Background(), niche, lang.String())
			require.NoError(t, err)

			for i, topic := range bundle.TrendingTopics {
				assert.Contains(t, topic.Title, niche, "trendingTopics[%d]", i)
			}
			for i, title := range bundle.Titles {
				assert.Contains(t, title, niche, "titles[%d]", i)
			}
			for i, hook := range bundle.Hooks {
				assert.Contains(t, hook, niche, "hooks[%d]", i)
			}
			for i, script := range bundle.Scripts {
				assert.Contains(t, script.Content, niche, "scripts[%d]", i)
			}
			assert.Contains(t, bundle.VisualPlan, niche)
			assert.Contains(t, bundle.Description, niche)
			assert.Contains(t, bundle.Description, "#StreetFoodVlogs")

			for i, tag := range bundle.Tags.YouTube {
				assert.Contains(t, tag, "street food vlogs", "tags.youtube[%d]", i)
			}
			assert.Equal(t, "#streetfoodvlogs", bundle.Tags.Shorts[0])
		})
	}
}

func TestStrategyService_Generate_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	svc := newTestStrategyService(t)

	english, err := svc.Generate(context.Background(), "Gaming", "english")
	require.NoError(t, err)

	tests := []string{"", "klingon", "ENGLISH", "Hindi", "hinglish "}
	for _, lang := range tests {
		t.Run("language="+lang, func(t *testing.T) {
			got, err := svc.Generate(context.Background(), "Gaming", lang)
			require.NoError(t, err)
			assert.Equal(t, english, got)
		})
	}
}

func TestStrategyService_Generate_Idempotent(t *testing.T) {
	svc := newTestStrategyService(t)

	for _, lang := range model.Languages {
		first, err := svc.Generate(context.Background(), "Finance Tips", lang.String())
		require.NoError(t, err)
		second, err := svc.Generate(context.Background(), "Finance Tips", lang.String())
		require.NoError(t, err)

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "language=%s", lang)
	}
}

func TestStrategyService_Generate_WhitespaceNicheAccepted(t *testing.T) {
	svc := newTestStrategyService(t)

	bundle, err := svc.Generate(context.Background(), "   ", "english")
	require.NoError(t, err)
	assert.Equal(t, "#", bundle.Tags.Shorts[0])
	assert.Equal(t, "   ", bundle.Tags.YouTube[0])
}

// ==================== 子生成器 ====================

func TestStrategyService_TrendingTopics(t *testing.T) {
	svc := newTestStrategyService(t)

	topics, err := svc.TrendingTopics("Cooking", model.LanguageHinglish)
	require.NoError(t, err)

	assert.Equal(t, "Cooking - Latest Trend 2024", topics[0].Title)
	assert.Equal(t, "Cooking Secrets Nobody Tells You", topics[1].Title)
	assert.Equal(t, "Cooking in 60 Seconds | Quick Guide", topics[2].Title)

	assert.Equal(t, model.ViralityHigh, topics[0].Virality)
	assert.Equal(t, model.ViralityHigh, topics[1].Virality)
	assert.Equal(t, model.ViralityMedium, topics[2].Virality)

	assert.Contains(t, topics[0].Reason, "aur engagement potential")
}

func TestStrategyService_Titles(t *testing.T) {
	svc := newTestStrategyService(t)

	tests := []struct {
		name   string
		lang   model.Language
		prefix string
	}{
		{"Hinglish 标题", model.LanguageHinglish, "🔥 Cooking Ka Sach!"},
		{"Hindi 标题", model.LanguageHindi, "🔥 Cooking की सच्चाई!"},
		{"English 标题", model.LanguageEnglish, "🔥 Cooking EXPOSED!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titles, err := svc.Titles("Cooking", tt.lang)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(titles[0], tt.prefix), "got %q", titles[0])
		})
	}
}

func TestStrategyService_Scripts_Types(t *testing.T) {
	svc := newTestStrategyService(t)

	scripts, err := svc.Scripts("Yoga", model.LanguageEnglish)
	require.NoError(t, err)

	types := make([]string, 0, len(scripts))
	for _, s := range scripts {
		types = append(types, s.Type)
	}
	assert.Equal(t, []string{
		"Short-Form Script (30-60 sec)",
		"Long-Form Script (8-12 min)",
		"Shorts/Reels Script (15 sec)",
	}, types)
	assert.True(t, strings.HasPrefix(scripts[0].Content, "├─ HOOK (0-3 sec)\n\"Doing Yoga? Don't make this mistake!\""))
}

func TestStrategyService_Tags(t *testing.T) {
	svc := newTestStrategyService(t)

	tests := []struct {
		lang     model.Language
		viralTag string
	}{
		{model.LanguageHinglish, "#hindiviral"},
		{model.LanguageHindi, "#hindiviral"},
		{model.LanguageEnglish, "#viralvideo"},
	}

	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			tags, err := svc.Tags("Home Workout", tt.lang)
			require.NoError(t, err)

			assert.Equal(t, []string{
				"home workout",
				"home workout tutorial",
				"home workout guide",
				"home workout tips",
				"home workout 2024",
				"how to home workout",
				"home workout for beginners",
				"home workout hindi",
				"home workout explained",
				"best home workout",
			}, tags.YouTube)

			assert.Equal(t, []string{
				"#homeworkout", "#shorts", "#viral", "#trending", "#reels", "#youtubeshorts",
				"#fyp", "#explore", tt.viralTag, "#tips", "#tricks", "#howto",
			}, tags.Shorts)
		})
	}
}

func TestStrategyService_Tags_CompactsAllWhitespace(t *testing.T) {
	svc := newTestStrategyService(t)

	tags, err := svc.Tags("Tech \t Reviews\nIndia", model.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "#techreviewsindia", tags.Shorts[0])
}

func TestStrategyService_PostingStrategy(t *testing.T) {
	svc := newTestStrategyService(t)

	ps := svc.PostingStrategy(model.LanguageEnglish)
	assert.Equal(t, "Thursday, Friday, Saturday (Before & during weekend)", ps.BestDays)
	assert.Equal(t, "70% Shorts/Reels (viral), 30% Long-form (value)", ps.ContentMix)

	assert.Equal(t, "गुरुवार, शुक्रवार, शनिवार", svc.PostingStrategy(model.LanguageHindi).BestDays)
}

func TestStrategyService_AutomationTools_ReturnsCopy(t *testing.T) {
	svc := newTestStrategyService(t)

	first := svc.AutomationTools(model.LanguageEnglish)
	first[0].Category = "changed"
	first[0].Tools[0].Name = "changed"

	second := svc.AutomationTools(model.LanguageEnglish)
	assert.Equal(t, "🎬 Video Creation & Editing", second[0].Category)
	assert.Equal(t, "Pictory.ai", second[0].Tools[0].Name)
}

func TestStrategyService_Workflow(t *testing.T) {
	svc := newTestStrategyService(t)

	assert.True(t, strings.HasSuffix(svc.Workflow(model.LanguageHinglish), "└─ PRO TIP: Start manual, then automate step-by-step! 🚀"))
	assert.True(t, strings.HasSuffix(svc.Workflow(model.LanguageEnglish), "└─ PRO TIP: Automate gradually! 🚀"))
	assert.True(t, strings.HasPrefix(svc.Workflow(model.LanguageHindi), "├─ संपूर्ण स्वचालन वर्कफ्लो:"))
}

func TestStrategyService_Description_Hashtag(t *testing.T) {
	svc := newTestStrategyService(t)

	desc, err := svc.Description("Tech Reviews", model.LanguageHinglish)
	require.NoError(t, err)
	assert.Contains(t, desc, "#TechReviews #Tutorial #Hindi")
	assert.True(t, strings.HasSuffix(desc, "© 2024 [Your Channel Name]. All Rights Reserved."))
}

// ==================== 语言解析 ====================

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want model.Language
	}{
		{"hinglish", model.LanguageHinglish},
		{"hindi", model.LanguageHindi},
		{"english", model.LanguageEnglish},
		{"", model.LanguageEnglish},
		{"Hindi", model.LanguageEnglish},
		{"tamil", model.LanguageEnglish},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.ParseLanguage(tt.in), "in=%q", tt.in)
	}
}
