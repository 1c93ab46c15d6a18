package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"
	"time"

	"go.uber.org/zap"

	"yt_agent_v1_202610/internal/model"
)

// ==================== 错误定义 ====================

// ErrMissingNiche 未提供 niche
var ErrMissingNiche = errors.New("niche is required")

// ==================== 服务 ====================

// StrategyService 内容策略生成服务
// 纯模板填充：不调用外部 API、不读写存储，同样的输入永远得到同样的输出
type StrategyService struct {
	logger *zap.Logger
}

// NewStrategyService 创建内容策略服务
func NewStrategyService(logger *zap.Logger) *StrategyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StrategyService{logger: logger}
}

// Generate 根据 niche 与语言生成完整内容策略
// language 不做校验，未识别的值使用英语模板
func (s *StrategyService) Generate(ctx context.Context, niche, language string) (*model.StrategyBundle, error) {
	if niche == "" {
		return nil, ErrMissingNiche
	}

	start := time.Now()
	lang := model.ParseLanguage(language)

	bundle, err := s.build(niche, lang)
	if err != nil {
		s.logger.Error("生成内容策略失败",
			zap.String("niche", niche),
			zap.String("language", lang.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("内容策略已生成",
		zap.String("niche", niche),
		zap.String("language", lang.String()),
		zap.Duration("cost", time.Since(start)),
	)
	return bundle, nil
}

// build 依次调用十个子生成器
func (s *StrategyService) build(niche string, lang model.Language) (*model.StrategyBundle, error) {
	var (
		bundle model.StrategyBundle
		err    error
	)

	if bundle.TrendingTopics, err = s.TrendingTopics(niche, lang); err != nil {
		return nil, err
	}
	if bundle.Titles, err = s.Titles(niche, lang); err != nil {
		return nil, err
	}
	if bundle.Hooks, err = s.Hooks(niche, lang); err != nil {
		return nil, err
	}
	if bundle.Scripts, err = s.Scripts(niche, lang); err != nil {
		return nil, err
	}
	if bundle.VisualPlan, err = s.VisualPlan(niche, lang); err != nil {
		return nil, err
	}
	if bundle.Tags, err = s.Tags(niche, lang); err != nil {
		return nil, err
	}
	bundle.PostingStrategy = s.PostingStrategy(lang)
	bundle.AutomationTools = s.AutomationTools(lang)
	bundle.Workflow = s.Workflow(lang)
	if bundle.Description, err = s.Description(niche, lang); err != nil {
		return nil, err
	}

	return &bundle, nil
}

// ==================== 子生成器 ====================

// TrendingTopics 热门选题（固定 3 条）
func (s *StrategyService) TrendingTopics(niche string, lang model.Language) ([]model.TrendingTopic, error) {
	titles, err := renderAll(trendingTitleTpls, tplData{Niche: niche, Language: lang})
	if err != nil {
		return nil, err
	}
	reasons := pick(trendingReasons, lang)

	topics := make([]model.TrendingTopic, len(titles))
	for i, title := range titles {
		topics[i] = model.TrendingTopic{
			Title:    title,
			Virality: trendingViralities[i],
			Reason:   reasons[i],
		}
	}
	return topics, nil
}

// Titles SEO 标题（固定 3 条）
func (s *StrategyService) Titles(niche string, lang model.Language) ([]string, error) {
	return renderAll(pick(titleTpls, lang), tplData{Niche: niche, Language: lang})
}

// Hooks 开场钩子（固定 3 条）
func (s *StrategyService) Hooks(niche string, lang model.Language) ([]string, error) {
	return renderAll(pick(hookTpls, lang), tplData{Niche: niche, Language: lang})
}

// Scripts 短视频 / 长视频 / Shorts 三种脚本
func (s *StrategyService) Scripts(niche string, lang model.Language) ([]model.Script, error) {
	tpls := pick(scriptTpls, lang)
	data := tplData{Niche: niche, Language: lang}

	scripts := make([]model.Script, 0, len(tpls))
	for _, st := range tpls {
		content, err := render(st.Content, data)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, model.Script{Type: st.Type, Content: content})
	}
	return scripts, nil
}

// VisualPlan 画面与剪辑方案
func (s *StrategyService) VisualPlan(niche string, lang model.Language) (string, error) {
	return render(pick(visualPlanTpls, lang), tplData{Niche: niche, Language: lang})
}

// Tags YouTube 标签（10 个）与 Shorts 话题（12 个）
func (s *StrategyService) Tags(niche string, lang model.Language) (model.Tags, error) {
	data := tplData{Niche: niche, Language: lang}

	youtube, err := renderAll(youtubeTagTpls, data)
	if err != nil {
		return model.Tags{}, err
	}
	shorts, err := renderAll(shortsTagTpls, data)
	if err != nil {
		return model.Tags{}, err
	}
	return model.Tags{YouTube: youtube, Shorts: shorts}, nil
}

// PostingStrategy 发布节奏
func (s *StrategyService) PostingStrategy(lang model.Language) model.PostingStrategy {
	return pick(postingStrategies, lang)
}

// AutomationTools 自动化工具清单
// 返回副本，调用方修改不会影响模板表
func (s *StrategyService) AutomationTools(lang model.Language) []model.ToolCategory {
	src := pick(automationTools, lang)
	out := make([]model.ToolCategory, len(src))
	for i, c := range src {
		out[i] = model.ToolCategory{Category: c.Category, Tools: slices.Clone(c.Tools)}
	}
	return out
}

// Workflow 全流程自动化工作流
func (s *StrategyService) Workflow(lang model.Language) string {
	return pick(workflows, lang)
}

// Description 视频简介
func (s *StrategyService) Description(niche string, lang model.Language) (string, error) {
	return render(pick(descriptionTpls, lang), tplData{Niche: niche, Language: lang})
}

// ==================== 辅助函数 ====================

// pick 按语言取模板，缺失时回落到英语
func pick[T any](table map[model.Language]T, lang model.Language) T {
	if v, ok := table[lang]; ok {
		return v
	}
	return table[model.LanguageEnglish]
}

func render(t *template.Template, data tplData) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("渲染模板 %s 失败: %w", t.Name(), err)
	}
	return sb.String(), nil
}

func renderAll(tpls []*template.Template, data tplData) ([]string, error) {
	out := make([]string, 0, len(tpls))
	for _, t := range tpls {
		text, err := render(t, data)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}
