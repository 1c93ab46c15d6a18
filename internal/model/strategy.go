package model

// ==================== 内容策略包 ====================

// Virality 传播潜力等级
type Virality string

const (
	ViralityHigh   Virality = "High"
	ViralityMedium Virality = "Medium"
	ViralityLow    Virality = "Low"
)

// TrendingTopic 热门选题
type TrendingTopic struct {
	Title    string   `json:"title"`
	Virality Virality `json:"virality"`
	Reason   string   `json:"reason"`
}

// Script 视频脚本
type Script struct {
	Type    string `json:"type"`    // 脚本类型：短视频 / 长视频 / Shorts
	Content string `json:"content"` // 分镜脚本正文
}

// Tags 标签与话题
type Tags struct {
	YouTube []string `json:"youtube"` // 10 个 YouTube 标签
	Shorts  []string `json:"shorts"`  // 12 个 Shorts/Reels 话题
}

// PostingStrategy 发布节奏
type PostingStrategy struct {
	BestDays   string `json:"bestDays"`
	BestTimes  string `json:"bestTimes"`
	Frequency  string `json:"frequency"`
	ContentMix string `json:"contentMix"`
}

// Tool 自动化工具
type Tool struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// ToolCategory 工具分类
type ToolCategory struct {
	Category string `json:"category"`
	Tools    []Tool `json:"tools"`
}

// StrategyBundle 一次生成返回的完整内容策略
// 十个字段互相独立，不做持久化，只存活于一次请求
type StrategyBundle struct {
	TrendingTopics  []TrendingTopic `json:"trendingTopics"`
	Titles          []string        `json:"titles"`
	Hooks           []string        `json:"hooks"`
	Scripts         []Script        `json:"scripts"`
	VisualPlan      string          `json:"visualPlan"`
	Tags            Tags            `json:"tags"`
	PostingStrategy PostingStrategy `json:"postingStrategy"`
	AutomationTools []ToolCategory  `json:"automationTools"`
	Workflow        string          `json:"workflow"`
	Description     string          `json:"description"`
}
