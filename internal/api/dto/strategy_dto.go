package dto

// GenerateStrategyReq 生成内容策略请求
// niche 不在绑定阶段校验，空值由 Service 层返回 ErrMissingNiche
type GenerateStrategyReq struct {
	Niche    string `json:"niche" example:"Cooking"`
	Language string `json:"language" example:"english" enums:"hinglish,hindi,english"`
}

// ErrorResp 错误响应
type ErrorResp struct {
	Error string `json:"error" example:"Niche required hai!"`
}

// 对外错误文案
const (
	MsgNicheRequired = "Niche required hai!"
	MsgInternalError = "Something went wrong"
)
