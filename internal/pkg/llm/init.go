package llm

import (
	"Kiosque/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"
)

var llmClient llms.Model

// TextSem 限制对模型服务的并发请求数
var TextSem = semaphore.NewWeighted(4)

// InitLLM 初始化大模型客户端，未配置 ApiKey 时跳过，相关能力自动降级
func InitLLM() error {
	cfg := config.Cfg.LLM

	if cfg.ApiKey == "" {
		log.Info("LLM 未配置，AI 辅助能力关闭")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm
	return nil
}

// Enabled llm 客户端是否可用
func Enabled() bool {
	return llmClient != nil
}
