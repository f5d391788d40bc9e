package llm

import (
	"Kiosque/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

const summarizePrompt = `你是新闻编辑助手。阅读用户提供的文章正文，输出 JSON：
{"summary": "不超过120字的中文摘要", "tags": ["3到5个标签"]}
只输出 JSON，不要输出其他内容。`

// ArticleAssist 摘要与标签生成结果
type ArticleAssist struct {
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

// SummarizeArticle 为文章生成摘要与标签，客户端未启用时返回错误由调用方降级
func SummarizeArticle(ctx context.Context, title, text string) (*ArticleAssist, error) {
	if llmClient == nil {
		return nil, errors.New("LLM 客户端未初始化")
	}

	if len(text) > 6000 {
		text = text[:6000]
	}

	resp, err := fetchModel(ctx, summarizePrompt, "标题："+title+"\n正文："+text, 0.3)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("模型未返回内容")
	}

	content := resp.Choices[0].Content
	content = strings.TrimPrefix(strings.TrimSpace(content), "```json")
	content = strings.Trim(content, "` \n")

	var assist ArticleAssist
	if err := json.Unmarshal([]byte(content), &assist); err != nil {
		log.WarnContext(ctx, "解析模型输出失败", "content", content, "err", err)
		return nil, err
	}
	return &assist, nil
}

func fetchModel(ctx context.Context, systemPrompt, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	log.Info("正在请求AI大模型")
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(temp),
	)
}
