package fetch

import (
	"Kiosque/internal/api/config"
	"context"
	"crypto/tls"
	log "log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/go-resty/resty/v2"
	"github.com/go-shiori/go-readability"
	"github.com/pkg/errors"
)

// PageArticle 从外部网页提取的正文
type PageArticle struct {
	Title    string
	Content  string // 提取后的正文 HTML
	Text     string // 纯文本，供摘要使用
	Excerpt  string
	ImageURL string
}

// Fetcher 抓取外部网页并提取正文，静态请求优先，
// 渲染不全时按配置回退到无头浏览器
type Fetcher interface {
	FetchArticle(ctx context.Context, pageURL string) (*PageArticle, error)
}

type FetcherImpl struct {
	httpClient *resty.Client

	browserOnce sync.Once
	browserCtx  context.Context
}

func NewFetcher(cfg config.ImporterConfig) Fetcher {
	ua := cfg.UserAgent
	if ua == "" {
		ua = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}).
		SetHeader("User-Agent", ua)

	return &FetcherImpl{httpClient: client}
}

func (s *FetcherImpl) FetchArticle(ctx context.Context, pageURL string) (*PageArticle, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, errors.Wrap(err, "解析导入链接失败")
	}

	resp, err := s.httpClient.R().SetContext(ctx).Get(pageURL)
	html := ""
	if err == nil {
		html = resp.String()
	}

	// 静态抓取结果过短多半是前端渲染页，回退浏览器
	lowHtml := strings.ToLower(html)
	if config.Cfg.Importer.EnableBrowser && (strings.Contains(lowHtml, "loading") || len(html) < 4000) {
		if renderHtml, renderErr := s.renderPage(ctx, pageURL); renderErr == nil {
			html = renderHtml
		} else {
			log.WarnContext(ctx, "browser render fallback failed", "url", pageURL, "err", renderErr)
		}
	}
	if html == "" {
		return nil, errors.Wrap(err, "抓取网页失败")
	}

	article, err := readability.FromReader(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, errors.Wrap(err, "提取正文失败")
	}

	text := regexp.MustCompile(`\s+`).ReplaceAllString(article.TextContent, " ")

	return &PageArticle{
		Title:    article.Title,
		Content:  article.Content,
		Text:     strings.TrimSpace(text),
		Excerpt:  article.Excerpt,
		ImageURL: extractCoverImage(html, parsedURL),
	}, nil
}

func (s *FetcherImpl) renderPage(ctx context.Context, pageURL string) (string, error) {
	s.browserOnce.Do(func() {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("blink-settings", "imagesEnabled=false"),
		)
		allocCtx, _ := chromedp.NewExecAllocator(context.Background(), opts...)
		s.browserCtx, _ = chromedp.NewContext(allocCtx)
	})

	tabCtx, cancel := chromedp.NewContext(s.browserCtx)
	defer cancel()
	tabCtx, timeoutCancel := context.WithTimeout(tabCtx, 20*time.Second)
	defer timeoutCancel()

	var renderHtml string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(`body`),
		chromedp.OuterHTML("html", &renderHtml),
	)
	if err != nil {
		return "", err
	}
	return renderHtml, nil
}

// extractCoverImage 取 og:image，相对路径补全为绝对地址
func extractCoverImage(html string, base *url.URL) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	if src == "" {
		src, _ = doc.Find("article img, .content img").First().Attr("src")
	}
	if src == "" {
		return ""
	}
	srcURL, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return base.ResolveReference(srcURL).String()
}
