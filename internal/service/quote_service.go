package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ErrQuoteSuperseded 表示结果返回前已有更新的请求发出，调用方应丢弃本次结果
var ErrQuoteSuperseded = errors.New("quote request superseded")

// Quote 是一条激励语录
// Fallback 为 true 时表示所有外部来源不可用，内容来自本地列表
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category,omitempty"`
	Fallback bool   `json:"fallback"`
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// quoteSource 描述一个外部语录端点及其响应解码方式
type quoteSource struct {
	name   string
	url    string
	decode func(body []byte) (Quote, error)
}

// localQuotes 是离线兜底语录
var localQuotes = []Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle"},
	{Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins"},
	{Text: "In the middle of difficulty lies opportunity.", Author: "Albert Einstein"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
}

func defaultQuoteSources() []quoteSource {
	return []quoteSource{
		{
			name: "zenquotes",
			url:  "https://zenquotes.io/api/random",
			decode: func(body []byte) (Quote, error) {
				var payload []struct {
					Q string `json:"q"`
					A string `json:"a"`
				}
				if err := json.Unmarshal(body, &payload); err != nil {
					return Quote{}, err
				}
				if len(payload) == 0 {
					return Quote{}, errors.New("empty payload")
				}
				return Quote{Text: payload[0].Q, Author: payload[0].A}, nil
			},
		},
		{
			name: "quotable",
			url:  "https://api.quotable.io/random",
			decode: func(body []byte) (Quote, error) {
				var payload struct {
					Content string   `json:"content"`
					Author  string   `json:"author"`
					Tags    []string `json:"tags"`
				}
				if err := json.Unmarshal(body, &payload); err != nil {
					return Quote{}, err
				}
				quote := Quote{Text: payload.Content, Author: payload.Author}
				if len(payload.Tags) > 0 {
					quote.Category = payload.Tags[0]
				}
				return quote, nil
			},
		},
	}
}

// QuoteService 负责获取激励语录
// 按顺序尝试外部来源，一轮尝试后即回退本地列表，不做额外重试；
// 新请求会令在途请求的结果作废
type QuoteService struct {
	http       httpDoer
	sources    []quoteSource
	generation uint64

	mu      sync.Mutex
	current Quote
}

// NewQuoteService 构造 QuoteService
func NewQuoteService() *QuoteService {
	return &QuoteService{
		http:    &http.Client{Timeout: 10 * time.Second},
		sources: defaultQuoteSources(),
		current: randomLocalQuote(),
	}
}

// SetHTTPClient 替换底层 HTTP 客户端，主要用于测试
func (s *QuoteService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.http = client
}

// Fetch 获取一条新语录
// 任一来源成功即停止；全部失败时静默回退本地列表并标记 Fallback
func (s *QuoteService) Fetch(ctx context.Context) (Quote, error) {
	gen := atomic.AddUint64(&s.generation, 1)

	for _, source := range s.sources {
		quote, err := s.fetchOne(ctx, source)
		if err != nil {
			if ctx.Err() != nil {
				return Quote{}, ctx.Err()
			}
			log.Printf("quote source %s unavailable: %v", source.name, err)
			continue
		}
		return s.apply(gen, quote)
	}

	fallback := randomLocalQuote()
	return s.apply(gen, fallback)
}

// Current 返回最近一次成功获取（或兜底）的语录
func (s *QuoteService) Current() Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// MotivationalMessage 根据快照生成鼓励文案，没有命中规则时退回普通语录
func MotivationalMessage(snap *Snapshot) string {
	if snap != nil {
		if snap.Tasks.CompletionRate >= 0.8 {
			return "🎉 Amazing job on your task completion rate! You're crushing it!"
		}
		if snap.Study.Streak >= 5 {
			return fmt.Sprintf("🔥 %d day study streak! Your consistency is inspiring!", snap.Study.Streak)
		}
		if snap.Productivity.Score >= 85 {
			return "⚡ Your productivity is through the roof! Keep up the excellent work!"
		}
	}

	quote := randomLocalQuote()
	return fmt.Sprintf("%s - %s", quote.Text, quote.Author)
}

func (s *QuoteService) apply(gen uint64, quote Quote) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 生成号比较与写入必须在同一临界区内，否则过期结果可能覆盖新值
	if atomic.LoadUint64(&s.generation) != gen {
		return Quote{}, ErrQuoteSuperseded
	}

	s.current = quote
	return quote, nil
}

func (s *QuoteService) fetchOne(ctx context.Context, source quoteSource) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.url, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "dayboard/1.0")

	client := s.http
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Quote{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Quote{}, fmt.Errorf("read body: %w", err)
	}

	quote, err := source.decode(body)
	if err != nil {
		return Quote{}, fmt.Errorf("decode body: %w", err)
	}

	quote.Text = strings.TrimSpace(quote.Text)
	quote.Author = strings.TrimSpace(quote.Author)
	if quote.Text == "" {
		return Quote{}, errors.New("empty quote text")
	}

	return quote, nil
}

func randomLocalQuote() Quote {
	quote := localQuotes[rand.Intn(len(localQuotes))]
	quote.Fallback = true
	return quote
}
