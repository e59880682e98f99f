package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tutoria_backend/internal/config"
	"tutoria_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// Gif is one Tenor result trimmed to what the chat needs.
type Gif struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	PreviewURL  string `json:"previewUrl"`
	Description string `json:"description"`
}

// GifQuota reports how much of the daily allowance remains.
type GifQuota struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

type GifService struct {
	Cfg    *config.TenorConfig
	Redis  *redis.Client
	Client *http.Client
}

func NewGifService(cfg *config.TenorConfig, redisClient *redis.Client) *GifService {
	return &GifService{
		Cfg:    cfg,
		Redis:  redisClient,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func quotaKey(userID uint) string {
	return fmt.Sprintf("gif_usage:%d:%s", userID, time.Now().Format("2006-01-02"))
}

// Quota reads today's usage without consuming it.
func (s *GifService) Quota(ctx context.Context, userID uint) (*GifQuota, error) {
	used, err := s.Redis.Get(ctx, quotaKey(userID)).Int()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	remaining := s.Cfg.DailyLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return &GifQuota{Used: used, Limit: s.Cfg.DailyLimit, Remaining: remaining}, nil
}

// consume increments today's counter and enforces the daily limit. The key
// expires at the end of the day so the allowance resets at midnight.
func (s *GifService) consume(ctx context.Context, userID uint) error {
	key := quotaKey(userID)
	used, err := s.Redis.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if used == 1 {
		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		s.Redis.ExpireAt(ctx, key, midnight)
	}
	if int(used) > s.Cfg.DailyLimit {
		// Roll back so a later day shows the true count.
		s.Redis.Decr(ctx, key)
		return util.ErrDailyGifLimit
	}
	return nil
}

// blockedTerms filters out content that has no place in a classroom.
var blockedTerms = []string{
	"sex", "sexy", "violence", "violent", "fight", "blood", "kill", "death",
	"nude", "naked", "adult", "porn", "explicit", "nsfw",
	"drug", "alcohol", "beer", "wine", "smoking", "cigarette",
}

var subjectSearchTerms = map[string]string{
	"Matemática": "mathematics education learning",
	"Física":     "physics science education learning",
	"Química":    "chemistry science education learning",
	"Biologia":   "biology science education learning",
}

func sanitizeQuery(query, subject string) string {
	lowered := strings.ToLower(query)
	for _, term := range blockedTerms {
		lowered = strings.ReplaceAll(lowered, term, "")
	}

	subjectTerms, ok := subjectSearchTerms[subject]
	if !ok {
		subjectTerms = "education learning"
	}
	return strings.TrimSpace(lowered + " " + subjectTerms + " educational animated")
}

func isSafeContent(title, description string, tags []string) bool {
	content := strings.ToLower(title + " " + description + " " + strings.Join(tags, " "))
	for _, term := range blockedTerms {
		if strings.Contains(content, term) {
			return false
		}
	}
	return true
}

type tenorResponse struct {
	Results []struct {
		ID                 string   `json:"id"`
		Title              string   `json:"title"`
		ContentDescription string   `json:"content_description"`
		Tags               []string `json:"tags"`
		MediaFormats       map[string]struct {
			URL string `json:"url"`
		} `json:"media_formats"`
	} `json:"results"`
}

// Search finds classroom-safe GIFs for a query, consuming one unit of the
// user's daily allowance.
func (s *GifService) Search(ctx context.Context, userID uint, query, subject string, limit int) ([]Gif, *GifQuota, error) {
	if limit < 1 || limit > 10 {
		limit = 3
	}

	if err := s.consume(ctx, userID); err != nil {
		return nil, nil, err
	}

	params := url.Values{}
	params.Set("key", s.Cfg.APIKey)
	params.Set("q", sanitizeQuery(query, subject))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("media_filter", "gif,tinygif")
	params.Set("contentfilter", "high")
	params.Set("locale", "pt_BR")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Cfg.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("tenor API error: %s", resp.Status)
	}

	var body tenorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, nil, err
	}

	gifs := make([]Gif, 0, limit)
	for _, r := range body.Results {
		if !isSafeContent(r.Title, r.ContentDescription, r.Tags) {
			continue
		}
		gif := Gif{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.ContentDescription,
		}
		if f, ok := r.MediaFormats["gif"]; ok {
			gif.URL = f.URL
		}
		if f, ok := r.MediaFormats["tinygif"]; ok {
			gif.PreviewURL = f.URL
		}
		if gif.URL == "" {
			continue
		}
		if gif.Title == "" {
			gif.Title = "Educational GIF"
		}
		gifs = append(gifs, gif)
		if len(gifs) == limit {
			break
		}
	}

	quota, err := s.Quota(ctx, userID)
	if err != nil {
		return gifs, nil, nil
	}
	return gifs, quota, nil
}
