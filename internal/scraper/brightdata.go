package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"creatorpay-be-svc/internal/config"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// Platform identifiers for supported video hosts
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
)

// datasetConfig holds the BrightData dataset parameters for one platform
type datasetConfig struct {
	DatasetID  string
	InputKey   string
	ExtraQuery string
}

// Dataset IDs per platform; TikTok's discover scraper expects an uppercase
// URL key
var datasets = map[string]datasetConfig{
	PlatformInstagram: {DatasetID: "gd_lyclm20il4r5helnj", InputKey: "url"},
	PlatformTikTok:    {DatasetID: "gd_lu702nij2f790tmv9h", InputKey: "URL", ExtraQuery: "&type=discover_new&discover_by=url"},
	PlatformYouTube:   {DatasetID: "gd_lk56epmy2i5g7lzu0k", InputKey: "url"},
}

// VideoInput identifies one video to scrape
type VideoInput struct {
	ID  uuid.UUID
	URL string
}

// VideoMetrics holds the scraped engagement counters for one video
type VideoMetrics struct {
	Platform string
	Views    int64
	Likes    int64
	Comments int64
}

// Client defines the interface for fetching video engagement metrics
type Client interface {
	ScrapeVideos(ctx context.Context, videos []VideoInput) (map[uuid.UUID]VideoMetrics, error)
}

// brightDataClient implements Client against the BrightData datasets API
type brightDataClient struct {
	config     *config.ScraperConfig
	httpClient *http.Client
	logger     *logger.Logger
}

// NewBrightDataClient creates a new instance of Client
func NewBrightDataClient(cfg *config.ScraperConfig, logger *logger.Logger) Client {
	return &brightDataClient{
		config:     cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// DetectPlatform classifies a video URL into a supported platform, or returns
// an empty string when the URL is not scrapeable
func DetectPlatform(videoURL string) string {
	u := strings.ToLower(videoURL)
	switch {
	case strings.Contains(u, "instagram.com/reel"):
		return PlatformInstagram
	case strings.Contains(u, "tiktok.com"):
		return PlatformTikTok
	case strings.Contains(u, "youtube.com/shorts"), strings.Contains(u, "youtube.com/watch"):
		return PlatformYouTube
	default:
		return ""
	}
}

// ScrapeVideos triggers one BrightData collection per platform, waits for the
// snapshots and returns the metrics keyed by video ID. A platform that fails
// is logged and skipped so the other platforms still return data.
func (c *brightDataClient) ScrapeVideos(ctx context.Context, videos []VideoInput) (map[uuid.UUID]VideoMetrics, error) {
	if c.config.APIKey == "" {
		return nil, fmt.Errorf("scraper api key is not configured")
	}

	type bucketEntry struct {
		videoID uuid.UUID
		url     string
	}
	buckets := make(map[string][]bucketEntry)

	for _, video := range videos {
		if video.URL == "" {
			continue
		}
		platform := DetectPlatform(video.URL)
		if platform == "" {
			c.logger.WithField("url", video.URL).Warn("Skipping unsupported video URL")
			continue
		}
		buckets[platform] = append(buckets[platform], bucketEntry{videoID: video.ID, url: video.URL})
	}

	results := make(map[uuid.UUID]VideoMetrics)

	for platform, entries := range buckets {
		ds := datasets[platform]

		records := make([]map[string]string, 0, len(entries))
		for _, entry := range entries {
			record := map[string]string{ds.InputKey: entry.url}
			if platform == PlatformYouTube {
				record["country"] = ""
				record["transcription_language"] = ""
			}
			records = append(records, record)
		}

		snapshotID, err := c.triggerCollection(ctx, ds, records)
		if err != nil {
			c.logger.WithError(err).WithField("platform", platform).Error("Failed to trigger collection")
			continue
		}

		if err := c.waitForSnapshot(ctx, snapshotID); err != nil {
			c.logger.WithError(err).WithFields(map[string]interface{}{
				"platform":    platform,
				"snapshot_id": snapshotID,
			}).Error("Snapshot did not become ready")
			continue
		}

		rawRecords, err := c.downloadSnapshot(ctx, snapshotID)
		if err != nil {
			c.logger.WithError(err).WithField("snapshot_id", snapshotID).Error("Failed to download snapshot")
			continue
		}

		// Snapshot records are matched to inputs by position
		for i := 0; i < len(rawRecords) && i < len(entries); i++ {
			results[entries[i].videoID] = normalizeMetrics(rawRecords[i], platform)
		}
	}

	return results, nil
}

// triggerCollection starts a dataset collection and returns its snapshot ID
func (c *brightDataClient) triggerCollection(ctx context.Context, ds datasetConfig, records []map[string]string) (string, error) {
	endpoint := fmt.Sprintf("%s/trigger?dataset_id=%s&include_errors=true%s",
		c.config.BaseURL, url.QueryEscape(ds.DatasetID), ds.ExtraQuery)

	bodyJSON, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal trigger body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(bodyJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create trigger request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("trigger request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("trigger failed (%d): %s", resp.StatusCode, string(respBody))
	}

	var triggerResp struct {
		SnapshotID string `json:"snapshot_id"`
		ID         string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &triggerResp); err != nil {
		return "", fmt.Errorf("failed to decode trigger response: %w", err)
	}

	snapshotID := triggerResp.SnapshotID
	if snapshotID == "" {
		snapshotID = triggerResp.ID
	}
	if snapshotID == "" {
		return "", fmt.Errorf("no snapshot_id in trigger response: %s", string(respBody))
	}

	return snapshotID, nil
}

// waitForSnapshot polls the progress endpoint until the snapshot is ready,
// fails, or the attempt budget runs out
func (c *brightDataClient) waitForSnapshot(ctx context.Context, snapshotID string) error {
	endpoint := fmt.Sprintf("%s/progress/%s", c.config.BaseURL, url.PathEscape(snapshotID))

	for attempt := 0; attempt < c.config.PollMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(c.config.PollInterval) * time.Second):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create progress request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("progress request failed: %w", err)
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("progress check failed (%d): %s", resp.StatusCode, string(respBody))
		}

		var progress struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(respBody, &progress); err != nil {
			return fmt.Errorf("failed to decode progress response: %w", err)
		}

		switch strings.ToLower(progress.Status) {
		case "ready":
			return nil
		case "failed", "canceled":
			return fmt.Errorf("snapshot %s ended with status %s", snapshotID, progress.Status)
		}
	}

	return fmt.Errorf("timeout waiting for snapshot %s", snapshotID)
}

// downloadSnapshot fetches the finished snapshot as a JSON array
func (c *brightDataClient) downloadSnapshot(ctx context.Context, snapshotID string) ([]map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/snapshot/%s?format=json", c.config.BaseURL, url.PathEscape(snapshotID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot download failed (%d): %s", resp.StatusCode, string(respBody))
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(respBody, &records); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return records, nil
}

// normalizeMetrics extracts views, likes and comments from a raw snapshot
// record using the platform's field names
func normalizeMetrics(record map[string]interface{}, platform string) VideoMetrics {
	metrics := VideoMetrics{Platform: platform}

	switch platform {
	case PlatformInstagram:
		metrics.Views = firstCount(record, "play_count", "view_count", "views")
		metrics.Likes = firstCount(record, "like_count", "likes")
		metrics.Comments = firstCount(record, "comment_count", "comments")
	case PlatformTikTok:
		metrics.Views = firstCount(record, "playCount", "play_count", "views")
		metrics.Likes = firstCount(record, "diggCount", "like_count", "likes")
		metrics.Comments = firstCount(record, "commentCount", "comment_count", "comments")
	case PlatformYouTube:
		metrics.Views = firstCount(record, "view_count", "viewCount", "views")
		metrics.Likes = firstCount(record, "like_count", "likeCount", "likes")
		metrics.Comments = firstCount(record, "comment_count", "commentCount", "comments")
	}

	return metrics
}

// firstCount returns the first present numeric field, coercing JSON numbers
// and numeric strings
func firstCount(record map[string]interface{}, keys ...string) int64 {
	for _, key := range keys {
		value, ok := record[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			return int64(v)
		case int64:
			return v
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return n
			}
		}
	}
	return 0
}
