package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/pkg/logger"
)

// HTTPClient wraps http.Client with a request timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitSessions posts the generated sessions concurrently.
func submitSessions(ctx context.Context, config *Config, sessions []model.Session, stats *Stats) error {
	log := logger.Get()
	log.Info(ctx, "submitting sessions",
		logger.Int("sessions", len(sessions)),
		logger.Int("workers", config.Workers),
	)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/sessions"

	var (
		successful int64
		duplicate  int64
		failed     int64
	)

	work := make(chan model.Session)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range work {
				resp, err := client.Post(ctx, url, s)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Warn(ctx, "submit failed", logger.String("session_id", s.SessionID), logger.Error(err))
					}
					continue
				}

				body, err := readResponseBody(resp)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}

				var ack AckResponse
				if err := json.Unmarshal(body, &ack); err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}

				switch {
				case ack.Duplicate:
					atomic.AddInt64(&duplicate, 1)
				case resp.StatusCode == http.StatusAccepted:
					atomic.AddInt64(&successful, 1)
				default:
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Warn(ctx, "submit rejected",
							logger.String("session_id", s.SessionID),
							logger.Int("status", resp.StatusCode))
					}
				}
			}
		}()
	}

	for _, s := range sessions {
		select {
		case work <- s:
		case <-ctx.Done():
			close(work)
			wg.Wait()
			return ctx.Err()
		}
	}
	close(work)
	wg.Wait()

	stats.SessionsSubmitted = len(sessions)
	stats.SessionsSuccessful = int(successful)
	stats.SessionsDuplicate = int(duplicate)
	stats.SessionsFailed = int(failed)

	log.Info(ctx, "submission finished",
		logger.Int("successful", stats.SessionsSuccessful),
		logger.Int("duplicate", stats.SessionsDuplicate),
		logger.Int("failed", stats.SessionsFailed),
	)
	return nil
}

// fetchReports retrieves stored reports for a child.
func fetchReports(ctx context.Context, client *HTTPClient, baseURL, childID string) (*ReportsResponse, error) {
	resp, err := client.Get(ctx, baseURL+"/reports/"+childID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read reports response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reports request returned status %d", resp.StatusCode)
	}

	var out ReportsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reports response: %w", err)
	}
	return &out, nil
}

// fetchDomains retrieves cross-domain scores for a child.
func fetchDomains(ctx context.Context, client *HTTPClient, baseURL, childID string) (*DomainsResponse, error) {
	resp, err := client.Get(ctx, baseURL+"/domains/"+childID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch domains: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read domains response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("domains request returned status %d", resp.StatusCode)
	}

	var out DomainsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode domains response: %w", err)
	}
	return &out, nil
}
