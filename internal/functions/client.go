package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
)

const processDocumentPath = "/process-job-document"

// Client invokes deployed functions over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

// ProcessDocument asks the document-processing function to extract job
// posting fields from an uploaded file.
func (c *Client) ProcessDocument(ctx context.Context, filePath string) (*models.ProcessedDocument, error) {
	var doc models.ProcessedDocument
	if err := c.invoke(ctx, processDocumentPath, models.ProcessDocumentRequest{FilePath: filePath}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) invoke(ctx context.Context, name string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+name, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("apikey", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to invoke %s: %w", strings.TrimPrefix(name, "/"), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug("function invoked",
		zap.String("function", name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		var fnErr models.FunctionErrorResponse
		if json.Unmarshal(raw, &fnErr) == nil && fnErr.Error != "" {
			return fmt.Errorf("%s returned %d: %s", strings.TrimPrefix(name, "/"), resp.StatusCode, fnErr.Error)
		}
		return fmt.Errorf("%s returned %d: %s", strings.TrimPrefix(name, "/"), resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
