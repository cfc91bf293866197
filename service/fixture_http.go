package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
)

// maxFixtureBytes bounds how much of a fixture response is read
const maxFixtureBytes = 16 << 20

// HTTPFixtureSource fetches the fixtures with plain GET requests against a static base URL
type HTTPFixtureSource struct {
	baseURL    string
	listFile   string
	detailFile string
	httpClient *http.Client
}

func NewHTTPFixtureSource(cfg *config.FixturesConfig) *HTTPFixtureSource {
	return &HTTPFixtureSource{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		listFile:   cfg.ListFile,
		detailFile: cfg.DetailFile,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (s *HTTPFixtureSource) Contracts(ctx context.Context) ([]model.Contract, error) {
	body, err := s.get(ctx, s.listFile)
	if err != nil {
		return nil, err
	}
	return decodeContracts(body)
}

func (s *HTTPFixtureSource) Details(ctx context.Context) (map[string]model.ContractDetail, error) {
	body, err := s.get(ctx, s.detailFile)
	if err != nil {
		return nil, err
	}
	return decodeDetails(body)
}

func (s *HTTPFixtureSource) get(ctx context.Context, name string) ([]byte, error) {
	url := s.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFixtureBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
