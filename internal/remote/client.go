// Package remote implements the PackVault server collaborators: the
// artefact-fetch service and the change-proposal check/submit services,
// plus a git-backed source for packages that live in a plain repository.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/packvault/packvault/internal/engine"
	"github.com/packvault/packvault/internal/reconcile"
)

// Client talks to the PackVault HTTP API
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	log     zerolog.Logger
}

// NewClient creates an API client. The token may be empty for
// unauthenticated read access.
func NewClient(baseURL, token string, log zerolog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		token:   token,
		log:     log,
	}
}

// FetchArtefacts returns the expected file set for the requested
// packages. Implements engine.Fetcher.
func (c *Client) FetchArtefacts(ctx context.Context, req engine.FetchRequest) (*engine.FetchResult, error) {
	var result engine.FetchResult
	if err := c.post(ctx, "/api/v1/artefacts/pull", req, &result); err != nil {
		return nil, err
	}
	c.log.Debug().Int("files", len(result.Files)).Msg("pulled artefact descriptors")
	return &result, nil
}

// CheckProposals asks whether each proposal already exists in a space.
// Implements reconcile.Checker.
func (c *Client) CheckProposals(ctx context.Context, spaceID string, proposals []reconcile.Proposal) ([]reconcile.CheckResult, error) {
	path := fmt.Sprintf("/api/v1/spaces/%s/change-proposals/check", spaceID)
	body := map[string]interface{}{"proposals": proposals}

	var result struct {
		Results []reconcile.CheckResult `json:"results"`
	}
	if err := c.post(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// SubmitProposals creates a batch of proposals in a space. Implements
// reconcile.Submitter.
func (c *Client) SubmitProposals(ctx context.Context, spaceID string, proposals []reconcile.Proposal) (*reconcile.SubmitResponse, error) {
	path := fmt.Sprintf("/api/v1/spaces/%s/change-proposals/batch", spaceID)
	body := map[string]interface{}{"proposals": proposals}

	c.log.Debug().Str("space", spaceID).Int("proposals", len(proposals)).Msg("submitting batch")

	var result reconcile.SubmitResponse
	if err := c.post(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("failed to call %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
