// Package dadata looks up agent (counterparty) data in the DaData company
// registry by INN. See https://dadata.ru/api/find-party/ for the API.
package dadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	agentapp "github.com/mshagov/ecooffer-api/internal/application/agent"
	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
)

var _ agentapp.Registry = (*Client)(nil)

const (
	defaultBaseURL = "https://suggestions.dadata.ru/suggestions/api/4_1/rs"
	requestTimeout = 5 * time.Second
)

// Client implements the agent.Registry port against DaData. Uses net/http
// from the standard library; no SDK required.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the registry client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithBaseURL builds a client against a non-default endpoint (tests).
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// findPartyResponse is the shape of the DaData findById/party answer, reduced
// to the fields the Agent model needs.
type findPartyResponse struct {
	Suggestions []struct {
		Data struct {
			INN  string `json:"inn"`
			Name *struct {
				Full         string `json:"full"`
				ShortWithOPF string `json:"short_with_opf"`
			} `json:"name"`
			Management *struct {
				Name string `json:"name"`
			} `json:"management"`
		} `json:"data"`
	} `json:"suggestions"`
}

// FindByINN queries the registry for the company with the given INN.
// A non-200 status, an empty suggestion list, or absent required fields all
// map to domain.ErrAgentNotFound; this endpoint never reports a different
// error class for bad upstream data.
func (c *Client) FindByINN(ctx context.Context, inn string) (*entity.Agent, error) {
	payload, err := json.Marshal(map[string]string{"query": inn})
	if err != nil {
		return nil, fmt.Errorf("agents: marshal query: %w", err)
	}

	url := c.baseURL + "/findById/party"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("agents: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agents: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrAgentNotFound
	}

	var parsed findPartyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, domain.ErrAgentNotFound
	}
	if len(parsed.Suggestions) == 0 {
		return nil, domain.ErrAgentNotFound
	}

	data := parsed.Suggestions[0].Data
	if data.Name == nil || data.Name.Full == "" || data.Name.ShortWithOPF == "" || data.INN == "" {
		return nil, domain.ErrAgentNotFound
	}

	agent := &entity.Agent{
		FullName:  data.Name.Full,
		ShortName: data.Name.ShortWithOPF,
		INN:       data.INN,
	}
	if data.Management != nil && data.Management.Name != "" {
		agent.Management = &data.Management.Name
	}
	return agent, nil
}
