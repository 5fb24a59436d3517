package airtable

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/reedery/AirGrist/log"
	"github.com/reedery/AirGrist/utils"
)

const DefaultBaseURL = "https://api.airtable.com/v0"

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type ClientOption func(c *Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(apiKey string, options ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  utils.NewDefaultHttpClient(),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

func (c *Client) FetchSchema(baseID string) ([]Table, error) {
	endpoint := fmt.Sprintf("%s/meta/bases/%s/tables", c.baseURL, url.PathEscape(baseID))
	_, respBody, err := utils.HttpRequestWithToken(http.MethodGet, endpoint, nil, c.client, c.apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schema of base %s: %w", baseID, err)
	}

	var payload schemaResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode schema of base %s: %w", baseID, err)
	}
	return payload.Tables, nil
}

// ListRecords reads the first page of records of a table.
func (c *Client) ListRecords(baseID string, tableID string) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(baseID), url.PathEscape(tableID))
	_, respBody, err := utils.HttpRequestWithToken(http.MethodGet, endpoint, nil, c.client, c.apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list records of table %s: %w", tableID, err)
	}

	var payload recordsResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode records of table %s: %w", tableID, err)
	}

	if payload.Offset != "" {
		log.Logger().Warnf("table %s has more than %d records, only the first page is imported", tableID, len(payload.Records))
	}
	return payload.Records, nil
}
