package grist

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/reedery/AirGrist/log"
	"github.com/reedery/AirGrist/utils"
)

// Client talks to the REST API of one grist server. It holds no mutable
// state, so a single Client can be shared between goroutines.
type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

type ClientOption func(c *Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(apiURL string, apiKey string, options ...ClientOption) *Client {
	c := &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		client: utils.NewDefaultHttpClient(),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

func (c *Client) CreateDocument(workspaceID int, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/workspaces/%d/docs", c.apiURL, workspaceID)
	_, respBody, err := utils.HttpRequestWithToken(http.MethodPost, endpoint, createDocumentRequest{Name: name}, c.client, c.apiKey)
	if err != nil {
		return "", fmt.Errorf("failed to create document %s: %w", name, err)
	}

	var documentID string
	if err := json.Unmarshal(respBody, &documentID); err != nil {
		return "", fmt.Errorf("failed to decode id of document %s: %w", name, err)
	}

	log.Logger().Debugf("document %s created with id %s", name, documentID)
	return documentID, nil
}

// AddTablesToDocument returns the table ids assigned by grist, in the order
// of the response. Grist may rename a table, so the ids can differ from
// the requested ones.
func (c *Client) AddTablesToDocument(documentID string, tables []Table) ([]string, error) {
	payload := addTablesRequest{Tables: make([]tablePayload, len(tables))}
	for index, table := range tables {
		if err := table.Validate(); err != nil {
			return nil, fmt.Errorf("failed to add tables to document %s: %w", documentID, err)
		}
		payload.Tables[index] = toTablePayload(table)
	}

	endpoint := fmt.Sprintf("%s/api/docs/%s/tables", c.apiURL, url.PathEscape(documentID))
	_, respBody, err := utils.HttpRequestWithToken(http.MethodPost, endpoint, payload, c.client, c.apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to add tables to document %s: %w", documentID, err)
	}

	var resp addTablesResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode tables of document %s: %w", documentID, err)
	}

	tableIDs := make([]string, len(resp.Tables))
	for index, table := range resp.Tables {
		tableIDs[index] = table.ID
	}
	return tableIDs, nil
}

func (c *Client) AddRecordsToTable(documentID string, tableID string, records []Record) error {
	endpoint := fmt.Sprintf("%s/api/docs/%s/tables/%s/records", c.apiURL, url.PathEscape(documentID), url.PathEscape(tableID))
	payload := addRecordsRequest{Records: toRecordPayloads(records)}
	if _, _, err := utils.HttpRequestWithToken(http.MethodPost, endpoint, payload, c.client, c.apiKey); err != nil {
		return fmt.Errorf("failed to add %d records to table %s: %w", len(records), tableID, err)
	}
	return nil
}
