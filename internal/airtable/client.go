package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"genpurge/internal/app"

	"github.com/rs/zerolog/log"
)

type Client struct {
	httpClient *http.Client
	baseUrl    string
	baseId     string
	table      string
	apiKey     string
	pageSize   int
}

func NewClient(cfg app.Config) *Client {
	pageSize := cfg.MaxRecords
	if pageSize <= 0 {
		pageSize = 1000
	}

	return &Client{
		httpClient: &http.Client{Timeout: time.Second * 30},
		baseUrl:    cfg.ApiUrl,
		baseId:     cfg.BaseId,
		table:      cfg.Table,
		apiKey:     cfg.ApiKey,
		pageSize:   pageSize,
	}
}

// ListRecordsWithMedia fetches every record whose media field is non-empty,
// up to one page. Only a single page is requested; a full page is logged as
// possible truncation since the server does not flag it.
func (c *Client) ListRecordsWithMedia(ctx context.Context, field string) ([]Record, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf("NOT({%s}='')", field))
	query.Add("fields[]", field)
	query.Add("fields[]", fieldPrompt)
	query.Set("maxRecords", strconv.Itoa(c.pageSize))

	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.baseUrl, c.baseId, c.table, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	body, status, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &QueryError{Status: status, Body: string(body)}
	}

	var payload recordList
	err = json.Unmarshal(body, &payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record query response: %w", err)
	}

	if len(payload.Records) == c.pageSize {
		log.Warn().Msgf(
			"Query for field %s returned a full page of %d records, later matches may have been omitted",
			field, c.pageSize,
		)
	}

	return payload.Records, nil
}

// ClearField empties the given media field on one record. The record itself
// is never deleted.
func (c *Client) ClearField(ctx context.Context, recordId string, field string) error {
	payload, err := json.Marshal(map[string]any{
		"fields": map[string]any{field: []any{}},
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/%s", c.baseUrl, c.baseId, c.table, recordId)

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	body, status, err := c.do(req)
	if err != nil {
		return err
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &MutationError{RecordId: recordId, Status: status, Body: string(body)}
	}

	return nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}
