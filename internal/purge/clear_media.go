package purge

import (
	"context"
	"fmt"
	"strings"

	"genpurge/internal/airtable"

	"github.com/rs/zerolog/log"
)

const promptLogLength = 50

// RecordClient is the slice of the remote API the purge actions need.
type RecordClient interface {
	ListRecordsWithMedia(ctx context.Context, field string) ([]airtable.Record, error)
	ClearField(ctx context.Context, recordId string, field string) error
}

type clearMediaAction struct {
	client  RecordClient
	field   string
	limiter RateLimiter

	// fetched during Summary so Execute mutates exactly what was counted
	records []airtable.Record
}

func (a *clearMediaAction) Name() string {
	return fmt.Sprintf("clear %s", strings.ToLower(a.field))
}

func (a *clearMediaAction) Summary(ctx context.Context) (Summary, error) {
	records, err := a.client.ListRecordsWithMedia(ctx, a.field)
	if err != nil {
		log.Err(err).Msgf("Failed to query records with %s", strings.ToLower(a.field))
		return Summary{}, err
	}

	a.records = records

	total := 0
	for _, record := range records {
		total += record.MediaCount(a.field)
	}

	return Summary{
		Description: fmt.Sprintf("%d %s across %d records", total, strings.ToLower(a.field), len(records)),
		Affected:    total,
	}, nil
}

func (a *clearMediaAction) Execute(ctx context.Context) (Tally, error) {
	var tally Tally

	for _, record := range a.records {
		err := a.client.ClearField(ctx, record.Id, a.field)
		if err != nil {
			tally.Failed++
			log.Err(err).Msgf(
				"Failed to clear %s on record %s (%s)",
				strings.ToLower(a.field), record.Id, truncate(record.Prompt(), promptLogLength),
			)

			continue
		}

		tally.Succeeded++
		a.limiter.Wait(ctx)
	}

	return tally, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max]
}

func NewClearMediaAction(client RecordClient, field string, limiter RateLimiter) Action {
	return &clearMediaAction{
		client:  client,
		field:   field,
		limiter: limiter,
	}
}
