package purge

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"genpurge/internal/airtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	records []airtable.Record
	listErr error
	// record ids whose mutation should fail
	failures map[string]error
	cleared  []string
}

func (c *fakeClient) ListRecordsWithMedia(ctx context.Context, field string) ([]airtable.Record, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}

	return c.records, nil
}

func (c *fakeClient) ClearField(ctx context.Context, recordId string, field string) error {
	if err, ok := c.failures[recordId]; ok {
		return err
	}

	c.cleared = append(c.cleared, recordId)

	return nil
}

type countingLimiter struct {
	waits int
}

func (l *countingLimiter) Wait(ctx context.Context) {
	l.waits++
}

func makeRecord(t *testing.T, id, prompt string, imageCount int) airtable.Record {
	t.Helper()

	attachments := make([]airtable.Attachment, imageCount)
	rawAttachments, err := json.Marshal(attachments)
	require.NoError(t, err)

	rawPrompt, err := json.Marshal(prompt)
	require.NoError(t, err)

	return airtable.Record{
		Id: id,
		Fields: map[string]json.RawMessage{
			"Prompt": rawPrompt,
			"Images": rawAttachments,
		},
	}
}

func TestClearMediaSummaryCountsAttachments(t *testing.T) {
	client := &fakeClient{records: []airtable.Record{
		makeRecord(t, "rec1", "a cat", 2),
		// empty collections should not pass the server-side filter, but
		// an empty one must not skew the count either
		makeRecord(t, "rec2", "a dog", 0),
		makeRecord(t, "rec3", "a fox", 5),
	}}

	action := NewClearMediaAction(client, airtable.FieldImages, NewFixedDelay(0))

	summary, err := action.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Affected)
	assert.Contains(t, summary.Description, "7 images")
}

func TestClearMediaExecuteTallies(t *testing.T) {
	client := &fakeClient{records: []airtable.Record{
		makeRecord(t, "rec1", "a cat", 1),
		makeRecord(t, "rec2", "a dog", 3),
		makeRecord(t, "rec3", "a fox", 2),
	}}
	limiter := &countingLimiter{}

	action := NewClearMediaAction(client, airtable.FieldImages, limiter)

	_, err := action.Summary(context.Background())
	require.NoError(t, err)

	tally, err := action.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Tally{Succeeded: 3, Failed: 0}, tally)
	assert.Equal(t, len(client.records), tally.Succeeded+tally.Failed)
	assert.Equal(t, []string{"rec1", "rec2", "rec3"}, client.cleared)
	assert.Equal(t, 3, limiter.waits)
}

func TestClearMediaExecuteContinuesPastFailure(t *testing.T) {
	client := &fakeClient{
		records: []airtable.Record{
			makeRecord(t, "rec1", "a cat", 1),
			makeRecord(t, "recABC", "a dog", 2),
			makeRecord(t, "rec3", "a fox", 1),
		},
		failures: map[string]error{
			"recABC": &airtable.MutationError{RecordId: "recABC", Status: http.StatusNotFound, Body: "NOT_FOUND"},
		},
	}

	action := NewClearMediaAction(client, airtable.FieldImages, NewFixedDelay(0))

	_, err := action.Summary(context.Background())
	require.NoError(t, err)

	tally, err := action.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Tally{Succeeded: 2, Failed: 1}, tally)
	assert.Equal(t, []string{"rec1", "rec3"}, client.cleared)
}

func TestRunWithoutConfirmationHasNoSideEffects(t *testing.T) {
	client := &fakeClient{records: []airtable.Record{makeRecord(t, "rec1", "a cat", 4)}}
	action := NewClearMediaAction(client, airtable.FieldImages, NewFixedDelay(0))

	out := &bytes.Buffer{}
	deny := func(Summary) bool { return false }

	tally, executed, err := Run(context.Background(), action, deny, out)
	require.NoError(t, err)

	assert.False(t, executed)
	assert.Zero(t, tally)
	assert.Empty(t, client.cleared)
	assert.Contains(t, out.String(), "Aborted")
}

func TestRunConfirmedReportsTally(t *testing.T) {
	client := &fakeClient{records: []airtable.Record{
		makeRecord(t, "rec1", "a cat", 1),
		makeRecord(t, "rec2", "a dog", 1),
	}}
	action := NewClearMediaAction(client, airtable.FieldImages, NewFixedDelay(0))

	out := &bytes.Buffer{}
	approve := func(s Summary) bool {
		assert.Equal(t, 2, s.Affected)
		return true
	}

	tally, executed, err := Run(context.Background(), action, approve, out)
	require.NoError(t, err)

	assert.True(t, executed)
	assert.Equal(t, Tally{Succeeded: 2}, tally)
	assert.Contains(t, out.String(), "This will affect 2 item(s)")
	assert.Contains(t, out.String(), "2 succeeded, 0 failed")
}

func TestRunSummaryErrorAborts(t *testing.T) {
	queryErr := &airtable.QueryError{Status: http.StatusBadGateway, Body: "boom"}
	client := &fakeClient{listErr: queryErr}
	action := NewClearMediaAction(client, airtable.FieldImages, NewFixedDelay(0))

	confirmed := false
	confirm := func(Summary) bool {
		confirmed = true
		return true
	}

	_, executed, err := Run(context.Background(), action, confirm, &bytes.Buffer{})
	require.ErrorAs(t, err, &queryErr)

	assert.False(t, executed)
	assert.False(t, confirmed)
	assert.Empty(t, client.cleared)
}

func TestCompositeActionSumsSummariesAndTallies(t *testing.T) {
	client := &fakeClient{records: []airtable.Record{
		makeRecord(t, "rec1", "a cat", 2),
		makeRecord(t, "rec2", "a dog", 1),
	}}

	composite := NewCompositeAction(
		"clear images and videos",
		NewClearMediaAction(client, airtable.FieldImages, NewFixedDelay(0)),
		NewClearMediaAction(client, airtable.FieldImages, NewFixedDelay(0)),
	)

	summary, err := composite.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, summary.Affected)

	tally, err := composite.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Tally{Succeeded: 4}, tally)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))

	long := "a very long prompt describing a scene in painstaking detail beyond fifty characters"
	assert.Len(t, truncate(long, 50), 50)
}
