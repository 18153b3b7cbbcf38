package purge

import (
	"context"
	"fmt"

	"genpurge/internal/archive"

	"github.com/rs/zerolog/log"
)

type archiveAction struct {
	archive archive.ArchiveApi

	entries []string
}

func (a *archiveAction) Name() string {
	return "delete local archive"
}

func (a *archiveAction) Summary(ctx context.Context) (Summary, error) {
	entries, err := a.archive.ListEntries()
	if err != nil {
		log.Err(err).Msg("Failed to list downloaded folders")
		return Summary{}, err
	}

	a.entries = entries

	return Summary{
		Description: fmt.Sprintf("%d downloaded folders", len(entries)),
		Affected:    len(entries),
	}, nil
}

func (a *archiveAction) Execute(ctx context.Context) (Tally, error) {
	deleted, err := a.archive.DeleteAll()

	tally := Tally{Succeeded: deleted}
	if err != nil {
		// the batch stopped early; whatever was not removed counts as failed
		tally.Failed = len(a.entries) - deleted
		log.Err(err).Msg("Failed to delete every downloaded folder")
	}

	return tally, nil
}

func NewArchiveAction(archiveApi archive.ArchiveApi) Action {
	return &archiveAction{archive: archiveApi}
}
