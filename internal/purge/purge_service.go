package purge

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Run drives one guarded bulk action: compute the impact, show it, gate on
// confirmation, execute, report the tally. It returns the tally and whether
// the action was actually executed.
func Run(ctx context.Context, action Action, confirm ConfirmFunc, out io.Writer) (Tally, bool, error) {
	logger := log.With().
		Str("operation", uuid.NewString()).
		Str("action", action.Name()).
		Logger()

	logger.Info().Msgf("Start: %s", action.Name())

	summary, err := action.Summary(ctx)
	if err != nil {
		return Tally{}, false, err
	}

	fmt.Fprintf(out, "This will affect %d item(s): %s\n", summary.Affected, summary.Description)

	if !confirm(summary) {
		fmt.Fprintln(out, "Aborted, nothing was deleted.")
		logger.Info().Msg("Action was not confirmed, skipping")

		return Tally{}, false, nil
	}

	tally, err := action.Execute(ctx)
	if err != nil {
		return tally, true, err
	}

	fmt.Fprintf(out, "Done: %d succeeded, %d failed.\n", tally.Succeeded, tally.Failed)
	logger.Info().Msgf("End: %s", action.Name())

	return tally, true, nil
}
