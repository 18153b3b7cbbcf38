package purge

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

type compositeAction struct {
	name    string
	actions []Action
}

func (a *compositeAction) Name() string {
	return a.name
}

func (a *compositeAction) Summary(ctx context.Context) (Summary, error) {
	result := Summary{}

	descriptions := make([]string, 0, len(a.actions))
	for _, action := range a.actions {
		summary, err := action.Summary(ctx)
		if err != nil {
			return Summary{}, err
		}

		result.Affected += summary.Affected
		descriptions = append(descriptions, summary.Description)
	}

	result.Description = strings.Join(descriptions, ", ")

	return result, nil
}

// Execute runs the sub-actions strictly in order. A failing sub-action is
// logged and the remaining ones still run so every tally gets reported.
func (a *compositeAction) Execute(ctx context.Context) (Tally, error) {
	var tally Tally

	for _, action := range a.actions {
		subTally, err := action.Execute(ctx)
		if err != nil {
			log.Err(err).Msgf("Sub-action %s failed", action.Name())
		}

		tally = tally.Add(subTally)
	}

	return tally, nil
}

func NewCompositeAction(name string, actions ...Action) Action {
	return &compositeAction{name: name, actions: actions}
}
