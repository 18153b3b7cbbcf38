package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"genpurge/internal/airtable"
	"genpurge/internal/archive"
	"genpurge/internal/purge"

	"github.com/fatih/color"
)

const confirmToken = "YES"

// Controller owns the terminal for the process lifetime and sequences the
// purge actions behind the menu.
type Controller struct {
	client  purge.RecordClient
	archive archive.ArchiveApi
	limiter purge.RateLimiter

	in  *bufio.Scanner
	out io.Writer
}

func NewController(
	client purge.RecordClient,
	archiveApi archive.ArchiveApi,
	limiter purge.RateLimiter,
	in io.Reader,
	out io.Writer,
) *Controller {
	return &Controller{
		client:  client,
		archive: archiveApi,
		limiter: limiter,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until exit is chosen or input ends.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.printMenu()

		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.runAction(ctx, purge.NewClearMediaAction(c.client, airtable.FieldImages, c.limiter))
		case "2":
			c.runAction(ctx, purge.NewClearMediaAction(c.client, airtable.FieldVideos, c.limiter))
		case "3":
			c.runAction(ctx, purge.NewCompositeAction(
				"clear images and videos",
				purge.NewClearMediaAction(c.client, airtable.FieldImages, c.limiter),
				purge.NewClearMediaAction(c.client, airtable.FieldVideos, c.limiter),
			))
		case "4":
			c.runAction(ctx, purge.NewArchiveAction(c.archive))
		case "5":
			c.runAction(ctx, purge.NewCompositeAction(
				"delete everything",
				purge.NewClearMediaAction(c.client, airtable.FieldImages, c.limiter),
				purge.NewClearMediaAction(c.client, airtable.FieldVideos, c.limiter),
				purge.NewArchiveAction(c.archive),
			))
		case "6":
			fmt.Fprintln(c.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown choice, enter a number between 1 and 6.")
		}
	}
}

func (c *Controller) runAction(ctx context.Context, action purge.Action) {
	_, _, err := purge.Run(ctx, action, c.confirm, c.out)
	if err != nil {
		var queryErr *airtable.QueryError
		if errors.As(err, &queryErr) {
			color.New(color.FgRed).Fprintf(c.out, "Query failed with status %d: %s\n", queryErr.Status, queryErr.Body)
			return
		}

		color.New(color.FgRed).Fprintf(c.out, "Action %s failed: %v\n", action.Name(), err)
	}
}

// confirm requires the literal token YES (any casing); everything else,
// including end of input, aborts with no side effects.
func (c *Controller) confirm(_ purge.Summary) bool {
	color.New(color.FgYellow).Fprintf(c.out, "Type %s to confirm: ", confirmToken)

	line, ok := c.readLine()
	if !ok {
		return false
	}

	return strings.ToUpper(strings.TrimSpace(line)) == confirmToken
}

func (c *Controller) printMenu() {
	color.New(color.FgCyan, color.Bold).Fprintln(c.out, "\ngenpurge - generated media cleanup")
	fmt.Fprintln(c.out, " 1) Clear images from records")
	fmt.Fprintln(c.out, " 2) Clear videos from records")
	fmt.Fprintln(c.out, " 3) Clear images and videos")
	fmt.Fprintln(c.out, " 4) Delete downloaded folders")
	fmt.Fprintln(c.out, " 5) Delete everything")
	fmt.Fprintln(c.out, " 6) Exit")
	fmt.Fprint(c.out, "Choose an option: ")
}

func (c *Controller) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}

	return c.in.Text(), true
}
