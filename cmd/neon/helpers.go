package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/joshsymonds/neon-finance/internal/cli"
	"github.com/joshsymonds/neon-finance/internal/common"
	"github.com/joshsymonds/neon-finance/internal/config"
	"github.com/joshsymonds/neon-finance/internal/model"
	"github.com/joshsymonds/neon-finance/internal/storage"
)

// openStore opens the document store at the configured path.
func openStore() (*storage.DocumentStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewDocumentStore(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open the finance database at %s", dbPath), err)
	}
	return store, nil
}

// withDocument runs one read-modify-write cycle: load the document, apply
// the transform, persist the result. The transform either returns the next
// document or an error, in which case nothing is written.
func withDocument(ctx context.Context, fn func(model.Document) (model.Document, error)) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.Load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(doc)
	if err != nil {
		return err
	}

	return store.Save(ctx, next)
}

// readDocument loads the document for read-only commands.
func readDocument(ctx context.Context) (model.Document, error) {
	store, err := openStore()
	if err != nil {
		return model.Document{}, err
	}
	defer store.Close()
	return store.Load(ctx)
}

// confirm asks a yes/no question on the terminal and reports the answer.
// Anything other than y/yes declines.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", question); err != nil {
		return false, err
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

// money formats an amount with the configured currency symbol.
func money(amount float64) string {
	return cli.Money(viper.GetString("display.currency"), amount)
}

// parseMonth parses a YYYY-MM flag value into a date anchored at the first
// of that month. An empty value means the current month.
func parseMonth(value string) (model.Date, error) {
	if value == "" {
		today := model.Today()
		return model.NewDate(today.Year, today.Month, 1), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", value, err)
	}
	return model.NewDate(t.Year(), t.Month(), 1), nil
}

// parseDateFlag parses a YYYY-MM-DD flag value; empty means today.
func parseDateFlag(value string) (model.Date, error) {
	if value == "" {
		return model.Today(), nil
	}
	return model.ParseDate(value)
}
