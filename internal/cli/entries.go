package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/models"
	"github.com/dmitrijs2005/listen/internal/stats"
	"github.com/google/uuid"
)

const listDateFormat = "Jan 2 15:04"

var errUsage = errors.New("usage")

func (a *App) Add(ctx context.Context, _ []string) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}
	mood, err := GetSimpleText(a.reader, "Mood (optional)", a.out)
	if err != nil {
		return err
	}

	id := a.journal.AddEntry(ctx, title, content, mood)
	a.printf("Saved entry %s\n", shortID(id))
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	e, err := a.lookup(args)
	if err != nil {
		return err
	}

	title, err := GetTextOrKeep(a.reader, "Title", e.Title, a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = e.Content
	}
	mood, err := GetTextOrKeep(a.reader, "Mood", e.Mood, a.out)
	if err != nil {
		return err
	}

	if err := a.journal.UpdateEntry(ctx, e.ID, title, content, mood); err != nil {
		return notFound(err)
	}
	a.printf("Updated entry %s\n", shortID(e.ID))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	e, err := a.lookup(args)
	if err != nil {
		return err
	}
	if err := a.journal.DeleteEntry(ctx, e.ID); err != nil {
		return notFound(err)
	}
	a.printf("Deleted entry %s\n", shortID(e.ID))
	return nil
}

func (a *App) List(_ context.Context, _ []string) error {
	entries := a.journal.ListEntries()
	if len(entries) == 0 {
		a.printf("%s\n", common.NoEntriesTitle)
		return nil
	}

	today, earlier := a.journal.Sections()
	index := indexByID(entries)
	section := func(name string, list []models.DiaryEntry) {
		if len(list) == 0 {
			return
		}
		a.printf("%s\n", name)
		for _, e := range list {
			a.printf("  %s\n", a.listLine(index[e.ID], e))
		}
	}
	section("Today", today)
	section("Earlier", earlier)
	return nil
}

func (a *App) Show(_ context.Context, args []string) error {
	e, err := a.lookup(args)
	if err != nil {
		return err
	}
	title := e.Title
	if title == "" {
		title = common.UntitledTitle
	}
	a.printf("%s %s\n", title, e.Mood)
	a.printf("%s  id %s\n\n", e.Date.Local().Format("Monday, Jan 2 2006 15:04"), e.ID)
	a.printf("%s\n", e.Content)
	return nil
}

func (a *App) Day(_ context.Context, args []string) error {
	day := stats.DayOf(a.now(), nil)
	if len(args) > 0 {
		d, err := stats.ParseDay(args[0])
		if err != nil {
			return err
		}
		day = d
	}

	entries := a.journal.Entries.EntriesOn(day)
	if len(entries) == 0 {
		a.printf("No entries on %s\n", day)
		return nil
	}
	index := indexByID(a.journal.ListEntries())
	a.printf("%s\n", day)
	for _, e := range entries {
		a.printf("  %s\n", a.listLine(index[e.ID], e))
	}
	return nil
}

func (a *App) Stats(_ context.Context, _ []string) error {
	s := a.journal.GetStatsSnapshot()
	a.printf("Recent entry: %s\n", s.RecentTitle)
	a.printf("Total: %d  Today: %d  Streak: %d\n", s.TotalEntries, s.TodayEntries, s.StreakDays)
	return nil
}

// lookup resolves a 1-based list position or an entry id.
func (a *App) lookup(args []string) (models.DiaryEntry, error) {
	if len(args) == 0 {
		return models.DiaryEntry{}, fmt.Errorf("%w: <n|id>", errUsage)
	}
	ref := strings.TrimPrefix(args[0], "#")
	entries := a.journal.ListEntries()

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(entries) {
			return models.DiaryEntry{}, fmt.Errorf("no entry #%d", n)
		}
		return entries[n-1], nil
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("invalid entry reference %q", args[0])
	}
	e, err := a.journal.Entries.Get(id)
	if err != nil {
		return models.DiaryEntry{}, notFound(err)
	}
	return e, nil
}

func (a *App) listLine(n int, e models.DiaryEntry) string {
	title := e.Title
	if title == "" {
		title = common.UntitledTitle
	}
	line := fmt.Sprintf("%2d. %s  %s", n, e.Date.Local().Format(listDateFormat), title)
	if e.Mood != "" {
		line += " " + e.Mood
	}
	return line
}

func indexByID(entries []models.DiaryEntry) map[uuid.UUID]int {
	m := make(map[uuid.UUID]int, len(entries))
	for i, e := range entries {
		m[e.ID] = i + 1
	}
	return m
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func notFound(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return errors.New("entry not found")
	}
	return err
}
