package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/models"
)

func (a *App) Profile(ctx context.Context, _ []string) error {
	p, ok := a.journal.LoadProfile(ctx)
	if !ok {
		a.printf("No profile yet, run 'setup' to create one.\n")
		return nil
	}
	a.printf("%s <%s>\n", p.Name, p.Email)
	if p.Bio != "" {
		a.printf("%s\n", p.Bio)
	}
	a.printf("Member since %s\n", p.MemberSince.Local().Format("January 2006"))
	a.printf("Writes in the %s\n", p.PreferredWritingTime.DisplayName())
	a.printf("Daily reminders: %s\n", onOff(p.DailyReminders))
	a.printf("Entries: %d  Today: %d  Streak: %d\n", p.TotalEntries, p.TodaysEntry, p.StreakDays)
	return nil
}

// Setup runs onboarding when there is no profile and edits it otherwise.
func (a *App) Setup(ctx context.Context, _ []string) error {
	current, exists := a.journal.LoadProfile(ctx)
	if !exists {
		current = models.UserProfile{PreferredWritingTime: models.WritingTimeMorning}
	}

	name, err := GetTextOrKeep(a.reader, "Name", current.Name, a.out)
	if err != nil {
		return err
	}
	email, err := GetTextOrKeep(a.reader, "Email", current.Email, a.out)
	if err != nil {
		return err
	}
	bio, err := GetTextOrKeep(a.reader, "Bio", current.Bio, a.out)
	if err != nil {
		return err
	}
	wt, err := GetWritingTime(a.reader, current.PreferredWritingTime, a.out)
	if err != nil {
		return err
	}
	reminders, err := GetYesNo(a.reader, "Daily reminders?", a.out)
	if err != nil {
		return err
	}

	if !exists {
		a.journal.Profile.Create(ctx, name, email, bio, wt, reminders)
		a.printf("Welcome, %s!\n", name)
		return nil
	}

	current.Name, current.Email, current.Bio = name, email, bio
	current.PreferredWritingTime = wt
	current.DailyReminders = reminders
	a.journal.SaveProfile(ctx, current)
	a.printf("Profile saved\n")
	return nil
}

// Avatar shows the stored avatar, sets it from a file or clears it.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		img, err := a.journal.Profile.LoadAvatar(ctx)
		if errors.Is(err, common.ErrorNotFound) {
			a.printf("No avatar\n")
			return nil
		}
		if err != nil {
			return err
		}
		a.printf("Avatar: %s, %d bytes\n", http.DetectContentType(img), len(img))
		return nil
	}

	if args[0] == "clear" {
		a.journal.Profile.ClearAvatar(ctx)
		a.printf("Avatar cleared\n")
		return nil
	}

	img, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(img) == 0 {
		return fmt.Errorf("%s is empty", args[0])
	}
	a.journal.Profile.SaveAvatar(ctx, img)
	a.printf("Avatar saved (%s)\n", http.DetectContentType(img))
	return nil
}

func (a *App) Reset(ctx context.Context, _ []string) error {
	ok, err := GetYesNo(a.reader, "Clear the profile and avatar?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	a.journal.ResetAccount(ctx)
	a.printf("Profile cleared\n")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
