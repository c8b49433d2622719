package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/schedassist/cli/internal/calendar"
	"github.com/schedassist/cli/internal/models"
	"github.com/schedassist/cli/internal/view"
	"github.com/schedassist/cli/pkg/export"
)

var errNotLoggedIn = errors.New("log in first")

func (a *app) registerCommands() {
	d := a.dispatcher

	d.Register(view.Command{Name: "help", Help: "list commands", Run: a.cmdHelp})
	d.Register(view.Command{Name: "quit", Help: "exit", Run: a.cmdQuit})
	d.Register(view.Command{Name: "exit", Help: "exit", Run: a.cmdQuit})

	d.Register(view.Command{Name: "login", Help: "log in", Run: a.cmdLogin})
	d.Register(view.Command{Name: "register", Help: "create an account", Run: a.cmdRegister})
	d.Register(view.Command{Name: "logout", Help: "log out", Run: a.cmdLogout})

	for _, v := range []view.View{view.ViewCalendar, view.ViewAssignments, view.ViewSchedule, view.ViewMeetings, view.ViewStudyBlocks, view.ViewSettings} {
		target := v
		d.Register(view.Command{
			Name: string(target),
			Help: "open the " + string(target) + " view",
			Run: func(ctx context.Context, _ []string) error {
				if err := a.requireDashboard(); err != nil {
					return err
				}
				a.router.Activate(ctx, target)
				return nil
			},
		})
	}

	d.Register(view.Command{Name: "filter", Help: "filter assignments: all|completed|incomplete", Run: a.cmdFilter})
	d.Register(view.Command{Name: "range", Help: "set calendar range: range 2024-05-01 2024-06-01", Run: a.cmdRange})

	d.Register(view.Command{Name: "add-assignment", Help: "create an assignment", Run: a.cmdAddAssignment})
	d.Register(view.Command{Name: "complete", Help: "complete an assignment: complete <id>", Run: a.cmdComplete})
	d.Register(view.Command{Name: "rm-assignment", Help: "delete an assignment: rm-assignment <id>", Run: a.cmdDeleteAssignment})

	d.Register(view.Command{Name: "add-class", Help: "add a weekly class", Run: a.cmdAddClass})
	d.Register(view.Command{Name: "rm-class", Help: "delete a class: rm-class <id>", Run: a.cmdDeleteClass})

	d.Register(view.Command{Name: "add-meeting", Help: "create a meeting", Run: a.cmdAddMeeting})
	d.Register(view.Command{Name: "rm-meeting", Help: "delete a meeting: rm-meeting <id>", Run: a.cmdDeleteMeeting})

	d.Register(view.Command{Name: "event", Help: "show one calendar event: event <n>", Run: a.cmdEvent})
	d.Register(view.Command{Name: "regenerate", Help: "regenerate the study schedule", Run: a.cmdRegenerate})
	d.Register(view.Command{Name: "save-settings", Help: "edit and save preferences", Run: a.cmdSaveSettings})
	d.Register(view.Command{Name: "link", Help: "show the public booking link", Run: a.cmdLink})
	d.Register(view.Command{Name: "export", Help: "export agenda: export csv|pdf|ics", Run: a.cmdExport})
}

func (a *app) requireDashboard() error {
	if a.router.Page() != view.PageDashboard {
		return errNotLoggedIn
	}
	return nil
}

func (a *app) cmdHelp(_ context.Context, _ []string) error {
	for _, cmd := range a.dispatcher.Commands() {
		fmt.Fprintf(os.Stdout, "  %-16s %s\n", cmd.Name, cmd.Help)
	}
	return nil
}

func (a *app) cmdQuit(_ context.Context, _ []string) error {
	a.quitRequest = true
	return nil
}

func (a *app) cmdLogin(ctx context.Context, _ []string) error {
	username, err := a.prompt.askRequired("Username")
	if err != nil {
		return err
	}
	password, err := a.prompt.askRequired("Password")
	if err != nil {
		return err
	}
	user, err := a.auth.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}
	a.enterDashboard(ctx, user.Username)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, _ []string) error {
	username, err := a.prompt.askRequired("Username")
	if err != nil {
		return err
	}
	password, err := a.prompt.askRequired("Password")
	if err != nil {
		return err
	}
	if err := a.auth.Register(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		return err
	}
	a.renderer.Message("Account created! Please login.")
	return nil
}

func (a *app) cmdLogout(_ context.Context, _ []string) error {
	a.auth.Logout()
	a.router.ShowLoggedOut()
	a.renderer.Message("Logged out.")
	return nil
}

func (a *app) cmdFilter(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: filter all|completed|incomplete")
	}
	filter := models.AssignmentFilter(args[0])
	switch filter {
	case models.FilterAll, models.FilterCompleted, models.FilterIncomplete:
		return a.controller.SetFilter(ctx, filter)
	default:
		return errors.New("usage: filter all|completed|incomplete")
	}
}

func (a *app) cmdRange(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("usage: range <start> <end> as YYYY-MM-DD")
	}
	start, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
	if err != nil {
		return fmt.Errorf("bad start date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", args[1], time.Local)
	if err != nil {
		return fmt.Errorf("bad end date: %w", err)
	}
	if !end.After(start) {
		return errors.New("end must be after start")
	}
	return a.controller.SetRange(ctx, start, end)
}

func (a *app) cmdAddAssignment(ctx context.Context, _ []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	title, err := a.prompt.askRequired("Title")
	if err != nil {
		return err
	}
	category, err := a.prompt.askString("Category [General]")
	if err != nil {
		return err
	}
	if category == "" {
		category = "General"
	}
	description, err := a.prompt.askString("Description")
	if err != nil {
		return err
	}
	dueDate, err := a.prompt.askDateTime("Due date")
	if err != nil {
		return err
	}
	priority, err := a.prompt.askInt("Priority 1=Low 2=Medium 3=High", models.PriorityMedium)
	if err != nil {
		return err
	}
	estimate, err := a.prompt.askOptionalInt("Estimated minutes")
	if err != nil {
		return err
	}
	return a.controller.CreateAssignment(ctx, models.CreateAssignmentRequest{
		Title:                title,
		Category:             category,
		Description:          description,
		DueDate:              dueDate,
		Priority:             priority,
		EstimatedTimeMinutes: estimate,
	})
}

func (a *app) cmdComplete(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	id, err := parseID(args, "complete <id>")
	if err != nil {
		return err
	}
	actual, err := a.prompt.askOptionalInt("How long did this assignment take? (minutes)")
	if err != nil {
		return err
	}
	return a.controller.CompleteAssignment(ctx, id, actual)
}

func (a *app) cmdDeleteAssignment(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	id, err := parseID(args, "rm-assignment <id>")
	if err != nil {
		return err
	}
	return a.controller.DeleteAssignment(ctx, id)
}

func (a *app) cmdAddClass(ctx context.Context, _ []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	title, err := a.prompt.askRequired("Class name")
	if err != nil {
		return err
	}
	day, err := a.prompt.askInt("Day 0=Monday .. 6=Sunday", 0)
	if err != nil {
		return err
	}
	start, err := a.prompt.askClockTime("Start time")
	if err != nil {
		return err
	}
	end, err := a.prompt.askClockTime("End time")
	if err != nil {
		return err
	}
	return a.controller.CreateClass(ctx, models.CreateClassRequest{
		Title:     title,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	})
}

func (a *app) cmdDeleteClass(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	id, err := parseID(args, "rm-class <id>")
	if err != nil {
		return err
	}
	return a.controller.DeleteClass(ctx, id)
}

func (a *app) cmdAddMeeting(ctx context.Context, _ []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	title, err := a.prompt.askRequired("Title")
	if err != nil {
		return err
	}
	description, err := a.prompt.askString("Description")
	if err != nil {
		return err
	}
	start, err := a.prompt.askDateTime("Start time")
	if err != nil {
		return err
	}
	end, err := a.prompt.askDateTime("End time")
	if err != nil {
		return err
	}
	attendee, err := a.prompt.askString("Attendee name (optional)")
	if err != nil {
		return err
	}
	req := models.CreateMeetingRequest{
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
	}
	if attendee != "" {
		req.AttendeeName = &attendee
	}
	return a.controller.CreateMeeting(ctx, req)
}

func (a *app) cmdDeleteMeeting(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	id, err := parseID(args, "rm-meeting <id>")
	if err != nil {
		return err
	}
	return a.controller.DeleteMeeting(ctx, id)
}

// cmdEvent shows one event's details, the terminal stand-in for clicking
// it on the calendar. Viewing an event never mutates anything.
func (a *app) cmdEvent(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	n, err := parseID(args, "event <n>")
	if err != nil {
		return err
	}
	events, err := a.controller.Events(ctx)
	if err != nil {
		return err
	}
	if n < 1 || n > len(events) {
		return fmt.Errorf("event %d out of range, %d in view", n, len(events))
	}
	a.renderer.Message(calendar.Describe(events[n-1]))
	return nil
}

func (a *app) cmdRegenerate(ctx context.Context, _ []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	return a.controller.Regenerate(ctx)
}

func (a *app) cmdSaveSettings(ctx context.Context, _ []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	current := a.controller.Preferences()
	if current == nil {
		current = &models.Preferences{WakeTime: "08:00", Bedtime: "23:00", DefaultStudyBlockMinutes: 60}
	}
	wake, err := a.prompt.askString("Wake time [" + current.WakeTime + "]")
	if err != nil {
		return err
	}
	if wake == "" {
		wake = current.WakeTime
	}
	bed, err := a.prompt.askString("Bedtime [" + current.Bedtime + "]")
	if err != nil {
		return err
	}
	if bed == "" {
		bed = current.Bedtime
	}
	minutes, err := a.prompt.askInt("Default study block minutes", current.DefaultStudyBlockMinutes)
	if err != nil {
		return err
	}
	return a.controller.SavePreferences(ctx, models.Preferences{
		WakeTime:                 wake,
		Bedtime:                  bed,
		DefaultStudyBlockMinutes: minutes,
	})
}

func (a *app) cmdLink(_ context.Context, _ []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	user := a.sessions.User()
	if user == nil {
		return errNotLoggedIn
	}
	a.renderer.Message(view.BookingLink(a.cfg.Booking.Origin, user.Username))
	return nil
}

func (a *app) cmdExport(ctx context.Context, args []string) error {
	if err := a.requireDashboard(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: export csv|pdf|ics")
	}

	events, err := a.controller.Events(ctx)
	if err != nil {
		return err
	}
	start, end := a.controller.Range()
	agenda := export.Agenda{
		Title: fmt.Sprintf("Agenda %s - %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
	}
	for _, e := range events {
		agenda.Events = append(agenda.Events, export.AgendaEvent{
			ID:    e.ID,
			Title: e.Title,
			Type:  e.Type,
			Start: e.Start,
			End:   e.End,
		})
	}

	var data []byte
	switch args[0] {
	case "csv":
		data, err = export.NewCSVExporter().Render(agenda)
	case "pdf":
		data, err = export.NewPDFExporter().Render(agenda)
	case "ics":
		data, err = export.NewICSExporter().Render(agenda)
	default:
		return errors.New("usage: export csv|pdf|ics")
	}
	if err != nil {
		return err
	}

	name := fmt.Sprintf("agenda-%s.%s", start.Format("2006-01-02"), args[0])
	path := filepath.Join(a.cfg.Export.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	a.renderer.Message("Exported to " + path)
	return nil
}

func parseID(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("usage: " + usage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New("usage: " + usage)
	}
	return id, nil
}
