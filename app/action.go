package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	bolt "go.etcd.io/bbolt"

	"github.com/stridewalk/stride/config"
	"github.com/stridewalk/stride/internal/timeutil"
	"github.com/stridewalk/stride/internal/ui"
	"github.com/stridewalk/stride/mirror"
	"github.com/stridewalk/stride/notify"
	"github.com/stridewalk/stride/phase"
	"github.com/stridewalk/stride/store"
	"github.com/stridewalk/stride/tui"
)

const (
	envNoColor       = "NO_COLOR"
	envStrideNoColor = "STRIDE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// summarySaver persists completed sessions to the database.
type summarySaver struct {
	db store.DB
}

func (s summarySaver) PhaseChanged(phase.Snapshot) {}

func (s summarySaver) SessionCompleted(sum phase.Summary) {
	s.save(sum)
}

func (s summarySaver) save(sum phase.Summary) {
	if err := s.db.SaveSummary(sum); err != nil {
		slog.Error("unable to save session", slog.Any("error", err))
		pterm.Error.Printfln("unable to save session: %v", err)
	}
}

// editConfigAction handles the edit-config command which opens the
// stride config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction handles the status command and prints the phase and
// remaining time of the session currently in progress.
func statusAction(_ *cli.Context) error {
	dbFilePath := config.DBFilePath()

	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(dbFilePath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means stride is not running, so no status to report
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, bolt.ErrDatabaseOpen) &&
		!errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	snap, err := mirror.ReadStatus(config.StatusFilePath())
	if err != nil {
		// a missing status file should not return an error
		return nil
	}

	if snap.Paused {
		pterm.Printfln(
			"%s (%d/%d)",
			ui.PhaseLabel(snap.Phase),
			snap.IntervalIndex,
			snap.TotalIntervals,
		)

		return nil
	}

	remaining := snap.Remaining(time.Now())
	if remaining <= 0 {
		return nil
	}

	pterm.Printfln(
		"%s %s remaining (%d/%d)",
		ui.PhaseLabel(snap.Phase),
		timeutil.FormatDuration(remaining),
		snap.IntervalIndex,
		snap.TotalIntervals,
	)

	return nil
}

// historyAction handles the history command and prints a table of
// completed sessions, most recent first.
func historyAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	summaries, err := db.ListSummaries(int(ctx.Uint("limit")))
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(summaries)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	tableBody := make([][]string, len(summaries))

	for i, v := range summaries {
		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			v.StartTime.Format("Jan 02, 2006 03:04 PM"),
			timeutil.FormatDuration(v.TotalDuration),
			fmt.Sprintf("%d", v.BriskIntervals),
			fmt.Sprintf("%d", v.EasyIntervals),
			fmt.Sprintf("%d", v.Metrics.Steps),
		}
	}

	tableBody = append([][]string{
		{"#", "STARTED", "DURATION", "BRISK", "EASY", "STEPS"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}

// defaultAction starts an interval walking session.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.Get(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.DarkTheme

	if cfg.Debug {
		slog.Debug(spew.Sdump(cfg))
	}

	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = dbClient.Close()
	}()

	saver := summarySaver{db: dbClient}

	notifier := phase.Notifiers{
		notify.New(cfg.Notify, cfg.Sound, cfg.PhaseCmd),
		saver,
	}

	mirrors := phase.Mirrors{
		mirror.NewStatusFile(config.StatusFilePath()),
	}

	var commands <-chan mirror.Command

	if cfg.MirrorAddr != "" {
		b := mirror.NewBroadcaster()
		go b.Serve(cfg.MirrorAddr)

		mirrors = append(mirrors, b)
		commands = b.Commands()
	}

	return tui.Run(tui.Params{
		Sched:    phase.NewScheduler(notifier, mirrors),
		Cfg:      cfg,
		Commands: commands,
		OnEnd:    saver.save,
	})
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STRIDE_NO_COLOR is set
	if _, exists := os.LookupEnv(envStrideNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
