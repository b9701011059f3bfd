package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"remind/internal/config"
	"remind/internal/i18n"
	"remind/internal/render"
	"remind/internal/schedule"
	"remind/pkg/logx"
)

const usage = `usage: remind [flags] <command>

commands:
  describe   render every reminder at the configured style (default)
  triggers   print trigger specs, cron lines and upcoming fire times
  watch      run until interrupted, re-rendering on reminder file changes

flags:
`

func main() {
	var (
		cfgPath  string
		styleArg string
		preview  int
	)
	flag.StringVar(&cfgPath, "config", "./config.yaml", "path to config (yaml or json)")
	flag.StringVar(&styleArg, "style", "", "override display style: full, long, medium, short")
	flag.IntVar(&preview, "n", 0, "override upcoming fire times per trigger")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
	if styleArg != "" {
		cfg.Reminders.Style = styleArg
	}
	if preview > 0 {
		cfg.Reminders.Preview = preview
	}

	logSvc, log := logx.New(cfg.Logging)
	defer logSvc.Close()

	loc, err := loadLocale(cfg.Locale)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	f := render.New(loc, render.ParseStyle(cfg.Reminders.Style))
	mgr := config.NewManager(cfg.Reminders.Path, log)
	doc, err := mgr.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "describe"
	}
	switch cmd {
	case "describe":
		describe(doc, f)
	case "triggers":
		triggers(doc, cfg.Reminders.Preview)
	case "watch":
		watch(mgr, doc, f, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
}

func loadLocale(lc config.LocaleConfig) (i18n.Localizer, error) {
	if lc.Bundle == "" {
		return i18n.English(), nil
	}
	return i18n.Load(lc.Bundle)
}

func describe(doc *config.Document, f *render.Formatter) {
	for _, r := range doc.Reminders {
		fmt.Printf("%s:\n%s\n", r.Name, indent(f.Render(r.Schedule)))
	}
}

func triggers(doc *config.Document, preview int) {
	now := time.Now()
	for _, r := range doc.Reminders {
		fmt.Printf("%s:\n", r.Name)
		specs := r.Schedule.Triggers()
		if len(specs) == 0 {
			fmt.Println("  (no triggers)")
			continue
		}
		for _, ts := range specs {
			day := "daily"
			if !ts.Daily() {
				day = fmt.Sprintf("weekday %d", ts.Weekday.Ordinal())
			}
			fmt.Printf("  %02d:%02d %-9s  cron %q", ts.Hour, ts.Minute, day, ts.CronSpec())
			for i, at := range schedule.NextRuns(ts, now, preview) {
				if i == 0 {
					fmt.Print("  next:")
				}
				fmt.Print(" ", at.Format("Mon 2006-01-02 15:04"))
			}
			fmt.Println()
		}
	}
}

func watch(mgr *config.Manager, doc *config.Document, f *render.Formatter, log logx.Logger) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	updates := mgr.Subscribe(1)
	defer mgr.Unsubscribe(updates)
	go func() {
		if err := mgr.Watch(ctx); err != nil {
			log.Error("watch failed", logx.Err(err))
			cancel()
		}
	}()

	describe(doc, f)
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return
		case next := <-updates:
			if next == nil {
				continue
			}
			log.Info("reminders changed", logx.Int("count", len(next.Reminders)))
			describe(next, f)
		}
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
