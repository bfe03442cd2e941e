// cmd/roster/main.go
//
// Entry point for the roster CLI.
//
// Flow:
// 1. Make sure .roster/ exists in the project directory and load config.yaml
// 2. Seed the company from the config
// 3. Either replay the demonstration or launch the terminal UI
// 4. Close the company so every remaining member is released

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/roster/internal/config"
	"github.com/kingrea/roster/internal/employee"
	"github.com/kingrea/roster/internal/logbook"
	"github.com/kingrea/roster/internal/logging"
	"github.com/kingrea/roster/internal/metrics"
	"github.com/kingrea/roster/internal/notify"
	"github.com/kingrea/roster/internal/tui"
)

func main() {
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	interactive := flag.Bool("tui", false, "launch the terminal UI instead of the demonstration")
	quiet := flag.Bool("quiet", false, "do not echo roster notices on stdout")
	flag.Parse()

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}
	if err := config.InitRosterDir(absoluteProject); err != nil {
		die("init .roster: %v", err)
	}
	cfg, err := config.NewConfig(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}
	logger, err := logging.New(absoluteProject)
	if err != nil {
		die("open log: %v", err)
	}
	defer logger.Close()
	book, err := logbook.New(cfg.JournalPath(), logbook.WithMinLevel(cfg.JournalLevel()))
	if err != nil {
		die("open journal: %v", err)
	}

	collector := metrics.NewCollector()
	var console employee.Notifier
	if !*quiet && !*interactive && cfg.ConsoleNotices() {
		console = notify.Console(os.Stdout)
	}
	company := cfg.BuildCompany(employee.WithNotifier(
		notify.Fanout(console, notify.Journal(book), collector),
	))
	logger.Printf("session opened: project=%s staff=%d tui=%t", absoluteProject, company.Staffs().Len(), *interactive)

	if *interactive {
		p := tea.NewProgram(tui.NewApp(company, tui.WithLogbook(book)), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Printf("tui failed: %v", err)
			die("run TUI: %v", err)
		}
		company.Close()
		logger.Printf("session closed: headcount=%d", company.Headcount())
		return
	}

	if err := runDemo(os.Stdout, company, collector); err != nil {
		logger.Printf("demo failed: %v", err)
		die("run demo: %v", err)
	}
	logger.Printf("session closed")
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
