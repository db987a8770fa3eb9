package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sonicboom719/comment-umpire/infra/api"
	"github.com/sonicboom719/comment-umpire/infra/config"
	"github.com/sonicboom719/comment-umpire/infra/history"
	"github.com/sonicboom719/comment-umpire/infra/logging"
	"github.com/sonicboom719/comment-umpire/session"
	"github.com/sonicboom719/comment-umpire/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: comment-umpire [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("Comment Umpire %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
	}

	// 1. Load config from environment and the optional config file.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure. The log goes to a file because the TUI owns
	// the terminal.
	logger, err := logging.Open(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.APIBaseURL, logger)

	// 3. Build services (concrete types satisfy app.* interfaces).
	videoSvc := api.NewVideoService(client)
	commentSvc := api.NewCommentService(client)
	umpireSvc := api.NewUmpireService(client)

	sess := session.New(commentSvc, umpireSvc)
	hist := history.NewStore(cfg.HistoryPath)

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Video:      videoSvc,
		Comments:   commentSvc,
		Session:    sess,
		History:    hist,
		MaxResults: cfg.MaxResults,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "comment-umpire: %v\n", err)
		os.Exit(1)
	}
}
