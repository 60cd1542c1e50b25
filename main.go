package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/popup-launcher/internal/app"
	"github.com/atomicstack/popup-launcher/internal/config"
	"github.com/atomicstack/popup-launcher/internal/logging"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"piped":    cfg.App.Piped,
		"terminal": collectTerminalDetails(),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

// terminalDetails records how the launcher is attached: whether candidates
// arrive on a pipe, and the size of the terminal the menu will draw on.
type terminalDetails struct {
	StdinPiped bool   `json:"stdin_piped"`
	SizeSource string `json:"size_source,omitempty"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func collectTerminalDetails() terminalDetails {
	details := terminalDetails{StdinPiped: !term.IsTerminal(int(os.Stdin.Fd()))}
	for _, probe := range []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	} {
		fd := int(probe.file.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			details.Error = err.Error()
			continue
		}
		details.SizeSource, details.Width, details.Height = probe.name, width, height
		details.Error = ""
		break
	}
	return details
}
