package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/carousel/internal/app"
	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	itemsPath := flag.String("items", "", "items file to show (optional, defaults to config items_file)")
	pollSeconds := flag.Int("poll", 0, "items file reload interval in seconds (optional, defaults to 2s)")
	logPath := flag.String("log", "", "log file path (optional, defaults to config log_file)")
	tailLines := flag.Int("tail", 0, "print the last N log lines and exit")
	flag.Parse()

	if *tailLines > 0 {
		return printTail(*configPath, *logPath, *tailLines)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		ItemsPath:  *itemsPath,
		LogPath:    *logPath,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "carousel: %v\n", err)
		return 1
	}
	return 0
}

// printTail writes the end of the log file to stdout. The TUI owns the
// terminal while running, so this is how its log is read.
func printTail(configPath, logPath string, n int) int {
	cfg, err := config.LoadWith(configPath, config.Overrides{LogFile: logPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "carousel: load config: %v\n", err)
		return 1
	}
	logPath = cfg.LogFile
	if logPath == "" {
		fmt.Fprintln(os.Stderr, "carousel: logging is disabled")
		return 1
	}

	lines, err := logging.Tail(logPath, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "carousel: %v\n", err)
		return 1
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return 0
}
