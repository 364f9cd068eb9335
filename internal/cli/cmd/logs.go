package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/vibeterm/internal/cli"
	"github.com/bnema/vibeterm/internal/cli/styles"
)

var (
	logsFollow bool
	logsLines  int
)

const (
	defaultLogsLines = 50
	followPoll       = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the log of interactive runs",
	Long: `Show the end of the log file written while vibeterm runs.

Examples:
  vibeterm logs               # Last 50 lines
  vibeterm logs -n 200        # Last 200 lines
  vibeterm logs -f            # Follow in real-time
  vibeterm logs path          # Print the log file path`,
	RunE: runLogs,
}

var logsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the log file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		path, err := logFile(app)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsPathCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func logFile(app *cli.App) (string, error) {
	if app.Config.Logging.File != "" {
		return app.Config.Logging.File, nil
	}
	return app.Paths.LogFile()
}

func runLogs(cmd *cobra.Command, _ []string) (retErr error) {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := logFile(app)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no log file at %s yet", path)
		}
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	out := cmd.OutOrStdout()
	lines, err := lastLines(file, logsLines)
	if err != nil {
		return err
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, colorizeLogLine(line, app.Theme))
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	_, _ = fmt.Fprintln(out, app.Theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	return followLog(ctx, file, out, app.Theme)
}

// lastLines returns the last n lines of r.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// followLog prints lines appended to r until ctx is done.
func followLog(ctx context.Context, r io.Reader, w io.Writer, theme *styles.Theme) error {
	reader := bufio.NewReader(r)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		switch {
		case err == nil:
			_, _ = fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
		case errors.Is(err, io.EOF):
			// No full line yet; keep partial data.
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followPoll):
			}
		default:
			return fmt.Errorf("read log file: %w", err)
		}
	}
}

type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

func colorizeLogLine(line string, theme *styles.Theme) string {
	// Try to parse as JSON
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Console format: "15:04:05 INF message key=value"
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return line
	}
	switch fields[1] {
	case "ERR", "FTL", "PNC":
		return theme.ErrorStyle.Render(line)
	case "WRN":
		return theme.WarningStyle.Render(line)
	case "DBG", "TRC":
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}
