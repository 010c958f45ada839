package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"policyadvisor/internal/api"
	apierrors "policyadvisor/internal/errors"
	"policyadvisor/internal/logging"
	"policyadvisor/internal/models"
	"policyadvisor/internal/render"
)

// Styles matching the chat TUI
var (
	botLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginBottom(0)

	botBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Foreground(colorText).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	sourceLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true).
			MarginLeft(1)
)

// runQuery sends a single question and outputs the answer.
// If rawOutput is true, only the raw answer text is printed without decoration
func runQuery(question string, rawOutput bool) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}

	cfg := loadConfig()

	logger, err := logging.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	client := api.NewClient(
		api.WithEndpoint(cfg.Endpoint),
		api.WithLogger(logger),
	)

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Asking the advisor")
		spin.start()
	}

	startTime := time.Now()
	answer, err := client.Ask(context.Background(), question)
	requestDuration := time.Since(startTime)

	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Request failed"))
		}
		return fmt.Errorf("request failed: %w", err)
	}
	if !rawOutput {
		spin.stopWithSuccess("Done")
	}

	// Verbose: show request timing
	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(os.Stderr, "[verbose] Request took %s\n", requestDuration.Round(time.Millisecond))
		if answer.Source != "" {
			fmt.Fprintf(os.Stderr, "[verbose] Answer source: %s\n", answer.Source)
		}
	}

	text := answer.Text

	// Raw output mode: output only the raw text
	if rawOutput {
		if outputFlag != "" {
			if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Print(text)
		return nil
	}

	// Decorated output mode (TTY)
	fmt.Fprintln(os.Stderr)

	// Copy to clipboard if enabled in config
	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorFailure).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(os.Stderr, warnMsg)
		} else {
			clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, clipMsg)
		}
	}

	// Output to file if specified
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Answer saved to %s", outputFlag),
		)
		fmt.Fprintln(os.Stderr, successMsg)
		return nil
	}

	// Get terminal width for proper formatting
	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	// Print advisor label (similar to chat TUI)
	label := botLabelStyle.Render("✦ Advisor")
	fmt.Println(label)

	// Render markdown for terminal output using user config
	renderOpts := render.LoadOptionsFromConfigWithWidth(contentWidth)
	rendered, err := render.Markdown(text, renderOpts)
	if err != nil {
		rendered = render.InlineText(text)
	}
	// Trim trailing newlines from glamour
	rendered = strings.TrimRight(rendered, "\n")

	bubble := botBubbleStyle.Width(bubbleWidth).Render(rendered)
	fmt.Println(bubble)

	// Source label is shown only for the recognized provenance values
	if models.NewBotMessage(text, answer.Source).DisplayableSource() {
		fmt.Println(sourceLabelStyle.Render("Source: " + answer.Source))
	}

	return nil
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorFailure)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	// Extract additional context from structured errors
	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	// Provide helpful hints based on error type
	switch {
	case apierrors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the advisor service is running and reachable"))
	case apierrors.IsParseError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The service responded with an unexpected payload"))
	}

	return sb.String()
}
