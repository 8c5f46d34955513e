package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/closetarchive/archivist/internal/engine"
)

// BatchProgress renders batch classification progress as a terminal bar.
type BatchProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	mu     sync.Mutex
}

// NewBatchProgress creates a progress renderer for total products.
func NewBatchProgress(writer io.Writer, total int) *BatchProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Classifying products...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	return &BatchProgress{writer: writer, bar: bar}
}

// Update is an engine.ProgressFunc. Only terminal phases advance the bar;
// the analyzing phase updates the description so the current title shows.
func (p *BatchProgress) Update(_, _ int, title string, phase engine.BatchPhase) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch phase {
	case engine.PhaseAnalyzing:
		p.bar.Describe(fmt.Sprintf("[cyan]%s[reset]", title))
	case engine.PhaseDone, engine.PhaseFailed:
		if err := p.bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
}
