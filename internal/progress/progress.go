package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/coryzibell/speedrun/internal/speed"
)

// Minimum wall-clock time between redraws. Chunk arrival on a fast link
// can exceed thousands per second, so the display refreshes on elapsed
// time, not on every chunk.
const refreshInterval = 100 * time.Millisecond

var (
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	speedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Tracker renders a bounded bar (total size known) or an indeterminate
// spinner (unknown) for a single transfer, with instantaneous speed
// computed over the bytes received since the previous redraw. The cadence
// is checked inline at each chunk; there is no background display loop.
type Tracker struct {
	total      int64
	current    int64
	unit       speed.Unit
	out        io.Writer
	lastUpdate time.Time
	lastBytes  int64
	frame      int
	rendered   bool
}

func NewTracker(total int64, unit speed.Unit, out io.Writer) *Tracker {
	if out == nil {
		out = os.Stdout
	}
	return &Tracker{
		total:      total,
		unit:       unit,
		out:        out,
		lastUpdate: time.Now(),
	}
}

// Add records n freshly received bytes and redraws if the refresh
// interval has elapsed since the last draw.
func (t *Tracker) Add(n int64) {
	t.current += n
	now := time.Now()
	elapsed := now.Sub(t.lastUpdate)
	if elapsed < refreshInterval {
		return
	}
	rate := float64(t.current-t.lastBytes) / elapsed.Seconds()
	t.lastUpdate = now
	t.lastBytes = t.current
	t.draw(rate)
}

// Finish clears the transient display so final results print on a clean line.
func (t *Tracker) Finish() {
	if t.rendered {
		fmt.Fprint(t.out, "\r\033[K")
	}
}

func (t *Tracker) draw(rate float64) {
	t.rendered = true
	rendered := speedStyle.Render(speed.Format(rate, t.unit))
	if t.total > 0 {
		fmt.Fprintf(t.out, "\r\033[K%s %s/%s %s",
			Bar(t.current, t.total, barWidth()),
			speed.FormatBytes(uint64(t.current)),
			speed.FormatBytes(uint64(t.total)),
			rendered)
		return
	}
	frame := spinnerFrames[t.frame%len(spinnerFrames)]
	t.frame++
	fmt.Fprintf(t.out, "\r\033[K%s %s %s",
		spinnerStyle.Render(frame),
		speed.FormatBytes(uint64(t.current)),
		rendered)
}

// Bar builds a progress bar string of the given width.
func Bar(current, total int64, width int) string {
	if width <= 0 {
		width = 30
	}
	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	percent := float64(current) / float64(total)
	filled := max(0, min(int(percent*float64(width)), width))
	bar := "•"
	bar += strings.Repeat("━", filled)
	if filled < width {
		bar += strings.Repeat(" ", width-filled)
	}
	bar += "•"
	return barStyle.Render(fmt.Sprintf("%s %.1f%%", bar, percent*100))
}

func barWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 30
	}
	if width > 90 {
		return 40
	}
	return width / 3
}
