package banner

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var wordmark = []string{
	`                          _                 `,
	` ___ _ __   ___  ___  __| |_ __ _   _ _ __  `,
	`/ __| '_ \ / _ \/ _ \/ _` + "`" + ` | '__| | | | '_ \ `,
	`\__ \ |_) |  __/  __/ (_| | |  | |_| | | | |`,
	`|___/ .__/ \___|\___|\__,_|_|   \__,_|_| |_|`,
	`    |_|                                     `,
}

type rgb struct{ r, g, b uint8 }

// Gradient endpoint pairs; one is picked per render.
var ramps = [][2]rgb{
	{{255, 0, 128}, {0, 128, 255}},
	{{255, 128, 0}, {128, 0, 255}},
	{{0, 255, 128}, {0, 64, 255}},
	{{255, 64, 64}, {255, 255, 0}},
	{{64, 224, 208}, {238, 130, 238}},
	{{255, 0, 255}, {0, 255, 255}},
}

// Render builds the startup banner with a horizontal color gradient.
// Call once at startup and pass the string down; there is no cached
// global state.
func Render(version string) string {
	ramp := ramps[rand.IntN(len(ramps))]
	var sb strings.Builder
	width := 0
	for _, line := range wordmark {
		if len(line) > width {
			width = len(line)
		}
	}
	for _, line := range wordmark {
		for i, ch := range line {
			if ch == ' ' {
				sb.WriteRune(ch)
				continue
			}
			t := float64(i) / float64(width)
			color := lerp(ramp[0], ramp[1], t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color.r, color.g, color.b)))
			sb.WriteString(style.Render(string(ch)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf("speedrun v%s\n", version))
	return sb.String()
}

func lerp(from, to rgb, t float64) rgb {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return rgb{mix(from.r, to.r), mix(from.g, to.g), mix(from.b, to.b)}
}
