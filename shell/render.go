package shell

import (
	"strings"

	"github.com/beka-birhanu/grid-maze/game"
)

// Render draws one frame: compass, message, the maze with the player marked
// by its facing arrow, and the controls legend.
func Render(obs game.Observation, message string) string {
	var b strings.Builder
	b.WriteString(Compass(obs.PlayerDir))
	b.WriteString("\n")
	b.WriteString(message)
	b.WriteString("\n\n")

	for y := 0; y < obs.Height; y++ {
		for x := 0; x < obs.Width; x++ {
			if x == obs.PlayerX && y == obs.PlayerY {
				b.WriteByte(PlayerIcon(obs.PlayerDir))
				continue
			}
			b.WriteByte(byte(obs.Cell(x, y)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ControlsText)
	b.WriteString("\n")
	return b.String()
}
