package tilestack

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget draws the current FPS and TPS in the top-left corner. The text
// is redrawn every fpsRefreshTicks ticks, not every frame.
type fpsWidget struct {
	img   *ebiten.Image
	ticks int
}

const fpsRefreshTicks = 30

// newFPSWidget creates the overlay. 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
func newFPSWidget() *fpsWidget {
	return &fpsWidget{img: ebiten.NewImage(100, 32)}
}

// tick refreshes the text when due.
func (w *fpsWidget) tick() {
	due := w.ticks%fpsRefreshTicks == 0
	w.ticks++
	if !due {
		return
	}
	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw implements Drawable.
func (w *fpsWidget) Draw(dst *ebiten.Image) {
	dst.DrawImage(w.img, nil)
}
