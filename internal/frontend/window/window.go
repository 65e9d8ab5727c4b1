//go:build !headless

package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// keyMap maps the hexadecimal keypad to the left block of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keyMap = [16]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.KeyDigit1,
	0x2: ebiten.KeyDigit2,
	0x3: ebiten.KeyDigit3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.Key4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

type game struct {
	ctx     context.Context
	logger  *log.Logger
	machine *machine.Machine
	image   *ebiten.Image
	rgba    []byte
}

// Run opens the window and executes one machine frame per window update
// until the window is closed, the context is canceled or the machine fails.
func Run(ctx context.Context, logger *log.Logger, m *machine.Machine, opts Options) error {
	ebiten.SetWindowSize(display.Width*opts.Scale, display.Height*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.FrameRate)

	g := &game{
		ctx:     ctx,
		logger:  logger,
		machine: m,
		rgba:    make([]byte, display.Width*display.Height*4),
	}
	renderRGBA(g.rgba, m.Display().Pixels())

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update is called by ebiten once per tick.
func (g *game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("Window closed by user")
		return ebiten.Termination
	}

	keys := g.machine.Keys()
	for key, ebitenKey := range keyMap {
		keys.Set(uint8(key), ebiten.IsKeyPressed(ebitenKey))
	}

	return runFrame(g.machine, g.rgba)
}

// Draw is called by ebiten once per rendered frame.
func (g *game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(display.Width, display.Height)
	}
	g.image.WritePixels(g.rgba)
	screen.DrawImage(g.image, nil)
}

// Layout returns the logical screen size, ebiten scales it to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}
