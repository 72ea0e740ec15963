package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// keyBindings maps keys to actions. A key only triggers on the tick it
// goes down.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeySpace:          core.ActionJump,
	ebiten.KeyArrowUp:        core.ActionJump,
	ebiten.KeyW:              core.ActionJump,
	ebiten.KeyP:              core.ActionPause,
	ebiten.KeyEqual:          core.ActionVolumeUp,
	ebiten.KeyNumpadAdd:      core.ActionVolumeUp,
	ebiten.KeyMinus:          core.ActionVolumeDown,
	ebiten.KeyNumpadSubtract: core.ActionVolumeDown,
	ebiten.KeyM:              core.ActionMute,
	ebiten.KeyQ:              core.ActionQuit,
	ebiten.KeyEscape:         core.ActionQuit,
}

// keyboard polls Ebitengine's input state. It satisfies flappy.InputSource.
type keyboard struct{}

// Poll returns the actions whose keys went down this tick.
func (keyboard) Poll() core.InputFrame {
	frame := core.NewInputFrame()
	for k, a := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			frame.Set(a)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionJump)
	}
	return frame
}
