// Package window shows renders in a desktop window and maps keys to editor
// actions. Each edit triggers a fresh synchronous render on the next tick.
package window

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/viewer/editor"
)

const title = "Whitted Raytracer"

// keyBindings maps a key press to an editor action
var keyBindings = map[ebiten.Key]editor.Action{
	ebiten.KeyArrowLeft:    editor.OrbitLeft,
	ebiten.KeyArrowRight:   editor.OrbitRight,
	ebiten.KeyArrowUp:      editor.RaiseEye,
	ebiten.KeyArrowDown:    editor.LowerEye,
	ebiten.KeyW:            editor.ZoomIn,
	ebiten.KeyS:            editor.ZoomOut,
	ebiten.KeyPageUp:       editor.RaiseLookAt,
	ebiten.KeyPageDown:     editor.LowerLookAt,
	ebiten.KeyBracketLeft:  editor.NarrowFOV,
	ebiten.KeyBracketRight: editor.WidenFOV,
	ebiten.KeyEqual:        editor.DepthUp,
	ebiten.KeyKPAdd:        editor.DepthUp,
	ebiten.KeyMinus:        editor.DepthDown,
	ebiten.KeyKPSubtract:   editor.DepthDown,
	ebiten.KeyA:            editor.AmbientUp,
	ebiten.KeyZ:            editor.AmbientDown,
	ebiten.KeyP:            editor.TogglePlane,
	ebiten.KeyL:            editor.AddLight,
	ebiten.KeyK:            editor.RemoveLight,
	ebiten.KeyJ:            editor.NextLight,
	ebiten.KeyDigit1:       editor.LightLeft,
	ebiten.KeyDigit2:       editor.LightRight,
	ebiten.KeyDigit3:       editor.LightDown,
	ebiten.KeyDigit4:       editor.LightUp,
	ebiten.KeyDigit5:       editor.LightBack,
	ebiten.KeyDigit6:       editor.LightForward,
	ebiten.KeyN:            editor.AddBubble,
	ebiten.KeyDelete:       editor.RemoveObject,
	ebiten.KeyTab:          editor.NextObject,
	ebiten.KeyG:            editor.GrowObject,
	ebiten.KeyH:            editor.ShrinkObject,
	ebiten.KeyR:            editor.SpinObject,
	ebiten.KeyD:            editor.DiffuseUp,
	ebiten.KeyC:            editor.DiffuseDown,
	ebiten.KeyE:            editor.SpecularUp,
	ebiten.KeyQ:            editor.SpecularDown,
	ebiten.KeyT:            editor.RefractUp,
	ebiten.KeyB:            editor.RefractDown,
	ebiten.KeyI:            editor.RefractiveIndexUp,
	ebiten.KeyU:            editor.RefractiveIndexDown,
	ebiten.KeyO:            editor.ShininessUp,
	ebiten.KeyY:            editor.ShininessDown,
}

// Run opens a window of the framebuffer's size and blocks until it closes
func Run(ed *editor.Editor, fb *renderer.Framebuffer, r *renderer.Renderer, logger core.Logger) error {
	g := &game{
		editor:   ed,
		fb:       fb,
		renderer: r,
		logger:   logger,
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(fb.Width(), fb.Height())
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	editor   *editor.Editor
	fb       *renderer.Framebuffer
	renderer *renderer.Renderer
	logger   core.Logger

	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.editor.Apply(action)
		}
	}

	if !g.editor.Dirty() {
		return nil
	}

	g.fb.Clear()
	stats, err := g.renderer.Render(context.Background(), g.fb, g.editor.Camera, g.editor.Scene, g.editor.Depth)
	if err != nil {
		return err
	}
	g.editor.MarkRendered()

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.fb.Width(), g.fb.Height()))
	}
	g.fb.CopyTo(g.img)
	ebiten.SetWindowTitle(title + " - " + g.editor.Status())
	g.logger.Printf("Frame: %.0f pixels/s\n", stats.PixelsPerSecond())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.fb.Width(), g.fb.Height())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
