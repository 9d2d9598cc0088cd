package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/input"
	"github.com/jtay/glowcube/pkg/renderer"
)

// game drives the interactive viewer: pointer drags rotate the body,
// G/R light the indicator LED, space recenters.
type game struct {
	renderer *renderer.Renderer
	tracker  input.PointerTracker
	light    input.StatusLight
	logger   renderer.Logger

	width, height int // internal render resolution
	scale         int // window pixels per rendered pixel

	img    *image.RGBA
	fbImg  *ebiten.Image
	frames int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.tracker.Update(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	now := time.Now()
	if ebiten.IsKeyPressed(ebiten.KeyG) {
		g.light.Set(input.StatusSuccess, now)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.light.Set(input.StatusError, now)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.tracker.Reset()
		g.light.Set(input.StatusIdle, now)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	pitch, yaw := g.tracker.Angles()
	inputs := core.FrameInputs{
		Width:    g.width,
		Height:   g.height,
		Pitch:    pitch,
		Yaw:      yaw,
		LedColor: g.light.Color(time.Now()),
	}

	img, stats := g.renderer.RenderFrame(inputs)
	g.img = img

	if g.fbImg == nil || g.fbImg.Bounds().Dx() != g.width || g.fbImg.Bounds().Dy() != g.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(g.width, g.height)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	g.frames++
	if g.frames%60 == 0 {
		g.logger.Printf("frame %d: %v, %.0f%% coverage\n", g.frames, stats.Duration, 100*stats.Coverage())
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Window resizes change the render resolution; keep it a fraction of
	// the window so frames stay cheap enough for interactive rates
	g.width = max(1, outsideWidth/g.scale)
	g.height = max(1, outsideHeight/g.scale)
	return g.width, g.height
}

func main() {
	width := flag.Int("width", 640, "Window width in pixels")
	height := flag.Int("height", 480, "Window height in pixels")
	scale := flag.Int("scale", 2, "Window pixels per rendered pixel")
	camera := flag.Float64("camera", renderer.DefaultCameraDistance, "Camera distance from the origin")
	workers := flag.Int("workers", 0, "Render workers (0 = CPU count)")
	flag.Parse()

	if *scale < 1 {
		*scale = 1
	}

	g := &game{
		renderer: renderer.NewRenderer(renderer.NewCamera(*camera), *workers),
		logger:   renderer.NewDefaultLogger(),
		scale:    *scale,
		width:    *width / *scale,
		height:   *height / *scale,
	}

	ebiten.SetWindowTitle(fmt.Sprintf("glowcube (camera %.2f)", *camera))
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatalf("viewer error: %v", err)
	}
}
