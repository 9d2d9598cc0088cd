package renderer

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/scene"
)

// bandHeight is the number of rows a worker claims at a time
const bandHeight = 16

// Logger receives per-frame progress output
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// Renderer renders full frames of the scene. Pixels are independent, so a
// frame is split into row bands fed to a worker per CPU; each band writes
// to a disjoint region of the shared image.
type Renderer struct {
	camera     Camera
	numWorkers int
}

// NewRenderer creates a renderer with the given camera. numWorkers <= 0
// uses the CPU count.
func NewRenderer(camera Camera, numWorkers int) *Renderer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Renderer{camera: camera, numWorkers: numWorkers}
}

// bandTask is a half-open row range [yMin, yMax) for one worker to render
type bandTask struct {
	yMin, yMax int
}

// RenderFrame renders one frame from an immutable input snapshot and
// returns the image with per-pixel alpha plus frame statistics.
func (r *Renderer) RenderFrame(inputs core.FrameInputs) (*image.RGBA, FrameStats) {
	start := time.Now()

	s := scene.New(inputs)
	img := image.NewRGBA(image.Rect(0, 0, inputs.Width, inputs.Height))

	numBands := (inputs.Height + bandHeight - 1) / bandHeight
	tasks := make(chan bandTask, numBands)
	results := make(chan bandStats, numBands)

	var wg sync.WaitGroup
	for w := 0; w < r.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				results <- r.renderBand(s, img, inputs, task)
			}
		}()
	}

	for y := 0; y < inputs.Height; y += bandHeight {
		tasks <- bandTask{yMin: y, yMax: min(y+bandHeight, inputs.Height)}
	}
	close(tasks)
	wg.Wait()
	close(results)

	var stats FrameStats
	for bs := range results {
		stats.merge(bs)
	}
	stats.Duration = time.Since(start)
	return img, stats
}

// renderBand renders the rows of a single band into the shared image
func (r *Renderer) renderBand(s *scene.Scene, img *image.RGBA, inputs core.FrameInputs, task bandTask) bandStats {
	var bs bandStats

	for py := task.yMin; py < task.yMax; py++ {
		for px := 0; px < inputs.Width; px++ {
			ray := r.camera.PixelRay(px, py, inputs.Width, inputs.Height)
			c, alpha := RenderPixel(s, ray)

			if alpha == 0 {
				bs.misses++
				img.SetRGBA(px, py, color.RGBA{})
				continue
			}

			bs.hits++
			img.SetRGBA(px, py, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}

	return bs
}
