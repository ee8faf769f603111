// Command batchdemo draws sprites, shapes and lines through batches and
// saves the result.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/recording"
	_ "github.com/gogpu/batch/render" // registers the "raster" target
)

// pngSaver is implemented by targets that can write their pixels to disk.
type pngSaver interface {
	SavePNG(path string) error
}

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "batch.png", "output file")
		target  = flag.String("target", "raster", "render target: one of the registered targets")
		sprites = flag.Int("sprites", 400, "number of sprites")
		verbose = flag.Bool("v", false, "log every batch cycle")
	)
	flag.Parse()

	if *verbose {
		batch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rt, err := recording.NewTarget(*target, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create target: %v (available: %v)", err, recording.Targets())
	}

	b := batch.NewBatch(batch.WithCapacity(*sprites * 6))

	drawSprites(b, rt, *sprites, *width, *height)
	drawShapes(b, rt, *width, *height)
	drawWaves(b, rt, *width, *height)

	switch t := rt.(type) {
	case pngSaver:
		if err := t.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
	case *recording.Recorder:
		rec := t.FinishRecording()
		log.Printf("Recorded %d draw calls with %d vertices\n", rec.Len(), rec.VertexCount())
	default:
		log.Printf("Target %q cannot be saved\n", *target)
	}
}

// drawSprites scatters textured sprites; they all share one texture and
// reach the target as a single draw call.
func drawSprites(b *batch.Batch, rt batch.RenderTarget, n, w, h int) {
	tex := batch.NewImageTexture(checker(16, 4))
	for i := range n {
		t := float64(i) / float64(max(n, 1))
		s := batch.NewSprite(tex)
		s.SetOrigin(batch.Pt(8, 8))
		s.SetPosition(batch.Pt(
			float64(w)/2+math.Cos(t*math.Pi*12)*t*float64(w)*0.45,
			float64(h)/2+math.Sin(t*math.Pi*12)*t*float64(h)*0.45,
		))
		s.SetRotation(t * math.Pi * 4)
		s.SetColor(batch.RGB(1, t, 1-t))
		s.Draw(b, batch.DefaultRenderStates())
	}
	flush(b, rt)
}

// drawShapes draws untextured circles and rectangles with outlines.
func drawShapes(b *batch.Batch, rt batch.RenderTarget, w, h int) {
	for i := range 6 {
		c := batch.NewCircleShape(30, 32)
		c.SetFillColor(batch.RGBA2(0.3, 0.6, 1, 0.6))
		c.SetOutlineColor(batch.White)
		c.SetOutlineThickness(3)
		c.SetPosition(batch.Pt(40+float64(i)*float64(w-80)/6, 20))
		c.Draw(b, batch.DefaultRenderStates())
	}

	r := batch.NewRectangleShape(batch.Pt(120, 60))
	r.SetFillColor(batch.RGBA2(1, 0.8, 0, 0.8))
	r.SetOutlineColor(batch.Black)
	r.SetOutlineThickness(-4)
	r.SetOrigin(batch.Pt(60, 30))
	r.SetPosition(batch.Pt(float64(w)/2, float64(h)-60))
	r.SetRotation(math.Pi / 12)
	r.Draw(b, batch.DefaultRenderStates())

	flush(b, rt)
}

// drawWaves draws additive line strips; each strip stays separate in the batch.
func drawWaves(b *batch.Batch, rt batch.RenderTarget, w, h int) {
	states := batch.DefaultRenderStates().WithBlendMode(batch.BlendAdd)
	for k := range 3 {
		strip := batch.NewVertexArray(batch.LineStrip, 0)
		col := batch.RGBA2(0.2*float64(k), 0.3, 0.5, 0.7)
		for x := 0; x <= w; x += 8 {
			y := float64(h)/2 + math.Sin(float64(x)/60+float64(k))*float64(h)/6
			strip.Append(batch.Vertex{Position: batch.Pt(float64(x), y), Color: col})
		}
		strip.Draw(b, states)
	}
	flush(b, rt)
}

// flush replays the batch onto the target and starts a new cycle.
func flush(b *batch.Batch, rt batch.RenderTarget) {
	b.Draw(rt, batch.DefaultRenderStates())
	b.Reset()
}

// checker returns a size x size checkerboard with cells of the given size.
func checker(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if (x/cell+y/cell)%2 == 1 {
				c = color.NRGBA{R: 80, G: 80, B: 80, A: 200}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
