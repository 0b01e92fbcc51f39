//go:build ebiten

package app

import (
	"bytes"
	"fmt"
	"time"

	"cloud-gen/internal/cloud"
	"cloud-gen/internal/render"
	"cloud-gen/internal/sheet"
	"cloud-gen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game shows one cloud at a time and regenerates it on demand.
type Game struct {
	params  cloud.Params
	painter *render.CloudPainter

	scale    float64
	seed     int64
	index    int
	showHelp bool
	info     string
}

// New constructs a Game and renders its first cloud.
func New(params cloud.Params, scale float64, seed int64) *Game {
	g := &Game{
		params:   params,
		painter:  render.NewCloudPainter(params.Size, params.Size),
		scale:    scale,
		seed:     seed,
		showHelp: true,
	}
	g.regenerate()
	return g
}

// Reset starts over from the first cloud of the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.index = 0
	g.regenerate()
}

func (g *Game) regenerate() {
	start := time.Now()
	c := cloud.Generate(g.params, core.NewStream(g.seed, uint64(g.index)))
	img := c.Render(nil)
	g.painter.Upload(img, sheet.Sky)

	stats := cloud.Measure(img)
	var b bytes.Buffer
	fmt.Fprintf(&b, "seed %d  cloud %d  %s\n", g.seed, g.index, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(&b, "coverage %.1f%%  mean alpha %.1f  max %d\n", stats.Coverage()*100, stats.MeanAlpha, stats.MaxAlpha)
	g.params.Snapshot().Write(&b)
	g.info = b.String()
}

// Update handles key presses.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.index++
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	return nil
}

// Draw renders the current cloud.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	if g.showHelp {
		ebitenutil.DebugPrint(screen, g.info+"\nN next  R redraw  S new seed  H help  Q quit")
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return int(float64(w) * g.scale), int(float64(h) * g.scale)
}
