// 17 Oct 2026

package cluster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	maxLabelled = 500   // more leaves than this and we do not write names
	maxLeaves   = 10000 // more than this and the picture is silly
	treeWidth   = 600   // pixels for the tree itself
	labelWidth  = 220
	margin      = 10
	fontSize    = 10
)

// Plot has what we need to draw a dendrogram.
type Plot struct {
	Links  []Link
	Labels []string // one per leaf, in input order
}

func hline(img draw.Image, x0, x1, y int, c color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	draw.Draw(img, image.Rect(x0, y, x1+1, y+1), image.NewUniform(c), image.Point{}, draw.Src)
}

func vline(img draw.Image, x, y0, y1 int, c color.Color) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	draw.Draw(img, image.Rect(x, y0, x+1, y1+1), image.NewUniform(c), image.Point{}, draw.Src)
}

// Draw writes a png of the tree, root on the left and leaves down the
// right hand side in LeafOrder.
func (p *Plot) Draw(w io.Writer) error {
	n := len(p.Links) + 1
	if len(p.Labels) != n {
		return fmt.Errorf("%d labels for %d leaves", len(p.Labels), n)
	}
	if n > maxLeaves {
		return fmt.Errorf("%d leaves is too many to draw, limit %d", n, maxLeaves)
	}
	labelled := n <= maxLabelled
	spacing := 2
	if labelled {
		spacing = fontSize + 4
	}
	width := 2*margin + treeWidth + labelWidth
	height := 2*margin + n*spacing
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	maxH := 0.0
	if len(p.Links) > 0 {
		maxH = p.Links[len(p.Links)-1].Dist
	}
	xOf := func(h float64) int {
		if maxH <= 0 {
			return margin + treeWidth
		}
		return margin + int(float64(treeWidth)*(1-h/maxH))
	}

	// y position of every node, leaves first
	ypos := make([]int, 2*n-1)
	order := LeafOrder(p.Links, n)
	for i, leaf := range order {
		ypos[leaf] = margin + i*spacing + spacing/2
	}
	height0 := func(node int) float64 {
		if node < n {
			return 0
		}
		return p.Links[node-n].Dist
	}
	for i, l := range p.Links {
		x := xOf(l.Dist)
		ya, yb := ypos[l.A], ypos[l.B]
		ypos[n+i] = (ya + yb) / 2
		vline(img, x, ya, yb, color.Black)
		hline(img, x, xOf(height0(l.A)), ya, color.Black)
		hline(img, x, xOf(height0(l.B)), yb, color.Black)
	}
	if n == 1 {
		hline(img, margin, margin+treeWidth, ypos[0], color.Black)
	}

	if labelled {
		if err := p.drawLabels(img, order, ypos); err != nil {
			return err
		}
	}
	return png.Encode(w, img)
}

// drawLabels writes the leaf names just to the right of the tree.
func (p *Plot) drawLabels(img draw.Image, order, ypos []int) error {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	x := margin + treeWidth + 4
	for _, leaf := range order {
		pt := freetype.Pt(x, ypos[leaf]+fontSize/3)
		if _, err := c.DrawString(p.Labels[leaf], pt); err != nil {
			return fmt.Errorf("drawing label %s: %w", p.Labels[leaf], err)
		}
	}
	return nil
}
