package export

import (
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/triangulation"
)

// canvasMargin is the pixel border left around the rendered scene.
const canvasMargin = 20

// canvasSpan is the pixel width/height the scene's bounding box is scaled
// into, before adding canvasMargin on every side.
const canvasSpan = 760

// SVGExporter renders a triangulation/wrap snapshot with github.com/ajstarks/svgo,
// grounded on export_utils.h's alpha_wrap_2_exporter draw_face/draw_line/
// draw_polygon methods.
type SVGExporter struct {
	style Style
}

// NewSVGExporter returns an exporter using style for every Write call.
func NewSVGExporter(style Style) *SVGExporter {
	return &SVGExporter{style: style}
}

// transform maps scene coordinates onto a fixed-size pixel canvas, flipping Y
// since SVG's origin is top-left while the geometry's is mathematical.
type transform struct {
	bounds geom2.Box2
	scale  float64
}

func newTransform(bounds geom2.Box2) transform {
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	span := w
	if h > span {
		span = h
	}
	if span <= 0 {
		span = 1
	}
	return transform{bounds: bounds, scale: float64(canvasSpan) / span}
}

func (t transform) point(p geom2.Point) (int, int) {
	x := (p.X - t.bounds.Min.X) * t.scale
	y := (p.Y - t.bounds.Min.Y) * t.scale
	return canvasMargin + int(x), canvasMargin + canvasSpan - int(y)
}

// WriteSVG renders tri's finite faces (colored per e.style's label fill),
// optionally the input points and the extracted wrap edges, to path.
func (e *SVGExporter) WriteSVG(path string, tri *triangulation.Triangulation, points []geom2.Point, wrapEdges []geom2.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	bounds := geom2.BoxOf(points)
	t := newTransform(bounds)

	canvas := svg.New(f)
	side := canvasSpan + 2*canvasMargin
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:white")

	if e.style.FillInside || e.style.FillOutside || e.style.DrawDelaunayEdges {
		e.drawFaces(canvas, tri, t)
	}
	if e.style.DrawWrapEdges {
		e.drawWrapEdges(canvas, wrapEdges, t)
	}
	if e.style.DrawInputPoints {
		e.drawPoints(canvas, points, t)
	}

	canvas.End()
	return nil
}

func (e *SVGExporter) drawFaces(canvas *svg.SVG, tri *triangulation.Triangulation, t transform) {
	for _, f := range tri.FiniteFaces() {
		triGeo := tri.Triangle(f)
		xs, ys := e.polygonCoords(triGeo, t)

		fillStyle, fill := e.faceFillStyle(tri.Label(f))
		if fill {
			canvas.Polygon(xs, ys, fillStyle)
		} else if e.style.DrawDelaunayEdges {
			canvas.Polygon(xs, ys, "fill:none;stroke:rgb(180,180,180);stroke-width:0.5")
		}
	}
}

func (e *SVGExporter) faceFillStyle(label triangulation.Label) (string, bool) {
	switch {
	case label == triangulation.Inside && e.style.FillInside:
		return e.style.InsideColor, true
	case label == triangulation.Outside && e.style.FillOutside:
		return e.style.OutsideColor, true
	default:
		return "", false
	}
}

func (e *SVGExporter) polygonCoords(tri geom2.Triangle, t transform) ([]int, []int) {
	xs := make([]int, 3)
	ys := make([]int, 3)
	for i, p := range [3]geom2.Point{tri.A, tri.B, tri.C} {
		xs[i], ys[i] = t.point(p)
	}
	return xs, ys
}

func (e *SVGExporter) drawWrapEdges(canvas *svg.SVG, edges []geom2.Segment, t transform) {
	for _, seg := range edges {
		x1, y1 := t.point(seg.A)
		x2, y2 := t.point(seg.B)
		canvas.Line(x1, y1, x2, y2, e.style.WrapColor)
	}
}

const pointRadius = 2

func (e *SVGExporter) drawPoints(canvas *svg.SVG, points []geom2.Point, t transform) {
	for _, p := range points {
		x, y := t.point(p)
		canvas.Circle(x, y, pointRadius, e.style.PointColor)
	}
}
