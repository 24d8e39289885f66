package export

// Style selects which visual layers an SVGExporter renders and what colors
// it uses for them, reproducing export_utils.h's StyleConfig presets as a
// small named table rather than a builder API.
type Style struct {
	Name string

	FillInside  bool
	FillOutside bool

	DrawDelaunayEdges bool
	DrawWrapEdges     bool
	DrawInputPoints   bool

	InsideColor  string
	OutsideColor string
	WrapColor    string
	PointColor   string
}

// defaultStyle mirrors StyleConfig::default_style(): every layer drawn, both
// face labels lightly tinted.
func defaultStyle() Style {
	return Style{
		Name:              "default",
		FillInside:        true,
		FillOutside:       true,
		DrawDelaunayEdges: true,
		DrawWrapEdges:     true,
		DrawInputPoints:   true,
		InsideColor:       "fill:rgb(200,220,255);fill-opacity:0.6",
		OutsideColor:      "fill:rgb(255,235,205);fill-opacity:0.4",
		WrapColor:         "stroke:rgb(200,30,30);stroke-width:2",
		PointColor:        "fill:rgb(20,20,20)",
	}
}

// cleanStyle mirrors StyleConfig::clean_style(): no face fill, no Delaunay
// edges, just input points and the extracted wrap — the presentation-ready
// preset.
func cleanStyle() Style {
	return Style{
		Name:              "clean",
		FillInside:        false,
		FillOutside:       false,
		DrawDelaunayEdges: false,
		DrawWrapEdges:     true,
		DrawInputPoints:   true,
		WrapColor:         "stroke:rgb(0,0,0);stroke-width:2",
		PointColor:        "fill:rgb(20,20,20)",
	}
}

// outsideFilledStyle mirrors StyleConfig::outside_filled_style(): only
// OUTSIDE faces filled solid, highlighting carved-away material.
func outsideFilledStyle() Style {
	return Style{
		Name:              "outside_filled",
		FillInside:        false,
		FillOutside:       true,
		DrawDelaunayEdges: true,
		DrawWrapEdges:     true,
		DrawInputPoints:   true,
		OutsideColor:      "fill:rgb(255,150,150);fill-opacity:0.8",
		WrapColor:         "stroke:rgb(30,30,200);stroke-width:2",
		PointColor:        "fill:rgb(20,20,20)",
	}
}

// StyleFor resolves a style tag (spec §6's --style values) to a Style,
// falling back to the default preset for an unrecognized name.
func StyleFor(name string) Style {
	switch name {
	case "clean":
		return cleanStyle()
	case "outside_filled":
		return outsideFilledStyle()
	default:
		return defaultStyle()
	}
}
