package scatter

// Options holds the per-call parameters of a render operation.
// The zero value is not useful; start from DefaultOptions.
//
// Options is read-only to the renderer and can be reused across calls.
type Options struct {
	// Width of the output image in pixels.
	Width int
	// Height of the output image in pixels.
	Height int
	// MarkerRadius is the marker radius in pixels. Radius 0 paints a
	// single pixel per sample.
	MarkerRadius int
	// AutoRange derives the axis ranges from the data when set.
	AutoRange bool
	// Explicit axis ranges, used only when AutoRange is false.
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultOptions returns the default render parameters:
// 800x600 pixels, marker radius 5, automatic axis ranges.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		MarkerRadius: 5,
		AutoRange:    true,
		XMin:         0.0,
		XMax:         1.0,
		YMin:         0.0,
		YMax:         1.0,
	}
}

// PlotterOption configures a Plotter during creation.
// Use functional options to customize plot styling.
//
// Example:
//
//	// Default style
//	p := scatter.New()
//
//	// Red markers, no grid mesh
//	p := scatter.New(
//	    scatter.WithMarkerColor(scatter.Red),
//	    scatter.WithMesh(false),
//	)
type PlotterOption func(*style)

// style holds the stable visual configuration of a Plotter.
type style struct {
	background  RGBA
	markerColor RGBA
	frameColor  RGBA
	gridColor   RGBA
	labelColor  RGBA

	margin     int // outer margin on every edge
	xLabelArea int // reserved strip below the plot area for x tick labels
	yLabelArea int // reserved strip left of the plot area for y tick labels

	mesh        bool // frame, grid lines, ticks and tick labels
	fontSize    float64
	faceData    []byte // TTF/OTF bytes; nil selects the embedded default font
	targetTicks int
}

// defaultStyle returns the default plot style: white background, blue
// markers, black frame and labels, light gray grid.
func defaultStyle() style {
	return style{
		background:  White,
		markerColor: Blue,
		frameColor:  Black,
		gridColor:   LightGray,
		labelColor:  Black,
		margin:      10,
		xLabelArea:  40,
		yLabelArea:  50,
		mesh:        true,
		fontSize:    14,
		targetTicks: 6,
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c RGBA) PlotterOption {
	return func(s *style) {
		s.background = c
	}
}

// WithMarkerColor sets the marker fill color.
func WithMarkerColor(c RGBA) PlotterOption {
	return func(s *style) {
		s.markerColor = c
	}
}

// WithFrameColor sets the color of the plot frame and tick marks.
func WithFrameColor(c RGBA) PlotterOption {
	return func(s *style) {
		s.frameColor = c
	}
}

// WithGridColor sets the color of the grid mesh lines.
func WithGridColor(c RGBA) PlotterOption {
	return func(s *style) {
		s.gridColor = c
	}
}

// WithLabelColor sets the color of the tick labels.
func WithLabelColor(c RGBA) PlotterOption {
	return func(s *style) {
		s.labelColor = c
	}
}

// WithMesh enables or disables the axis mesh (frame, grid lines, tick
// marks and tick labels). When disabled, the label areas collapse and the
// plot area extends to the outer margin.
func WithMesh(enabled bool) PlotterOption {
	return func(s *style) {
		s.mesh = enabled
		if !enabled {
			s.xLabelArea = 0
			s.yLabelArea = 0
		}
	}
}

// WithMargins sets the outer margin and the label area sizes in pixels.
func WithMargins(margin, xLabelArea, yLabelArea int) PlotterOption {
	return func(s *style) {
		s.margin = margin
		s.xLabelArea = xLabelArea
		s.yLabelArea = yLabelArea
	}
}

// WithFontSize sets the tick label font size in pixels.
func WithFontSize(size float64) PlotterOption {
	return func(s *style) {
		s.fontSize = size
	}
}

// WithFont sets the TTF/OTF font data used for tick labels.
// The default is the embedded Go Regular face.
func WithFont(data []byte) PlotterOption {
	return func(s *style) {
		s.faceData = data
	}
}
