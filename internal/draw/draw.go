package draw

import (
	"image/color"

	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/pkg/window"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Surface draws submitted points into a window. The last batch is kept on
// the GPU and redrawn every frame because the window is double-buffered.
type Surface struct {
	state  *models.GLState
	window *window.Window

	count     int32
	color     color.RGBA
	pointSize float32
	vertices  []float32
}

func New(state *models.GLState, win *window.Window) *Surface {
	return &Surface{state: state, window: win}
}

func (s *Surface) Size() (int, int) {
	return s.window.GetSize()
}

func (s *Surface) ClearFrame() {
	s.count = 0
}

func (s *Surface) SubmitPoints(points []models.NormalizedPoint, c color.RGBA, pointSize float32) {
	s.vertices = s.vertices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, p.X, p.Y)
	}
	s.count = int32(len(points))
	s.color = c
	s.pointSize = pointSize
	if len(s.vertices) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, s.state.Vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.vertices)*4, gl.Ptr(s.vertices), gl.DYNAMIC_DRAW)
}

// Draw clears to bg and draws the current batch.
func (s *Surface) Draw(bg color.RGBA) {
	fbWidth, fbHeight := s.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	gl.ClearColor(channel(bg.R), channel(bg.G), channel(bg.B), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if s.count == 0 {
		return
	}

	gl.UseProgram(s.state.Program)
	colorLoc := gl.GetUniformLocation(s.state.Program, gl.Str("color\x00"))
	gl.Uniform3f(colorLoc, channel(s.color.R), channel(s.color.G), channel(s.color.B))
	sizeLoc := gl.GetUniformLocation(s.state.Program, gl.Str("pointSize\x00"))
	gl.Uniform1f(sizeLoc, s.pointSize*s.window.ContentScale())

	gl.BindVertexArray(s.state.Vao)
	gl.DrawArrays(gl.POINTS, 0, s.count)
	gl.BindVertexArray(0)
}

func channel(v uint8) float32 {
	return float32(v) / 255
}
