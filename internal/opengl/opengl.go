package opengl

import (
	"fmt"

	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type App struct {
	state *models.GLState
}

func New(state *models.GLState) *App {
	return &App{state: state}
}

// InitGL loads GL entry points for the current context and builds the
// point program with its vertex array. Vertices are tightly packed vec2.
func (a *App) InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init OpenGL: %w", err)
	}

	program, err := shaders.LinkProgram(shaders.PointVertex, shaders.PointFragment)
	if err != nil {
		return err
	}
	a.state.Program = program

	gl.GenVertexArrays(1, &a.state.Vao)
	gl.GenBuffers(1, &a.state.Vbo)

	gl.BindVertexArray(a.state.Vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.state.Vbo)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return nil
}

// Destroy releases the objects created by InitGL.
func (a *App) Destroy() {
	gl.DeleteBuffers(1, &a.state.Vbo)
	gl.DeleteVertexArrays(1, &a.state.Vao)
	gl.DeleteProgram(a.state.Program)
}
