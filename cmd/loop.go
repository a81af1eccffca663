package cmd

import (
	"log"
	"runtime"

	"github.com/ThatOtherAndrew/Scanline/internal/config"
	"github.com/ThatOtherAndrew/Scanline/internal/draw"
	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/opengl"
	"github.com/ThatOtherAndrew/Scanline/pkg/window"
)

func init() {
	runtime.LockOSThread()
}

type inputHandler interface {
	OnPointerDown(x, y float64)
	OnKeyDown(k models.Key)
}

// runWindow opens a window, builds the handler once GL is ready and feeds
// it input until the window is closed.
func runWindow(title string, settings *config.Settings, build func(surface *draw.Surface) inputHandler) {
	win, err := window.New(title, settings.Width, settings.Height)
	if err != nil {
		log.Fatal("Failed to create window:", err)
	}
	defer win.Destroy()

	state := &models.GLState{}
	gl := opengl.New(state)
	if err := gl.InitGL(); err != nil {
		log.Fatal("Failed to initialize OpenGL:", err)
	}
	defer gl.Destroy()

	surface := draw.New(state, win)
	handler := build(surface)
	background := settings.BackgroundColor()

	for !win.ShouldClose() {
		win.PollEvents()
		for _, ev := range win.Events() {
			switch ev.Kind {
			case window.EventPointerDown:
				handler.OnPointerDown(ev.X, ev.Y)
			case window.EventKeyDown:
				handler.OnKeyDown(ev.Key)
			}
		}

		surface.Draw(background)
		win.SwapBuffers()
	}
}
