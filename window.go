package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/samuelyuan/go-tabletop/config"
	"github.com/samuelyuan/go-tabletop/input"
	"github.com/samuelyuan/go-tabletop/render"
	"github.com/samuelyuan/go-tabletop/scene"
)

// WindowCreationError is returned when glfw cannot be initialized or refuses
// to open a window with a 4.1 core context.
type WindowCreationError struct {
	Err error
}

func (e *WindowCreationError) Error() string {
	return fmt.Sprintf("could not create window: %v", e.Err)
}

func (e *WindowCreationError) Unwrap() error {
	return e.Err
}

// GraphicsContextInitError is returned when the GL function pointers cannot
// be loaded for the window's context.
type GraphicsContextInitError struct {
	Err error
}

func (e *GraphicsContextInitError) Error() string {
	return fmt.Sprintf("could not initialize OpenGL: %v", e.Err)
}

func (e *GraphicsContextInitError) Unwrap() error {
	return e.Err
}

type WindowHandler struct {
	glfwWindow   *glfw.Window
	inputHandler *InputHandler
}

func NewWindowHandler(cfg config.Window) (*WindowHandler, error) {
	if err := glfw.Init(); err != nil {
		return nil, &WindowCreationError{Err: err}
	}

	// Initialize and create window
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfwWindow, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &WindowCreationError{Err: err}
	}
	glfwWindow.MakeContextCurrent()
	glfw.SwapInterval(1)

	return &WindowHandler{
		glfwWindow:   glfwWindow,
		inputHandler: NewInputHandler(glfwWindow),
	}, nil
}

// attach routes the window callbacks to the scene state. It must run after
// the GL context is initialized since the resize callback sets the viewport.
func (windowHandler *WindowHandler) attach(state *scene.State, controller *input.Controller) {
	window := windowHandler.glfwWindow

	// Check for resize
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		render.Viewport(width, height)
		state.Camera.SetViewport(width, height)
	})
	width, height := window.GetFramebufferSize()
	render.Viewport(width, height)
	state.Camera.SetViewport(width, height)

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(func(w *glfw.Window, xpos float64, ypos float64) {
		controller.MouseMoved(state, xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff float64, yoff float64) {
		controller.Scrolled(state, yoff)
	})
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			controller.ResetMouse()
		} else {
			w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
	})
}

func (windowHandler *WindowHandler) endFrame() {
	windowHandler.glfwWindow.SwapBuffers()

	// Window events for keyboard and mouse
	glfw.PollEvents()
}

func (windowHandler *WindowHandler) shouldClose() bool {
	return windowHandler.glfwWindow.ShouldClose()
}

func (windowHandler *WindowHandler) close() {
	windowHandler.glfwWindow.Destroy()
	glfw.Terminate()
}
