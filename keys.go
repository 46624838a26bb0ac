package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/samuelyuan/go-tabletop/input"
)

// InputHandler polls the window for the keys bound to each action
type InputHandler struct {
	window         *glfw.Window
	actionToKeyMap map[input.Action]glfw.Key
}

func NewInputHandler(window *glfw.Window) *InputHandler {
	actionToKeyMap := map[input.Action]glfw.Key{
		input.MoveForward:      glfw.KeyW,
		input.MoveBackward:     glfw.KeyS,
		input.StrafeLeft:       glfw.KeyA,
		input.StrafeRight:      glfw.KeyD,
		input.MoveUp:           glfw.KeyE,
		input.MoveDown:         glfw.KeyQ,
		input.LightLeft:        glfw.KeyLeft,
		input.LightRight:       glfw.KeyRight,
		input.LightUp:          glfw.KeyUp,
		input.LightDown:        glfw.KeyDown,
		input.LightNear:        glfw.KeyRightShift,
		input.LightFar:         glfw.KeyRightControl,
		input.ToggleProjection: glfw.KeyP,
		input.Quit:             glfw.KeyEscape,
	}

	return &InputHandler{
		window:         window,
		actionToKeyMap: actionToKeyMap,
	}
}

func (handler *InputHandler) IsActive(a input.Action) bool {
	key, ok := handler.actionToKeyMap[a]
	if !ok {
		return false
	}
	return handler.window.GetKey(key) == glfw.Press
}
