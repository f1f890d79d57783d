package config

import "sync"

// RenderSettings holds settings changed while the viewer runs
type RenderSettings struct {
	mu        sync.RWMutex
	wireframe bool
	fpsLimit  int
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 120,
}

// ApplyRender copies the file settings into the runtime settings
func ApplyRender(rc RenderConfig) {
	SetWireframe(rc.Wireframe)
	SetFPSLimit(rc.FPSLimit)
}

// GetWireframe returns whether chunks are drawn as lines
func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// SetWireframe sets the wireframe mode
func SetWireframe(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// ToggleWireframe flips wireframe mode and returns the new value
func ToggleWireframe() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = !globalRenderSettings.wireframe
	return globalRenderSettings.wireframe
}

// GetFPSLimit returns the frame cap, 0 means uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}
