package main

import (
	"time"

	"voxelchunk/internal/config"
	"voxelchunk/internal/graphics/renderables/chunks"
	renderer "voxelchunk/internal/graphics/renderer"
	"voxelchunk/internal/logger"
	"voxelchunk/internal/profiling"
	"voxelchunk/internal/terrain"
	"voxelchunk/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

const (
	orbitSpeed = 90.0 // degrees per second
	zoomSpeed  = 30.0 // cubes per second
)

// ViewLoop drives input polling, rendering and frame pacing
type ViewLoop struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	chunks   *chunks.Chunks
	chunk    *world.Chunk
	params   terrain.Params

	fpsLimiter *FPSLimiter
	prevKeys   map[glfw.Key]bool

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

func NewViewLoop(window *glfw.Window, r *renderer.Renderer, cr *chunks.Chunks, c *world.Chunk, params terrain.Params) *ViewLoop {
	now := time.Now()
	return &ViewLoop{
		window:           window,
		renderer:         r,
		chunks:           cr,
		chunk:            c,
		params:           params,
		fpsLimiter:       NewFPSLimiter(),
		prevKeys:         make(map[glfw.Key]bool),
		lastFPSCheckTime: now,
		lastTime:         now,
	}
}

// Run blocks until the window is closed
func (l *ViewLoop) Run() {
	for !l.window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(l.lastTime).Seconds()
		l.lastTime = now

		glfw.PollEvents()
		l.handleInput(float32(dt))

		l.renderer.Render(dt)
		l.window.SwapBuffers()

		l.reportFPS(now)
		l.fpsLimiter.Wait()
	}
}

// pressed reports a key transition from released to pressed
func (l *ViewLoop) pressed(key glfw.Key) bool {
	down := l.window.GetKey(key) == glfw.Press
	was := l.prevKeys[key]
	l.prevKeys[key] = down
	return down && !was
}

func (l *ViewLoop) held(key glfw.Key) bool {
	return l.window.GetKey(key) == glfw.Press
}

func (l *ViewLoop) handleInput(dt float32) {
	if l.held(glfw.KeyEscape) {
		l.window.SetShouldClose(true)
	}

	cam := l.renderer.GetCamera()
	step := orbitSpeed * dt
	if l.held(glfw.KeyLeft) {
		cam.Orbit(-step, 0)
	}
	if l.held(glfw.KeyRight) {
		cam.Orbit(step, 0)
	}
	if l.held(glfw.KeyUp) {
		cam.Orbit(0, step)
	}
	if l.held(glfw.KeyDown) {
		cam.Orbit(0, -step)
	}
	if l.held(glfw.KeyEqual) {
		cam.Zoom(-zoomSpeed * dt)
	}
	if l.held(glfw.KeyMinus) {
		cam.Zoom(zoomSpeed * dt)
	}

	if l.pressed(glfw.KeyF) {
		logger.Log.Info("wireframe toggled", zap.Bool("enabled", config.ToggleWireframe()))
	}
	if l.pressed(glfw.KeyR) {
		l.regenerate()
	}
}

// regenerate repopulates the chunk with the next seed; the renderable
// re-uploads it on the next frame because the chunk is dirty.
func (l *ViewLoop) regenerate() {
	l.params.Seed++
	if err := terrain.New(l.params).Populate(l.chunk); err != nil {
		logger.Log.Error("regenerate chunk", zap.Error(err))
		return
	}
	logger.Log.Info("chunk regenerated",
		zap.Int64("seed", l.params.Seed),
		zap.Int("active", l.chunk.ActiveCount()))
}

func (l *ViewLoop) reportFPS(now time.Time) {
	l.frames++
	elapsed := now.Sub(l.lastFPSCheckTime)
	if elapsed < time.Second {
		return
	}
	logger.Log.Debug("frame stats",
		zap.Float64("fps", float64(l.frames)/elapsed.Seconds()),
		zap.Int("visibleChunks", l.chunks.LastVisible()),
		zap.String("top", profiling.TopN(4)))
	l.frames = 0
	l.lastFPSCheckTime = now
}
