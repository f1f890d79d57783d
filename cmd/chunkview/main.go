package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"voxelchunk/internal/config"
	"voxelchunk/internal/graphics"
	"voxelchunk/internal/graphics/gpu"
	"voxelchunk/internal/graphics/renderables/chunks"
	renderer "voxelchunk/internal/graphics/renderer"
	"voxelchunk/internal/logger"
	"voxelchunk/internal/terrain"
	"voxelchunk/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func init() {
	// GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "chunkview:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return err
	}
	defer logger.Sync()
	config.ApplyRender(cfg.Render)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	params := terrainParams(cfg.Terrain)
	chunk := world.NewEmptyChunk()
	if err := terrain.New(params).Populate(chunk); err != nil {
		return err
	}
	logger.Log.Info("chunk generated",
		zap.Int64("seed", params.Seed),
		zap.Int("active", chunk.ActiveCount()))

	chunkRenderer := chunks.NewChunks(gpu.NewGLDevice())
	chunkRenderer.Add(chunk, mgl32.Vec3{})

	camera := graphics.NewCamera(cfg.Window.Width, cfg.Window.Height)
	half := float32(world.ChunkSize-1) / 2
	camera.Target = mgl32.Vec3{half, half / 2, half}

	r, err := renderer.NewRenderer(camera, chunkRenderer)
	if err != nil {
		return err
	}
	defer r.Dispose()

	fbw, fbh := window.GetFramebufferSize()
	r.UpdateViewport(fbw, fbh)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		r.UpdateViewport(w, h)
	})

	loop := NewViewLoop(window, r, chunkRenderer, chunk, params)
	loop.Run()
	return nil
}

func terrainParams(tc config.TerrainConfig) terrain.Params {
	return terrain.Params{
		Seed:       tc.Seed,
		Scale:      tc.Scale,
		BaseHeight: tc.BaseHeight,
		Amplitude:  tc.Amplitude,
		StoneDepth: tc.StoneDepth,
	}
}
