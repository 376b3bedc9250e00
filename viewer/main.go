// Command viewer renders a scene once and displays it in an SDL2 window.
package main

import (
	"flag"
	"image"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
	"github.com/dglen/go-whitted-raytracer/pkg/scene"
)

const msPerFrame uint32 = 1000 / 30

func main() {
	sceneName := flag.String("scene", "default", "Scene name: 'default', 'glass', or 'mirrors'")
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 600, "Window height in pixels")
	maxDepth := flag.Int("depth", 5, "Maximum ray recursion depth")
	flag.Parse()

	selectedScene, err := scene.ByName(*sceneName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	config := renderer.DefaultConfig()
	config.MaxDepth = *maxDepth

	camera := renderer.NewCamera(selectedScene.Camera, float64(*width)/float64(*height))
	rt := renderer.NewRaytracer(selectedScene, camera, *width, *height, config, renderer.NewDefaultLogger())

	img := rt.Render()

	window, surface, err := startScreen("Whitted Raytracer", *width, *height)
	if err != nil {
		log.Fatalf("Error starting screen: %v", err)
	}
	defer stopScreen(window)

	blit(window, surface, img)

	// Event loop: redraw on expose, exit on quit or escape.
	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_EXPOSED {
					blit(window, surface, img)
				}
			}
		}
		sdl.Delay(msPerFrame)
	}
}

// startScreen initializes SDL2 and creates a new window
func startScreen(name string, width, height int) (*sdl.Window, *sdl.Surface, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}

	window, err := sdl.CreateWindow(name, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, nil, err
	}

	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, err
	}

	return window, surface, nil
}

// stopScreen closes the window and shuts down SDL2
func stopScreen(window *sdl.Window) {
	window.Destroy()
	sdl.Quit()
}

// blit copies the rendered frame onto the window surface
func blit(window *sdl.Window, surface *sdl.Surface, img *image.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			surface.Set(x, y, img.RGBAAt(x, y))
		}
	}
	window.UpdateSurface()
}
