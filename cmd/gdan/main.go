// Command gdan opens the demo window: a main menu leading to the map viewer,
// the 2D/3D shape gallery, the gizmo ruler, the textured scene and the
// bounding volume harness.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/bounding"
	"github.com/phanxgames/gdan/game"
	"github.com/phanxgames/gdan/mapview"
	"github.com/phanxgames/gdan/menu"
	"github.com/phanxgames/gdan/oper"
	"github.com/phanxgames/gdan/rule"
	"github.com/phanxgames/gdan/scene"
)

func main() {
	d := gdan.DefaultRunConfig()
	var (
		width       = flag.Int("width", d.Width, "window width")
		height      = flag.Int("height", d.Height, "window height")
		title       = flag.String("title", d.Title, "window title")
		showFPS     = flag.Bool("fps", false, "draw the FPS overlay")
		debug       = flag.Bool("debug", false, "print per-second timing stats")
		state       = flag.String("state", string(d.InitialState), "first screen")
		mode        = flag.String("mode", bounding.DefaultTestMode.String(), "initial intersection test mode")
		assets      = flag.String("assets", d.AssetsDir, "assets directory")
		screenshots = flag.String("screenshots", d.ScreenshotDir, "screenshot directory")
		script      = flag.String("script", "", "JSON test script to run")
		exit        = flag.Bool("exit", false, "quit once the script has run")
	)
	flag.Parse()

	initial, err := gdan.ParseState(*state)
	if err != nil {
		log.Fatal(err)
	}
	testMode, err := bounding.ParseTestMode(*mode)
	if err != nil {
		log.Fatal(err)
	}

	app := gdan.NewApp(gdan.RunConfig{
		Title:           *title,
		Width:           *width,
		Height:          *height,
		ShowFPS:         *showFPS,
		Debug:           *debug,
		InitialState:    initial,
		AssetsDir:       *assets,
		ScreenshotDir:   *screenshots,
		Script:          *script,
		ExitAfterScript: *exit,
	})
	app.AddPlugins(
		menu.Plugin,
		mapview.Plugin,
		oper.Plugin,
		rule.Plugin,
		scene.Plugin,
		game.Plugin(game.Config{InitialMode: testMode}),
	)

	if err := gdan.Run(app); err != nil {
		log.Fatal(err)
	}
}
