// Package gdan is a small state-driven app framework for [Ebitengine] built
// around a [Donburi] world.
//
// An [App] owns the world, a screen state machine, a system schedule, frame
// [Time], polled [Input], a y-up 2D [Camera] and immediate-mode [Gizmos].
// Screens are plugins that register systems against a state:
//
//	app := gdan.NewApp(gdan.DefaultRunConfig())
//	app.AddSystems(gdan.OnEnter(gdan.StateMapMenu), spawnMap)
//	app.AddSystems(gdan.Update, panMap).RunIf(gdan.InState(gdan.StateMapMenu))
//	app.AddSystems(gdan.OnExit(gdan.StateMapMenu), gdan.Despawn(MapTag))
//	app.AddRenderers(gdan.LayerWorld, drawMap)
//	gdan.Run(app)
//
// # Frame order
//
// Each tick runs the script runner, polls input, applies a pending
// transition requested with [States.SetNext] (OnExit systems, then OnEnter),
// runs Update systems in registration order and finally delivers queued
// donburi events. Draw runs the renderers layer by layer, then gizmos, the
// FPS overlay and any queued screenshots.
//
// # Resources
//
// Singletons live in the world as components on their own entity. See
// [SetResource], [GetResource] and [MustResource].
//
// # Drawing
//
// [DrawMesh] draws filled 2D meshes built with [MeshFromShape] or
// [NewPolygonMesh] through the camera. Text uses Ebitengine's text/v2 with Go
// Regular as the default face. Screen-space [Button] and [Text] entities are
// updated and drawn by the app itself; clicks arrive as [ButtonPressed]
// events.
//
// # Automated runs
//
// [Input] can be fed synthetic frames with the Inject methods, and
// [LoadTestScript] turns a JSON list of clicks, key presses, waits, screenshots
// and state expectations into a [TestRunner].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gdan
