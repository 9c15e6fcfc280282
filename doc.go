// Package tilestack stacks independently loaded sprites into one rigid,
// draggable group for [Ebitengine].
//
// A common trick for tile-based games is to build many tile variants from a
// few layers: six block colors and six gem colors give 36 tiles from 12
// images. tilestack groups such layers under a [CompositeNode] that moves,
// rotates and scales them as one, and lets the player pick the group up with
// a [DragController].
//
// # Quick start
//
//	scene := tilestack.NewScene()
//
//	block := tilestack.NewSprite("block", blockImg)
//	gem := tilestack.NewSprite("gem", gemImg)
//	tile, err := tilestack.NewComposite("tile", block, gem)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tile.Update(tilestack.Move(100, 100))
//
//	scene.Add(tile)       // draws block, then gem
//	scene.Draggable(tile) // press inside the block, drag to move both
//
//	tilestack.Run(scene, tilestack.RunConfig{Title: "Tiles"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Partial transforms
//
// [TransformUpdate] names only the fields to change. The zero value changes
// nothing, which makes [CompositeNode.Refresh] a cheap per-tick call:
//
//	tile.Update(tilestack.Move(10, 20))                          // position only
//	tile.Update(tilestack.TransformUpdate{}.WithRotation(90))    // rotation only
//	tile.Update(tilestack.TransformUpdate{}.WithScale(2).WithScaleX(3)) // sx=3, sy=2
//
// # Threading
//
// Nothing in this package is safe for concurrent use. Call everything from
// the goroutine running the ebiten game loop.
//
// [Ebitengine]: https://ebitengine.org
package tilestack
