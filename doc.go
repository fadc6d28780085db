// Package arcana is a small retained-mode 2D scene graph for [Ebitengine],
// tuned for card tables: nodes that can be dragged, flipped, masked and
// tweened, plus the pointer state machine that drives them.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := arcana.NewScene()
//	// ... add nodes ...
//	arcana.Run(scene, arcana.RunConfig{
//		Title: "Table", Width: 1024, Height: 768,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha.
// Containers group nodes; sprites draw an image:
//
//	card := arcana.NewContainer("card")
//	card.SetPivot(w/2, h/2)
//	scene.Root().AddChild(card)
//
//	face := arcana.NewSprite("face", img)
//	card.AddChild(face)
//
// # Animation
//
// Tweens are built on [gween] and owned by the scene's [Animator]. Starting
// a tween claims the fields it writes; an older tween writing the same field
// stops writing it. At most one tween drives a given property at a time.
//
//	scene.Animator().Start(arcana.TweenPosition(card, 200, 100, 0.3, ease.OutCubic))
//
// # Input
//
// Per-node callbacks receive a [PointerContext] with global and local
// coordinates. A press captures the node it landed on: moves with the
// button held go to that node, and the release is delivered as
// OnPointerUp (released over it) or OnPointerUpOutside (released elsewhere),
// followed by OnTap when the release landed on the pressed node.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package arcana
