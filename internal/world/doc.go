// Package world holds the game state and its per-frame physics.
//
// A frame is: aim or fire input, then World.Integrate, then
// CollisionEngine.Resolve, then drawing. Nothing here touches GL; the
// renderer reads entities through World.Each and World.Guide.
package world
