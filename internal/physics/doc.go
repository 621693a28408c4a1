// Package physics provides the circular-body collision engine.
//
// The engine works on a fixed set of [Body] values confined to an [Arena].
// One tick is split into stages that write into a [Stage] of tentative
// motions instead of mutating bodies in place:
//
//   - [Integrate]: tentative position = position + velocity
//   - [ResolveWalls]: reflect and clamp against the four arena walls
//   - [ResolvePairs]: elastic collision of every overlapping pair
//
// The caller commits the stage once every stage has run. [Place] builds the
// initial non-overlapping configuration.
//
// # Example
//
//	p := physics.DefaultParams()
//	bodies, err := physics.Place(rand.New(rand.NewSource(42)), p)
//	if err != nil {
//		return err
//	}
//	stage := make(physics.Stage, len(bodies))
//	physics.Integrate(bodies, stage)
//	physics.ResolveWalls(bodies, stage, p.Arena)
//	contacts := physics.ResolvePairs(bodies, stage, nil)
//	stage.Commit(bodies)
//
// # Known Limitation
//
// Pairs are resolved in a single nested scan per tick. A body that collides
// with two partners in the same tick is resolved against the second one with
// the velocity produced by the first; clusters of three or more bodies settle
// over several ticks rather than being solved exactly.
package physics
