package physics

// Integrate writes each body's tentative next position into stage:
// position + velocity, one unit of time per tick.
func Integrate(bodies []Body, stage Stage) {
	for i, b := range bodies {
		stage[i] = Motion{
			Position: b.Position.Add(b.Velocity),
			Velocity: b.Velocity,
		}
	}
}
