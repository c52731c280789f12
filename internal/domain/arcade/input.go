package arcade

// Input is the sampled player input for one tick
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Shoot bool
}
