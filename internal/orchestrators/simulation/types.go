package simulation

// RunInput defines the request for running the tick loop
type RunInput struct{}

// RunOutput defines the response for a finished run
type RunOutput struct {
	// Ticks counts executed ticks, including the one the player died on
	Ticks      int
	PlayerDied bool
	// Spawned lists the enemy instance IDs created for the run
	Spawned []string
}
