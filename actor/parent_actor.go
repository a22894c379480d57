package actor

// NewParentActor returns an Actor context for a goroutine that was not spawned, such as
// main or a test, with its termination func that should be deferred right away.
func NewParentActor() (*Actor, func()) {
	actor := createActor()
	return actor, actor.terminate
}
