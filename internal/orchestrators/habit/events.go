package habit

// Event types published on the bus after store mutations. The UI
// collaborator listens for re-render; the alarm scheduler listens to
// re-evaluate wake-ups. The source entity of each event is the habit
// involved; reset carries no source.
const (
	// EventHabitCreated fires after a habit is added
	EventHabitCreated = "statmaxer.habit.created"

	// EventHabitUpdated fires after a habit's logs or flags change
	EventHabitUpdated = "statmaxer.habit.updated"

	// EventHabitDeleted fires after a habit is removed
	EventHabitDeleted = "statmaxer.habit.deleted"

	// EventStoreReset fires after the full data reset
	EventStoreReset = "statmaxer.store.reset"
)
