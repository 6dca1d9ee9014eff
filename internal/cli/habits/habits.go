package habits

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit and its completions."`
	List     HabitListCmd     `cmd:"" help:"List all habits." default:"1"`
	Complete HabitCompleteCmd `cmd:"" help:"Mark a habit as completed for the current period."`
}
