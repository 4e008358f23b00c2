package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateWelcome corresponds to templates/welcome.html
	TemplateWelcome Template = "welcome"

	// TemplateWorkoutScheduled corresponds to templates/workout_scheduled.html
	TemplateWorkoutScheduled Template = "workout_scheduled"
)
