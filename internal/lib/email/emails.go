package email

// SendWelcomeEmail greets a newly registered member.
func (c *Client) SendWelcomeEmail(to, customerName string) error {
	data := map[string]string{
		"CustomerName": customerName,
	}

	return c.SendEmail(
		to,
		"Welcome to the Fitness Center!",
		TemplateWelcome,
		data,
	)
}

// WorkoutDetails is the content of a workout confirmation email.
type WorkoutDetails struct {
	CustomerName string
	WorkoutType  string
	StartTime    string
	EndTime      string
}

func (w WorkoutDetails) templateData() map[string]string {
	return map[string]string{
		"CustomerName": w.CustomerName,
		"WorkoutType":  w.WorkoutType,
		"StartTime":    w.StartTime,
		"EndTime":      w.EndTime,
	}
}

// SendWorkoutScheduledEmail confirms a scheduled workout to its member.
func (c *Client) SendWorkoutScheduledEmail(to string, details WorkoutDetails) error {
	return c.SendEmail(
		to,
		"Your next workout is scheduled",
		TemplateWorkoutScheduled,
		details.templateData(),
	)
}
