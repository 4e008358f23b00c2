package email

// PreviewData contains sample template data for local preview/testing.
//
// It maps:
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"CustomerName": "Alice",
	},
	TemplateWorkoutScheduled: WorkoutDetails{
		CustomerName: "Alice",
		WorkoutType:  "cardio",
		StartTime:    "2024-05-01 09:00",
		EndTime:      "2024-05-01 10:00",
	}.templateData(),
}
