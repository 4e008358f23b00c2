package handler

import (
	"fmt"

	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/model/workout"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/service"
	"github.com/labstack/echo/v4"
)

const workoutCreatedMessage = "Congratulations! You have scheduled your next workout! Good luck!"

type WorkoutHandler struct {
	Handler
	workoutService *service.WorkoutService
}

func NewWorkoutHandler(s *server.Server, workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		Handler:        NewHandler(s),
		workoutService: workoutService,
	}
}

func (h *WorkoutHandler) CreateWorkout(c echo.Context, req *workout.CreateWorkoutRequest) (model.MessageResponse, error) {
	id, err := h.workoutService.CreateWorkout(c, &req.Input)
	if err != nil {
		return model.MessageResponse{}, err
	}
	return model.NewCreatedMessage(workoutCreatedMessage, id), nil
}

func (h *WorkoutHandler) ListWorkouts(c echo.Context, _ *workout.ListWorkoutsRequest) ([]workout.Workout, error) {
	return h.workoutService.ListWorkouts(c)
}

func (h *WorkoutHandler) GetWorkout(c echo.Context, req *workout.GetWorkoutRequest) (*workout.Workout, error) {
	return h.workoutService.GetWorkout(c, req.ID)
}

func (h *WorkoutHandler) UpdateWorkout(c echo.Context, req *workout.UpdateWorkoutRequest) (model.MessageResponse, error) {
	if err := h.workoutService.UpdateWorkout(c, req.ID, &req.Input); err != nil {
		return model.MessageResponse{}, err
	}
	return model.NewMessage(fmt.Sprintf("The workout at workout ID: %d has been updated successfully.", req.ID)), nil
}
