package workout

type CreateWorkoutRequest struct {
	Input
}

type GetWorkoutRequest struct {
	ID int64 `param:"id"`
}

func (r *GetWorkoutRequest) Validate() error {
	return nil
}

type ListWorkoutsRequest struct{}

func (r *ListWorkoutsRequest) Validate() error {
	return nil
}

type UpdateWorkoutRequest struct {
	ID int64 `param:"id"`
	Input
}
