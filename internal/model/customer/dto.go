package customer

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Input
}

// GetCustomerRequest addresses a single customer by path id.
type GetCustomerRequest struct {
	ID int64 `param:"id"`
}

func (r *GetCustomerRequest) Validate() error {
	return nil
}

// ListCustomersRequest has no parameters.
type ListCustomersRequest struct{}

func (r *ListCustomersRequest) Validate() error {
	return nil
}

// UpdateCustomerRequest replaces the writable fields of customer ID.
type UpdateCustomerRequest struct {
	ID int64 `param:"id"`
	Input
}

// DeleteCustomerRequest removes customer ID.
type DeleteCustomerRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteCustomerRequest) Validate() error {
	return nil
}
