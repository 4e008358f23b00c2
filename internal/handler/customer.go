package handler

import (
	"fmt"

	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/model/customer"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/service"
	"github.com/labstack/echo/v4"
)

const customerCreatedMessage = "New member added successfully!"

type CustomerHandler struct {
	Handler
	customerService *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:         NewHandler(s),
		customerService: customerService,
	}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context, req *customer.CreateCustomerRequest) (model.MessageResponse, error) {
	id, err := h.customerService.CreateCustomer(c, &req.Input)
	if err != nil {
		return model.MessageResponse{}, err
	}
	return model.NewCreatedMessage(customerCreatedMessage, id), nil
}

func (h *CustomerHandler) ListCustomers(c echo.Context, _ *customer.ListCustomersRequest) ([]customer.Customer, error) {
	return h.customerService.ListCustomers(c)
}

func (h *CustomerHandler) GetCustomer(c echo.Context, req *customer.GetCustomerRequest) (*customer.Customer, error) {
	return h.customerService.GetCustomer(c, req.ID)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context, req *customer.UpdateCustomerRequest) (model.MessageResponse, error) {
	if err := h.customerService.UpdateCustomer(c, req.ID, &req.Input); err != nil {
		return model.MessageResponse{}, err
	}
	return model.NewMessage(fmt.Sprintf("Successfully updated user %d", req.ID)), nil
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context, req *customer.DeleteCustomerRequest) (model.MessageResponse, error) {
	if err := h.customerService.DeleteCustomer(c, req.ID); err != nil {
		return model.MessageResponse{}, err
	}
	return model.NewMessage(fmt.Sprintf("Member %d was successfully deleted.", req.ID)), nil
}
