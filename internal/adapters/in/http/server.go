// Package http implements the inbound HTTP adapter. Handlers translate
// requests into commands and queries, and map domain errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPartnerHandler     commands.CreatePartnerCommandHandler
	updatePartnerHandler     commands.UpdatePartnerCommandHandler
	deletePartnerHandler     commands.DeletePartnerCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	runBulkAssignmentHandler commands.RunBulkAssignmentCommandHandler

	// Query handlers
	getAllPartnersHandler       queries.GetAllPartnersQueryHandler
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getAllAssignmentsHandler    queries.GetAllAssignmentsQueryHandler
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPartnerHandler commands.CreatePartnerCommandHandler,
	updatePartnerHandler commands.UpdatePartnerCommandHandler,
	deletePartnerHandler commands.DeletePartnerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	runBulkAssignmentHandler commands.RunBulkAssignmentCommandHandler,
	getAllPartnersHandler queries.GetAllPartnersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllAssignmentsHandler queries.GetAllAssignmentsQueryHandler,
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler,
) *Server {
	return &Server{
		createPartnerHandler:        createPartnerHandler,
		updatePartnerHandler:        updatePartnerHandler,
		deletePartnerHandler:        deletePartnerHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		assignOrderHandler:          assignOrderHandler,
		runBulkAssignmentHandler:    runBulkAssignmentHandler,
		getAllPartnersHandler:       getAllPartnersHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getAllAssignmentsHandler:    getAllAssignmentsHandler,
		getAssignmentMetricsHandler: getAssignmentMetricsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.GET("/partners", s.GetPartners)
	v1.POST("/partners", s.CreatePartner)
	v1.PUT("/partners/:id", s.UpdatePartner)
	v1.DELETE("/partners/:id", s.DeletePartner)

	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/assign", s.AssignOrder)

	v1.GET("/assignments", s.GetAssignments)
	v1.GET("/assignments/metrics", s.GetAssignmentMetrics)
	v1.POST("/assignments/run", s.RunBulkAssignment)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetPartners handles GET /api/v1/partners - retrieves all partners.
func (s *Server) GetPartners(ctx echo.Context) error {
	query := queries.NewGetAllPartnersQuery()

	partners, err := s.getAllPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve partners")
	}

	response := make([]Partner, 0, len(partners))
	for _, p := range partners {
		response = append(response, partnerFromQuery(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/v1/partners - registers a new partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var request CreatePartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(partnerID,
		request.Name, request.Email, request.Phone, request.Areas)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid partner data: "+err.Error())
	}

	if handleErr := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create partner")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": partnerID.String()})
}

// UpdatePartner handles PUT /api/v1/partners/:id - updates status, areas, and shift.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid partner ID")
	}

	var request UpdatePartnerRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := partner.StatusFromString(request.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid partner status: "+request.Status)
	}

	cmd, err := commands.NewUpdatePartnerCommand(partnerID, status,
		request.Areas, request.ShiftStart, request.ShiftEnd)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid partner data: "+err.Error())
	}

	if handleErr := s.updatePartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update partner")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePartner handles DELETE /api/v1/partners/:id - removes a partner.
// Partners with undelivered orders cannot be removed.
func (s *Server) DeletePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid partner ID")
	}

	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid partner ID: "+err.Error())
	}

	if handleErr := s.deletePartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to delete partner")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, request.OrderNumber,
		request.CustomerName, request.CustomerPhone, request.CustomerAddress,
		request.Area, request.TotalAmount, request.ScheduledFor)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// to picked or delivered.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order status: "+request.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/assign - assigns an order to a
// specific partner. A failed attempt is recorded on the assignment log and
// returned alongside the error status.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var request AssignOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	partnerID, err := kernel.UUIDFromString(request.PartnerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid partner ID")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, partnerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
	}

	record, handleErr := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		if record != nil {
			return ctx.JSON(statusFromError(handleErr), assignmentFromDomain(record))
		}
		return domainError(ctx, handleErr, "Failed to assign order")
	}

	return ctx.JSON(http.StatusOK, assignmentFromDomain(record))
}

// GetAssignments handles GET /api/v1/assignments - retrieves the assignment
// log, newest first.
func (s *Server) GetAssignments(ctx echo.Context) error {
	query := queries.NewGetAllAssignmentsQuery()

	records, err := s.getAllAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve assignments")
	}

	response := make([]Assignment, 0, len(records))
	for _, record := range records {
		response = append(response, assignmentFromQuery(record))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignmentMetrics handles GET /api/v1/assignments/metrics - aggregates
// the assignment log.
func (s *Server) GetAssignmentMetrics(ctx echo.Context) error {
	query := queries.NewGetAssignmentMetricsQuery()

	metrics, err := s.getAssignmentMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to compute assignment metrics")
	}

	return ctx.JSON(http.StatusOK, AssignmentMetrics{
		TotalAssigned:  metrics.TotalAssigned,
		SuccessRate:    metrics.SuccessRate,
		FailureReasons: metrics.FailureReasons,
	})
}

// RunBulkAssignment handles POST /api/v1/assignments/run - assigns all
// pending orders to available partners.
func (s *Server) RunBulkAssignment(ctx echo.Context) error {
	cmd := commands.NewRunBulkAssignmentCommand()

	result, err := s.runBulkAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Bulk assignment run failed")
	}

	return ctx.JSON(http.StatusOK, bulkResultFromCommand(result))
}

// statusFromError maps domain errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func domainError(ctx echo.Context, err error, fallback string) error {
	code := statusFromError(err)
	message := fallback
	if code != http.StatusInternalServerError {
		message = err.Error()
	}
	return errorJSON(ctx, code, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
