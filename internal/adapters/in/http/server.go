// Package http exposes the marketplace's commands and queries over an echo
// web server. Request and response DTOs are hand written; errors map to
// status codes through the shared error kinds.
package http

import (
	"errors"
	"net/http"

	"provenance/internal/core/application/usecases/commands"
	"provenance/internal/core/application/usecases/queries"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createBatchHandler        commands.CreateBatchCommandHandler
	transferCustodyHandler    commands.TransferCustodyCommandHandler
	logProcessingHandler      commands.LogProcessingCommandHandler
	logInspectionHandler      commands.LogInspectionCommandHandler
	logDamageHandler          commands.LogDamageCommandHandler
	flagBatchHandler          commands.FlagBatchCommandHandler
	resolveFlagHandler        commands.ResolveFlagCommandHandler
	markSoldHandler           commands.MarkSoldCommandHandler
	listBatchHandler          commands.ListBatchCommandHandler
	placeOrderHandler         commands.PlaceOrderCommandHandler
	markOrderInTransitHandler commands.MarkOrderInTransitCommandHandler
	confirmDeliveryHandler    commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	reportProblemHandler      commands.ReportProblemCommandHandler
	resolveProblemHandler     commands.ResolveProblemCommandHandler
	depositFundsHandler       commands.DepositFundsCommandHandler

	// Query handlers
	getBatchHandler          queries.GetBatchQueryHandler
	getBatchHistoryHandler   queries.GetBatchHistoryQueryHandler
	getActiveListingsHandler queries.GetActiveListingsQueryHandler
	getOpenOrdersHandler     queries.GetOpenOrdersQueryHandler
	getAccountBalanceHandler queries.GetAccountBalanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createBatchHandler commands.CreateBatchCommandHandler,
	transferCustodyHandler commands.TransferCustodyCommandHandler,
	logProcessingHandler commands.LogProcessingCommandHandler,
	logInspectionHandler commands.LogInspectionCommandHandler,
	logDamageHandler commands.LogDamageCommandHandler,
	flagBatchHandler commands.FlagBatchCommandHandler,
	resolveFlagHandler commands.ResolveFlagCommandHandler,
	markSoldHandler commands.MarkSoldCommandHandler,
	listBatchHandler commands.ListBatchCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	markOrderInTransitHandler commands.MarkOrderInTransitCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	reportProblemHandler commands.ReportProblemCommandHandler,
	resolveProblemHandler commands.ResolveProblemCommandHandler,
	depositFundsHandler commands.DepositFundsCommandHandler,
	getBatchHandler queries.GetBatchQueryHandler,
	getBatchHistoryHandler queries.GetBatchHistoryQueryHandler,
	getActiveListingsHandler queries.GetActiveListingsQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getAccountBalanceHandler queries.GetAccountBalanceQueryHandler,
) *Server {
	return &Server{
		createBatchHandler:        createBatchHandler,
		transferCustodyHandler:    transferCustodyHandler,
		logProcessingHandler:      logProcessingHandler,
		logInspectionHandler:      logInspectionHandler,
		logDamageHandler:          logDamageHandler,
		flagBatchHandler:          flagBatchHandler,
		resolveFlagHandler:        resolveFlagHandler,
		markSoldHandler:           markSoldHandler,
		listBatchHandler:          listBatchHandler,
		placeOrderHandler:         placeOrderHandler,
		markOrderInTransitHandler: markOrderInTransitHandler,
		confirmDeliveryHandler:    confirmDeliveryHandler,
		cancelOrderHandler:        cancelOrderHandler,
		reportProblemHandler:      reportProblemHandler,
		resolveProblemHandler:     resolveProblemHandler,
		depositFundsHandler:       depositFundsHandler,
		getBatchHandler:           getBatchHandler,
		getBatchHistoryHandler:    getBatchHistoryHandler,
		getActiveListingsHandler:  getActiveListingsHandler,
		getOpenOrdersHandler:      getOpenOrdersHandler,
		getAccountBalanceHandler:  getAccountBalanceHandler,
	}
}

// RegisterRoutes attaches all API routes plus the health and metrics
// endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/batches", s.CreateBatch)
	api.GET("/batches/:id", s.GetBatch)
	api.GET("/batches/:id/history", s.GetBatchHistory)
	api.POST("/batches/:id/transfer", s.TransferCustody)
	api.POST("/batches/:id/processing", s.LogProcessing)
	api.POST("/batches/:id/inspection", s.LogInspection)
	api.POST("/batches/:id/damage", s.LogDamage)
	api.POST("/batches/:id/flags", s.FlagBatch)
	api.POST("/batches/:id/flags/resolve", s.ResolveFlag)
	api.POST("/batches/:id/sold", s.MarkSold)

	api.GET("/listings", s.GetActiveListings)
	api.POST("/listings", s.ListBatch)

	api.GET("/orders", s.GetOpenOrders)
	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/transit", s.MarkOrderInTransit)
	api.POST("/orders/:id/confirm", s.ConfirmDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/problem", s.ReportProblem)
	api.POST("/orders/:id/problem/resolve", s.ResolveProblem)

	api.GET("/accounts/:owner", s.GetAccountBalance)
	api.POST("/accounts/deposit", s.DepositFunds)
}

// CreateBatch handles POST /api/v1/batches.
func (s *Server) CreateBatch(ctx echo.Context) error {
	var request CreateBatchRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	originator, err := kernel.NewIdentity(request.Originator)
	if err != nil {
		return errorResponse(ctx, err)
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand(batchID, originator, request.Location)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	batchesCreated.Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: batchID.String()})
}

// GetBatch handles GET /api/v1/batches/:id.
func (s *Server) GetBatch(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	query, err := queries.NewGetBatchQuery(batchID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Batch{
		ID:         result.ID.String(),
		Originator: result.Originator,
		Custodian:  result.Custodian,
		Location:   result.Location,
		Stage:      result.Stage,
		Tampered:   result.Tampered,
		FlagCount:  result.FlagCount,
		CreatedAt:  result.CreatedAt,
	})
}

// GetBatchHistory handles GET /api/v1/batches/:id/history.
func (s *Server) GetBatchHistory(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	query, err := queries.NewGetBatchHistoryQuery(batchID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	events, err := s.getBatchHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]BatchEvent, len(events))
	for i, event := range events {
		response[i] = BatchEvent{
			Kind:       event.Kind,
			Actor:      event.Actor,
			OccurredAt: event.OccurredAt,
			Details:    event.Details,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransferCustody handles POST /api/v1/batches/:id/transfer.
func (s *Server) TransferCustody(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var request TransferCustodyRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}
	newCustodian, err := kernel.NewIdentity(request.NewCustodian)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTransferCustodyCommand(batchID, caller, newCustodian, request.NewLocation)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.transferCustodyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LogProcessing handles POST /api/v1/batches/:id/processing.
func (s *Server) LogProcessing(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var request LogStepRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewLogProcessingCommand(batchID, caller, request.Details)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.logProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LogInspection handles POST /api/v1/batches/:id/inspection.
func (s *Server) LogInspection(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var request LogStepRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewLogInspectionCommand(batchID, caller, request.Details)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.logInspectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LogDamage handles POST /api/v1/batches/:id/damage.
func (s *Server) LogDamage(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var request LogDamageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewLogDamageCommand(batchID, caller, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.logDamageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	batchesFlagged.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// FlagBatch handles POST /api/v1/batches/:id/flags.
func (s *Server) FlagBatch(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var request FlagBatchRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewFlagBatchCommand(batchID, caller, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.flagBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	batchesFlagged.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// ResolveFlag handles POST /api/v1/batches/:id/flags/resolve.
func (s *Server) ResolveFlag(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var request ResolveFlagRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}
	flaggedBy, err := kernel.NewIdentity(request.FlaggedBy)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewResolveFlagCommand(batchID, caller, flaggedBy, request.Resolution)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.resolveFlagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkSold handles POST /api/v1/batches/:id/sold.
func (s *Server) MarkSold(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}

	var request MarkSoldRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkSoldCommand(batchID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.markSoldHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveListings handles GET /api/v1/listings.
func (s *Server) GetActiveListings(ctx echo.Context) error {
	listings, err := s.getActiveListingsHandler.Handle(ctx.Request().Context(), queries.NewGetActiveListingsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Listing, len(listings))
	for i, l := range listings {
		response[i] = Listing{
			ID:          l.ID.String(),
			BatchID:     l.BatchID.String(),
			Seller:      l.Seller,
			Price:       l.Price,
			Description: l.Description,
			ImageRef:    l.ImageRef,
			CreatedAt:   l.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListBatch handles POST /api/v1/listings.
func (s *Server) ListBatch(ctx echo.Context) error {
	var request ListBatchRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	batchID, err := kernel.UUIDFromString(request.BatchID)
	if err != nil {
		return badRequest(ctx, "Invalid batch id")
	}
	seller, err := kernel.NewIdentity(request.Seller)
	if err != nil {
		return errorResponse(ctx, err)
	}
	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	listingID := kernel.NewUUID()
	cmd, err := commands.NewListBatchCommand(listingID, batchID, seller, price, request.Description, request.ImageRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.listBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: listingID.String()})
}

// GetOpenOrders handles GET /api/v1/orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:              o.ID.String(),
			BatchID:         o.BatchID.String(),
			Buyer:           o.Buyer,
			Seller:          o.Seller,
			Amount:          o.Amount,
			Status:          o.Status,
			ProblemReported: o.ProblemReported,
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders. The response carries the pickup
// code exactly once; no other surface ever returns it.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	listingID, err := kernel.UUIDFromString(request.ListingID)
	if err != nil {
		return badRequest(ctx, "Invalid listing id")
	}
	buyer, err := kernel.NewIdentity(request.Buyer)
	if err != nil {
		return errorResponse(ctx, err)
	}
	payment, err := kernel.NewMoney(request.Payment)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, listingID, buyer, payment)
	if err != nil {
		return errorResponse(ctx, err)
	}

	pickupCode, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ordersPlaced.Inc()
	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		ID:         orderID.String(),
		PickupCode: pickupCode,
	})
}

// MarkOrderInTransit handles POST /api/v1/orders/:id/transit.
func (s *Server) MarkOrderInTransit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request MarkOrderInTransitRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkOrderInTransitCommand(orderID, caller, request.NewLocation)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.markOrderInTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ConfirmDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, caller, request.PickupCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	ordersConfirmed.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	ordersCancelled.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// ReportProblem handles POST /api/v1/orders/:id/problem.
func (s *Server) ReportProblem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ProblemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewReportProblemCommand(orderID, caller, request.Details)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.reportProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveProblem handles POST /api/v1/orders/:id/problem/resolve.
func (s *Server) ResolveProblem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ProblemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewIdentity(request.Caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewResolveProblemCommand(orderID, caller, request.Details)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.resolveProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAccountBalance handles GET /api/v1/accounts/:owner.
func (s *Server) GetAccountBalance(ctx echo.Context) error {
	owner, err := kernel.NewIdentity(ctx.Param("owner"))
	if err != nil {
		return badRequest(ctx, "Invalid owner")
	}

	query, err := queries.NewGetAccountBalanceQuery(owner)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getAccountBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AccountBalance{
		Owner:   result.Owner,
		Balance: result.Balance,
	})
}

// DepositFunds handles POST /api/v1/accounts/deposit.
func (s *Server) DepositFunds(ctx echo.Context) error {
	var request DepositFundsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	owner, err := kernel.NewIdentity(request.Owner)
	if err != nil {
		return errorResponse(ctx, err)
	}
	amount, err := kernel.NewMoney(request.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDepositFundsCommand(owner, amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.depositFundsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps shared error kinds to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
