// Package http exposes the load lifecycle over a JSON API. The handlers are
// thin: they parse the request, build a command or query, and translate the
// result. Authorization decisions live in the core; the only security work
// done here is token verification in the auth middleware.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"carrierops/internal/core/application/usecases/commands"
	"carrierops/internal/core/application/usecases/queries"
	"carrierops/internal/core/domain/model/event"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
	"carrierops/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLoadHandler       commands.CreateLoadCommandHandler
	driverActionHandler     commands.ApplyDriverActionCommandHandler
	dispatcherActionHandler commands.ApplyDispatcherActionCommandHandler
	attachDocumentHandler   commands.AttachDocumentCommandHandler

	// Query handlers
	getLoadHandler       queries.GetLoadQueryHandler
	getFleetLoadsHandler queries.GetFleetLoadsQueryHandler
	getLoadEventsHandler queries.GetLoadEventsQueryHandler

	now func() time.Time
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createLoadHandler commands.CreateLoadCommandHandler,
	driverActionHandler commands.ApplyDriverActionCommandHandler,
	dispatcherActionHandler commands.ApplyDispatcherActionCommandHandler,
	attachDocumentHandler commands.AttachDocumentCommandHandler,
	getLoadHandler queries.GetLoadQueryHandler,
	getFleetLoadsHandler queries.GetFleetLoadsQueryHandler,
	getLoadEventsHandler queries.GetLoadEventsQueryHandler,
) *Server {
	return &Server{
		createLoadHandler:       createLoadHandler,
		driverActionHandler:     driverActionHandler,
		dispatcherActionHandler: dispatcherActionHandler,
		attachDocumentHandler:   attachDocumentHandler,
		getLoadHandler:          getLoadHandler,
		getFleetLoadsHandler:    getFleetLoadsHandler,
		getLoadEventsHandler:    getLoadEventsHandler,
		now:                     func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes mounts all lifecycle endpoints under /api/v1 behind the
// authentication middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)

	api.POST("/loads", s.CreateLoad)
	api.GET("/loads", s.GetLoads)
	api.GET("/loads/:loadId", s.GetLoad)
	api.GET("/loads/:loadId/events", s.GetLoadEvents)
	api.POST("/loads/:loadId/driver-actions", s.ApplyDriverAction)
	api.POST("/loads/:loadId/dispatcher-actions", s.ApplyDispatcherAction)
	api.POST("/loads/:loadId/documents", s.AttachDocument)
}

// StopSpecRequest is one waypoint in a load creation request.
type StopSpecRequest struct {
	Type          string    `json:"type"`
	ScheduledTime time.Time `json:"scheduledTime"`
}

// CreateLoadRequest is the body of POST /loads.
type CreateLoadRequest struct {
	Stops   []StopSpecRequest `json:"stops"`
	AsDraft bool              `json:"asDraft"`
}

// DriverActionRequest is the body of POST /loads/{id}/driver-actions.
type DriverActionRequest struct {
	Action string `json:"action"`
}

// AssignmentRequest carries the driver and vehicle for ASSIGN and REASSIGN.
type AssignmentRequest struct {
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
}

// DispatcherActionRequest is the body of POST /loads/{id}/dispatcher-actions.
type DispatcherActionRequest struct {
	Action     string             `json:"action"`
	Assignment *AssignmentRequest `json:"assignment"`
	Reason     string             `json:"reason"`
}

// AttachDocumentRequest is the body of POST /loads/{id}/documents.
type AttachDocumentRequest struct {
	DocumentID   string `json:"documentId"`
	DocumentType string `json:"documentType"`
}

// ActionResponse reports a completed lifecycle action: the load after the
// transition and the audit event that recorded it.
type ActionResponse struct {
	Phase string                `json:"phase"`
	Load  queries.LoadResponse  `json:"load"`
	Event queries.EventResponse `json:"event"`
}

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateLoadRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	stops := make([]commands.StopSpec, 0, len(req.Stops))
	for _, spec := range req.Stops {
		stopType, typeErr := load.StopTypeFromString(spec.Type)
		if typeErr != nil {
			return respondError(ctx, typeErr)
		}
		stops = append(stops, commands.StopSpec{Type: stopType, ScheduledTime: spec.ScheduledTime})
	}

	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), claims, stops, req.AsDraft, s.now())
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createLoadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, loadToResponse(created))
}

// GetLoads handles GET /api/v1/loads with an optional status filter.
func (s *Server) GetLoads(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var statusFilter *load.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := load.StatusFromString(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetFleetLoadsQuery(claims.FleetID, statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	loads, err := s.getFleetLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loads)
}

// GetLoad handles GET /api/v1/loads/{loadId}.
func (s *Server) GetLoad(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("loadId"))
	}

	query, err := queries.NewGetLoadQuery(claims.FleetID, loadID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetLoadEvents handles GET /api/v1/loads/{loadId}/events.
func (s *Server) GetLoadEvents(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("loadId"))
	}

	query, err := queries.NewGetLoadEventsQuery(claims.FleetID, loadID)
	if err != nil {
		return respondError(ctx, err)
	}

	events, err := s.getLoadEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, events)
}

// ApplyDriverAction handles POST /api/v1/loads/{loadId}/driver-actions.
func (s *Server) ApplyDriverAction(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("loadId"))
	}

	var req DriverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewApplyDriverActionCommand(loadID, claims, load.DriverAction(req.Action), s.now())
	if err != nil {
		return respondError(ctx, err)
	}

	outcome, err := s.driverActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondOutcome(ctx, outcome)
}

// ApplyDispatcherAction handles POST /api/v1/loads/{loadId}/dispatcher-actions.
func (s *Server) ApplyDispatcherAction(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("loadId"))
	}

	var req DispatcherActionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	var assignment *load.AssignmentData
	if req.Assignment != nil {
		driverID, idErr := kernel.UUIDFromString(req.Assignment.DriverID)
		if idErr != nil {
			return respondError(ctx, errs.NewInvalidPayloadError("assignment.driverId"))
		}
		vehicleID, idErr := kernel.UUIDFromString(req.Assignment.VehicleID)
		if idErr != nil {
			return respondError(ctx, errs.NewInvalidPayloadError("assignment.vehicleId"))
		}
		assignment = &load.AssignmentData{DriverID: driverID, VehicleID: vehicleID}
	}

	cmd, err := commands.NewApplyDispatcherActionCommand(
		loadID, claims, load.DispatcherAction(req.Action), assignment, req.Reason, s.now())
	if err != nil {
		return respondError(ctx, err)
	}

	outcome, err := s.dispatcherActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondOutcome(ctx, outcome)
}

// AttachDocument handles POST /api/v1/loads/{loadId}/documents.
func (s *Server) AttachDocument(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("loadId"))
	}

	var req AttachDocumentRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	documentID, err := kernel.UUIDFromString(req.DocumentID)
	if err != nil {
		return respondError(ctx, errs.NewInvalidPayloadError("documentId"))
	}

	cmd, err := commands.NewAttachDocumentCommand(
		loadID, claims, documentID, event.DocumentType(req.DocumentType), s.now())
	if err != nil {
		return respondError(ctx, err)
	}

	audit, err := s.attachDocumentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := eventToResponse(audit)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, resp)
}

func (s *Server) respondOutcome(ctx echo.Context, outcome commands.ActionOutcome) error {
	eventResp, err := eventToResponse(outcome.Event)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ActionResponse{
		Phase: outcome.Phase.String(),
		Load:  loadToResponse(outcome.Load),
		Event: eventResp,
	})
}

func loadToResponse(l *load.Load) queries.LoadResponse {
	stops := l.Stops()
	stopResponses := make([]queries.StopResponse, 0, len(stops))
	for _, s := range stops {
		stopResponses = append(stopResponses, queries.StopResponse{
			Type:          s.Type().String(),
			Sequence:      s.Sequence(),
			ScheduledTime: s.ScheduledTime(),
			ActualTime:    s.ActualTime(),
			Completed:     s.IsCompleted(),
		})
	}

	var driverID, vehicleID *string
	if id := l.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}
	if id := l.VehicleID(); id != nil {
		s := id.String()
		vehicleID = &s
	}

	return queries.LoadResponse{
		ID:        l.ID(),
		FleetID:   l.FleetID(),
		Status:    l.Status().String(),
		DriverID:  driverID,
		VehicleID: vehicleID,
		Stops:     stopResponses,
		UpdatedAt: l.UpdatedAt(),
	}
}

func eventToResponse(e *event.Event) (queries.EventResponse, error) {
	payload, err := event.MarshalPayload(e.Payload())
	if err != nil {
		return queries.EventResponse{}, err
	}

	return queries.EventResponse{
		ID:        e.ID(),
		LoadID:    e.LoadID(),
		Type:      e.Type().String(),
		ActorUID:  e.ActorUID(),
		Payload:   payload,
		CreatedAt: e.CreatedAt(),
	}, nil
}
