package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/service"
	"github.com/iliyamo/restaurant-reservation/internal/validation"
)

// ReservationHandler exposes the reservation book over HTTP: the
// dashboard listing, phone search, creation, edits and status changes.
type ReservationHandler struct {
	Reservations *service.ReservationService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(reservations *service.ReservationService) *ReservationHandler {
	if reservations == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: reservations}
}

// reservationPayload is the wire form of a reservation's editable
// fields, wrapped in the {"data": ...} envelope the clients send.
type reservationPayload struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MobileNumber    string `json:"mobile_number"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	People          int    `json:"people"`
	Status          string `json:"status,omitempty"`
}

func (p reservationPayload) toInput() validation.ReservationInput {
	return validation.ReservationInput{
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		MobileNumber:    p.MobileNumber,
		ReservationDate: p.ReservationDate,
		ReservationTime: p.ReservationTime,
		People:          p.People,
		Status:          p.Status,
	}
}

// List handles GET /v1/reservations.  With ?mobile_number= it runs the
// phone search; otherwise it lists the given (default: today's) date in
// time order.  The dashboard view excludes finished and cancelled
// reservations unless ?include_finished=true asks for the full history.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if mobile := c.QueryParam("mobile_number"); mobile != "" {
		matches, err := h.Reservations.Search(ctx, mobile)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": matches})
	}

	includeClosed := c.QueryParam("include_finished") == "true"
	list, err := h.Reservations.List(ctx, c.QueryParam("date"), includeClosed)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": list})
}

// Create handles POST /v1/reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct {
		Data reservationPayload `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Reservations.Create(c.Request().Context(), body.Data.toInput())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": res})
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	res, err := h.Reservations.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

// Update handles PUT /v1/reservations/:id, a full-field edit that runs
// the same validation as creation.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var body struct {
		Data reservationPayload `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Reservations.Update(c.Request().Context(), id, body.Data.toInput())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

// UpdateStatus handles PUT /v1/reservations/:id/status.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var body struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Reservations.UpdateStatus(c.Request().Context(), id, body.Data.Status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

func reservationID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
