package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/service"
)

// TableHandler exposes the dining-room tables over HTTP, including the
// seat and unseat operations.  After a successful occupancy change it
// publishes a seating event to the broker; publish failures are only
// logged, the database write has already committed.
type TableHandler struct {
	Tables       *service.TableService
	Reservations *service.ReservationService
}

// NewTableHandler constructs a TableHandler.
func NewTableHandler(tables *service.TableService, reservations *service.ReservationService) *TableHandler {
	if tables == nil || reservations == nil {
		panic("nil service passed to NewTableHandler")
	}
	return &TableHandler{Tables: tables, Reservations: reservations}
}

// List handles GET /v1/tables, ordered by table name.
func (h *TableHandler) List(c echo.Context) error {
	tables, err := h.Tables.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": tables})
}

// Create handles POST /v1/tables.
func (h *TableHandler) Create(c echo.Context) error {
	var body struct {
		Data struct {
			TableName string `json:"table_name"`
			Capacity  int    `json:"capacity"`
		} `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	tbl, err := h.Tables.Create(c.Request().Context(), body.Data.TableName, body.Data.Capacity)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": tbl})
}

// Seat handles PUT /v1/tables/:id/seat, assigning the reservation in
// the body to the table and marking it seated in one atomic step.
func (h *TableHandler) Seat(c echo.Context) error {
	tableID, err := tableIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	var body struct {
		Data struct {
			ReservationID uint64 `json:"reservation_id"`
		} `json:"data"`
	}
	if err := c.Bind(&body); err != nil || body.Data.ReservationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "A 'reservation_id' property is required"})
	}

	ctx := c.Request().Context()
	tbl, err := h.Tables.Seat(ctx, tableID, body.Data.ReservationID)
	if err != nil {
		return writeDomainError(c, err)
	}
	h.publishSeating(c, tbl, body.Data.ReservationID, "seated")
	return c.JSON(http.StatusOK, echo.Map{"data": tbl})
}

// Unseat handles DELETE /v1/tables/:id/seat, freeing the table and
// finishing its reservation in one atomic step.
func (h *TableHandler) Unseat(c echo.Context) error {
	tableID, err := tableIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	tbl, freedID, err := h.Tables.Unseat(c.Request().Context(), tableID)
	if err != nil {
		return writeDomainError(c, err)
	}
	h.publishSeating(c, tbl, freedID, "finished")
	return c.JSON(http.StatusOK, echo.Map{"data": tbl})
}

// publishSeating emits a SeatingEvent for a committed occupancy change.
func (h *TableHandler) publishSeating(c echo.Context, tbl *model.Table, reservationID uint64, action string) {
	ev := queue.SeatingEvent{
		Action:        action,
		TableID:       tbl.ID,
		TableName:     tbl.TableName,
		ReservationID: reservationID,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if res, err := h.Reservations.Get(c.Request().Context(), reservationID); err == nil {
		ev.GuestName = res.FirstName + " " + res.LastName
		ev.PartySize = res.People
	}
	_ = queue.PublishSeatingEvent(c.Request().Context(), ev)
}

func tableIDParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
