package handler

import (
    "context"
    "database/sql"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/config"
    "github.com/iliyamo/hotel-reservation/internal/engine"
    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/queue"
    "github.com/iliyamo/hotel-reservation/internal/repository"
    queue_publisher "github.com/iliyamo/hotel-reservation/internal/service"
    "github.com/iliyamo/hotel-reservation/internal/utils"
)

// BookingHandler creates and manages bookings.  Creation runs inside a
// transaction that row-locks the room's existing bookings, so two
// concurrent requests for the same room serialize and the second one
// sees the first one's rows when the engine gates run.
type BookingHandler struct {
	Cfg      config.Config
	Bookings *repository.BookingRepo
	Rooms    *repository.RoomRepo
	Periods  *repository.PricePeriodRepo
	Packages *repository.HolidayPackageRepo
}

// NewBookingHandler constructs a BookingHandler.  All repositories must be non-nil.
func NewBookingHandler(cfg config.Config, bookings *repository.BookingRepo, rooms *repository.RoomRepo, periods *repository.PricePeriodRepo, packages *repository.HolidayPackageRepo) *BookingHandler {
	if bookings == nil || rooms == nil || periods == nil || packages == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Cfg: cfg, Bookings: bookings, Rooms: rooms, Periods: periods, Packages: packages}
}

type bookingReq struct {
	RoomID           uint64  `json:"room_id"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	NumAdults        int     `json:"num_adults"`
	NumChildren      int     `json:"num_children"`
	HolidayPackageID *uint64 `json:"holiday_package_id"`
}

// Create handles POST /v1/bookings.  Ordinary bookings pass the
// availability gate (holiday package check first, then the legacy
// room conflict rule) and are priced night by night.  Package bookings
// pass the package's own rules instead and are charged the package's
// whole-stay price for the room type.  The total is snapshotted on the
// booking row; later price period edits never reprice it.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}
	if req.NumAdults < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "num_adults must be at least 1"})
	}
	if req.NumChildren < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "num_children must not be negative"})
	}
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in_date: " + err.Error()})
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out_date: " + err.Error()})
	}
	if !checkOut.After(checkIn) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out_date must be after check_in_date"})
	}

	ctx := c.Request().Context()

	// Active packages over the stay; loaded before the transaction since
	// package rows aren't row-locked by the booking flow.
	packages, err := h.Packages.ListActiveIntersecting(ctx, checkIn, checkOut)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load packages"})
	}

	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	room, err := h.Rooms.GetByIDTx(ctx, tx, req.RoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load room"})
	}
	// Lock the room's bookings for the duration of the transaction.
	existing, err := h.Bookings.ListByRoomTx(ctx, tx, room.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}

	var (
		total   uint32
		pkgName string
	)
	if req.HolidayPackageID != nil {
		pkg, err := h.Packages.GetByID(ctx, *req.HolidayPackageID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load package"})
		}
		price, err := engine.PackagePriceForRoomType(pkg, room.RoomType)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "package does not cover this room type"})
		}
		if err := engine.ValidateBookingAgainstPackage(pkg, existing); err != nil {
			if errors.Is(err, engine.ErrConflict) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "package dates conflict with an existing booking"})
			}
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		// The room itself must still be free of conflicting bookings.
		if !engine.RoomIsAvailable(checkIn, checkOut, existing) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room is not available for the selected dates"})
		}
		total = price
		pkgName = pkg.Name
	} else {
		res, err := engine.CheckAvailability(room.RoomType, checkIn, checkOut, packages, existing)
		if err != nil {
			if errors.Is(err, engine.ErrValidation) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
		}
		if !res.Available {
			if res.BlockingPackage != "" {
				return c.JSON(http.StatusConflict, echo.Map{
					"error":            "room type is reserved for a holiday package",
					"blocking_package": res.BlockingPackage,
				})
			}
			return c.JSON(http.StatusConflict, echo.Map{"error": "room is not available for the selected dates"})
		}
		periods, err := h.Periods.ListIntersecting(ctx, room.RoomType, checkIn, checkOut)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load price periods"})
		}
		calc, err := engine.CalculatePrice(room, periods, checkIn, checkOut)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "price calculation failed"})
		}
		total = calc.TotalCents
	}

	code, err := h.newUniqueCode(ctx, tx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to generate confirmation code"})
	}

	booking := model.Booking{
		RoomID:           room.ID,
		UserID:           userID,
		HolidayPackageID: req.HolidayPackageID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		NumAdults:        req.NumAdults,
		NumChildren:      req.NumChildren,
		ConfirmationCode: code,
		TotalPriceCents:  total,
	}
	if err := h.Bookings.CreateTx(ctx, tx, &booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Best effort: a broker outage must not fail a committed booking.
	go publishConfirmed(booking, room.RoomType, pkgName)

	return c.JSON(http.StatusCreated, echo.Map{"item": booking})
}

// newUniqueCode draws confirmation codes until one is unused.  The
// code space is huge (36^10), so collisions are essentially retries
// for free; the attempt cap only guards against a broken RNG.
func (h *BookingHandler) newUniqueCode(ctx context.Context, tx *sql.Tx) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := utils.NewConfirmationCode(h.Cfg.CodeLength)
		if err != nil {
			return "", err
		}
		exists, err := h.Bookings.CodeExistsTx(ctx, tx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique confirmation code")
}

func publishConfirmed(b model.Booking, roomType, pkgName string) {
	nights := int(b.CheckOutDate.Sub(b.CheckInDate) / (24 * time.Hour))
	ev := queue.BookingConfirmedEvent{
		BookingID:        b.ID,
		UserID:           b.UserID,
		RoomID:           b.RoomID,
		RoomType:         roomType,
		HolidayPackage:   pkgName,
		CheckInDate:      b.CheckInDate.Format(dateLayout),
		CheckOutDate:     b.CheckOutDate.Format(dateLayout),
		Nights:           nights,
		ConfirmationCode: b.ConfirmationCode,
		TotalPriceCents:  b.TotalPriceCents,
	}
	ev.ConfirmedAt = time.Now().UTC().Format(time.RFC3339)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := queue_publisher.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("booking %d: publish booking.confirmed failed: %v", b.ID, err)
	}
}

// FindByCode handles GET /v1/bookings/code/:code.  Guests look up
// their booking with the confirmation code alone, no account needed.
func (h *BookingHandler) FindByCode(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "confirmation code is required"})
	}
	booking, err := h.Bookings.GetByConfirmationCode(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": booking})
}

// List handles GET /v1/admin/bookings.  Newest first.
func (h *BookingHandler) List(c echo.Context) error {
	items, err := h.Bookings.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Delete handles DELETE /v1/admin/bookings/:id.  Cancellation is a
// hard delete; the freed nights become bookable again immediately.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	if err := h.Bookings.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete booking"})
	}
	return c.NoContent(http.StatusNoContent)
}
