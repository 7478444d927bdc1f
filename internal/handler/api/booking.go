package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "stayfront/internal/handler/dto/request"
	resdto "stayfront/internal/handler/dto/response"
	"stayfront/internal/handler/httperr"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/upstream"
	"stayfront/internal/usecase/commands"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Submit booking
// @Description Submit a booking for a property; the total is derived from the nightly rate server-side
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := commands.SubmitBookingParams{
		Form:        req.ToForm(),
		PropertyID:  req.PropertyID,
		NightlyRate: req.PricePerNight,
	}

	result, err := h.bookingCommands.Submit(c.Request.Context(), params)
	if err != nil {
		var rejected *upstream.RejectedError
		switch {
		case errors.As(err, &rejected):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, rejected.Message, nil)
		case errors.Is(err, errs.ErrBookingRejected):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Failed to submit booking. Please try again.", nil)
		case errors.Is(err, errs.ErrFormIncomplete), errors.Is(err, errs.ErrInvalidGuests):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", nil)
		case errors.Is(err, errs.ErrUpstreamUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Header("Location", "/api/bookings/"+result.Reference.String())
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}
