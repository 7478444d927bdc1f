package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"stayfront/internal/domain/booking"
	"stayfront/internal/domain/property"
	"stayfront/internal/pkg/clock"
	"stayfront/internal/pkg/metrics"
	"stayfront/internal/usecase/commands"
	"stayfront/internal/usecase/queries"
	"stayfront/internal/view"
)

// Form fields in page order, posted by the booking form.
var bookingFields = []string{
	booking.FieldFirstName,
	booking.FieldLastName,
	booking.FieldEmail,
	booking.FieldPhoneNumber,
	booking.FieldCheckIn,
	booking.FieldCheckOut,
	booking.FieldGuests,
	booking.FieldCardNumber,
	booking.FieldExpirationDate,
	booking.FieldCVV,
	booking.FieldBillingAddress,
}

// PropertyPages renders the property detail page and handles its booking
// form post.
type PropertyPages struct {
	propertyQueries queries.PropertyQueries
	bookingCommands commands.BookingCommands
	templates       *TemplateCache
	clock           clock.Clock
	logger          *slog.Logger
	metrics         *metrics.Metrics
}

func NewPropertyPages(
	propertyQueries queries.PropertyQueries,
	bookingCommands commands.BookingCommands,
	templates *TemplateCache,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) *PropertyPages {
	return &PropertyPages{
		propertyQueries: propertyQueries,
		bookingCommands: bookingCommands,
		templates:       templates,
		clock:           clk,
		logger:          logger,
		metrics:         m,
	}
}

type propertyPageData struct {
	Detail    view.PropertySnapshot
	Booking   *view.BookingSnapshot
	CSRFField template.HTML
}

// Show renders the listing with the booking form below it.
func (h *PropertyPages) Show(c *gin.Context) {
	snap := h.loadProperty(c)

	var bookingSnap *view.BookingSnapshot
	if snap.State == property.StateFound {
		form := view.NewBookingForm(h.bookingCommands, h.logger, snap.ID, snap.Property.PricePerNight)
		s := form.Snapshot()
		bookingSnap = &s
	}

	h.metrics.PagesRendered.WithLabelValues(snap.State.String()).Inc()
	h.render(c, statusFor(snap.State), snap, bookingSnap)
}

// Book handles the form post and re-renders the page with the result
// inline. Entered values are preserved on both success and failure.
func (h *PropertyPages) Book(c *gin.Context) {
	snap := h.loadProperty(c)
	if snap.State != property.StateFound {
		h.metrics.PagesRendered.WithLabelValues(snap.State.String()).Inc()
		h.render(c, statusFor(snap.State), snap, nil)
		return
	}

	form := view.NewBookingForm(h.bookingCommands, h.logger, snap.ID, snap.Property.PricePerNight)
	for _, field := range bookingFields {
		if err := form.SetField(field, c.PostForm(field)); err != nil {
			h.logger.Warn("rejected form value", "field", field, "error", err)
		}
	}

	bookingSnap := form.Submit(c.Request.Context())

	outcome := "booked"
	if bookingSnap.Status != view.StatusSuccess {
		outcome = "booking_error"
	}
	h.metrics.PagesRendered.WithLabelValues(outcome).Inc()
	h.render(c, http.StatusOK, snap, &bookingSnap)
}

func (h *PropertyPages) loadProperty(c *gin.Context) view.PropertySnapshot {
	detail := view.NewPropertyDetail(h.propertyQueries, h.clock, h.logger)
	detail.SetID(c.Request.Context(), c.Param("id"))
	return detail.Wait(c.Request.Context())
}

func (h *PropertyPages) render(c *gin.Context, status int, snap view.PropertySnapshot, bookingSnap *view.BookingSnapshot) {
	tmpl := h.templates.Get("property.html")
	if tmpl == nil {
		c.String(http.StatusInternalServerError, "Template not found")
		return
	}

	data := propertyPageData{
		Detail:    snap,
		Booking:   bookingSnap,
		CSRFField: csrf.TemplateField(c.Request),
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(c.Writer, data); err != nil {
		h.logger.Error("render property page", "error", err)
	}
}

func statusFor(state property.FetchState) int {
	switch state {
	case property.StateNotFound:
		return http.StatusNotFound
	case property.StateFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusOK
	}
}
