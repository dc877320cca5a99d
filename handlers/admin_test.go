package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"haulify/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingLister struct {
	byDate map[string][]models.Booking
}

func (f *fakeBookingLister) Create(ctx context.Context, b *models.Booking) error { return nil }

func (f *fakeBookingLister) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingLister) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return f.byDate[date], nil
}

func (f *fakeBookingLister) List(ctx context.Context, status string, limit, offset int64) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingLister) UpdateStatus(ctx context.Context, id, status string) error { return nil }

func (f *fakeBookingLister) AssignDriver(ctx context.Context, id, driverID string) error { return nil }

func (f *fakeBookingLister) DailyStats(ctx context.Context, fromDate string) ([]models.DailyBookingStats, error) {
	return nil, nil
}

func (f *fakeBookingLister) CustomerEmails(ctx context.Context) ([]string, error) { return nil, nil }

func dayBoardRouter(repo *fakeBookingLister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ah := &AdminHandler{Bookings: repo}
	router.GET("/bookings/day/:date", ah.BookingsForDay)
	return router
}

func TestBookingsForDayReturnsDaySchedule(t *testing.T) {
	repo := &fakeBookingLister{byDate: map[string][]models.Booking{
		"2026-09-07": {
			{ID: "b1", Date: "2026-09-07", Slot: models.SlotMorning},
			{ID: "b2", Date: "2026-09-07", Slot: models.SlotEvening},
		},
	}}
	router := dayBoardRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/day/2026-09-07", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Date     string           `json:"date"`
		Bookings []models.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-07", body.Date)
	require.Len(t, body.Bookings, 2)
	assert.Equal(t, "b1", body.Bookings[0].ID)
}

func TestBookingsForDayRejectsMalformedDate(t *testing.T) {
	router := dayBoardRouter(&fakeBookingLister{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/day/not-a-date", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
