// File: services/admin/analytics.go
package admin

import (
	"context"
	"time"

	bookingRepo "haulify/database/repository/booking"
	"haulify/models"
)

// AnalyticsService serves the admin dashboard aggregates.
type AnalyticsService struct {
	Bookings bookingRepo.BookingRepository
}

// AnalyticsSummary is the dashboard roll-up over the reporting window.
type AnalyticsSummary struct {
	WindowDays    int                        `json:"windowDays"`
	TotalBookings int                        `json:"totalBookings"`
	TotalRevenue  float64                    `json:"totalRevenue"`
	Daily         []models.DailyBookingStats `json:"daily"`
}

// Summary aggregates confirmed bookings and revenue over the past N days.
func (s *AnalyticsService) Summary(ctx context.Context, windowDays int) (*AnalyticsSummary, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	fromDate := time.Now().AddDate(0, 0, -windowDays).Format("2006-01-02")

	daily, err := s.Bookings.DailyStats(ctx, fromDate)
	if err != nil {
		return nil, err
	}

	summary := &AnalyticsSummary{WindowDays: windowDays, Daily: daily}
	for _, day := range daily {
		summary.TotalBookings += day.Bookings
		summary.TotalRevenue += day.Revenue
	}
	return summary, nil
}
