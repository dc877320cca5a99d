package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"haulify/models"
	"haulify/services/availability"
	"haulify/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	sessions  map[string]*models.QuoteSession
	cancelled []string
}

func (f *fakeSessionStore) Initiate(ctx context.Context) (*models.SessionResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSessionStore) Update(ctx context.Context, sessionID string, input UpdateInput) (*models.SessionResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSessionStore) Get(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) Cancel(ctx context.Context, sessionID string) error {
	f.cancelled = append(f.cancelled, sessionID)
	delete(f.sessions, sessionID)
	return nil
}

type fakeBookingStore struct {
	created []*models.Booking
}

func (f *fakeBookingStore) Create(ctx context.Context, b *models.Booking) error {
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not found")
}

func (f *fakeBookingStore) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) List(ctx context.Context, status string, limit, offset int64) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) UpdateStatus(ctx context.Context, id, status string) error { return nil }

func (f *fakeBookingStore) AssignDriver(ctx context.Context, id, driverID string) error { return nil }

func (f *fakeBookingStore) DailyStats(ctx context.Context, fromDate string) ([]models.DailyBookingStats, error) {
	return nil, nil
}

func (f *fakeBookingStore) CustomerEmails(ctx context.Context) ([]string, error) { return nil, nil }

type fakePayments struct {
	intents int
	fail    bool
}

func (f *fakePayments) CreateIntent(ctx context.Context, b *models.Booking) (string, string, error) {
	if f.fail {
		return "", "", errors.New("payment provider unavailable")
	}
	f.intents++
	return "pi_test_123", "pi_test_123_secret", nil
}

type fakeMailer struct {
	sent chan models.EmailMessage
}

func (f *fakeMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	f.sent <- msg
	return nil
}

type stubRules struct {
	rules models.ScheduleRules
	err   error
}

func (s *stubRules) GetRules(ctx context.Context) (*models.ScheduleRules, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.rules, nil
}

// Monday 2026-09-07 with a staffed morning window; "today" is the prior
// Tuesday.
func openMondayResolver() *availability.Resolver {
	source := &stubRules{rules: models.ScheduleRules{
		Weekly: []models.WeeklySlot{
			{ID: "mon-am", DayOfWeek: time.Monday, Start: 480, End: 720, Available: true},
		},
	}}
	r := availability.NewResolver(source, nil)
	r.Now = func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }
	return r
}

func completeSession(id string) *models.QuoteSession {
	return &models.QuoteSession{
		SessionID:     id,
		CustomerName:  "Dana Tremblay",
		CustomerPhone: "514-555-0199",
		Date:          "2026-09-07",
		Slot:          models.SlotMorning,
		Tier:          models.TierPremium,
		DistanceKm:    20,
		Cart: models.Cart{Items: []models.InventoryItem{
			{Name: "Queen Mattress", Category: "Bedroom", UnitWeight: 85, UnitVolume: 65, Quantity: 1},
		}},
	}
}

func newEngine(sessions *fakeSessionStore, store *fakeBookingStore, payments *fakePayments, mailer *fakeMailer) *DefaultBookingEngine {
	return &DefaultBookingEngine{
		Repo:     store,
		Sessions: sessions,
		Resolver: openMondayResolver(),
		Rates:    StaticRateSource{Rates: pricing.DefaultRates()},
		Payments: payments,
		Mailer:   mailer,
	}
}

func TestConfirmPersistsBookingWithServerSideQuote(t *testing.T) {
	session := completeSession("s1")
	session.Quote = &models.Quote{Total: 1} // stale client-visible quote, must be ignored
	sessions := &fakeSessionStore{sessions: map[string]*models.QuoteSession{"s1": session}}
	store := &fakeBookingStore{}
	payments := &fakePayments{}

	engine := newEngine(sessions, store, payments, &fakeMailer{sent: make(chan models.EmailMessage, 1)})
	record, clientSecret, err := engine.Confirm(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "pi_test_123_secret", clientSecret)
	assert.Equal(t, models.BookingConfirmed, record.Status)
	assert.Equal(t, "pi_test_123", record.PaymentIntentID)

	// Quote is recomputed from the cart, never copied from the session.
	assert.InDelta(t, 155.326875, record.Quote.Total, 1e-9)

	require.Len(t, store.created, 1)
	assert.Equal(t, record.ID, store.created[0].ID)
	assert.Equal(t, []string{"s1"}, sessions.cancelled)
	assert.Equal(t, 1, payments.intents)
}

func TestConfirmSendsConfirmationEmail(t *testing.T) {
	session := completeSession("s1")
	session.CustomerEmail = "dana@example.com"
	sessions := &fakeSessionStore{sessions: map[string]*models.QuoteSession{"s1": session}}
	mailer := &fakeMailer{sent: make(chan models.EmailMessage, 1)}

	engine := newEngine(sessions, &fakeBookingStore{}, &fakePayments{}, mailer)
	_, _, err := engine.Confirm(context.Background(), "s1")
	require.NoError(t, err)

	select {
	case msg := <-mailer.sent:
		assert.Equal(t, "dana@example.com", msg.To)
		assert.Contains(t, msg.Body, "155.33")
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestConfirmValidation(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(s *models.QuoteSession)
		wantErr *BookingError
	}{
		{
			name:    "empty cart",
			mutate:  func(s *models.QuoteSession) { s.Cart = models.Cart{} },
			wantErr: ErrEmptyCart,
		},
		{
			name:    "missing date",
			mutate:  func(s *models.QuoteSession) { s.Date = "" },
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing slot",
			mutate:  func(s *models.QuoteSession) { s.Slot = "" },
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing tier",
			mutate:  func(s *models.QuoteSession) { s.Tier = "" },
			wantErr: ErrIncomplete,
		},
		{
			name:    "date without weekly slot",
			mutate:  func(s *models.QuoteSession) { s.Date = "2026-09-08" }, // a Tuesday
			wantErr: ErrSlotUnavailable,
		},
		{
			name:    "slot outside operating window",
			mutate:  func(s *models.QuoteSession) { s.Slot = models.SlotEvening },
			wantErr: ErrSlotUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session := completeSession("s1")
			tc.mutate(session)
			sessions := &fakeSessionStore{sessions: map[string]*models.QuoteSession{"s1": session}}
			store := &fakeBookingStore{}

			engine := newEngine(sessions, store, &fakePayments{}, &fakeMailer{sent: make(chan models.EmailMessage, 1)})
			_, _, err := engine.Confirm(context.Background(), "s1")

			var bErr *BookingError
			require.ErrorAs(t, err, &bErr)
			assert.Equal(t, tc.wantErr.Code, bErr.Code)
			assert.Empty(t, store.created)
			assert.Empty(t, sessions.cancelled)
		})
	}
}

func TestConfirmUnknownSession(t *testing.T) {
	sessions := &fakeSessionStore{sessions: map[string]*models.QuoteSession{}}
	engine := newEngine(sessions, &fakeBookingStore{}, &fakePayments{}, &fakeMailer{sent: make(chan models.EmailMessage, 1)})

	_, _, err := engine.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmPaymentFailureLeavesNoBooking(t *testing.T) {
	session := completeSession("s1")
	sessions := &fakeSessionStore{sessions: map[string]*models.QuoteSession{"s1": session}}
	store := &fakeBookingStore{}

	engine := newEngine(sessions, store, &fakePayments{fail: true}, &fakeMailer{sent: make(chan models.EmailMessage, 1)})
	_, _, err := engine.Confirm(context.Background(), "s1")

	require.Error(t, err)
	assert.Empty(t, store.created)
	// The session survives a failed payment so the customer can retry.
	assert.Empty(t, sessions.cancelled)
}

func TestBuildItemPrefersCatalog(t *testing.T) {
	item, err := buildItem(ItemInput{CatalogID: "dresser", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "Dresser", item.Name)
	assert.Equal(t, 2, item.Quantity)

	custom, err := buildItem(ItemInput{CustomName: "Piano", UnitWeight: 500, UnitVolume: 120, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryCustom, custom.Category)
}
