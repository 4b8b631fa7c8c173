package booking

import (
	"errors"
	"sort"
	"testing"
	"time"

	"helpnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepo is an in-memory AccountRepository for tests.
type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func newFakeAccountRepo(accounts ...*models.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[string]*models.Account)}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(acc *models.Account) error {
	cp := *acc
	r.accounts[acc.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByEmail(role, email string) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.Role == role && a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByPublicID(role, publicID string) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.Role == role && a.PublicID == publicID {
			cp := *a
			cp.PasswordHash = ""
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) PublicIDExists(publicID string) (bool, error) {
	for _, a := range r.accounts {
		if a.PublicID == publicID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) List(role string, onlyAvailable bool) ([]models.Account, error) {
	var out []models.Account
	for _, a := range r.accounts {
		if role != "" && a.Role != role {
			continue
		}
		if onlyAvailable && !a.IsAvailable {
			continue
		}
		cp := *a
		cp.PasswordHash = ""
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeAccountRepo) AppendBooking(accountID, bookingID string) error {
	a, ok := r.accounts[accountID]
	if !ok {
		return errors.New("account not found")
	}
	a.Bookings = append(a.Bookings, bookingID)
	return nil
}

func (r *fakeAccountRepo) SetRating(accountID string, rating float64) error {
	a, ok := r.accounts[accountID]
	if !ok {
		return errors.New("account not found")
	}
	a.Rating = rating
	return nil
}

func (r *fakeAccountRepo) SetAvailability(accountID string, available bool) error {
	a, ok := r.accounts[accountID]
	if !ok {
		return errors.New("account not found")
	}
	a.IsAvailable = available
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	if cp.AssignedTo == "" && cp.LegacyAssignedTo != "" {
		cp.AssignedTo = cp.LegacyAssignedTo
	}
	return &cp, nil
}

func (r *fakeBookingRepo) ListByProviderPublicID(publicID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.AssignedTo == publicID || b.LegacyAssignedTo == publicID {
			cp := *b
			if cp.AssignedTo == "" {
				cp.AssignedTo = cp.LegacyAssignedTo
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) SetRating(id string, rating *models.Rating) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Rating = rating
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) AverageRating(providerID string) (float64, int64, error) {
	var sum float64
	var count int64
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Rating != nil {
			sum += float64(b.Rating.Score)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

func driverAccount() *models.Account {
	return &models.Account{
		ID:          "acc-1",
		PublicID:    "driver_AB12CD",
		Name:        "Alice Driver",
		Email:       "alice@example.com",
		Role:        models.RoleDriver,
		Phone:       "0712345678",
		IsAvailable: true,
		Rating:      5,
	}
}

func createReq(publicID string) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		CustomerName:     "Bob Customer",
		CustomerPhone:    "0798765432",
		ServiceType:      "driver",
		ProviderPublicID: publicID,
		Date:             "2024-06-01",
		Time:             "10:00",
		Address:          "42 Acacia Avenue",
	}
}

func newService(accounts ...*models.Account) (*DefaultBookingService, *fakeBookingRepo, *fakeAccountRepo) {
	accRepo := newFakeAccountRepo(accounts...)
	bkRepo := newFakeBookingRepo()
	return &DefaultBookingService{Repo: bkRepo, Accounts: accRepo}, bkRepo, accRepo
}

func TestCreateBooking(t *testing.T) {
	provider := driverAccount()
	svc, _, accRepo := newService(provider)

	b, err := svc.Create(createReq(provider.PublicID))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, provider.ID, b.ProviderID)
	assert.Equal(t, provider.PublicID, b.AssignedTo)
	assert.Equal(t, []string{b.ID}, accRepo.accounts[provider.ID].Bookings)
}

func TestCreateBookingProviderNotFound(t *testing.T) {
	svc, _, _ := newService(driverAccount())

	_, err := svc.Create(createReq("driver_ZZZZZZ"))
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestListForProviderNewestFirst(t *testing.T) {
	provider := driverAccount()
	svc, bkRepo, _ := newService(provider)

	first, err := svc.Create(createReq(provider.PublicID))
	require.NoError(t, err)
	// Force distinct creation times; the fake stamps time.Now on insert.
	bkRepo.bookings[first.ID].CreatedAt = time.Now().Add(-time.Hour)

	second, err := svc.Create(createReq(provider.PublicID))
	require.NoError(t, err)

	bookings, err := svc.ListForProvider(provider.PublicID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}

func TestListForProviderLegacyField(t *testing.T) {
	provider := driverAccount()
	svc, bkRepo, _ := newService(provider)

	// Record written under the pre-rename schema.
	legacy := &models.Booking{
		ID:               "legacy-1",
		ServiceType:      "driver",
		Status:           models.StatusPending,
		ProviderID:       provider.ID,
		LegacyAssignedTo: provider.PublicID,
		CreatedAt:        time.Now(),
	}
	bkRepo.bookings[legacy.ID] = legacy

	bookings, err := svc.ListForProvider(provider.PublicID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, provider.PublicID, bookings[0].AssignedTo)
}

func TestUpdateStatusOwnership(t *testing.T) {
	provider := driverAccount()
	svc, _, _ := newService(provider)

	b, err := svc.Create(createReq(provider.PublicID))
	require.NoError(t, err)

	stranger := &models.Account{ID: "acc-2", PublicID: "driver_XY98ZW", Role: models.RoleDriver}
	for _, status := range []string{models.StatusAccepted, models.StatusRejected, "bogus"} {
		_, err := svc.UpdateStatus(b.ID, status, stranger)
		assert.ErrorIs(t, err, ErrNotAssigned, "status %q", status)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	provider := driverAccount()
	svc, _, _ := newService(provider)

	b, err := svc.Create(createReq(provider.PublicID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(b.ID, "confirmed", provider)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(b.ID, models.StatusCompleted, provider)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	updated, err := svc.UpdateStatus(b.ID, models.StatusAccepted, provider)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	updated, err = svc.UpdateStatus(b.ID, models.StatusCompleted, provider)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	// Completed is terminal.
	_, err = svc.UpdateStatus(b.ID, models.StatusPending, provider)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusNotFound(t *testing.T) {
	provider := driverAccount()
	svc, _, _ := newService(provider)

	_, err := svc.UpdateStatus("missing", models.StatusAccepted, provider)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func completedBooking(t *testing.T, svc *DefaultBookingService, provider *models.Account) *models.Booking {
	t.Helper()
	b, err := svc.Create(createReq(provider.PublicID))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(b.ID, models.StatusAccepted, provider)
	require.NoError(t, err)
	updated, err := svc.UpdateStatus(b.ID, models.StatusCompleted, provider)
	require.NoError(t, err)
	return updated
}

func TestRateRequiresCompletion(t *testing.T) {
	provider := driverAccount()
	svc, _, _ := newService(provider)

	b, err := svc.Create(createReq(provider.PublicID))
	require.NoError(t, err)

	_, err = svc.Rate(b.ID, 5, "great")
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = svc.Rate("missing", 5, "great")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.Rate(b.ID, 6, "")
	assert.ErrorIs(t, err, ErrInvalidScore)
}

func TestRateRecomputesProviderAverage(t *testing.T) {
	provider := driverAccount()
	svc, _, accRepo := newService(provider)

	scores := []int{5, 4, 5}
	for _, score := range scores {
		b := completedBooking(t, svc, provider)
		rated, err := svc.Rate(b.ID, score, "solid work")
		require.NoError(t, err)
		assert.Equal(t, score, rated.Rating.Score)
	}

	// (5+4+5)/3 = 4.666..., rounded to one decimal place.
	assert.Equal(t, 4.7, accRepo.accounts[provider.ID].Rating)
}

func TestRateRepeatedLastScoreWins(t *testing.T) {
	provider := driverAccount()
	svc, _, accRepo := newService(provider)

	b := completedBooking(t, svc, provider)
	_, err := svc.Rate(b.ID, 2, "meh")
	require.NoError(t, err)
	assert.Equal(t, 2.0, accRepo.accounts[provider.ID].Rating)

	// Re-rating overwrites; the average comes from current scores, not a
	// rolling sum.
	_, err = svc.Rate(b.ID, 5, "actually great")
	require.NoError(t, err)
	assert.Equal(t, 5.0, accRepo.accounts[provider.ID].Rating)
}

func TestAvailableProvidersIgnoresAvailabilityFlag(t *testing.T) {
	provider := driverAccount()
	provider.IsAvailable = false
	svc, _, _ := newService(provider)

	providers, err := svc.AvailableProviders("driver")
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Empty(t, providers[0].PasswordHash)
}
