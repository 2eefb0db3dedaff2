package ledger

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	packageRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/packages"
	"github.com/m04kA/PT-ScheduleService/internal/service/ledger/models"
)

type fakePackageRepo struct {
	packages []*domain.Package
	nextID   int64
}

func (r *fakePackageRepo) Create(_ context.Context, pkg *domain.Package) (*domain.Package, error) {
	r.nextID++
	created := *pkg
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.packages = append(r.packages, &created)
	return &created, nil
}

func (r *fakePackageRepo) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	for _, p := range r.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, packageRepo.ErrPackageNotFound
}

func (r *fakePackageRepo) ListByMember(_ context.Context, clientName string) ([]*domain.Package, error) {
	var result []*domain.Package
	for _, p := range r.packages {
		if p.BelongsTo(clientName) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].PurchasedAt.Equal(result[j].PurchasedAt) {
			return result[i].PurchasedAt.Before(result[j].PurchasedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *fakePackageRepo) ListAll(_ context.Context) ([]*domain.Package, error) {
	result := make([]*domain.Package, len(r.packages))
	copy(result, r.packages)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].PurchasedAt.Equal(result[j].PurchasedAt) {
			return result[i].PurchasedAt.Before(result[j].PurchasedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *fakePackageRepo) Delete(_ context.Context, id int64) error {
	for i, p := range r.packages {
		if p.ID == id {
			r.packages = append(r.packages[:i], r.packages[i+1:]...)
			return nil
		}
	}
	return packageRepo.ErrPackageNotFound
}

func (r *fakePackageRepo) DeleteByMember(_ context.Context, clientName string) error {
	kept := r.packages[:0]
	for _, p := range r.packages {
		if !p.BelongsTo(clientName) {
			kept = append(kept, p)
		}
	}
	r.packages = kept
	return nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListByPackage(_ context.Context, packageID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.PackageID == packageID {
			result = append(result, b)
		}
	}
	return result, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(pkgs *fakePackageRepo, bookings *fakeBookingRepo) *Service {
	svc := NewService(pkgs, bookings, []int{1, 5, 10, 20}, nopLogger{})
	svc.timeProvider = &fixedTime{now: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)}
	return svc
}

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func TestPurchasePackage(t *testing.T) {
	repo := &fakePackageRepo{}
	svc := newTestService(repo, &fakeBookingRepo{})

	resp, err := svc.PurchasePackage(context.Background(), &models.PurchasePackageRequest{
		ClientNames: []string{"  Иван  "},
		Size:        10,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Иван"}, resp.ClientNames)
	assert.Equal(t, 10, resp.Size)
	assert.Equal(t, 0, resp.Used)
	assert.False(t, resp.Shared)
	assert.Equal(t, "2025-10-15", resp.PurchasedAt)
}

func TestPurchasePackage_SharedGroup(t *testing.T) {
	repo := &fakePackageRepo{}
	svc := newTestService(repo, &fakeBookingRepo{})

	resp, err := svc.PurchasePackage(context.Background(), &models.PurchasePackageRequest{
		ClientNames: []string{"Иван", "Мария", "Иван"},
		Size:        20,
	})

	require.NoError(t, err)
	// Дубликаты схлопываются, пакет общий
	assert.Equal(t, []string{"Иван", "Мария"}, resp.ClientNames)
	assert.True(t, resp.Shared)
}

func TestPurchasePackage_Validation(t *testing.T) {
	svc := newTestService(&fakePackageRepo{}, &fakeBookingRepo{})

	_, err := svc.PurchasePackage(context.Background(), &models.PurchasePackageRequest{
		ClientNames: []string{"  ", ""},
		Size:        10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Размер вне меню 1/5/10/20
	_, err = svc.PurchasePackage(context.Background(), &models.PurchasePackageRequest{
		ClientNames: []string{"Иван"},
		Size:        7,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPurchasePackage_RejectsWhileIncompleteExists(t *testing.T) {
	repo := &fakePackageRepo{packages: []*domain.Package{
		{ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 3, PurchasedAt: day(1)},
	}, nextID: 1}
	svc := newTestService(repo, &fakeBookingRepo{})

	_, err := svc.PurchasePackage(context.Background(), &models.PurchasePackageRequest{
		ClientNames: []string{"Иван"},
		Size:        10,
	})
	assert.ErrorIs(t, err, ErrIncompletePackageExists)

	// Покупка общего пакета блокируется незакрытым пакетом любого участника
	_, err = svc.PurchasePackage(context.Background(), &models.PurchasePackageRequest{
		ClientNames: []string{"Мария", "Иван"},
		Size:        10,
	})
	assert.ErrorIs(t, err, ErrIncompletePackageExists)

	// После закрытия пакета покупка проходит
	repo.packages[0].Used = 5
	_, err = svc.PurchasePackage(context.Background(), &models.PurchasePackageRequest{
		ClientNames: []string{"Иван"},
		Size:        10,
	})
	assert.NoError(t, err)
}

func TestActivePackageFor(t *testing.T) {
	repo := &fakePackageRepo{packages: []*domain.Package{
		{ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 5, PurchasedAt: day(1)},
		{ID: 2, ClientNames: []string{"Иван"}, Size: 10, Used: 2, PurchasedAt: day(5)},
	}, nextID: 2}
	svc := newTestService(repo, &fakeBookingRepo{})

	resp, err := svc.ActivePackageFor(context.Background(), "Иван")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)

	_, err = svc.ActivePackageFor(context.Background(), "Мария")
	assert.ErrorIs(t, err, ErrNoActivePackage)

	_, err = svc.ActivePackageFor(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeletePackage(t *testing.T) {
	repo := &fakePackageRepo{packages: []*domain.Package{
		{ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 5, PurchasedAt: day(1)},
		{ID: 2, ClientNames: []string{"Иван"}, Size: 10, Used: 2, PurchasedAt: day(5)},
	}, nextID: 2}
	svc := newTestService(repo, &fakeBookingRepo{})

	// Завершённый пакет удаляется
	require.NoError(t, svc.DeletePackage(context.Background(), 1))
	assert.Len(t, repo.packages, 1)

	// Незавершённый защищён от удаления
	err := svc.DeletePackage(context.Background(), 2)
	assert.ErrorIs(t, err, ErrPackageIncomplete)

	err = svc.DeletePackage(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestRemoveClient(t *testing.T) {
	repo := &fakePackageRepo{packages: []*domain.Package{
		{ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 5, PurchasedAt: day(1)},
		{ID: 2, ClientNames: []string{"Иван", "Мария"}, Size: 10, Used: 10, PurchasedAt: day(5)},
		{ID: 3, ClientNames: []string{"Пётр"}, Size: 5, Used: 2, PurchasedAt: day(7)},
	}, nextID: 3}
	svc := newTestService(repo, &fakeBookingRepo{})

	// Удаляются все пакеты с участием клиента, включая общие
	require.NoError(t, svc.RemoveClient(context.Background(), "Иван"))
	require.Len(t, repo.packages, 1)
	assert.Equal(t, int64(3), repo.packages[0].ID)

	// Клиент с незакрытым пакетом защищён
	err := svc.RemoveClient(context.Background(), "Пётр")
	assert.ErrorIs(t, err, ErrClientHasActivePackages)

	err = svc.RemoveClient(context.Background(), "Иван")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestListClients(t *testing.T) {
	repo := &fakePackageRepo{packages: []*domain.Package{
		{ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 5, PurchasedAt: day(1)},
		{ID: 2, ClientNames: []string{"Мария", "Иван"}, Size: 10, Used: 3, PurchasedAt: day(5)},
	}, nextID: 2}
	svc := newTestService(repo, &fakeBookingRepo{})

	resp, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Clients, 2)

	// Порядок первого появления по пакетам
	assert.Equal(t, "Иван", resp.Clients[0].Name)
	assert.Equal(t, "Мария", resp.Clients[1].Name)

	// Активность выводится из пакетов клиента
	assert.True(t, resp.Clients[0].Active)
	assert.True(t, resp.Clients[1].Active)
	assert.Len(t, resp.Clients[0].Packages, 2)
	assert.Len(t, resp.Clients[1].Packages, 1)
}

func TestListClients_InactiveClientStaysListed(t *testing.T) {
	repo := &fakePackageRepo{packages: []*domain.Package{
		{ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 5, PurchasedAt: day(1)},
	}, nextID: 1}
	svc := newTestService(repo, &fakeBookingRepo{})

	resp, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Clients, 1)
	assert.False(t, resp.Clients[0].Active)
}

func TestPackageSessions(t *testing.T) {
	repo := &fakePackageRepo{packages: []*domain.Package{
		{ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 2, PurchasedAt: day(1)},
	}, nextID: 1}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 10, ClientName: "Иван", Date: day(13), Hour: 10, PackageID: 1, SessionNumber: 1},
		{ID: 11, ClientName: "Иван", Date: day(14), Hour: 11, PackageID: 1, SessionNumber: 2},
	}}
	svc := newTestService(repo, bookings)

	resp, err := svc.PackageSessions(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.PackageID)
	assert.Equal(t, 2, resp.Used)
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, 1, resp.Sessions[0].SessionNumber)
	assert.Equal(t, "2025-10-13", resp.Sessions[0].Date)

	_, err = svc.PackageSessions(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
