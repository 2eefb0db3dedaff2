package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	packageRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/packages"
	"github.com/m04kA/PT-ScheduleService/internal/service/ledger/models"
)

// Service леджер пакетов тренировок
// Владеет записями пакетов и выводит из них справочник клиентов;
// счётчики used мутируют только usecases движка бронирований
type Service struct {
	packageRepo  PackageRepository
	bookingRepo  BookingRepository
	allowedSizes []int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр леджера
// allowedSizes — разрешённые размеры пакетов из конфигурации
func NewService(
	packageRepo PackageRepository,
	bookingRepo BookingRepository,
	allowedSizes []int,
	logger Logger,
) *Service {
	return &Service{
		packageRepo:  packageRepo,
		bookingRepo:  bookingRepo,
		allowedSizes: allowedSizes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// PurchasePackage создает новый пакет для клиента или группы клиентов
// Отклоняет покупку, если у любого участника группы уже есть
// незавершённый пакет (политика "один незакрытый пакет на клиента")
func (s *Service) PurchasePackage(ctx context.Context, req *models.PurchasePackageRequest) (*models.PackageResponse, error) {
	names, err := s.normalizeNames(req.ClientNames)
	if err != nil {
		s.logger.Warn("PurchasePackage: validation failed: %v", err)
		return nil, err
	}

	if !s.isAllowedSize(req.Size) {
		s.logger.Warn("PurchasePackage: size=%d is not in the allowed menu %v", req.Size, s.allowedSizes)
		return nil, fmt.Errorf("%w: size %d is not allowed", ErrInvalidInput, req.Size)
	}

	for _, name := range names {
		existing, err := s.packageRepo.ListByMember(ctx, name)
		if err != nil {
			s.logger.Error("PurchasePackage: failed to list packages for client=%s: %v", name, err)
			return nil, fmt.Errorf("%w: PurchasePackage - repository error: %v", ErrInternal, err)
		}
		for _, p := range existing {
			if p.HasCapacity() {
				s.logger.Warn("PurchasePackage: client=%s already has incomplete package id=%d (%d/%d)",
					name, p.ID, p.Used, p.Size)
				return nil, ErrIncompletePackageExists
			}
		}
	}

	now := s.timeProvider.Now()
	pkg := &domain.Package{
		ClientNames: names,
		Size:        req.Size,
		Used:        0,
		PurchasedAt: now,
	}

	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		s.logger.Error("PurchasePackage: failed to create package for %v: %v", names, err)
		return nil, fmt.Errorf("%w: PurchasePackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PurchasePackage: created package id=%d size=%d for %v", created.ID, created.Size, created.ClientNames)
	return models.FromDomainPackage(created), nil
}

// ActivePackageFor возвращает активный пакет клиента:
// старейший незавершённый пакет с учётом общих пакетов группы
func (s *Service) ActivePackageFor(ctx context.Context, clientName string) (*models.PackageResponse, error) {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	pkgs, err := s.packageRepo.ListByMember(ctx, name)
	if err != nil {
		s.logger.Error("ActivePackageFor: failed to list packages for client=%s: %v", name, err)
		return nil, fmt.Errorf("%w: ActivePackageFor - repository error: %v", ErrInternal, err)
	}

	active := domain.ActivePackage(pkgs, name)
	if active == nil {
		return nil, ErrNoActivePackage
	}

	return models.FromDomainPackage(active), nil
}

// DeletePackage удаляет пакет
// Незавершённый пакет (used < size) удалить нельзя
func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("DeletePackage: package id=%d not found", id)
			return ErrPackageNotFound
		}
		s.logger.Error("DeletePackage: repository error for package id=%d: %v", id, err)
		return fmt.Errorf("%w: DeletePackage - repository error: %v", ErrInternal, err)
	}

	if !pkg.IsComplete() {
		s.logger.Warn("DeletePackage: package id=%d is incomplete (%d/%d)", id, pkg.Used, pkg.Size)
		return ErrPackageIncomplete
	}

	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return ErrPackageNotFound
		}
		s.logger.Error("DeletePackage: failed to delete package id=%d: %v", id, err)
		return fmt.Errorf("%w: DeletePackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeletePackage: deleted package id=%d (%d/%d)", id, pkg.Used, pkg.Size)
	return nil
}

// RemoveClient удаляет клиента из справочника: удаляются все пакеты,
// в составе которых он есть. Бронирования намеренно НЕ каскадируются —
// история календаря переживает чистку списка клиентов
func (s *Service) RemoveClient(ctx context.Context, clientName string) error {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	pkgs, err := s.packageRepo.ListByMember(ctx, name)
	if err != nil {
		s.logger.Error("RemoveClient: failed to list packages for client=%s: %v", name, err)
		return fmt.Errorf("%w: RemoveClient - repository error: %v", ErrInternal, err)
	}

	if len(pkgs) == 0 {
		s.logger.Warn("RemoveClient: client=%s not found", name)
		return ErrClientNotFound
	}

	for _, p := range pkgs {
		if p.HasCapacity() {
			s.logger.Warn("RemoveClient: client=%s has active package id=%d (%d/%d)", name, p.ID, p.Used, p.Size)
			return ErrClientHasActivePackages
		}
	}

	if err := s.packageRepo.DeleteByMember(ctx, name); err != nil {
		s.logger.Error("RemoveClient: failed to delete packages for client=%s: %v", name, err)
		return fmt.Errorf("%w: RemoveClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveClient: removed client=%s with %d completed packages", name, len(pkgs))
	return nil
}

// ListClients строит справочник клиентов
// Клиенты не хранятся отдельно: имена выводятся как объединение
// владельцев всех пакетов в порядке первого появления
func (s *Service) ListClients(ctx context.Context) (*models.ClientListResponse, error) {
	pkgs, err := s.packageRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListClients: failed to list packages: %v", err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}

	order := make([]string, 0)
	seen := make(map[string]struct{})
	byClient := make(map[string][]*domain.Package)

	for _, p := range pkgs {
		for _, name := range p.ClientNames {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				order = append(order, name)
			}
			byClient[name] = append(byClient[name], p)
		}
	}

	resp := &models.ClientListResponse{Clients: make([]models.ClientResponse, 0, len(order))}
	for _, name := range order {
		clientPkgs := byClient[name]
		client := models.ClientResponse{
			Name:     name,
			Active:   domain.ActivePackage(clientPkgs, name) != nil,
			Packages: make([]models.PackageResponse, 0, len(clientPkgs)),
		}
		for _, p := range clientPkgs {
			client.Packages = append(client.Packages, *models.FromDomainPackage(p))
		}
		resp.Clients = append(resp.Clients, client)
	}

	return resp, nil
}

// PackageSessions возвращает историю сессий пакета в порядке (дата, час)
func (s *Service) PackageSessions(ctx context.Context, packageID int64) (*models.PackageSessionsResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("PackageSessions: package id=%d not found", packageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("PackageSessions: repository error for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: PackageSessions - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListByPackage(ctx, packageID)
	if err != nil {
		s.logger.Error("PackageSessions: failed to list bookings for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: PackageSessions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSessions(pkg, bookings), nil
}

// normalizeNames чистит и валидирует список имен владельцев
func (s *Service) normalizeNames(raw []string) ([]string, error) {
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{})

	for _, n := range raw {
		name := strings.TrimSpace(n)
		if name == "" {
			continue
		}
		if len(name) > domain.MaxClientNameLength {
			return nil, fmt.Errorf("%w: client name is too long", ErrInvalidInput)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one client name is required", ErrInvalidInput)
	}

	return names, nil
}

func (s *Service) isAllowedSize(size int) bool {
	for _, allowed := range s.allowedSizes {
		if size == allowed {
			return true
		}
	}
	return false
}
