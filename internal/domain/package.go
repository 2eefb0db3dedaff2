package domain

import (
	"sort"
	"time"
)

// Package represents a prepaid block of training sessions for one client
// or a named group of clients, with a running consumed-count
type Package struct {
	ID int64
	// ClientNames владельцы пакета. Один элемент — одиночный пакет,
	// несколько — общий пакет, все участники расходуют один счётчик
	ClientNames []string
	Size        int // полное количество сессий в пакете
	Used        int // израсходовано сессий, 0 <= Used <= Size
	PurchasedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsComplete returns true if every session of the package is consumed
func (p *Package) IsComplete() bool {
	return p.Used >= p.Size
}

// HasCapacity returns true if the package still has unconsumed sessions
func (p *Package) HasCapacity() bool {
	return p.Used < p.Size
}

// IsShared returns true if the package is jointly owned by several clients
func (p *Package) IsShared() bool {
	return len(p.ClientNames) > 1
}

// BelongsTo returns true if the client is among the package owners
func (p *Package) BelongsTo(client string) bool {
	for _, name := range p.ClientNames {
		if name == client {
			return true
		}
	}
	return false
}

// GroupEquals сравнивает состав владельцев пакета с переданной группой
// как множества: порядок и дубликаты не учитываются
func (p *Package) GroupEquals(group []string) bool {
	return SameGroup(p.ClientNames, group)
}

// SameGroup structural set-equality over client-name sets
func SameGroup(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, name := range a {
		setA[name] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, name := range b {
		setB[name] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for name := range setA {
		if _, ok := setB[name]; !ok {
			return false
		}
	}
	return true
}

// ActivePackage выбирает активный пакет клиента из переданного списка.
//
// Кандидаты — пакеты, в составе которых есть клиент. Если среди них есть
// общий пакет, кандидатами остаются только пакеты с точно таким же
// составом участников: клиент не может молча "откатиться" на одиночный
// пакет, пока у его группы есть общий.
//
// Из кандидатов берётся самый ранний по дате покупки (при равенстве —
// по порядку создания) пакет с незакрытым счётчиком. FIFO: новые
// бронирования всегда расходуют старейший незавершённый пакет, даже
// если у более позднего тоже есть свободные сессии.
//
// Возвращает nil, если активного пакета нет.
func ActivePackage(packages []*Package, client string) *Package {
	candidates := make([]*Package, 0, len(packages))
	for _, p := range packages {
		if p.BelongsTo(client) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Общий пакет сужает кандидатов до пакетов с идентичной группой
	var sharedGroup []string
	for _, p := range candidates {
		if p.IsShared() {
			sharedGroup = p.ClientNames
			break
		}
	}
	if sharedGroup != nil {
		pooled := make([]*Package, 0, len(candidates))
		for _, p := range candidates {
			if p.GroupEquals(sharedGroup) {
				pooled = append(pooled, p)
			}
		}
		candidates = pooled
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].PurchasedAt.Equal(candidates[j].PurchasedAt) {
			return candidates[i].PurchasedAt.Before(candidates[j].PurchasedAt)
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, p := range candidates {
		if p.HasCapacity() {
			return p
		}
	}
	return nil
}
