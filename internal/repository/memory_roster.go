// Package repository реализует хранилище реестра занятий в памяти процесса.
package repository

import (
	"context"
	"strings"
	"sync"

	"activity-roster-service/internal/model"
)

// MemoryRoster хранит реестр занятий в памяти.
// Все проверки инвариантов (уникальность email, лимит мест) выполняются
// под общим мьютексом, поэтому конкурентные запросы их не нарушают.
type MemoryRoster struct {
	mu         sync.RWMutex
	activities model.Roster
	observe    CountObserver
}

// CountObserver получает текущее число участников занятия.
// Вызывается под блокировкой хранилища, поэтому значения приходят в порядке изменений.
type CountObserver func(activity string, count int)

// NewMemoryRoster создаёт хранилище с копией переданного набора занятий.
func NewMemoryRoster(seed model.Roster) *MemoryRoster {
	activities := make(model.Roster, len(seed))
	for name, a := range seed {
		activities[name] = a.Clone()
	}
	return &MemoryRoster{activities: activities}
}

// Observe подписывает fn на изменения числа участников и сразу
// сообщает текущие значения для всех занятий.
func (r *MemoryRoster) Observe(fn CountObserver) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observe = fn
	if fn == nil {
		return
	}
	for name, a := range r.activities {
		fn(name, len(a.Participants))
	}
}

func (r *MemoryRoster) notify(name string, count int) {
	if r.observe != nil {
		r.observe(name, count)
	}
}

// List возвращает снимок всего реестра.
func (r *MemoryRoster) List(ctx context.Context) (model.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(model.Roster, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Get возвращает копию занятия по названию.
func (r *MemoryRoster) Get(ctx context.Context, name string) (model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return model.Activity{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// AddParticipant добавляет email в конец списка участников.
// Дубликат проверяется до лимита мест; сравнение точное, без нормализации.
func (r *MemoryRoster) AddParticipant(ctx context.Context, name, email string) (model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return model.Activity{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return model.Activity{}, ErrAlreadySignedUp
	}
	if a.IsFull() {
		return model.Activity{}, ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	r.activities[name] = a
	r.notify(name, len(a.Participants))
	return a.Clone(), nil
}

// RemoveParticipant удаляет первого участника, чей email совпадает с переданным
// после обрезки пробелов и приведения к нижнему регистру.
// Возвращает исходную сохранённую строку удалённого участника.
func (r *MemoryRoster) RemoveParticipant(ctx context.Context, name, email string) (string, model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return "", model.Activity{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return "", model.Activity{}, ErrActivityNotFound
	}

	idx := indexOfNormalized(a.Participants, email)
	if idx < 0 {
		return "", model.Activity{}, ErrParticipantNotFound
	}

	removed := a.Participants[idx]
	participants := make([]string, 0, len(a.Participants)-1)
	participants = append(participants, a.Participants[:idx]...)
	participants = append(participants, a.Participants[idx+1:]...)
	a.Participants = participants
	r.activities[name] = a
	r.notify(name, len(a.Participants))

	return removed, a.Clone(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func indexOfNormalized(participants []string, email string) int {
	target := normalizeEmail(email)
	for i, p := range participants {
		if normalizeEmail(p) == target {
			return i
		}
	}
	return -1
}
