// Package mocks содержит testify-моки зависимостей сервисного слоя.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"activity-roster-service/internal/model"
)

// RosterRepository мок для service.RosterRepository.
type RosterRepository struct {
	mock.Mock
}

// List провайдит мок-реализацию метода.
func (m *RosterRepository) List(ctx context.Context) (model.Roster, error) {
	args := m.Called(ctx)

	var roster model.Roster
	if v := args.Get(0); v != nil {
		roster = v.(model.Roster)
	}
	return roster, args.Error(1)
}

// AddParticipant провайдит мок-реализацию метода.
func (m *RosterRepository) AddParticipant(ctx context.Context, name, email string) (model.Activity, error) {
	args := m.Called(ctx, name, email)
	return args.Get(0).(model.Activity), args.Error(1)
}

// RemoveParticipant провайдит мок-реализацию метода.
func (m *RosterRepository) RemoveParticipant(ctx context.Context, name, email string) (string, model.Activity, error) {
	args := m.Called(ctx, name, email)
	return args.String(0), args.Get(1).(model.Activity), args.Error(2)
}
