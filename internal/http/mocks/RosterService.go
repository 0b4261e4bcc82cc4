// Package mocks содержит testify-моки сервисов для тестов HTTP-слоя.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"activity-roster-service/internal/model"
)

// RosterService мок для http.RosterService.
type RosterService struct {
	mock.Mock
}

func (m *RosterService) ListActivities(ctx context.Context) (model.Roster, error) {
	args := m.Called(ctx)

	var roster model.Roster
	if v := args.Get(0); v != nil {
		roster = v.(model.Roster)
	}
	return roster, args.Error(1)
}

func (m *RosterService) Signup(ctx context.Context, activityName, email string) (string, error) {
	args := m.Called(ctx, activityName, email)
	return args.String(0), args.Error(1)
}

func (m *RosterService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	args := m.Called(ctx, activityName, email)
	return args.String(0), args.Error(1)
}
