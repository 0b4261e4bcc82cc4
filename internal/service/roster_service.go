// Package service содержит бизнес-логику записи учеников на внеклассные занятия.
package service

import (
	"context"
	"errors"
	"fmt"

	"activity-roster-service/internal/model"
	"activity-roster-service/internal/observability"
	"activity-roster-service/internal/repository"
)

// Коды ошибок, которые видит клиент.
const (
	CodeActivityNotFound    = "ACTIVITY_NOT_FOUND"
	CodeParticipantNotFound = "PARTICIPANT_NOT_FOUND"
	CodeAlreadySignedUp     = "ALREADY_SIGNED_UP"
	CodeActivityFull        = "ACTIVITY_FULL"
)

// RosterRepository описывает контракт хранилища реестра для бизнес-слоя.
type RosterRepository interface {
	List(ctx context.Context) (model.Roster, error)
	AddParticipant(ctx context.Context, name, email string) (model.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (string, model.Activity, error)
}

// RosterService содержит операции над реестром: просмотр, запись и отписку.
type RosterService struct {
	repo RosterRepository
}

// NewRosterService создаёт новый сервис поверх переданного хранилища.
func NewRosterService(repo RosterRepository) *RosterService {
	return &RosterService{repo: repo}
}

// ListActivities возвращает весь текущий реестр занятий.
func (s *RosterService) ListActivities(ctx context.Context) (model.Roster, error) {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list activities", err)
	}
	return roster, nil
}

// Signup записывает email на занятие и возвращает подтверждение.
// Email сравнивается с уже записанными строго, без нормализации.
func (s *RosterService) Signup(ctx context.Context, activityName, email string) (string, error) {
	_, err := s.repo.AddParticipant(ctx, activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			observability.RecordSignup(observability.ResultNotFound)
			return "", ErrNotFound(CodeActivityNotFound, "Activity not found", err)
		case errors.Is(err, repository.ErrAlreadySignedUp):
			observability.RecordSignup(observability.ResultAlreadySignedUp)
			return "", ErrConflict(CodeAlreadySignedUp, "Student already signed up for this activity", err)
		case errors.Is(err, repository.ErrActivityFull):
			observability.RecordSignup(observability.ResultFull)
			return "", ErrConflict(CodeActivityFull, "Activity is at full capacity", err)
		default:
			return "", ErrInternal("failed to sign up", err)
		}
	}

	observability.RecordSignup(observability.ResultOK)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister удаляет участника с занятия. Поиск нечувствителен к регистру
// и пробелам по краям; в ответе указывается email в том виде, в каком он был сохранён.
func (s *RosterService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	removed, _, err := s.repo.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			observability.RecordUnregistration(observability.ResultNotFound)
			return "", ErrNotFound(CodeActivityNotFound, "Activity not found", err)
		case errors.Is(err, repository.ErrParticipantNotFound):
			observability.RecordUnregistration(observability.ResultParticipantNotFound)
			return "", ErrNotFound(CodeParticipantNotFound, "Participant not found in activity", err)
		default:
			return "", ErrInternal("failed to unregister", err)
		}
	}

	observability.RecordUnregistration(observability.ResultOK)
	return fmt.Sprintf("Unregistered %s from %s", removed, activityName), nil
}
