package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"activity-roster-service/internal/model"
	"activity-roster-service/internal/repository"
	"activity-roster-service/internal/service"
	"activity-roster-service/internal/service/mocks"
)

func TestRosterService_ListActivities(t *testing.T) {
	roster := model.Roster{
		"Chess Club": {MaxParticipants: 12, Participants: []string{"michael@mergington.edu"}},
	}

	tests := []struct {
		name       string
		setupMocks func(r *mocks.RosterRepository)
		want       model.Roster
		wantStatus int
	}{
		{
			name: "Success",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("List", mock.Anything).Return(roster, nil)
			},
			want: roster,
		},
		{
			name: "Fail: Repository error",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("List", mock.Anything).Return(nil, context.Canceled)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(mocks.RosterRepository)
			tt.setupMocks(r)

			svc := service.NewRosterService(r)
			got, err := svc.ListActivities(context.Background())

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			r.AssertExpectations(t)
		})
	}
}

func TestRosterService_Signup(t *testing.T) {
	const email = "test.student@mergington.edu"

	tests := []struct {
		name       string
		activity   string
		setupMocks func(r *mocks.RosterRepository)
		wantMsg    string
		wantCode   string
		wantStatus int
	}{
		{
			name:     "Success",
			activity: "Chess Club",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("AddParticipant", mock.Anything, "Chess Club", email).
					Return(model.Activity{MaxParticipants: 12, Participants: []string{email}}, nil)
			},
			wantMsg: "Signed up test.student@mergington.edu for Chess Club",
		},
		{
			name:     "Fail: Activity not found",
			activity: "Nonexistent",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("AddParticipant", mock.Anything, "Nonexistent", email).
					Return(model.Activity{}, repository.ErrActivityNotFound)
			},
			wantCode:   service.CodeActivityNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:     "Fail: Already signed up",
			activity: "Chess Club",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("AddParticipant", mock.Anything, "Chess Club", email).
					Return(model.Activity{}, repository.ErrAlreadySignedUp)
			},
			wantCode:   service.CodeAlreadySignedUp,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "Fail: Full",
			activity: "Chess Club",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("AddParticipant", mock.Anything, "Chess Club", email).
					Return(model.Activity{}, repository.ErrActivityFull)
			},
			wantCode:   service.CodeActivityFull,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "Fail: Unexpected error",
			activity: "Chess Club",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("AddParticipant", mock.Anything, "Chess Club", email).
					Return(model.Activity{}, errors.New("boom"))
			},
			wantCode:   "INTERNAL",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(mocks.RosterRepository)
			tt.setupMocks(r)

			svc := service.NewRosterService(r)
			msg, err := svc.Signup(context.Background(), tt.activity, email)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMsg, msg)
			}
			r.AssertExpectations(t)
		})
	}
}

func TestRosterService_Unregister(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		setupMocks func(r *mocks.RosterRepository)
		wantMsg    string
		wantCode   string
		wantStatus int
	}{
		{
			// В сообщении должен быть сохранённый email, а не введённый
			name:  "Success: Reports stored email",
			email: "  A@B.COM ",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("RemoveParticipant", mock.Anything, "Chess Club", "  A@B.COM ").
					Return("a@b.com", model.Activity{MaxParticipants: 12}, nil)
			},
			wantMsg: "Unregistered a@b.com from Chess Club",
		},
		{
			name:  "Fail: Participant not found",
			email: "ghost@mergington.edu",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("RemoveParticipant", mock.Anything, "Chess Club", "ghost@mergington.edu").
					Return("", model.Activity{}, repository.ErrParticipantNotFound)
			},
			wantCode:   service.CodeParticipantNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "Fail: Activity not found",
			email: "a@b.com",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("RemoveParticipant", mock.Anything, "Chess Club", "a@b.com").
					Return("", model.Activity{}, repository.ErrActivityNotFound)
			},
			wantCode:   service.CodeActivityNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "Fail: Unexpected error",
			email: "a@b.com",
			setupMocks: func(r *mocks.RosterRepository) {
				r.On("RemoveParticipant", mock.Anything, "Chess Club", "a@b.com").
					Return("", model.Activity{}, context.DeadlineExceeded)
			},
			wantCode:   "INTERNAL",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(mocks.RosterRepository)
			tt.setupMocks(r)

			svc := service.NewRosterService(r)
			msg, err := svc.Unregister(context.Background(), "Chess Club", tt.email)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMsg, msg)
			}
			r.AssertExpectations(t)
		})
	}
}

// Сценарий целиком на настоящем хранилище с сидом
func TestRosterService_ChessClubScenario(t *testing.T) {
	ctx := context.Background()
	svc := service.NewRosterService(repository.NewMemoryRoster(repository.SeedActivities()))
	const email = "test.student@mergington.edu"

	_, err := svc.Signup(ctx, "Chess Club", email)
	require.NoError(t, err)

	roster, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	participants := roster["Chess Club"].Participants
	require.Len(t, participants, 3)
	assert.Equal(t, email, participants[2])

	_, err = svc.Signup(ctx, "Chess Club", email)
	assert.True(t, service.IsConflict(err))

	_, err = svc.Unregister(ctx, "Chess Club", email)
	require.NoError(t, err)

	roster, err = svc.ListActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, roster["Chess Club"].Participants)

	_, err = svc.Unregister(ctx, "Chess Club", email)
	assert.True(t, service.IsNotFound(err))
}

func TestRosterService_UnknownActivityIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := service.NewRosterService(repository.NewMemoryRoster(repository.SeedActivities()))

	for _, name := range []string{"Nonexistent", "chess club", "Chess Club ", ""} {
		_, err := svc.Signup(ctx, name, "foo@bar.com")
		assert.True(t, service.IsNotFound(err), "signup %q", name)

		_, err = svc.Unregister(ctx, name, "foo@bar.com")
		assert.True(t, service.IsNotFound(err), "unregister %q", name)
	}
}
