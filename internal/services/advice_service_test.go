package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lemmequit/internal/models/db_models"
	"lemmequit/internal/services"
	"lemmequit/pkg/utils"
)

func newCompletePatient() *db_models.User {
	age := 29
	u := newPatient()
	u.Sex = "Male"
	u.Age = &age
	u.Addiction = "alcohol"
	u.Hobbies = pq.StringArray{"reading", "hiking"}
	return u
}

func TestRequestAdvice_UsesProfilePrompt(t *testing.T) {
	patient := newCompletePatient()
	store := newUserStore(patient)

	var gotPrompt string
	provider := &mockAdviceProvider{
		CompleteFunc: func(_ context.Context, _, userPrompt string, maxTokens int, temperature float32) (string, error) {
			gotPrompt = userPrompt
			assert.Equal(t, 250, maxTokens)
			assert.InDelta(t, 0.7, temperature, 0.001)
			return "Take a long walk before dinner.", nil
		},
	}

	var logged *db_models.AdviceLog
	logRepo := &mockAdviceLogRepo{
		InsertFunc: func(_ context.Context, entry *db_models.AdviceLog) error {
			logged = entry
			return nil
		},
	}

	svc := services.NewAdviceService(store.repo(), logRepo, provider, zap.NewNop())
	advice, err := svc.RequestAdvice(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Take a long walk before dinner.", advice)

	assert.Contains(t, gotPrompt, "29 years old")
	assert.Contains(t, gotPrompt, "alcohol")
	assert.Contains(t, gotPrompt, "reading, hiking")

	require.NotNil(t, logged)
	assert.Equal(t, patient.ID, logged.UserID)
	assert.Equal(t, gotPrompt, logged.Prompt)
	assert.Equal(t, advice, logged.Response)
}

func TestRequestAdvice_IncompleteProfileFallsBack(t *testing.T) {
	patient := newPatient() // no profile fields
	store := newUserStore(patient)

	var gotPrompt string
	provider := &mockAdviceProvider{
		CompleteFunc: func(_ context.Context, _, userPrompt string, _ int, _ float32) (string, error) {
			gotPrompt = userPrompt
			return "Try a new recipe tonight.", nil
		},
	}
	logRepo := &mockAdviceLogRepo{
		InsertFunc: func(_ context.Context, _ *db_models.AdviceLog) error { return nil },
	}

	svc := services.NewAdviceService(store.repo(), logRepo, provider, zap.NewNop())
	advice, err := svc.RequestAdvice(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, advice)
	assert.Equal(t, utils.BuildDefaultPrompt(), gotPrompt)
}

func TestRequestAdvice_TherapistRefused(t *testing.T) {
	therapist := newTherapist()
	store := newUserStore(therapist)

	svc := services.NewAdviceService(store.repo(), &mockAdviceLogRepo{}, &mockAdviceProvider{}, zap.NewNop())
	_, err := svc.RequestAdvice(context.Background(), therapist.ID)
	assert.ErrorIs(t, err, utils.ErrNotAPatient)
}

func TestRequestAdvice_ProviderFailure(t *testing.T) {
	patient := newCompletePatient()
	store := newUserStore(patient)

	provider := &mockAdviceProvider{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float32) (string, error) {
			return "", errors.New("rate limited")
		},
	}

	svc := services.NewAdviceService(store.repo(), &mockAdviceLogRepo{}, provider, zap.NewNop())
	_, err := svc.RequestAdvice(context.Background(), patient.ID)
	assert.ErrorIs(t, err, utils.ErrAdviceUnavailable)
}

func TestRequestAdvice_EmptyCompletion(t *testing.T) {
	patient := newCompletePatient()
	store := newUserStore(patient)

	provider := &mockAdviceProvider{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float32) (string, error) {
			return "   \n", nil
		},
	}

	svc := services.NewAdviceService(store.repo(), &mockAdviceLogRepo{}, provider, zap.NewNop())
	_, err := svc.RequestAdvice(context.Background(), patient.ID)
	assert.ErrorIs(t, err, utils.ErrAdviceUnavailable)
}

func TestRequestAdvice_HistoryInsertFailureIsSwallowed(t *testing.T) {
	patient := newCompletePatient()
	store := newUserStore(patient)

	provider := &mockAdviceProvider{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float32) (string, error) {
			return "Go for a swim.", nil
		},
	}
	logRepo := &mockAdviceLogRepo{
		InsertFunc: func(_ context.Context, _ *db_models.AdviceLog) error {
			return errors.New("disk full")
		},
	}

	svc := services.NewAdviceService(store.repo(), logRepo, provider, zap.NewNop())
	advice, err := svc.RequestAdvice(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go for a swim.", advice)
}

func TestRequestTherapistAdvice_IncludesPatientProfileAndIssue(t *testing.T) {
	therapist := newTherapist()
	patient := newCompletePatient()
	store := newUserStore(therapist, patient)

	var gotPrompt string
	provider := &mockAdviceProvider{
		CompleteFunc: func(_ context.Context, _, userPrompt string, _ int, _ float32) (string, error) {
			gotPrompt = userPrompt
			return "Suggest group activities.", nil
		},
	}
	logRepo := &mockAdviceLogRepo{
		InsertFunc: func(_ context.Context, _ *db_models.AdviceLog) error { return nil },
	}

	svc := services.NewAdviceService(store.repo(), logRepo, provider, zap.NewNop())
	_, err := svc.RequestTherapistAdvice(context.Background(), therapist.ID, patient.ID, "social isolation")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPrompt, "I am a therapist"))
	assert.Contains(t, gotPrompt, "alcohol")
	assert.Contains(t, gotPrompt, "social isolation")
}

func TestRequestTherapistAdvice_PatientRefused(t *testing.T) {
	patient := newCompletePatient()
	other := newCompletePatient()
	other.Email = "lee@mail.test"
	store := newUserStore(patient, other)

	svc := services.NewAdviceService(store.repo(), &mockAdviceLogRepo{}, &mockAdviceProvider{}, zap.NewNop())
	_, err := svc.RequestTherapistAdvice(context.Background(), patient.ID, other.ID, "")
	assert.ErrorIs(t, err, utils.ErrNotATherapist)
}

func TestHistory(t *testing.T) {
	userID := uuid.New()
	entries := []db_models.AdviceLog{
		{UserID: userID, Prompt: "p2", Response: "r2"},
		{UserID: userID, Prompt: "p1", Response: "r1"},
	}
	logRepo := &mockAdviceLogRepo{
		ListForUserFunc: func(_ context.Context, id uuid.UUID) ([]db_models.AdviceLog, error) {
			assert.Equal(t, userID, id)
			return entries, nil
		},
	}

	store := newUserStore()
	svc := services.NewAdviceService(store.repo(), logRepo, &mockAdviceProvider{}, zap.NewNop())
	got, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
