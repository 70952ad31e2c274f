package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lemmequit/internal/models/db_models"
	"lemmequit/internal/repositories"
	"lemmequit/pkg/utils"
)

const (
	adviceMaxTokens   = 250
	adviceTemperature = 0.7
)

// AdviceServiceInterface is a thin gateway over the external completion
// provider. Profile gaps degrade to the generic prompt; provider
// failures of any kind come back as ErrAdviceUnavailable so the caller
// can show a retry message.
type AdviceServiceInterface interface {
	RequestAdvice(ctx context.Context, userID uuid.UUID) (string, error)
	RequestTherapistAdvice(ctx context.Context, therapistID, patientID uuid.UUID, issue string) (string, error)
	History(ctx context.Context, userID uuid.UUID) ([]db_models.AdviceLog, error)
}

type AdviceService struct {
	userRepo      repositories.UserRepository
	adviceLogRepo repositories.AdviceLogRepository
	provider      utils.AdviceProviderInterface
	logger        *zap.Logger
}

func NewAdviceService(
	userRepo repositories.UserRepository,
	adviceLogRepo repositories.AdviceLogRepository,
	provider utils.AdviceProviderInterface,
	logger *zap.Logger,
) AdviceServiceInterface {
	return &AdviceService{
		userRepo:      userRepo,
		adviceLogRepo: adviceLogRepo,
		provider:      provider,
		logger:        logger,
	}
}

func (s *AdviceService) RequestAdvice(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrUserNotFound
	}
	if !user.IsPatient() {
		return "", utils.ErrNotAPatient
	}

	prompt := utils.BuildPatientPrompt(user)
	return s.complete(ctx, userID, prompt)
}

func (s *AdviceService) RequestTherapistAdvice(ctx context.Context, therapistID, patientID uuid.UUID, issue string) (string, error) {
	therapist, err := s.userRepo.FindByID(ctx, therapistID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if therapist == nil {
		return "", utils.ErrUserNotFound
	}
	if !therapist.IsTherapist() {
		return "", utils.ErrNotATherapist
	}

	patient, err := s.userRepo.FindByID(ctx, patientID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if patient == nil {
		return "", utils.ErrUserNotFound
	}

	prompt := utils.BuildTherapistPrompt(patient, issue)
	return s.complete(ctx, therapistID, prompt)
}

func (s *AdviceService) complete(ctx context.Context, userID uuid.UUID, prompt string) (string, error) {
	response, err := s.provider.Complete(ctx, utils.AdviceSystemPrompt, prompt, adviceMaxTokens, adviceTemperature)
	if err != nil {
		s.logger.Warn("advice provider call failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		return "", utils.ErrAdviceUnavailable
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return "", utils.ErrAdviceUnavailable
	}

	entry := &db_models.AdviceLog{
		UserID:   userID,
		Prompt:   prompt,
		Response: response,
	}
	if err := s.adviceLogRepo.Insert(ctx, entry); err != nil {
		// The user already has their answer; a failed history append is
		// logged, not surfaced.
		s.logger.Warn("failed to append advice history",
			zap.String("user_id", userID.String()), zap.Error(err))
	}

	return response, nil
}

func (s *AdviceService) History(ctx context.Context, userID uuid.UUID) ([]db_models.AdviceLog, error) {
	entries, err := s.adviceLogRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}
