package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"lemmequit/internal/models/db_models"
	"lemmequit/internal/models/request_models"
	"lemmequit/internal/repositories"
	mem "lemmequit/pkg/memcache"
	"lemmequit/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, request request_models.UpdateProfileRequest) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyAndConsumeResetToken(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	userRepo    repositories.UserRepository
	mailService MailServiceInterface
	resetTokens mem.ResetTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	mailService MailServiceInterface,
	resetTokens mem.ResetTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		logger:      logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	email := normalizeEmail(request.Email)

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         request.Role,
	}
	if request.Role == db_models.RolePatient {
		newUser.Sex = request.Sex
		newUser.Age = request.Age
		newUser.Sport = request.Sport
		newUser.Addiction = request.Addiction
		newUser.Hobbies = request.Hobbies
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return newUser, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) GetUser(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile writes only the fields present in the request; stored
// fields it does not mention are preserved.
func (a *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, request request_models.UpdateProfileRequest) error {
	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Sex != nil {
		fields["sex"] = *request.Sex
	}
	if request.Age != nil {
		fields["age"] = *request.Age
	}
	if request.Sport != nil {
		fields["sport"] = *request.Sport
	}
	if request.Addiction != nil {
		fields["addiction"] = *request.Addiction
	}
	if request.Hobbies != nil {
		fields["hobbies"] = pq.StringArray(*request.Hobbies)
	}

	if err := a.userRepo.UpdateFields(ctx, id, fields); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ForgotPassword is intentionally silent about unknown emails.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, user.Email, 15*time.Minute)

	if err := a.mailService.SendPasswordResetMail(user.Email, token); err != nil {
		a.logger.Warn("failed to send password reset mail",
			zap.String("email", user.Email), zap.Error(err))
	}
	return nil
}

func (a *AccountService) VerifyAndConsumeResetToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != normalizeEmail(request.Email) {
		return utils.ErrInvalidResetToken
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.userRepo.UpdateFields(ctx, user.ID, map[string]interface{}{
		"password_hash": hashed,
	}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
