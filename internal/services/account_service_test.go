package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lemmequit/internal/models/request_models"
	"lemmequit/internal/services"
	mem "lemmequit/pkg/memcache"
	"lemmequit/pkg/utils"
)

func okMail() *mockMailService {
	return &mockMailService{
		SendPasswordResetMailFunc: func(_, _ string) error { return nil },
	}
}

func newAccountService(store *userStore, mail services.MailServiceInterface, tokens mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(store.repo(), mail, tokens, zap.NewNop())
}

func TestCreateAccount_Patient(t *testing.T) {
	store := newUserStore()
	svc := newAccountService(store, okMail(), mem.NewResetTokens())

	age := 31
	user, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:      "Sam",
		Email:     " Sam@Mail.Test ",
		Password:  "secret123",
		Role:      "patient",
		Sex:       "Male",
		Age:       &age,
		Addiction: "nicotine",
		Hobbies:   []string{"chess"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sam@mail.test", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "secret123"))
	assert.Equal(t, "nicotine", user.Addiction)
	require.NotNil(t, user.Age)
	assert.Equal(t, 31, *user.Age)
}

func TestCreateAccount_TherapistIgnoresProfileFields(t *testing.T) {
	store := newUserStore()
	svc := newAccountService(store, okMail(), mem.NewResetTokens())

	user, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:      "Dr. Reyes",
		Email:     "reyes@clinic.test",
		Password:  "secret123",
		Role:      "therapist",
		Addiction: "should be dropped",
	})
	require.NoError(t, err)
	assert.Empty(t, user.Addiction)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	store := newUserStore()
	svc := newAccountService(store, okMail(), mem.NewResetTokens())

	req := request_models.SignUpRequest{
		Name: "Sam", Email: "sam@mail.test", Password: "secret123", Role: "patient",
	}
	_, err := svc.CreateAccount(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newUserStore()
	svc := newAccountService(store, okMail(), mem.NewResetTokens())

	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name: "Sam", Email: "sam@mail.test", Password: "secret123", Role: "patient",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "SAM@mail.test", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "patient", claims.Role)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "sam@mail.test", Password: "wrongpass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "nobody@mail.test", Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestUpdateProfile_MergePreservesAbsentFields(t *testing.T) {
	store := newUserStore()
	svc := newAccountService(store, okMail(), mem.NewResetTokens())

	age := 31
	user, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name: "Sam", Email: "sam@mail.test", Password: "secret123", Role: "patient",
		Sex: "Male", Age: &age, Addiction: "nicotine", Hobbies: []string{"chess"},
	})
	require.NoError(t, err)

	newAddiction := "alcohol"
	hobbies := []string{"running", "cooking"}
	err = svc.UpdateProfile(context.Background(), user.ID, request_models.UpdateProfileRequest{
		Addiction: &newAddiction,
		Hobbies:   &hobbies,
	})
	require.NoError(t, err)

	assert.Equal(t, "alcohol", user.Addiction)
	assert.Equal(t, pq.StringArray{"running", "cooking"}, user.Hobbies)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Sam", user.Name)
	assert.Equal(t, "Male", user.Sex)
	require.NotNil(t, user.Age)
	assert.Equal(t, 31, *user.Age)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	store := newUserStore()
	svc := newAccountService(store, okMail(), mem.NewResetTokens())

	name := "Sam"
	err := svc.UpdateProfile(context.Background(), uuid.New(), request_models.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	store := newUserStore()
	sent := false
	mail := &mockMailService{
		SendPasswordResetMailFunc: func(_, _ string) error {
			sent = true
			return nil
		},
	}
	svc := newAccountService(store, mail, mem.NewResetTokens())

	err := svc.ForgotPassword(context.Background(), "nobody@mail.test")
	assert.NoError(t, err)
	assert.False(t, sent)
}

func TestForgotPassword_MailFailureIsSwallowed(t *testing.T) {
	store := newUserStore()
	mail := &mockMailService{
		SendPasswordResetMailFunc: func(_, _ string) error {
			return errors.New("smtp refused")
		},
	}
	svc := newAccountService(store, mail, mem.NewResetTokens())

	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name: "Sam", Email: "sam@mail.test", Password: "secret123", Role: "patient",
	})
	require.NoError(t, err)

	assert.NoError(t, svc.ForgotPassword(context.Background(), "sam@mail.test"))
}

func TestResetPasswordFlow(t *testing.T) {
	store := newUserStore()
	tokens := mem.NewResetTokens()

	var sentToken string
	mail := &mockMailService{
		SendPasswordResetMailFunc: func(_, token string) error {
			sentToken = token
			return nil
		},
	}
	svc := newAccountService(store, mail, tokens)

	user, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name: "Sam", Email: "sam@mail.test", Password: "secret123", Role: "patient",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), "sam@mail.test"))
	require.NotEmpty(t, sentToken)

	err = svc.VerifyAndConsumeResetToken(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "sam@mail.test",
		NewPassword: "newsecret",
		Token:       sentToken,
	})
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "newsecret"))

	// Tokens are single use.
	err = svc.VerifyAndConsumeResetToken(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "sam@mail.test",
		NewPassword: "another",
		Token:       sentToken,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestVerifyAndConsumeResetToken_WrongEmail(t *testing.T) {
	store := newUserStore()
	tokens := mem.NewResetTokens()
	tokens.Set("tok123", "sam@mail.test", time.Minute)

	svc := newAccountService(store, okMail(), tokens)
	err := svc.VerifyAndConsumeResetToken(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "lee@mail.test",
		NewPassword: "newsecret",
		Token:       "tok123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}
