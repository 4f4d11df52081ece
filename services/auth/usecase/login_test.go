package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/services/auth"
	"github.com/bimbelhub/platform/services/auth/mocks"
)

type ucMocks struct {
	userRepo *mocks.MockUserRepo
	otpRepo  *mocks.MockOTPRepo
	flowRepo *mocks.MockFlowStateRepo
	limiter  *mocks.MockRateLimiter
	notifyGW *mocks.MockNotificationGW
}

func newTestUC(t *testing.T) (*AuthUC, *ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &ucMocks{
		userRepo: mocks.NewMockUserRepo(ctrl),
		otpRepo:  mocks.NewMockOTPRepo(ctrl),
		flowRepo: mocks.NewMockFlowStateRepo(ctrl),
		limiter:  mocks.NewMockRateLimiter(ctrl),
		notifyGW: mocks.NewMockNotificationGW(ctrl),
	}

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
		Auth: models.AuthConfig{
			OTPLength:           6,
			OTPExpiryMinutes:    5,
			MaxOTPAttempts:      5,
			MaxResendAttempts:   3,
			LockoutMinutes:      30,
			RateRegisterPerHour: 3,
			RateLoginPer15Min:   5,
			RateResendPerHour:   3,
			RateVerifyPer5Min:   5,
			RateIPPerHour:       30,
		},
	}

	uc := NewAuthUC(cfg, m.userRepo, m.otpRepo, m.flowRepo, m.limiter, m.notifyGW)
	return uc, m, ctrl
}

func allowedResult() *models.RateLimitResult {
	return &models.RateLimitResult{Allowed: true, Remaining: 10, ResetTime: time.Now().Add(time.Hour)}
}

func deniedResult() *models.RateLimitResult {
	return &models.RateLimitResult{Allowed: false, Remaining: 0, ResetTime: time.Now().Add(time.Hour)}
}

func testUser(t *testing.T, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &models.User{
		ID:           uuid.New(),
		Email:        "siswa@bimbelhub.id",
		PasswordHash: string(hash),
		Role:         "student",
		OrgID:        uuid.New(),
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp, err := uc.Login(context.Background(), user.Email, "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.Email, resp.User.Email)
	assert.Equal(t, user.ID.String(), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp, err := uc.Login(context.Background(), user.Email, "wrong-password")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@bimbelhub.id").
		Return(nil, auth.ErrUserNotFound)

	resp, err := uc.Login(context.Background(), "ghost@bimbelhub.id", "whatever")

	assert.Nil(t, resp)
	// Unknown emails are indistinguishable from wrong passwords
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestInitiateLoginOTP_Success(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.limiter.EXPECT().CheckOperationLimit(gomock.Any(), "login", user.Email).Return(allowedResult(), nil)
	m.otpRepo.EXPECT().StoreOTP(gomock.Any(), user.Email, gomock.Any(), models.PurposeLogin).Return(nil)
	m.notifyGW.EXPECT().SendOTP(gomock.Any(), user.Email, gomock.Any(), models.PurposeLogin, 5*time.Minute).Return(nil)
	m.otpRepo.EXPECT().RemainingAttempts(gomock.Any(), user.Email, models.PurposeLogin).Return(5, nil)

	resp, err := uc.InitiateLoginOTP(context.Background(), user.Email, "secret123", "10.0.0.1")

	assert.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)
	assert.Equal(t, 5, resp.RemainingAttempts)
}

func TestInitiateLoginOTP_WrongPassword_NoOTPIssued(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp, err := uc.InitiateLoginOTP(context.Background(), user.Email, "wrong", "10.0.0.1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestInitiateLoginOTP_RateLimited(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.limiter.EXPECT().CheckOperationLimit(gomock.Any(), "login", user.Email).Return(deniedResult(), nil)

	resp, err := uc.InitiateLoginOTP(context.Background(), user.Email, "secret123", "10.0.0.1")

	assert.Nil(t, resp)
	var rateErr *auth.RateLimitError
	assert.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "login", rateErr.Operation)
}

func TestInitiateLoginOTP_IPLimited(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(deniedResult(), nil)

	resp, err := uc.InitiateLoginOTP(context.Background(), "siswa@bimbelhub.id", "secret123", "10.0.0.1")

	assert.Nil(t, resp)
	var rateErr *auth.RateLimitError
	assert.ErrorAs(t, err, &rateErr)
}

func TestVerifyLoginOTP_Success(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")
	user.FailedOTPAttempts = 2

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.otpRepo.EXPECT().ValidateOTP(gomock.Any(), user.Email, "123456", models.PurposeLogin).Return(true, nil)
	m.otpRepo.EXPECT().DeleteOTP(gomock.Any(), user.Email, models.PurposeLogin).Return(nil)
	m.otpRepo.EXPECT().ResetAttempts(gomock.Any(), user.Email, models.PurposeLogin).Return(nil)
	m.userRepo.EXPECT().SaveAuthState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, 0, u.FailedOTPAttempts)
			assert.Nil(t, u.AccountLockedAt)
			return nil
		})

	resp, err := uc.VerifyLoginOTP(context.Background(), user.Email, "123456", "10.0.0.1")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.Email, resp.User.Email)
}

func TestVerifyLoginOTP_WrongOTP(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")
	user.FailedOTPAttempts = 1

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.otpRepo.EXPECT().ValidateOTP(gomock.Any(), user.Email, "000000", models.PurposeLogin).Return(false, nil)
	m.otpRepo.EXPECT().TrackAttempt(gomock.Any(), user.Email, models.PurposeLogin).Return(int64(2), nil)
	m.userRepo.EXPECT().SaveAuthState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, 2, u.FailedOTPAttempts)
			assert.Nil(t, u.AccountLockedAt)
			return nil
		})

	resp, err := uc.VerifyLoginOTP(context.Background(), user.Email, "000000", "10.0.0.1")

	assert.Nil(t, resp)
	var otpErr *auth.InvalidOTPError
	assert.ErrorAs(t, err, &otpErr)
	assert.Equal(t, 3, otpErr.AttemptsRemaining)
}

func TestVerifyLoginOTP_FifthFailureLocksAccount(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")
	user.FailedOTPAttempts = 4

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.otpRepo.EXPECT().ValidateOTP(gomock.Any(), user.Email, "000000", models.PurposeLogin).Return(false, nil)
	m.otpRepo.EXPECT().TrackAttempt(gomock.Any(), user.Email, models.PurposeLogin).Return(int64(5), nil)
	// The outstanding code is invalidated together with the lock
	m.otpRepo.EXPECT().DeleteOTP(gomock.Any(), user.Email, models.PurposeLogin).Return(nil)
	m.userRepo.EXPECT().SaveAuthState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, 5, u.FailedOTPAttempts)
			assert.NotNil(t, u.AccountLockedAt)
			assert.WithinDuration(t, time.Now().Add(30*time.Minute), *u.AccountLockedAt, 5*time.Second)
			return nil
		})

	resp, err := uc.VerifyLoginOTP(context.Background(), user.Email, "000000", "10.0.0.1")

	assert.Nil(t, resp)
	var lockErr *auth.AccountLockedError
	assert.ErrorAs(t, err, &lockErr)
	assert.Equal(t, 30, lockErr.MinutesRemaining)
}

func TestVerifyLoginOTP_LockedAccountRejected(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")
	user.FailedOTPAttempts = 5
	lockedUntil := time.Now().Add(12 * time.Minute)
	user.AccountLockedAt = &lockedUntil

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp, err := uc.VerifyLoginOTP(context.Background(), user.Email, "123456", "10.0.0.1")

	assert.Nil(t, resp)
	var lockErr *auth.AccountLockedError
	assert.ErrorAs(t, err, &lockErr)
	assert.Equal(t, 12, lockErr.MinutesRemaining)
}

func TestVerifyLoginOTP_ExpiredLockClearedOnSuccess(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")
	user.FailedOTPAttempts = 5
	lockedUntil := time.Now().Add(-time.Minute)
	user.AccountLockedAt = &lockedUntil

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.otpRepo.EXPECT().ValidateOTP(gomock.Any(), user.Email, "123456", models.PurposeLogin).Return(true, nil)
	m.otpRepo.EXPECT().DeleteOTP(gomock.Any(), user.Email, models.PurposeLogin).Return(nil)
	m.otpRepo.EXPECT().ResetAttempts(gomock.Any(), user.Email, models.PurposeLogin).Return(nil)
	m.userRepo.EXPECT().SaveAuthState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, 0, u.FailedOTPAttempts)
			assert.Nil(t, u.AccountLockedAt)
			return nil
		})

	resp, err := uc.VerifyLoginOTP(context.Background(), user.Email, "123456", "10.0.0.1")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestVerifyLoginOTP_UnknownEmail(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@bimbelhub.id").
		Return(nil, auth.ErrUserNotFound)

	resp, err := uc.VerifyLoginOTP(context.Background(), "ghost@bimbelhub.id", "123456", "10.0.0.1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifyLoginOTP_ValidateError(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")

	m.limiter.EXPECT().CheckIPLimit(gomock.Any(), "10.0.0.1").Return(allowedResult(), nil)
	m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.otpRepo.EXPECT().ValidateOTP(gomock.Any(), user.Email, "123456", models.PurposeLogin).
		Return(false, errors.New("redis unavailable"))

	resp, err := uc.VerifyLoginOTP(context.Background(), user.Email, "123456", "10.0.0.1")

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis unavailable")
}
