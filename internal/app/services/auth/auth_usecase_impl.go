package auth

import (
	"context"
	"time"

	"aura-service/internal/app/config"
	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	EventPublisher contracts.EventPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userPostgresRepository contracts.UserRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userPostgresRepository,
		EventPublisher: eventPublisher,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     request.Email,
		Password:  hashedPassword,
		FullName:  request.FullName,
		Role:      request.Role,
		ClinicID:  request.ClinicID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	event := events.UserRegistered{
		Envelope: events.NewEnvelope(),
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		ClinicID: user.ClinicID,
	}
	if err := uc.EventPublisher.Publish(ctx, events.QueueUserRegistered, event); err != nil {
		return nil, err
	}

	return &responses.RegisterUser{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		ClinicID: user.ClinicID,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	token, err := utils.GenerateUserJWT(
		user.ID,
		user.Role,
		user.ClinicID,
		uc.InternalConfig.JWT.Secret,
		uc.InternalConfig.JWT.ExpTimeInHour,
	)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{Token: token}, nil
}
