package service

import (
	"context"
	"log"
	"os"
	"time"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/pkg/mailer"
	"crowlands-be/internal/repository/specification"
	"crowlands-be/internal/repository/unitofwork"

	"crowlands-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	UpdateEmail(ctx context.Context, userId uuid.UUID, req *dto.UpdateEmailRequest) (*dto.UserResponse, error)
	ResolveUser(ctx context.Context, userId uuid.UUID) (*entity.User, error)
}

// IEventPublisher is the slice of the event bus the auth service needs.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher IEventPublisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher IEventPublisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

// generateToken signs a 30-day HS256 bearer token bound to the user id.
func generateToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(30 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:                 user.Id,
		Email:              user.Email,
		Name:               user.Name,
		SubscriptionTier:   string(user.SubscriptionTier),
		SubscriptionStatus: string(user.SubscriptionStatus),
		LifetimeGenerated:  user.LifetimeGenerated,
		LifetimeSaved:      user.LifetimeSaved,
		CreatedAt:          user.CreatedAt,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &dto.ConflictError{Message: "email already registered"}
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create User Entity
	user := &entity.User{
		Id:                   uuid.New(),
		Email:                req.Email,
		Name:                 req.Name,
		PasswordHash:         string(hash),
		SubscriptionTier:     entity.TierFree,
		SubscriptionStatus:   entity.SubscriptionStatusActive,
		SpellGenerationReset: time.Now(),
		CreatedAt:            time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Sign token
	signedToken, err := generateToken(user.Id)
	if err != nil {
		return nil, err
	}

	// 5. Best-effort side channels
	go func(email, name string) {
		if s.emailService != nil {
			if err := s.emailService.SendWelcome(email, name); err != nil {
				log.Printf("[WARN] welcome mail failed for %s: %v", email, err)
			}
		}
	}(user.Email, user.Name)

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserRegistered(user.Id.String(), user.Email)); err != nil {
			log.Printf("[WARN] failed to publish USER_REGISTERED: %v", err)
		}
	}

	return &dto.AuthResponse{
		Token: signedToken,
		User:  toUserResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.UnauthorizedError{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &dto.UnauthorizedError{Message: "invalid credentials"}
	}

	now := time.Now()
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, now); err != nil {
		log.Printf("[WARN] failed to stamp last login for %s: %v", user.Id, err)
	}
	user.LastLoginAt = &now

	signedToken, err := generateToken(user.Id)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserLogin(user.Id.String(), user.Email)); err != nil {
			log.Printf("[WARN] failed to publish USER_LOGIN: %v", err)
		}
	}

	return &dto.AuthResponse{
		Token: signedToken,
		User:  toUserResponse(user),
	}, nil
}

func (s *authService) UpdateEmail(ctx context.Context, userId uuid.UUID, req *dto.UpdateEmailRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &dto.UnauthorizedError{Message: "invalid password"}
	}

	taken, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.NewEmail})
	if err != nil {
		return nil, err
	}
	if taken != nil && taken.Id != user.Id {
		return nil, &dto.ConflictError{Message: "email already in use"}
	}

	if err := uow.UserRepository().UpdateEmail(ctx, user.Id, req.NewEmail); err != nil {
		return nil, err
	}
	user.Email = req.NewEmail

	res := toUserResponse(user)
	return &res, nil
}

// ResolveUser loads the account behind a verified token. A nil result means
// the token pointed at an unknown user; generation callers downgrade that
// to anonymous.
func (s *authService) ResolveUser(ctx context.Context, userId uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
}
