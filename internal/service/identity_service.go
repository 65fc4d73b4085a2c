package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Leganyst/barbershop-booking/internal/model"
	"github.com/Leganyst/barbershop-booking/internal/repository"
	"github.com/Leganyst/barbershop-booking/internal/schedule"
)

// IdentityService реализует регистрацию, аутентификацию и профили,
// включая барберов и их рабочие часы.
type IdentityService struct {
	users  repository.UserRepository
	hours  repository.WorkingHoursRepository
	events repository.EventRepository

	logger *zap.Logger
}

func NewIdentityService(
	users repository.UserRepository,
	hours repository.WorkingHoursRepository,
	events repository.EventRepository,
	logger *zap.Logger,
) *IdentityService {
	return &IdentityService{
		users:  users,
		hours:  hours,
		events: events,
		logger: logger,
	}
}

type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	AvatarURL string
	// Роль выставляется только админским путём; публичная регистрация
	// всегда создаёт обычного пользователя.
	Role model.UserRole
}

// Register создаёт пользователя с захэшированным паролем.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = model.UserRoleUser
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     in.Username,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		AvatarURL:    in.AvatarURL,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	event := &model.Event{
		ID:        uuid.New(),
		EventType: model.EventTypeUserRegistered,
		UserID:    &user.ID,
	}
	if err := s.events.Record(ctx, event); err != nil {
		// Аудит не должен ломать регистрацию.
		s.logger.Warn("record registration event failed", zap.Error(err))
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return user, nil
}

// Authenticate проверяет пару логин/пароль и статус аккаунта.
func (s *IdentityService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := CheckAccountActive(user); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// CheckAccountActive отсекает деактивированные аккаунты.
func CheckAccountActive(user *model.User) error {
	if user == nil {
		return ErrInvalidCredentials
	}
	if !user.IsActive {
		return ErrAccountInactive
	}
	return nil
}

// GetProfile возвращает пользователя по ID.
func (s *IdentityService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	AvatarURL *string
}

// UpdateProfile частично обновляет контактные данные пользователя.
func (s *IdentityService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*model.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ListBarbers — все барберы с их рабочими часами.
func (s *IdentityService) ListBarbers(ctx context.Context) ([]model.User, error) {
	return s.users.ListBarbers(ctx)
}

type WorkingHoursInput struct {
	OpensAt    string
	ClosesAt   string
	BreakStart string
	BreakEnd   string
}

// SetWorkingHours создаёт или обновляет рабочие часы барбера.
// Инварианты (open < close, перерыв внутри дня) проверяются до записи.
func (s *IdentityService) SetWorkingHours(ctx context.Context, barberID uuid.UUID, in WorkingHoursInput) (*model.WorkingHours, error) {
	if _, err := s.users.GetBarber(ctx, barberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, fmt.Errorf("load barber: %w", err)
	}

	// Материализация на произвольную дату — только ради проверки инвариантов.
	if _, err := schedule.NewDayHours(time.Unix(0, 0).UTC(), in.OpensAt, in.ClosesAt, in.BreakStart, in.BreakEnd); err != nil {
		return nil, err
	}

	wh := &model.WorkingHours{
		ID:         uuid.New(),
		BarberID:   barberID,
		OpensAt:    in.OpensAt,
		ClosesAt:   in.ClosesAt,
		BreakStart: in.BreakStart,
		BreakEnd:   in.BreakEnd,
	}
	if err := s.hours.Upsert(ctx, wh); err != nil {
		return nil, fmt.Errorf("upsert working hours: %w", err)
	}
	return wh, nil
}
