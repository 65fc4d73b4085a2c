package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/barbershop-booking/internal/model"
)

// Формы ответов по ролям. Вариант выбирается один раз на границе API
// явным типом, а не ветвлением по строке роли внутри ядра.

type userProfile struct {
	ID        uuid.UUID      `json:"id"`
	Username  string         `json:"username"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Phone     string         `json:"phone"`
	Role      model.UserRole `json:"role"`
	AvatarURL string         `json:"avatar_url"`
}

type workingHoursBlock struct {
	OpensAt    string `json:"opens_at"`
	ClosesAt   string `json:"closes_at"`
	BreakStart string `json:"break_start,omitempty"`
	BreakEnd   string `json:"break_end,omitempty"`
}

type barberProfile struct {
	userProfile
	WorkingHours *workingHoursBlock `json:"working_hours"`
}

type adminProfile struct {
	userProfile
	CompanyID *uuid.UUID `json:"company_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func userView(u *model.User) userProfile {
	return userProfile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

func hoursView(wh *model.WorkingHours) *workingHoursBlock {
	if wh == nil {
		return nil
	}
	return &workingHoursBlock{
		OpensAt:    wh.OpensAt,
		ClosesAt:   wh.ClosesAt,
		BreakStart: wh.BreakStart,
		BreakEnd:   wh.BreakEnd,
	}
}

func barberView(u *model.User) barberProfile {
	return barberProfile{
		userProfile:  userView(u),
		WorkingHours: hoursView(u.WorkingHours),
	}
}

func adminView(u *model.User) adminProfile {
	return adminProfile{
		userProfile: userView(u),
		CompanyID:   u.CompanyID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// profileView выбирает форму профиля по роли пользователя.
func profileView(u *model.User) any {
	switch u.Role {
	case model.UserRoleBarber:
		return barberView(u)
	case model.UserRoleAdmin:
		return adminView(u)
	default:
		return userView(u)
	}
}

type bookingView struct {
	ID         uuid.UUID `json:"id"`
	BarberID   uuid.UUID `json:"barber_id"`
	ResidentID uuid.UUID `json:"resident_id"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func toBookingView(b *model.Booking) bookingView {
	return bookingView{
		ID:         b.ID,
		BarberID:   b.BarberID,
		ResidentID: b.ResidentID,
		Start:      formatWireDateTime(b.StartsAt),
		End:        formatWireDateTime(b.EndsAt),
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
	}
}

type companyView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	IsActive bool      `json:"is_active"`
}

func toCompanyView(company *model.Company) companyView {
	return companyView{
		ID:       company.ID,
		Name:     company.Name,
		Address:  company.Address,
		IsActive: company.IsActive,
	}
}
