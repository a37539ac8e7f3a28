package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/visitor-service/internal/auth"
	"github.com/spec-kit/visitor-service/internal/domain"
	"github.com/spec-kit/visitor-service/internal/events"
	"github.com/spec-kit/visitor-service/internal/mail"
	"github.com/spec-kit/visitor-service/internal/repository"
	apperrors "github.com/spec-kit/visitor-service/pkg/util"
)

const (
	invitationSubject = "Invitation to schedule a visit"
	invitationBody    = "Dear Visitor, you are invited to schedule a visit. Please visit our website to schedule a visit."

	dateLayout = "2006-01-02"
)

const msgMissingFields = "Missing required fields"

// Mailer delivers outbound email.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// StaffService covers staff registration, login and visitor invitations.
type StaffService struct {
	staff    repository.StaffRepository
	tokens   *auth.TokenManager
	throttle *auth.LoginThrottle
	mailer   Mailer
	events   events.Dispatcher
	logger   *zap.Logger
}

// StaffDependencies encapsulates collaborators for the staff service.
type StaffDependencies struct {
	StaffRepo  repository.StaffRepository
	Tokens     *auth.TokenManager
	Throttle   *auth.LoginThrottle
	Mailer     Mailer
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewStaffService builds the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{
		staff:    deps.StaffRepo,
		tokens:   deps.Tokens,
		throttle: deps.Throttle,
		mailer:   deps.Mailer,
		events:   deps.Dispatcher,
		logger:   logger,
	}
}

// StaffRegisterInput carries the accepted registration fields.
type StaffRegisterInput struct {
	FullName     string
	Email        string
	Password     string
	Phone        string
	Address      string
	EmployerID   *string
	Department   string
	DOB          string
	Gender       string
	ProfileImage *string
}

// LoginResult is the issued bearer token.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// Register creates a staff account with a hashed password.
func (s *StaffService) Register(ctx context.Context, in StaffRegisterInput) (*domain.Staff, error) {
	if missing := missingFields(
		field{"fullName", in.FullName},
		field{"email", in.Email},
		field{"password", in.Password},
		field{"phone", in.Phone},
		field{"address", in.Address},
		field{"department", in.Department},
		field{"gender", in.Gender},
	); len(missing) > 0 {
		return nil, apperrors.NewValidationError(msgMissingFields, map[string]any{"fields": missing})
	}

	var dob *time.Time
	if strings.TrimSpace(in.DOB) != "" {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(in.DOB))
		if err != nil {
			return nil, apperrors.NewValidationError("dob must be formatted as YYYY-MM-DD", nil)
		}
		dob = &parsed
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	staff := &domain.Staff{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		EmployerID:   trimmedOrNil(in.EmployerID),
		Department:   strings.TrimSpace(in.Department),
		DOB:          dob,
		Gender:       strings.TrimSpace(in.Gender),
		ProfileImage: trimmedOrNil(in.ProfileImage),
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperrors.NewDuplicateEmail("Staff with this email already exists")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return staff, nil
}

// Login authenticates staff and issues a bearer token. Unknown accounts and
// wrong passwords produce the same error.
func (s *StaffService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError(msgMissingFields, nil)
	}
	if !s.throttle.Allowed(ctx, email) {
		return nil, apperrors.NewTooManyRequests("Too many failed login attempts, try again later")
	}

	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewInternalError(err)
		}
		_ = auth.CompareDummy(password)
		s.throttle.Failed(ctx, email)
		return nil, apperrors.NewInvalidCredentials()
	}
	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		s.throttle.Failed(ctx, email)
		return nil, apperrors.NewInvalidCredentials()
	}
	s.throttle.Succeeded(ctx, email)

	token, exp, err := s.tokens.GenerateToken(staff.ID, staff.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.logger.Info("staff logged in", zap.String("staff_id", staff.ID), zap.Time("token_expires_at", exp))
	return &LoginResult{Token: token, ExpiresAt: exp}, nil
}

// InviteVisitor emails a fixed invitation to email on behalf of staffID.
// The visitor's invited flag is managed separately and is not changed here.
func (s *StaffService) InviteVisitor(ctx context.Context, email, staffID string) error {
	email = strings.TrimSpace(email)
	staffID = strings.TrimSpace(staffID)
	if email == "" || staffID == "" {
		return apperrors.NewValidationError(msgMissingFields, nil)
	}

	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.NewNotFound("Staff", nil)
		}
		return apperrors.NewInternalError(err)
	}

	if err := s.mailer.Send(ctx, mail.Message{To: email, Subject: invitationSubject, Body: invitationBody}); err != nil {
		return apperrors.NewInternalError(err)
	}

	publish(ctx, s.events, s.logger, events.Event{
		Type:    events.EventVisitorInvited,
		StaffID: &staffID,
		Payload: events.VisitorInvitedPayload{Email: email},
	})
	return nil
}

type field struct {
	name  string
	value string
}

func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func trimmedOrNil(val *string) *string {
	if val == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
