package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/visitor-service/internal/domain"
	"github.com/spec-kit/visitor-service/internal/events"
	"github.com/spec-kit/visitor-service/internal/repository"
	apperrors "github.com/spec-kit/visitor-service/pkg/util"
)

const msgDuplicateVisitor = "Visitor with this email already exists"

// VisitorService manages visitor records and check-in state.
type VisitorService struct {
	visitors repository.VisitorRepository
	staff    repository.StaffRepository
	events   events.Dispatcher
	logger   *zap.Logger
}

// VisitorDependencies encapsulates collaborators for the visitor service.
type VisitorDependencies struct {
	VisitorRepo repository.VisitorRepository
	StaffRepo   repository.StaffRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewVisitorService constructs the service.
func NewVisitorService(deps VisitorDependencies) *VisitorService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitorService{
		visitors: deps.VisitorRepo,
		staff:    deps.StaffRepo,
		events:   deps.Dispatcher,
		logger:   logger,
	}
}

// VisitorInput is the allow-listed set of caller-supplied visitor fields.
type VisitorInput struct {
	FullName     string
	Email        string
	Phone        string
	Address      string
	Company      string
	Purpose      string
	VisitDate    *time.Time
	ProfileImage *string
	Invited      bool
}

// ListVisitors returns one page of all visitors, newest first.
func (s *VisitorService) ListVisitors(ctx context.Context, page int) (*domain.VisitorPage, error) {
	return s.list(ctx, repository.VisitorFilter{}, page)
}

// ListVisitorsByFlag returns one page of visitors matching flag.
func (s *VisitorService) ListVisitorsByFlag(ctx context.Context, flag domain.VisitorFlag, page int) (*domain.VisitorPage, error) {
	if !flag.Valid() {
		return nil, apperrors.NewValidationError("unknown visitor filter", map[string]any{"flag": string(flag)})
	}
	filter := repository.VisitorFilter{}
	yes, no := true, false
	switch flag {
	case domain.VisitorFlagCheckedIn:
		filter.CheckedIn = &yes
	case domain.VisitorFlagNotCheckedIn:
		filter.CheckedIn = &no
	case domain.VisitorFlagInvited:
		filter.Invited = &yes
	case domain.VisitorFlagNotInvited:
		filter.Invited = &no
	}
	return s.list(ctx, filter, page)
}

func (s *VisitorService) list(ctx context.Context, filter repository.VisitorFilter, page int) (*domain.VisitorPage, error) {
	if page < 1 {
		page = 1
	}
	count, err := s.visitors.Count(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	result := &domain.VisitorPage{
		Visitors: []domain.Visitor{},
		Page:     page,
		Pages:    domain.PageCount(count, domain.VisitorPageSize),
		Count:    count,
	}
	// Past the last page the offset could overflow; there is nothing to read.
	if page > result.Pages {
		return result, nil
	}

	filter.Limit = domain.VisitorPageSize
	filter.Offset = domain.VisitorPageSize * (page - 1)
	visitors, err := s.visitors.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	result.Visitors = visitors
	return result, nil
}

// CreateVisitor registers a self-service visitor.
func (s *VisitorService) CreateVisitor(ctx context.Context, in VisitorInput) (*domain.Visitor, error) {
	visitor, err := newVisitor(in)
	if err != nil {
		return nil, err
	}
	if err := s.visitors.Create(ctx, visitor); err != nil {
		return nil, mapVisitorCreateError(err)
	}
	s.publishCreated(ctx, visitor)
	return visitor, nil
}

// CreateVisitorByStaff registers a visitor on behalf of an existing staff member.
func (s *VisitorService) CreateVisitorByStaff(ctx context.Context, in VisitorInput, staffAdminID string) (*domain.Visitor, error) {
	visitor, err := newVisitor(in)
	if err != nil {
		return nil, err
	}
	staffAdminID = strings.TrimSpace(staffAdminID)
	if staffAdminID == "" {
		return nil, apperrors.NewValidationError(msgMissingFields, map[string]any{"fields": []string{"staffAdminId"}})
	}

	exists, err := s.visitors.EmailExists(ctx, visitor.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if exists {
		return nil, apperrors.NewDuplicateEmail(msgDuplicateVisitor)
	}
	if _, err := s.staff.GetByID(ctx, staffAdminID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFound("Staff admin", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	visitor.CreatedByStaff = true
	visitor.StaffAdminID = &staffAdminID
	if err := s.visitors.Create(ctx, visitor); err != nil {
		// The foreign key catches a staff record removed after the lookup.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFound("Staff admin", nil)
		}
		return nil, mapVisitorCreateError(err)
	}
	s.publishCreated(ctx, visitor)
	return visitor, nil
}

// GetVisitor fetches a visitor by id.
func (s *VisitorService) GetVisitor(ctx context.Context, id string) (*domain.Visitor, error) {
	visitor, err := s.visitors.GetByID(ctx, id)
	if err != nil {
		return nil, mapVisitorLookupError(err)
	}
	return visitor, nil
}

// GetCheckInStatus reports whether the visitor has checked in.
func (s *VisitorService) GetCheckInStatus(ctx context.Context, id string) (bool, error) {
	visitor, err := s.GetVisitor(ctx, id)
	if err != nil {
		return false, err
	}
	return visitor.CheckedIn, nil
}

// SetCheckInStatus persists the check-in flag and returns the updated visitor.
func (s *VisitorService) SetCheckInStatus(ctx context.Context, id string, checkedIn bool) (*domain.Visitor, error) {
	visitor, err := s.visitors.SetCheckedIn(ctx, id, checkedIn)
	if err != nil {
		return nil, mapVisitorLookupError(err)
	}
	publish(ctx, s.events, s.logger, events.Event{
		Type:      events.EventVisitorCheckInChanged,
		VisitorID: visitor.ID,
		Payload:   events.VisitorCheckInChangedPayload{CheckedIn: visitor.CheckedIn},
	})
	return visitor, nil
}

func (s *VisitorService) publishCreated(ctx context.Context, visitor *domain.Visitor) {
	publish(ctx, s.events, s.logger, events.Event{
		Type:      events.EventVisitorCreated,
		VisitorID: visitor.ID,
		StaffID:   visitor.StaffAdminID,
		Payload:   events.VisitorCreatedPayload{Email: visitor.Email, CreatedByStaff: visitor.CreatedByStaff},
	})
}

func newVisitor(in VisitorInput) (*domain.Visitor, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, apperrors.NewValidationError(msgMissingFields, map[string]any{"fields": []string{"email"}})
	}
	return &domain.Visitor{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Company:      strings.TrimSpace(in.Company),
		Purpose:      strings.TrimSpace(in.Purpose),
		VisitDate:    in.VisitDate,
		ProfileImage: trimmedOrNil(in.ProfileImage),
		Invited:      in.Invited,
	}, nil
}

func mapVisitorCreateError(err error) error {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return apperrors.NewDuplicateEmail(msgDuplicateVisitor)
	}
	return apperrors.NewInternalError(err)
}

func mapVisitorLookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperrors.NewNotFound("Visitor", nil)
	}
	return apperrors.NewInternalError(err)
}
