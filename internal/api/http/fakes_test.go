package http

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/visitor-service/internal/domain"
	"github.com/spec-kit/visitor-service/internal/mail"
	"github.com/spec-kit/visitor-service/internal/repository"
)

type memoryStaff struct {
	mu    sync.Mutex
	items map[string]domain.Staff
	seq   int
}

func (r *memoryStaff) Create(_ context.Context, staff *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if strings.EqualFold(s.Email, staff.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	r.seq++
	staff.ID = fmt.Sprintf("staff-%d", r.seq)
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = staff.CreatedAt
	r.items[staff.ID] = *staff
	return nil
}

func (r *memoryStaff) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memoryStaff) GetByEmail(_ context.Context, email string) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if strings.EqualFold(s.Email, email) {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memoryVisitors struct {
	mu    sync.Mutex
	items map[string]domain.Visitor
	seq   int
	clock time.Time
}

func (r *memoryVisitors) Create(_ context.Context, visitor *domain.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if strings.EqualFold(v.Email, visitor.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	r.seq++
	r.clock = r.clock.Add(time.Second)
	visitor.ID = fmt.Sprintf("visitor-%d", r.seq)
	visitor.CreatedAt = r.clock
	visitor.UpdatedAt = r.clock
	r.items[visitor.ID] = *visitor
	return nil
}

func (r *memoryVisitors) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if strings.EqualFold(v.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryVisitors) GetByID(_ context.Context, id string) (*domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *memoryVisitors) SetCheckedIn(_ context.Context, id string, checkedIn bool) (*domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v.CheckedIn = checkedIn
	r.items[id] = v
	return &v, nil
}

func (r *memoryVisitors) matching(filter repository.VisitorFilter) []domain.Visitor {
	out := make([]domain.Visitor, 0, len(r.items))
	for _, v := range r.items {
		if filter.CheckedIn != nil && v.CheckedIn != *filter.CheckedIn {
			continue
		}
		if filter.Invited != nil && v.Invited != *filter.Invited {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memoryVisitors) List(_ context.Context, filter repository.VisitorFilter) ([]domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.matching(filter)
	if filter.Offset >= len(all) {
		return []domain.Visitor{}, nil
	}
	end := min(filter.Offset+filter.Limit, len(all))
	return all[filter.Offset:end], nil
}

func (r *memoryVisitors) Count(_ context.Context, filter repository.VisitorFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matching(filter)), nil
}

func (r *memoryVisitors) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
