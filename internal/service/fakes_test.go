package service

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

type fakeStaffRepo struct {
	mu    sync.Mutex
	staff map[string]*domain.Staff
	seq   int
	err   error
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]*domain.Staff)}
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, s := range r.staff {
		if strings.EqualFold(s.Email, staff.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	r.seq++
	staff.ID = fmt.Sprintf("staff-%d", r.seq)
	staff.CreatedAt = time.Now()
	copy := *staff
	r.staff[staff.ID] = &copy
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.staff[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *s
	return &copy, nil
}

func (r *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.staff {
		if strings.EqualFold(s.Email, email) {
			copy := *s
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeStaffRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.staff)
}

type fakeVisitorRepo struct {
	mu       sync.Mutex
	visitors map[string]*domain.Visitor
	seq      int
	clock    time.Time
	err      error
	lists    int
}

func newFakeVisitorRepo() *fakeVisitorRepo {
	return &fakeVisitorRepo{
		visitors: make(map[string]*domain.Visitor),
		clock:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeVisitorRepo) Create(_ context.Context, visitor *domain.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, v := range r.visitors {
		if strings.EqualFold(v.Email, visitor.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	r.seq++
	r.clock = r.clock.Add(time.Minute)
	visitor.ID = fmt.Sprintf("visitor-%d", r.seq)
	visitor.CreatedAt = r.clock
	visitor.UpdatedAt = r.clock
	copy := *visitor
	r.visitors[visitor.ID] = &copy
	return nil
}

func (r *fakeVisitorRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, v := range r.visitors {
		if strings.EqualFold(v.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVisitorRepo) GetByID(_ context.Context, id string) (*domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	v, ok := r.visitors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *v
	return &copy, nil
}

func (r *fakeVisitorRepo) SetCheckedIn(_ context.Context, id string, checkedIn bool) (*domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	v, ok := r.visitors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v.CheckedIn = checkedIn
	copy := *v
	return &copy, nil
}

func (r *fakeVisitorRepo) matching(filter repository.VisitorFilter) []domain.Visitor {
	var out []domain.Visitor
	for _, v := range r.visitors {
		if filter.CheckedIn != nil && v.CheckedIn != *filter.CheckedIn {
			continue
		}
		if filter.Invited != nil && v.Invited != *filter.Invited {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeVisitorRepo) List(_ context.Context, filter repository.VisitorFilter) ([]domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	if r.err != nil {
		return nil, r.err
	}
	all := r.matching(filter)
	if filter.Offset >= len(all) {
		return []domain.Visitor{}, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[filter.Offset:end], nil
}

func (r *fakeVisitorRepo) Count(_ context.Context, filter repository.VisitorFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return len(r.matching(filter)), nil
}

func (r *fakeVisitorRepo) listCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lists
}

func (r *fakeVisitorRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type memoryAttempts struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (a *memoryAttempts) Count(_ context.Context, key string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[key], nil
}

func (a *memoryAttempts) Increment(_ context.Context, key string, _ time.Duration) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.counts == nil {
		a.counts = make(map[string]int64)
	}
	a.counts[key]++
	return a.counts[key], nil
}

func (a *memoryAttempts) Reset(_ context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.counts, key)
	return nil
}

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) RecordEvent(eventType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[eventType]++
}

func (r *countingRecorder) get(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[eventType]
}
