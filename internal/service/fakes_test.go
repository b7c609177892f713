package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/mail"
	"github.com/spec-kit/member-directory/internal/repository"
)

// fakeMemberRepo is an in-memory MemberRepository mirroring the SQL
// semantics of the real one.
type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[string]*domain.Member
	seq     int
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*domain.Member)}
}

func (r *fakeMemberRepo) Create(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.members {
		if existing.Email == member.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	member.ID = uuid.NewString()
	r.seq++
	member.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	clone := *member
	r.members[member.ID] = &clone
	return nil
}

func (r *fakeMemberRepo) Update(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[member.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *member
	r.members[member.ID] = &clone
	return nil
}

func (r *fakeMemberRepo) UpdatePhoto(_ context.Context, id, photoURL, photoKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok {
		return pgx.ErrNoRows
	}
	member.ProfilePhoto = photoURL
	member.PhotoKey = photoKey
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.members, id)
	return nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *member
	return &clone, nil
}

func (r *fakeMemberRepo) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, member := range r.members {
		if member.Email == email {
			clone := *member
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeMemberRepo) List(_ context.Context, filter repository.MemberFilter) ([]domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Member
	for _, member := range r.members {
		if filter.Role != nil && member.Role != *filter.Role {
			continue
		}
		if filter.IsApproved != nil && member.IsApproved != *filter.IsApproved {
			continue
		}
		if filter.Department != nil && *filter.Department != "" && member.Department != *filter.Department {
			continue
		}
		if filter.Language != nil && *filter.Language != "" && !containsExact(member.Languages, *filter.Language) {
			continue
		}
		if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
			needle := strings.ToLower(strings.TrimSpace(*filter.Search))
			if !strings.Contains(strings.ToLower(member.Name), needle) {
				continue
			}
		}
		clone := *member
		clone.PasswordHash = ""
		out = append(out, clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMemberRepo) Stats(_ context.Context) (*repository.DirectoryStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &repository.DirectoryStats{}
	deptCounts := map[string]int{}
	langCounts := map[string]int{}
	for _, member := range r.members {
		if member.Role != domain.RoleMember {
			continue
		}
		stats.TotalMembers++
		if member.IsApproved {
			stats.ApprovedMembers++
			deptCounts[member.Department]++
			for _, lang := range member.Languages {
				langCounts[lang]++
			}
		} else {
			stats.PendingMembers++
		}
	}
	for dept, count := range deptCounts {
		stats.DepartmentStats = append(stats.DepartmentStats, repository.DepartmentCount{Department: dept, Count: count})
	}
	for lang, count := range langCounts {
		stats.LanguageStats = append(stats.LanguageStats, repository.LanguageCount{Language: lang, Count: count})
	}
	sort.Slice(stats.DepartmentStats, func(i, j int) bool { return stats.DepartmentStats[i].Count > stats.DepartmentStats[j].Count })
	sort.Slice(stats.LanguageStats, func(i, j int) bool { return stats.LanguageStats[i].Count > stats.LanguageStats[j].Count })
	return stats, nil
}

func containsExact(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// recordingMailer captures sent messages and can be told to fail.
type recordingMailer struct {
	mu       sync.Mutex
	messages []mail.Message
	failWith error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return m.failWith
}

func (m *recordingMailer) sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message{}, m.messages...)
}

// fakeStorage records uploads and deletes; either call can be told to fail.
type fakeStorage struct {
	mu        sync.Mutex
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads[key] = data
	return "https://media.example.com/" + key, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	delete(s.uploads, key)
	return nil
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	mu  sync.Mutex
	cfg *domain.CategoryConfig
}

func (r *fakeCategoryRepo) Get(_ context.Context) (*domain.CategoryConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil {
		return nil, pgx.ErrNoRows
	}
	clone := *r.cfg
	return &clone, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, cfg *domain.CategoryConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg.ID = uuid.NewString()
	cfg.UpdatedAt = time.Now()
	clone := *cfg
	r.cfg = &clone
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, cfg *domain.CategoryConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil {
		return pgx.ErrNoRows
	}
	cfg.UpdatedAt = time.Now()
	clone := *cfg
	r.cfg = &clone
	return nil
}
