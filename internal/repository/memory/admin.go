package memory

import (
	"context"
	"enrolladmin/internal/models"
	"enrolladmin/internal/repository"
	"fmt"
	"strings"
	"sync"
	"time"
)

// AdminRepository хранит администраторов в памяти. Используется в тестах
// и при DB_DRIVER=memory.
type AdminRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.AdminAccount
	now    func() time.Time
}

func NewAdminRepository(now func() time.Time) *AdminRepository {
	if now == nil {
		now = time.Now
	}
	return &AdminRepository{byID: make(map[int64]models.AdminAccount), now: now}
}

func (r *AdminRepository) Create(_ context.Context, email, passwordHash string) (*models.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.byID {
		if strings.EqualFold(a.Email, email) {
			return nil, fmt.Errorf("admin %q already exists", email)
		}
	}

	r.nextID++
	ts := r.now()
	a := models.AdminAccount{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	r.byID[a.ID] = a
	return &a, nil
}

// Put кладёт запись с заданным id как есть, для сидирования.
func (r *AdminRepository) Put(a models.AdminAccount) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[a.ID] = a
	if a.ID > r.nextID {
		r.nextID = a.ID
	}
}

func (r *AdminRepository) GetByEmail(_ context.Context, email string) (*models.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.byID {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AdminRepository) GetByID(_ context.Context, id int64) (*models.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *AdminRepository) UpdatePassword(_ context.Context, id int64, passwordHash string) (*models.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = r.now()
	r.byID[id] = a
	return &a, nil
}
