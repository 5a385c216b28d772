package service

import (
	"context"
	"strings"
	"time"

	"github.com/prasetia/todo-auth-backend/internal/auth"
	"github.com/prasetia/todo-auth-backend/internal/domain"

	"gorm.io/gorm"
)

// fakeTodoRepo is an in-memory TodoRepository for service tests.
type fakeTodoRepo struct {
	todos  map[uint]domain.Todo
	nextID uint
	err    error // when set, every call fails with it
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[uint]domain.Todo), nextID: 1}
}

func (r *fakeTodoRepo) Create(todo *domain.Todo) error {
	if r.err != nil {
		return r.err
	}
	todo.ID = r.nextID
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = todo.CreatedAt
	r.nextID++
	r.todos[todo.ID] = *todo
	return nil
}

func (r *fakeTodoRepo) FindByID(id uint) (*domain.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	todo, ok := r.todos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &todo, nil
}

func (r *fakeTodoRepo) GetAll() ([]domain.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	var all []domain.Todo
	for _, todo := range r.todos {
		all = append(all, todo)
	}
	return all, nil
}

func (r *fakeTodoRepo) Search(q string) ([]domain.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	needle := strings.ToLower(q)
	var matched []domain.Todo
	for _, todo := range r.todos {
		if strings.Contains(strings.ToLower(todo.Title), needle) ||
			strings.Contains(strings.ToLower(todo.Deskripsi), needle) {
			matched = append(matched, todo)
		}
	}
	return matched, nil
}

func (r *fakeTodoRepo) Update(todo *domain.Todo) error {
	if r.err != nil {
		return r.err
	}
	todo.UpdatedAt = time.Now()
	r.todos[todo.ID] = *todo
	return nil
}

func (r *fakeTodoRepo) Delete(id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.todos, id)
	return nil
}

// fakeUserRepo is an in-memory UserRepository for service tests. Create
// enforces email uniqueness the way the real unique index does, returning
// gorm.ErrDuplicatedKey.
type fakeUserRepo struct {
	users  map[uint]domain.User
	nextID uint
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var all []domain.User
	for _, user := range r.users {
		all = append(all, user)
	}
	return all, nil
}

func (r *fakeUserRepo) Update(user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// fakeGoogleVerifier returns a fixed claim, or fails when claim is nil.
type fakeGoogleVerifier struct {
	claim *auth.IdentityClaim
}

func (v *fakeGoogleVerifier) Verify(ctx context.Context, idToken string) (*auth.IdentityClaim, error) {
	if v.claim == nil {
		return nil, auth.ErrInvalidToken
	}
	return v.claim, nil
}
