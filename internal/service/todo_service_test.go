package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenGetTodo(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "Buy milk", Deskripsi: "2% fat"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetTodoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2% fat", got.Deskripsi)
}

func TestCreateTodoAcceptsEmptyFields(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepo())

	created, err := svc.CreateTodo(context.Background(), CreateTodoRequest{})
	require.NoError(t, err)
	assert.Empty(t, created.Title)
	assert.Empty(t, created.Deskripsi)
}

func TestGetTodoByIDNotFound(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepo())

	_, err := svc.GetTodoByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestSearchTodosCaseInsensitive(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo)
	ctx := context.Background()

	_, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "Buy Milk", Deskripsi: "from the store"})
	require.NoError(t, err)
	_, err = svc.CreateTodo(ctx, CreateTodoRequest{Title: "Walk the dog", Deskripsi: "morning MILK run"})
	require.NoError(t, err)
	_, err = svc.CreateTodo(ctx, CreateTodoRequest{Title: "Read a book", Deskripsi: "fiction"})
	require.NoError(t, err)

	results, err := svc.SearchTodos(ctx, "milk")
	require.NoError(t, err)
	// Matches title of the first and description of the second.
	assert.Len(t, results, 2)

	results, err = svc.SearchTodos(ctx, "banana")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUpdateTodoPartial(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "Old title", Deskripsi: "old desc"})
	require.NoError(t, err)

	newTitle := "New title"
	updated, err := svc.UpdateTodo(ctx, created.ID, UpdateTodoRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "old desc", updated.Deskripsi, "omitted field must be untouched")
}

func TestUpdateTodoNotFound(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepo())

	title := "whatever"
	_, err := svc.UpdateTodo(context.Background(), 99, UpdateTodoRequest{Title: &title})
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestDeleteTodo(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(ctx, created.ID))

	_, err = svc.GetTodoByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	err = svc.DeleteTodo(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}
