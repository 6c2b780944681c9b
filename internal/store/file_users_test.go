package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedUsers = `{
  "users": [
    {
      "_id": "5f1d7f3e",
      "guid": "guid-alice",
      "isActive": true,
      "age": 31,
      "name": {"first": "Alice", "last": "Moss"},
      "email": "alice@example.com",
      "password": "secret"
    },
    {
      "_id": "5f1d7f3f",
      "guid": "guid-bob",
      "name": {"first": "Bob", "last": "Reed"},
      "email": "bob@example.com",
      "password": "hunter2"
    }
  ]
}`

func newTestFileRepo(t *testing.T, content string) (UserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	repo, err := NewFileUserRepository(path, logger.Nop())
	require.NoError(t, err)
	return repo, path
}

func readUsersFile(t *testing.T, path string) usersDocument {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc usersDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestFileUserRepository_MissingFileIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "db.json")

	_, err := NewFileUserRepository(path, logger.Nop())
	require.NoError(t, err)

	doc := readUsersFile(t, path)
	assert.Empty(t, doc.Users)
}

func TestFileUserRepository_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileUserRepository(path, logger.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUsersFile))
}

func TestFileUserRepository_FindUserByEmail(t *testing.T) {
	repo, _ := newTestFileRepo(t, seedUsers)
	ctx := context.Background()

	u, err := repo.FindUserByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "guid-alice", u.GUID)
	assert.Equal(t, "Alice", u.Name.First)

	_, err = repo.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileUserRepository_FindUserByGUID(t *testing.T) {
	repo, _ := newTestFileRepo(t, seedUsers)
	ctx := context.Background()

	u, err := repo.FindUserByGUID(ctx, "guid-bob")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)

	_, err = repo.FindUserByGUID(ctx, "guid-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileUserRepository_UpdateUser_PersistsWholeFile(t *testing.T) {
	repo, path := newTestFileRepo(t, seedUsers)
	ctx := context.Background()

	updated, err := repo.UpdateUser(ctx, "guid-alice", func(u *models.User) error {
		u.Name.First = "Alicia"
		u.Age = 32
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name.First)

	doc := readUsersFile(t, path)
	require.Len(t, doc.Users, 2)
	assert.Equal(t, "Alicia", doc.Users[0].Name.First)
	assert.Equal(t, 32, doc.Users[0].Age)
	assert.Equal(t, "Bob", doc.Users[1].Name.First)
}

func TestFileUserRepository_UpdateUser_MutateErrorAborts(t *testing.T) {
	repo, _ := newTestFileRepo(t, seedUsers)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := repo.UpdateUser(ctx, "guid-alice", func(u *models.User) error {
		u.Name.First = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	u, err := repo.FindUserByGUID(ctx, "guid-alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name.First)
}

func TestFileUserRepository_UpdateUser_EmailTaken(t *testing.T) {
	repo, _ := newTestFileRepo(t, seedUsers)

	_, err := repo.UpdateUser(context.Background(), "guid-alice", func(u *models.User) error {
		u.Email = "Bob@Example.com"
		return nil
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyTaken)
}

func TestFileUserRepository_UpdateUser_NotFound(t *testing.T) {
	repo, _ := newTestFileRepo(t, seedUsers)

	_, err := repo.UpdateUser(context.Background(), "guid-missing", func(*models.User) error { return nil })
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileUserRepository_ImportUsers(t *testing.T) {
	repo, path := newTestFileRepo(t, seedUsers)
	ctx := context.Background()

	err := repo.ImportUsers(ctx,
		models.User{ID: "5f1d7f3f", GUID: "guid-bob", Email: "bob@example.com", Name: models.UserName{First: "Robert"}},
		models.User{ID: "5f1d7f40", GUID: "guid-carol", Email: "carol@example.com"},
	)
	require.NoError(t, err)

	doc := readUsersFile(t, path)
	require.Len(t, doc.Users, 3)
	assert.Equal(t, "Robert", doc.Users[1].Name.First)
	assert.Equal(t, "guid-carol", doc.Users[2].GUID)
}

func TestFileUserRepository_ImportUsers_RejectsMissingID(t *testing.T) {
	repo, path := newTestFileRepo(t, seedUsers)

	err := repo.ImportUsers(context.Background(),
		models.User{ID: "5f1d7f40", GUID: "guid-carol"},
		models.User{GUID: "guid-dave"},
	)
	require.Error(t, err)

	doc := readUsersFile(t, path)
	assert.Len(t, doc.Users, 2)

	_, err = repo.FindUserByGUID(context.Background(), "guid-carol")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
