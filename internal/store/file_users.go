package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
)

// usersDocument is the on-disk layout of the users file.
type usersDocument struct {
	Users []models.User `json:"users"`
}

// fileUserRepository keeps all users in memory and rewrites the whole JSON
// document on every change.
type fileUserRepository struct {
	path   string
	logger *logger.Logger

	mu  sync.RWMutex
	doc usersDocument
}

// NewFileUserRepository loads the users file at path. A missing file is
// created with an empty users array.
func NewFileUserRepository(path string, log *logger.Logger) (UserRepository, error) {
	log.Debug().Str("path", path).Msg("creating file user repository")

	r := &fileUserRepository{
		path:   path,
		logger: log,
		doc:    usersDocument{Users: []models.User{}},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *fileUserRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return r.persist()
		}
		return fmt.Errorf("read users file: %w", err)
	}

	var doc usersDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsersFile, err)
	}
	if doc.Users == nil {
		doc.Users = []models.User{}
	}

	r.doc = doc
	return nil
}

// persist writes the document to a temp file and renames it over the target.
func (r *fileUserRepository) persist() error {
	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create users dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp users file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write users file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close users file: %w", err)
	}
	if err = os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace users file: %w", err)
	}

	return nil
}

func (r *fileUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.doc.Users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *fileUserRepository) FindUserByGUID(ctx context.Context, guid string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexByGUID(guid); i >= 0 {
		return r.doc.Users[i], nil
	}
	return models.User{}, ErrUserNotFound
}

func (r *fileUserRepository) UpdateUser(ctx context.Context, guid string, mutate func(*models.User) error) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByGUID(guid)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	prev := r.doc.Users[i]
	updated := prev
	if err := mutate(&updated); err != nil {
		return models.User{}, err
	}

	if !strings.EqualFold(updated.Email, prev.Email) && r.emailTaken(updated.Email, i) {
		return models.User{}, ErrEmailAlreadyTaken
	}

	r.doc.Users[i] = updated
	if err := r.persist(); err != nil {
		r.doc.Users[i] = prev
		log.Err(err).Str("func", "*fileUserRepository.UpdateUser").Msg("error persisting users file")
		return models.User{}, err
	}

	return updated, nil
}

func (r *fileUserRepository) ImportUsers(ctx context.Context, users ...models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := make([]models.User, len(r.doc.Users))
	copy(prev, r.doc.Users)

	for _, u := range users {
		if u.ID == "" {
			r.doc.Users = prev
			return errors.New("user without _id")
		}

		i := r.indexByID(u.ID)
		if r.emailTaken(u.Email, i) {
			r.doc.Users = prev
			return ErrEmailAlreadyTaken
		}

		if i >= 0 {
			r.doc.Users[i] = u
		} else {
			r.doc.Users = append(r.doc.Users, u)
		}
	}

	if err := r.persist(); err != nil {
		r.doc.Users = prev
		return err
	}
	return nil
}

func (r *fileUserRepository) indexByGUID(guid string) int {
	for i, u := range r.doc.Users {
		if u.GUID == guid {
			return i
		}
	}
	return -1
}

func (r *fileUserRepository) indexByID(id string) int {
	for i, u := range r.doc.Users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// emailTaken reports whether another user than the one at skip uses email.
func (r *fileUserRepository) emailTaken(email string, skip int) bool {
	if email == "" {
		return false
	}
	for i, u := range r.doc.Users {
		if i != skip && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
