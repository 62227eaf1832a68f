package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/km-arc/go-cleanarch/domain"
)

// userDocument is the on-disk representation of a user. Kept separate
// from domain.User so the domain entity stays free of storage tags.
type userDocument struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Active    bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func toDocument(user *domain.User) userDocument {
	doc := userDocument{
		ID:        user.ID,
		Email:     user.Email.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
	if !user.UpdatedAt.IsZero() {
		updated := user.UpdatedAt
		doc.UpdatedAt = &updated
	}
	return doc
}

func (d userDocument) toUser() (*domain.User, error) {
	email, err := domain.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:        d.ID,
		Email:     email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
	if d.UpdatedAt != nil {
		user.UpdatedAt = *d.UpdatedAt
	}
	return user, nil
}

// FileUserRepository stores each user as a JSON file named <id>.json
// under a directory, with an email_index.json mapping emails to IDs
// for uniqueness checks and email lookup.
type FileUserRepository struct {
	mu    sync.Mutex
	dir   string
	index map[string]string // email -> id
}

const indexFile = "email_index.json"

// NewFileUserRepository creates the storage directory if needed and
// loads the email index, rebuilding it from user files when missing
// or corrupted.
func NewFileUserRepository(dir string) (*FileUserRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory %s: %w", dir, err)
	}
	r := &FileUserRepository{dir: dir}
	if err := r.loadIndex(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileUserRepository) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(r.dir, indexFile))
	if errors.Is(err, fs.ErrNotExist) {
		return r.rebuildIndex()
	}
	if err != nil {
		return fmt.Errorf("storage: read email index: %w", err)
	}
	index := make(map[string]string)
	if err := json.Unmarshal(data, &index); err != nil {
		return r.rebuildIndex()
	}
	r.index = index
	return nil
}

// rebuildIndex scans every user file and rewrites the index. Corrupted
// user files are skipped.
func (r *FileUserRepository) rebuildIndex() error {
	index := make(map[string]string)
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("storage: scan directory %s: %w", r.dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFile || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			continue
		}
		var doc userDocument
		if err := json.Unmarshal(data, &doc); err != nil || doc.ID == "" {
			continue
		}
		index[doc.Email] = doc.ID
	}
	r.index = index
	return r.saveIndex()
}

func (r *FileUserRepository) saveIndex() error {
	data, err := json.MarshalIndent(r.index, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode email index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, indexFile), data, 0o644); err != nil {
		return fmt.Errorf("storage: save email index: %w", err)
	}
	return nil
}

func (r *FileUserRepository) userPath(id string) string {
	return filepath.Join(r.dir, id+".json")
}

func (r *FileUserRepository) writeUser(user *domain.User) error {
	data, err := json.MarshalIndent(toDocument(user), "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode user %s: %w", user.ID, err)
	}
	if err := os.WriteFile(r.userPath(user.ID), data, 0o644); err != nil {
		return fmt.Errorf("storage: write user %s: %w", user.ID, err)
	}
	return nil
}

func (r *FileUserRepository) readUser(id string) (*domain.User, error) {
	data, err := os.ReadFile(r.userPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.UserNotFoundError{Identifier: id, IdentifierType: "id"}
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read user %s: %w", id, err)
	}
	var doc userDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("storage: decode user %s: %w", id, err)
	}
	return doc.toUser()
}

func (r *FileUserRepository) Save(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.index[user.Email.String()]; taken {
		return &domain.UserAlreadyExistsError{Email: user.Email.String()}
	}
	if err := r.writeUser(user); err != nil {
		return err
	}
	r.index[user.Email.String()] = user.ID
	return r.saveIndex()
}

func (r *FileUserRepository) ByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readUser(id)
}

func (r *FileUserRepository) ByEmail(_ context.Context, email domain.Email) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.index[email.String()]
	if !ok {
		return nil, &domain.UserNotFoundError{Identifier: email.String(), IdentifierType: "email"}
	}
	return r.readUser(id)
}

func (r *FileUserRepository) All(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("storage: scan directory %s: %w", r.dir, err)
	}
	var users []*domain.User
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFile || !strings.HasSuffix(name, ".json") {
			continue
		}
		user, err := r.readUser(strings.TrimSuffix(name, ".json"))
		if err != nil {
			// Skip corrupted files instead of failing the listing.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *FileUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.readUser(user.ID)
	if err != nil {
		return err
	}
	if err := r.writeUser(user); err != nil {
		return err
	}
	if existing.Email.String() != user.Email.String() {
		delete(r.index, existing.Email.String())
	}
	r.index[user.Email.String()] = user.ID
	return r.saveIndex()
}

func (r *FileUserRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.readUser(id)
	var notFound *domain.UserNotFoundError
	if errors.As(err, &notFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := os.Remove(r.userPath(id)); err != nil {
		return false, fmt.Errorf("storage: delete user %s: %w", id, err)
	}
	delete(r.index, user.Email.String())
	return true, r.saveIndex()
}

func (r *FileUserRepository) ExistsWithEmail(_ context.Context, email domain.Email) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.index[email.String()]
	return ok, nil
}
