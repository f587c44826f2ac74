package mockdata

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/models"
)

var (
	// ErrUnknownUser indicates the username does not exist in the directory.
	ErrUnknownUser = errors.New("unknown user")
	// ErrUsernameTaken indicates the username already exists in the directory.
	ErrUsernameTaken = errors.New("username taken")
)

// Source is the asynchronous data capability consumed by the state stores.
// The shipped implementation serves fixed seed data behind a simulated
// network delay; a real backend slots in without changing store logic.
type Source interface {
	Authenticate(ctx context.Context, username string) (models.User, error)
	CreateAccount(ctx context.Context, username, email, passwordHash string) (models.User, error)
	FetchCatalog(ctx context.Context) ([]models.Video, error)
}

// account is a directory entry for a registered user. The password hash is
// kept for a future real backend; nothing in this system verifies it.
type account struct {
	user         models.User
	email        string
	passwordHash string
}

// Directory is a Source backed by the seed catalog plus accounts registered
// during the current process lifetime.
type Directory struct {
	delay time.Duration

	mu         sync.RWMutex
	registered map[string]account // keyed by lowercase username
}

// NewDirectory constructs a Directory that sleeps for delay before answering,
// mimicking network latency. A zero delay answers immediately.
func NewDirectory(delay time.Duration) *Directory {
	return &Directory{
		delay:      delay,
		registered: make(map[string]account),
	}
}

// Authenticate looks up a user by case-insensitive username. Credentials are
// never checked here; that is the contract of the mock directory.
func (d *Directory) Authenticate(ctx context.Context, username string) (models.User, error) {
	if err := d.simulateLatency(ctx); err != nil {
		return models.User{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(username))

	for _, user := range seedUsers {
		if strings.ToLower(user.Username) == needle {
			return user, nil
		}
	}

	d.mu.RLock()
	entry, ok := d.registered[needle]
	d.mu.RUnlock()
	if ok {
		return entry.user, nil
	}

	return models.User{}, ErrUnknownUser
}

// CreateAccount registers a new user. It fails when the username collides
// case-insensitively with the seed directory or an earlier registration.
func (d *Directory) CreateAccount(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	if err := d.simulateLatency(ctx); err != nil {
		return models.User{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(username))

	for _, user := range seedUsers {
		if strings.ToLower(user.Username) == needle {
			return models.User{}, ErrUsernameTaken
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.registered[needle]; exists {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Avatar:   generatedAvatarURL(username),
		Bio:      fmt.Sprintf("Hi, I'm %s!", username),
	}

	d.registered[needle] = account{
		user:         user,
		email:        email,
		passwordHash: passwordHash,
	}

	return user, nil
}

// Activities returns the notification feed for the current user. Entries are
// canned; nothing in this system generates new ones.
func (d *Directory) Activities() []models.Activity {
	return Activities()
}

// UserByID resolves a profile owner by id, checking the seed directory first
// and then accounts registered during this process lifetime.
func (d *Directory) UserByID(id string) (models.User, bool) {
	if user, ok := UserByID(id); ok {
		return user, true
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, entry := range d.registered {
		if entry.user.ID == id {
			return entry.user, true
		}
	}
	return models.User{}, false
}

// FetchCatalog returns the seed video catalog.
func (d *Directory) FetchCatalog(ctx context.Context) ([]models.Video, error) {
	if err := d.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return Videos(), nil
}

func (d *Directory) simulateLatency(ctx context.Context) error {
	if d.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func generatedAvatarURL(username string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(username) + "&background=random"
}
