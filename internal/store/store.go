package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shush-app/shush/internal/models"
	"github.com/shush-app/shush/internal/storage"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
)

const (
	databaseKey = "shush_app_db"
	sessionKey  = "shush_current_user_id"
)

// CycleLogStore owns every account profile and the single session pointer.
// The whole database is serialized to one storage key and rewritten on every
// mutation; fine at this data scale, a documented limit beyond it.
type CycleLogStore struct {
	mu      sync.Mutex
	backend storage.KeyValue
}

func NewCycleLogStore(backend storage.KeyValue) *CycleLogStore {
	return &CycleLogStore{backend: backend}
}

// CreateAccount registers a username with default cycle settings and an empty
// log, then makes it the current session. Usernames are case-sensitive.
func (store *CycleLogStore) CreateAccount(username string) (models.UserProfile, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	database, err := store.loadDatabase()
	if err != nil {
		return models.UserProfile{}, err
	}

	for _, user := range database.Users {
		if user.Username == username {
			return models.UserProfile{}, ErrDuplicateUsername
		}
	}

	user := models.UserProfile{
		ID:           uuid.NewString(),
		Username:     username,
		CycleLength:  models.DefaultCycleLength,
		PeriodLength: models.DefaultPeriodLength,
		Logs:         []string{},
	}
	database.Users = append(database.Users, user)

	if err := store.saveDatabase(database); err != nil {
		return models.UserProfile{}, err
	}
	if err := store.backend.Set(sessionKey, user.ID); err != nil {
		return models.UserProfile{}, fmt.Errorf("persist session: %w", err)
	}
	return user, nil
}

// Authenticate looks a username up and makes the match the current session.
// There is no credential check; identity is username-only by design.
func (store *CycleLogStore) Authenticate(username string) (models.UserProfile, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	database, err := store.loadDatabase()
	if err != nil {
		return models.UserProfile{}, err
	}

	for _, user := range database.Users {
		if user.Username == username {
			if err := store.backend.Set(sessionKey, user.ID); err != nil {
				return models.UserProfile{}, fmt.Errorf("persist session: %w", err)
			}
			return user, nil
		}
	}
	return models.UserProfile{}, ErrUserNotFound
}

// EndSession clears the session pointer. Profiles are untouched.
func (store *CycleLogStore) EndSession() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if err := store.backend.Set(sessionKey, ""); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser resolves the session pointer to a profile, if any.
func (store *CycleLogStore) CurrentUser() (models.UserProfile, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	userID, ok, err := store.backend.Get(sessionKey)
	if err != nil {
		return models.UserProfile{}, false, fmt.Errorf("read session: %w", err)
	}
	if !ok || userID == "" {
		return models.UserProfile{}, false, nil
	}
	return store.findByIDLocked(userID)
}

// FindByID returns the profile for an account id, if it exists.
func (store *CycleLogStore) FindByID(userID string) (models.UserProfile, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.findByIDLocked(userID)
}

// UpdateSettings overwrites both length fields. A missing user is a no-op
// reported through applied=false; ranges are not validated here.
func (store *CycleLogStore) UpdateSettings(userID string, cycleLength int, periodLength int) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	database, err := store.loadDatabase()
	if err != nil {
		return false, err
	}

	for index := range database.Users {
		if database.Users[index].ID != userID {
			continue
		}
		database.Users[index].CycleLength = cycleLength
		database.Users[index].PeriodLength = periodLength
		if err := store.saveDatabase(database); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// ToggleLoggedDate removes the date key if logged, otherwise inserts it and
// re-sorts ascending. Toggling the same key twice restores the original log.
// A missing user yields an empty log and applied=false.
func (store *CycleLogStore) ToggleLoggedDate(userID string, dateKey string) ([]string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	database, err := store.loadDatabase()
	if err != nil {
		return nil, false, err
	}

	for index := range database.Users {
		if database.Users[index].ID != userID {
			continue
		}

		logs := database.Users[index].Logs
		position := sort.SearchStrings(logs, dateKey)
		if position < len(logs) && logs[position] == dateKey {
			logs = append(logs[:position], logs[position+1:]...)
		} else {
			logs = append(logs, dateKey)
			sort.Strings(logs)
		}
		database.Users[index].Logs = logs

		if err := store.saveDatabase(database); err != nil {
			return nil, false, err
		}
		return append([]string(nil), logs...), true, nil
	}
	return []string{}, false, nil
}

func (store *CycleLogStore) findByIDLocked(userID string) (models.UserProfile, bool, error) {
	database, err := store.loadDatabase()
	if err != nil {
		return models.UserProfile{}, false, err
	}
	for _, user := range database.Users {
		if user.ID == userID {
			return user, true, nil
		}
	}
	return models.UserProfile{}, false, nil
}

// loadDatabase reads the snapshot, creating an empty one on first access.
func (store *CycleLogStore) loadDatabase() (models.Database, error) {
	raw, ok, err := store.backend.Get(databaseKey)
	if err != nil {
		return models.Database{}, fmt.Errorf("read database: %w", err)
	}
	if !ok {
		database := models.Database{Users: []models.UserProfile{}}
		if err := store.saveDatabase(database); err != nil {
			return models.Database{}, err
		}
		return database, nil
	}

	var database models.Database
	if err := json.Unmarshal([]byte(raw), &database); err != nil {
		return models.Database{}, fmt.Errorf("decode database: %w", err)
	}
	if database.Users == nil {
		database.Users = []models.UserProfile{}
	}
	return database, nil
}

func (store *CycleLogStore) saveDatabase(database models.Database) error {
	raw, err := json.Marshal(database)
	if err != nil {
		return fmt.Errorf("encode database: %w", err)
	}
	if err := store.backend.Set(databaseKey, string(raw)); err != nil {
		return fmt.Errorf("write database: %w", err)
	}
	return nil
}
