// Package users is the mock account directory: a JSON list of users kept
// under the "users" key of the persistent backend.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/portalauth/internal/common"
	"github.com/dmitrijs2005/portalauth/internal/kv"
	"github.com/dmitrijs2005/portalauth/internal/logging"
	"github.com/dmitrijs2005/portalauth/internal/models"
	"github.com/google/uuid"
)

// ErrEmailTaken is returned by Register when the email is already in use.
// Emails are compared exactly; no case folding is applied.
var ErrEmailTaken = fmt.Errorf("%w: an account with this email already exists", common.ErrValidation)

// Candidate holds the sign-up fields of a new account.
type Candidate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

type Directory struct {
	store kv.Backend
	log   logging.Logger
	now   func() time.Time
	newID func() string
}

func NewDirectory(store kv.Backend, log logging.Logger) *Directory {
	if log == nil {
		log = logging.Discard()
	}
	return &Directory{
		store: store,
		log:   log.With("component", "users"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func decodeUsers(data []byte) ([]models.User, error) {
	if data == nil {
		return nil, nil
	}
	var list []models.User
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: users record: %v", common.ErrStorage, err)
	}
	return list, nil
}

// Register appends a new user built from c and returns it. The stored list
// is left unchanged when the email is taken or the current list is corrupt.
func (d *Directory) Register(ctx context.Context, c Candidate) (*models.User, error) {
	user := models.User{
		ID:        d.newID(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Password:  c.Password,
		CreatedAt: d.now().UTC(),
	}

	add := func(old []byte) ([]byte, error) {
		list, err := decodeUsers(old)
		if err != nil {
			return nil, err
		}
		for _, u := range list {
			if u.Email == c.Email {
				return nil, ErrEmailTaken
			}
		}
		return json.Marshal(append(list, user))
	}

	var err error
	if up, ok := d.store.(kv.Updater); ok {
		err = up.Update(ctx, common.UsersKey, add)
	} else {
		err = d.getThenSet(ctx, add)
	}
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		if !errors.Is(err, common.ErrStorage) {
			err = fmt.Errorf("%w: %v", common.ErrStorage, err)
		}
		d.log.Error(ctx, "user registration failed", "email", c.Email, "err", err)
		return nil, err
	}

	d.log.Info(ctx, "user registered", "id", user.ID, "email", user.Email)
	return &user, nil
}

func (d *Directory) getThenSet(ctx context.Context, fn kv.UpdateFunc) error {
	old, err := d.store.Get(ctx, common.UsersKey)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	next, err := fn(old)
	if err != nil {
		return err
	}
	if err := d.store.Set(ctx, common.UsersKey, next); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

// List returns all stored users. A corrupt record reads as an empty list.
func (d *Directory) List(ctx context.Context) ([]models.User, error) {
	data, err := d.store.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	list, err := decodeUsers(data)
	if err != nil {
		d.log.Warn(ctx, "users record unreadable, treating as empty", "err", err)
		return nil, nil
	}
	return list, nil
}

// Authenticate returns the first user whose email and password both match,
// or (nil, nil) when there is none.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	list, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Email == email && list[i].Password == password {
			return &list[i], nil
		}
	}
	return nil, nil
}
