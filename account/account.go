// Package account validates registrations and manages the single stored
// user session.
package account

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"eventhub-cli/model"
)

// ErrNoSession is returned by a SessionStore that holds no user record.
var ErrNoSession = errors.New("no stored session")

// SessionStore keeps the one "logged in" user. Set overwrites wholesale.
type SessionStore interface {
	Get(ctx context.Context) (model.User, error)
	Set(ctx context.Context, user model.User) error
	Clear(ctx context.Context) error
}

const (
	FieldFullName     = "fullName"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldAgreeToTerms = "agreeToTerms"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s+\-()]{10,}$`)
)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Form is the registration input.
type Form struct {
	FullName     string
	Email        string
	Phone        string
	Company      string
	AgreeToTerms bool
}

// FieldErrors maps a form field to the message shown under it.
type FieldErrors map[string]string

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clear drops the message of a field the user just edited.
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field, msg := range e {
		fields = append(fields, field+": "+msg)
	}
	sort.Strings(fields)
	return "invalid form: " + strings.Join(fields, "; ")
}

func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.FullName) == "" {
		errs[FieldFullName] = "Введите ФИО"
	}

	if strings.TrimSpace(f.Email) == "" {
		errs[FieldEmail] = "Введите email"
	} else if !ValidEmail(f.Email) {
		errs[FieldEmail] = "Некорректный email"
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs[FieldPhone] = "Введите телефон"
	} else if !ValidPhone(f.Phone) {
		errs[FieldPhone] = "Некорректный номер телефона"
	}

	if !f.AgreeToTerms {
		errs[FieldAgreeToTerms] = "Необходимо согласие на обработку данных"
	}
	return errs
}

// Register validates form and, when it is clean, overwrites the stored
// session. Field errors are returned as FieldErrors and nothing is written.
func Register(ctx context.Context, store SessionStore, form Form, now time.Time) (model.User, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return model.User{}, errs
	}
	user := model.User{
		FullName:     form.FullName,
		Email:        form.Email,
		Phone:        form.Phone,
		Company:      form.Company,
		RegisteredAt: now.UTC(),
	}
	if err := store.Set(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("save session: %w", err)
	}
	log.Printf("[account] action=register email=%s", user.Email)
	return user, nil
}

// Current returns the stored user. ok is false when nobody is registered.
func Current(ctx context.Context, store SessionStore) (model.User, bool, error) {
	user, err := store.Get(ctx)
	if errors.Is(err, ErrNoSession) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("load session: %w", err)
	}
	return user, true, nil
}

func Logout(ctx context.Context, store SessionStore) error {
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	log.Printf("[account] action=logout")
	return nil
}
