package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub-cli/model"
)

type memoryStore struct {
	user   *model.User
	writes int
	err    error
}

func (m *memoryStore) Get(context.Context) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	if m.user == nil {
		return model.User{}, ErrNoSession
	}
	return *m.user, nil
}

func (m *memoryStore) Set(_ context.Context, user model.User) error {
	if m.err != nil {
		return m.err
	}
	m.writes++
	m.user = &user
	return nil
}

func (m *memoryStore) Clear(context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.user = nil
	return nil
}

func validForm() Form {
	return Form{
		FullName:     "Иванов Иван Иванович",
		Email:        "ivan@example.com",
		Phone:        "+7 (999) 123-45-67",
		AgreeToTerms: true,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.Empty(t, validForm().Validate())
}

func TestValidate_EmptyForm(t *testing.T) {
	errs := Form{}.Validate()
	assert.Equal(t, "Введите ФИО", errs[FieldFullName])
	assert.Equal(t, "Введите email", errs[FieldEmail])
	assert.Equal(t, "Введите телефон", errs[FieldPhone])
	assert.Equal(t, "Необходимо согласие на обработку данных", errs[FieldAgreeToTerms])
}

func TestValidate_Formats(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"
	form.Phone = "12-34"

	errs := form.Validate()
	assert.Equal(t, "Некорректный email", errs[FieldEmail])
	assert.Equal(t, "Некорректный номер телефона", errs[FieldPhone])
	assert.False(t, errs.Has(FieldFullName))
}

func TestPatterns(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("a b@c.d"))
	assert.False(t, ValidEmail("a@b"))
	assert.True(t, ValidPhone("89991234567"))
	assert.True(t, ValidPhone("+7 999 123 45 67"))
	assert.False(t, ValidPhone("+7 999 abc 45 67"))
	assert.False(t, ValidPhone("123456789"))
}

func TestFieldErrors_Clear(t *testing.T) {
	errs := Form{}.Validate()
	errs.Clear(FieldEmail)
	assert.False(t, errs.Has(FieldEmail))
	assert.Len(t, errs, 3)
	assert.Contains(t, errs.Error(), "fullName")
}

func TestRegister_InvalidEmailWritesNothing(t *testing.T) {
	store := &memoryStore{}
	form := validForm()
	form.Email = "not-an-email"

	_, err := Register(context.Background(), store, form, time.Now())
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Некорректный email", fieldErrs[FieldEmail])
	assert.Zero(t, store.writes)
	assert.Nil(t, store.user)
}

func TestRegister_OverwritesRecord(t *testing.T) {
	store := &memoryStore{}
	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	_, err := Register(context.Background(), store, validForm(), now)
	require.NoError(t, err)

	second := validForm()
	second.FullName = "Петрова Анна"
	second.Company = "ООО Компания"
	user, err := Register(context.Background(), store, second, now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, store.writes)
	assert.Equal(t, user, *store.user)
	assert.Equal(t, "Петрова Анна", store.user.FullName)
	assert.Equal(t, now.Add(time.Hour), store.user.RegisteredAt)
}

func TestLogout_ThenCurrentReportsNoUser(t *testing.T) {
	store := &memoryStore{}
	_, err := Register(context.Background(), store, validForm(), time.Now())
	require.NoError(t, err)

	_, ok, err := Current(context.Background(), store)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, Logout(context.Background(), store))
	_, ok, err = Current(context.Background(), store)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	store := &memoryStore{err: boom}

	_, err := Register(context.Background(), store, validForm(), time.Now())
	assert.ErrorIs(t, err, boom)
	_, _, err = Current(context.Background(), store)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, Logout(context.Background(), store), boom)
}
