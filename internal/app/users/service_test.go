package users_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mindxandria/library-backend/internal/app/users"
	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
	"github.com/mindxandria/library-backend/internal/domain/model"
)

type userRepoStub struct {
	byID map[string]model.User
}

func (u *userRepoStub) CreateUser(_ context.Context, m model.User) (string, error) {
	u.byID[m.ID] = m
	return m.ID, nil
}

func (u *userRepoStub) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	for _, v := range u.byID {
		if v.Email == email {
			return v, nil
		}
	}
	return model.User{}, domainErrors.ErrNotFound
}

func (u *userRepoStub) GetUserByID(_ context.Context, id string) (model.User, error) {
	v, ok := u.byID[id]
	if !ok {
		return model.User{}, domainErrors.ErrNotFound
	}
	return v, nil
}

func (u *userRepoStub) DeleteUser(_ context.Context, id string) error {
	if _, ok := u.byID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(u.byID, id)
	return nil
}

func newSvc() (users.Service, *userRepoStub) {
	stub := &userRepoStub{byID: make(map[string]model.User)}
	return users.New(stub), stub
}

func seed(stub *userRepoStub, email string) model.User {
	u := model.User{
		Audit: model.Audit{ID: uuid.NewString()},
		Name:  "reader",
		Email: email,
	}
	stub.byID[u.ID] = u
	return u
}

func TestProfileByEmail(t *testing.T) {
	svc, stub := newSvc()
	u := seed(stub, "reader@example.com")

	p, err := svc.ProfileByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, p.ID)
	require.Equal(t, "reader@example.com", p.Email)

	_, err = svc.ProfileByEmail(context.Background(), "nobody@example.com")
	require.True(t, domainErrors.IsNotFound(err))
}

func TestDeleteByEmail(t *testing.T) {
	svc, stub := newSvc()
	u := seed(stub, "reader@example.com")

	require.NoError(t, svc.DeleteByEmail(context.Background(), "reader@example.com"))

	_, err := stub.GetUserByID(context.Background(), u.ID)
	require.True(t, domainErrors.IsNotFound(err))

	err = svc.DeleteByEmail(context.Background(), "reader@example.com")
	require.True(t, domainErrors.IsNotFound(err))
}
