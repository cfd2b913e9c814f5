// Package mocks contains testify mocks for the model interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agrocycle/agrocycle/internal/model"
)

type UserStore struct {
	mock.Mock
}

func (m *UserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

type FarmerStore struct {
	mock.Mock
}

func (m *FarmerStore) List(ctx context.Context) ([]model.FarmerProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.FarmerProfile), args.Error(1)
}

func (m *FarmerStore) Create(ctx context.Context, farmer model.FarmerProfile) (model.FarmerProfile, error) {
	args := m.Called(ctx, farmer)
	return args.Get(0).(model.FarmerProfile), args.Error(1)
}

type ListingStore struct {
	mock.Mock
}

func (m *ListingStore) List(ctx context.Context) ([]model.BiomassListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.BiomassListing), args.Error(1)
}

func (m *ListingStore) Create(ctx context.Context, listing model.BiomassListing) (model.BiomassListing, error) {
	args := m.Called(ctx, listing)
	return args.Get(0).(model.BiomassListing), args.Error(1)
}

func (m *ListingStore) MarkSold(ctx context.Context, id string) (model.BiomassListing, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.BiomassListing), args.Error(1)
}

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Get(ctx context.Context) (model.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) Put(ctx context.Context, session model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionStore) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateSessionToken(userID string, role model.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) ParseSessionToken(token string) (string, model.Role, error) {
	args := m.Called(token)
	return args.String(0), args.Get(1).(model.Role), args.Error(2)
}
