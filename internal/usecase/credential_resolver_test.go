package usecase

import (
	"context"
	"errors"
	"testing"

	"eventpay/internal/domain/entities"
	mock_interfaces "eventpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCredentialResolver_ByMerchant(t *testing.T) {
	t.Run("non-positive merchant id", func(t *testing.T) {
		r := NewCredentialResolver(nil)
		_, err := r.ByMerchant(context.Background(), 0)
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
		}
	})

	t.Run("zero rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		r := NewCredentialResolver(store)

		store.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return(nil, nil)
		_, err := r.ByMerchant(context.Background(), 7)
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
		}
	})

	t.Run("multiple rows are treated like zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		r := NewCredentialResolver(store)

		store.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return([]entities.Credentials{
			{Login: "a", TransactionKey: "k1"},
			{Login: "b", TransactionKey: "k2"},
		}, nil)
		_, err := r.ByMerchant(context.Background(), 7)
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
		}
	})

	t.Run("blank login is not usable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		r := NewCredentialResolver(store)

		store.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return([]entities.Credentials{
			{Login: "", TransactionKey: "k1"},
		}, nil)
		_, err := r.ByMerchant(context.Background(), 7)
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
		}
	})

	t.Run("exactly one row resolves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		r := NewCredentialResolver(store)

		store.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return([]entities.Credentials{
			{Login: "login-7", TransactionKey: "key-7", Sandbox: true},
		}, nil)
		creds, err := r.ByMerchant(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.Login != "login-7" || creds.TransactionKey != "key-7" || !creds.Sandbox {
			t.Fatalf("unexpected credentials: %+v", creds)
		}
	})

	t.Run("store error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		r := NewCredentialResolver(store)

		boom := errors.New("connection reset")
		store.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return(nil, boom)
		_, err := r.ByMerchant(context.Background(), 7)
		if !errors.Is(err, boom) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestCredentialResolver_ByRegistrant(t *testing.T) {
	t.Run("resolves through the registrant join", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		r := NewCredentialResolver(store)

		store.EXPECT().ListByRegistrant(gomock.Any(), int64(42)).Return([]entities.Credentials{
			{Login: "login-7", TransactionKey: "key-7"},
		}, nil)
		creds, err := r.ByRegistrant(context.Background(), 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.Login != "login-7" {
			t.Fatalf("unexpected credentials: %+v", creds)
		}
	})

	t.Run("ambiguous rows fail closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		r := NewCredentialResolver(store)

		store.EXPECT().ListByRegistrant(gomock.Any(), int64(42)).Return([]entities.Credentials{
			{Login: "a"}, {Login: "b"},
		}, nil)
		_, err := r.ByRegistrant(context.Background(), 42)
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
		}
	})
}
