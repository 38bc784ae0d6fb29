package usecase

import (
	"context"
	"errors"
	"testing"

	"eventpay/internal/domain/entities"
	mock_interfaces "eventpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGatewayConfigUseCase_GetGateways(t *testing.T) {
	t.Run("non-positive merchant id is a no-op", func(t *testing.T) {
		uc := NewGatewayConfigUseCase(nil, nil)
		got, err := uc.GetGateways(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("profile decides enabled, document supplies copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		profiles.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(entities.MerchantProfile{
			MerchantID:     7,
			DefaultGateway: entities.GatewayAuthNet,
			Values: map[string]string{
				"authnet_login":           "login-7",
				"authnet_transaction_key": "key-7",
				"authnet_sandbox":         "true",
			},
		}, nil)
		docs.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return([]entities.GatewayConfig{
			{MerchantID: 7, Type: entities.GatewayAuthNet, Fields: map[string]string{"authnet_login": "stale"}},
			{MerchantID: 7, Type: entities.GatewayStripe, Fields: map[string]string{"stripe_user_id": "acct_1"}},
		}, nil)

		got, err := uc.GetGateways(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 gateway, got %d", len(got))
		}
		if got[0].Type != entities.GatewayAuthNet {
			t.Fatalf("expected authnet, got %s", got[0].Type)
		}
		if !got[0].IsDefault {
			t.Fatal("expected authnet to be default")
		}
		if got[0].Fields["authnet_login"] != "login-7" {
			t.Fatalf("expected profile value to win, got %q", got[0].Fields["authnet_login"])
		}
	})

	t.Run("missing document is synthesized for an enabled gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		profiles.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(entities.MerchantProfile{
			MerchantID: 7,
			Values:     map[string]string{"stripe_user_id": "acct_1", "stripe_secret_key": "sk_1"},
		}, nil)
		docs.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return(nil, nil)

		got, err := uc.GetGateways(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 gateway, got %d", len(got))
		}
		if got[0].Fields["stripe_secret_key"] != "sk_1" {
			t.Fatalf("expected synthesized fields from profile, got %v", got[0].Fields)
		}
		if got[0].IsDefault {
			t.Fatal("no default configured, none expected")
		}
	})

	t.Run("tombstoned document does not enable a gateway copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		profiles.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(entities.MerchantProfile{
			MerchantID: 7,
			Values:     map[string]string{"authnet_login": "login-7"},
		}, nil)
		docs.EXPECT().ListByMerchant(gomock.Any(), int64(7)).Return([]entities.GatewayConfig{
			{MerchantID: 7, Type: entities.GatewayAuthNet, Deleted: true, Fields: map[string]string{"authnet_login": "old"}},
		}, nil)

		got, err := uc.GetGateways(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Profile still says configured, so the entry is synthesized fresh.
		if len(got) != 1 {
			t.Fatalf("expected 1 gateway, got %d", len(got))
		}
		if got[0].Deleted {
			t.Fatal("synthesized entry must not carry the tombstone")
		}
	})
}

func TestGatewayConfigUseCase_UpdateGateway(t *testing.T) {
	t.Run("unknown gateway type", func(t *testing.T) {
		uc := NewGatewayConfigUseCase(nil, nil)
		_, err := uc.UpdateGateway(context.Background(), 7, "square", map[string]string{"x": "y"}, false)
		if !errors.Is(err, ErrUnknownGatewayType) {
			t.Fatalf("expected ErrUnknownGatewayType, got %v", err)
		}
	})

	t.Run("unknown field keys are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		profiles.EXPECT().UpdateGatewayFields(gomock.Any(), int64(7), map[string]string{"stripe_user_id": "acct_1"}).Return(nil)
		docs.EXPECT().Get(gomock.Any(), int64(7), entities.GatewayStripe).Return(entities.GatewayConfig{}, nil)
		docs.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
				if _, ok := cfg.Fields["bogus"]; ok {
					t.Fatal("unknown field key must not reach the document store")
				}
				return cfg, nil
			})

		_, err := uc.UpdateGateway(context.Background(), 7, entities.GatewayStripe,
			map[string]string{"stripe_user_id": "acct_1", "bogus": "value"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("setting default clears every other default first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		profiles.EXPECT().UpdateGatewayFields(gomock.Any(), int64(7), gomock.Any()).Return(nil)
		docs.EXPECT().Get(gomock.Any(), int64(7), entities.GatewayAuthNet).Return(entities.GatewayConfig{}, nil)

		gomock.InOrder(
			docs.EXPECT().ClearDefaultFlags(gomock.Any(), int64(7)).Return(nil),
			profiles.EXPECT().ClearDefaultGateway(gomock.Any(), int64(7)).Return(nil),
			profiles.EXPECT().SetDefaultGateway(gomock.Any(), int64(7), entities.GatewayAuthNet).Return(nil),
		)
		docs.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
				if !cfg.IsDefault {
					t.Fatal("expected is_default on the upserted document")
				}
				return cfg, nil
			})

		_, err := uc.UpdateGateway(context.Background(), 7, entities.GatewayAuthNet,
			map[string]string{"authnet_login": "login-7", "authnet_transaction_key": "key-7"}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-saving the same fields converges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		fields := map[string]string{"authnet_login": "login-7"}
		existing := entities.GatewayConfig{
			MerchantID: 7,
			Type:       entities.GatewayAuthNet,
			Fields:     map[string]string{"authnet_login": "login-7", "authnet_transaction_key": "key-7"},
		}

		profiles.EXPECT().UpdateGatewayFields(gomock.Any(), int64(7), fields).Return(nil).Times(2)
		docs.EXPECT().Get(gomock.Any(), int64(7), entities.GatewayAuthNet).Return(existing, nil).Times(2)
		docs.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
				if cfg.Fields["authnet_transaction_key"] != "key-7" {
					t.Fatalf("existing field lost on merge: %v", cfg.Fields)
				}
				return cfg, nil
			}).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.UpdateGateway(context.Background(), 7, entities.GatewayAuthNet, fields, false); err != nil {
				t.Fatalf("unexpected error on write %d: %v", i, err)
			}
		}
	})

	t.Run("update revives a tombstoned document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		profiles.EXPECT().UpdateGatewayFields(gomock.Any(), int64(7), gomock.Any()).Return(nil)
		docs.EXPECT().Get(gomock.Any(), int64(7), entities.GatewayStripe).Return(entities.GatewayConfig{
			MerchantID: 7, Type: entities.GatewayStripe, Deleted: true, IsDefault: true,
		}, nil)
		docs.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
				if cfg.Deleted {
					t.Fatal("update must clear the tombstone")
				}
				if cfg.IsDefault {
					t.Fatal("a tombstoned default flag must not survive revival")
				}
				return cfg, nil
			})

		_, err := uc.UpdateGateway(context.Background(), 7, entities.GatewayStripe,
			map[string]string{"stripe_user_id": "acct_1"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGatewayConfigUseCase_DeleteGateway(t *testing.T) {
	t.Run("unknown gateway type", func(t *testing.T) {
		uc := NewGatewayConfigUseCase(nil, nil)
		if err := uc.DeleteGateway(context.Background(), 7, "square"); !errors.Is(err, ErrUnknownGatewayType) {
			t.Fatalf("expected ErrUnknownGatewayType, got %v", err)
		}
	})

	t.Run("deleting the default clears the default column and scrubs fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		docs.EXPECT().Get(gomock.Any(), int64(7), entities.GatewayAuthNet).Return(entities.GatewayConfig{
			MerchantID: 7, Type: entities.GatewayAuthNet, IsDefault: true,
		}, nil)
		profiles.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(entities.MerchantProfile{MerchantID: 7}, nil)
		docs.EXPECT().SoftDelete(gomock.Any(), int64(7), entities.GatewayAuthNet).Return(nil)
		profiles.EXPECT().ClearDefaultGateway(gomock.Any(), int64(7)).Return(nil)
		profiles.EXPECT().ClearGatewayFields(gomock.Any(), int64(7),
			[]string{"authnet_login", "authnet_transaction_key", "authnet_sandbox"}).Return(nil)

		if err := uc.DeleteGateway(context.Background(), 7, entities.GatewayAuthNet); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleting a non-default leaves the default column alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
		docs := mock_interfaces.NewMockIGatewayConfigRepository(ctrl)
		uc := NewGatewayConfigUseCase(profiles, docs)

		docs.EXPECT().Get(gomock.Any(), int64(7), entities.GatewayStripe).Return(entities.GatewayConfig{
			MerchantID: 7, Type: entities.GatewayStripe,
		}, nil)
		profiles.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(entities.MerchantProfile{
			MerchantID: 7, DefaultGateway: entities.GatewayAuthNet,
		}, nil)
		docs.EXPECT().SoftDelete(gomock.Any(), int64(7), entities.GatewayStripe).Return(nil)
		profiles.EXPECT().ClearGatewayFields(gomock.Any(), int64(7),
			[]string{"stripe_user_id", "stripe_secret_key"}).Return(nil)

		if err := uc.DeleteGateway(context.Background(), 7, entities.GatewayStripe); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGatewayConfigUseCase_ResetPaymentProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	profiles := mock_interfaces.NewMockIMerchantProfileStore(ctrl)
	uc := NewGatewayConfigUseCase(profiles, nil)

	profiles.EXPECT().ClearDefaultGateway(gomock.Any(), int64(7)).Return(nil)
	if err := uc.ResetPaymentProcessor(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.ResetPaymentProcessor(context.Background(), 0); err != nil {
		t.Fatalf("non-positive merchant id must be a no-op, got %v", err)
	}
}

func TestGatewayConfigUseCase_AvailableGateways(t *testing.T) {
	uc := NewGatewayConfigUseCase(nil, nil)

	got := uc.AvailableGateways("en")
	if len(got) != 6 {
		t.Fatalf("expected 6 gateway types, got %d", len(got))
	}
	for _, gw := range got {
		if gw.DisplayName == "" {
			t.Fatalf("missing display name for %s", gw.Type)
		}
	}

	es := uc.AvailableGateways("es")
	if es[2].DisplayName != "PayPal Express" {
		t.Fatalf("expected localized label, got %q", es[2].DisplayName)
	}

	fr := uc.AvailableGateways("fr")
	if fr[2].DisplayName != "PayPal Express Checkout" {
		t.Fatalf("expected english fallback, got %q", fr[2].DisplayName)
	}
}
