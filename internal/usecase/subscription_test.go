package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuaderno/internal/entity"
)

var fixedNow = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func Test_subscription_GetSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("err, empty user", func(t *testing.T) {
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByUserID(gomock.Any(), gomock.Any()).Times(0)

		uc := NewSubscription(repo)
		_, err := uc.GetSubscription(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidUser)
	})

	t.Run("ok, stored record", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		stored := entity.NewSubscription("u1", "pro", entity.StatusActive, fixedNow)
		repo.EXPECT().GetSubByUserID(ctx, "u1").Times(1).Return(stored, nil)

		uc := NewSubscription(repo)
		got, err := uc.GetSubscription(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("ok, default when absent", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByUserID(ctx, "u2").Times(1).Return(nil, ErrSubscriptionNotFound)

		uc := NewSubscription(repo, WithClock(clock))
		got, err := uc.GetSubscription(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultSubscription("u2", fixedNow), got)
	})

	t.Run("ok, provider copy when store is empty", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		idp := NewMockIdentityProvider(ctrl)
		remote := entity.NewSubscription("u3", "enterprise", entity.StatusCanceled, fixedNow)
		repo.EXPECT().GetSubByUserID(ctx, "u3").Times(1).Return(nil, ErrSubscriptionNotFound)
		idp.EXPECT().GetSubscription(ctx, "u3").Times(1).Return(remote, nil)

		uc := NewSubscription(repo, WithIdentityProvider(idp))
		got, err := uc.GetSubscription(ctx, "u3")
		require.NoError(t, err)
		assert.Equal(t, remote, got)
	})

	t.Run("err, provider failure", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		idp := NewMockIdentityProvider(ctrl)
		expected := errors.New("clerk down")
		repo.EXPECT().GetSubByUserID(ctx, "u4").Times(1).Return(nil, ErrSubscriptionNotFound)
		idp.EXPECT().GetSubscription(ctx, "u4").Times(1).Return(nil, expected)

		uc := NewSubscription(repo, WithIdentityProvider(idp))
		_, err := uc.GetSubscription(ctx, "u4")
		assert.ErrorIs(t, err, ErrProvider)
		assert.ErrorIs(t, err, expected)
	})

	t.Run("err, repo failure", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		expected := errors.New("connection refused")
		repo.EXPECT().GetSubByUserID(ctx, "u5").Times(1).Return(nil, expected)

		uc := NewSubscription(repo)
		_, err := uc.GetSubscription(ctx, "u5")
		assert.ErrorIs(t, err, expected)
	})
}

func Test_subscription_UpdateSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("err, missing plan does not touch the store", func(t *testing.T) {
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().SetSub(gomock.Any(), gomock.Any()).Times(0)

		uc := NewSubscription(repo)
		_, err := uc.UpdateSubscription(context.Background(), "u1", " ")
		assert.ErrorIs(t, err, ErrInvalidPlan)
	})

	t.Run("err, missing user", func(t *testing.T) {
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().SetSub(gomock.Any(), gomock.Any()).Times(0)

		uc := NewSubscription(repo)
		_, err := uc.UpdateSubscription(context.Background(), "", "pro")
		assert.ErrorIs(t, err, ErrInvalidUser)
	})

	t.Run("ok", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().SetSub(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *entity.Subscription) error {
				assert.Equal(t, "u1", s.UserID)
				assert.Equal(t, "pro", s.Plan)
				assert.Equal(t, entity.StatusActive, s.Status)
				assert.Equal(t, fixedNow, s.PeriodStart)
				return nil
			}).Times(1)

		uc := NewSubscription(repo, WithClock(clock))
		got, err := uc.UpdateSubscription(ctx, "u1", " pro ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), got.PeriodEnd())
	})

	t.Run("err, provider failure leaves the store untouched", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		idp := NewMockIdentityProvider(ctrl)
		idp.EXPECT().SetSubscription(ctx, gomock.Any()).Times(1).Return(errors.New("401"))
		repo.EXPECT().SetSub(gomock.Any(), gomock.Any()).Times(0)

		uc := NewSubscription(repo, WithIdentityProvider(idp))
		_, err := uc.UpdateSubscription(ctx, "u1", "pro")
		assert.ErrorIs(t, err, ErrProvider)
	})
}

func Test_subscription_CreateCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := CheckoutRequest{
		PlanID:     "pro",
		SuccessURL: "https://app.example.com/dashboard?tab=billing",
		CancelURL:  "https://app.example.com/pricing",
	}

	t.Run("err, invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			req  CheckoutRequest
			want error
		}{
			{"empty plan", CheckoutRequest{SuccessURL: valid.SuccessURL, CancelURL: valid.CancelURL}, ErrInvalidPlan},
			{"relative success url", CheckoutRequest{PlanID: "pro", SuccessURL: "/done", CancelURL: valid.CancelURL}, ErrInvalidCheckout},
			{"bad cancel scheme", CheckoutRequest{PlanID: "pro", SuccessURL: valid.SuccessURL, CancelURL: "ftp://x"}, ErrInvalidCheckout},
			{"empty cancel url", CheckoutRequest{PlanID: "pro", SuccessURL: valid.SuccessURL}, ErrInvalidCheckout},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := NewMockSubscriptionRepository(ctrl)
				repo.EXPECT().SetSub(gomock.Any(), gomock.Any()).Times(0)

				uc := NewSubscription(repo)
				_, err := uc.CreateCheckout(context.Background(), "u1", tt.req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("ok, provider updated before the store", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		idp := NewMockIdentityProvider(ctrl)
		gomock.InOrder(
			idp.EXPECT().SetSubscription(ctx, gomock.Any()).Times(1).Return(nil),
			repo.EXPECT().SetSub(ctx, gomock.Any()).Times(1).Return(nil),
		)

		uc := NewSubscription(repo,
			WithIdentityProvider(idp),
			WithClock(clock),
			WithSessionIDs(func() string { return "cs_1" }),
		)
		got, err := uc.CreateCheckout(ctx, "u1", valid)
		require.NoError(t, err)

		assert.Equal(t, "cs_1", got.SessionID)
		u, err := url.Parse(got.URL)
		require.NoError(t, err)
		assert.Equal(t, "app.example.com", u.Host)
		assert.Equal(t, "billing", u.Query().Get("tab"))
		assert.Equal(t, "cs_1", u.Query().Get("session_id"))
		assert.Equal(t, "pro", u.Query().Get("plan"))
		assert.Equal(t, "pro", got.Subscription.Plan)
		assert.Equal(t, entity.StatusActive, got.Subscription.Status)
	})
}

func Test_subscription_CancelSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ok, keeps plan and period", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		start := fixedNow.AddDate(0, 0, -10)
		stored := entity.NewSubscription("u1", "pro", entity.StatusActive, start)
		repo.EXPECT().GetSubByUserID(ctx, "u1").Times(1).Return(stored, nil)
		repo.EXPECT().SetSub(ctx, gomock.Any()).Times(1).Return(nil)

		uc := NewSubscription(repo)
		got, err := uc.CancelSubscription(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCanceled, got.Status)
		assert.Equal(t, "pro", got.Plan)
		assert.Equal(t, start, got.PeriodStart)
		assert.Equal(t, entity.StatusActive, stored.Status)
	})

	t.Run("ok, cancels the default record", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByUserID(ctx, "u2").Times(1).Return(nil, ErrSubscriptionNotFound)
		repo.EXPECT().SetSub(ctx, gomock.Any()).Times(1).Return(nil)

		uc := NewSubscription(repo, WithClock(clock))
		got, err := uc.CancelSubscription(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultPlan, got.Plan)
		assert.Equal(t, entity.StatusCanceled, got.Status)
	})

	t.Run("err, repo write failure", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMockSubscriptionRepository(ctrl)
		expected := errors.New("write failed")
		repo.EXPECT().GetSubByUserID(ctx, "u3").Times(1).Return(nil, ErrSubscriptionNotFound)
		repo.EXPECT().SetSub(ctx, gomock.Any()).Times(1).Return(expected)

		uc := NewSubscription(repo)
		_, err := uc.CancelSubscription(ctx, "u3")
		assert.ErrorIs(t, err, expected)
	})
}

func Test_subscription_BillingPortal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockSubscriptionRepository(ctrl)

	t.Run("configured portal", func(t *testing.T) {
		uc := NewSubscription(repo, WithPortalURL("https://billing.example.com/p/session"))
		got, err := uc.BillingPortal(context.Background(), "u1", "https://app.example.com/settings")
		require.NoError(t, err)
		assert.Equal(t, "https://billing.example.com/p/session?return_url=https%3A%2F%2Fapp.example.com%2Fsettings", got)
	})

	t.Run("no portal falls back to return url", func(t *testing.T) {
		uc := NewSubscription(repo)
		got, err := uc.BillingPortal(context.Background(), "u1", "https://app.example.com/settings")
		require.NoError(t, err)
		assert.Equal(t, "https://app.example.com/settings", got)
	})

	t.Run("no portal and no return url", func(t *testing.T) {
		uc := NewSubscription(repo)
		_, err := uc.BillingPortal(context.Background(), "u1", "")
		assert.ErrorIs(t, err, ErrInvalidCheckout)
	})

	t.Run("no user", func(t *testing.T) {
		uc := NewSubscription(repo)
		_, err := uc.BillingPortal(context.Background(), "", "")
		assert.ErrorIs(t, err, ErrInvalidUser)
	})
}
