package quota

import (
	"testing"

	"crowlands-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateFreeTier(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		wantCan       bool
		wantRemaining int
	}{
		{"no generations yet", 0, true, 3},
		{"one used", 1, true, 2},
		{"two used", 2, true, 1},
		{"limit reached", 3, false, 0},
		{"over limit from race overshoot", 4, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &entity.User{
				SubscriptionTier:     entity.TierFree,
				SpellGenerationCount: tt.count,
			}
			got := Evaluate(user)
			assert.Equal(t, tt.wantCan, got.CanGenerate)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
			assert.Equal(t, FreeTierLimit, got.Limit)
			assert.Equal(t, tt.count, got.CurrentCount)
		})
	}
}

func TestEvaluatePaidTierIsUnlimited(t *testing.T) {
	user := &entity.User{
		SubscriptionTier:     entity.TierPaid,
		SpellGenerationCount: 9000,
	}
	got := Evaluate(user)
	assert.True(t, got.CanGenerate)
	assert.Equal(t, Unlimited, got.Limit)
	assert.Equal(t, Unlimited, got.Remaining)
}

func TestEvaluateNilUserIsUnmetered(t *testing.T) {
	got := Evaluate(nil)
	assert.True(t, got.CanGenerate)
	assert.Equal(t, Unlimited, got.Limit)
}

func TestEvaluateIsPure(t *testing.T) {
	user := &entity.User{
		SubscriptionTier:     entity.TierFree,
		SpellGenerationCount: 2,
	}
	before := *user
	_ = Evaluate(user)
	assert.Equal(t, before, *user)
}
