package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/pkg/imagegen"
	"crowlands-be/pkg/quota"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedSpell = `{
	"title": "Crossroads Charm",
	"introduction": "A working for protection at thresholds.",
	"image_prompt": "a moonlit crossroads with three torches"
}`

func newTestAiService(llmFake *fakeLLM, img imagegen.ImageProvider, uow *fakeUow) (IAiService, *fakeSessionStore, *fakeAuditPublisher) {
	sessions := newFakeSessionStore()
	audit := &fakeAuditPublisher{}
	svc := NewAiService(
		&fakeFactory{uow: uow},
		llmFake,
		img,
		sessions,
		audit,
		nil,
		nopLogger{},
	)
	return svc, sessions, audit
}

func freeUser(count int) *entity.User {
	return &entity.User{
		Id:                   uuid.New(),
		Email:                "seeker@example.com",
		Name:                 "Seeker",
		SubscriptionTier:     entity.TierFree,
		SpellGenerationCount: count,
	}
}

func paidUser() *entity.User {
	return &entity.User{
		Id:               uuid.New(),
		Email:            "patron@example.com",
		Name:             "Patron",
		SubscriptionTier: entity.TierPaid,
	}
}

func TestGenerateSpellAnonymousBypassesQuota(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: wellFormedSpell}
	svc, _, audit := newTestAiService(llmFake, nil, uow)

	res, err := svc.GenerateSpell(context.Background(), entity.AnonymousCaller(), &dto.GenerateSpellRequest{
		Intention: "protection while travelling",
	})

	require.NoError(t, err)
	assert.Equal(t, "Crossroads Charm", res.Spell.Title)
	assert.False(t, res.Spell.ParseError)
	assert.Nil(t, res.QuotaInfo, "anonymous callers get no quota snapshot")
	assert.Empty(t, uow.userRepo.recordedGenerations, "anonymous generations are not counted")
	assert.NotEmpty(t, res.SessionId)
	require.Len(t, audit.published, 1)
	assert.Nil(t, audit.published[0].UserId)
}

func TestGenerateSpellFreeTierAtLimit(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: wellFormedSpell}
	svc, _, _ := newTestAiService(llmFake, nil, uow)

	user := freeUser(quota.FreeTierLimit)
	_, err := svc.GenerateSpell(context.Background(), entity.AuthenticatedCaller(user), &dto.GenerateSpellRequest{
		Intention: "one more spell",
	})

	var limitErr *dto.LimitReachedError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, quota.FreeTierLimit, limitErr.Limit)
	assert.Equal(t, quota.FreeTierLimit, limitErr.CurrentCount)
	assert.Empty(t, llmFake.calls, "the model must not be called once the limit is hit")
}

func TestGenerateSpellFreeTierCountsAfterSuccess(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: wellFormedSpell}
	svc, _, _ := newTestAiService(llmFake, nil, uow)

	user := freeUser(1)
	res, err := svc.GenerateSpell(context.Background(), entity.AuthenticatedCaller(user), &dto.GenerateSpellRequest{
		Intention: "clarity of mind",
	})

	require.NoError(t, err)
	require.Len(t, uow.userRepo.recordedGenerations, 1)
	assert.Equal(t, user.Id, uow.userRepo.recordedGenerations[0])

	require.NotNil(t, res.QuotaInfo)
	assert.Equal(t, 2, res.QuotaInfo.CurrentCount, "quota snapshot reflects the new count")
	assert.Equal(t, 1, res.QuotaInfo.Remaining)
	assert.True(t, res.QuotaInfo.CanGenerate)
}

func TestGenerateSpellPaidTierNotCounted(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: wellFormedSpell}
	svc, _, _ := newTestAiService(llmFake, nil, uow)

	res, err := svc.GenerateSpell(context.Background(), entity.AuthenticatedCaller(paidUser()), &dto.GenerateSpellRequest{
		Intention: "abundance",
	})

	require.NoError(t, err)
	assert.Empty(t, uow.userRepo.recordedGenerations)
	require.NotNil(t, res.QuotaInfo)
	assert.Equal(t, quota.Unlimited, res.QuotaInfo.Limit)
	assert.Equal(t, quota.Unlimited, res.QuotaInfo.Remaining)
}

func TestGenerateSpellMalformedOutputDegrades(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: "I cannot produce JSON today, sorry."}
	imgFake := &fakeImageProvider{data: []byte("png-bytes")}
	svc, _, audit := newTestAiService(llmFake, imgFake, uow)

	res, err := svc.GenerateSpell(context.Background(), entity.AnonymousCaller(), &dto.GenerateSpellRequest{
		Intention:     "anything",
		GenerateImage: true,
	})

	require.NoError(t, err, "malformed model output is a degraded success, not an error")
	assert.True(t, res.Spell.ParseError)
	assert.Equal(t, "Your Custom Spell", res.Spell.Title)
	assert.Equal(t, llmFake.response, res.Spell.RawResponse)
	assert.Nil(t, res.Image, "no image prompt survives a parse failure")
	assert.Empty(t, imgFake.calls)
	require.Len(t, audit.published, 1)
	assert.True(t, audit.published[0].ParseError)
}

func TestGenerateSpellImageFailureTolerated(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: wellFormedSpell}
	imgFake := &fakeImageProvider{err: errUpstream}
	svc, _, _ := newTestAiService(llmFake, imgFake, uow)

	res, err := svc.GenerateSpell(context.Background(), entity.AnonymousCaller(), &dto.GenerateSpellRequest{
		Intention:     "protection",
		GenerateImage: true,
	})

	require.NoError(t, err)
	assert.Nil(t, res.Image)
	assert.False(t, res.Spell.ParseError)
	require.Len(t, imgFake.calls, 1, "the provider was asked and its failure swallowed")
}

func TestGenerateSpellImageUsesArchetypeStyle(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: wellFormedSpell}
	imgFake := &fakeImageProvider{data: []byte("png-bytes")}
	svc, _, _ := newTestAiService(llmFake, imgFake, uow)

	res, err := svc.GenerateSpell(context.Background(), entity.AnonymousCaller(), &dto.GenerateSpellRequest{
		Intention:     "protection",
		Archetype:     "catherine",
		GenerateImage: true,
	})

	require.NoError(t, err)
	require.NotNil(t, res.Image)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), *res.Image)
	require.Len(t, imgFake.calls, 1)
	assert.Contains(t, imgFake.calls[0], "a moonlit crossroads with three torches")
	assert.Equal(t, "catherine", res.Archetype.Id)
}

func TestGenerateSpellUpstreamFailure(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{err: errUpstream}
	svc, _, audit := newTestAiService(llmFake, nil, uow)

	_, err := svc.GenerateSpell(context.Background(), entity.AnonymousCaller(), &dto.GenerateSpellRequest{
		Intention: "anything",
	})

	var upErr *dto.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.ErrorIs(t, err, errUpstream)
	assert.Empty(t, audit.published)
}

func TestGenerateSpellGroundsPromptInReferenceData(t *testing.T) {
	uow := newFakeUow()
	uow.deityRepo.deities = []*entity.Deity{
		{Id: "hecate-001", Name: "Hecate", Origin: "Ancient Greek/Anatolian", Description: "Goddess of magic and crossroads."},
	}
	llmFake := &fakeLLM{response: wellFormedSpell}
	svc, _, _ := newTestAiService(llmFake, nil, uow)

	_, err := svc.GenerateSpell(context.Background(), entity.AnonymousCaller(), &dto.GenerateSpellRequest{
		Intention: "crossroads protection",
	})

	require.NoError(t, err)
	require.Len(t, llmFake.calls, 1)
	userMsg := llmFake.calls[0][len(llmFake.calls[0])-1].Content
	assert.Contains(t, userMsg, "Hecate")
	assert.Contains(t, userMsg, "crossroads protection")
}

func TestGenerateSpellReferenceLookupFailureTolerated(t *testing.T) {
	uow := newFakeUow()
	uow.deityRepo.err = errUpstream
	uow.ritualRepo.err = errUpstream
	uow.figureRepo.err = errUpstream
	llmFake := &fakeLLM{response: wellFormedSpell}
	svc, _, _ := newTestAiService(llmFake, nil, uow)

	res, err := svc.GenerateSpell(context.Background(), entity.AnonymousCaller(), &dto.GenerateSpellRequest{
		Intention: "anything",
	})

	require.NoError(t, err, "grounding context degrades to empty on repository failure")
	assert.Equal(t, "Crossroads Charm", res.Spell.Title)
}

func TestChatCreatesAndContinuesSession(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: "Greetings, seeker."}
	svc, sessions, _ := newTestAiService(llmFake, nil, uow)

	first, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message:   "Who was Dion Fortune?",
		Archetype: "kathleen",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.SessionId)
	assert.Equal(t, "kathleen", first.Archetype.Id)

	second, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message:   "And her society?",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionId, second.SessionId)
	assert.Equal(t, "kathleen", second.Archetype.Id, "the session keeps its persona")

	stored, ok := sessions.Get(first.SessionId)
	require.True(t, ok)
	assert.Len(t, stored.History, 4, "two user turns and two replies")

	// The second call replays the stored history under the system prompt.
	require.Len(t, llmFake.calls, 2)
	secondCall := llmFake.calls[1]
	assert.Equal(t, "system", secondCall[0].Role)
	assert.True(t, strings.Contains(secondCall[1].Content, "Dion Fortune"))
}

func TestChatUnknownArchetypeFallsBackToGuide(t *testing.T) {
	uow := newFakeUow()
	llmFake := &fakeLLM{response: "Welcome to the Crowlands."}
	svc, _, _ := newTestAiService(llmFake, nil, uow)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message:   "Hello",
		Archetype: "nobody-home",
	})

	require.NoError(t, err)
	assert.Equal(t, "The Crowlands Guide", res.Archetype.Name)
}

func TestGenerateImageReturnsBase64(t *testing.T) {
	uow := newFakeUow()
	imgFake := &fakeImageProvider{data: []byte{0x89, 0x50, 0x4e, 0x47}}
	svc, _, _ := newTestAiService(&fakeLLM{}, imgFake, uow)

	res, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{Prompt: "a raven on a standing stone"})

	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47}), res.Image)
	require.Len(t, imgFake.calls, 1)
	assert.Contains(t, imgFake.calls[0], "a raven on a standing stone")
}

func TestGenerateImageWithoutProvider(t *testing.T) {
	uow := newFakeUow()
	svc, _, _ := newTestAiService(&fakeLLM{}, nil, uow)

	res, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{Prompt: "a raven on a standing stone"})

	require.Error(t, err, "a disabled image pipeline must fail cleanly, not panic")
	assert.Nil(t, res)
	var upstreamErr *dto.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "failed to generate image", upstreamErr.Message)
}

func TestListArchetypesExcludesNeutralGuide(t *testing.T) {
	uow := newFakeUow()
	svc, _, _ := newTestAiService(&fakeLLM{}, nil, uow)

	res := svc.ListArchetypes()

	require.Len(t, res.Archetypes, 4)
	for _, a := range res.Archetypes {
		assert.NotEmpty(t, a.Id)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Title)
	}
}
