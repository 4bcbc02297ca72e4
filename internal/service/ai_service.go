package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"crowlands-be/internal/constant"
	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/pkg/logger"
	"crowlands-be/internal/repository/specification"
	"crowlands-be/internal/repository/unitofwork"
	"crowlands-be/pkg/events"
	"crowlands-be/pkg/imagegen"
	"crowlands-be/pkg/llm"
	pktNats "crowlands-be/pkg/nats"
	"crowlands-be/pkg/persona"
	"crowlands-be/pkg/quota"
	"crowlands-be/pkg/spell"
	"crowlands-be/pkg/store"

	"github.com/google/uuid"
)

const contextSampleSize = 10

type IAiService interface {
	GenerateSpell(ctx context.Context, caller entity.Caller, req *dto.GenerateSpellRequest) (*dto.GenerateSpellResponse, error)
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)
	ListArchetypes() *dto.ArchetypeListResponse
}

type aiService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	imageProvider  imagegen.ImageProvider
	sessionStore   store.SessionStore
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewAiService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	imageProvider imagegen.ImageProvider,
	sessionStore store.SessionStore,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAiService {
	return &aiService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		imageProvider:  imageProvider,
		sessionStore:   sessionStore,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func archetypeInfo(a persona.Archetype) dto.ArchetypeInfo {
	return dto.ArchetypeInfo{Id: a.Id, Name: a.Name, Title: a.Title}
}

func (s *aiService) ListArchetypes() *dto.ArchetypeListResponse {
	summaries := persona.ListAll()
	res := &dto.ArchetypeListResponse{
		Archetypes: make([]dto.ArchetypeInfo, len(summaries)),
	}
	for i, a := range summaries {
		res.Archetypes[i] = dto.ArchetypeInfo{Id: a.Id, Name: a.Name, Title: a.Title}
	}
	return res
}

// buildGroundingContext samples the reference collections to anchor the
// generator in the seeded material. Missing or failing collections degrade
// to an empty context, never an error.
func (s *aiService) buildGroundingContext(ctx context.Context) string {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sample := specification.Pagination{Limit: contextSampleSize, Offset: 0}

	out := ""

	if deities, err := uow.DeityRepository().FindAll(ctx, sample); err == nil && len(deities) > 0 {
		out += "Known deities:\n"
		for _, d := range deities {
			out += fmt.Sprintf("- %s (%s): %s\n", d.Name, d.Origin, d.Description)
		}
	}

	if rituals, err := uow.RitualRepository().FindAll(ctx, sample); err == nil && len(rituals) > 0 {
		out += "Documented rituals:\n"
		for _, r := range rituals {
			out += fmt.Sprintf("- %s (%s): %s\n", r.Name, r.Category, r.Description)
		}
	}

	if figures, err := uow.FigureRepository().FindAll(ctx, sample); err == nil && len(figures) > 0 {
		out += "Historical practitioners:\n"
		for _, f := range figures {
			out += fmt.Sprintf("- %s (%s): %s\n", f.Name, f.BirthDeath, f.Contributions)
		}
	}

	return out
}

func (s *aiService) GenerateSpell(ctx context.Context, caller entity.Caller, req *dto.GenerateSpellRequest) (*dto.GenerateSpellResponse, error) {
	started := time.Now()

	// Quota gate. Anonymous callers are unmetered by design.
	user := caller.User()
	if user != nil {
		st := quota.Evaluate(user)
		if !st.CanGenerate {
			return nil, &dto.LimitReachedError{Limit: st.Limit, CurrentCount: st.CurrentCount}
		}
	}

	arch := persona.Resolve(req.Archetype)
	grounding := s.buildGroundingContext(ctx)

	systemPrompt := arch.SystemPrompt + constant.SchemaComplianceSuffix
	userMessage := ""
	if grounding != "" {
		userMessage = "Reference material from the archive:\n" + grounding + "\n"
	}
	userMessage += constant.SpellSchemaInstruction + "\n\nIntention: " + req.Intention

	sessionId := uuid.New().String()

	raw, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: userMessage},
	})
	if err != nil {
		s.log.Error("ai", "spell generation call failed", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionId,
			"archetype":  arch.Id,
		})
		return nil, &dto.UpstreamError{Message: "failed to generate spell", Cause: err}
	}

	parsed, ok := spell.Parse(raw)
	if !ok {
		s.log.Warn("ai", "spell response did not parse, returning raw payload", map[string]interface{}{
			"session_id": sessionId,
		})
	}

	// Best-effort image synthesis; failure degrades to no image.
	var image *string
	imageMade := false
	if req.GenerateImage && parsed.ImagePrompt != "" && s.imageProvider != nil {
		prompt := arch.ImageStylePrefix + ", " + parsed.ImagePrompt + constant.ImagePromptSuffix
		if raw, imgErr := s.imageProvider.Generate(ctx, prompt); imgErr != nil {
			s.log.Warn("ai", "image synthesis failed, continuing without image", map[string]interface{}{
				"error":      imgErr.Error(),
				"session_id": sessionId,
			})
		} else {
			encoded := base64.StdEncoding.EncodeToString(raw)
			image = &encoded
			imageMade = true
		}
	}

	// Counter update, after generation succeeded and only for free tier.
	if user != nil && !user.IsPaid() {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.UserRepository().RecordGeneration(ctx, user.Id); err != nil {
			s.log.Error("ai", "failed to record generation", map[string]interface{}{
				"error":   err.Error(),
				"user_id": user.Id.String(),
			})
		} else {
			user.SpellGenerationCount++
			user.LifetimeGenerated++
		}
	}

	res := &dto.GenerateSpellResponse{
		Spell:     parsed,
		Image:     image,
		Archetype: archetypeInfo(arch),
		SessionId: sessionId,
	}
	if user != nil {
		st := quota.Evaluate(user)
		res.QuotaInfo = &dto.QuotaInfo{
			CanGenerate:  st.CanGenerate,
			Remaining:    st.Remaining,
			Limit:        st.Limit,
			CurrentCount: st.CurrentCount,
		}
	}

	s.publishAudit(ctx, user, sessionId, arch.Id, !ok, imageMade, time.Since(started))

	return res, nil
}

func (s *aiService) publishAudit(ctx context.Context, user *entity.User, sessionId, archetypeId string, parseError, imageMade bool, latency time.Duration) {
	var userId *uuid.UUID
	if user != nil {
		id := user.Id
		userId = &id
	}

	if s.publisher != nil {
		msg := &dto.GenerationEventMessage{
			UserId:      userId,
			SessionId:   sessionId,
			ArchetypeId: archetypeId,
			ParseError:  parseError,
			ImageMade:   imageMade,
			LatencyMs:   latency.Milliseconds(),
		}
		if err := s.publisher.PublishGenerationEvent(ctx, msg); err != nil {
			s.log.Warn("ai", "failed to publish generation audit event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	uid := ""
	if userId != nil {
		uid = userId.String()
	}
	if err := s.eventPublisher.Publish(ctx, events.NewSpellGenerated(uid, archetypeId, parseError)); err != nil {
		s.log.Warn("ai", "failed to publish SPELL_GENERATED", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *aiService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = uuid.New().String()
	}

	session, found := s.sessionStore.Get(sessionId)
	if !found {
		session = &store.Session{
			ID:          sessionId,
			ArchetypeID: req.Archetype,
		}
	}

	// A session keeps the persona it started with unless the caller
	// switches explicitly.
	if req.Archetype != "" {
		session.ArchetypeID = req.Archetype
	}
	arch := persona.Resolve(session.ArchetypeID)

	history := make([]llm.Message, 0, len(session.History)+2)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleSystem, Content: arch.SystemPrompt})
	history = append(history, session.History...)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleUser, Content: req.Message})

	reply, err := s.llmProvider.Chat(ctx, history)
	if err != nil {
		s.log.Error("ai", "chat call failed", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionId,
		})
		return nil, &dto.UpstreamError{Message: "failed to process chat request", Cause: err}
	}

	session.History = append(session.History,
		llm.Message{Role: constant.ChatMessageRoleUser, Content: req.Message},
		llm.Message{Role: constant.ChatMessageRoleModel, Content: reply},
	)
	s.sessionStore.Save(session)

	return &dto.ChatResponse{
		Response:  reply,
		SessionId: sessionId,
		Archetype: archetypeInfo(arch),
	}, nil
}

func (s *aiService) GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	if s.imageProvider == nil {
		return nil, &dto.UpstreamError{
			Message: "failed to generate image",
			Cause:   errors.New("image synthesis is not configured"),
		}
	}

	arch := persona.Resolve("")
	prompt := arch.ImageStylePrefix + ", " + req.Prompt

	raw, err := s.imageProvider.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("ai", "image generation call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &dto.UpstreamError{Message: "failed to generate image", Cause: err}
	}

	return &dto.GenerateImageResponse{
		Image: base64.StdEncoding.EncodeToString(raw),
	}, nil
}
