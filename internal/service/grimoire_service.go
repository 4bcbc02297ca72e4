package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"
	"crowlands-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IGrimoireService interface {
	Save(ctx context.Context, user *entity.User, req *dto.SaveSpellRequest) (*dto.SavedSpellResponse, error)
	List(ctx context.Context, userId uuid.UUID) (*dto.GrimoireListResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, spellId uuid.UUID) error
}

type grimoireService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGrimoireService(uowFactory unitofwork.RepositoryFactory) IGrimoireService {
	return &grimoireService{uowFactory: uowFactory}
}

// extractTitle pulls the display title out of the opaque spell payload so
// listings don't have to parse the whole document.
func extractTitle(spellData json.RawMessage) string {
	var probe struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(spellData, &probe); err != nil || probe.Title == "" {
		return "Untitled Spell"
	}
	return probe.Title
}

func savedSpellResponse(s *entity.SavedSpell) dto.SavedSpellResponse {
	return dto.SavedSpellResponse{
		Id:             s.Id,
		SpellData:      s.SpellData,
		ArchetypeId:    s.ArchetypeId,
		ArchetypeName:  s.ArchetypeName,
		ArchetypeTitle: s.ArchetypeTitle,
		Image:          s.ImageData,
		Title:          s.Title,
		CreatedAt:      s.CreatedAt,
	}
}

func (s *grimoireService) Save(ctx context.Context, user *entity.User, req *dto.SaveSpellRequest) (*dto.SavedSpellResponse, error) {
	if !user.IsPaid() {
		return nil, &dto.FeatureLockedError{Feature: "grimoire"}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	spell := &entity.SavedSpell{
		Id:             uuid.New(),
		UserId:         user.Id,
		SpellData:      req.SpellData,
		ArchetypeId:    req.ArchetypeId,
		ArchetypeName:  req.ArchetypeName,
		ArchetypeTitle: req.ArchetypeTitle,
		ImageData:      req.Image,
		Title:          extractTitle(req.SpellData),
		CreatedAt:      time.Now(),
	}

	if err := uow.GrimoireRepository().Create(ctx, spell); err != nil {
		return nil, err
	}

	if err := uow.UserRepository().IncrementSavedCount(ctx, user.Id); err != nil {
		log.Printf("[WARN] failed to bump lifetime saved count for %s: %v", user.Id, err)
	}

	res := savedSpellResponse(spell)
	return &res, nil
}

func (s *grimoireService) List(ctx context.Context, userId uuid.UUID) (*dto.GrimoireListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	spells, err := uow.GrimoireRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.GrimoireListResponse{
		Spells: make([]dto.SavedSpellResponse, len(spells)),
		Total:  len(spells),
	}
	for i, sp := range spells {
		res.Spells[i] = savedSpellResponse(sp)
	}
	return res, nil
}

func (s *grimoireService) Delete(ctx context.Context, userId uuid.UUID, spellId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Owner scoping happens in the lookup: a foreign entry reads as absent,
	// not forbidden, so existence never leaks.
	spell, err := uow.GrimoireRepository().FindOne(ctx,
		specification.ByID{ID: spellId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if spell == nil {
		return &dto.NotFoundError{Resource: "spell"}
	}

	return uow.GrimoireRepository().Delete(ctx, spell.Id)
}
