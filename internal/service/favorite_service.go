package service

import (
	"context"
	"time"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"
	"crowlands-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFavoriteService interface {
	Add(ctx context.Context, userId uuid.UUID, req *dto.FavoriteRequest) error
	Remove(ctx context.Context, userId uuid.UUID, req *dto.FavoriteRequest) error
	List(ctx context.Context, userId uuid.UUID) (*dto.FavoriteListResponse, error)
}

type favoriteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFavoriteService(uowFactory unitofwork.RepositoryFactory) IFavoriteService {
	return &favoriteService{uowFactory: uowFactory}
}

func (s *favoriteService) Add(ctx context.Context, userId uuid.UUID, req *dto.FavoriteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	favorite := &entity.Favorite{
		Id:        uuid.New(),
		UserId:    userId,
		ItemType:  req.ItemType,
		ItemId:    req.ItemId,
		CreatedAt: time.Now(),
	}
	return uow.FavoriteRepository().Add(ctx, favorite)
}

func (s *favoriteService) Remove(ctx context.Context, userId uuid.UUID, req *dto.FavoriteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FavoriteRepository().Remove(ctx, userId, req.ItemType, req.ItemId)
}

func (s *favoriteService) List(ctx context.Context, userId uuid.UUID) (*dto.FavoriteListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	favorites, err := uow.FavoriteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.FavoriteListResponse{
		Favorites: make([]dto.FavoriteResponse, len(favorites)),
	}
	for i, f := range favorites {
		res.Favorites[i] = dto.FavoriteResponse{
			ItemType: f.ItemType,
			ItemId:   f.ItemId,
		}
	}
	return res, nil
}
