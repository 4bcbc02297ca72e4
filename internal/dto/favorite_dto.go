package dto

type FavoriteRequest struct {
	ItemType string `json:"item_type" validate:"required,oneof=deity figure site ritual event"`
	ItemId   string `json:"item_id" validate:"required"`
}

type FavoriteResponse struct {
	ItemType string `json:"item_type"`
	ItemId   string `json:"item_id"`
}

type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}
