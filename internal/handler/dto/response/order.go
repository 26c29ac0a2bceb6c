package response

import (
	"time"

	"roomcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderViewResponse struct {
	ID         uuid.UUID           `json:"id"`
	Number     string              `json:"number"`
	HotelID    uuid.UUID           `json:"hotelId"`
	GuestName  string              `json:"guestName"`
	RoomNumber string              `json:"roomNumber"`
	Phone      string              `json:"phone"`
	Total      decimal.Decimal     `json:"total"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func FromOrderView(view *queries.OrderView) OrderViewResponse {
	items := make([]OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItemResponse{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return OrderViewResponse{
		ID:         view.ID,
		Number:     view.Number,
		HotelID:    view.HotelID,
		GuestName:  view.GuestName,
		RoomNumber: view.RoomNumber,
		Phone:      view.Phone,
		Total:      view.Total,
		Status:     view.Status,
		Items:      items,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}
}
