package domain

import "time"

type CollabStatus string

// Линейный жизненный цикл коллаборации.
const (
	StatusAddressProvided CollabStatus = "address_provided"
	StatusShipped         CollabStatus = "shipped"
	StatusReceived        CollabStatus = "received"
	StatusVideoUploaded   CollabStatus = "video_uploaded"
	StatusVerified        CollabStatus = "verified"
	StatusCompleted       CollabStatus = "completed"
)

// Collaboration связывает блогера и бренд вокруг одного продукта.
// Запись принадлежит сервису коллабораций; чат использует её id как ключ комнаты.
type Collaboration struct {
	ID        int64        `db:"id"`
	BloggerID int64        `db:"blogger_id"`
	BrandID   int64        `db:"brand_id"`
	ProductID int64        `db:"product_id"`
	Status    CollabStatus `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
}

// IsParticipant — true, если user одна из сторон коллаборации.
func (c *Collaboration) IsParticipant(userID int64) bool {
	return c.BloggerID == userID || c.BrandID == userID
}
