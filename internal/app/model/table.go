package model

import "time"

// Table is a physical restaurant table, addressed by QR code links
type Table struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Number    int       `gorm:"not null;uniqueIndex" json:"number"`
	QRCodeURL string    `gorm:"type:text" json:"qrCodeUrl,omitempty"` // published QR image
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Table) TableName() string {
	return "tables"
}
