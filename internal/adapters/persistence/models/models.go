package models

import (
	"time"

	"gorm.io/gorm"

	"rbx-staffhub/internal/core/domain"
)

// ============================================================
// Accounts & Sessions
// ============================================================

// Account represents accounts table
type Account struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RobloxUsername string    `gorm:"uniqueIndex;size:50;not null" json:"roblox_username"`
	RobloxUserID   int64     `gorm:"uniqueIndex;not null" json:"roblox_user_id"`
	RankLabel      string    `gorm:"size:50;not null" json:"rank_label"`
	RankID         int       `gorm:"not null" json:"rank_id"`
	Department     string    `gorm:"size:50;not null" json:"department"`
	SubDepartment  string    `gorm:"size:50;not null" json:"sub_department"`
	VerifiedAt     time.Time `gorm:"not null" json:"verified_at"`
	LastLoginAt    time.Time `gorm:"not null" json:"last_login_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// ToDomain converts the row to a domain account
func (a *Account) ToDomain() *domain.Account {
	return &domain.Account{
		ID:             a.ID,
		RobloxUsername: a.RobloxUsername,
		RobloxUserID:   a.RobloxUserID,
		RankLabel:      a.RankLabel,
		RankID:         a.RankID,
		Department:     a.Department,
		SubDepartment:  a.SubDepartment,
		VerifiedAt:     a.VerifiedAt,
		LastLoginAt:    a.LastLoginAt,
	}
}

// Session represents sessions table. The opaque token handed to the client
// is never stored; only its SHA-256 hash is.
type Session struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TokenHash  string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	AccountID  uint      `gorm:"index;not null" json:"account_id"`
	ExpiresAt  time.Time `gorm:"index;not null" json:"expires_at"`
	LastSeenAt time.Time `gorm:"not null" json:"last_seen_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ============================================================
// Verification codes
// ============================================================

// VerificationCode represents verification_codes table. Keyed by username
// (not account id) because a code can be issued before an account exists.
// Rows are never deleted; used/expired codes stay for audit.
type VerificationCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;size:50;not null" json:"username"`
	Code      string    `gorm:"uniqueIndex;size:8;not null" json:"code"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false;not null" json:"used"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (VerificationCode) TableName() string {
	return "verification_codes"
}

func (v *VerificationCode) IsExpired() bool {
	return time.Now().After(v.ExpiresAt)
}

// ============================================================
// Requests
// ============================================================

// TransferRequest represents transfer_requests table
type TransferRequest struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	AccountID              uint       `gorm:"index;not null" json:"account_id"`
	CurrentDepartment      string     `gorm:"size:50;not null" json:"current_department"`
	CurrentSubDepartment   string     `gorm:"size:50;not null" json:"current_sub_department"`
	RequestedDepartment    string     `gorm:"size:50;not null" json:"requested_department"`
	RequestedSubDepartment string     `gorm:"size:50;not null" json:"requested_sub_department"`
	Reason                 string     `gorm:"type:text" json:"reason,omitempty"`
	Status                 string     `gorm:"size:20;default:'Pending';not null" json:"status"`
	ReviewedAt             *time.Time `json:"reviewed_at"`
	ReviewerID             *uint      `json:"reviewer_id"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TransferRequest) TableName() string {
	return "transfer_requests"
}

// LoaRequest represents loa_requests table
type LoaRequest struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	AccountID  uint       `gorm:"index;not null" json:"account_id"`
	StartDate  string     `gorm:"size:10;not null" json:"start_date"` // YYYY-MM-DD
	EndDate    string     `gorm:"size:10;not null" json:"end_date"`   // YYYY-MM-DD
	Reason     string     `gorm:"type:text;not null" json:"reason"`
	Status     string     `gorm:"size:20;default:'Pending';not null" json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewerID *uint      `json:"reviewer_id"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LoaRequest) TableName() string {
	return "loa_requests"
}

// ============================================================
// Notifications
// ============================================================

// Notification represents notifications table. Immutable except Read.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AccountID   uint      `gorm:"index;not null" json:"account_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Type        string    `gorm:"size:40;not null" json:"type"` // e.g. transfer_approved
	RequestID   uint      `gorm:"not null" json:"request_id"`
	RequestKind string    `gorm:"size:20;not null" json:"request_kind"`
	Read        bool      `gorm:"default:false;not null" json:"read"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

// AutoMigrate creates/updates all portal tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&Session{},
		&VerificationCode{},
		&TransferRequest{},
		&LoaRequest{},
		&Notification{},
	)
}
