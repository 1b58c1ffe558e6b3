package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/core/domain"
	"rbx-staffhub/internal/pkg/token"
)

// CodeTTL is how long an issued verification code stays valid
const CodeTTL = 10 * time.Minute

// CodeIssued is the phase-1 result handed back to the caller
type CodeIssued struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerificationService orchestrates the two-phase profile-code handshake:
// issue a code, have the user place it in their Roblox profile text, then
// prove ownership by reading it back.
type VerificationService struct {
	gateway     RobloxGateway
	codeRepo    repositories.VerificationCodeRepository
	accountRepo repositories.AccountRepository
	sessions    *SessionService
	groupID     int64
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	gateway RobloxGateway,
	codeRepo repositories.VerificationCodeRepository,
	accountRepo repositories.AccountRepository,
	sessions *SessionService,
	groupID int64,
) *VerificationService {
	return &VerificationService{
		gateway:     gateway,
		codeRepo:    codeRepo,
		accountRepo: accountRepo,
		sessions:    sessions,
		groupID:     groupID,
	}
}

// resolveEligibleUser resolves a username and checks group eligibility.
// Gateway outages collapse into the same outcomes as genuine absence: a
// failed user lookup reads as UserNotFound, a failed role lookup as
// Ineligible. Accepted false-negative risk; the caller retries later.
func (s *VerificationService) resolveEligibleUser(ctx context.Context, username string) (*domain.RobloxUser, *domain.GroupRole, error) {
	user, err := s.gateway.LookupUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			log.Printf("⚠️ user lookup failed for %q, treating as not found", username)
		}
		return nil, nil, domain.ErrRobloxUserNotFound
	}

	role, err := s.gateway.FetchGroupRole(ctx, user.ID, s.groupID)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			log.Printf("⚠️ group role lookup failed for %q, treating as ineligible", username)
		}
		return nil, nil, domain.ErrIneligible
	}

	if !domain.IsEligible(role.RoleID) {
		return nil, nil, domain.ErrIneligible
	}

	return user, role, nil
}

// GenerateCode runs phase 1: eligibility is checked before a code is issued
// so codes never leak to users who could not complete verification anyway.
func (s *VerificationService) GenerateCode(ctx context.Context, username string) (*CodeIssued, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, _, err := s.resolveEligibleUser(ctx, username); err != nil {
		return nil, err
	}

	code, err := token.GenerateCode()
	if err != nil {
		return nil, err
	}

	row := &models.VerificationCode{
		Username:  username,
		Code:      code,
		ExpiresAt: time.Now().Add(CodeTTL),
	}
	if err := s.codeRepo.Create(ctx, row); err != nil {
		return nil, err
	}

	return &CodeIssued{Code: code, ExpiresAt: row.ExpiresAt}, nil
}

// Verify runs phase 2: code lookup, expiry, profile-text proof, re-checked
// eligibility, account upsert and session issuance.
func (s *VerificationService) Verify(ctx context.Context, username string) (*models.Account, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", domain.ErrInvalidInput
	}

	user, err := s.gateway.LookupUserByName(ctx, username)
	if err != nil {
		return nil, "", domain.ErrRobloxUserNotFound
	}

	code, err := s.codeRepo.GetLatestUnused(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.ErrNoCodeFound
		}
		return nil, "", err
	}

	if code.IsExpired() {
		return nil, "", domain.ErrCodeExpired
	}

	// Profile-text match is the ownership proof: only the true owner can
	// edit their own profile. Failed fetches read as an empty profile.
	profileText, err := s.gateway.FetchProfileText(ctx, user.ID)
	if err != nil {
		profileText = ""
	}
	if !strings.Contains(profileText, code.Code) {
		return nil, "", domain.ErrCodeNotInProfile
	}

	// Rank can change between the two phases; never trust the phase-1 check.
	role, err := s.gateway.FetchGroupRole(ctx, user.ID, s.groupID)
	if err != nil {
		return nil, "", domain.ErrIneligible
	}
	if !domain.IsEligible(role.RoleID) {
		return nil, "", domain.ErrIneligible
	}

	if err := s.codeRepo.MarkUsed(ctx, code.ID); err != nil {
		return nil, "", err
	}

	account, err := s.upsertAccount(ctx, user, role)
	if err != nil {
		return nil, "", err
	}

	sessionToken, err := s.sessions.Create(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, sessionToken, nil
}

// upsertAccount refreshes an existing account's rank and login time, or
// creates one with the default department assignment on first verification.
func (s *VerificationService) upsertAccount(ctx context.Context, user *domain.RobloxUser, role *domain.GroupRole) (*models.Account, error) {
	now := time.Now()

	account, err := s.accountRepo.GetByRobloxUserID(ctx, user.ID)
	if err == nil {
		account.RobloxUsername = user.Username
		account.RankLabel = domain.RankLabelFor(role.RoleID)
		account.RankID = role.RoleID
		account.LastLoginAt = now
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, err
		}
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = &models.Account{
		RobloxUsername: user.Username,
		RobloxUserID:   user.ID,
		RankLabel:      domain.RankLabelFor(role.RoleID),
		RankID:         role.RoleID,
		Department:     domain.DefaultDepartment,
		SubDepartment:  domain.DefaultSubDepartment,
		VerifiedAt:     now,
		LastLoginAt:    now,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
