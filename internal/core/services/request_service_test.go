package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/core/domain"
)

func newRequestFixture(t *testing.T) (*RequestService, *gorm.DB, *models.Account, *models.Account) {
	t.Helper()

	db := newTestDB(t)
	svc := NewRequestService(
		repositories.NewTransferRequestRepository(db),
		repositories.NewLoaRequestRepository(db),
		NewNotificationService(repositories.NewNotificationRepository(db)),
	)

	owner := &models.Account{
		RobloxUsername: "owner",
		RobloxUserID:   1,
		RankLabel:      "Supervisor",
		RankID:         200,
		Department:     "Operations",
		SubDepartment:  "General",
		VerifiedAt:     time.Now(),
		LastLoginAt:    time.Now(),
	}
	reviewer := &models.Account{
		RobloxUsername: "reviewer",
		RobloxUserID:   2,
		RankLabel:      "Executive Board",
		RankID:         254,
		Department:     "Operations",
		SubDepartment:  "General",
		VerifiedAt:     time.Now(),
		LastLoginAt:    time.Now(),
	}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(reviewer).Error)

	return svc, db, owner, reviewer
}

func TestCreateTransfer_StartsPending(t *testing.T) {
	svc, _, owner, _ := newRequestFixture(t)

	req, err := svc.CreateTransfer(context.Background(), owner, &CreateTransferInput{
		RequestedDepartment:    "Public Relations",
		RequestedSubDepartment: "Events",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), req.Status)
	assert.Nil(t, req.ReviewerID)
	assert.Nil(t, req.ReviewedAt)
	assert.Equal(t, "Operations", req.CurrentDepartment)
	assert.Equal(t, "General", req.CurrentSubDepartment)
}

func TestCreateTransfer_SameDepartmentAllowed(t *testing.T) {
	svc, _, owner, _ := newRequestFixture(t)

	// no server-side transfer-legality check
	req, err := svc.CreateTransfer(context.Background(), owner, &CreateTransferInput{
		RequestedDepartment:    owner.Department,
		RequestedSubDepartment: owner.SubDepartment,
	})
	require.NoError(t, err)
	assert.Equal(t, owner.Department, req.RequestedDepartment)
}

func TestCreateTransfer_MissingFields(t *testing.T) {
	svc, _, owner, _ := newRequestFixture(t)

	_, err := svc.CreateTransfer(context.Background(), owner, &CreateTransferInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateLoa_RequiresDatesAndReason(t *testing.T) {
	svc, _, owner, _ := newRequestFixture(t)

	cases := []*CreateLoaInput{
		{EndDate: "2026-09-10", Reason: "family"},
		{StartDate: "2026-09-01", Reason: "family"},
		{StartDate: "2026-09-01", EndDate: "2026-09-10"},
		{StartDate: "not-a-date", EndDate: "2026-09-10", Reason: "family"},
		{StartDate: "2026-09-01", EndDate: "09/10/2026", Reason: "family"},
	}

	for _, input := range cases {
		_, err := svc.CreateLoa(context.Background(), owner, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %+v", input)
	}

	_, err := svc.CreateLoa(context.Background(), owner, &CreateLoaInput{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-10",
		Reason:    "family",
	})
	assert.NoError(t, err)
}

func TestReviewTransfer_ApproveNotifiesOwner(t *testing.T) {
	svc, db, owner, reviewer := newRequestFixture(t)

	req, err := svc.CreateTransfer(context.Background(), owner, &CreateTransferInput{
		RequestedDepartment:    "Marketing",
		RequestedSubDepartment: "Outreach",
	})
	require.NoError(t, err)

	reviewed, err := svc.ReviewTransfer(context.Background(), req.ID, domain.StatusApproved, reviewer.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusApproved), reviewed.Status)
	require.NotNil(t, reviewed.ReviewerID)
	assert.Equal(t, reviewer.ID, *reviewed.ReviewerID)
	assert.NotNil(t, reviewed.ReviewedAt)

	// exactly one notification to the owner with the combined tag
	var ns []models.Notification
	require.NoError(t, db.Find(&ns).Error)
	require.Len(t, ns, 1)
	assert.Equal(t, owner.ID, ns[0].AccountID)
	assert.Equal(t, "transfer_approved", ns[0].Type)
	assert.Equal(t, req.ID, ns[0].RequestID)
	assert.Equal(t, "transfer", ns[0].RequestKind)
	assert.False(t, ns[0].Read)
}

func TestReviewLoa_RejectNotifiesOwner(t *testing.T) {
	svc, db, owner, reviewer := newRequestFixture(t)

	req, err := svc.CreateLoa(context.Background(), owner, &CreateLoaInput{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-10",
		Reason:    "vacation",
	})
	require.NoError(t, err)

	reviewed, err := svc.ReviewLoa(context.Background(), req.ID, domain.StatusRejected, reviewer.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), reviewed.Status)

	var ns []models.Notification
	require.NoError(t, db.Find(&ns).Error)
	require.Len(t, ns, 1)
	assert.Equal(t, "loa_rejected", ns[0].Type)
	assert.Equal(t, "loa", ns[0].RequestKind)
}

func TestReview_InvalidStatus(t *testing.T) {
	svc, _, owner, reviewer := newRequestFixture(t)

	req, err := svc.CreateTransfer(context.Background(), owner, &CreateTransferInput{
		RequestedDepartment:    "Marketing",
		RequestedSubDepartment: "Outreach",
	})
	require.NoError(t, err)

	for _, status := range []domain.RequestStatus{"Pending", "approved", "anything", ""} {
		_, err := svc.ReviewTransfer(context.Background(), req.ID, status, reviewer.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus, "status %q", status)
	}
}

func TestReview_UnknownRequest(t *testing.T) {
	svc, _, _, reviewer := newRequestFixture(t)

	_, err := svc.ReviewTransfer(context.Background(), 9999, domain.StatusApproved, reviewer.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	_, err = svc.ReviewLoa(context.Background(), 9999, domain.StatusRejected, reviewer.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

// Re-reviewing an already-decided request stays permitted and re-notifies.
func TestReview_RedecisionRenotifies(t *testing.T) {
	svc, db, owner, reviewer := newRequestFixture(t)

	req, err := svc.CreateTransfer(context.Background(), owner, &CreateTransferInput{
		RequestedDepartment:    "Marketing",
		RequestedSubDepartment: "Outreach",
	})
	require.NoError(t, err)

	_, err = svc.ReviewTransfer(context.Background(), req.ID, domain.StatusApproved, reviewer.ID)
	require.NoError(t, err)
	reviewed, err := svc.ReviewTransfer(context.Background(), req.ID, domain.StatusRejected, reviewer.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRejected), reviewed.Status)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestListMine_ScopedToAccount(t *testing.T) {
	svc, _, owner, reviewer := newRequestFixture(t)

	_, err := svc.CreateTransfer(context.Background(), owner, &CreateTransferInput{
		RequestedDepartment:    "Marketing",
		RequestedSubDepartment: "Outreach",
	})
	require.NoError(t, err)
	_, err = svc.CreateTransfer(context.Background(), reviewer, &CreateTransferInput{
		RequestedDepartment:    "Operations",
		RequestedSubDepartment: "Logistics",
	})
	require.NoError(t, err)

	mine, err := svc.ListMyTransfers(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, owner.ID, mine[0].AccountID)

	all, total, err := svc.ListTransfers(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.EqualValues(t, 2, total)
}

func TestListAll_Pagination(t *testing.T) {
	svc, _, owner, _ := newRequestFixture(t)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateLoa(context.Background(), owner, &CreateLoaInput{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-10",
			Reason:    "vacation",
		})
		require.NoError(t, err)
	}

	page, total, err := svc.ListLoas(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.EqualValues(t, 5, total)

	rest, _, err := svc.ListLoas(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
