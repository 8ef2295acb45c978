package services

import (
	"context"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

// LikeRepository defines methods for like data access
type LikeRepository interface {
	Add(ctx context.Context, userID, lessonID int) error
	Remove(ctx context.Context, userID, lessonID int) error
	Exists(ctx context.Context, userID, lessonID int) (bool, error)
	CountByLesson(ctx context.Context, lessonID int) (int, error)
}

// ShareRepository defines methods for share data access
type ShareRepository interface {
	Exists(ctx context.Context, lessonID, senderID int, recipientEmail string) (bool, error)
	Create(ctx context.Context, lessonID, senderID int, recipientEmail string) error
}

// LikeResult is the outcome of a like action. Liked is only meaningful for
// the check action.
type LikeResult struct {
	Liked bool `json:"liked"`
}

// EngagementService handles likes and shares
type EngagementService struct {
	likes    LikeRepository
	shares   ShareRepository
	identity IdentityResolver
}

// NewEngagementService creates a new engagement service
func NewEngagementService(likes LikeRepository, shares ShareRepository, identity IdentityResolver) *EngagementService {
	return &EngagementService{
		likes:    likes,
		shares:   shares,
		identity: identity,
	}
}

// Like performs the three-way like action: add, remove or check. An
// unknown action is a validation failure before any query is issued.
func (s *EngagementService) Like(ctx context.Context, req *models.LikeRequest) (*LikeResult, error) {
	switch req.Action {
	case models.LikeActionAdd, models.LikeActionRemove, models.LikeActionCheck:
	default:
		return nil, fmt.Errorf("%w: invalid action", apperrors.ErrValidation)
	}

	userID, err := s.identity.GetIDByUID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	switch req.Action {
	case models.LikeActionAdd:
		return nil, s.likes.Add(ctx, userID, req.LessonID)
	case models.LikeActionRemove:
		return nil, s.likes.Remove(ctx, userID, req.LessonID)
	default:
		liked, err := s.likes.Exists(ctx, userID, req.LessonID)
		if err != nil {
			return nil, err
		}
		return &LikeResult{Liked: liked}, nil
	}
}

// LikeCount returns the number of likes on a lesson
func (s *EngagementService) LikeCount(ctx context.Context, lessonID int) (int, error) {
	return s.likes.CountByLesson(ctx, lessonID)
}

// Share shares a lesson with a recipient email. A duplicate
// (lesson, sender, recipient) triple is a conflict; the pre-check answers
// the common case and the unique key covers the race.
func (s *EngagementService) Share(ctx context.Context, req *models.ShareRequest) error {
	senderID, err := s.identity.GetIDByUID(ctx, req.SenderID)
	if err != nil {
		return err
	}

	exists, err := s.shares.Exists(ctx, req.LessonID, senderID, req.RecipientEmail)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("share %w", apperrors.ErrDuplicate)
	}

	return s.shares.Create(ctx, req.LessonID, senderID, req.RecipientEmail)
}
