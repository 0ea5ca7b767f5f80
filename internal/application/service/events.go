package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventAccountRegistered  = "account.registered"
	EventBasicInfoUpdated   = "portfolio.basic_info_updated"
	EventSkillUpserted      = "portfolio.skill_upserted"
	EventSkillDeleted       = "portfolio.skill_deleted"
	EventProjectAdded       = "portfolio.project_added"
	EventProjectDeleted     = "portfolio.project_deleted"
	EventSocialLinksUpdated = "portfolio.social_links_updated"
	EventPictureUploaded    = "portfolio.picture_uploaded"
)

type Event struct {
	Type      string    `json:"type"`
	AccountID uuid.UUID `json:"account_id"`
	At        time.Time `json:"at"`
}

// EventPublisher emits domain events for downstream consumers. Publishing is
// best-effort: callers log failures and carry on, the request never fails on
// a broker error.
type EventPublisher interface {
	PublishAccountEvent(ctx context.Context, e Event) error
	PublishPortfolioEvent(ctx context.Context, e Event) error
}
