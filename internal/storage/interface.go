package storage

import (
	"context"

	"github.com/dernekapp/memberregistry-go/internal/model"
)

// MemberStore defines the interface for member persistence
type MemberStore interface {
	// ListMembers returns every member in one round trip, ordered by
	// creation time then identity number.
	ListMembers(ctx context.Context) ([]*model.Member, error)

	// GetMember looks a member up by identity number. An absent row is
	// reported as model.ErrMemberNotFound; any other error is a fault.
	GetMember(ctx context.Context, id model.TCID) (*model.Member, error)

	// InsertMember stores a new member and returns the stored row with the
	// store-assigned creation timestamp. An identity number that already
	// exists is rejected with model.ErrMemberExists.
	InsertMember(ctx context.Context, member *model.Member) (*model.Member, error)

	// UpdateMember overwrites the mutable fields of an existing member and
	// returns the post-update row. The identity number is never written.
	UpdateMember(ctx context.Context, id model.TCID, update model.MemberUpdate) (*model.Member, error)

	// DeleteMember removes a member. Deleting an absent id is not an error.
	DeleteMember(ctx context.Context, id model.TCID) error
}
