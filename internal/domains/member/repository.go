package member

import "context"

// SortOrder selects the listing order. Listing renders newest first,
// export streams oldest first; both are stable.
type SortOrder string

const (
	OrderIDDesc SortOrder = "id DESC"
	OrderIDAsc  SortOrder = "id ASC"
)

// Repository is the member data access contract.
type Repository interface {
	// CreateMember inserts a member and fills ID, CreatedAt and UpdatedAt.
	CreateMember(ctx context.Context, m *Member) error

	// GetMemberByID fetches a single member.
	// Returns ErrMemberNotFound when the id is unknown.
	GetMemberByID(ctx context.Context, id int64) (*Member, error)

	// ListMembers applies the filter and returns members in the given order.
	ListMembers(ctx context.Context, filter ListFilter, order SortOrder) ([]Member, error)

	// DeleteMember hard-deletes by id.
	// Returns ErrMemberNotFound when nothing was deleted.
	DeleteMember(ctx context.Context, id int64) error
}
