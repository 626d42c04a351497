package member

import "context"

// Service is the member business logic contract.
type Service interface {
	// RegisterMember validates the form, derives the expiry date when no
	// explicit one was given, and stores the member.
	// Returns an error wrapping ErrValidation on a rejected write.
	RegisterMember(ctx context.Context, req CreateMemberRequest) (*Member, error)

	// GetMember fetches a single member by id.
	// Returns ErrMemberNotFound when the id is unknown.
	GetMember(ctx context.Context, id int64) (*Member, error)

	// ListMembers returns the filtered collection, newest first.
	ListMembers(ctx context.Context, filter ListFilter) ([]Member, error)

	// DeleteMember removes a member. Deleting an unknown id is a hard
	// failure (ErrMemberNotFound), not a silent no-op.
	DeleteMember(ctx context.Context, id int64) error

	// ExportMembers applies the identical filter in ascending-id order
	// and returns CSV records, header row included.
	ExportMembers(ctx context.Context, filter ListFilter) ([][]string, error)
}
