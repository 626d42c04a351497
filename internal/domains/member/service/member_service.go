package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"garden-members-backend/internal/domains/member"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"id", "name", "contact", "membership_class", "join_date",
	"expiry_date", "source", "note", "created_at", "updated_at",
}

// newlines in notes would break the single-row-per-member contract.
var noteSanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

type memberService struct {
	repo member.Repository
}

func NewService(repo member.Repository) member.Service {
	return &memberService{repo: repo}
}

func (s *memberService) RegisterMember(ctx context.Context, req member.CreateMemberRequest) (*member.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", member.ErrValidation, err)
	}

	joinDate := member.ParseDate(req.JoinDate)
	if joinDate == nil {
		// Validate() already checks the format; this guards the contract.
		return nil, fmt.Errorf("%w: join date is required", member.ErrValidation)
	}

	class := member.MembershipClass(strings.TrimSpace(req.MembershipClass))

	// The explicit expiry is parsed permissively: a malformed value is
	// treated as absent and the date falls back to derivation.
	explicit := member.ParseDate(req.ExpiryDate)
	expiry := member.ComputeExpiry(joinDate, class, explicit)

	m := &member.Member{
		Name:            strings.TrimSpace(req.Name),
		Contact:         optional(req.Contact),
		MembershipClass: class,
		JoinDate:        *joinDate,
		ExpiryDate:      expiry,
		Source:          optional(req.Source),
		Note:            optional(req.Note),
	}

	if err := s.repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*member.Member, error) {
	return s.repo.GetMemberByID(ctx, id)
}

func (s *memberService) ListMembers(ctx context.Context, filter member.ListFilter) ([]member.Member, error) {
	return s.repo.ListMembers(ctx, filter, member.OrderIDDesc)
}

func (s *memberService) DeleteMember(ctx context.Context, id int64) error {
	return s.repo.DeleteMember(ctx, id)
}

func (s *memberService) ExportMembers(ctx context.Context, filter member.ListFilter) ([][]string, error) {
	members, err := s.repo.ListMembers(ctx, filter, member.OrderIDAsc)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(members)+1)
	records = append(records, csvHeader)
	for i := range members {
		records = append(records, exportRecord(&members[i]))
	}
	return records, nil
}

// exportRecord serializes one member: ISO-8601 dates, empty strings for
// absent fields, note newlines collapsed to spaces.
func exportRecord(m *member.Member) []string {
	expiry := ""
	if m.ExpiryDate != nil {
		expiry = m.ExpiryDate.Format(member.DateLayout)
	}

	note := ""
	if m.Note != nil {
		note = noteSanitizer.Replace(*m.Note)
	}

	return []string{
		strconv.FormatInt(m.ID, 10),
		m.Name,
		derefOrEmpty(m.Contact),
		string(m.MembershipClass),
		m.JoinDate.Format(member.DateLayout),
		expiry,
		derefOrEmpty(m.Source),
		note,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	}
}

// optional trims a form field and maps blank to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
