package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"garden-members-backend/internal/domains/member"
	"garden-members-backend/internal/shared/notice"
	"garden-members-backend/internal/shared/response"
)

// noticeCookieMaxAge keeps the client token around long enough for a
// normal submit-then-list round trip and then some.
const noticeCookieMaxAge = 7 * 24 * 3600

type Handler struct {
	svc     member.Service
	notices *notice.Queue
}

func NewHandler(svc member.Service, notices *notice.Queue) *Handler {
	return &Handler{svc: svc, notices: notices}
}

// noticeToken returns the client's notice token, minting a cookie on
// first contact.
func (h *Handler) noticeToken(c *gin.Context) string {
	token, err := c.Cookie(notice.CookieName)
	if err == nil && token != "" {
		return token
	}
	token = uuid.New().String()
	c.SetCookie(notice.CookieName, token, noticeCookieMaxAge, "/", "", false, true)
	return token
}

// ListMembers returns the filtered member list, newest first.
// GET /members?q=&membership_class=&expired=&join_from=&join_to=&exp_from=&exp_to=
func (h *Handler) ListMembers(c *gin.Context) {
	filter := member.NewListFilter(c.Request.URL.Query(), time.Now())

	members, err := h.svc.ListMembers(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list members")
		response.InternalServerError(c, "Failed to list members")
		return
	}

	today := filter.Today
	dtos := make([]member.MemberDTO, 0, len(members))
	for i := range members {
		dtos = append(dtos, members[i].ToDTO(today))
	}

	meta := &response.Meta{
		Total:   len(dtos),
		Notices: h.notices.Consume(c.Request.Context(), h.noticeToken(c)),
	}
	response.SuccessWithMeta(c, http.StatusOK, dtos, meta)
}

// GetMember returns a single member by id.
// GET /members/:id
func (h *Handler) GetMember(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid member id")
		return
	}

	m, err := h.svc.GetMember(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			response.NotFound(c, "Member not found")
			return
		}
		log.Error().Err(err).Int64("member_id", id).Msg("failed to get member")
		response.InternalServerError(c, "Failed to get member")
		return
	}

	response.Success(c, http.StatusOK, m.ToDTO(time.Now()))
}

// CreateMember registers a member from the submitted form fields.
// POST /members
func (h *Handler) CreateMember(c *gin.Context) {
	var req member.CreateMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.svc.RegisterMember(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, member.ErrValidation) {
			// Rejected write: nothing stored, the caller sees the notice.
			response.BadRequest(c, "Name, membership class and join date are required")
			return
		}
		log.Error().Err(err).Msg("failed to register member")
		response.InternalServerError(c, "Failed to register member")
		return
	}

	h.notices.Push(c.Request.Context(), h.noticeToken(c), "Member registered.")
	response.Success(c, http.StatusCreated, m.ToDTO(time.Now()))
}

// DeleteMember hard-deletes a member by id.
// DELETE /members/:id
func (h *Handler) DeleteMember(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid member id")
		return
	}

	if err := h.svc.DeleteMember(c.Request.Context(), id); err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			response.NotFound(c, "Member not found")
			return
		}
		log.Error().Err(err).Int64("member_id", id).Msg("failed to delete member")
		response.InternalServerError(c, "Failed to delete member")
		return
	}

	h.notices.Push(c.Request.Context(), h.noticeToken(c), "Member deleted.")
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// ExportMembers streams the filtered collection as CSV, oldest first.
// GET /members/export
func (h *Handler) ExportMembers(c *gin.Context) {
	filter := member.NewListFilter(c.Request.URL.Query(), time.Now())

	records, err := h.svc.ExportMembers(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to export members")
		response.InternalServerError(c, "Failed to export members")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="members.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(records); err != nil {
		log.Error().Err(err).Msg("failed to write csv")
	}
}
