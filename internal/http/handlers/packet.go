package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/support371/Asset-Packet/internal/http/response"
	"github.com/support371/Asset-Packet/internal/platform/apierr"
	"github.com/support371/Asset-Packet/internal/platform/logger"
	"github.com/support371/Asset-Packet/internal/services"
)

var errPacketNotFound = apierr.NotFound("packet not found")

type PacketHandler struct {
	log     *logger.Logger
	packets services.PacketService
}

func NewPacketHandler(log *logger.Logger, packets services.PacketService) *PacketHandler {
	return &PacketHandler{log: log.With("handler", "PacketHandler"), packets: packets}
}

// GET /api/packets
func (h *PacketHandler) ListPackets(c *gin.Context) {
	list, err := h.packets.ListPackets(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, h.log, fmt.Errorf("list packets: %w", err))
		return
	}
	response.RespondOK(c, list)
}

// GET /api/packets/:id
func (h *PacketHandler) GetPacket(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.RespondAPIError(c, h.log, errPacketNotFound)
		return
	}
	p, err := h.packets.GetPacket(c.Request.Context(), id)
	if err != nil {
		h.respondPacketError(c, err)
		return
	}
	response.RespondOK(c, p)
}

// GET /api/packets/:id/export
func (h *PacketHandler) ExportPacket(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.RespondAPIError(c, h.log, errPacketNotFound)
		return
	}
	md, err := h.packets.ExportMarkdown(c.Request.Context(), id)
	if err != nil {
		h.respondPacketError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="packet-%d.md"`, id))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

// POST /api/packets
func (h *PacketHandler) CreatePacket(c *gin.Context) {
	var in services.CreatePacketInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondAPIError(c, h.log, apierr.BadRequest(fmt.Errorf("invalid request body: %w", err)))
		return
	}
	p, err := h.packets.CreatePacket(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondCreated(c, p)
}

// POST /api/packets/:id/sections
func (h *PacketHandler) CreateSection(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.RespondAPIError(c, h.log, errPacketNotFound)
		return
	}
	var in services.CreateSectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondAPIError(c, h.log, apierr.BadRequest(fmt.Errorf("invalid request body: %w", err)))
		return
	}
	sec, err := h.packets.CreateSection(c.Request.Context(), id, in)
	if err != nil {
		h.respondPacketError(c, err)
		return
	}
	response.RespondCreated(c, sec)
}

// respondPacketError keeps the 404 body stable regardless of how the
// store phrased the miss.
func (h *PacketHandler) respondPacketError(c *gin.Context, err error) {
	if ae := apierr.From(err); ae.Status == http.StatusNotFound {
		response.RespondAPIError(c, h.log, errPacketNotFound)
		return
	}
	response.RespondAPIError(c, h.log, err)
}
