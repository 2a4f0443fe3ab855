package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/services/archive"
	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/KirkDiggler/stumped/internal/services/monitor"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const qrSize = 320

type createRoomRequest struct {
	Name         string `json:"name" binding:"required"`
	ChannelID    string `json:"channelId"`
	MaxGuesses   int    `json:"maxGuesses"`
	MaxQuestions int    `json:"maxQuestions"`
	MaxRounds    int    `json:"maxRounds"`
}

type joinRoomRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type textRequest struct {
	Text string `json:"text" binding:"required"`
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

func session(c *gin.Context) string {
	return c.GetString(sessionKey)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// snapshot reads the room as the session sees it. Reads are not activity.
func (h *Handler) snapshot(ctx context.Context, roomID, sessionToken string) (*game.RoomSnapshot, error) {
	out, err := h.game.GetRoom(ctx, &game.GetRoomInput{
		RoomID:       roomID,
		SessionToken: sessionToken,
	})
	if err != nil {
		return nil, err
	}

	return out.Snapshot, nil
}

func (h *Handler) touch(ctx context.Context, roomID, playerID string) {
	if _, err := h.monitor.Touch(ctx, &monitor.TouchInput{
		RoomID:   roomID,
		PlayerID: playerID,
	}); err != nil {
		h.logger.Warn().Err(err).Str("room_id", roomID).Msg("failed to record activity")
	}
}

// respond follows a successful action: it records the caller as active and
// writes their fresh view of the room merged with extra fields
func (h *Handler) respond(c *gin.Context, status int, roomID string, extra gin.H) {
	snap, err := h.snapshot(c.Request.Context(), roomID, session(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	if snap.Viewer != nil {
		h.touch(c.Request.Context(), roomID, snap.Viewer.ID)
	}

	body := gin.H{"snapshot": newSnapshotView(snap)}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// getRoom serves polling clients; polling alone never keeps a player seated
func (h *Handler) getRoom(c *gin.Context) {
	snap, err := h.snapshot(c.Request.Context(), c.Param("id"), session(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": newSnapshotView(snap)})
}

func (h *Handler) getRoomByCode(c *gin.Context) {
	out, err := h.game.GetRoomByCode(c.Request.Context(), &game.GetRoomByCodeInput{
		Code: c.Param("code"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     out.Room.ID,
		"code":   out.Room.Code,
		"status": out.Room.Status.String(),
	})
}

func (h *Handler) createRoom(c *gin.Context) {
	var req createRoomRequest
	if !h.bind(c, &req) {
		return
	}

	out, err := h.game.CreateRoom(c.Request.Context(), &game.CreateRoomInput{
		SessionToken: session(c),
		HostName:     req.Name,
		ChannelID:    req.ChannelID,
		MaxGuesses:   req.MaxGuesses,
		MaxQuestions: req.MaxQuestions,
		MaxRounds:    req.MaxRounds,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.watch(c.Request.Context(), out.Room.ID, out.Player.ID, out.Room.Status)
	h.respond(c, http.StatusCreated, out.Room.ID, nil)
}

func (h *Handler) joinRoom(c *gin.Context) {
	var req joinRoomRequest
	if !h.bind(c, &req) {
		return
	}

	out, err := h.game.JoinRoom(c.Request.Context(), &game.JoinRoomInput{
		Code:         req.Code,
		SessionToken: session(c),
		Name:         req.Name,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.watch(c.Request.Context(), out.Room.ID, out.Player.ID, out.Room.Status)

	status := http.StatusCreated
	if out.AlreadyJoined {
		status = http.StatusOK
	}
	h.respond(c, status, out.Room.ID, gin.H{"alreadyJoined": out.AlreadyJoined})
}

func (h *Handler) watch(ctx context.Context, roomID, playerID string, status models.RoomStatus) {
	if _, err := h.monitor.Watch(ctx, &monitor.WatchInput{
		RoomID:   roomID,
		PlayerID: playerID,
		Status:   status,
	}); err != nil {
		h.logger.Warn().Err(err).Str("room_id", roomID).Msg("failed to watch player")
	}
}

func (h *Handler) startGame(c *gin.Context) {
	roomID := c.Param("id")
	out, err := h.game.StartGame(c.Request.Context(), &game.StartGameInput{
		RoomID:       roomID,
		SessionToken: session(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, gin.H{"chooserId": out.Chooser.ID})
}

func (h *Handler) chooseAnswer(c *gin.Context) {
	var req answerRequest
	if !h.bind(c, &req) {
		return
	}

	roomID := c.Param("id")
	if _, err := h.game.ChooseAnswer(c.Request.Context(), &game.ChooseAnswerInput{
		RoomID:       roomID,
		SessionToken: session(c),
		Answer:       req.Answer,
	}); err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, nil)
}

func (h *Handler) askQuestion(c *gin.Context) {
	var req textRequest
	if !h.bind(c, &req) {
		return
	}

	roomID := c.Param("id")
	out, err := h.game.AskQuestion(c.Request.Context(), &game.AskQuestionInput{
		RoomID:       roomID,
		SessionToken: session(c),
		Text:         req.Text,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, roomID, gin.H{
		"entry":         newEntryView(out.Entry),
		"questionsLeft": out.QuestionsLeft,
	})
}

func (h *Handler) answerQuestion(c *gin.Context) {
	var req answerRequest
	if !h.bind(c, &req) {
		return
	}

	roomID := c.Param("id")
	out, err := h.game.AnswerQuestion(c.Request.Context(), &game.AnswerQuestionInput{
		RoomID:       roomID,
		SessionToken: session(c),
		EntryID:      c.Param("entryId"),
		Answer:       req.Answer,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, gin.H{
		"entry":        newEntryView(out.Entry),
		"turnAdvanced": out.TurnAdvanced,
	})
}

func (h *Handler) submitGuess(c *gin.Context) {
	var req textRequest
	if !h.bind(c, &req) {
		return
	}

	roomID := c.Param("id")
	out, err := h.game.SubmitGuess(c.Request.Context(), &game.SubmitGuessInput{
		RoomID:       roomID,
		SessionToken: session(c),
		Text:         req.Text,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, roomID, gin.H{
		"entry":       newEntryView(out.Entry),
		"correct":     out.Correct,
		"guessesLeft": out.GuessesLeft,
	})
}

func (h *Handler) passTurn(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := h.game.PassTurn(c.Request.Context(), &game.PassTurnInput{
		RoomID:       roomID,
		SessionToken: session(c),
	}); err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, nil)
}

func (h *Handler) advanceRound(c *gin.Context) {
	roomID := c.Param("id")
	out, err := h.game.AdvanceRound(c.Request.Context(), &game.AdvanceRoundInput{
		RoomID:       roomID,
		SessionToken: session(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, gin.H{"gameOver": out.GameOver})
}

func (h *Handler) endGame(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := h.game.EndGame(c.Request.Context(), &game.EndGameInput{
		RoomID:       roomID,
		SessionToken: session(c),
	}); err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, nil)
}

func (h *Handler) restartGame(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := h.game.RestartGame(c.Request.Context(), &game.RestartGameInput{
		RoomID:       roomID,
		SessionToken: session(c),
	}); err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, nil)
}

func (h *Handler) leaveRoom(c *gin.Context) {
	roomID := c.Param("id")
	out, err := h.game.LeavePlayer(c.Request.Context(), &game.LeavePlayerInput{
		RoomID:       roomID,
		SessionToken: session(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if _, err := h.monitor.Unwatch(c.Request.Context(), &monitor.UnwatchInput{
		RoomID:   roomID,
		PlayerID: out.Removed.ID,
	}); err != nil {
		h.logger.Warn().Err(err).Str("room_id", roomID).Msg("failed to unwatch player")
	}

	c.JSON(http.StatusOK, gin.H{
		"playerId":    out.Removed.ID,
		"roomDeleted": out.RoomDeleted,
	})
}

func (h *Handler) kickPlayer(c *gin.Context) {
	roomID := c.Param("id")
	out, err := h.game.KickPlayer(c.Request.Context(), &game.KickPlayerInput{
		RoomID:       roomID,
		SessionToken: session(c),
		PlayerID:     c.Param("playerId"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respond(c, http.StatusOK, roomID, gin.H{"removedId": out.Removed.ID})
}

func (h *Handler) getStandings(c *gin.Context) {
	out, err := h.game.GetStandings(c.Request.Context(), &game.GetStandingsInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    out.Room.Status.String(),
		"standings": newStandingViews(out.Standings),
	})
}

func (h *Handler) listResults(c *gin.Context) {
	out, err := h.archive.ListResults(c.Request.Context(), &archive.ListResultsInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list results")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": newResultViews(out.Results)})
}

// getQRCode renders the room's join link as a PNG
func (h *Handler) getQRCode(c *gin.Context) {
	out, err := h.game.GetRoom(c.Request.Context(), &game.GetRoomInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	png, err := qrcode.Encode(h.joinURL(c, out.Snapshot.Room.Code), qrcode.Medium, qrSize)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to render qr code")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "qr generation failed"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) joinURL(c *gin.Context, code string) string {
	base := h.publicURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = strings.ToLower(proto)
		}
		base = scheme + "://" + c.Request.Host
	}
	return fmt.Sprintf("%s/join/%s", base, code)
}
