package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Button IDs. Reply buttons append ":<answer>:<entry id>".
const (
	ButtonJoin   = "stumped_join"
	ButtonStart  = "stumped_start"
	ButtonPass   = "stumped_pass"
	ButtonStatus = "stumped_status"
	ButtonNext   = "stumped_next"
	ButtonReply  = "stumped_reply"
)

// maxEntriesShown keeps the status embed inside Discord's field limits
const maxEntriesShown = 10

func button(label, customID string, style discordgo.ButtonStyle) discordgo.Button {
	return discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
	}
}

func lobbyButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		button("Join", ButtonJoin, discordgo.SuccessButton),
		button("Kick off", ButtonStart, discordgo.PrimaryButton),
	}
}

func turnButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		button("Pass", ButtonPass, discordgo.SecondaryButton),
		button("Status", ButtonStatus, discordgo.SecondaryButton),
	}
}

func replyButtons(entryID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		button("Yes", replyButtonID(models.AnswerYes, entryID), discordgo.SuccessButton),
		button("No", replyButtonID(models.AnswerNo, entryID), discordgo.DangerButton),
		button("Maybe", replyButtonID(models.AnswerMaybe, entryID), discordgo.SecondaryButton),
	}
}

func replyButtonID(answer, entryID string) string {
	return ButtonReply + ":" + answer + ":" + entryID
}

// parseReplyButton splits a reply button ID into its answer and entry
func parseReplyButton(customID string) (answer, entryID string, ok bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != ButtonReply || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func playerName(players []*models.Player, id string) string {
	for _, p := range players {
		if p.ID == id {
			return p.Name
		}
	}
	return "someone"
}

func playerAt(players []*models.Player, index int) *models.Player {
	if index < 0 || index >= len(players) {
		return nil
	}
	return players[index]
}

// renderRoom builds the status embed for one viewer. The concealed answer
// only appears when the service left it in the snapshot.
func renderRoom(snapshot *game.RoomSnapshot, statusLine string) *discordgo.MessageEmbed {
	room := snapshot.Room

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Code",
			Value:  room.Code,
			Inline: true,
		},
		{
			Name:   "Status",
			Value:  strings.ReplaceAll(room.Status.String(), "_", " "),
			Inline: true,
		},
	}

	if room.CurrentRound > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Round",
			Value:  fmt.Sprintf("%d of %d", room.CurrentRound, room.MaxRounds*len(snapshot.Players)),
			Inline: true,
		})
	}

	chooser := playerAt(snapshot.Players, room.CurrentChooserIndex)
	turn := playerAt(snapshot.Players, room.CurrentTurnIndex)

	var lines []string
	for _, p := range snapshot.Players {
		var tags []string
		if p.IsHost {
			tags = append(tags, "host")
		}
		if room.Status.InRound() && chooser != nil && chooser.ID == p.ID {
			tags = append(tags, "chooser")
		}
		if room.Status.IsPlaying() && turn != nil && turn.ID == p.ID {
			tags = append(tags, "to play")
		}

		line := fmt.Sprintf("**%s** %d pts, %d guesses, %d questions", p.Name, p.Score, p.GuessesLeft, p.QuestionsLeft)
		if len(tags) > 0 {
			line += " (" + strings.Join(tags, ", ") + ")"
		}
		lines = append(lines, line)
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("Players (%d/%d)", len(snapshot.Players), models.MaxPlayersPerRoom),
		Value: strings.Join(lines, "\n"),
	})

	if entries := renderEntries(snapshot); entries != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "This round",
			Value: entries,
		})
	}

	if room.ConcealedAnswer != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Your secret team",
			Value: room.ConcealedAnswer,
		})
	}

	if room.RevealedAnswer != "" && (room.Status.IsRoundEnd() || room.Status.IsGameOver()) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Last answer",
			Value: room.RevealedAnswer,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Stumped",
		Description: statusLine,
		Color:       colorInfo,
		Fields:      fields,
	}
}

func renderEntries(snapshot *game.RoomSnapshot) string {
	entries := snapshot.Entries
	if len(entries) > maxEntriesShown {
		entries = entries[len(entries)-maxEntriesShown:]
	}

	var lines []string
	for _, e := range entries {
		author := playerName(snapshot.Players, e.AuthorPlayerID)
		switch {
		case e.IsGuess && e.IsCorrect != nil && *e.IsCorrect:
			lines = append(lines, fmt.Sprintf("%s guessed **%s**: correct!", author, e.Text))
		case e.IsGuess:
			lines = append(lines, fmt.Sprintf("%s guessed **%s**: wrong", author, e.Text))
		case e.Answer != nil:
			lines = append(lines, fmt.Sprintf("%s asked %q: %s", author, e.Text, *e.Answer))
		default:
			lines = append(lines, fmt.Sprintf("%s asked %q: waiting for an answer", author, e.Text))
		}
	}
	return strings.Join(lines, "\n")
}

// renderStandings lists the ranked players
func renderStandings(title string, standings []game.Standing) *discordgo.MessageEmbed {
	var lines []string
	for _, s := range standings {
		lines = append(lines, fmt.Sprintf("%d. **%s** %d pts", s.Rank, s.Name, s.Score))
	}

	description := strings.Join(lines, "\n")
	if description == "" {
		description = "Nobody is seated."
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorSuccess,
	}
}
