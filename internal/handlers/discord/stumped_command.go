package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/stumped/internal/models"
	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/KirkDiggler/stumped/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// CommandName is the slash command every action hangs off
const CommandName = "stumped"

const (
	actionNew       = "new"
	actionJoin      = "join"
	actionStart     = "start"
	actionSecret    = "secret"
	actionAsk       = "ask"
	actionReply     = "reply"
	actionGuess     = "guess"
	actionPass      = "pass"
	actionNext      = "next"
	actionEnd       = "end"
	actionRestart   = "restart"
	actionLeave     = "leave"
	actionKick      = "kick"
	actionStatus    = "status"
	actionStandings = "standings"
)

const (
	optionCode      = "code"
	optionTeam      = "team"
	optionQuestion  = "question"
	optionAnswer    = "answer"
	optionEntry     = "id"
	optionPlayer    = "player"
	optionGuesses   = "guesses"
	optionQuestions = "questions"
	optionRounds    = "rounds"
)

var (
	ErrNilCommandConfig = errors.New("command config cannot be nil")
	ErrNilGame          = errors.New("game service cannot be nil")
	ErrNilMessaging     = errors.New("messaging service cannot be nil")
)

// CommandConfig holds the dependencies of the /stumped command
type CommandConfig struct {
	Game      game.Service
	Messaging messaging.Service
	Logger    zerolog.Logger
}

// request is one slash command or button press reduced to what the game
// service needs. The Discord user ID doubles as the session token.
type request struct {
	action    string
	channelID string
	userID    string
	userName  string

	// text carries the code, team, question or answer option
	text    string
	entryID string
	target  string

	guesses   int
	questions int
	rounds    int
}

// StumpedCommand handles the /stumped command
type StumpedCommand struct {
	BaseCommand
	game      game.Service
	messaging messaging.Service
	logger    zerolog.Logger
}

// NewStumpedCommand creates a new stumped command handler
func NewStumpedCommand(cfg *CommandConfig) (*StumpedCommand, error) {
	if cfg == nil {
		return nil, ErrNilCommandConfig
	}

	if cfg.Game == nil {
		return nil, ErrNilGame
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	one := 1.0
	setting := func(name, description string, max int) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        name,
			Description: description,
			MinValue:    &one,
			MaxValue:    float64(max),
		}
	}
	text := func(name, description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        name,
			Description: description,
			Required:    required,
		}
	}
	sub := func(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        name,
			Description: description,
			Options:     options,
		}
	}

	answer := text(optionAnswer, "Your reply", true)
	answer.Choices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Yes", Value: models.AnswerYes},
		{Name: "No", Value: models.AnswerNo},
		{Name: "Maybe", Value: models.AnswerMaybe},
	}

	return &StumpedCommand{
		BaseCommand: BaseCommand{
			Name:        CommandName,
			Description: "Guess the secret football team",
			Options: []*discordgo.ApplicationCommandOption{
				sub(actionNew, "Open a room in this channel",
					setting(optionGuesses, "Guesses per player each round", game.MaxMaxGuesses),
					setting(optionQuestions, "Questions per player each round", game.MaxMaxQuestions),
					setting(optionRounds, "Times each player chooses", game.MaxMaxRounds),
				),
				sub(actionJoin, "Join the room in this channel or one by code",
					text(optionCode, "Room code", false),
				),
				sub(actionStart, "Kick off the game (host)"),
				sub(actionSecret, "Pick the secret team (chooser)",
					text(optionTeam, "The team to guess", true),
				),
				sub(actionAsk, "Ask the chooser a question",
					text(optionQuestion, "A yes or no question", true),
				),
				sub(actionReply, "Answer a question (chooser)",
					answer,
					text(optionEntry, "Question id, defaults to the oldest open question", false),
				),
				sub(actionGuess, "Guess the secret team",
					text(optionTeam, "Your guess", true),
				),
				sub(actionPass, "Pass the rest of your turn"),
				sub(actionNext, "Start the next round (host)"),
				sub(actionEnd, "End the game now (host)"),
				sub(actionRestart, "Play again with the same room (host)"),
				sub(actionLeave, "Leave the room"),
				sub(actionKick, "Remove a player (host)",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        optionPlayer,
						Description: "Player to remove",
						Required:    true,
					},
				),
				sub(actionStatus, "Show the room"),
				sub(actionStandings, "Show the scoreboard"),
			},
		},
		game:      cfg.Game,
		messaging: cfg.Messaging,
		logger:    cfg.Logger.With().Str("component", "discord").Logger(),
	}, nil
}

// Handle processes a Discord interaction for the stumped command
func (c *StumpedCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	req, ok := commandRequest(i)
	if !ok {
		return nil
	}

	return s.InteractionRespond(i.Interaction, c.respond(context.Background(), req))
}

// HandleComponent processes the buttons the command attaches to its messages
func (c *StumpedCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	req, ok := componentRequest(i)
	if !ok {
		return s.InteractionRespond(i.Interaction, ephemeralResponse("That button no longer does anything."))
	}

	return s.InteractionRespond(i.Interaction, c.respond(context.Background(), req))
}

func commandRequest(i *discordgo.InteractionCreate) (*request, bool) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil, false
	}

	data := i.ApplicationCommandData()
	if data.Name != CommandName || len(data.Options) == 0 {
		return nil, false
	}

	sub := data.Options[0]
	req := &request{
		action:    sub.Name,
		channelID: i.ChannelID,
	}
	req.userID, req.userName = interactionUser(i)

	for _, opt := range sub.Options {
		switch opt.Name {
		case optionCode, optionTeam, optionQuestion, optionAnswer:
			req.text = opt.StringValue()
		case optionEntry:
			req.entryID = opt.StringValue()
		case optionPlayer:
			if user := opt.UserValue(nil); user != nil {
				req.target = user.ID
			}
		case optionGuesses:
			req.guesses = int(opt.IntValue())
		case optionQuestions:
			req.questions = int(opt.IntValue())
		case optionRounds:
			req.rounds = int(opt.IntValue())
		}
	}

	return req, true
}

func componentRequest(i *discordgo.InteractionCreate) (*request, bool) {
	if i.Type != discordgo.InteractionMessageComponent {
		return nil, false
	}

	req := &request{channelID: i.ChannelID}
	req.userID, req.userName = interactionUser(i)

	customID := i.MessageComponentData().CustomID
	switch customID {
	case ButtonJoin:
		req.action = actionJoin
	case ButtonStart:
		req.action = actionStart
	case ButtonPass:
		req.action = actionPass
	case ButtonStatus:
		req.action = actionStatus
	case ButtonNext:
		req.action = actionNext
	default:
		answer, entryID, ok := parseReplyButton(customID)
		if !ok {
			return nil, false
		}
		req.action = actionReply
		req.text = answer
		req.entryID = entryID
	}

	return req, true
}

// respond runs the request and renders the outcome. Failures become an
// ephemeral note to the user who acted.
func (c *StumpedCommand) respond(ctx context.Context, req *request) *discordgo.InteractionResponse {
	if req.userID == "" {
		return errorResponse("Who's there?", "Could not tell who sent that.")
	}

	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return c.failure(ctx, req, err)
	}
	return resp
}

func (c *StumpedCommand) dispatch(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	switch req.action {
	case actionNew:
		return c.newRoom(ctx, req)
	case actionJoin:
		return c.joinRoom(ctx, req)
	case actionStart:
		return c.startGame(ctx, req)
	case actionSecret:
		return c.chooseSecret(ctx, req)
	case actionAsk:
		return c.askQuestion(ctx, req)
	case actionReply:
		return c.answerQuestion(ctx, req)
	case actionGuess:
		return c.submitGuess(ctx, req)
	case actionPass:
		return c.passTurn(ctx, req)
	case actionNext:
		return c.advanceRound(ctx, req)
	case actionEnd:
		return c.endGame(ctx, req)
	case actionRestart:
		return c.restartGame(ctx, req)
	case actionLeave:
		return c.leaveRoom(ctx, req)
	case actionKick:
		return c.kickPlayer(ctx, req)
	case actionStatus:
		return c.status(ctx, req)
	case actionStandings:
		return c.standings(ctx, req)
	default:
		return ephemeralResponse(fmt.Sprintf("Unknown action %q.", req.action)), nil
	}
}

func (c *StumpedCommand) failure(ctx context.Context, req *request, err error) *discordgo.InteractionResponse {
	log := c.logger.With().
		Str("action", req.action).
		Str("channel_id", req.channelID).
		Err(err).
		Logger()

	category := game.Category(err)
	if category == "" || category == game.ErrStorage {
		log.Error().Msg("command failed")
	} else {
		log.Debug().Msg("command rejected")
	}

	msg, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return errorResponse("Something went wrong", "Try again in a moment.")
	}
	return errorResponse(msg.Title, msg.Message)
}

// channelRoom finds the room opened from the request's channel
func (c *StumpedCommand) channelRoom(ctx context.Context, channelID string) (*models.Room, error) {
	out, err := c.game.GetRoomByChannel(ctx, &game.GetRoomByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, err
	}
	return out.Room, nil
}

func (c *StumpedCommand) newRoom(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	existing, err := c.channelRoom(ctx, req.channelID)
	switch {
	case err == nil && !existing.Status.IsGameOver():
		return ephemeralResponse(fmt.Sprintf(
			"There's already a room in this channel (code **%s**). Use `/stumped join` or finish it first.",
			existing.Code,
		)), nil
	case err != nil && !errors.Is(err, game.ErrRoomNotFound):
		return nil, err
	}

	out, err := c.game.CreateRoom(ctx, &game.CreateRoomInput{
		SessionToken: req.userID,
		HostName:     req.userName,
		ChannelID:    req.channelID,
		MaxGuesses:   req.guesses,
		MaxQuestions: req.questions,
		MaxRounds:    req.rounds,
	})
	if err != nil {
		return nil, err
	}

	status, err := c.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Status:      out.Room.Status,
		PlayerCount: 1,
	})
	if err != nil {
		return nil, err
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Room %s is open", out.Room.Code),
		Description: status.Message,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Host",
				Value:  out.Player.Name,
				Inline: true,
			},
			{
				Name: "Settings",
				Value: fmt.Sprintf("%d guesses, %d questions, %d rounds each",
					out.Room.MaxGuesses, out.Room.MaxQuestions, out.Room.MaxRounds),
				Inline: true,
			},
		},
	}

	return embedResponse(embed, lobbyButtons()...), nil
}

func (c *StumpedCommand) joinRoom(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	code := req.text
	if code == "" {
		room, err := c.channelRoom(ctx, req.channelID)
		if err != nil {
			return nil, err
		}
		code = room.Code
	}

	out, err := c.game.JoinRoom(ctx, &game.JoinRoomInput{
		Code:         code,
		SessionToken: req.userID,
		Name:         req.userName,
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messaging.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		PlayerName:    out.Player.Name,
		Status:        out.Room.Status,
		AlreadyJoined: out.AlreadyJoined,
	})
	if err != nil {
		return nil, err
	}

	if out.AlreadyJoined {
		return ephemeralResponse(msg.Message), nil
	}
	return messageResponse(msg.Message), nil
}

func (c *StumpedCommand) startGame(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.StartGame(ctx, &game.StartGameInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(choosingEmbed("Kick off!", out.Room, out.Chooser)), nil
}

func choosingEmbed(title string, room *models.Room, chooser *models.Player) *discordgo.MessageEmbed {
	description := "The chooser is picking the secret team."
	if chooser != nil {
		description = fmt.Sprintf("**%s** is picking the secret team with `/stumped secret`.", chooser.Name)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Round %d", title, room.CurrentRound),
		Description: description,
		Color:       colorSuccess,
	}
}

func (c *StumpedCommand) chooseSecret(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.ChooseAnswer(ctx, &game.ChooseAnswerInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
		Answer:       req.text,
	})
	if err != nil {
		return nil, err
	}

	description := "The secret team is locked in."
	if out.TurnPlayer != nil {
		description += fmt.Sprintf(" **%s** is up: `/stumped ask` or `/stumped guess`.", out.TurnPlayer.Name)
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       "Secret team chosen",
		Description: description,
		Color:       colorInfo,
	}, turnButtons()...), nil
}

func (c *StumpedCommand) askQuestion(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.AskQuestion(ctx, &game.AskQuestionInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
		Text:         req.text,
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s asks", req.userName),
		Description: out.Entry.Text,
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Question %s, %d questions left", out.Entry.ID, out.QuestionsLeft),
		},
	}, replyButtons(out.Entry.ID)...), nil
}

func (c *StumpedCommand) answerQuestion(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	entryID := req.entryID
	if entryID == "" {
		entryID, err = c.oldestOpenQuestion(ctx, room.ID, req.userID)
		if err != nil {
			return nil, err
		}
	}

	out, err := c.game.AnswerQuestion(ctx, &game.AnswerQuestionInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
		EntryID:      entryID,
		Answer:       req.text,
	})
	if err != nil {
		return nil, err
	}

	answer := req.text
	if out.Entry.Answer != nil {
		answer = *out.Entry.Answer
	}

	description := fmt.Sprintf("%q: **%s**", out.Entry.Text, answer)
	if out.TurnAdvanced {
		description += "\nThe turn moves on."
	}

	embed := &discordgo.MessageEmbed{
		Title:       "The chooser answers",
		Description: description,
		Color:       colorInfo,
	}
	return c.withRoundResult(ctx, out.Room, embed)
}

// oldestOpenQuestion picks the first unanswered question of the round
func (c *StumpedCommand) oldestOpenQuestion(ctx context.Context, roomID, sessionToken string) (string, error) {
	out, err := c.game.GetRoom(ctx, &game.GetRoomInput{
		RoomID:       roomID,
		SessionToken: sessionToken,
	})
	if err != nil {
		return "", err
	}

	for _, e := range out.Snapshot.Entries {
		if !e.IsGuess && !e.IsAnswered() {
			return e.ID, nil
		}
	}
	return "", game.ErrEntryNotFound
}

func (c *StumpedCommand) submitGuess(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.SubmitGuess(ctx, &game.SubmitGuessInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
		Text:         req.text,
	})
	if err != nil {
		return nil, err
	}

	result, err := c.messaging.GetGuessResultMessage(ctx, &messaging.GetGuessResultMessageInput{
		PlayerName:  req.userName,
		Guess:       out.Entry.Text,
		Correct:     out.Correct,
		GuessesLeft: out.GuessesLeft,
	})
	if err != nil {
		return nil, err
	}

	color := colorWarning
	if out.Correct {
		color = colorSuccess
	}

	return c.withRoundResult(ctx, out.Room, &discordgo.MessageEmbed{
		Title:       result.Title,
		Description: result.Message,
		Color:       color,
	})
}

func (c *StumpedCommand) passTurn(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.PassTurn(ctx, &game.PassTurnInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s passes.", req.userName)
	if out.TurnPlayer != nil && out.Room != nil && out.Room.Status.IsPlaying() {
		description += fmt.Sprintf(" **%s** is up.", out.TurnPlayer.Name)
	}

	return c.withRoundResult(ctx, out.Room, &discordgo.MessageEmbed{
		Title:       "Pass",
		Description: description,
		Color:       colorInfo,
	})
}

// withRoundResult appends the round summary when the action closed the round
func (c *StumpedCommand) withRoundResult(ctx context.Context, room *models.Room, embed *discordgo.MessageEmbed) (*discordgo.InteractionResponse, error) {
	if room == nil || room.Status.InRound() {
		return embedResponse(embed, turnButtons()...), nil
	}

	out, err := c.game.GetRoom(ctx, &game.GetRoomInput{RoomID: room.ID})
	if err != nil {
		return nil, err
	}
	players := out.Snapshot.Players

	var chooserName string
	if chooser := playerAt(players, room.CurrentChooserIndex); chooser != nil {
		chooserName = chooser.Name
	}

	var winnerName string
	if room.LastWinnerID != "" {
		winnerName = playerName(players, room.LastWinnerID)
	}

	result, err := c.messaging.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		Outcome:     room.LastOutcome,
		Answer:      room.RevealedAnswer,
		WinnerName:  winnerName,
		ChooserName: chooserName,
	})
	if err != nil {
		return nil, err
	}

	var buttons []discordgo.MessageComponent
	if room.Status.IsRoundEnd() {
		buttons = append(buttons, button("Next round", ButtonNext, discordgo.PrimaryButton))
	}

	resp := embedResponse(embed, buttons...)
	resp.Data.Embeds = append(resp.Data.Embeds, &discordgo.MessageEmbed{
		Title:       result.Title,
		Description: result.Message,
		Color:       colorSuccess,
	})
	return resp, nil
}

func (c *StumpedCommand) advanceRound(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.AdvanceRound(ctx, &game.AdvanceRoundInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	})
	if err != nil {
		return nil, err
	}

	if out.GameOver {
		return c.finalStandings(ctx, room.ID, "Full time!")
	}

	return embedResponse(choosingEmbed("Next up:", out.Room, out.Chooser)), nil
}

func (c *StumpedCommand) endGame(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	if _, err := c.game.EndGame(ctx, &game.EndGameInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	}); err != nil {
		return nil, err
	}

	return c.finalStandings(ctx, room.ID, "The host blew the final whistle")
}

func (c *StumpedCommand) finalStandings(ctx context.Context, roomID, title string) (*discordgo.InteractionResponse, error) {
	out, err := c.game.GetStandings(ctx, &game.GetStandingsInput{RoomID: roomID})
	if err != nil {
		return nil, err
	}

	return embedResponse(renderStandings(title, out.Standings)), nil
}

func (c *StumpedCommand) restartGame(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.RestartGame(ctx, &game.RestartGameInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	})
	if err != nil {
		return nil, err
	}

	status, err := c.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Status:      out.Room.Status,
		PlayerCount: len(out.Players),
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Rematch in room %s", out.Room.Code),
		Description: status.Message,
		Color:       colorSuccess,
	}, lobbyButtons()...), nil
}

func (c *StumpedCommand) leaveRoom(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.LeavePlayer(ctx, &game.LeavePlayerInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	})
	if err != nil {
		return nil, err
	}

	if out.RoomDeleted {
		return messageResponse(fmt.Sprintf("%s left and turned off the floodlights. Room %s is closed.", out.Removed.Name, room.Code)), nil
	}
	return messageResponse(fmt.Sprintf("%s left the room.", out.Removed.Name)), nil
}

func (c *StumpedCommand) kickPlayer(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	snapshot, err := c.game.GetRoom(ctx, &game.GetRoomInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	})
	if err != nil {
		return nil, err
	}

	var target *models.Player
	for _, p := range snapshot.Snapshot.Players {
		if p.SessionToken == req.target {
			target = p
			break
		}
	}
	if target == nil {
		return nil, game.ErrPlayerNotFound
	}

	out, err := c.game.KickPlayer(ctx, &game.KickPlayerInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
		PlayerID:     target.ID,
	})
	if err != nil {
		return nil, err
	}

	return messageResponse(fmt.Sprintf("%s was sent off by the host.", out.Removed.Name)), nil
}

func (c *StumpedCommand) status(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.GetRoom(ctx, &game.GetRoomInput{
		RoomID:       room.ID,
		SessionToken: req.userID,
	})
	if err != nil {
		return nil, err
	}

	status, err := c.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Status:      out.Snapshot.Room.Status,
		PlayerCount: len(out.Snapshot.Players),
	})
	if err != nil {
		return nil, err
	}

	// Ephemeral so the chooser can read their own secret
	return ephemeralEmbedResponse(renderRoom(out.Snapshot, status.Message)), nil
}

func (c *StumpedCommand) standings(ctx context.Context, req *request) (*discordgo.InteractionResponse, error) {
	room, err := c.channelRoom(ctx, req.channelID)
	if err != nil {
		return nil, err
	}

	out, err := c.game.GetStandings(ctx, &game.GetStandingsInput{RoomID: room.ID})
	if err != nil {
		return nil, err
	}

	return embedResponse(renderStandings("Standings", out.Standings)), nil
}
