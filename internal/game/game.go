package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/connectfour/internal/input"
	"github.com/samdwyer/connectfour/internal/telemetry"
	"github.com/samdwyer/connectfour/internal/ui"
)

const (
	namePrompt       = "First player's name:"
	secondNamePrompt = "Second player's name:"
	dimensionsPrompt = "Set the board dimensions (Rows x Columns)\nPress Enter for default (6 x 7)"
	gamesPrompt      = "Do you want to play single or multiple games?\n" +
		"For a single game, input 1 or press Enter\n" +
		"Input a number of games:"
)

// Game drives a whole match over a console: setup prompts, moves and results.
type Game struct {
	console  ui.Console
	renderer *ui.Renderer
	logger   *zap.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a game that talks to the player through console.
func New(console ui.Console, renderer *ui.Renderer, opts ...Option) *Game {
	g := &Game{
		console:  console,
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes setup and the match loop. End of input on any prompt, the end
// command and a cancelled ctx all stop the match; "Game over!" is always printed
// last and the result is nil. Only settings that fail validation return an error.
func (g *Game) Run(ctx context.Context) error {
	g.console.Println("Connect Four")

	settings, err := g.setup()
	if err != nil {
		logStop(g.logger, "setup", err)
		g.console.Println("Game over!")
		return nil
	}

	match, err := NewMatch(settings)
	if err != nil {
		g.logger.Error("match not started", zap.Error(err))
		g.console.Println("Game over!")
		return err
	}

	g.printIntro(settings)
	g.play(ctx, match)
	return nil
}

// setup asks for names, board size and number of games.
func (g *Game) setup() (Settings, error) {
	first, err := input.ReadUntilValid(g.console, namePrompt, logged(g.logger, "name", input.ParseName))
	if err != nil {
		return Settings{}, err
	}
	second, err := input.ReadUntilValid(g.console, secondNamePrompt, logged(g.logger, "name", input.ParseName))
	if err != nil {
		return Settings{}, err
	}
	dims, err := input.ReadUntilValid(g.console, dimensionsPrompt, logged(g.logger, "dimensions", input.ParseDimensions))
	if err != nil {
		return Settings{}, err
	}
	games, err := input.ReadUntilValid(g.console, gamesPrompt, logged(g.logger, "games", input.ParseGameCount))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Players: NewPlayers(first, second),
		Rows:    dims.Rows,
		Cols:    dims.Cols,
		Games:   games,
	}, nil
}

func (g *Game) printIntro(s Settings) {
	g.console.Println(fmt.Sprintf("%s VS %s", s.Players[SeatA].Name, s.Players[SeatB].Name))
	g.console.Println(fmt.Sprintf("%d X %d board", s.Rows, s.Cols))
	if s.Games == 1 {
		g.console.Println("Single game")
	} else {
		g.console.Println(fmt.Sprintf("Total %d games", s.Games))
	}
}

// play runs sessions until the match is over.
func (g *Game) play(ctx context.Context, m *Match) {
	tracer := telemetry.Tracer("game")
	s := m.Settings()
	matchID := uuid.NewString()

	ctx, span := tracer.Start(ctx, "match.run", trace.WithAttributes(
		attribute.String("match.id", matchID),
		attribute.Int("match.games", s.Games),
		attribute.Int("board.rows", s.Rows),
		attribute.Int("board.cols", s.Cols),
	))
	defer span.End()

	log := g.logger.With(zap.String("match_id", matchID))
	log.Info("match started",
		zap.String("player_a", s.Players[SeatA].Name),
		zap.String("player_b", s.Players[SeatB].Name),
		zap.Int("rows", s.Rows),
		zap.Int("cols", s.Cols),
		zap.Int("games", s.Games),
	)

	var runErr error
	for !m.Over() {
		session, ok := m.NextSession()
		if !ok {
			break
		}

		outcome, err := g.playSession(ctx, tracer, log, session, s.Games)
		m.Record(outcome)
		g.printResult(m, session)

		if err != nil {
			logStop(log, "game", err)
			if ctxErr := ctx.Err(); ctxErr != nil {
				runErr = ctxErr
			}
		}
	}

	scores := m.Scores()
	span.SetAttributes(
		attribute.Int("match.played", m.Played()),
		attribute.Bool("match.ended", m.Ended()),
		attribute.Int("score.a", scores[SeatA]),
		attribute.Int("score.b", scores[SeatB]),
	)
	if runErr != nil {
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
	}
	log.Info("match finished",
		zap.Int("played", m.Played()),
		zap.Bool("ended_early", m.Ended()),
		zap.Int("score_a", scores[SeatA]),
		zap.Int("score_b", scores[SeatB]),
	)

	g.console.Println("Game over!")
}

// playSession runs one game until it is won, drawn or ended.
func (g *Game) playSession(ctx context.Context, tracer trace.Tracer, log *zap.Logger, session *Session, games int) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "game.play", trace.WithAttributes(
		attribute.Int("game.number", session.Number()),
		attribute.String("game.first_mover", session.Current().Seat.String()),
	))
	defer span.End()

	log = log.With(zap.Int("game", session.Number()))
	log.Info("game started", zap.String("first_mover", session.Current().Name))

	if games > 1 {
		g.console.Println(fmt.Sprintf("Game #%d", session.Number()))
	}
	g.console.Println(g.renderer.Render(session.Board()))

	err := g.moves(ctx, tracer, log, session)
	if err != nil {
		session.End()
	}

	outcome := session.Outcome()
	span.SetAttributes(
		attribute.String("game.outcome", outcome.State.String()),
		attribute.Int("game.moves", session.Moves()),
	)

	fields := []zap.Field{
		zap.Stringer("outcome", outcome.State),
		zap.Int("moves", session.Moves()),
	}
	if winner, ok := session.Winner(); ok {
		fields = append(fields, zap.String("winner", winner.Name))
	}
	log.Info("game finished", fields...)

	return outcome, err
}

// moves prompts the current player until the session reaches a terminal state.
func (g *Game) moves(ctx context.Context, tracer trace.Tracer, log *zap.Logger, session *Session) error {
	for !session.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := session.Current()
		move, err := input.ReadUntilValid(g.console, player.Name+"'s turn:",
			logged(log, "move", func(raw string) (input.Move, error) {
				return input.ParseMove(raw, session.Board())
			}))
		if err != nil {
			return err
		}
		if move.End {
			log.Info("end command", zap.String("player", player.Name))
			session.End()
			return nil
		}

		if err := g.applyMove(ctx, tracer, session, player, move.Column); err != nil {
			return err
		}
		g.console.Println(g.renderer.Render(session.Board()))
	}
	return nil
}

func (g *Game) applyMove(ctx context.Context, tracer trace.Tracer, session *Session, player Player, column int) error {
	_, span := tracer.Start(ctx, "game.move", trace.WithAttributes(
		attribute.String("player", player.Name),
		attribute.Int("column", column),
	))
	defer span.End()

	at, err := session.Apply(column)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("apply column %d: %w", column, err)
	}

	span.SetAttributes(
		attribute.Int("row", at.Row),
		attribute.Bool("win", session.State() == StateWon),
	)
	return nil
}

// printResult announces a won or drawn game followed by the running score.
func (g *Game) printResult(m *Match, session *Session) {
	switch session.State() {
	case StateWon:
		winner, _ := session.Winner()
		g.console.Println(fmt.Sprintf("Player %s won", winner.Name))
	case StateDraw:
		g.console.Println("It is a draw")
	default:
		return
	}

	players := m.Settings().Players
	g.console.Println(fmt.Sprintf("Score\n%s: %d %s: %d",
		players[SeatA].Name, m.Score(SeatA),
		players[SeatB].Name, m.Score(SeatB)))
}

// logged reports labeled input errors at debug level before handing them back.
func logged[T any](log *zap.Logger, prompt string, classify func(string) (T, error)) func(string) (T, error) {
	return func(raw string) (T, error) {
		value, err := classify(raw)
		var inputErr *input.Error
		if errors.As(err, &inputErr) {
			log.Debug("invalid input",
				zap.String("prompt", prompt),
				zap.Stringer("kind", inputErr.Kind),
				zap.String("raw", raw),
			)
		}
		return value, err
	}
}

func logStop(log *zap.Logger, stage string, err error) {
	if errors.Is(err, input.ErrEndOfInput) {
		log.Info("input ended", zap.String("stage", stage))
		return
	}
	log.Warn("match stopped", zap.String("stage", stage), zap.Error(err))
}
