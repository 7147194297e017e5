package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"citysim/internal/city"
	"citysim/internal/logger"
	"citysim/internal/repository"
	"citysim/internal/service"
)

const defaultPlayer = "mayor"

// Env is what the play commands need to work on a save slot.
type Env struct {
	Saves      repository.CityRepo
	Highscores repository.HighscoreRepo
	Session    service.SessionOptions
	Slot       string
	Log        *logger.Logger
}

// EnvFunc opens an Env on demand. The returned func releases it.
type EnvFunc func(cmd *cobra.Command) (*Env, func(), error)

type playFlags struct {
	slot   string
	player string
}

// NewPlayCmd builds the `play` command tree. Every mutating subcommand loads
// the slot (founding a new city when it is empty), applies one change and
// saves the result back.
func NewPlayCmd(open EnvFunc) *cobra.Command {
	flags := &playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the city stored in a save slot",
	}
	cmd.PersistentFlags().StringVar(&flags.slot, "slot", "", "save slot (defaults to sim.slot)")
	cmd.PersistentFlags().StringVar(&flags.player, "player", defaultPlayer, "name recorded in the highscore table")

	cmd.AddCommand(
		newNewCmd(open, flags),
		newBuildCmd(open, flags),
		newRateCmd(open, flags, "tax", "Set the income tax rate (0..0.40)", (*service.GameSession).SetTaxRate),
		newRateCmd(open, flags, "vat", "Set the VAT rate (0..0.25)", (*service.GameSession).SetVatRate),
		newTickCmd(open, flags),
		newStatusCmd(open, flags),
		newEventsCmd(open, flags),
		newCatalogCmd(),
		newHighscoresCmd(open),
		newSlotsCmd(open),
	)
	return cmd
}

// game is one command's view of a slot.
type game struct {
	env     *Env
	slot    string
	player  string
	out     io.Writer
	session *service.GameSession
	saves   *service.SaveService
}

func openGame(cmd *cobra.Command, open EnvFunc, flags *playFlags) (*game, func(), error) {
	env, closeEnv, err := open(cmd)
	if err != nil {
		return nil, nil, err
	}
	slot := flags.slot
	if slot == "" {
		slot = env.Slot
	}
	session := service.NewGameSession(env.Session, nil, env.Log)
	return &game{
		env:     env,
		slot:    slot,
		player:  flags.player,
		out:     cmd.OutOrStdout(),
		session: session,
		saves:   service.NewSaveService(session, env.Saves, env.Log),
	}, closeEnv, nil
}

// load installs the saved city, keeping the fresh one when the slot is empty.
func (g *game) load(ctx context.Context) error {
	_, err := g.saves.Load(ctx, g.slot)
	if errors.Is(err, repository.ErrSaveNotFound) {
		caution.Fprintf(g.out, "Slot %q is empty, founding a new city.\n", g.slot)
		return nil
	}
	return err
}

func (g *game) save(ctx context.Context) error {
	_, err := g.saves.Save(ctx, g.slot)
	return err
}

// run loads the slot, applies fn and saves.
func run(cmd *cobra.Command, open EnvFunc, flags *playFlags, fn func(g *game) error) error {
	g, closeEnv, err := openGame(cmd, open, flags)
	if err != nil {
		return err
	}
	defer closeEnv()

	ctx := cmd.Context()
	if err := g.load(ctx); err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}
	return g.save(ctx)
}

// gameOverError explains how to continue once the city is lost.
func gameOverError(slot string) error {
	return fmt.Errorf("%w: start again with `play new --slot %s`", service.ErrGameOver, slot)
}

func newNewCmd(open EnvFunc, flags *playFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Found a new city, replacing the slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, closeEnv, err := openGame(cmd, open, flags)
			if err != nil {
				return err
			}
			defer closeEnv()

			st := g.session.NewCity()
			if err := g.save(cmd.Context()); err != nil {
				return err
			}
			good.Fprintf(g.out, "Founded a new city in slot %q with %d families and a budget of %d.\n",
				g.slot, st.City.Families, st.City.Budget)
			return nil
		},
	}
}

func newBuildCmd(open EnvFunc, flags *playFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build <type>",
		Short: "Construct a building (see `play catalog`)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bt, err := city.ParseBuildingType(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}
			return run(cmd, open, flags, func(g *game) error {
				res, err := g.session.Build(bt)
				if errors.Is(err, service.ErrGameOver) {
					return gameOverError(g.slot)
				}
				if err != nil {
					return err
				}
				good.Fprintf(g.out, "Built %s #%d for %d. Budget is now %d.\n",
					bt.Name(), res.Building.ID, bt.Cost(), res.Budget)
				return nil
			})
		},
	}
}

func newRateCmd(open EnvFunc, flags *playFlags, name, short string, set func(*service.GameSession, float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <rate>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: rate %q is not a number", service.ErrInvalidArgument, args[0])
			}
			return run(cmd, open, flags, func(g *game) error {
				applied := set(g.session, rate)
				if applied != rate {
					caution.Fprintf(g.out, "Requested %s rate %s was clamped.\n", name, pct(rate))
				}
				good.Fprintf(g.out, "%s rate set to %s.\n", name, pct(applied))
				return nil
			})
		},
	}
}

func newTickCmd(open EnvFunc, flags *playFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tick [days]",
		Short: "Advance the simulation, one day by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: days %q is not a number", service.ErrInvalidArgument, args[0])
				}
				days = v
			}
			return run(cmd, open, flags, func(g *game) error {
				res, err := g.session.Advance(days)
				if errors.Is(err, service.ErrGameOver) {
					return gameOverError(g.slot)
				}
				if err != nil {
					return err
				}
				for _, r := range res.Reports {
					renderDay(g.out, r)
				}
				if !res.Continue {
					renderGameOver(g.out, res.Outcome, res.Score)
					return g.submitScore(cmd.Context())
				}
				return nil
			})
		},
	}
}

// submitScore records a finished game. A missing highscore table only warns.
func (g *game) submitScore(ctx context.Context) error {
	if g.env.Highscores == nil {
		return nil
	}
	h, err := service.NewHighscoreService(g.session, g.env.Highscores).SubmitScore(ctx, g.player)
	if err != nil {
		caution.Fprintf(g.out, "Could not record highscore: %v\n", err)
		return nil
	}
	good.Fprintf(g.out, "Recorded highscore #%d for %s.\n", h.ID, h.Name)
	return nil
}

func newStatusCmd(open EnvFunc, flags *playFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the city report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, closeEnv, err := openGame(cmd, open, flags)
			if err != nil {
				return err
			}
			defer closeEnv()
			if err := g.load(cmd.Context()); err != nil {
				return err
			}

			st, err := service.NewMonitoringService(g.session).GetStats(cmd.Context())
			if err != nil {
				return err
			}
			renderStats(g.out, g.slot, st)
			if outcome := g.session.Outcome(); outcome != service.OutcomeNone {
				renderGameOver(g.out, outcome, st.Score)
			}
			return nil
		},
	}
}

func newEventsCmd(open EnvFunc, flags *playFlags) *cobra.Command {
	var (
		tag     string
		recent  int
		notable bool
	)
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the event log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, closeEnv, err := openGame(cmd, open, flags)
			if err != nil {
				return err
			}
			defer closeEnv()
			if err := g.load(cmd.Context()); err != nil {
				return err
			}

			if notable {
				var entries []string
				g.session.Read(func(c *city.City) {
					entries = c.EventLog().Notable()
				})
				if recent > 0 && len(entries) > recent {
					entries = entries[len(entries)-recent:]
				}
				renderEvents(g.out, entries)
				return nil
			}

			entries, err := service.NewEventLogService(g.session).List(cmd.Context(), service.LogFilter{Tag: tag, Recent: recent})
			if err != nil {
				return err
			}
			renderEvents(g.out, entries)
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only entries containing this tag, e.g. FIRE or WARNING")
	cmd.Flags().IntVar(&recent, "recent", city.DefaultRecentEvents, "show only the last n entries, 0 for all")
	cmd.Flags().BoolVar(&notable, "notable", false, "only disasters, grants, warnings and critical entries")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List building types with cost, upkeep and capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderCatalog(cmd.OutOrStdout())
			return nil
		},
	}
}

func newHighscoresCmd(open EnvFunc) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "highscores",
		Short: "Show the best finished cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, closeEnv, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeEnv()

			scores, err := env.Highscores.Top(cmd.Context(), limit)
			if err != nil {
				return err
			}
			renderHighscores(cmd.OutOrStdout(), scores)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "entries to show")
	return cmd
}

func newSlotsCmd(open EnvFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List saved cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, closeEnv, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeEnv()

			slots, err := env.Saves.ListSlots(cmd.Context())
			if err != nil {
				return err
			}
			renderSlots(cmd.OutOrStdout(), slots)
			return nil
		},
	}
}
