package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"gaugebattle/internal/combat"
	"gaugebattle/internal/config"
	"gaugebattle/internal/util"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	st, err := config.LoadSettings()
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("simsvc", flag.ContinueOnError)
	fs.StringVar(&st.ConfigDir, "config", st.ConfigDir, "config dir")
	fs.StringVar(&st.Encounter, "encounter", st.Encounter, "encounter file inside the config dir")
	fs.StringVar(&st.Out, "out", st.Out, "output file (single) or summary file (batch)")
	fs.Uint64Var(&st.Seed, "seed", st.Seed, "seed")
	fs.IntVar(&st.Runs, "n", st.Runs, "number of simulations")
	fs.IntVar(&st.Workers, "workers", st.Workers, "batch workers")
	fs.IntVar(&st.MaxTurns, "max-turns", st.MaxTurns, "turn bound per battle")
	fs.BoolVar(&st.Record, "log", st.Record, "save full event log when n==1")
	fs.StringVar(&st.LogLevel, "log-level", st.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, err := st.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))

	skillsCfg, runesCfg, roster, encounter, err := loadRoster(st)
	if err != nil {
		return err
	}
	slog.Info("config loaded", "dir", st.ConfigDir, "encounter", encounter.ID,
		"team1", encounter.Team1.Name, "team2", encounter.Team2.Name,
		"skills", len(skillsCfg.Skills), "runes", len(runesCfg.Runes))

	maxTurns := st.MaxTurns
	if encounter.MaxTurns > 0 {
		maxTurns = encounter.MaxTurns
	}
	decider := roster.Decider()

	if st.Runs <= 1 {
		b, err := roster.BuildBattle(encounter, combat.WithRand(util.New(st.Seed)))
		if err != nil {
			return err
		}
		res, err := combat.Run(ctx, b, decider, combat.RunOptions{MaxTurns: maxTurns, Record: st.Record})
		if err != nil {
			return err
		}
		if err := os.WriteFile(st.Out, combat.MarshalPretty(res), 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		slog.Info("single simulation finished", "winner", res.Winner, "turns", res.Turns, "out", st.Out)
		return nil
	}

	sum, err := runBatch(ctx, st, roster, encounter, decider, maxTurns)
	if err != nil {
		return err
	}
	if err := os.WriteFile(st.Out, combat.MarshalPretty(sum), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	slog.Info("batch finished", "runs", st.Runs, "out", filepath.Base(st.Out))
	return nil
}

func loadRoster(st config.Settings) (*config.SkillsConfig, *config.RunesConfig, *combat.Roster, *config.EncounterConfig, error) {
	skillsCfg, runesCfg, combatantsCfg, encounter, err := config.LoadAll(st.ConfigDir, st.Encounter)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	skills, err := combat.NewSkillBook(skillsCfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	runes, err := combat.NewRuneBook(runesCfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	roster, err := combat.NewRoster(combatantsCfg, skills, runes)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return skillsCfg, runesCfg, roster, encounter, nil
}

type batchSummary struct {
	Runs      int                `json:"runs"`
	Team1Rate float64            `json:"team1_win_rate"`
	Team2Rate float64            `json:"team2_win_rate"`
	Undecided int                `json:"undecided"`
	AvgTurns  float64            `json:"avg_turns"`
	AvgCrits  float64            `json:"avg_crits"`
	DamageBy  map[string]float64 `json:"avg_damage_by"`
}

func runBatch(ctx context.Context, st config.Settings, roster *combat.Roster, encounter *config.EncounterConfig, decider combat.Decider, maxTurns int) (batchSummary, error) {
	var (
		mu                 sync.Mutex
		wins1, wins2, none int
		sumTurns, sumCrits int
		damage             = map[string]float64{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(st.Workers, 1))
	for i := 0; i < st.Runs; i++ {
		g.Go(func() error {
			b, err := roster.BuildBattle(encounter, combat.WithRand(util.Derive(st.Seed, i)))
			if err != nil {
				return err
			}
			res, err := combat.Run(gctx, b, decider, combat.RunOptions{
				MaxTurns: maxTurns,
				Logger:   slog.Default().With("run", i),
			})
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			mu.Lock()
			defer mu.Unlock()
			switch b.Winner() {
			case combat.Team1Wins:
				wins1++
			case combat.Team2Wins:
				wins2++
			default:
				none++
			}
			sumTurns += res.Turns
			sumCrits += res.Crits
			for k, v := range res.DamageBy {
				damage[k] += v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return batchSummary{}, err
	}

	n := float64(st.Runs)
	for k := range damage {
		damage[k] /= n
	}
	return batchSummary{
		Runs:      st.Runs,
		Team1Rate: float64(wins1) / n,
		Team2Rate: float64(wins2) / n,
		Undecided: none,
		AvgTurns:  float64(sumTurns) / n,
		AvgCrits:  float64(sumCrits) / n,
		DamageBy:  damage,
	}, nil
}
