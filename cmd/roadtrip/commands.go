package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadtrip/atlas"
	"github.com/katalvlaran/roadtrip/config"
	"github.com/katalvlaran/roadtrip/dfs"
	"github.com/katalvlaran/roadtrip/identity"
	"github.com/katalvlaran/roadtrip/records"
	"github.com/katalvlaran/roadtrip/route"
	"github.com/katalvlaran/roadtrip/session"
)

// app is what every command needs once the inputs are loaded.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	engine *route.Engine
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roadtrip [borders] [capdist] [state_name]",
		Short: "Shortest border routes and capital distances between countries",
		Long: `roadtrip loads three data files (land borders with their lengths,
capital-to-capital distances and historical country names) and answers
route queries between country identifiers such as FRA or DEU.

Input paths are taken, in order of precedence, from the positional
arguments, the --borders/--capdist/--state-names flags, the
ROADTRIP_BORDERS/ROADTRIP_CAPDIST/ROADTRIP_STATE_NAME environment
variables (a .env file is read too) and finally the defaults
borders.txt, capdist.csv and state_name.tsv.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, args)
			if err != nil {
				return err
			}
			s, err := session.New(a.engine, cmd.InOrStdin(), cmd.OutOrStdout(),
				session.WithCacheSize(a.cfg.CacheSize),
				session.WithLogger(a.logger))
			if err != nil {
				return err
			}

			return s.Run(cmd.Context())
		},
	}

	f := root.PersistentFlags()
	f.String("borders", "", "borders file")
	f.String("capdist", "", "capital distance CSV file")
	f.String("state-names", "", "country name TSV file")
	f.String("aliases", "", "YAML alias table merged over the built-in one")
	f.String("log-level", "", "debug, info, warn or error")
	f.String("env-file", "", "read environment from this file instead of .env")

	root.AddCommand(pathCmd())
	root.AddCommand(distanceCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(reachCmd())
	root.AddCommand(countriesCmd())

	return root
}

func pathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest border route between two countries",
		Long: `Print the route between two countries with the least total border
length, one hop per line with the capital distance of each hop.

With --fewest the route with the fewest border crossings is printed
instead, ignoring border lengths.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			from, to := normalizeID(args[0]), normalizeID(args[1])
			out := cmd.OutOrStdout()

			fewest, _ := cmd.Flags().GetBool("fewest")
			if fewest {
				path, err := a.engine.FewestCrossings(from, to)
				if err != nil {
					return err
				}
				if len(path) == 0 {
					fmt.Fprintf(out, "No path exists from %s to %s.\n", from, to)
					return nil
				}
				fmt.Fprintf(out, "%s (%d crossings)\n", strings.Join(path, " --> "), len(path)-1)
				return nil
			}

			it, err := a.engine.Itinerary(from, to)
			if err != nil {
				return err
			}
			if err := session.WriteItinerary(out, it); err != nil {
				return err
			}
			if it.Found() {
				fmt.Fprintf(out, "Total border length: %d km.\n", it.Total)
			}

			return nil
		},
	}
	cmd.Flags().Bool("fewest", false, "minimize border crossings instead of border length")

	return cmd
}

func distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance FROM TO",
		Short: "Print the distance between two capitals",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			from, to := normalizeID(args[0]), normalizeID(args[1])
			km, err := a.engine.Distance(from, to)
			if errors.Is(err, route.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No distance known from %s to %s.\n", from, to)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s: %d km.\n", from, to, km)

			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the loaded data and what the build repaired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			at := a.engine.Atlas()
			out := cmd.OutOrStdout()

			if dump, _ := cmd.Flags().GetBool("dump"); dump {
				_, err := at.WriteTo(out)
				return err
			}

			d := at.Diagnostics
			b, c := at.Borders.Stats(), at.Capitals.Stats()
			fmt.Fprintf(out, "countries:        %d\n", at.Countries.Len())
			fmt.Fprintf(out, "border graph:     %d vertices, %d edges, %d isolated, %d km total\n",
				b.VertexCount, b.EdgeCount, b.IsolatedCount, b.TotalWeight)
			comps, err := dfs.Components(cmd.Context(), at.Borders)
			if err != nil {
				return err
			}
			largest := 0
			if len(comps) > 0 {
				largest = len(comps[0])
			}
			fmt.Fprintf(out, "land masses:      %d (largest %d)\n", len(comps), largest)
			fmt.Fprintf(out, "capital graph:    %d vertices, %d edges\n", c.VertexCount, c.EdgeCount)
			fmt.Fprintf(out, "capital pairs:    %d\n", at.CapitalPairs())
			fmt.Fprintf(out, "unresolved names: %d\n", len(d.Unresolved))
			fmt.Fprintf(out, "merged names:     %d\n", len(d.MergedNames))
			fmt.Fprintf(out, "weight conflicts: %d\n", len(d.Conflicts))
			fmt.Fprintf(out, "self borders:     %d\n", len(d.SelfBorders))
			fmt.Fprintf(out, "unknown codes:    %d\n", len(d.UnknownCapitalCodes))
			for _, r := range d.Reports {
				fmt.Fprintf(out, "%-17s %d accepted, %d skipped\n", string(r.Source)+":", r.Accepted, len(r.Skipped))
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				for _, name := range d.Unresolved {
					fmt.Fprintf(out, "unresolved: %s\n", name)
				}
				for _, c := range d.Conflicts {
					fmt.Fprintf(out, "conflict: %s %s-%s line %d: %d then %d, kept %d\n",
						c.Relation, c.A, c.B, c.Line, c.Previous, c.Declared, c.Kept)
				}
			}

			return nil
		},
	}
	cmd.Flags().Bool("dump", false, "write the canonical text form of both graphs")
	cmd.Flags().BoolP("verbose", "v", false, "list unresolved names and conflicts")

	return cmd
}

func reachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List the countries within a number of border crossings",
		Long: `List every country that can be reached from FROM over land with at
most --crossings border crossings, nearest first. --crossings 0 lists the
whole land mass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			from := normalizeID(args[0])
			limit, _ := cmd.Flags().GetInt("crossings")
			reach, err := a.engine.Reachable(from, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(reach) == 0 {
				fmt.Fprintf(out, "No country can be reached from %s over land.\n", from)
				return nil
			}
			fmt.Fprintf(out, "Reachable from %s:\n", from)
			for _, r := range reach {
				fmt.Fprintf(out, "* %s (%d)\n", r.ID, r.Crossings)
			}

			return nil
		},
	}
	cmd.Flags().IntP("crossings", "n", 1, "maximum number of border crossings, 0 for no limit")

	return cmd
}

func countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List every known country with its validity period and neighbors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			at := a.engine.Atlas()
			adj := at.Borders.AdjacencyList()
			out := cmd.OutOrStdout()
			for _, id := range at.Countries.IDs() {
				rec, _ := at.Countries.Record(id)
				neighbors := "-"
				if nbs := adj[id]; len(nbs) > 0 {
					neighbors = strings.Join(nbs, " ")
				}
				fmt.Fprintf(out, "%s\t%s\t%s..%s\t%s\n",
					rec.ID, rec.Name, formatDate(rec.Start), formatDate(rec.End), neighbors)
			}

			return nil
		},
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "?"
	}
	return t.Format(records.DateLayout)
}

// setup resolves the configuration and loads the atlas. files are the
// positional input paths; flags fill the ones not given.
func setup(cmd *cobra.Command, files []string) (*app, error) {
	flags := cmd.Flags()

	args := make([]string, 3)
	copy(args, files)
	for i, name := range []string{"borders", "capdist", "state-names"} {
		if args[i] == "" && flags.Changed(name) {
			args[i], _ = flags.GetString(name)
		}
	}

	var envFiles []string
	if path, _ := flags.GetString("env-file"); path != "" {
		envFiles = append(envFiles, path)
	}
	cfg, err := config.Load(args, envFiles...)
	if err != nil {
		return nil, err
	}
	if flags.Changed("aliases") {
		cfg.Aliases, _ = flags.GetString("aliases")
	}
	if flags.Changed("log-level") {
		raw, _ := flags.GetString("log-level")
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("%w: --log-level %q", config.ErrInvalid, raw)
		}
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))

	aliases := identity.DefaultAliases()
	if cfg.Aliases != "" {
		extra, err := identity.LoadAliases(cfg.Aliases)
		if err != nil {
			return nil, err
		}
		aliases = aliases.Merge(extra)
	}

	at, err := atlas.Load(atlas.Sources{
		Borders:    cfg.Borders,
		Capitals:   cfg.Capitals,
		StateNames: cfg.StateNames,
	}, atlas.WithLogger(logger), atlas.WithAliases(aliases))
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, engine: route.New(at)}, nil
}

func normalizeID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
