// Package cli exposes the catalog queries as artq sub-commands. Each command
// prints one display line per row to stdout.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"art-catalog-service/internal/catalogsource"
	"art-catalog-service/internal/config"
	"art-catalog-service/internal/core/domain"
	"art-catalog-service/internal/core/services"
)

// EngineLoader builds a query engine from configuration.
type EngineLoader func(ctx context.Context, cfg *config.Config) (*services.QueryEngine, func(), error)

type options struct {
	source   string
	file     string
	logLevel string
}

// NewRootCommand returns the artq command tree. load is called once per
// invocation, after flags have been applied to the loaded configuration.
func NewRootCommand(out io.Writer, load EngineLoader) *cobra.Command {
	opts := &options{}
	var engine *services.QueryEngine
	var release func()

	root := &cobra.Command{
		Use:           "artq",
		Short:         "Query the art catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("source") {
				cfg.Catalog.Source = opts.source
			}
			if cmd.Flags().Changed("file") {
				cfg.Catalog.File = opts.file
				if !cmd.Flags().Changed("source") {
					cfg.Catalog.Source = config.SourceFile
				}
			}

			engine, release, err = load(cmd.Context(), cfg)
			return err
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.source, "source", config.SourceSeed, "catalog source: seed, file or postgres")
	root.PersistentFlags().StringVar(&opts.file, "file", "", "YAML catalog file (implies --source=file)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	lines := func(use, short string, args cobra.PositionalArgs, run func(e *services.QueryEngine, args []string) ([]string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				// Release here rather than in a post-run hook, which cobra skips on error.
				if release != nil {
					defer release()
				}
				result, err := run(engine, args)
				if err != nil {
					return err
				}
				for _, line := range result {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			},
		}
	}

	var country string
	artists := lines("artists", "List artists from a country", cobra.NoArgs,
		func(e *services.QueryEngine, _ []string) ([]string, error) {
			return e.ListArtistsByCountry(country), nil
		})
	artists.Flags().StringVar(&country, "country", "Italy", "country to match exactly")

	root.AddCommand(
		lines("paintings", "List all paintings", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.ListAllPaintings(), nil
			}),
		artists,
		lines("before <year>", "List paintings made before a year", cobra.ExactArgs(1),
			func(e *services.QueryEngine, args []string) ([]string, error) {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return nil, fmt.Errorf("%w: %q", domain.ErrInvalidYear, args[0])
				}
				return e.ListPaintingsBeforeYear(year), nil
			}),
		lines("oldest", "Show the oldest painting", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				p, err := e.FindOldestPainting()
				if err != nil {
					return nil, err
				}
				return []string{p.String()}, nil
			}),
		lines("by-artist <last-name>", "List paintings by an artist's last name", cobra.ExactArgs(1),
			func(e *services.QueryEngine, args []string) ([]string, error) {
				return e.ListPaintingsByArtistLastName(args[0]), nil
			}),
		lines("counts", "Count paintings per country", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.CountPaintingsPerCountry(), nil
			}),
		lines("grouped", "Group artists by country", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.GroupArtistsByCountry(), nil
			}),
		lines("dutch", "List paintings by Dutch artists", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.ListPaintingsByDutchArtists(), nil
			}),
		lines("joined", "List every painting with its artist's country", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.ListAllJoinedWithCountry(), nil
			}),
		lines("french-italian", "List paintings by French or Italian artists", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.ListPaintingsByFrenchOrItalianArtists(), nil
			}),
		lines("by-countries <country>...", "List paintings by artists from any of the countries", cobra.MinimumNArgs(1),
			func(e *services.QueryEngine, args []string) ([]string, error) {
				return e.ListPaintingsByArtistCountries(args...), nil
			}),
		lines("orphans", "List paintings whose artist is unknown", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.ListOrphanedPaintings(), nil
			}),
		lines("countries", "List artist countries", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				return e.ListCountries(), nil
			}),
		lines("stats", "Summarise the catalog", cobra.NoArgs,
			func(e *services.QueryEngine, _ []string) ([]string, error) {
				s := e.Stats()
				return []string{
					fmt.Sprintf("artists: %d", s.Artists),
					fmt.Sprintf("paintings: %d", s.Paintings),
					fmt.Sprintf("join matches: %d", s.JoinMatches),
					fmt.Sprintf("orphans: %d", s.Orphans),
					fmt.Sprintf("countries: %d", s.Countries),
				}, nil
			}),
	)

	return root
}

// LoadEngine opens the configured catalog source and loads it.
func LoadEngine(ctx context.Context, cfg *config.Config) (*services.QueryEngine, func(), error) {
	src, err := catalogsource.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	engine, err := services.NewCatalogService(src.Name, src.Artists, src.Paintings, nil).Engine(ctx)
	if err != nil {
		src.Close()
		return nil, nil, err
	}
	return engine, src.Close, nil
}
