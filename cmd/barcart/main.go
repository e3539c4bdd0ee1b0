package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/five82/barcart/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is normal; values already in the environment win.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "barcart: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree. The root command runs the TUI.
func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "barcart",
		Short: "Browse TheCocktailDB drinks in the terminal",
		Long: `barcart loads the TheCocktailDB catalog letter by letter and shows it as a
searchable gallery. Favorites and the selected theme are saved locally.

Without a subcommand the interactive gallery starts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (default ~/.config/barcart/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSearchCmd(&opts))
	root.AddCommand(newFavoritesCmd(&opts))
	root.AddCommand(newCategoriesCmd())
	return root
}

func newSearchCmd(opts *app.Options) *cobra.Command {
	var search app.SearchOptions
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Print drinks matching a query",
		Long: `Load every shard and print the drinks whose name, category, tags,
instructions or ingredients contain the query. Filters combine.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				search.Query = args[0]
			}
			return app.Search(cmd.Context(), *opts, search, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&search.Category, "category", "c", "", "only show this category (see 'barcart categories')")
	cmd.Flags().BoolVarP(&search.FavoritesOnly, "favorites", "f", false, "only show saved favorites")
	return cmd
}

func newFavoritesCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage saved favorites",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print saved favorite ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ListFavorites(*opts, cmd.OutOrStdout())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Save or remove a drink id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ToggleFavorite(*opts, args[0], cmd.OutOrStdout())
		},
	})
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the category filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Categories(cmd.OutOrStdout())
		},
	}
}
