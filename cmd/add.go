package cmd

import (
	"context"
	"fmt"

	"mod-manager/core/config"
	"mod-manager/core/curseforge"
	"mod-manager/core/database"
	"mod-manager/core/github"
	"mod-manager/core/logger"
	"mod-manager/core/modrinth"
	"mod-manager/core/profile"
	"mod-manager/feature/add"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	noChecksFlag          bool
	ignoreGameVersionFlag bool
	ignoreModLoaderFlag   bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <identifier>...",
	Short: "Add mods to the active profile",
	Long: `Resolves each identifier against CurseForge (numeric project id),
GitHub (owner/repo) or Modrinth (project id or slug), checks compatibility
with the active profile, and records the mod. Failures of individual
identifiers never abort the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd.Context(), args)
	},
}

func init() {
	RootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVar(&noChecksFlag, "no-checks", false, "skip all compatibility checks")
	addCmd.Flags().BoolVar(&ignoreGameVersionFlag, "ignore-game-version", false, "do not check the game version")
	addCmd.Flags().BoolVar(&ignoreModLoaderFlag, "ignore-mod-loader", false, "do not check the mod loader")
}

func runAdd(ctx context.Context, identifiers []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l = logger.WithOperationID(l)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to profile database: %w", err)
	}

	store := profile.NewStore(db)
	if err := store.Migrate(); err != nil {
		return err
	}

	prof, err := store.Active(ctx)
	if err != nil {
		return fmt.Errorf("no active profile; create one with 'mod-manager profile create': %w", err)
	}

	checks := add.ChecksFrom(!noChecksFlag, !ignoreGameVersionFlag, !ignoreModLoaderFlag)

	provider := add.NewModProvider(
		modrinth.NewClient(cfg.Modrinth),
		curseforge.NewClient(cfg.CurseForge),
		github.NewClient(cfg.GitHub),
		checks,
		prof,
		l,
	)

	l.Info("adding mods",
		zap.String("profile", prof.Name),
		zap.Int("count", len(identifiers)))

	successes, failures := add.AddMultiple(ctx, provider, identifiers)

	if len(successes) > 0 {
		if err := store.Save(ctx, prof); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}

	for _, name := range successes {
		fmt.Printf("Added %s\n", name)
	}
	for _, f := range failures {
		fmt.Printf("Failed to add %q: %v\n", f.Identifier, f.Err)
	}

	if len(successes) == 0 && len(failures) > 0 {
		return fmt.Errorf("all %d mods failed to add", len(failures))
	}
	return nil
}
