package cmd

import (
	"context"
	"fmt"

	"mod-manager/core/config"
	"mod-manager/core/database"
	"mod-manager/core/profile"

	"github.com/spf13/cobra"
)

var (
	profileNameFlag        string
	profileGameVersionFlag string
	profileModLoaderFlag   string
	profileOutputDirFlag   string
)

// profileCmd represents the profile command group
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage mod profiles",
	Long:  `Profiles bundle a target game version, mod loader and output directory with the list of recorded mods. Add operations apply to the active profile.`,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfileCreate(cmd.Context())
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfileList(cmd.Context())
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and its recorded mods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfileDelete(cmd.Context(), args[0])
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfileUse(cmd.Context(), args[0])
	},
}

var profileModsCmd = &cobra.Command{
	Use:   "mods",
	Short: "List the mods recorded in the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfileMods(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd, profileListCmd, profileDeleteCmd, profileUseCmd, profileModsCmd)

	profileCreateCmd.Flags().StringVar(&profileNameFlag, "name", "", "profile name (required)")
	profileCreateCmd.Flags().StringVar(&profileGameVersionFlag, "game-version", "", "target Minecraft version")
	profileCreateCmd.Flags().StringVar(&profileModLoaderFlag, "mod-loader", "", "target mod loader (fabric, forge, quilt, neoforge)")
	profileCreateCmd.Flags().StringVar(&profileOutputDirFlag, "output-dir", "", "directory mod files are placed in")
	_ = profileCreateCmd.MarkFlagRequired("name")
}

// openStore loads config, connects the database and migrates the schema.
func openStore() (*profile.Store, *config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to profile database: %w", err)
	}

	store := profile.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func runProfileCreate(ctx context.Context) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	// Unset flags fall back to configured defaults.
	gameVersion := profileGameVersionFlag
	if gameVersion == "" {
		gameVersion = cfg.Profile.GameVersion
	}
	modLoader := profileModLoaderFlag
	if modLoader == "" {
		modLoader = cfg.Profile.ModLoader
	}
	outputDir := profileOutputDirFlag
	if outputDir == "" {
		outputDir = cfg.Profile.OutputDir
	}

	p := &profile.Profile{
		Name:        profileNameFlag,
		GameVersion: gameVersion,
		ModLoader:   modLoader,
		OutputDir:   outputDir,
	}
	if err := store.Create(ctx, p); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	fmt.Printf("Created profile %q (%s, %s)\n", p.Name, p.GameVersion, p.ModLoader)
	return nil
}

func runProfileList(ctx context.Context) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	profiles, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles. Create one with 'mod-manager profile create'.")
		return nil
	}

	for _, p := range profiles {
		marker := " "
		if p.Active {
			marker = "*"
		}
		fmt.Printf("%s %s (%s, %s)\n", marker, p.Name, p.GameVersion, p.ModLoader)
	}
	return nil
}

func runProfileDelete(ctx context.Context, name string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, name); err != nil {
		return err
	}
	fmt.Printf("Deleted profile %q\n", name)
	return nil
}

func runProfileUse(ctx context.Context, name string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	if err := store.SetActive(ctx, name); err != nil {
		return err
	}
	fmt.Printf("Switched to profile %q\n", name)
	return nil
}

func runProfileMods(ctx context.Context) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	prof, err := store.Active(ctx)
	if err != nil {
		return err
	}
	if len(prof.Mods) == 0 {
		fmt.Printf("Profile %q has no mods.\n", prof.Name)
		return nil
	}

	for _, m := range prof.Mods {
		fmt.Printf("%s (%s: %s)\n", m.Name, m.Platform, m.ProjectKey)
	}
	return nil
}
