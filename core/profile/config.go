package profile

// Config holds defaults applied when creating new profiles.
type Config struct {
	// GameVersion is the default Minecraft version for new profiles.
	GameVersion string `mapstructure:"game_version" default:"1.21.1"`
	// ModLoader is the default mod loader for new profiles (fabric, forge, quilt, neoforge).
	ModLoader string `mapstructure:"mod_loader" default:"fabric"`
	// OutputDir is the default directory mod files are placed in.
	OutputDir string `mapstructure:"output_dir" default:"mods"`
}
