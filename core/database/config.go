package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the database file path, used by the sqlite driver.
	Path string `mapstructure:"path" default:"mod-manager.db"`
	// Host is the database host, used by the mysql driver.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port, used by the mysql driver.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user, used by the mysql driver.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password, used by the mysql driver.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, used by the mysql driver.
	Name string `mapstructure:"name" default:"mods"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
