// Package config provides configuration loading and defaults for trainwatch.
package config

// DefaultConfigDir is the default location for trainwatch configuration.
const DefaultConfigDir = "~/.config/trainwatch"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "trainwatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultWellnessDays is how many days of daily logs feed the engine.
// The advisor needs at least the prior 5 days for trend analysis; 30 keeps
// the history command useful without dragging the whole table in.
const DefaultWellnessDays = 30

// DefaultExerciseDays is how many days of exercise logs feed the engine.
// The volume-ratio baseline reaches back 28 days; 56 leaves headroom for
// backdated entries.
const DefaultExerciseDays = 56

// DefaultPhase is the training phase assumed before a profile is saved.
const DefaultPhase = "maintenance"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
