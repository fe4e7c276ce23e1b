package config

const (
	defaultDataDir    = "~/.local/share/brewtrack"
	defaultLogDir     = "~/.local/share/brewtrack/logs"
	defaultSlotCount  = 5
	defaultTimezone   = "America/New_York"
	defaultDateFormat = "2006-01-02 15:04"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	stateFileName     = "brews.json"
	historyFileName   = "brew_history.json"
)

func defaultCategories() []string {
	return []string{"Beer", "Wine", "Mead", "Cider", "Kombucha", "Seltzer"}
}

func defaultStages() []string {
	return []string{"Primary", "Secondary", "Aging", "Cold Crash", "Bottled", "Kegged"}
}

func defaultEventTypes() []string {
	return []string{
		"General",
		"Gravity Reading",
		"Nutrient Addition",
		"pH Reading",
		"Temp Check",
		"Aeration",
		"Dry Hop",
		"Fruit Addition",
		"Fruit Removal",
		"Brew Stage Change",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Vessels: Vessels{
			DefaultSlotCount: defaultSlotCount,
		},
		Vocabulary: Vocabulary{
			Categories: defaultCategories(),
			Stages:     defaultStages(),
			EventTypes: defaultEventTypes(),
		},
		Display: Display{
			Timezone:   defaultTimezone,
			DateFormat: defaultDateFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
