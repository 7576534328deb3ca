package models

// Settings represents the application configuration
type Settings struct {
	Picker PickerSettings `yaml:"picker" json:"picker"`
	UI     UISettings     `yaml:"ui" json:"ui"`
}

// PickerSettings controls the wheels and how they resolve a selection
type PickerSettings struct {
	YearMin       int    `yaml:"year_min" json:"year_min"`
	YearMax       int    `yaml:"year_max" json:"year_max"`
	VisibleItems  int    `yaml:"visible_items" json:"visible_items"`
	ItemSize      int    `yaml:"item_size" json:"item_size"`             // scroll units per item
	MouseStep     int    `yaml:"mouse_step" json:"mouse_step"`           // units per mouse wheel notch
	Policy        string `yaml:"policy" json:"policy"`                   // "center" or "threshold"
	Snap          bool   `yaml:"snap" json:"snap"`                       // align on the selected item after settling
	SettleDelayMs int    `yaml:"settle_delay_ms" json:"settle_delay_ms"` // debounce between motion and settle
	FrameMs       int    `yaml:"frame_ms" json:"frame_ms"`               // tap animation frame interval
}

// UISettings controls UI preferences
type UISettings struct {
	Language      string          `yaml:"language" json:"language"`       // "ja" or "en"
	DateFormat    string          `yaml:"date_format" json:"date_format"` // Go template over .Year .Month .Day, empty uses the locale
	CopyOnConfirm bool            `yaml:"copy_on_confirm" json:"copy_on_confirm"`
	Colors        HighlightColors `yaml:"colors" json:"colors"`
}

// HighlightColors are the lipgloss colors of each wheel's selected row
type HighlightColors struct {
	Year  string `yaml:"year" json:"year"`
	Month string `yaml:"month" json:"month"`
	Day   string `yaml:"day" json:"day"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Picker: PickerSettings{
			YearMin:       1900,
			YearMax:       2100,
			VisibleItems:  5,
			ItemSize:      4,
			MouseStep:     3,
			Policy:        "center",
			Snap:          true,
			SettleDelayMs: 150,
			FrameMs:       16,
		},
		UI: UISettings{
			Language:      "ja",
			DateFormat:    "",
			CopyOnConfirm: false,
			Colors: HighlightColors{
				Year:  "196", // red
				Month: "40",  // green
				Day:   "33",  // blue
			},
		},
	}
}

// ApplyDefaults fills zero values with their defaults
func (s *Settings) ApplyDefaults() {
	d := DefaultSettings()
	if s.Picker.YearMin == 0 && s.Picker.YearMax == 0 {
		s.Picker.YearMin = d.Picker.YearMin
		s.Picker.YearMax = d.Picker.YearMax
	}
	if s.Picker.VisibleItems == 0 {
		s.Picker.VisibleItems = d.Picker.VisibleItems
	}
	if s.Picker.ItemSize == 0 {
		s.Picker.ItemSize = d.Picker.ItemSize
	}
	if s.Picker.MouseStep == 0 {
		s.Picker.MouseStep = d.Picker.MouseStep
	}
	if s.Picker.Policy == "" {
		s.Picker.Policy = d.Picker.Policy
	}
	if s.Picker.SettleDelayMs == 0 {
		s.Picker.SettleDelayMs = d.Picker.SettleDelayMs
	}
	if s.Picker.FrameMs == 0 {
		s.Picker.FrameMs = d.Picker.FrameMs
	}
	if s.UI.Language == "" {
		s.UI.Language = d.UI.Language
	}
	if s.UI.Colors.Year == "" {
		s.UI.Colors.Year = d.UI.Colors.Year
	}
	if s.UI.Colors.Month == "" {
		s.UI.Colors.Month = d.UI.Colors.Month
	}
	if s.UI.Colors.Day == "" {
		s.UI.Colors.Day = d.UI.Colors.Day
	}
}
