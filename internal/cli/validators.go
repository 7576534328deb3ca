package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pluqqy/drumroll/pkg/locale"
	"github.com/pluqqy/drumroll/pkg/models"
	"github.com/pluqqy/drumroll/pkg/wheel"
)

// ValidatePolicy validates a resolve policy name
func ValidatePolicy(name string) error {
	_, err := wheel.PolicyByName(name)
	return err
}

// ValidateYearRange validates the bounds of the year wheel
func ValidateYearRange(lo, hi int) error {
	if hi < lo {
		return fmt.Errorf("invalid year range %d-%d: year_max must not be below year_min", lo, hi)
	}
	return nil
}

// ValidateLanguage validates a display language
func ValidateLanguage(lang string) error {
	_, err := locale.New(lang)
	return err
}

// ValidateOutputFormat validates the -o flag
func ValidateOutputFormat(format string) error {
	valid := []OutputFormat{FormatText, FormatJSON, FormatYAML}
	if slices.Contains(valid, OutputFormat(strings.ToLower(format))) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSettings checks a whole configuration and reports every problem
func ValidateSettings(s *models.Settings) error {
	var errs []error
	if err := ValidatePolicy(s.Picker.Policy); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateYearRange(s.Picker.YearMin, s.Picker.YearMax); err != nil {
		errs = append(errs, err)
	}
	if s.Picker.VisibleItems < 1 {
		errs = append(errs, fmt.Errorf("visible_items must be at least 1, got %d", s.Picker.VisibleItems))
	}
	if s.Picker.ItemSize < 1 {
		errs = append(errs, fmt.Errorf("item_size must be at least 1, got %d", s.Picker.ItemSize))
	}
	if s.Picker.SettleDelayMs < 0 || s.Picker.FrameMs < 0 {
		errs = append(errs, errors.New("settle_delay_ms and frame_ms must not be negative"))
	}
	if err := ValidateLanguage(s.UI.Language); err != nil {
		errs = append(errs, err)
	}
	if s.UI.DateFormat != "" {
		tr, err := locale.New(locale.DefaultLanguage)
		if err == nil {
			err = tr.SetDateFormat(s.UI.DateFormat)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}
