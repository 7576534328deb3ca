// Package locale holds the translated labels of the picker and the host's
// date display template.
package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/pluqqy/drumroll/internal/logging"
	"github.com/pluqqy/drumroll/pkg/datepicker"
)

//go:embed locales/*.json
var localeFS embed.FS

// ErrUnsupportedLanguage is returned by New for languages without a catalog.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Message IDs
const (
	MsgTitle            = "Title"
	MsgPlaceholder      = "Placeholder"
	MsgOpenButton       = "OpenButton"
	MsgConfirm          = "Confirm"
	MsgCancel           = "Cancel"
	MsgHeaderYear       = "HeaderYear"
	MsgHeaderMonth      = "HeaderMonth"
	MsgHeaderDay        = "HeaderDay"
	MsgDateDisplay      = "DateDisplay"
	MsgStatusCopied     = "StatusCopied"
	MsgStatusCopyFailed = "StatusCopyFailed"
	MsgKeyOpen          = "KeyOpen"
	MsgKeyConfirm       = "KeyConfirm"
	MsgKeyCancel        = "KeyCancel"
	MsgKeyScroll        = "KeyScroll"
	MsgKeyPage          = "KeyPage"
	MsgKeyFocus         = "KeyFocus"
	MsgKeyEnds          = "KeyEnds"
	MsgKeyHelp          = "KeyHelp"
	MsgKeyQuit          = "KeyQuit"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "ja"

var bundle = loadBundle()

func loadBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.Japanese)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error("cannot read embedded locales", logging.KeyComponent, logging.CompI18n, logging.KeyError, err)
		return b
	}
	for _, entry := range entries {
		name := entry.Name()
		if _, err := b.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error("cannot load locale", logging.KeyComponent, logging.CompI18n, logging.KeyFile, name, logging.KeyError, err)
		}
	}
	return b
}

// Languages returns the base language codes that have a catalog.
func Languages() []string {
	var langs []string
	for _, tag := range bundle.LanguageTags() {
		base, _ := tag.Base()
		langs = append(langs, base.String())
	}
	sort.Strings(langs)
	return langs
}

// Translator looks up labels for one language.
type Translator struct {
	lang       string
	localizer  *i18n.Localizer
	dateFormat *template.Template
}

// New returns a translator for lang ("ja", "en", "en-US", ...).
func New(lang string) (*Translator, error) {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedLanguage, lang, err)
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	_, index, confidence := matcher.Match(tag)
	matched := bundle.LanguageTags()[index]
	want, _ := tag.Base()
	got, _ := matched.Base()
	if confidence == language.No || want != got {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedLanguage, lang, strings.Join(Languages(), ", "))
	}
	return &Translator{
		lang:      matched.String(),
		localizer: i18n.NewLocalizer(bundle, matched.String()),
	}, nil
}

// MustNew is New for languages known to exist.
func MustNew(lang string) *Translator {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

// Language returns the matched language tag.
func (t *Translator) Language() string {
	return t.lang
}

// T translates id. Unknown ids come back unchanged.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf translates id with template data.
func (t *Translator) Tf(id string, data map[string]any) string {
	msg, err := t.lookup(id, data)
	if err != nil {
		slog.Debug("missing translation",
			logging.KeyComponent, logging.CompI18n,
			logging.KeyLang, t.lang,
			logging.KeyKey, id,
			logging.KeyError, err,
		)
		return id
	}
	return msg
}

func (t *Translator) lookup(id string, data map[string]any) (string, error) {
	return t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// SetDateFormat overrides the localized display template with a Go template
// over .Year, .Month and .Day. An empty format restores the locale's.
func (t *Translator) SetDateFormat(format string) error {
	if format == "" {
		t.dateFormat = nil
		return nil
	}
	tmpl, err := template.New("date").Option("missingkey=error").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid date format %q: %w", format, err)
	}
	if err := tmpl.Execute(&strings.Builder{}, datepicker.Date{Year: 2000, Month: 1, Day: 1}); err != nil {
		return fmt.Errorf("invalid date format %q: %w", format, err)
	}
	t.dateFormat = tmpl
	return nil
}

// FormatDate renders d for the host display field.
func (t *Translator) FormatDate(d datepicker.Date) string {
	if t.dateFormat != nil {
		var b strings.Builder
		if err := t.dateFormat.Execute(&b, d); err == nil {
			return b.String()
		}
	}
	return t.Tf(MsgDateDisplay, map[string]any{
		"Year":  d.Year,
		"Month": d.Month,
		"Day":   d.Day,
	})
}

// WheelHeader returns the column header of a wheel.
func (t *Translator) WheelHeader(f datepicker.Field) string {
	switch f {
	case datepicker.FieldYear:
		return t.T(MsgHeaderYear)
	case datepicker.FieldMonth:
		return t.T(MsgHeaderMonth)
	default:
		return t.T(MsgHeaderDay)
	}
}
