// Package locale provides the localized strings of the spark components.
//
// Message files are embedded TOML files under locales/, one per language,
// loaded into a single go-i18n bundle. English is the fallback for every
// message.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
)

// Message identifiers.
const (
	MessageStepLabel    = "StepLabel"
	MessageStepPosition = "StepPosition"
	MessageCompleted    = "StepCompleted"
	MessageHelpConfirm  = "TrackerHelpConfirm"
	MessageHelpBack     = "TrackerHelpBack"
)

//go:embed locales/*.toml
var localeFiles embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	mu        sync.RWMutex
	current   = language.English
	localizer *i18n.Localizer
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(localeFiles, "locales/*.toml")
		if err != nil {
			logging.GetInternalLogger().Error("Failed to list locale files", "error", err)
			return
		}

		for _, f := range files {
			if _, err := bundle.LoadMessageFileFS(localeFiles, f); err != nil {
				logging.GetInternalLogger().Error("Failed to load locale file", "file", f, "error", err)
			}
		}
	})
	return bundle
}

// SetLocale switches the active language. The tag must be a valid BCP 47
// tag; languages without a message file fall back to English.
func SetLocale(tag string) error {
	parsed, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("locale: invalid language tag %q: %w", tag, err)
	}

	mu.Lock()
	defer mu.Unlock()
	current = parsed
	localizer = i18n.NewLocalizer(getBundle(), parsed.String())
	return nil
}

// Current returns the active language.
func Current() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Supported lists the languages that have a message file.
func Supported() []language.Tag {
	return getBundle().LanguageTags()
}

func getLocalizer() *i18n.Localizer {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if localizer == nil {
		localizer = i18n.NewLocalizer(getBundle(), current.String())
	}
	return localizer
}

// Localize renders a message with optional template data. A missing
// message returns its id so the UI never shows an empty string.
func Localize(id string, data map[string]any) string {
	s, err := getLocalizer().Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		logging.GetInternalLogger().Warn("Missing translation", "id", id, "locale", Current().String(), "error", err)
		if s != "" {
			return s
		}
		return id
	}
	return s
}

// StepLabel is the default label of the step at the zero-based index.
func StepLabel(index int) string {
	return Localize(MessageStepLabel, map[string]any{"Index": index + 1})
}

// StepPosition describes the step at the zero-based index among count steps.
func StepPosition(index, count int) string {
	return Localize(MessageStepPosition, map[string]any{"Index": index + 1, "Count": count})
}
