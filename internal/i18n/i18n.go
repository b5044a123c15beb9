// Package i18n renders dashboard text in the configured language. Messages
// live in embedded active.<lang>.toml files; English is the fallback.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var (
	bundle  *i18n.Bundle
	matcher language.Matcher
)

func init() {
	var err error
	bundle, err = loadBundle(localeFS)
	if err != nil {
		panic(err)
	}
	matcher = language.NewMatcher(bundle.LanguageTags())
}

// loadBundle parses every active.*.toml file found in fsys
func loadBundle(fsys fs.FS) (*i18n.Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	names, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no message files found")
	}

	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := b.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return b, nil
}

// Localizer looks up dashboard messages for one language
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLocalizer picks the closest supported language for locale. Both
// "zh_CN" and "zh-CN" spellings are accepted; anything unsupported or
// unparsable falls back to English.
func NewLocalizer(locale string) *Localizer {
	tag := matchLocale(locale)
	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}
}

func matchLocale(locale string) language.Tag {
	requested, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.English
	}

	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.English
	}
	return bundle.LanguageTags()[index]
}

// Language reports the language messages are rendered in
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T returns the message for id, or id itself when it is unknown
func (l *Localizer) T(id string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id})
}

// TF is T with template data, for messages such as "app.quit_hint"
func (l *Localizer) TF(id string, data map[string]interface{}) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	msg, err := l.localizer.Localize(cfg)
	if err != nil {
		return cfg.MessageID
	}
	return msg
}
