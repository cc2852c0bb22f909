package jellyschema

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// newI18nBundle returns an initialized internationalization bundle with the
// embedded message catalog, following the teacher's GetI18n wiring. Message
// keys have the form {keyword}.{condition}. The keyword validators in
// kw_*.go do not look messages up here: they build their English message
// text directly.
func newI18nBundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Localizer renders a localized message for a {keyword}.{condition} key and
// parameter set. ValidateDataError carries no such key; callers supply it.
type Localizer struct {
	localizer *i18n.Localizer
}

// NewLocalizer builds a Localizer for locale, backed by the embedded
// message catalog.
func NewLocalizer(locale string) (*Localizer, error) {
	bundle, err := newI18nBundle()
	if err != nil {
		return nil, err
	}
	return &Localizer{localizer: bundle.NewLocalizer(locale)}, nil
}

// Message translates key (e.g. "minLength.violation") with the given
// template parameters.
func (l *Localizer) Message(key string, params map[string]any) string {
	return l.localizer.Get(key, i18n.Vars(params))
}
