// Package locales holds the static UI message bundles.
package locales

import (
	"sort"

	"golang.org/x/text/language"
)

const FallbackLocale = "en"

// Messages maps a dotted message key to its translation.
type Messages map[string]string

// Registry is read-only after construction.
type Registry struct {
	bundles  map[string]Messages
	codes    []string
	matcher  language.Matcher
	fallback string
}

// NewRegistry builds a registry over bundles. The fallback bundle must be present.
func NewRegistry(fallback string, bundles map[string]Messages) *Registry {
	codes := make([]string, 0, len(bundles))
	for code := range bundles {
		if code != fallback {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	// The first supported tag is what the matcher answers with when nothing fits.
	codes = append([]string{fallback}, codes...)

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tags[i] = language.Make(code)
	}

	return &Registry{
		bundles:  bundles,
		codes:    codes,
		matcher:  language.NewMatcher(tags),
		fallback: fallback,
	}
}

// Default is the registry of bundles shipped with the application.
func Default() *Registry {
	return NewRegistry(FallbackLocale, map[string]Messages{
		"en":    english,
		"zh-CN": simplifiedChinese,
	})
}

// Locales lists the supported codes, fallback first.
func (r *Registry) Locales() []string {
	return append([]string(nil), r.codes...)
}

// Select maps a requested locale (e.g. "zh", "en-US") to a supported code.
func (r *Registry) Select(requested string) string {
	if _, ok := r.bundles[requested]; ok {
		return requested
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return r.fallback
	}
	_, index, confidence := r.matcher.Match(tag)
	if confidence == language.No {
		return r.fallback
	}
	return r.codes[index]
}

// Messages returns the bundle for the best match of locale.
func (r *Registry) Messages(locale string) Messages {
	return r.bundles[r.Select(locale)]
}

// T translates key, falling back to the fallback bundle and then to the key.
func (r *Registry) T(locale, key string) string {
	if msg, ok := r.Messages(locale)[key]; ok {
		return msg
	}
	if msg, ok := r.bundles[r.fallback][key]; ok {
		return msg
	}
	return key
}
