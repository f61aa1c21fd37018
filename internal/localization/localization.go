// Package localization holds the translation catalogs and the active language.
package localization

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when nothing better is known.
const DefaultLanguage = "en"

// Language describes one selectable language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

var availableLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "tr", Name: "Turkish", NativeName: "Türkçe"},
}

// Listener is called with the new language code after a successful SetLanguage.
type Listener func(code string)

// Translator resolves keys in a fixed language.
type Translator interface {
	Translate(key string, values map[string]any) string
}

// Catalog owns every loaded translation table and the process-wide current language.
type Catalog struct {
	tables  map[string]map[string]string
	matcher language.Matcher
	codes   []string

	mu      sync.RWMutex
	current string

	subMu     sync.Mutex
	subs      map[uint64]Listener
	nextSubID uint64

	logger *zap.Logger
}

// NewCatalog loads the embedded catalogs. An unsupported initial language falls back to English.
func NewCatalog(initial string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Catalog{
		tables: make(map[string]map[string]string, len(availableLanguages)),
		subs:   make(map[uint64]Listener),
		logger: logger,
	}

	tags := make([]language.Tag, 0, len(availableLanguages))
	for _, lang := range availableLanguages {
		raw, err := localeFS.ReadFile(path.Join("locales", lang.Code+".json"))
		if err != nil {
			return nil, fmt.Errorf("read %s catalog: %w", lang.Code, err)
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse %s catalog: %w", lang.Code, err)
		}
		c.tables[lang.Code] = table
		c.codes = append(c.codes, lang.Code)
		tags = append(tags, language.MustParse(lang.Code))
	}
	c.matcher = language.NewMatcher(tags)

	c.current = DefaultLanguage
	if code, ok := c.Match(initial); ok {
		c.current = code
	} else if initial != "" {
		logger.Warn("language not found, falling back", zap.String("language", initial), zap.String("fallback", DefaultLanguage))
	}
	return c, nil
}

// Match resolves a language code or tag (for example "tr-TR") to a supported code.
func (c *Catalog) Match(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	if _, ok := c.tables[code]; ok {
		return code, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return c.codes[idx], true
}

// MatchAcceptLanguage picks the best supported language for an Accept-Language header.
func (c *Catalog) MatchAcceptLanguage(header string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return c.codes[idx], true
}

// Language returns the current language code.
func (c *Catalog) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// SetLanguage switches the current language and notifies subscribers.
// Unknown codes are rejected and the current language is kept.
func (c *Catalog) SetLanguage(code string) error {
	resolved, ok := c.Match(code)
	if !ok {
		c.logger.Warn("language not supported",
			zap.String("language", code), zap.Strings("available", c.codes))
		return fmt.Errorf("language %q not supported, available: %s", code, strings.Join(c.codes, ", "))
	}

	c.mu.Lock()
	c.current = resolved
	c.mu.Unlock()

	c.subMu.Lock()
	ids := make([]uint64, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, c.subs[id])
	}
	c.subMu.Unlock()

	for _, l := range listeners {
		l(resolved)
	}
	return nil
}

// Subscribe registers l for language changes and returns a function that removes it.
func (c *Catalog) Subscribe(l Listener) func() {
	c.subMu.Lock()
	c.nextSubID++
	id := c.nextSubID
	c.subs[id] = l
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// AvailableLanguages lists the supported languages in display order.
func (c *Catalog) AvailableLanguages() []Language {
	return append([]Language(nil), availableLanguages...)
}

// T translates key in the current language.
func (c *Catalog) T(key string, values map[string]any) string {
	return c.lookup(c.Language(), key, values)
}

// Translate implements Translator using the current language.
func (c *Catalog) Translate(key string, values map[string]any) string {
	return c.T(key, values)
}

// Localizer returns a Translator pinned to lang. Unsupported languages use the current one.
func (c *Catalog) Localizer(lang string) Localizer {
	code, ok := c.Match(lang)
	if !ok {
		code = c.Language()
	}
	return Localizer{catalog: c, lang: code}
}

func (c *Catalog) lookup(lang, key string, values map[string]any) string {
	translation, ok := c.tables[lang][key]
	if !ok {
		return key
	}
	return interpolate(translation, values)
}

// interpolate replaces each {name} placeholder with its value. Placeholders without a value are left alone.
func interpolate(s string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(s, "{") {
		return s
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Localizer translates in a single language.
type Localizer struct {
	catalog *Catalog
	lang    string
}

// Language returns the localizer's language code.
func (l Localizer) Language() string {
	return l.lang
}

// Translate implements Translator.
func (l Localizer) Translate(key string, values map[string]any) string {
	return l.catalog.lookup(l.lang, key, values)
}

// T is shorthand for Translate without values, for templates.
func (l Localizer) T(key string) string {
	return l.Translate(key, nil)
}
