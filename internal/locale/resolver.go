package locale

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/language"

	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
)

// Kind selects the translation key used for an id
type Kind int

const (
	// KindName is used for locations and items ("<id> Name")
	KindName Kind = iota
	// KindNickname is used for bosses and traders ("<id> Nickname")
	KindNickname
)

func (k Kind) key(id string) string {
	if k == KindNickname {
		return fmt.Sprintf(KeyFormatNickname, id)
	}
	return fmt.Sprintf(KeyFormatName, id)
}

// Database is the on-disk locale data: translation tables per locale tag plus
// canonical template names keyed by id
type Database struct {
	Locales   map[string]map[string]string `json:"locales"`
	Templates map[string]string            `json:"templates"`
}

// DecodeDatabase reads a locale database
func DecodeDatabase(r io.Reader) (*Database, error) {
	var db Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeLocales, err)
	}
	return &db, nil
}

// Resolver turns ids into display names.
//
// Lookup order: translation in the selected locale, then the template name, then the id itself.
type Resolver struct {
	tag          language.Tag
	translations map[string]string
	templates    map[string]string
	cache        *expirable.LRU[string, string]
}

// NewResolver selects the locale table that best matches preferred
func NewResolver(db *Database, preferred string) (*Resolver, error) {
	if preferred == "" {
		preferred = DefaultLocale
	}

	want, err := language.Parse(preferred)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidLocaleTag, domain.ErrInvalidConfig, preferred, err)
	}

	r := &Resolver{
		tag:          want,
		translations: map[string]string{},
		templates:    map[string]string{},
		cache:        expirable.NewLRU[string, string](NameCacheSize, nil, NameCacheTTL),
	}
	if db == nil {
		return r, nil
	}
	if db.Templates != nil {
		r.templates = db.Templates
	}

	tags, keys, err := supportedTags(db.Locales)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return r, nil
	}

	_, idx, _ := language.NewMatcher(tags).Match(want)
	r.tag = tags[idx]
	r.translations = db.Locales[keys[idx]]

	return r, nil
}

// supportedTags parses locale keys, with the default locale first so it wins on no match
func supportedTags(locales map[string]map[string]string) ([]language.Tag, []string, error) {
	keys := make([]string, 0, len(locales))
	for key := range locales {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if (keys[i] == DefaultLocale) != (keys[j] == DefaultLocale) {
			return keys[i] == DefaultLocale
		}
		return keys[i] < keys[j]
	})

	tags := make([]language.Tag, 0, len(keys))
	for _, key := range keys {
		tag, err := language.Parse(key)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: "+ErrMsgInvalidLocaleTag, domain.ErrInvalidConfig, key, err)
		}
		tags = append(tags, tag)
	}

	return tags, keys, nil
}

// Locale returns the locale the resolver translates into
func (r *Resolver) Locale() language.Tag {
	return r.tag
}

// Name resolves id to a display name
func (r *Resolver) Name(id string, kind Kind) string {
	key := kind.key(id)
	if name, ok := r.cache.Get(key); ok {
		return name
	}

	name := r.lookup(id, key)
	r.cache.Add(key, name)
	return name
}

func (r *Resolver) lookup(id, key string) string {
	if name, ok := r.translations[key]; ok && name != "" {
		return name
	}
	if name, ok := r.templates[id]; ok && name != "" {
		return name
	}
	return id
}

// BossName resolves a boss id
func (r *Resolver) BossName(id string) string {
	return r.Name(id, KindNickname)
}

// LocationName resolves a location id
func (r *Resolver) LocationName(id string) string {
	return r.Name(id, KindName)
}
