// Package message composes the reminder texts sent to users. The catalog of
// phrasings ships embedded as YAML, keyed by language and formality; the
// composer picks variants, fills placeholders and applies emoji decoration.
package message

import (
	_ "embed"
	"fmt"

	"github.com/adilzhanb/zhospar/internal/domain"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Band holds the feedback for a completion-rate threshold. Bands are
// matched top-down; the first band whose Min is <= the rate wins.
type Band struct {
	Min           int    `yaml:"min"`
	Feedback      string `yaml:"feedback"`
	Encouragement string `yaml:"encouragement"`
}

// MorningSet holds the morning-reminder phrasing variants for one register.
type MorningSet struct {
	Greetings []string `yaml:"greetings"`
	Messages  []string `yaml:"messages"`
	Streak    string   `yaml:"streak"`
	Ending    string   `yaml:"ending"`
}

// CheckinSet holds afternoon/evening phrasings for one register.
type CheckinSet struct {
	Greeting string `yaml:"greeting"`
	Bands    []Band `yaml:"bands"`
	Ending   string `yaml:"ending"`
}

type languageCatalog struct {
	Morning   map[string]MorningSet `yaml:"morning"`
	Afternoon map[string]CheckinSet `yaml:"afternoon"`
	Evening   map[string]CheckinSet `yaml:"evening"`
	Milestone map[string]string     `yaml:"milestone"`
}

// Catalog is the full parsed message catalog.
type Catalog struct {
	languages map[string]languageCatalog
}

// LoadCatalog parses the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	var langs map[string]languageCatalog
	if err := yaml.Unmarshal(catalogYAML, &langs); err != nil {
		return nil, fmt.Errorf("parsing message catalog: %w", err)
	}
	for _, lang := range []domain.Language{domain.LangRussian, domain.LangKazakh} {
		if _, ok := langs[string(lang)]; !ok {
			return nil, fmt.Errorf("message catalog missing language %q", lang)
		}
	}
	return &Catalog{languages: langs}, nil
}

func (c *Catalog) forStyle(s domain.Style) languageCatalog {
	lc, ok := c.languages[string(s.Language)]
	if !ok {
		lc = c.languages[string(domain.LangRussian)]
	}
	return lc
}

var supportedTags = []language.Tag{
	language.Russian,
	language.MustParse("kk"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// ResolveLanguage maps an arbitrary BCP-47 tag ("ru", "kk-KZ", "ru-RU") to
// a catalog language. Unknown or malformed tags fall back to Russian.
func ResolveLanguage(tag string) domain.Language {
	// Accept the storage-level names used on profiles as-is.
	if domain.ValidLanguages[tag] {
		return domain.Language(tag)
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return domain.LangRussian
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return domain.LangRussian
	}
	if idx == 1 {
		return domain.LangKazakh
	}
	return domain.LangRussian
}
