package sessionid

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

//go:embed sessions.yaml
var defaultTables []byte

// tablesFile is the on-disk shape of the alias and ignore tables.
type tablesFile struct {
	// Aliases maps a historical directory name to its canonical form.
	Aliases map[string]string `yaml:"aliases"`
	// Ignored lists directory names that are not sessions.
	Ignored []string `yaml:"ignored"`
}

// Identifier recognises session names using the grammars plus the alias
// and ignore tables.
type Identifier struct {
	aliases map[string]domain.SessionID
	ignored map[string]bool
}

// LoadTables reads alias and ignore tables from YAML. Every alias target
// must be in canonical form.
func LoadTables(r io.Reader) (*Identifier, error) {
	var f tablesFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode session tables: %w", err)
	}

	id := &Identifier{
		aliases: make(map[string]domain.SessionID, len(f.Aliases)),
		ignored: make(map[string]bool, len(f.Ignored)),
	}
	for name, canonical := range f.Aliases {
		sid, err := ParseStrict(canonical)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", name, err)
		}
		id.aliases[strings.TrimSpace(name)] = sid
	}
	for _, name := range f.Ignored {
		id.ignored[strings.TrimSpace(name)] = true
	}
	return id, nil
}

var defaultIdentifier = sync.OnceValue(func() *Identifier {
	id, err := LoadTables(strings.NewReader(string(defaultTables)))
	if err != nil {
		panic(fmt.Sprintf("sessionid: embedded tables: %v", err))
	}
	return id
})

// Default returns the Identifier built from the embedded tables.
func Default() *Identifier {
	return defaultIdentifier()
}

// IsIgnored reports whether name is a known non-session directory.
func (i *Identifier) IsIgnored(name string) bool {
	return i.ignored[strings.TrimSpace(name)]
}

// Alias returns the canonical id of a known historical name.
func (i *Identifier) Alias(name string) (domain.SessionID, bool) {
	sid, ok := i.aliases[strings.TrimSpace(name)]
	return sid, ok
}

// ParseDirectory parses a session directory name: the strict grammar first,
// then the alias table.
func (i *Identifier) ParseDirectory(name string) (domain.SessionID, error) {
	if sid, err := ParseStrict(name); err == nil {
		return sid, nil
	}
	if sid, ok := i.Alias(name); ok {
		return sid, nil
	}
	return domain.SessionID{}, &ParseError{Name: name, Grammar: "strict"}
}

// Parse tries the strict grammar, then the alias table, then the dirty
// grammar.
func (i *Identifier) Parse(name string) (domain.SessionID, error) {
	if sid, err := i.ParseDirectory(name); err == nil {
		return sid, nil
	}
	return ParseDirty(name)
}
