// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/easify/easify/pkg/cueutil"
	"github.com/easify/easify/pkg/patternsyntax"
	"github.com/easify/easify/pkg/unpack"

	"cuelang.org/go/cue/format"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// FormatCUE is the CUE catalog format (.cue).
	FormatCUE Format = "cue"
	// FormatTOML is the TOML catalog format (.toml).
	FormatTOML Format = "toml"
)

//go:embed catalog_schema.cue
var catalogSchema []byte

type (
	// Format names a catalog file format.
	Format string

	// Catalog is a set of named patterns.
	Catalog struct {
		source  string
		entries map[string]string
		compile []unpack.CompileOption
		logger  *log.Logger

		mu    sync.Mutex
		cache map[string]*unpack.Pattern
	}

	// Option configures a Catalog.
	Option func(*Catalog)

	// file is the decoded shape shared by both formats.
	file struct {
		Patterns map[string]string `json:"patterns" toml:"patterns"`
	}
)

// WithLogger sets the logger used for load and compile events.
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCompileOptions passes options to every pattern compilation, for
// example unpack.WithUniqueNames().
func WithCompileOptions(opts ...unpack.CompileOption) Option {
	return func(c *Catalog) {
		c.compile = append(c.compile, opts...)
	}
}

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f := Format(ext)
	if valid, errs := f.IsValid(); !valid {
		return "", errs[0]
	}
	return f, nil
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the supported formats.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatCUE, FormatTOML:
		return true, nil
	default:
		return false, []error{&UnsupportedFormatError{Format: string(f)}}
	}
}

// Load reads a catalog file, choosing the format from its extension.
func Load(path string, opts ...Option) (*Catalog, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, f, path, opts...)
}

// Parse decodes catalog data in the given format. name identifies the
// document in error messages.
func Parse(data []byte, f Format, name string, opts ...Option) (*Catalog, error) {
	var decoded file
	switch f {
	case FormatCUE:
		result, err := cueutil.ParseAndDecode[file](catalogSchema, data, "#Catalog", cueutil.WithFilename(name))
		if err != nil {
			return nil, err
		}
		decoded = *result.Value
	case FormatTOML:
		if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, name); err != nil {
			return nil, err
		}
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&decoded); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for n, text := range decoded.Patterns {
			if !validName(n) {
				return nil, fmt.Errorf("%s: %w %q", name, ErrInvalidName, n)
			}
			if strings.TrimSpace(text) == "" {
				return nil, fmt.Errorf("%s: %w", name, &InvalidPatternError{Name: n, Err: errors.New("empty pattern")})
			}
		}
	default:
		return nil, &UnsupportedFormatError{Format: string(f)}
	}

	c := New(decoded.Patterns, opts...)
	c.source = name
	c.logger.Debug("catalog loaded", "source", name, "format", f, "patterns", len(c.entries))
	return c, nil
}

// New builds a catalog from an in-memory name to pattern map. The map is
// copied.
func New(entries map[string]string, opts ...Option) *Catalog {
	c := &Catalog{
		entries: maps.Clone(entries),
		logger:  log.New(io.Discard),
		cache:   make(map[string]*unpack.Pattern),
	}
	if c.entries == nil {
		c.entries = map[string]string{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the file the catalog was loaded from, or "" for catalogs
// built with New.
func (c *Catalog) Source() string { return c.source }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Names returns the entry names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Text returns the pattern text of an entry.
func (c *Catalog) Text(name string) (string, bool) {
	text, ok := c.entries[name]
	return text, ok
}

// Get returns the compiled pattern for name, compiling it on first use.
func (c *Catalog) Get(name string) (*unpack.Pattern, error) {
	text, ok := c.entries[name]
	if !ok {
		return nil, &PatternNotFoundError{Name: name}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.cache[name]; ok {
		return p, nil
	}
	p, err := patternsyntax.Compile(text, c.compile...)
	if err != nil {
		c.logger.Debug("catalog pattern rejected", "name", name, "err", err)
		return nil, &InvalidPatternError{Name: name, Err: err}
	}
	c.cache[name] = p
	c.logger.Debug("catalog pattern compiled", "name", name, "pattern", p, "arity", p.Arity())
	return p, nil
}

// Validate compiles every entry and reports all failures.
func (c *Catalog) Validate() error {
	var errs []error
	for _, name := range c.Names() {
		if _, err := c.Get(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Export renders the catalog in the given format with entries sorted by name.
func (c *Catalog) Export(f Format) ([]byte, error) {
	switch f {
	case FormatTOML:
		return toml.Marshal(file{Patterns: c.entries})
	case FormatCUE:
		var sb strings.Builder
		sb.WriteString("patterns: {\n")
		for _, name := range c.Names() {
			fmt.Fprintf(&sb, "%s: %s\n", strconv.Quote(name), strconv.Quote(c.entries[name]))
		}
		sb.WriteString("}\n")
		return format.Source([]byte(sb.String()), format.Simplify())
	default:
		return nil, &UnsupportedFormatError{Format: string(f)}
	}
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '.' || r == '-'):
		default:
			return false
		}
	}
	return true
}
