package document

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contractgen/pkg/model"
)

// ManifestName is the manifest file looked up at the root of a template FS.
const ManifestName = "manifest.yaml"

// ErrTemplateNotFound is returned when a template id is unknown.
var ErrTemplateNotFound = errors.New("document: template not found")

//go:embed templates/*.html templates/manifest.yaml
var embeddedTemplates embed.FS

// EmbeddedFS exposes the built-in templates.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Kind groups templates by the record they document.
type Kind string

const (
	KindContract  Kind = "contract"
	KindQuotation Kind = "quotation"
)

// Template is an immutable template asset.
type Template struct {
	ID      string
	Version string
	Title   string
	Kind    Kind
	Body    string
	Hash    string
	Tokens  []string
}

// Clone returns a copy of t that shares no slices with it.
func (t Template) Clone() Template {
	t.Tokens = append([]string(nil), t.Tokens...)
	return t
}

// Ref identifies the template as "id@version".
func (t Template) Ref() string {
	return t.ID + "@" + t.Version
}

// Render substitutes facts into the template body.
func (t Template) Render(facts model.FactSet) (string, Report) {
	return RenderReport(t.Body, facts)
}

type manifestFile struct {
	Templates []manifestEntry `json:"templates" yaml:"templates"`
}

type manifestEntry struct {
	ID      string `json:"id" yaml:"id"`
	Version string `json:"version" yaml:"version"`
	Title   string `json:"title" yaml:"title"`
	Kind    string `json:"kind" yaml:"kind"`
	File    string `json:"file" yaml:"file"`
}

// Store holds templates loaded once from an fs.FS.
type Store struct {
	mu        sync.RWMutex
	templates map[string]Template
	byHash    map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		templates: make(map[string]Template),
		byHash:    make(map[string]string),
	}
}

// LoadFS reads ManifestName from fsys and loads every template it lists.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return nil, fmt.Errorf("document: read manifest: %w", err)
	}
	manifest, err := parseManifest(data)
	if err != nil {
		return nil, err
	}

	for _, entry := range manifest.Templates {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, errors.New("document: manifest entry without id")
		}
		file := strings.TrimSpace(entry.File)
		if file == "" {
			return nil, fmt.Errorf("document: template %q has no file", id)
		}
		body, err := fs.ReadFile(fsys, path.Clean(file))
		if err != nil {
			return nil, fmt.Errorf("document: read template %q: %w", id, err)
		}
		tpl := NewTemplate(id, entry.Version, string(body))
		tpl.Title = strings.TrimSpace(entry.Title)
		tpl.Kind = Kind(strings.TrimSpace(entry.Kind))
		if err := store.Add(tpl); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// MustLoadEmbedded loads the built-in templates and panics on failure.
func MustLoadEmbedded() *Store {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return store
}

// NewTemplate builds a template, hashing the body and scanning its tokens.
func NewTemplate(id, version, body string) Template {
	sum := sha256.Sum256([]byte(body))
	version = strings.TrimSpace(version)
	if version == "" {
		version = "0"
	}
	return Template{
		ID:      strings.TrimSpace(id),
		Version: version,
		Body:    body,
		Hash:    hex.EncodeToString(sum[:]),
		Tokens:  Tokens(body),
	}
}

// Add registers a template. Ids must be unique.
func (s *Store) Add(tpl Template) error {
	if tpl.ID == "" {
		return errors.New("document: template id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.templates[tpl.ID]; exists {
		return fmt.Errorf("document: duplicate template %q", tpl.ID)
	}
	s.templates[tpl.ID] = tpl.Clone()
	s.byHash[tpl.Hash] = tpl.ID
	return nil
}

// Get returns the template registered under id.
func (s *Store) Get(id string) (Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tpl, ok := s.templates[strings.TrimSpace(id)]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return tpl.Clone(), nil
}

// ByHash returns the template whose body hashes to hash.
func (s *Store) ByHash(hash string) (Template, error) {
	s.mu.RLock()
	id, ok := s.byHash[hash]
	s.mu.RUnlock()
	if !ok {
		return Template{}, fmt.Errorf("%w: hash %s", ErrTemplateNotFound, hash)
	}
	return s.Get(id)
}

// List returns every template sorted by id.
func (s *Store) List() []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Template, 0, len(s.templates))
	for _, tpl := range s.templates {
		out = append(out, tpl.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func parseManifest(data []byte) (manifestFile, error) {
	var manifest manifestFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return manifest, errors.New("document: manifest is empty")
	}
	if err := json.Unmarshal(data, &manifest); err == nil {
		return manifest, nil
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("document: parse manifest: %w", err)
	}
	return manifest, nil
}
