// Package deck loads a deck of card artwork described by a deck.toml
// manifest.
package deck

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// ManifestName is the manifest file at the root of every deck.
const ManifestName = "deck.toml"

// Manifest mirrors deck.toml.
type Manifest struct {
	Deck  Info        `toml:"deck"`
	Backs Backs       `toml:"backs"`
	Cards []CardEntry `toml:"cards"`
}

// Info identifies a deck.
type Info struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Author      string `toml:"author"`
	Description string `toml:"description"`
}

// Backs names the back artwork. Rare is optional.
type Backs struct {
	Common string `toml:"common"`
	Rare   string `toml:"rare"`
}

// CardEntry is one face of the deck.
type CardEntry struct {
	Name  string `toml:"name"`
	Image string `toml:"image"`
}

// Deck is a loaded deck, ready to build cards from.
type Deck struct {
	Manifest
	Faces []*ebiten.Image // same order as Cards
	Back  *ebiten.Image
	// RareBack equals Back when the manifest names no rare back.
	RareBack *ebiten.Image
}

// LoadManifest decodes deck.toml from the root of fsys.
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFS(fsys, ManifestName, &m)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s not found", ManifestName)
		}
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return &m, &UnknownKeysError{Keys: keys}
	}
	return &m, nil
}

// UnknownKeysError reports manifest keys the loader does not understand.
// The manifest returned alongside it is still usable.
type UnknownKeysError struct {
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("unknown keys in %s: %s", ManifestName, strings.Join(e.Keys, ", "))
}

// Results collects validation findings. Errors make a deck unusable;
// warnings do not.
type Results struct {
	Errors   []string
	Warnings []string
}

// OK reports whether there are no errors.
func (r Results) OK() bool {
	return len(r.Errors) == 0
}

func (r *Results) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Results) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// Validate checks the manifest against the files in fsys. want is the
// number of faces the table needs; zero skips the count check.
func (m *Manifest) Validate(fsys fs.FS, want int) Results {
	var r Results
	if m.Deck.ID == "" {
		r.errorf("deck.id is required")
	}
	if m.Deck.Name == "" {
		r.errorf("deck.name is required")
	}
	if m.Deck.Version == "" {
		r.warnf("deck.version is not set")
	}
	if m.Deck.Author == "" {
		r.warnf("deck.author is not set")
	}

	if m.Backs.Common == "" {
		r.errorf("backs.common is required")
	} else {
		checkImage(fsys, &r, "backs.common", m.Backs.Common)
	}
	if m.Backs.Rare == "" {
		r.warnf("backs.rare is not set; the common back is used for rare draws")
	} else {
		checkImage(fsys, &r, "backs.rare", m.Backs.Rare)
	}

	if len(m.Cards) == 0 {
		r.errorf("deck has no cards")
	} else if want > 0 && len(m.Cards) != want {
		r.errorf("deck has %d cards, the table needs %d", len(m.Cards), want)
	}
	names := make(map[string]int)
	images := make(map[string]int)
	for i, c := range m.Cards {
		field := fmt.Sprintf("cards[%d]", i)
		if c.Name == "" {
			r.errorf("%s.name is required", field)
		} else if j, dup := names[c.Name]; dup {
			r.errorf("%s.name %q repeats cards[%d]", field, c.Name, j)
		} else {
			names[c.Name] = i
		}
		if c.Image == "" {
			r.errorf("%s.image is required", field)
			continue
		}
		if j, dup := images[c.Image]; dup {
			r.warnf("%s.image %q is also used by cards[%d]", field, c.Image, j)
		} else {
			images[c.Image] = i
		}
		checkImage(fsys, &r, field+".image", c.Image)
	}
	return r
}

func checkImage(fsys fs.FS, r *Results, field, name string) {
	if !fs.ValidPath(name) {
		r.errorf("%s: invalid path %q", field, name)
		return
	}
	if !imageExts[strings.ToLower(path.Ext(name))] {
		r.warnf("%s: %q is not a PNG or JPEG", field, name)
	}
	info, err := fs.Stat(fsys, name)
	if err != nil {
		r.errorf("%s: image not found: %s", field, name)
		return
	}
	if info.IsDir() {
		r.errorf("%s: %s is a directory", field, name)
	}
}

// Load reads the manifest, validates it for want faces and decodes every
// image. It fails on the first validation error or unreadable image.
func Load(fsys fs.FS, want int, log *zap.Logger) (*Deck, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := LoadManifest(fsys)
	var unknown *UnknownKeysError
	switch {
	case errors.As(err, &unknown):
		log.Warn("deck manifest", zap.Strings("unknown_keys", unknown.Keys))
	case err != nil:
		return nil, err
	}

	res := m.Validate(fsys, want)
	for _, w := range res.Warnings {
		log.Warn("deck", zap.String("warning", w))
	}
	if !res.OK() {
		return nil, fmt.Errorf("invalid deck %q: %s", m.Deck.ID, res.Errors[0])
	}

	d := &Deck{Manifest: *m, Faces: make([]*ebiten.Image, len(m.Cards))}
	for i, c := range m.Cards {
		if d.Faces[i], err = loadImage(fsys, c.Image); err != nil {
			return nil, err
		}
	}
	if d.Back, err = loadImage(fsys, m.Backs.Common); err != nil {
		return nil, err
	}
	d.RareBack = d.Back
	if m.Backs.Rare != "" {
		if d.RareBack, err = loadImage(fsys, m.Backs.Rare); err != nil {
			return nil, err
		}
	}

	log.Info("deck loaded",
		zap.String("id", m.Deck.ID),
		zap.String("name", m.Deck.Name),
		zap.Int("cards", len(m.Cards)),
	)
	return d, nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", name, err)
	}
	return img, nil
}

// DecodeConfig returns the dimensions of an image without decoding its
// pixels.
func DecodeConfig(fsys fs.FS, name string) (image.Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return cfg, nil
}
