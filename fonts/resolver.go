package fonts

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

// Request describes the font a caller wants.
type Request struct {
	Family string
	Weight cloudfont.FontWeight
	Size   float64

	// Sample is the text to be drawn. System fonts that miss any of its
	// runes are skipped.
	Sample string
}

// RequestFor builds the request for drawing ts.
func RequestFor(ts cloudfont.TextSpec) Request {
	return Request{
		Family: ts.FontFamily,
		Weight: ts.FontWeight,
		Size:   ts.FontSize,
		Sample: ts.Content,
	}
}

type faceKey struct {
	family string
	weight cloudfont.FontWeight
	size   float64
	sample string
}

// Resolver maps font requests to faces. Loaded sources and faces are
// cached for the lifetime of the resolver.
//
// A Resolver is not safe for concurrent use.
type Resolver struct {
	opts options

	scanned    bool
	footprints []fontscan.Footprint

	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Resolver{
		opts:    o,
		sources: make(map[string]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
	}
}

// Face returns a face for req.
func (r *Resolver) Face(req Request) (text.Face, error) {
	key := faceKey{
		family: font.NormalizeFamily(req.Family),
		weight: req.Weight.Snap(),
		size:   req.Size,
		sample: req.Sample,
	}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}

	src, origin, err := r.source(key.family, key.weight, req.Sample)
	if err != nil {
		return nil, err
	}
	f := src.Face(req.Size)
	r.faces[key] = f
	cloudfont.Logger().Debug("fonts: resolved face",
		"family", req.Family, "weight", int(key.weight), "size", req.Size,
		"font", src.Name(), "origin", origin)
	return f, nil
}

// Close releases every loaded font source.
func (r *Resolver) Close() error {
	var first error
	for k, s := range r.sources {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
		delete(r.sources, k)
	}
	clear(r.faces)
	return first
}

func (r *Resolver) source(family string, weight cloudfont.FontWeight, sample string) (*text.FontSource, string, error) {
	if e, ok := r.closestFile(family, weight); ok {
		src, err := r.load(e.path, 0)
		if err == nil {
			return src, "file", nil
		}
		cloudfont.Logger().Warn("fonts: registered font unusable", "path", e.path, "err", err)
	}

	for _, fp := range r.systemCandidates(family, weight, sample) {
		src, err := r.load(fp.Location.File, int(fp.Location.Index))
		if err == nil {
			return src, "system", nil
		}
		cloudfont.Logger().Debug("fonts: skipping system font", "path", fp.Location.File, "err", err)
	}

	src, err := r.embedded(weight)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrNoFont, err)
	}
	if family != "" && !isGoFamily(family) {
		cloudfont.Logger().Warn("fonts: family not found, using Go font", "family", family)
	}
	return src, "embedded", nil
}

func (r *Resolver) closestFile(family string, weight cloudfont.FontWeight) (fileEntry, bool) {
	var (
		best  fileEntry
		found bool
	)
	for _, e := range r.opts.files {
		if font.NormalizeFamily(e.family) != family {
			continue
		}
		if !found || weightDistance(e.weight, weight) < weightDistance(best.weight, weight) {
			best, found = e, true
		}
	}
	return best, found
}

// systemCandidates returns the family's fonts closest in weight first,
// then other fonts that cover sample.
func (r *Resolver) systemCandidates(family string, weight cloudfont.FontWeight, sample string) []fontscan.Footprint {
	fps := r.systemFootprints()
	if len(fps) == 0 {
		return nil
	}

	var inFamily, covering []fontscan.Footprint
	for _, fp := range fps {
		if !loadable(fp.Location.File) || !covers(fp, sample) {
			continue
		}
		if fp.Family == family {
			inFamily = append(inFamily, fp)
		} else if strings.TrimSpace(sample) != "" {
			covering = append(covering, fp)
		}
	}
	sortByWeight(inFamily, weight)
	sortByWeight(covering, weight)
	if len(covering) > 4 {
		covering = covering[:4]
	}
	return append(inFamily, covering...)
}

func (r *Resolver) systemFootprints() []fontscan.Footprint {
	if r.opts.footprints != nil {
		return r.opts.footprints
	}
	if !r.opts.systemFonts {
		return nil
	}
	if !r.scanned {
		r.scanned = true
		logger := slog.NewLogLogger(cloudfont.Logger().Handler(), slog.LevelDebug)
		fps, err := fontscan.SystemFonts(logger, r.opts.cacheDir)
		if err != nil {
			cloudfont.Logger().Warn("fonts: system font scan failed", "err", err)
		}
		r.footprints = fps
	}
	return r.footprints
}

func (r *Resolver) load(path string, index int) (*text.FontSource, error) {
	key := path + "#" + strconv.Itoa(index)
	if s, ok := r.sources[key]; ok {
		return s, nil
	}
	var opts []text.SourceOption
	if index > 0 {
		opts = append(opts, text.WithCollectionIndex(index))
	}
	s, err := text.NewFontSourceFromFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFile, path, err)
	}
	r.sources[key] = s
	return s, nil
}

func (r *Resolver) embedded(weight cloudfont.FontWeight) (*text.FontSource, error) {
	name, data := "goregular", goregular.TTF
	switch {
	case weight >= cloudfont.WeightBold:
		name, data = "gobold", gobold.TTF
	case weight >= cloudfont.WeightMedium:
		name, data = "gomedium", gomedium.TTF
	}
	key := "go:" + name
	if s, ok := r.sources[key]; ok {
		return s, nil
	}
	s, err := text.NewFontSource(data)
	if err != nil {
		return nil, err
	}
	r.sources[key] = s
	return s, nil
}

func covers(fp fontscan.Footprint, sample string) bool {
	for _, c := range sample {
		if c <= ' ' {
			continue
		}
		if !fp.Runes.Contains(c) {
			return false
		}
	}
	return true
}

func loadable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

func isGoFamily(family string) bool {
	return family == "go" || strings.HasPrefix(family, "go ")
}

func weightDistance(a, b cloudfont.FontWeight) float64 {
	return math.Abs(float64(a - b))
}

func sortByWeight(fps []fontscan.Footprint, weight cloudfont.FontWeight) {
	dist := func(fp fontscan.Footprint) float64 {
		w := fp.Aspect.Weight
		if w == 0 {
			w = font.WeightNormal
		}
		d := math.Abs(float64(w) - float64(weight))
		if fp.Aspect.Style == font.StyleItalic {
			d += 1000
		}
		return d
	}
	slices.SortStableFunc(fps, func(a, b fontscan.Footprint) int {
		return cmp.Compare(dist(a), dist(b))
	})
}
