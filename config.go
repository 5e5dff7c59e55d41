package kinetic

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresets []byte

// Duration is a time.Duration written in YAML as a Go duration string such
// as "150ms".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML formats the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// ChannelPreset is one keyframe table.
type ChannelPreset struct {
	Breakpoints []float64 `yaml:"breakpoints"`
	Values      []float64 `yaml:"values"`
	Ease        string    `yaml:"ease,omitempty"`
}

// ScrollPreset describes a ScrollEffect. Entry and exit default to
// "start end" and "end start"; Spring names an entry in Config.Springs.
type ScrollPreset struct {
	Entry      string         `yaml:"entry,omitempty"`
	Exit       string         `yaml:"exit,omitempty"`
	Spring     string         `yaml:"spring,omitempty"`
	Opacity    *ChannelPreset `yaml:"opacity,omitempty"`
	Blur       *ChannelPreset `yaml:"blur,omitempty"`
	TranslateX *ChannelPreset `yaml:"translateX,omitempty"`
	TranslateY *ChannelPreset `yaml:"translateY,omitempty"`
	Scale      *ChannelPreset `yaml:"scale,omitempty"`
}

// DisclosurePreset describes a Disclosure.
type DisclosurePreset struct {
	Items      int      `yaml:"items"`
	Stagger    Duration `yaml:"stagger"`
	ItemExit   Duration `yaml:"itemExit"`
	Grow       Duration `yaml:"grow"`
	EnterDelay Duration `yaml:"enterDelay"`
}

// StylePreset is a partial Style; unset fields take StyleNeutral values.
type StylePreset struct {
	Opacity    *float64 `yaml:"opacity,omitempty"`
	Blur       *float64 `yaml:"blur,omitempty"`
	TranslateX *float64 `yaml:"translateX,omitempty"`
	TranslateY *float64 `yaml:"translateY,omitempty"`
	Scale      *float64 `yaml:"scale,omitempty"`
}

// RevealPreset describes a StaggeredReveal.
type RevealPreset struct {
	Items        int          `yaml:"items"`
	BaseDelay    Duration     `yaml:"baseDelay"`
	PerItemDelay Duration     `yaml:"perItemDelay"`
	Duration     Duration     `yaml:"duration"`
	Ease         string       `yaml:"ease,omitempty"`
	From         *StylePreset `yaml:"from,omitempty"`
	To           *StylePreset `yaml:"to,omitempty"`
}

// TypewriterPreset describes a Typewriter.
type TypewriterPreset struct {
	Words       []string `yaml:"words"`
	TypeDelay   Duration `yaml:"typeDelay"`
	DeleteDelay Duration `yaml:"deleteDelay"`
	PauseFull   Duration `yaml:"pauseFull"`
	PauseEmpty  Duration `yaml:"pauseEmpty"`
}

// Config is a set of named presets.
type Config struct {
	Springs     map[string]SpringConfig     `yaml:"springs,omitempty"`
	Scroll      map[string]ScrollPreset     `yaml:"scroll,omitempty"`
	Disclosures map[string]DisclosurePreset `yaml:"disclosures,omitempty"`
	Reveals     map[string]RevealPreset     `yaml:"reveals,omitempty"`
	Typewriters map[string]TypewriterPreset `yaml:"typewriters,omitempty"`
}

// DefaultConfig returns the built-in presets. Each call returns a fresh
// copy.
func DefaultConfig() *Config {
	c, err := parseConfig(builtinPresets)
	if err != nil {
		panic(fmt.Sprintf("kinetic: built-in presets: %v", err))
	}
	return c
}

// LoadConfig decodes and validates a YAML preset file. Unknown keys are
// rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	return LoadConfigOver(nil, r)
}

// LoadConfigFile loads a YAML preset file from disk.
func LoadConfigFile(path string) (*Config, error) {
	return LoadConfigFileOver(nil, path)
}

// LoadConfigOver decodes a YAML preset file, merges it over a copy of base
// and validates the result, so the file may refer to springs defined in
// base. base itself is not modified; nil means no base.
func LoadConfigOver(base *Config, r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("kinetic: read config: %w", err)
	}
	override, err := decodeConfig(data)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	c.Merge(base)
	c.Merge(override)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfigFileOver is LoadConfigOver for a file on disk.
func LoadConfigFileOver(base *Config, path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kinetic: open config: %w", err)
	}
	defer f.Close()
	return LoadConfigOver(base, f)
}

func parseConfig(data []byte) (*Config, error) {
	c, err := decodeConfig(data)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeConfig(data []byte) (*Config, error) {
	c := &Config{}
	if len(data) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("kinetic: parse config: %w", err)
		}
	}
	return c, nil
}

// Merge copies every preset in other over c, replacing presets with the
// same name.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	c.Springs = mergeMap(c.Springs, other.Springs)
	c.Scroll = mergeMap(c.Scroll, other.Scroll)
	c.Disclosures = mergeMap(c.Disclosures, other.Disclosures)
	c.Reveals = mergeMap(c.Reveals, other.Reveals)
	c.Typewriters = mergeMap(c.Typewriters, other.Typewriters)
}

func mergeMap[V any](dst, src map[string]V) map[string]V {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]V, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Validate builds every preset and joins all errors found.
func (c *Config) Validate() error {
	var errs []error
	for _, name := range sortedKeys(c.Springs) {
		if _, err := c.Spring(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range sortedKeys(c.Scroll) {
		if _, err := c.ScrollConfig(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range sortedKeys(c.Disclosures) {
		if _, err := c.Disclosure(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range sortedKeys(c.Reveals) {
		if _, err := c.Reveal(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range sortedKeys(c.Typewriters) {
		if _, err := c.Typewriter(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Spring returns the named spring. Unset mass and rest delta take the
// DefaultSpringConfig values.
func (c *Config) Spring(name string) (SpringConfig, error) {
	sc, ok := c.Springs[name]
	if !ok {
		return SpringConfig{}, fmt.Errorf("kinetic: spring %q: %w", name, ErrUnknownPreset)
	}
	def := DefaultSpringConfig()
	if sc.Mass == 0 {
		sc.Mass = def.Mass
	}
	if sc.RestDelta == 0 {
		sc.RestDelta = def.RestDelta
	}
	if err := sc.Validate(); err != nil {
		return SpringConfig{}, fmt.Errorf("kinetic: spring %q: %w", name, err)
	}
	return sc, nil
}

// ScrollConfig builds the named scroll preset.
func (c *Config) ScrollConfig(name string) (ScrollConfig, error) {
	p, ok := c.Scroll[name]
	if !ok {
		return ScrollConfig{}, fmt.Errorf("kinetic: scroll %q: %w", name, ErrUnknownPreset)
	}
	wrap := func(err error) error { return fmt.Errorf("kinetic: scroll %q: %w", name, err) }

	out := DefaultScrollConfig()
	var err error
	if p.Entry != "" {
		if out.Entry, err = ParseOffset(p.Entry); err != nil {
			return ScrollConfig{}, wrap(err)
		}
	}
	if p.Exit != "" {
		if out.Exit, err = ParseOffset(p.Exit); err != nil {
			return ScrollConfig{}, wrap(err)
		}
	}
	if p.Spring != "" {
		sc, err := c.Spring(p.Spring)
		if err != nil {
			return ScrollConfig{}, wrap(err)
		}
		out.Spring = &sc
	}

	channels := []struct {
		name string
		in   *ChannelPreset
		out  **Keyframes
	}{
		{"opacity", p.Opacity, &out.Styles.Opacity},
		{"blur", p.Blur, &out.Styles.Blur},
		{"translateX", p.TranslateX, &out.Styles.TranslateX},
		{"translateY", p.TranslateY, &out.Styles.TranslateY},
		{"scale", p.Scale, &out.Styles.Scale},
	}
	for _, ch := range channels {
		if ch.in == nil {
			continue
		}
		k, err := NewKeyframes(ch.in.Breakpoints, ch.in.Values)
		if err != nil {
			return ScrollConfig{}, fmt.Errorf("kinetic: scroll %q channel %s: %w", name, ch.name, err)
		}
		if ch.in.Ease != "" {
			fn, err := EaseByName(ch.in.Ease)
			if err != nil {
				return ScrollConfig{}, fmt.Errorf("kinetic: scroll %q channel %s: %w", name, ch.name, err)
			}
			k = k.WithEase(fn)
		}
		*ch.out = k
	}
	return out, nil
}

// Disclosure builds the named disclosure preset.
func (c *Config) Disclosure(name string) (DisclosureConfig, error) {
	p, ok := c.Disclosures[name]
	if !ok {
		return DisclosureConfig{}, fmt.Errorf("kinetic: disclosure %q: %w", name, ErrUnknownPreset)
	}
	out := DisclosureConfig{
		ItemCount:  p.Items,
		Stagger:    time.Duration(p.Stagger),
		ItemExit:   time.Duration(p.ItemExit),
		Grow:       time.Duration(p.Grow),
		EnterDelay: time.Duration(p.EnterDelay),
	}
	if err := out.Validate(); err != nil {
		return DisclosureConfig{}, fmt.Errorf("kinetic: disclosure %q: %w", name, err)
	}
	return out, nil
}

// Reveal builds the named reveal preset. Unset From and To fields take
// StyleNeutral values.
func (c *Config) Reveal(name string) (RevealConfig, error) {
	p, ok := c.Reveals[name]
	if !ok {
		return RevealConfig{}, fmt.Errorf("kinetic: reveal %q: %w", name, ErrUnknownPreset)
	}
	out := RevealConfig{
		Items:        p.Items,
		BaseDelay:    time.Duration(p.BaseDelay),
		PerItemDelay: time.Duration(p.PerItemDelay),
		Duration:     time.Duration(p.Duration),
		From:         p.From.style(),
		To:           p.To.style(),
	}
	if p.Ease != "" {
		fn, err := EaseByName(p.Ease)
		if err != nil {
			return RevealConfig{}, fmt.Errorf("kinetic: reveal %q: %w", name, err)
		}
		out.Ease = fn
	}
	if err := out.Validate(); err != nil {
		return RevealConfig{}, fmt.Errorf("kinetic: reveal %q: %w", name, err)
	}
	return out, nil
}

// Typewriter builds the named typewriter preset.
func (c *Config) Typewriter(name string) (TypewriterConfig, error) {
	p, ok := c.Typewriters[name]
	if !ok {
		return TypewriterConfig{}, fmt.Errorf("kinetic: typewriter %q: %w", name, ErrUnknownPreset)
	}
	out := TypewriterConfig{
		Words:       append([]string(nil), p.Words...),
		TypeDelay:   time.Duration(p.TypeDelay),
		DeleteDelay: time.Duration(p.DeleteDelay),
		PauseFull:   time.Duration(p.PauseFull),
		PauseEmpty:  time.Duration(p.PauseEmpty),
	}
	if err := out.Validate(); err != nil {
		return TypewriterConfig{}, fmt.Errorf("kinetic: typewriter %q: %w", name, err)
	}
	return out, nil
}

// Names returns the sorted preset names of each kind, keyed by kind.
func (c *Config) Names() map[string][]string {
	return map[string][]string{
		"springs":     sortedKeys(c.Springs),
		"scroll":      sortedKeys(c.Scroll),
		"disclosures": sortedKeys(c.Disclosures),
		"reveals":     sortedKeys(c.Reveals),
		"typewriters": sortedKeys(c.Typewriters),
	}
}

func (p *StylePreset) style() Style {
	s := StyleNeutral
	if p == nil {
		return s
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.Opacity, p.Opacity)
	set(&s.Blur, p.Blur)
	set(&s.TranslateX, p.TranslateX)
	set(&s.TranslateY, p.TranslateY)
	set(&s.Scale, p.Scale)
	return s
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
}

// EaseByName returns the gween easing function with the given camel-case
// name, e.g. "outCubic".
func EaseByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("kinetic: easing %q: %w", name, ErrUnknownPreset)
	}
	return fn, nil
}

// EaseNames returns the names accepted by EaseByName, sorted.
func EaseNames() []string {
	return sortedKeys(easings)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
