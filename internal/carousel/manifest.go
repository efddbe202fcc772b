package carousel

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is returned for manifests that parse but describe
// unusable slides.
var ErrInvalidManifest = errors.New("invalid slide manifest")

// Manifest is the on-disk list of slides.
//
//	slides:
//	  - image: images/freshers.jpg
//	    caption: Freshers week
type Manifest struct {
	Slides []Slide `yaml:"slides"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) ([]Slide, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Slides) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, ErrNoSlides)
	}
	for i, s := range m.Slides {
		if strings.TrimSpace(s.ImageURL) == "" {
			return nil, fmt.Errorf("%w: slide %d has no image", ErrInvalidManifest, i+1)
		}
	}
	return m.Slides, nil
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) ([]Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}
