// Package profile wires the tag widgets of the edit-profile page to the
// elements they bind to and collects the values handed to form submission.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"studentnet/internal/config"
	"studentnet/internal/dom"
	"studentnet/internal/logging"
	"studentnet/internal/taglist"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed edit_profile.html
var editProfileHTML string

var (
	// ErrElementNotFound is returned when a category's input or container is
	// missing from the page.
	ErrElementNotFound = errors.New("element not found")
	// ErrTagTooLong is wrapped by Validate for tags over the length limit.
	ErrTagTooLong = errors.New("tag too long")
)

// Section is one bound tag widget.
type Section struct {
	Category  config.TagCategory
	Input     *dom.Element
	Container *dom.Element
	Tags      *taglist.Controller
}

// Form is the edit-profile page with one tag widget per category.
type Form struct {
	doc      *dom.Document
	sections []*Section
	maxLen   int
	logger   *zap.Logger
}

// NewForm parses the page in r and binds a tag widget for every category,
// looking inputs and containers up by name.
func NewForm(r io.Reader, cats []config.TagCategory, maxLen int, logger *zap.Logger) (*Form, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}
	logging.Get(logging.CategoryDOM).Debug("page parsed",
		zap.Int("elements", len(doc.Root().Find(func(*dom.Element) bool { return true }))))

	f := &Form{doc: doc, maxLen: maxLen, logger: logger}
	for _, cat := range cats {
		input, err := f.lookup(cat.InputName)
		if err != nil {
			return nil, err
		}
		container, err := f.lookup(cat.ContainerName)
		if err != nil {
			return nil, err
		}

		tags := taglist.New(input, container, taglist.Options{
			FieldName: cat.Name,
			Style:     cat.Style,
			Logger:    logging.Get(logging.CategoryTags),
		})
		f.sections = append(f.sections, &Section{
			Category:  cat,
			Input:     input,
			Container: container,
			Tags:      tags,
		})
	}

	logger.Debug("profile form bound", zap.Int("sections", len(f.sections)))
	return f, nil
}

// NewDefaultForm binds cfg's categories to the built-in edit-profile page.
func NewDefaultForm(cfg *config.Config, logger *zap.Logger) (*Form, error) {
	return NewForm(strings.NewReader(editProfileHTML), cfg.Tags.Categories, cfg.Tags.MaxLength, logger)
}

func (f *Form) lookup(name string) (*dom.Element, error) {
	els := f.doc.GetElementsByName(name)
	if len(els) == 0 {
		return nil, fmt.Errorf("%w: no element named %q", ErrElementNotFound, name)
	}
	return els[0], nil
}

// Sections returns the bound widgets in category order.
func (f *Form) Sections() []*Section {
	return append([]*Section(nil), f.sections...)
}

// Section returns the widget for the named category, or nil.
func (f *Form) Section(name string) *Section {
	for _, s := range f.sections {
		if s.Category.Name == name {
			return s
		}
	}
	return nil
}

// Prefill adds stored values to the named category as committed tags.
func (f *Form) Prefill(name string, values []string) error {
	s := f.Section(name)
	if s == nil {
		return fmt.Errorf("%w: no tag category %q", ErrElementNotFound, name)
	}
	for _, v := range values {
		s.Tags.Add(v)
	}
	return nil
}

// Values returns the serialized tag fields keyed by field name.
func (f *Form) Values() url.Values {
	v := make(url.Values, len(f.sections))
	for _, s := range f.sections {
		v.Set(s.Tags.FieldName(), s.Tags.Serialized())
	}
	return v
}

// Validate checks every tag against the length limit. Each category reports
// at most one violation.
func (f *Form) Validate() error {
	title := cases.Title(language.English)
	var errs []error
	for _, s := range f.sections {
		for _, text := range s.Tags.Texts() {
			if utf8.RuneCountInString(text) > f.maxLen {
				errs = append(errs, fmt.Errorf("%w: %s must not exceed %d characters",
					ErrTagTooLong, title.String(s.Category.Name), f.maxLen))
				break
			}
		}
	}
	return errors.Join(errs...)
}

// Messages flattens a Validate error into user-facing lines.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var out []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, message(e))
		}
		return out
	}
	return []string{message(err)}
}

func message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrTagTooLong.Error()+": ")
}
