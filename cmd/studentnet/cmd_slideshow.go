package main

import (
	"context"
	"fmt"
	"io"

	"studentnet/cmd/studentnet/ui"
	"studentnet/internal/carousel"
	"studentnet/internal/dom"
	"studentnet/internal/logging"
	"studentnet/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	slideshowWatch bool
	slideshowNoTUI bool
)

// slideshowCmd runs the photo slideshow
var slideshowCmd = &cobra.Command{
	Use:   "slideshow [manifest]",
	Short: "Page through the photos of a manifest",
	Long: `Shows the slides listed in a YAML manifest one at a time.

The manifest defaults to slideshow.manifest from the config file:

  slides:
    - image: photos/beach.jpg
      caption: Beach day

With --watch the manifest is re-read whenever it changes on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSlideshow,
}

func init() {
	slideshowCmd.Flags().BoolVarP(&slideshowWatch, "watch", "w", false, "Reload the manifest when it changes")
	slideshowCmd.Flags().BoolVar(&slideshowNoTUI, "no-tui", false, "Print every slide once instead of opening the viewer")
}

func runSlideshow(cmd *cobra.Command, args []string) error {
	path := cfg.Slideshow.Manifest
	if len(args) == 1 {
		path = args[0]
	}

	slides, err := carousel.LoadManifest(path)
	if err != nil {
		return err
	}
	logger.Debug("manifest loaded", zap.String("path", path), zap.Int("slides", len(slides)))

	if slideshowNoTUI {
		return printSlides(cmd.OutOrStdout(), slides)
	}

	model, err := ui.NewCarouselPageModel(slides, ui.NewStyles(ui.DetectTheme(cfg.UI.DarkMode)), logging.Get(logging.CategoryCarousel))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, programOptions...)
	p := tea.NewProgram(model, opts...)

	if slideshowWatch || cfg.Slideshow.Watch {
		w, err := watch.NewManifestWatcher(path, cfg.GetSlideshowDebounce(), func(s []carousel.Slide) {
			p.Send(ui.ManifestReloadedMsg{Slides: s})
		}, logging.Get(logging.CategoryWatch))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			w.Stop()
			return err
		}
		g.Go(func() error {
			<-ctx.Done()
			w.Stop()
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		p.Quit()
		return nil
	})

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("slideshow failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// printSlides walks the slideshow once through its next button and prints
// each slide as it is shown.
func printSlides(w io.Writer, slides []carousel.Slide) error {
	c, err := carousel.New(dom.NewElement("body"), slides, carousel.Options{
		Logger: logging.Get(logging.CategoryCarousel),
	})
	if err != nil {
		return err
	}
	for range c.Len() {
		current := c.SlideElement(c.Index())
		number := current.FindByClass("numbertext")[0].Text()
		line := fmt.Sprintf("%s  %s", number, c.Current().ImageURL)
		if caption := c.Current().Caption; caption != "" {
			line += "  " + caption
		}
		fmt.Fprintln(w, line)
		c.NextButton().Click()
	}
	return nil
}
