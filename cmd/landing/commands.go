package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/justcloud/landing/internal/display"
	"github.com/justcloud/landing/internal/page"
	"github.com/justcloud/landing/internal/server"
	"github.com/justcloud/landing/pkg/browser"
)

// newRenderCmd creates the render subcommand.
func newRenderCmd(opts *rootOptions) *cobra.Command {
	var in, out string
	var open bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the blog feed and video titles into a page",
		Long:  "Read the landing page HTML, fill the blog gallery and video titles, and write the result. Widget failures degrade the page (error panel, fallback titles) without failing the command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("failed to open page: %w", err)
			}
			defer func() { _ = src.Close() }()

			var buf bytes.Buffer
			report, err := opts.renderer().RenderTo(cmd.Context(), src, &buf)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}

			if err := writeFile(out, buf.Bytes()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s -> %s\n", in, out)
			fmt.Fprintf(cmd.OutOrStdout(), "Blog: %s (%d cards)\n", report.Feed.Status, report.Feed.Cards)
			fmt.Fprintf(cmd.OutOrStdout(), "Video titles: %d resolved, %d fallback\n", report.Titles.Resolved, report.Titles.Fallback)

			if open {
				if err := browser.Open(out); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Could not open browser: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "index.html", "Landing page HTML to render")
	cmd.Flags().StringVarP(&out, "out", "o", "dist/index.html", "Output file, or - for stdout")
	cmd.Flags().BoolVar(&open, "open", false, "Open the rendered page in the default browser")

	return cmd
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- public web page
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// newServeCmd creates the serve subcommand.
func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr, pagePath, staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page with widgets rendered per request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(opts.renderer(), server.Config{
				PagePath:  pagePath,
				StaticDir: staticDir,
			}, opts.logger)
			return srv.Start(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVarP(&pagePath, "page", "p", "index.html", "Landing page HTML template")
	cmd.Flags().StringVarP(&staticDir, "static", "s", "", "Directory with static assets (images, css, js)")

	return cmd
}

// newFeedCmd creates the feed subcommand.
func newFeedCmd(opts *rootOptions) *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Display the blog posts shown on the landing page",
		Long:  "Fetch the blog RSS feed and display the posts the landing page would render.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "html" {
				return fmt.Errorf("invalid format %q: must be 'text' or 'html'", format)
			}

			posts, err := opts.blogClient().FetchPosts(cmd.Context(), opts.cfg.FeedURL, limit)
			if err != nil {
				return fmt.Errorf("blog feed: %w", err)
			}

			if format == "html" {
				cards, err := opts.cardFormatter().FormatCards(posts)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), cards)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), display.NewTerminalFormatter().FormatPosts(posts))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", page.MaxPosts, "Maximum number of posts to display (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or html (cards)")

	return cmd
}

// newTitlesCmd creates the titles subcommand.
func newTitlesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titles <video-id>...",
		Short: "Resolve YouTube video titles",
		Long:  "Look up each video title through oEmbed, one request at a time. Failed lookups print the fallback title.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.youtubeClient()
			for _, id := range args {
				title, err := client.FetchTitle(cmd.Context(), id)
				if err != nil {
					opts.logger.Warn("failed to load video title", "video_id", id, "error", err)
				}
				if title == "" {
					title = opts.cfg.FallbackTitle
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, title)
			}
			return nil
		},
	}

	return cmd
}

// newConfigCmd creates the config subcommand.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long:  "Print the configuration resolved from defaults, the .env file and LANDING_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.cfg
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Feed URL:          %s\n", c.FeedURL)
			fmt.Fprintf(w, "oEmbed endpoint:   %s\n", c.OEmbedURL)
			fmt.Fprintf(w, "Locale:            %s\n", c.Locale)
			fmt.Fprintf(w, "Fallback title:    %s\n", c.FallbackTitle)
			fmt.Fprintf(w, "Placeholder image: %s\n", c.PlaceholderImage)
			fmt.Fprintf(w, "Read more label:   %s\n", c.ReadMoreLabel)
			fmt.Fprintf(w, "Title concurrency: %d\n", c.TitleConcurrency)
			fmt.Fprintf(w, "Title rate limit:  %s\n", orUnlimited(c.TitleRPS == 0, strconv.FormatFloat(c.TitleRPS, 'g', -1, 64)+"/s"))
			fmt.Fprintf(w, "HTTP timeout:      %s\n", orUnlimited(c.HTTPTimeout == 0, c.HTTPTimeout.String()))
			fmt.Fprintf(w, "Log level:         %s\n", c.LogLevel)
			fmt.Fprintf(w, "Log format:        %s\n", c.LogFormat)
			return nil
		},
	}

	return cmd
}

func orUnlimited(zero bool, v string) string {
	if zero {
		return "none"
	}
	return v
}
