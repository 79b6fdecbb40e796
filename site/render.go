package site

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/xvzls/BrainMade-org/markup"
)

// Pages renders every page of the site. Pages share no state, so they render
// concurrently; the result keeps the write order of sitePages.
func (s *Service) Pages(ctx context.Context) ([]Page, error) {
	pages := make([]Page, len(sitePages))
	group, groupctx := errgroup.WithContext(ctx)
	for i, entry := range sitePages {
		group.Go(func() error {
			if err := groupctx.Err(); err != nil {
				return err
			}
			html, err := s.renderPage(entry.build())
			if err != nil {
				return fmt.Errorf("render %s: %w", entry.path, err)
			}
			pages[i] = Page{Path: entry.path, HTML: html}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// renderPage renders a single node and minifies it when enabled.
func (s *Service) renderPage(node markup.Node) ([]byte, error) {
	raw := node.AppendHTML(make([]byte, 0, 16*1024))
	minified, err := s.renderer.MinifyHTML(raw)
	if err != nil {
		return nil, fmt.Errorf("minify: %w", err)
	}
	return minified, nil
}
