// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromedp/chromedp"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/trace"
)

// renderer writes a chart to a set of output files.
type renderer struct {
	outputs []string

	// chrome rasterizes with headless Chrome.
	chrome bool
}

// write writes c to every output of r concurrently. "-" is standard
// output and always gets SVG.
func (r *renderer) write(c *trace.Chart) error {
	g, ctx := errgroup.WithContext(context.Background())
	for _, out := range r.outputs {
		out := out
		g.Go(func() error {
			var buf bytes.Buffer
			var err error
			switch {
			case out == "-" || filepath.Ext(out) == ".svg":
				err = c.WriteSVG(&buf)
			case !scene.IsImageFile(out):
				return fmt.Errorf("%s: unknown output format", out)
			case r.chrome:
				err = chromeImage(ctx, c, &buf, out)
			default:
				err = c.WriteImage(&buf, out)
			}
			if err != nil {
				return err
			}
			if out == "-" {
				_, err = os.Stdout.Write(buf.Bytes())
				return err
			}
			return os.WriteFile(out, buf.Bytes(), 0666)
		})
	}
	return g.Wait()
}

// chromeImage renders c in headless Chrome and encodes a screenshot
// of it to buf in the format implied by filename.
func chromeImage(ctx context.Context, c *trace.Chart, buf *bytes.Buffer, filename string) error {
	var svg bytes.Buffer
	if err := c.WriteSVG(&svg); err != nil {
		return err
	}
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg.Bytes())

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var shot []byte
	err := chromedp.Run(ctx, chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	})
	if err != nil {
		return fmt.Errorf("%s: chrome: %w", filename, err)
	}
	if len(shot) == 0 {
		return fmt.Errorf("%s: chrome returned an empty screenshot", filename)
	}

	img, err := imaging.Decode(bytes.NewReader(shot))
	if err != nil {
		return fmt.Errorf("%s: decoding screenshot: %w", filename, err)
	}
	return scene.EncodeImage(buf, img, filename)
}
