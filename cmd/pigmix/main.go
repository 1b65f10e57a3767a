// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command pigmix mixes colors like paint.
//
// By default it prints the mix of two colors at the requested ratio and
// optionally writes a left-to-right gradient between them as a PNG. With
// -blend it mixes two PNG images of the same size instead.
//
//	pigmix -a yellow -b "#00003c" -ratio 0.5
//	pigmix -a gold -b navy -output gradient.png -dither
//	pigmix -blend a.png,b.png -ratio 0.3 -output mixed.png
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/pigment"
)

func main() {
	var (
		colorA  = flag.String("a", "yellow", "first color (hex or SVG name)")
		colorB  = flag.String("b", "blue", "second color (hex or SVG name)")
		ratio   = flag.Float64("ratio", 0.5, "share of the second color")
		blend   = flag.String("blend", "", "comma-separated pair of PNG files to mix")
		output  = flag.String("output", "", "output PNG file")
		width   = flag.Int("width", 512, "gradient width")
		height  = flag.Int("height", 64, "gradient height")
		dither  = flag.Bool("dither", false, "dither the gradient")
		workers = flag.Int("workers", 0, "image workers (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		pigment.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	m := pigment.NewMixer(pigment.WithWorkers(*workers))

	if *blend != "" {
		if *output == "" {
			log.Fatal("-blend requires -output")
		}
		if err := blendFiles(m, *blend, float32(*ratio), *output); err != nil {
			log.Fatalf("Failed to blend: %v", err)
		}
		log.Printf("Blend saved to %s\n", *output)
		return
	}

	a, err := pigment.ParseColor(*colorA)
	if err != nil {
		log.Fatalf("Invalid -a: %v", err)
	}
	b, err := pigment.ParseColor(*colorB)
	if err != nil {
		log.Fatalf("Invalid -b: %v", err)
	}

	mixed := m.MixSRGBU8(a, b, float32(*ratio))
	fmt.Printf("#%02x%02x%02x\n", mixed[0], mixed[1], mixed[2])
	fmt.Printf("ΔE2000 from naive average: %.1f\n", pigment.Distance(mixed, average(a, b, *ratio)))

	if *output == "" {
		return
	}
	if *width < 2 || *height < 1 {
		log.Fatalf("Invalid gradient size %dx%d", *width, *height)
	}
	if err := savePNG(*output, gradient(m, a, b, *width, *height, *dither)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Gradient saved to %s (%dx%d)\n", *output, *width, *height)
}

func blendFiles(m *pigment.Mixer, pair string, ratio float32, output string) error {
	nameA, nameB, ok := strings.Cut(pair, ",")
	if !ok {
		return fmt.Errorf("-blend wants two files, got %q", pair)
	}
	a, err := loadPNG(nameA)
	if err != nil {
		return err
	}
	b, err := loadPNG(nameB)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := m.MixImages(ctx, a, b, ratio)
	if err != nil {
		return err
	}
	return savePNG(output, out)
}

// gradient renders a horizontal ramp from a to b. Each column is mixed
// once unless dithering, which requantizes every pixel.
func gradient(m *pigment.Mixer, a, b [3]uint8, w, h int, dither bool) image.Image {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // G404: dither noise, not security

	for x := range w {
		ratio := float32(x) / float32(w-1)
		c := m.MixSRGBU8(a, b, ratio)
		for y := range h {
			if dither {
				c = m.MixSRGBU8Dither(a, b, ratio, rng)
			}
			i := out.PixOffset(x, y)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = c[0], c[1], c[2], 0xff
		}
	}
	return out
}

func average(a, b [3]uint8, ratio float64) [3]uint8 {
	ratio = min(max(ratio, 0), 1)
	var out [3]uint8
	for i := range out {
		out[i] = uint8(float64(a[i])*(1-ratio) + float64(b[i])*ratio + 0.5) //nolint:gosec // G115: in [0,255]
	}
	return out
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
