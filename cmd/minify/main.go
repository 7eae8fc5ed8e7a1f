package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// Media types by file extension.
var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func main() {
	var (
		inputFile  = flag.String("input", "", "Input file path (single file mode)")
		outputFile = flag.String("output", "", "Output file path (single file mode)")
		fileType   = flag.String("type", "", "File type (CSS, JS, or HTML)")
		distDir    = flag.String("dist", "dist", "Output directory for a full build")
	)
	flag.Parse()

	m := newMinifier()

	if *inputFile == "" && *outputFile == "" {
		stats, err := buildDist(m, []string{"templates", "static"}, *distDir)
		if err != nil {
			log.Fatalf("Build failed: %v", err)
		}
		for _, s := range stats {
			fmt.Println(s)
		}
		fmt.Printf("Minified %d files into %s/\n", len(stats), *distDir)
		return
	}

	if *inputFile == "" || *outputFile == "" || *fileType == "" {
		log.Fatal("Usage: go run ./cmd/minify [-dist=<dir>] | -input=<file> -output=<file> -type=<css|js|html>")
	}

	mediaType, ok := mediaTypes["."+strings.ToLower(*fileType)]
	if !ok {
		log.Fatalf("Unsupported file type: %s (supported: css, js, html)", *fileType)
	}
	s, err := minifyFile(m, *inputFile, *outputFile, mediaType)
	if err != nil {
		log.Fatalf("Failed to minify %s: %v", *inputFile, err)
	}
	fmt.Println(s)
}

// newMinifier returns a minifier for the asset types the server ships.
// Go template actions in HTML are passed through untouched.
func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
		TemplateDelims:   html.GoTemplateDelims,
	})
	return m
}

// fileStat describes one minified file.
type fileStat struct {
	Path     string
	Original int
	Minified int
}

func (s fileStat) String() string {
	ratio := 0.0
	if s.Original > 0 {
		ratio = float64(s.Original-s.Minified) / float64(s.Original) * 100
	}
	return fmt.Sprintf("%s: %d bytes -> %d bytes (%.1f%% reduction)", s.Path, s.Original, s.Minified, ratio)
}

// buildDist minifies every known asset under srcDirs into distDir, keeping
// relative paths. Missing source directories are skipped.
func buildDist(m *minify.M, srcDirs []string, distDir string) ([]fileStat, error) {
	var stats []fileStat
	for _, src := range srcDirs {
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
			if !ok {
				return nil
			}
			s, err := minifyFile(m, path, filepath.Join(distDir, path), mediaType)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			stats = append(stats, s)
			return nil
		})
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) (fileStat, error) {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fileStat{}, err
	}

	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return fileStat{}, err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fileStat{}, err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return fileStat{}, err
	}

	return fileStat{Path: srcPath, Original: len(src), Minified: len(minified)}, nil
}
