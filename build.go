//go:build ignore

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

var (
	m                 = minify.New()
	assetReplacements = map[string]string{
		"style.css": "style.min.css",
		"admin.css": "admin.min.css",
		"main.js":   "main.min.js",
		"admin.js":  "admin.min.js",
	}
)

func init() {
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/javascript", js.Minify)
}

func main() {
	release := flag.Bool("release", false, "Process assets for release")
	clean := flag.Bool("clean", false, "Clean processed assets and restore original files")
	flag.Parse()

	if *release && *clean {
		log.Fatal("Cannot use -release and -clean flags simultaneously.")
	}

	if *release {
		fmt.Println("Processing assets for release...")
		if err := processAssets(); err != nil {
			log.Fatalf("Failed to process assets for release: %v", err)
		}
		fmt.Println("Assets processed successfully.")
	} else if *clean {
		fmt.Println("Cleaning up processed assets...")
		if err := cleanupAssets(); err != nil {
			log.Fatalf("Failed to clean up assets: %v", err)
		}
		fmt.Println("Cleanup complete.")
	} else {
		fmt.Println("No action specified. Use -release to process assets or -clean to clean up.")
	}
}

func processAssets() error {
	for original, minified := range assetReplacements {
		src, err := assetPath(original)
		if err != nil {
			return err
		}
		if err := minifyFile(src, filepath.Join(filepath.Dir(src), minified)); err != nil {
			return fmt.Errorf("minify %s: %w", original, err)
		}
	}
	return rewriteTemplateReferences(false)
}

func cleanupAssets() error {
	if err := rewriteTemplateReferences(true); err != nil {
		return err
	}
	for original, minified := range assetReplacements {
		src, err := assetPath(original)
		if err != nil {
			continue
		}
		os.Remove(filepath.Join(filepath.Dir(src), minified))
	}
	return nil
}

func assetPath(name string) (string, error) {
	for _, dir := range []string{"static/css", "static/js"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("asset %s not found", name)
}

func minifyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	mediaType := "text/css"
	if strings.HasSuffix(src, ".js") {
		mediaType = "text/javascript"
	}

	var out bytes.Buffer
	if err := m.Minify(mediaType, &out, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.WriteFile(dst, out.Bytes(), 0o644)
}

func rewriteTemplateReferences(restore bool) error {
	return filepath.Walk("templates", func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".html") {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		content := string(data)
		for original, minified := range assetReplacements {
			if restore {
				content = strings.ReplaceAll(content, minified, original)
			} else {
				content = strings.ReplaceAll(content, original, minified)
			}
		}

		if content == string(data) {
			return nil
		}
		return os.WriteFile(path, []byte(content), info.Mode())
	})
}
