package codec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

const dirPerm = 0o755

// fileNameReplacer keeps a tag from escaping the output directory.
var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_")

// DirWriter writes each tag document to its own file in a directory.
type DirWriter struct {
	dir     string
	encoder domain.Encoder
}

// NewDirWriter creates a writer for dir using encoder.
func NewDirWriter(dir string, encoder domain.Encoder) *DirWriter {
	return &DirWriter{dir: dir, encoder: encoder}
}

// FileName returns the file name used for tag.
func (w *DirWriter) FileName(tag string) string {
	return fileStem(tag) + w.encoder.Extension()
}

func fileStem(tag string) string {
	name := fileNameReplacer.Replace(tag)
	if name == "." || name == ".." {
		name = strings.Repeat("_", len(name))
	}
	return name
}

// uniqueFileName returns the file name for tag, adding a numeric suffix when
// an earlier tag already took it. Names are compared case-insensitively so
// that tags stay apart on case-insensitive filesystems.
func (w *DirWriter) uniqueFileName(tag string, taken map[string]struct{}) string {
	stem := fileStem(tag)
	name := stem + w.encoder.Extension()
	for n := 2; ; n++ {
		if _, ok := taken[strings.ToLower(name)]; !ok {
			break
		}
		name = fmt.Sprintf("%s-%d%s", stem, n, w.encoder.Extension())
	}
	taken[strings.ToLower(name)] = struct{}{}
	return name
}

// WriteAll creates the directory if needed and writes one file per tag, in
// tag order. Tags whose file names collide get a numeric suffix in that
// order. It returns the written paths keyed by tag.
func (w *DirWriter) WriteAll(ctx context.Context, docs map[string]*domain.TagDocument) (map[string]string, error) {
	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tags := make([]string, 0, len(docs))
	for tag := range docs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	written := make(map[string]string, len(tags))
	taken := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(w.dir, w.uniqueFileName(tag, taken))
		if err := w.writeFile(path, docs[tag]); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written[tag] = path
	}

	return written, nil
}

func (w *DirWriter) writeFile(path string, doc *domain.TagDocument) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := w.encoder.Encode(doc, file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
