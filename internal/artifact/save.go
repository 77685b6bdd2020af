// Package artifact lands backend-exported spreadsheets on disk. The backend
// ships xlsx content base64-encoded inside the promotion state; this is the
// terminal counterpart of the browser's blob-and-click download.
package artifact

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/ElaineMBarros/promoterm/internal/logger"
)

// ContentType of every artifact the backend emits today.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Saver struct {
	dir string
}

func NewSaver(dir string) *Saver {
	return &Saver{dir: dir}
}

// Download decodes the payload and writes it under the download directory.
// Failures never escape: they are logged and reported as ok=false, and the
// chat flow carries on without the file. The caller clears the artifact from
// the pending state after a successful handoff so it is never offered twice.
func (s *Saver) Download(b64, filename string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		logger.Error("artifact decode failed", "filename", filename, "error", err)
		return "", false
	}

	name := sanitize(filename)
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		logger.Error("artifact dir create failed", "dir", s.dir, "error", err)
		return "", false
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		logger.Error("artifact write failed", "path", path, "error", err)
		return "", false
	}

	logger.Info("artifact saved", "path", path, "bytes", len(raw))
	return path, true
}

// sanitize keeps only the base name of the backend-supplied filename and
// makes sure the spreadsheet extension is there.
func sanitize(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "promocao"
	}
	if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		name += ".xlsx"
	}
	return name
}
