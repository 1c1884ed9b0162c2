package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/leakhound/leakhound/internal/validate"
)

// WalkConfig controls file selection when scanning a directory tree. The
// walk decodes bytes to text and skips anything the engine must never see
// (binary, invalid UTF-8, oversized), per the engine's input contract.
type WalkConfig struct {
	Root            string
	IncludeGlobs    string // comma-separated, doublestar syntax
	ExcludeGlobs    string // comma-separated, doublestar syntax
	MaxBytes        int64
	DefaultExcludes bool
}

// WalkFiles traverses the tree under cfg.Root and invokes handle with the
// relative path and decoded text of each eligible file.
func WalkFiles(cfg WalkConfig, handle func(rel, text string)) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			logrus.WithField("path", rel).Debug("skipping oversized file")
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		if err := validate.TextSize(b, cfg.MaxBytes); err != nil {
			logrus.WithField("path", rel).Debug(err)
			return nil
		}
		text, err := validate.DecodeText(b)
		if err != nil {
			logrus.WithField("path", rel).Debugf("skipping: %v", err)
			return nil
		}
		handle(rel, text)
		return nil
	})
}

// allowedByGlobs returns true if the path passes the include/exclude glob
// configuration. Include globs, when present, act as a positive filter;
// exclude globs are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg WalkConfig) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
