package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cc2ass/cinecanvas"
	"cc2ass/config"
	"cc2ass/state"
)

// AssExt is extension of produced files.
const AssExt = ".ass"

// buildOutputPath returns output file path for document. "src" is source
// path relative to processed directory (or base name for single file), its
// directories are kept under "dst". User template may add subdirectories of
// its own, every segment is cleaned and, if requested, transliterated.
func buildOutputPath(doc *cinecanvas.Document, src, dst string, env *state.LocalEnv) string {
	outDir := filepath.Join(dst, filepath.Dir(src))
	conf := &env.Cfg.Conversion

	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if conf.OutputNameTemplate != "" {
		expanded, err := expandTemplate(doc, src, config.OutputNameTemplateFieldName, conf.OutputNameTemplate)
		switch {
		case err != nil:
			env.Log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		case strings.TrimSpace(expanded) == "":
			env.Log.Warn("Output filename template produced empty name, using default")
		default:
			segments := pathSegments(expanded)
			if len(segments) > 0 {
				parts := []string{outDir}
				for _, s := range segments {
					parts = append(parts, cleanPathSegment(s, conf.FileNameTransliterate))
				}
				return filepath.Join(parts...) + AssExt
			}
		}
	}
	return filepath.Join(outDir, cleanPathSegment(name, conf.FileNameTransliterate)+AssExt)
}

// pathSegments splits expanded template on both separators so templates
// behave the same on every platform.
func pathSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
