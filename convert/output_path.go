package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"msfmt/common"
	"msfmt/config"
	"msfmt/content"
	"msfmt/state"
)

// buildOutputPath returns full path of the result. Name comes from the
// output name template when it is configured and expands to something usable,
// otherwise from the source file name. Template may introduce subdirectories.
// Unless "nodirs" was requested source directory structure is kept under dst.
func buildOutputPath(c *content.Content, src, dst string, format common.OutputFmt, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)

	segments := splitAndCleanPath(expandOutputNameTemplate(c, src, format, env))
	if len(segments) == 0 {
		return filepath.Join(outDir, buildDefaultFileName(src, format, env))
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, segment := range segments {
		parts = append(parts, cleanPathSegment(segment, env))
	}
	parts[len(parts)-1] += format.Ext()
	return filepath.Join(parts...)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func sourceBaseName(src string) string {
	return strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
}

func buildDefaultFileName(src string, format common.OutputFmt, env *state.LocalEnv) string {
	return cleanPathSegment(sourceBaseName(src), env) + format.Ext()
}

// expandOutputNameTemplate returns empty string when there is no template or
// it could not be expanded.
func expandOutputNameTemplate(c *content.Content, src string, format common.OutputFmt, env *state.LocalEnv) string {
	tmpl := env.Cfg.Document.OutputNameTemplate
	if tmpl == "" {
		return ""
	}

	values := c.TemplateValues(config.OutputNameTemplateFieldName)
	values.SourceFile = sourceBaseName(src)
	values.Format = format.String()

	expanded, err := content.ExpandTemplate(config.OutputNameTemplateFieldName, tmpl, values)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(strings.TrimSpace(expanded))
}

// splitAndCleanPath breaks relative path into non-empty segments.
func splitAndCleanPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	})
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// stylesheetPath returns companion stylesheet name for preview output.
func stylesheetPath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".css"
}
