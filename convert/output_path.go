package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"mxc/common"
	"mxc/config"
	"mxc/state"
)

// buildOutputPath returns output file path for worksheet src. "rel" is the
// source path relative to the processed directory, just base name for a
// single file. Directory structure is kept unless NoDirs is requested.
func buildOutputPath(rel, dst string, format common.OutputFmt, env *state.LocalEnv) string {
	return filepath.Join(determineOutputDir(rel, dst, env), buildDefaultFileName(rel, format, env))
}

func determineOutputDir(rel, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return dst
	}
	segments := strings.Split(filepath.ToSlash(dir), "/")
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dst)
	for _, s := range segments {
		if s == "" || s == "." || s == ".." {
			continue
		}
		parts = append(parts, cleanPathSegment(s, env))
	}
	return filepath.Join(parts...)
}

func buildDefaultFileName(src string, format common.OutputFmt, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return cleanPathSegment(baseName, env) + format.Ext()
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
