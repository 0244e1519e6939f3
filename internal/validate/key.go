// Package validate provides input validation utilities for jsontoggle,
// ensuring well-formed keys and paths before files are read or mutated.
//
// Implements validation rules for dotted manifest keys (e.g. project.version)
// and toggle paths inside JSON documents. Prevents malformed keys from
// causing confusing lookup failures deeper in the manifest and document
// layers.
//
// Used by the CLI flag validation and the release pipeline configuration to
// reject bad input at the system entry points.

package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// DottedKeyFormat validates dotted key strings such as "project.version".
// Each segment must be non-empty and contain only [A-Za-z0-9_-]; segments
// are separated by single dots.
//
// Necessary because both the TOML manifest lookup and the JSON document
// layer split keys on dots, so empty or malformed segments would silently
// address the wrong node.
func DottedKeyFormat(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	segmentRegex := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	for _, segment := range strings.Split(key, ".") {
		if segment == "" {
			return fmt.Errorf("key '%s' contains an empty segment", key)
		}
		if !segmentRegex.MatchString(segment) {
			return fmt.Errorf("key segment '%s' must contain only letters, numbers, hyphens (-), and underscores (_)", segment)
		}
	}

	return nil
}

// TogglePathFormat validates toggle paths addressing nodes inside a JSON
// document. Paths use dotted segments where array elements are addressed by
// numeric segments (e.g. "users.0.name").
//
// Pattern metacharacters are rejected: the JSON layer would treat them as
// wildcards or queries while toggle files are named literally, so a pattern
// would read one node and store under another.
func TogglePathFormat(path string) error {
	if path == "" {
		return fmt.Errorf("toggle path cannot be empty")
	}

	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return fmt.Errorf("toggle path '%s' contains an empty segment", path)
		}
		if strings.ContainsAny(segment, `*?#@|!\`) {
			return fmt.Errorf("toggle path segment '%s' must not contain pattern characters (*, ?, #, @, |, !, \\)", segment)
		}
	}

	return nil
}
