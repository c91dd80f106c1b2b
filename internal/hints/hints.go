// Package hints produces the actionable one-liners the CLI appends to error
// messages, formatted uniformly as "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/dbzhang800/md-katex/internal/fileutil"
)

// IsInContainer reports whether we appear to run inside Docker or similar.
// Variable so tests can stub the probe.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciEnvVars are checked to detect a CI runner.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// ForBrowserConnect suggests the environment variables that usually fix a
// failed headless-Chrome launch. Suggestions already satisfied by the
// current environment are dropped.
func ForBrowserConnect() string {
	var suggestions []string

	inCI := false
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			inCI = true
			break
		}
	}

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		suggestions = append(suggestions, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		suggestions = append(suggestions, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	if len(suggestions) == 0 {
		return ""
	}
	return format(strings.Join(suggestions, "; "))
}

// ForTimeout points at the --timeout flag; KaTeX auto-render on large
// documents can outlast the default.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound suggests --config and, when the search touched the user
// config directory, creating the file there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/md-katex") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory covers failed output directory creation.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
