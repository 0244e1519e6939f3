package toggle

import (
	"fmt"
	"os"
)

// demoContent mirrors the document users see the first time they try the
// tool: a couple of nested feature flags, settings, and an array.
const demoContent = `{
  "featureFlags": {
    "newDashboard": true,
    "darkMode": false,
    "experimentalSearch": {
      "enabled": true,
      "version": 2
    }
  },
  "settings": {
    "theme": "dark",
    "notifications": {
      "email": true,
      "sms": false
    }
  },
  "users": [
    {"id": 1, "name": "Alice"},
    {"id": 2, "name": "Bob"}
  ]
}
`

// WriteDemoFile creates a demo JSON document at path for exploring the TUI
// without pointing it at a real file. An existing file is overwritten.
func WriteDemoFile(path string) error {
	if err := os.WriteFile(path, []byte(demoContent), 0o644); err != nil {
		return fmt.Errorf("failed to write demo file %s: %w", path, err)
	}
	return nil
}
