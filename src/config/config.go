package config

import (
	"os"
	"path/filepath"
	"strings"
)

func GetAPIBaseURL() string {
	return strings.TrimRight(os.Getenv("API_BASE_URL"), "/")
}

func GetSessionFile() string {
	if v := os.Getenv("SESSION_FILE"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tourdesk", "session.json")
}

// UserDeleteRoleCheck gates whether user deletion performs the client-side
// admin check the other delete operations do. The backend enforces it either
// way; default is off pending product confirmation.
func UserDeleteRoleCheck() bool {
	v := strings.ToLower(os.Getenv("USER_DELETE_ROLE_CHECK"))
	return v == "1" || v == "true" || v == "yes"
}
