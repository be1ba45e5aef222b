// Package updates checks for newer releases of RGB Manager.
//
// The check runs in the background at startup; its result feeds the
// Updates metadata persisted with the settings, and the UI shows a
// one-time notice the user may skip per version.
package updates

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/yllada/rgb-manager/common"
)

// ReleaseURL is the GitHub endpoint queried for the latest release.
var ReleaseURL = "https://api.github.com/repos/yllada/rgb-manager/releases/latest"

type release struct {
	TagName string `json:"tag_name"`
}

// CheckLatest queries the release endpoint and reports whether a
// release newer than current exists. Any failure is treated as
// "no update": the check must never disturb startup.
func CheckLatest(current string) (string, bool) {
	client := &http.Client{Timeout: common.UpdateCheckTimeout}

	res, err := client.Get(ReleaseURL)
	if err != nil {
		common.LogDebug("Update check failed: %v", err)
		return "", false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		common.LogDebug("Update check returned status %d", res.StatusCode)
		return "", false
	}

	var rel release
	if err := json.NewDecoder(res.Body).Decode(&rel); err != nil {
		common.LogDebug("Update check response unreadable: %v", err)
		return "", false
	}

	if rel.TagName == "" || !IsNewer(current, rel.TagName) {
		return "", false
	}
	return rel.TagName, true
}

// IsNewer reports whether candidate is a higher version than current.
// Versions are dotted numeric strings with an optional "v" prefix;
// anything unparsable compares as zero.
func IsNewer(current, candidate string) bool {
	cur := parseVersion(current)
	cand := parseVersion(candidate)

	for i := 0; i < 3; i++ {
		if cand[i] != cur[i] {
			return cand[i] > cur[i]
		}
	}
	return false
}

// parseVersion extracts up to three numeric components.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")

	var parts [3]int
	for i, field := range strings.SplitN(v, ".", 3) {
		// Strip pre-release/build suffixes like "1.2.0-rc1".
		if cut := strings.IndexAny(field, "-+"); cut >= 0 {
			field = field[:cut]
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			break
		}
		parts[i] = n
	}
	return parts
}

// Describe formats an update notice for logs and notifications.
func Describe(version string) string {
	return fmt.Sprintf("%s %s is available", common.AppName, version)
}
