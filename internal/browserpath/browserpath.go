// Package browserpath maps a host operating system to the browser profile roots found on it
package browserpath

import (
	"path/filepath"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

// Resolve returns the known profile roots for every browser on goos, joined onto home.
// It never touches the filesystem. Unknown operating systems yield a set whose
// entries are all empty.
func Resolve(goos, home string) models.BrowserPathSet {
	set := models.NewBrowserPathSet()
	j := func(parts ...string) string {
		return filepath.Join(append([]string{home}, parts...)...)
	}

	switch goos {
	case "windows":
		local := j("AppData", "Local")
		roaming := j("AppData", "Roaming")
		set.Add(models.BrowserChrome,
			filepath.Join(local, "Google", "Chrome", "User Data"),
			filepath.Join(local, "Google", "Chrome Beta", "User Data"),
			filepath.Join(local, "Chromium", "User Data"),
		)
		set.Add(models.BrowserEdge,
			filepath.Join(local, "Microsoft", "Edge", "User Data"),
			filepath.Join(local, "Microsoft", "Edge Beta", "User Data"),
			filepath.Join(local, "Microsoft", "Edge Dev", "User Data"),
		)
		set.Add(models.BrowserFirefox, filepath.Join(roaming, "Mozilla", "Firefox", "Profiles"))
		set.Add(models.BrowserOpera, filepath.Join(roaming, "Opera Software", "Opera Stable"))
		set.Add(models.BrowserOperaGX, filepath.Join(roaming, "Opera Software", "Opera GX Stable"))

	case "darwin":
		support := j("Library", "Application Support")
		set.Add(models.BrowserChrome,
			filepath.Join(support, "Google", "Chrome"),
			filepath.Join(support, "Google", "Chrome Beta"),
			filepath.Join(support, "Chromium"),
		)
		set.Add(models.BrowserEdge,
			filepath.Join(support, "Microsoft Edge"),
			filepath.Join(support, "Microsoft Edge Beta"),
		)
		set.Add(models.BrowserFirefox, filepath.Join(support, "Firefox", "Profiles"))
		set.Add(models.BrowserOpera, filepath.Join(support, "com.operasoftware.Opera"))
		set.Add(models.BrowserOperaGX, filepath.Join(support, "com.operasoftware.OperaGX"))
		set.Add(models.BrowserSafari, j("Library", "Safari"))

	case "linux":
		// No single canonical location exists: distro packages, snap confinement
		// and flatpak sandboxes each keep their own profile tree.
		set.Add(models.BrowserChrome,
			j(".config", "google-chrome"),
			j(".config", "google-chrome-beta"),
			j(".config", "chromium"),
			j("snap", "chromium", "common", "chromium"),
			j("snap", "chromium", "current", ".config", "chromium"),
			j(".var", "app", "com.google.Chrome", "config", "google-chrome"),
			j(".var", "app", "org.chromium.Chromium", "config", "chromium"),
		)
		set.Add(models.BrowserEdge,
			j(".config", "microsoft-edge"),
			j(".config", "microsoft-edge-beta"),
			j(".config", "microsoft-edge-dev"),
			j(".var", "app", "com.microsoft.Edge", "config", "microsoft-edge"),
		)
		set.Add(models.BrowserFirefox,
			j(".mozilla", "firefox"),
			j("snap", "firefox", "common", ".mozilla", "firefox"),
			j(".var", "app", "org.mozilla.firefox", ".mozilla", "firefox"),
		)
		set.Add(models.BrowserOpera,
			j(".config", "opera"),
			j("snap", "opera", "current", ".config", "opera"),
			j(".var", "app", "com.opera.Opera", "config", "opera"),
		)
		set.Add(models.BrowserOperaGX, j(".config", "operagx"))
	}

	return set
}
