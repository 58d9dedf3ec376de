package browserpath

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

const home = "/home/player"

func TestResolveHasEveryBrowserKey(t *testing.T) {
	for _, goos := range []string{"windows", "darwin", "linux", "plan9", ""} {
		set := Resolve(goos, home)
		require.Len(t, set, len(models.Browsers), goos)
		for _, b := range models.Browsers {
			_, ok := set[b]
			assert.True(t, ok, "%s missing %s", goos, b)
			assert.NotNil(t, set[b], "%s has nil slice for %s", goos, b)
		}
	}
}

func TestResolveUnknownOSIsEmpty(t *testing.T) {
	set := Resolve("plan9", home)
	for b, dirs := range set {
		assert.Empty(t, dirs, b)
	}
}

func TestResolveAllPathsUnderHome(t *testing.T) {
	for _, goos := range []string{"windows", "darwin", "linux"} {
		for b, dirs := range Resolve(goos, home) {
			for _, d := range dirs {
				assert.True(t, strings.HasPrefix(d, filepath.Clean(home)), "%s/%s: %s", goos, b, d)
			}
		}
	}
}

func TestResolveSafariOnlyOnDarwin(t *testing.T) {
	assert.Equal(t, []string{filepath.Join(home, "Library", "Safari")}, Resolve("darwin", home)[models.BrowserSafari])
	assert.Empty(t, Resolve("linux", home)[models.BrowserSafari])
	assert.Empty(t, Resolve("windows", home)[models.BrowserSafari])
}

func TestResolveLinuxPackageVariants(t *testing.T) {
	set := Resolve("linux", home)

	assert.Equal(t, filepath.Join(home, ".mozilla", "firefox"), set[models.BrowserFirefox][0])
	assert.Contains(t, set[models.BrowserFirefox], filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox"))
	assert.Contains(t, set[models.BrowserFirefox], filepath.Join(home, ".var", "app", "org.mozilla.firefox", ".mozilla", "firefox"))

	assert.Equal(t, filepath.Join(home, ".config", "google-chrome"), set[models.BrowserChrome][0])
	assert.Contains(t, set[models.BrowserChrome], filepath.Join(home, "snap", "chromium", "common", "chromium"))
	assert.Contains(t, set[models.BrowserEdge], filepath.Join(home, ".var", "app", "com.microsoft.Edge", "config", "microsoft-edge"))
}

func TestResolveWindowsPrimaryRoots(t *testing.T) {
	set := Resolve("windows", home)
	assert.Equal(t, filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data"), set[models.BrowserChrome][0])
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming", "Mozilla", "Firefox", "Profiles"), set[models.BrowserFirefox][0])
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming", "Opera Software", "Opera GX Stable"), set[models.BrowserOperaGX][0])
}
