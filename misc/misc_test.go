package misc

import "testing"

func TestIdentity(t *testing.T) {
	if GetAppName() != "mxc" {
		t.Errorf("GetAppName() = %q", GetAppName())
	}
	if GetVersion() == "" {
		t.Error("GetVersion() is empty")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() is empty")
	}

	version, gitHash = "1.2.3", "abc"
	t.Cleanup(func() { version, gitHash = "", "" })
	if GetVersion() != "1.2.3" || GetGitHash() != "abc" {
		t.Errorf("link time values ignored: %q %q", GetVersion(), GetGitHash())
	}
}
