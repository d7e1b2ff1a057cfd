package updater

import "testing"

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in      string
		want    Semver
		wantErr bool
	}{
		{"1.2.3", Semver{1, 2, 3}, false},
		{"v0.4.1", Semver{0, 4, 1}, false},
		{"10.0.0", Semver{10, 0, 0}, false},
		{"dev", Semver{}, true},
		{"1.2", Semver{}, true},
		{"1.2.x", Semver{}, true},
		{"1.2.3-rc1", Semver{}, true},
		{"", Semver{}, true},
	}

	for _, tt := range tests {
		got, err := ParseSemver(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSemver(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSemver(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSemver(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSemverLessThan(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "2.0.0", true},
		{"1.9.9", "2.0.0", true},
		{"1.2.3", "1.3.0", true},
		{"1.2.3", "1.2.4", true},
		{"1.2.3", "1.2.3", false},
		{"2.0.0", "1.9.9", false},
	}

	for _, tt := range tests {
		a, err := ParseSemver(tt.a)
		if err != nil {
			t.Fatalf("ParseSemver(%q) error = %v", tt.a, err)
		}
		b, err := ParseSemver(tt.b)
		if err != nil {
			t.Fatalf("ParseSemver(%q) error = %v", tt.b, err)
		}
		if got := a.LessThan(b); got != tt.want {
			t.Errorf("%s < %s = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAssetNameFindAsset(t *testing.T) {
	release := &ReleaseInfo{
		Assets: []Asset{
			{Name: "keepactive-linux-amd64", BrowserDownloadURL: "https://example.invalid/a"},
			{Name: "keepactive-darwin-arm64", BrowserDownloadURL: "https://example.invalid/b"},
		},
	}

	if got := FindAsset(release, "keepactive-linux-amd64"); got == nil || got.BrowserDownloadURL != "https://example.invalid/a" {
		t.Errorf("FindAsset(linux-amd64) = %+v", got)
	}
	if got := FindAsset(release, "keepactive-windows-amd64"); got != nil {
		t.Errorf("FindAsset(missing) = %+v, want nil", got)
	}
}
