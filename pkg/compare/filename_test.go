package compare

import "testing"

func TestParseFilename(t *testing.T) {
	m, err := ParseFilename("osx10.12-chrome57-ndt_js-2017-04-06T215733Z-results.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Metadata{
		OS:             "osx",
		OSVersion:      "10.12",
		Browser:        "chrome",
		BrowserVersion: "57",
		Client:         "ndt_js",
		Timestamp:      "2017-04-06T215733Z",
	}
	if m != want {
		t.Errorf("metadata = %+v, want %+v", m, want)
	}
}

func TestParseFilename_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"too few parts", "osx10.12-chrome57-results.json"},
		{"too many parts", "osx10.12-chrome57-ndt_js-2017-04-06T215733Z-extra-results.json"},
		{"unversioned os", "osx-chrome57-ndt_js-2017-04-06T215733Z-results.json"},
		{"unversioned browser", "osx10.12-chrome-ndt_js-2017-04-06T215733Z-results.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFilename(tt.filename); err == nil {
				t.Errorf("expected error for %q", tt.filename)
			}
		})
	}
}
