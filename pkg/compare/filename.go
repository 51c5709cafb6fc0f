package compare

import (
	"fmt"
	"regexp"
	"strings"
)

// splitPattern separates a software name from its version number, e.g.
// "chrome57" into "chrome" and "57".
var splitPattern = regexp.MustCompile(`^([a-z]+)(\d.*)$`)

// Metadata holds the test attributes embedded in a result filename.
type Metadata struct {
	OS             string
	OSVersion      string
	Browser        string
	BrowserVersion string
	Client         string
	Timestamp      string
}

// ParseFilename extracts metadata from a result CSV filename field.
// An input like
//
//	osx10.12-chrome57-ndt_js-2017-04-06T215733Z-results.json
//
// yields {os: osx, os_version: 10.12, browser: chrome,
// browser_version: 57, client: ndt_js, timestamp: 2017-04-06T215733Z}.
func ParseFilename(filename string) (Metadata, error) {
	// Known filenames contain 7 parts separated by dashes: versioned OS,
	// versioned browser, client name, three date-time fields, suffix.
	parts := strings.Split(filename, "-")
	if len(parts) != 7 {
		return Metadata{}, fmt.Errorf("unknown filename format: %s", filename)
	}

	var m Metadata

	osMatches := splitPattern.FindStringSubmatch(parts[0])
	if osMatches == nil {
		return Metadata{}, fmt.Errorf("could not determine OS and version from: %s", parts[0])
	}
	m.OS = osMatches[1]
	m.OSVersion = osMatches[2]

	browserMatches := splitPattern.FindStringSubmatch(parts[1])
	if browserMatches == nil {
		return Metadata{}, fmt.Errorf("could not determine browser and version from: %s", parts[1])
	}
	m.Browser = browserMatches[1]
	m.BrowserVersion = browserMatches[2]

	// The NDT client name is not versioned.
	m.Client = parts[2]

	// Parts 3-5 are the dash-separated timestamp.
	m.Timestamp = strings.Join(parts[3:6], "-")

	return m, nil
}
