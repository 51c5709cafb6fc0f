package results

import "time"

// SingleTest holds one directional NDT test within a result. Fields are
// pointers because incomplete tests omit them.
type SingleTest struct {
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	Throughput *float64   `json:"throughput"`
}

// Result is one end-to-end NDT client run as recorded in a raw result file.
type Result struct {
	OS             string      `json:"os"`
	OSVersion      string      `json:"os_version"`
	Browser        string      `json:"browser"`
	BrowserVersion string      `json:"browser_version"`
	Client         string      `json:"client"`
	ClientVersion  string      `json:"client_version"`
	StartTime      *time.Time  `json:"start_time"`
	EndTime        *time.Time  `json:"end_time"`
	C2S            *SingleTest `json:"c2s_result"`
	S2C            *SingleTest `json:"s2c_result"`
	Latency        *float64    `json:"latency"`
}
