package tello

import "strings"

// ParseState splits a state datagram such as
// "pitch:0;roll:0;yaw:0;...;h:0;bat:87;baro:12.34;time:0;agx:0.00;\r\n"
// into its fields. Malformed pairs are skipped.
func ParseState(data []byte) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(strings.TrimSpace(string(data)), ";") {
		k, v, ok := strings.Cut(pair, ":")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}
