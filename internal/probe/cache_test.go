package probe

import "testing"

func TestParseBenchmarkOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected float64
		ok       bool
	}{
		{
			name:     "quiet mode GET line",
			output:   "GET: 84033.61 requests per second",
			expected: 84033.61,
			ok:       true,
		},
		{
			name: "full quiet run",
			output: `PING_INLINE: 90909.09 requests per second
SET: 86956.52 requests per second
GET: 88495.58 requests per second
INCR: 85470.09 requests per second`,
			expected: 88495.58,
			ok:       true,
		},
		{
			name:     "integer figure",
			output:   "GET: 100000 requests per second",
			expected: 100000,
			ok:       true,
		},
		{
			name:   "no GET line",
			output: "SET: 86956.52 requests per second",
			ok:     false,
		},
		{
			name:   "empty output",
			output: "",
			ok:     false,
		},
		{
			name:   "error text",
			output: "Could not connect to Redis at 127.0.0.1:6379: Connection refused",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := parseBenchmarkOutput(tt.output)
			if ok != tt.ok {
				t.Fatalf("parseBenchmarkOutput(%q) ok = %v, want %v", tt.output, ok, tt.ok)
			}
			if ok && value != tt.expected {
				t.Errorf("parseBenchmarkOutput(%q) = %v, want %v", tt.output, value, tt.expected)
			}
		})
	}
}
