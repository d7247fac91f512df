package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/modgraph/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. Results go to
// the first returned buffer and debug logs to the second.
func SetupAppTest(t *testing.T, cfg Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	out := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"

	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	testApp, err := NewApp(out, logBuffer, validated)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("MODGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
