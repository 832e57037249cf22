package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// apiStub serves one canned response and records the requests it sees.
type apiStub struct {
	server *httptest.Server
	hits   atomic.Int32
	last   atomic.Value
}

func newAPIStub(t *testing.T, status int, body string) *apiStub {
	t.Helper()
	stub := &apiStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.hits.Add(1)
		stub.last.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *apiStub) url() string {
	return s.server.URL + "/w/api.php"
}

func (s *apiStub) lastQuery(key string) string {
	values, ok := s.last.Load().(url.Values)
	if !ok {
		return ""
	}
	return values.Get(key)
}

// resetCLI returns the global command tree, flags and viper to defaults and
// isolates the process environment.
func resetCLI(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"WIKI_API_URL", "WIKI_API_TIMEOUT", "WIKI_API_USER_AGENT", "WIKI_LOGGING_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())

	viper.Reset()
	bindFlags()
	resetFlags(rootCmd)
	configFileUsed = ""
}

func resetFlags(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}
