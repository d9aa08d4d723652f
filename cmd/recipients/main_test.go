package main

import (
	"airdrop-recipients/errors"
	"bytes"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Run("should keep every miner when no threshold is given", func(t *testing.T) {
		req := require.New(t)

		f, err := parseFlags([]string{"-source", "miners"})

		req.NoError(err)
		req.True(math.IsInf(f.minHashrate, -1))
	})

	t.Run("should read an explicit zero threshold", func(t *testing.T) {
		req := require.New(t)

		f, err := parseFlags([]string{"-source", "miners", "-min-hashrate", "0"})

		req.NoError(err)
		req.Zero(f.minHashrate)
	})
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    rune
		wantErr bool
	}{
		{"comma", ",", ',', false},
		{"tab", "\t", '\t', false},
		{"multi byte rune", "§", '§', false},
		{"empty", "", 0, true},
		{"two characters", "::", 0, true},
		{"quote", `"`, 0, true},
		{"carriage return", "\r", 0, true},
		{"newline", "\n", 0, true},
		{"replacement rune", "\uFFFD", 0, true},
		{"invalid utf8", "\xff", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			got, err := parseDelimiter(tt.raw)

			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestSplitAddresses(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"x", "y", "x"}, splitAddresses(" x, y,,x "))
	req.Empty(splitAddresses(""))
}

func TestRun(t *testing.T) {
	t.Run("should render a list of addresses", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer

		code, err := run([]string{"-source", "list", "-addresses", "0xaa,0xbb", "-amount", "3"}, &out)

		req.NoError(err)
		req.Equal(exitOK, code)
		req.Contains(out.String(), "0xaa")
		req.Contains(out.String(), "0xbb")
		req.Contains(out.String(), "2 recipients, total amount 6")
	})

	t.Run("should render a table file", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "recipients.csv")
		req.NoError(os.WriteFile(path, []byte("address,amount\nx,1.5\ny,2\n"), 0o600))
		var out bytes.Buffer

		code, err := run([]string{"-source", "csv", "-file", path}, &out)

		req.NoError(err)
		req.Equal(exitOK, code)
		req.Contains(out.String(), "2 recipients, total amount 3.5")
	})

	t.Run("should read a table without sniffing when asked", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "recipients.csv")
		req.NoError(os.WriteFile(path, []byte("address;amount\nx;4\n"), 0o600))
		var out bytes.Buffer

		code, err := run([]string{"-source", "csv", "-file", path, "-delimiter", ";", "-no-sniff"}, &out)

		req.NoError(err)
		req.Equal(exitOK, code)
		req.Contains(out.String(), "1 recipients, total amount 4")
	})

	t.Run("should render miners from the configured endpoint", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"address":"0xlow","hashrate":5},{"address":"0xhigh","hashrate":15}]`))
		}))
		t.Cleanup(server.Close)
		t.Setenv("SIGSCORE_URL", server.URL)
		var out bytes.Buffer

		code, err := run([]string{"-source", "miners", "-min-hashrate", "10"}, &out)

		req.NoError(err)
		req.Equal(exitOK, code)
		req.Contains(out.String(), "0xhigh")
		req.NotContains(out.String(), "0xlow")
		req.Contains(out.String(), "1 recipients, total amount 0")
	})

	t.Run("should exit with a runtime code when the endpoint fails", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)
		t.Setenv("SIGSCORE_URL", server.URL)

		code, err := run([]string{"-source", "miners"}, &bytes.Buffer{})

		req.ErrorIs(err, errors.ErrUnexpectedStatus)
		req.Equal(exitRuntime, code)
	})

	t.Run("should exit with a config code on usage errors", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
		}{
			{"unknown source", []string{"-source", "ledger"}},
			{"csv without file", []string{"-source", "csv"}},
			{"long delimiter", []string{"-source", "csv", "-file", "x.csv", "-delimiter", "::"}},
			{"quote delimiter", []string{"-source", "csv", "-file", "x.csv", "-delimiter", `"`}},
			{"newline delimiter", []string{"-source", "csv", "-file", "x.csv", "-delimiter", "\n"}},
			{"carriage return delimiter", []string{"-source", "csv", "-file", "x.csv", "-delimiter", "\r"}},
			{"replacement rune delimiter", []string{"-source", "csv", "-file", "x.csv", "-delimiter", "\uFFFD"}},
			{"unknown flag", []string{"-verbose"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := require.New(t)

				code, err := run(tt.args, &bytes.Buffer{})

				req.Error(err)
				req.Equal(exitConfig, code)
			})
		}
	})

	t.Run("should report unknown sources", func(t *testing.T) {
		req := require.New(t)

		_, err := run([]string{"-source", "ledger"}, &bytes.Buffer{})

		req.ErrorIs(err, errors.ErrUnknownSource)
	})
}
