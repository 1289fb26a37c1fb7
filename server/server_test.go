package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/logging"
	"github.com/katalvlaran/pennant/report"
	"github.com/katalvlaran/pennant/server"
)

type ServerSuite struct {
	suite.Suite
	router http.Handler
	logs   bytes.Buffer
}

func (s *ServerSuite) SetupTest() {
	d, err := division.Load("../testdata/teams4.txt")
	require.NoError(s.T(), err)
	s.logs.Reset()
	s.router = server.NewRouter(elimination.New(d), logging.New(&s.logs, logging.LevelDebug, logging.FormatJSON))
}

func (s *ServerSuite) get(path string, out any) int {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(s.T(), "application/json", rec.Header().Get("Content-Type"))
	if out != nil {
		require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}

	return rec.Code
}

func (s *ServerSuite) TestTeams() {
	var raw []map[string]any
	require.Equal(s.T(), http.StatusOK, s.get("/teams", &raw))
	require.Len(s.T(), raw, 4)
	require.Equal(s.T(), "Philadelphia", raw[1]["team"])
	require.Equal(s.T(), true, raw[1]["eliminated"])
	require.Equal(s.T(), "flow", raw[1]["method"])
	require.Equal(s.T(), []any{"Atlanta", "New_York"}, raw[1]["certificate"])
	require.NotContains(s.T(), raw[0], "certificate")
	require.Contains(s.T(), s.logs.String(), `"path":"/teams"`)
}

func (s *ServerSuite) TestTeam() {
	var raw map[string]any
	require.Equal(s.T(), http.StatusOK, s.get("/teams/Montreal", &raw))
	require.Equal(s.T(), "trivial", raw["method"])
	require.Equal(s.T(), []any{"Atlanta"}, raw["certificate"])
}

func (s *ServerSuite) TestCertificate() {
	var body struct {
		Team        string             `json:"team"`
		Eliminated  bool               `json:"eliminated"`
		Certificate []string           `json:"certificate"`
		Proof       *elimination.Proof `json:"proof"`
	}
	require.Equal(s.T(), http.StatusOK, s.get("/teams/Philadelphia/certificate", &body))
	require.True(s.T(), body.Eliminated)
	require.Equal(s.T(), []string{"Atlanta", "New_York"}, body.Certificate)
	require.NotNil(s.T(), body.Proof)
	require.Equal(s.T(), elimination.Proof{Wins: 161, Games: 6, Size: 2, MaxWins: 83}, *body.Proof)

	var alive map[string]any
	require.Equal(s.T(), http.StatusOK, s.get("/teams/Atlanta/certificate", &alive))
	require.Nil(s.T(), alive["certificate"])
	require.NotContains(s.T(), alive, "proof")
}

func (s *ServerSuite) TestStandings() {
	var rows []server.Standing
	require.Equal(s.T(), http.StatusOK, s.get("/standings", &rows))
	require.Equal(s.T(), server.Standing{
		Team: "New_York", Wins: 78, Losses: 78, Remaining: 6, MaxWins: 84,
	}, rows[2])
	require.True(s.T(), rows[3].Eliminated)
}

func (s *ServerSuite) TestSummary() {
	var sum report.Summary
	require.Equal(s.T(), http.StatusOK, s.get("/summary", &sum))
	require.Equal(s.T(), 2, sum.Eliminated)
	require.Equal(s.T(), "Atlanta", sum.Leader)
}

func (s *ServerSuite) TestNotFound() {
	var body map[string]string
	require.Equal(s.T(), http.StatusNotFound, s.get("/teams/Boston", &body))
	require.Contains(s.T(), body["error"], "unknown team")

	require.Equal(s.T(), http.StatusNotFound, s.get("/teams/Boston/certificate", &body))
	require.Equal(s.T(), http.StatusNotFound, s.get("/nowhere", &body))
	require.Equal(s.T(), "not found", body["error"])
}

func (s *ServerSuite) TestMethodNotAllowed() {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/teams", nil))
	require.Equal(s.T(), http.StatusMethodNotAllowed, rec.Code)
}

func (s *ServerSuite) TestHealth() {
	var body map[string]string
	require.Equal(s.T(), http.StatusOK, s.get("/healthz", &body))
	require.Equal(s.T(), "ok", body["status"])
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestListenAndServe_Shutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	d, err := division.Load("../testdata/teams1.txt")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx, addr, server.NewRouter(elimination.New(d), nil), logging.Discard())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
