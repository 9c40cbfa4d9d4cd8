package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	sel "github.com/goserg/ffserver/tests/selectors"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"
)

const baseURL = "http://0.0.0.0:3000"

type NavigationSuite struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	botConfigPath    string
	seedCSVPath      string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to bot configs")
	flag.StringVar(&seedCSVPath, "seed-csv", "testdata/henry.csv", "weekly stats used to seed a player")
}

// SetupSuite seeds one player and starts the server.
func (s *NavigationSuite) SetupSuite() {
	s.Require().NotEmpty(serverConfigPath, "-server-config MUST be set")
	s.Require().NotEmpty(botConfigPath, "-bot-config MUST be set")

	seed := NewProcess(context.Background(), "../bin/importer",
		"-server-config", serverConfigPath,
		"-player-id", "17959",
		"-name", "Derrick Henry",
		"-team", "BAL",
		"-position", "RB",
		"-csv", seedCSVPath)
	s.Require().NoError(seed.Run(), "seed player")

	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	err := p.Start(context.Background())
	if err != nil {
		s.T().Errorf("cant start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v", err)
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/")
			if r != nil {
				r.Body.Close()
				if r.StatusCode == http.StatusOK {
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *NavigationSuite) TearDownSuite() {
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
	_ = os.Remove("autotest.sqlite")
}

func (s *NavigationSuite) newBrowser() (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*15)
	ctx, cancel := chromedp.NewContext(ctx)
	return ctx, func() {
		cancel()
		cancelTimeout()
	}
}

func (s *NavigationSuite) TestPagesAvailable() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	err := chromedp.Run(ctx,
		s.CheckStatus(baseURL+"/", http.StatusOK),
		s.CheckStatus(baseURL+"/player/17959", http.StatusOK),
		s.CheckStatus(baseURL+"/player/1", http.StatusNotFound),
		s.CheckStatus(baseURL+"/teams", http.StatusNotFound),
	)
	s.Require().NoError(err)
}

// TestReloadOnReturnHome walks list -> detail -> list. The first hop is an
// in-app transition; coming back home loads a new document.
func (s *NavigationSuite) TestReloadOnReturnHome() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	var resets atomic.Int32
	chromedp.ListenTarget(ctx, func(ev interface{}) {
		if e, ok := ev.(*network.EventResponseReceived); ok && e.Response.Status == http.StatusResetContent {
			resets.Add(1)
		}
	})

	var (
		onList, onDetail, backHome string
		title                      string
		ok                         bool
	)
	err := chromedp.Run(ctx,
		network.Enable(),
		chromedp.Navigate(baseURL+"/"),
		chromedp.WaitVisible(sel.PlayerListRowLink, chromedp.ByQuery),
		chromedp.AttributeValue(sel.Body, sel.BootstrapAttr, &onList, &ok, chromedp.ByQuery),
		chromedp.Click(sel.PlayerListRowLink, chromedp.ByQuery),
		chromedp.WaitVisible(sel.BackHome, chromedp.ByQuery),
		chromedp.Text(sel.PageTitle, &title, chromedp.ByQuery),
		chromedp.AttributeValue(sel.Body, sel.BootstrapAttr, &onDetail, &ok, chromedp.ByQuery),
		chromedp.Click(sel.BackHome, chromedp.ByQuery),
		chromedp.WaitVisible(sel.PlayerListRow, chromedp.ByQuery),
		chromedp.AttributeValue(sel.Body, sel.BootstrapAttr, &backHome, &ok, chromedp.ByQuery),
	)
	s.Require().NoError(err)

	s.Equal("Derrick Henry", title)
	s.NotEmpty(onList)
	s.Equal(onList, onDetail, "list -> detail must not reload")
	s.NotEqual(onDetail, backHome, "detail -> list must reload")
	s.Equal(int32(1), resets.Load())
}

// TestReloadOnBackButton returns home through history. The reload must
// replace the current entry so the detail page stays reachable with Forward.
func (s *NavigationSuite) TestReloadOnBackButton() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	var (
		before, after string
		homeLen       int
		historyLen    int
		ok            bool
	)
	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/"),
		chromedp.WaitVisible(sel.PlayerListRowLink, chromedp.ByQuery),
		chromedp.AttributeValue(sel.Body, sel.BootstrapAttr, &before, &ok, chromedp.ByQuery),
		chromedp.Evaluate(`window.history.length`, &homeLen),
		chromedp.Click(sel.PlayerListRowLink, chromedp.ByQuery),
		chromedp.WaitVisible(sel.BackHome, chromedp.ByQuery),
		chromedp.NavigateBack(),
		chromedp.WaitVisible(sel.PlayerListRow, chromedp.ByQuery),
		chromedp.AttributeValue(sel.Body, sel.BootstrapAttr, &after, &ok, chromedp.ByQuery),
		chromedp.Evaluate(`window.history.length`, &historyLen),
		chromedp.NavigateForward(),
		chromedp.WaitVisible(sel.BackHome, chromedp.ByQuery),
	)
	s.Require().NoError(err)

	s.NotEqual(before, after, "back to list must reload")
	s.Equal(homeLen+1, historyLen, "reload must not add a history entry")
}

func (s *NavigationSuite) CheckStatus(path string, status int) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != int64(status) {
				return fmt.Errorf("%s: want status %d, got %d", path, status, resp.Status)
			}
			return nil
		}),
	}
}
