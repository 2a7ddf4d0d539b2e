// Package statsview serves live runtime statistics (heap, goroutines,
// GC pauses) of the running process over HTTP.
package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is used when Start is given an empty address.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// Server is a running stats server.
type Server struct {
	Addr string

	mgr  *statsview.ViewManager
	done chan struct{}
	err  error
}

// Start serves the stats pages on addr in the background and writes
// their URL to output. Any extra viewer options are applied after the
// address.
func Start(output io.Writer, addr string, opts ...viewer.Option) *Server {
	addr = address(addr)
	viewer.SetConfiguration(append([]viewer.Option{viewer.WithAddr(addr)}, opts...)...)

	s := &Server{
		Addr: addr,
		mgr:  statsview.New(),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		s.err = s.mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s\n", s.URL())
	return s
}

// URL returns the address of the stats page.
func (s *Server) URL() string {
	return "http://" + s.Addr + path
}

// Stop shuts the server down and waits for it to exit. It returns the
// error the server failed with, if it failed for any reason other than
// being stopped.
func (s *Server) Stop() error {
	s.mgr.Stop()
	<-s.done
	if s.err != nil && !errors.Is(s.err, http.ErrServerClosed) {
		return s.err
	}
	return nil
}

func address(addr string) string {
	if addr == "" {
		return DefaultAddress
	}
	return addr
}
