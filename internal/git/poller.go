package git

import "github.com/skiffsh/skiff/internal/log"

// Request asks the poller for a fresh snapshot of Dir. Fetch also
// syncs the remote first, best effort.
type Request struct {
	Dir   string
	Fetch bool
}

// Poller computes status snapshots on its own goroutine. The UI talks
// to it over two one-directional channels and never shares memory with
// it: requests are fire-and-forget sends, results are drained
// non-blockingly. There is no mid-flight cancellation; a new request
// simply queues behind the one in progress.
type Poller struct {
	requests chan Request
	results  chan *Status
	stop     chan struct{}
}

// NewPoller starts the worker goroutine.
func NewPoller() *Poller {
	p := &Poller{
		requests: make(chan Request, 8),
		results:  make(chan *Status, 8),
		stop:     make(chan struct{}),
	}
	go p.run()
	return p
}

// Update queues a status request. The send is non-blocking: with a
// full queue the request is dropped, which is harmless since a later
// snapshot supersedes it anyway.
func (p *Poller) Update(dir string, fetch bool) {
	select {
	case p.requests <- Request{Dir: dir, Fetch: fetch}:
	default:
	}
}

// Drain returns the freshest snapshot that has arrived, without
// blocking. The second return is false when nothing was pending. When
// several snapshots queued up, the latest one wins.
func (p *Poller) Drain() (*Status, bool) {
	var latest *Status
	received := false
	for {
		select {
		case status := <-p.results:
			latest = status
			received = true
		default:
			return latest, received
		}
	}
}

// Stop tells the worker to exit. It does not wait for the goroutine:
// shutdown is best effort.
func (p *Poller) Stop() {
	close(p.stop)
}

func (p *Poller) run() {
	for {
		select {
		case <-p.stop:
			return
		case req := <-p.requests:
			if req.Fetch {
				if err := Fetch(req.Dir); err != nil {
					log.Printf("git: fetch failed in %s: %v", req.Dir, err)
				}
			}
			status := ReadStatus(req.Dir)
			select {
			case p.results <- status:
			case <-p.stop:
				return
			}
		}
	}
}
