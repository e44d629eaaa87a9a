package tello

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"tello-block-adapter/internal/domain/model"
)

const (
	// sdkCommand switches the vehicle into text command mode.
	sdkCommand = "command"

	queueSize = 32
	// state is considered live when a datagram arrived within this window
	liveWindow = 3 * time.Second
)

type Status struct {
	Connected    bool      `json:"connected"`
	LastState    time.Time `json:"last_state,omitempty"`
	LastResponse string    `json:"last_response,omitempty"`
	Dropped      uint64    `json:"dropped"`
}

// Client talks to a Tello over its UDP SDK: commands out on one socket,
// telemetry in on another. It implements ports.Transport.
type Client struct {
	droneAddr string
	localAddr string
	stateAddr string
	log       logrus.FieldLogger

	queue chan model.CommandLine
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once

	conn      *net.UDPConn
	stateConn *net.UDPConn

	mu           sync.RWMutex
	state        map[string]string
	stateTime    time.Time
	lastResponse string
	dropped      uint64
}

func NewClient(droneAddr, localAddr, stateAddr string, log logrus.FieldLogger) *Client {
	return &Client{
		droneAddr: droneAddr,
		localAddr: localAddr,
		stateAddr: stateAddr,
		log:       log,
		queue:     make(chan model.CommandLine, queueSize),
		done:      make(chan struct{}),
		state:     make(map[string]string),
	}
}

// Start opens both sockets, enters SDK mode and runs until ctx is done or Close is called.
func (c *Client) Start(ctx context.Context) error {
	raddr, err := net.ResolveUDPAddr("udp4", c.droneAddr)
	if err != nil {
		return err
	}
	laddr, err := net.ResolveUDPAddr("udp4", c.localAddr)
	if err != nil {
		return err
	}
	saddr, err := net.ResolveUDPAddr("udp4", c.stateAddr)
	if err != nil {
		return err
	}

	c.conn, err = net.ListenUDP("udp4", laddr)
	if err != nil {
		return err
	}
	c.stateConn, err = net.ListenUDP("udp4", saddr)
	if err != nil {
		c.conn.Close()
		return err
	}

	c.wg.Add(3)
	go c.writeLoop(raddr)
	go c.readResponses()
	go c.readState()

	c.Send(sdkCommand)
	c.log.WithFields(logrus.Fields{"drone": c.droneAddr, "state": c.stateConn.LocalAddr().String()}).Info("tello link started")

	go func() {
		select {
		case <-ctx.Done():
			c.Close()
		case <-c.done:
		}
	}()
	return nil
}

func (c *Client) Close() error {
	c.once.Do(func() {
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
		if c.stateConn != nil {
			c.stateConn.Close()
		}
	})
	c.wg.Wait()
	return nil
}

// Send queues a command line and returns at once. When the queue is full the
// line is dropped.
func (c *Client) Send(line model.CommandLine) {
	select {
	case c.queue <- line:
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
		c.log.WithField("command", line).Warn("command queue full, dropping")
	}
}

// State returns the latest value seen for key, or "" before any telemetry arrived.
func (c *Client) State(key model.TelemetryKey) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state[string(key)]
}

func (c *Client) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{
		Connected:    !c.stateTime.IsZero() && time.Since(c.stateTime) < liveWindow,
		LastState:    c.stateTime,
		LastResponse: c.lastResponse,
		Dropped:      c.dropped,
	}
}

// StateAddr is the bound telemetry listener address, nil before Start.
func (c *Client) StateAddr() net.Addr {
	if c.stateConn == nil {
		return nil
	}
	return c.stateConn.LocalAddr()
}

func (c *Client) writeLoop(raddr *net.UDPAddr) {
	defer c.wg.Done()
	for {
		select {
		case <-c.done:
			return
		case line := <-c.queue:
			if _, err := c.conn.WriteToUDP([]byte(line), raddr); err != nil {
				c.log.WithError(err).WithField("command", line).Error("send failed")
				continue
			}
			c.log.WithField("command", line).Debug("sent")
		}
	}
}

func (c *Client) readResponses() {
	defer c.wg.Done()
	buf := make([]byte, 1024)
	for {
		n, _, err := c.conn.ReadFromUDP(buf)
		if err != nil {
			if c.closed(err) {
				return
			}
			continue
		}
		resp := strings.TrimSpace(string(buf[:n]))
		c.mu.Lock()
		c.lastResponse = resp
		c.mu.Unlock()
		if strings.HasPrefix(resp, "error") {
			c.log.WithField("response", resp).Warn("tello rejected command")
		} else {
			c.log.WithField("response", resp).Debug("tello response")
		}
	}
}

func (c *Client) readState() {
	defer c.wg.Done()
	buf := make([]byte, 2048)
	for {
		n, _, err := c.stateConn.ReadFromUDP(buf)
		if err != nil {
			if c.closed(err) {
				return
			}
			continue
		}
		fields := ParseState(buf[:n])
		if len(fields) == 0 {
			continue
		}
		c.mu.Lock()
		c.state = fields
		c.stateTime = time.Now()
		c.mu.Unlock()
	}
}

func (c *Client) closed(err error) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	return errors.Is(err, net.ErrClosed)
}
