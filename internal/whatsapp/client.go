// Package whatsapp sends composed lead messages through a linked WhatsApp
// account instead of handing them to the wa.me link.
package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"

	_ "github.com/mattn/go-sqlite3"

	"leadcomposer/pkg/logging"
)

var ErrNotConnected = errors.New("whatsapp client not connected")

// Status is a snapshot of the link state shown to the user.
type Status struct {
	Connected  bool `json:"connected"`
	Connecting bool `json:"connecting"`
	HasSession bool `json:"has_session"`
}

// Client wraps a whatsmeow client whose device session lives in its own
// SQLite file.
type Client struct {
	whatsappClient *whatsmeow.Client
	container      *sqlstore.Container
	qrHandler      func(string)
	qrClearHandler func()
	dbPath         string
	logger         *logging.Logger

	mu              sync.RWMutex
	clearMu         sync.Mutex
	clearInProgress atomic.Bool
	eventHandlerID  uint32

	qrReceived    bool
	connectedOnce bool
}

// NewClient opens (or creates) the session store at sessionDBPath.
func NewClient(sessionDBPath string, logger *logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &Client{
		dbPath: sessionDBPath,
		logger: logger,
	}
	if err := c.reinitialize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) waLogger(module string) waLog.Logger {
	return waLog.Zerolog(c.logger.With().Str("module", module).Logger())
}

func (c *Client) Connect() error {
	c.mu.Lock()
	if c.whatsappClient == nil {
		c.mu.Unlock()
		return ErrNotConnected
	}
	c.qrReceived = false
	if c.eventHandlerID != 0 {
		c.whatsappClient.RemoveEventHandler(c.eventHandlerID)
	}
	c.eventHandlerID = c.whatsappClient.AddEventHandler(c.handleEvent)
	client := c.whatsappClient
	c.mu.Unlock()

	if err := client.Connect(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	go c.logConnectionStatus()
	return nil
}

func (c *Client) logConnectionStatus() {
	time.Sleep(5 * time.Second)

	c.mu.RLock()
	client := c.whatsappClient
	qrReceived := c.qrReceived
	connectedOnce := c.connectedOnce
	c.mu.RUnlock()

	switch {
	case client == nil:
		c.logger.Warn().Msg("whatsapp client not initialized")
	case client.IsLoggedIn():
		c.logger.Info().Msg("whatsapp logged in")
	case connectedOnce:
		c.logger.Info().Msg("whatsapp was connected, session may be restoring")
	case qrReceived:
		c.logger.Info().Msg("whatsapp QR code displayed, waiting for scan")
	case client.Store != nil && client.Store.ID != nil:
		c.logger.Warn().Msg("whatsapp session exists but is not logged in yet; disconnect and reconnect if this persists")
	default:
		c.logger.Warn().Msg("whatsapp has no session and no QR code was received")
	}
}

func (c *Client) reinitialize() error {
	ctx := context.Background()

	container, err := sqlstore.New(ctx, "sqlite3", "file:"+c.dbPath+"?_foreign_keys=on", c.waLogger("store"))
	if err != nil {
		return fmt.Errorf("failed to create database container: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		container.Close()
		return fmt.Errorf("failed to get device store: %w", err)
	}

	c.mu.Lock()
	c.whatsappClient = whatsmeow.NewClient(deviceStore, c.waLogger("client"))
	c.container = container
	c.eventHandlerID = 0
	c.mu.Unlock()
	return nil
}

// resetSession disconnects, deletes the session file and opens a fresh store.
// Callers hold clearMu.
func (c *Client) resetSession() error {
	c.Disconnect()

	c.mu.Lock()
	c.connectedOnce = false
	c.qrReceived = false
	c.mu.Unlock()

	if err := os.Remove(c.dbPath); err != nil && !os.IsNotExist(err) {
		c.drop()
		return fmt.Errorf("failed to delete session file: %w", err)
	}

	if err := c.reinitialize(); err != nil {
		c.drop()
		return fmt.Errorf("session cleared but failed to reinitialize: %w", err)
	}
	return nil
}

func (c *Client) drop() {
	c.mu.Lock()
	c.whatsappClient = nil
	c.container = nil
	c.mu.Unlock()
}

func (c *Client) clearAndReinitialize() {
	c.clearMu.Lock()
	defer c.clearMu.Unlock()
	defer c.clearInProgress.Store(false)

	if err := c.resetSession(); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear stale whatsapp session")
		return
	}
	c.logger.Info().Msg("stale whatsapp session cleared, ready for a fresh QR scan")
}

func (c *Client) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.QR:
		if len(v.Codes) > 0 {
			c.mu.Lock()
			c.qrReceived = true
			handler := c.qrHandler
			c.mu.Unlock()
			if handler != nil {
				handler(v.Codes[0])
			}
		}

	case *events.Connected:
		c.logger.Info().Msg("whatsapp connected")
		c.mu.Lock()
		c.connectedOnce = true
		handler := c.qrClearHandler
		c.mu.Unlock()
		if handler != nil {
			handler()
		}

	case *events.LoggedOut:
		c.logger.Warn().Bool("on_connect", v.OnConnect).Int("reason", int(v.Reason)).Msg("whatsapp logged out")
		c.mu.Lock()
		c.connectedOnce = false
		c.mu.Unlock()
		// OnConnect means the session was revoked from the phone.
		if v.OnConnect && c.clearInProgress.CompareAndSwap(false, true) {
			go c.clearAndReinitialize()
		}

	case *events.ClientOutdated:
		c.logger.Error().Msg("whatsapp client outdated, update go.mau.fi/whatsmeow")
	}
}

func (c *Client) SetQRHandler(handler func(string)) {
	c.mu.Lock()
	c.qrHandler = handler
	c.mu.Unlock()
}

func (c *Client) SetQRClearHandler(handler func()) {
	c.mu.Lock()
	c.qrClearHandler = handler
	c.mu.Unlock()
}

// Disconnect closes the websocket and releases the session database file lock.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.whatsappClient != nil {
		c.whatsappClient.Disconnect()
	}
	if c.container != nil {
		c.container.Close()
		c.container = nil
	}
}

// ClearSession removes the stored session and reinitializes the client for a fresh QR scan.
func (c *Client) ClearSession() error {
	c.clearMu.Lock()
	defer c.clearMu.Unlock()

	if err := c.resetSession(); err != nil {
		return err
	}
	c.logger.Info().Msg("whatsapp session cleared")
	return nil
}

func (c *Client) current() *whatsmeow.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.whatsappClient
}

func (c *Client) IsConnected() bool {
	client := c.current()
	return client != nil && client.IsConnected() && client.IsLoggedIn()
}

func (c *Client) HasSession() bool {
	client := c.current()
	return client != nil && client.Store != nil && client.Store.ID != nil
}

// IsConnecting reports a connected websocket that is not authenticated yet.
func (c *Client) IsConnecting() bool {
	client := c.current()
	return client != nil && client.IsConnected() && !client.IsLoggedIn()
}

func (c *Client) Status() Status {
	return Status{
		Connected:  c.IsConnected(),
		Connecting: c.IsConnecting(),
		HasSession: c.HasSession(),
	}
}

// SendText sends text to the account registered for the digits-only phone number.
func (c *Client) SendText(ctx context.Context, digits, text string) (string, error) {
	client := c.current()
	if client == nil || !client.IsConnected() || !client.IsLoggedIn() {
		return "", ErrNotConnected
	}
	if digits == "" {
		return "", errors.New("recipient phone number is empty")
	}

	recipient := types.NewJID(digits, types.DefaultUserServer)
	resp, err := client.SendMessage(ctx, recipient, &waProto.Message{
		Conversation: &text,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	c.logger.Info().Str("recipient", recipient.String()).Str("message_id", resp.ID).Msg("message sent")
	return resp.ID, nil
}

// CheckNumbers reports, per digits-only phone number, whether it has a
// WhatsApp account.
func (c *Client) CheckNumbers(ctx context.Context, phones []string) (map[string]bool, error) {
	client := c.current()
	if client == nil || !client.IsConnected() || !client.IsLoggedIn() {
		return nil, ErrNotConnected
	}

	result := make(map[string]bool, len(phones))
	if len(phones) == 0 {
		return result, nil
	}

	query := make([]string, 0, len(phones))
	for _, phone := range phones {
		result[phone] = false
		query = append(query, "+"+phone)
	}

	responses, err := client.IsOnWhatsApp(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone numbers: %w", err)
	}

	for _, resp := range responses {
		phone := resp.JID.User
		if phone == "" {
			phone = trimPlus(resp.Query)
		}
		result[phone] = resp.IsIn
	}
	return result, nil
}

func trimPlus(s string) string {
	if len(s) > 0 && s[0] == '+' {
		return s[1:]
	}
	return s
}
