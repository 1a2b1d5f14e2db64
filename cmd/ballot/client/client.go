// Package client implements the caller side of the instruction protocol
// for the CLI.
package client

import (
	"context"
	"net"
	"time"

	"github.com/tokenized/ballot-engine/internal/platform/logger"
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"
	"github.com/tokenized/ballot-engine/pkg/wallet"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	DaemonAddress string `default:"127.0.0.1:8555" envconfig:"DAEMON_ADDRESS"`
	OperatorKey   string `envconfig:"OPERATOR_KEY"`
	DialTimeout   int    `default:"5000" envconfig:"DIAL_TIMEOUT"` // Milliseconds
}

type Client struct {
	Config Config
	Key    *wallet.Key
}

// Context returns a Context with the logger the client logs with.
func Context() context.Context {
	return logger.NewContext()
}

// NewClient builds a client from the CLIENT environment.
func NewClient() (*Client, error) {
	client := Client{}

	if err := envconfig.Process("CLIENT", &client.Config); err != nil {
		return nil, errors.Wrap(err, "config process")
	}

	if len(client.Config.OperatorKey) > 0 {
		key, err := wallet.KeyFromStr(client.Config.OperatorKey)
		if err != nil {
			return nil, errors.Wrap(err, "operator key")
		}
		client.Key = key
	}

	return &client, nil
}

// Identity returns the identity requests carry as the caller: the operator
// key's identity when one is configured, otherwise the zero identity, which
// is enough for the read instructions.
func (client *Client) Identity() identity.ID {
	if client.Key == nil {
		return identity.ID{}
	}

	return client.Key.ID
}

// Request sends one instruction to the daemon and returns its response.
func (client *Client) Request(ctx context.Context,
	instruction protocol.Instruction) (protocol.Response, error) {

	request := protocol.Request{
		Caller:      client.Identity(),
		Instruction: instruction,
	}

	payload, err := request.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "serialize request")
	}

	timeout := time.Duration(client.Config.DialTimeout) * time.Millisecond
	conn, err := net.DialTimeout("tcp", client.Config.DaemonAddress, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "dial")
	}
	defer conn.Close()

	logger.Info(ctx, "Sending %s to %s", instruction.Type(), client.Config.DaemonAddress)

	if err := protocol.WriteFrame(conn, payload); err != nil {
		return nil, errors.Wrap(err, "write frame")
	}

	respPayload, err := protocol.ReadFrame(conn)
	if err != nil {
		return nil, errors.Wrap(err, "read frame")
	}

	return protocol.ParseResponse(respPayload)
}
