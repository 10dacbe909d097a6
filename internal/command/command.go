// Package command maps host command names to wallet store operations,
// taking JSON arguments and returning a string or bool result.
package command

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Command names as invoked by the host.
const (
	SaveWalletFile    = "save_wallet_file"
	ReadWalletFile    = "read_wallet_file"
	ReadWalletAddress = "read_wallet_address"
	WalletExists      = "wallet_exists"
)

// WalletStore is the subset of store.Store the commands use.
type WalletStore interface {
	SaveWallet(data string) (string, error)
	SaveWalletAndAddress(data, address string) (string, error)
	ReadWallet() (string, error)
	ReadAddress() (string, error)
	WalletExists() bool
}

// ErrAddressDisabled is reported when the address record is switched off
// and a caller asks for the address.
var ErrAddressDisabled = errors.New("address record is disabled")

// UnknownCommandError is returned for a command name that is not registered.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command %s not found", e.Name)
}

// ArgsError is returned when a command's arguments cannot be decoded.
type ArgsError struct {
	Command string
	Message string
}

func (e *ArgsError) Error() string {
	return fmt.Sprintf("invalid args for command %s: %s", e.Command, e.Message)
}

// IsUnknownCommandError checks if error is UnknownCommandError
func IsUnknownCommandError(err error) bool {
	_, ok := err.(*UnknownCommandError)
	return ok
}

// IsArgsError checks if error is ArgsError
func IsArgsError(err error) bool {
	_, ok := err.(*ArgsError)
	return ok
}

type handlerFunc func(args []byte) (any, error)

// Dispatcher routes command invocations to the store.
type Dispatcher struct {
	handlers map[string]handlerFunc
}

// NewDispatcher registers the wallet commands. With withAddress false the
// address command is left out and save ignores any address argument.
func NewDispatcher(s WalletStore, withAddress bool) *Dispatcher {
	d := &Dispatcher{handlers: map[string]handlerFunc{}}

	d.handlers[SaveWalletFile] = func(args []byte) (any, error) {
		var in struct {
			Data    *string `json:"data"`
			Address *string `json:"address"`
		}
		if err := decodeArgs(SaveWalletFile, args, &in); err != nil {
			return nil, err
		}
		if in.Data == nil {
			return nil, &ArgsError{Command: SaveWalletFile, Message: "missing required key data"}
		}
		if withAddress && in.Address != nil {
			return s.SaveWalletAndAddress(*in.Data, *in.Address)
		}
		return s.SaveWallet(*in.Data)
	}
	d.handlers[ReadWalletFile] = func(args []byte) (any, error) {
		if err := decodeArgs(ReadWalletFile, args, &struct{}{}); err != nil {
			return nil, err
		}
		return s.ReadWallet()
	}
	d.handlers[WalletExists] = func(args []byte) (any, error) {
		if err := decodeArgs(WalletExists, args, &struct{}{}); err != nil {
			return nil, err
		}
		return s.WalletExists(), nil
	}
	if withAddress {
		d.handlers[ReadWalletAddress] = func(args []byte) (any, error) {
			if err := decodeArgs(ReadWalletAddress, args, &struct{}{}); err != nil {
				return nil, err
			}
			return s.ReadAddress()
		}
	}

	return d
}

// Names returns the registered command names in sorted order.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named command. args is a JSON object and may be empty
// for commands that take none.
func (d *Dispatcher) Dispatch(name string, args []byte) (any, error) {
	h, ok := d.handlers[name]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	return h(args)
}

func decodeArgs(command string, args []byte, v any) error {
	if len(bytes.TrimSpace(args)) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &ArgsError{Command: command, Message: err.Error()}
	}
	return nil
}
