package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/AlexZinkM/wallet-store/internal/command"
	"github.com/AlexZinkM/wallet-store/internal/config"
	"github.com/AlexZinkM/wallet-store/internal/hostenv"
	"github.com/AlexZinkM/wallet-store/internal/logger"
	"github.com/AlexZinkM/wallet-store/internal/store"

	"github.com/urfave/cli/v3"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer, stdinIsTerminal func() bool) *cli.Command {
	return &cli.Command{
		Name:      "walletctl",
		Usage:     "read and write the local wallet keystore",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "storage directory, overrides WALLET_CONFIG_DIR and the per-user config dir",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "save",
				Usage:     "overwrite the keystore (and the address with --address unless WALLET_ADDRESS_RECORD=false)",
				ArgsUsage: "[DATA]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Usage: "public address to store alongside the keystore"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					s, cfg, err := openStore(c, stderr)
					if err != nil {
						return err
					}

					var data string
					switch {
					case c.Args().Len() > 1:
						return errors.New("save takes at most one DATA argument")
					case c.Args().Len() == 1:
						data = c.Args().First()
					case stdinIsTerminal():
						return errors.New("no keystore data: pass it as an argument or pipe it on stdin")
					default:
						raw, err := io.ReadAll(stdin)
						if err != nil {
							return fmt.Errorf("failed to read stdin: %w", err)
						}
						data = string(raw)
					}

					var msg string
					if cfg.AddressRecord && c.IsSet("address") {
						msg, err = s.SaveWalletAndAddress(data, c.String("address"))
					} else {
						msg, err = s.SaveWallet(data)
					}
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(stdout, msg)
					return err
				},
			},
			{
				Name:  "read",
				Usage: "print the keystore",
				Action: func(ctx context.Context, c *cli.Command) error {
					s, _, err := openStore(c, stderr)
					if err != nil {
						return err
					}
					data, err := s.ReadWallet()
					if err != nil {
						return err
					}
					_, err = io.WriteString(stdout, data)
					return err
				},
			},
			{
				Name:  "address",
				Usage: "print the stored public address",
				Action: func(ctx context.Context, c *cli.Command) error {
					s, cfg, err := openStore(c, stderr)
					if err != nil {
						return err
					}
					if !cfg.AddressRecord {
						return command.ErrAddressDisabled
					}
					address, err := s.ReadAddress()
					if err != nil {
						return err
					}
					_, err = io.WriteString(stdout, address)
					return err
				},
			},
			{
				Name:  "exists",
				Usage: "print true if a keystore has been saved",
				Action: func(ctx context.Context, c *cli.Command) error {
					s, _, err := openStore(c, stderr)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(stdout, strconv.FormatBool(s.WalletExists()))
					return err
				},
			},
		},
	}
}

func openStore(c *cli.Command, stderr io.Writer) (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.InitWriter(stderr, cfg.LogLevel)

	dir := c.String("dir")
	if dir == "" {
		dir = cfg.ConfigDir
	}
	s, err := store.New(hostenv.FromConfig(dir, cfg.AppIdentifier), store.WithAtomicWrites(cfg.AtomicWrites))
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}
