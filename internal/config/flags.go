// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-a remote store listen address in format [host]:[port]
//	-r remote store base URL used by the client
//	-d database DSN
//	-c/-config JSON or YAML config file path
//	-locale UI locale (e.g. "pt-BR")
//	-scope account e-mail records are filed under
//	-contacts-dir directory for saved contacts
//	-scanner-source file or FIFO with scanned codes
//	-scan-cooldown pause after a detected code (e.g. "2s")
//	-sync-interval outbox drain interval (e.g. "30s")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-log-level log level
//	-log-file client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("qr-facil", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg StructuredConfig
	var serverAddress NetAddress

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "r", "", "Remote store base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.Locale, "locale", "", "UI locale")
	fs.StringVar(&cfg.App.UserScope, "scope", "", "Account e-mail")
	fs.StringVar(&cfg.Storage.Contacts.Dir, "contacts-dir", "", "Directory for saved contacts")
	fs.StringVar(&cfg.Scanner.Source, "scanner-source", "", "File or FIFO with scanned codes")
	fs.DurationVar(&cfg.Scanner.Cooldown, "scan-cooldown", 0, "Pause after a detected code")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Outbox drain interval")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Adapter.RequestTimeout = cfg.Server.RequestTimeout

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
