// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package smtp

import (
	"fmt"
	"strings"
	"time"

	"github.com/absmach/samos-exporter/internal/email"
	"github.com/absmach/samos-exporter/samos"
)

// The body may reference the export day through the <date> placeholder.
const datePlaceholder = "<date>"

// Config holds the recipients and message text for report delivery.
type Config struct {
	To      []string `env:"TO"      envSeparator:","`
	Cc      []string `env:"CC"      envSeparator:","`
	Subject string   `env:"SUBJECT" envDefault:"SAMOS data"`
	Body    string   `env:"BODY"    envDefault:"Attached is the SAMOS data for <date>."`
}

var _ samos.Sink = (*notifier)(nil)

type notifier struct {
	agent *email.Agent
	cfg   Config
}

// New instantiates an SMTP report sink.
func New(agent *email.Agent, cfg Config) samos.Sink {
	return &notifier{agent: agent, cfg: cfg}
}

func (n *notifier) Deliver(date time.Time, path string) error {
	day := date.Format(time.DateOnly)
	subject := fmt.Sprintf("%s - %s", n.cfg.Subject, day)
	body := strings.ReplaceAll(n.cfg.Body, datePlaceholder, day)

	return n.agent.Send(n.cfg.To, n.cfg.Cc, subject, body, path)
}
