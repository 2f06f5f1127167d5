package main

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	rotary "github.com/CarlosSiles67/Rotary"
	"github.com/CarlosSiles67/Rotary/internal/config"
	"github.com/CarlosSiles67/Rotary/internal/debug"
)

// publisher fans decoded events out to an MQTT broker. A nil publisher
// is valid and drops everything, so the polling loop never has to care
// whether a broker is configured.
type publisher struct {
	client mqtt.Client
	prefix string
}

// newPublisher connects to the configured broker. It returns nil (and
// no error) when no broker is configured.
func newPublisher(cfg config.MQTTConfig) (*publisher, error) {
	if cfg.Broker == "" {
		return nil, nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetKeepAlive(60 * time.Second).
		SetConnectionLostHandler(onConnectionLost).
		SetOnConnectHandler(onConnect)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.Broker, token.Error())
	}

	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = "rotary"
	}
	return &publisher{client: client, prefix: prefix}, nil
}

func onConnect(_ mqtt.Client) {
	debug.Info("MQTT connection established")
}

func onConnectionLost(_ mqtt.Client, err error) {
	debug.Error(fmt.Errorf("mqtt connection lost: %w", err))
}

// publishTurn publishes a decoded step as "cw" or "ccw" on
// <prefix>/turn.
func (p *publisher) publishTurn(dir rotary.Direction) {
	if p == nil {
		return
	}
	payload := "cw"
	if dir == rotary.DirCCW {
		payload = "ccw"
	}
	p.client.Publish(p.prefix+"/turn", 0, false, payload)
}

// publishButton publishes a button event ("press" or "hold") on
// <prefix>/button.
func (p *publisher) publishButton(kind string) {
	if p == nil {
		return
	}
	p.client.Publish(p.prefix+"/button", 0, false, kind)
}

func (p *publisher) close() {
	if p == nil {
		return
	}
	p.client.Disconnect(250)
}
