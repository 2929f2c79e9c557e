// Package mqtt provides the panel's connection to the Gray Logic message bus.
//
// This package manages:
//   - Connection to the site broker with auto-reconnect
//   - Topic subscriptions with wildcard support
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) on the panel presence topic
//
// # Architecture
//
// A wall panel is a leaf client of the Gray Logic bus. It subscribes to the
// canonical device state topics its active screen cares about, publishes
// presence heartbeats, and listens on its own UI namespace for navigation
// commands from the Core:
//
//	Gray Logic Core ↔ MQTT Broker ↔ Panel (this runtime)
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for bench development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT, "panel-kitchen")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Subscribe(mqtt.Topics{}.PanelScreenSet("panel-kitchen"), 1,
//	    func(topic string, payload []byte) error {
//	        return manager.SwitchTo(string(payload))
//	    })
package mqtt
