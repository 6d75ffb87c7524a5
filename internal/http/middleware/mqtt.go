package middleware

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
)

var (
	mqttClient mqtt.Client
	brokerURL  = "tcp://0.0.0.0:1883"
)

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// SetBrokerURL allows configuration of the MQTT broker URL.
func SetBrokerURL(url string) {
	brokerURL = url
}

// InitMQTT connects the single server-side client used to push refresh
// commands at paired kiosks. Kiosks subscribe to their own topic.
func InitMQTT(clientName string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}
	return nil
}

func deviceTopic(deviceID string) string {
	return fmt.Sprintf("sign/%s/commands", deviceID)
}

// PublishRefresh tells one kiosk to re-pull its state.
func PublishRefresh(deviceID string) error {
	if mqttClient == nil {
		return nil
	}
	token := mqttClient.Publish(deviceTopic(deviceID), 1, false, []byte(`{"command":"refresh"}`))
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish refresh to %s: %v", deviceID, token.Error())
	}
	return nil
}

// PublishRefreshAll fans a refresh out to every paired screen. Failures
// on individual devices are logged and do not block the rest.
func PublishRefreshAll() {
	if mqttClient == nil {
		return
	}
	screens, err := db.ListScreens()
	if err != nil {
		log.Error().Err(err).Msg("listing screens for refresh broadcast failed")
		return
	}
	for _, s := range screens {
		if !s.Paired || s.DeviceID == nil {
			continue
		}
		if err := PublishRefresh(*s.DeviceID); err != nil {
			log.Warn().Err(err).Str("device_id", *s.DeviceID).Msg("refresh publish failed")
		}
	}
}

// CleanupMQTT disconnects the server client.
func CleanupMQTT() {
	if mqttClient != nil {
		mqttClient.Disconnect(250)
		log.Info().Msg("MQTT client disconnected")
	}
}
