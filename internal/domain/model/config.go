package model

type Config struct {
	// Ambient locale used when a caller does not name one
	Locale string `json:"locale"`

	// Tello SDK link
	DroneAddr string `json:"drone_addr"` // command endpoint, e.g. 192.168.10.1:8889
	LocalAddr string `json:"local_addr"` // local command socket
	StateAddr string `json:"state_addr"` // state datagram listener

	ListenAddr string `json:"listen_addr"`

	// MQTT bridge, disabled when broker is empty
	MQTTBroker        string `json:"mqtt_broker,omitempty"`
	MQTTPrefix        string `json:"mqtt_prefix,omitempty"`
	TelemetryInterval string `json:"telemetry_interval,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
	LogFile  string `json:"log_file,omitempty"`
}
