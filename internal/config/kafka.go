package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Topic      string   `yaml:"alerts-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) AlertsTopic() string {
	return s.Topic
}

// Enabled reports whether alert events should be published at all.
func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
